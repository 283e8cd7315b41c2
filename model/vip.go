package model

import (
	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/constant"
)

// VIPTier is one row of the loyalty staircase. Tiers are kept ordered by
// MinSpent ascending; the highest threshold a buyer's total_spent meets wins.
type VIPTier struct {
	Level           constant.VIPLevel `json:"level" validate:"required"`
	MinSpent        decimal.Decimal   `json:"min_spent"`
	DiscountPercent int64             `json:"discount_percent" validate:"gte=0,lte=100"`
}

type VIPTierTable struct {
	Tiers []VIPTier `json:"tiers" validate:"required,min=1,dive"`
}

type DiscountResult struct {
	DiscountPercent int64           `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
}
