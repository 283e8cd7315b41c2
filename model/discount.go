package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/constant"
)

// DiscountCode is one marketing code. Percentage codes take Value as a
// percent of the cart, fixed codes as an absolute amount; MaxDiscount caps
// what a percentage code can shave off.
type DiscountCode struct {
	Code        string                `json:"code" validate:"required"`
	Name        string                `json:"name" validate:"required"`
	Type        constant.DiscountType `json:"type" validate:"required,oneof=percentage fixed"`
	Value       decimal.Decimal       `json:"value"`
	MinPurchase decimal.Decimal       `json:"min_purchase"`
	MaxDiscount decimal.Decimal       `json:"max_discount"`
	StartDate   time.Time             `json:"start_date"`
	EndDate     time.Time             `json:"end_date"`
	IsActive    bool                  `json:"is_active"`
}

// DiscountCodeTable is the full admin-edited code list, persisted as one
// typed settings row. An empty list simply means no codes are on offer.
type DiscountCodeTable struct {
	Codes []DiscountCode `json:"codes" validate:"dive"`
}
