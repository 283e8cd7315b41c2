package model

import "github.com/shopspring/decimal"

type DashboardStats struct {
	Users struct {
		Total   int64 `json:"total"`
		Pending int64 `json:"pending"`
	} `json:"users"`
	Orders struct {
		Total   int64 `json:"total"`
		Pending int64 `json:"pending"`
	} `json:"orders"`
	Revenue struct {
		Total   decimal.Decimal `json:"total"`
		Monthly decimal.Decimal `json:"monthly"`
	} `json:"revenue"`
}
