package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/constant"
)

type OrderItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type OrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive,required"`
	ShippingAddress string             `json:"shipping_address"`
}

// OrderItemEntity snapshots the product at order time. Later price or name
// changes never affect placed orders.
type OrderItemEntity struct {
	ID          int64           `db:"id" json:"id"`
	OrderID     string          `db:"order_id" json:"order_id"`
	ProductID   uint64          `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Quantity    int64           `db:"quantity" json:"quantity"`
}

type OrderEntity struct {
	ID              string               `db:"id" json:"id"`
	UserID          uint64               `db:"user_id" json:"user_id"`
	Status          constant.OrderStatus `db:"status" json:"status"`
	TotalAmount     decimal.Decimal      `db:"total_amount" json:"total_amount"`
	DiscountAmount  decimal.Decimal      `db:"discount_amount" json:"discount_amount"`
	FinalAmount     decimal.Decimal      `db:"final_amount" json:"final_amount"`
	ShippingAddress string               `db:"shipping_address" json:"shipping_address,omitempty"`
	ReceiptURL      string               `db:"receipt_url" json:"receipt_url,omitempty"`
	TrackingCode    string               `db:"tracking_code" json:"tracking_code,omitempty"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

type OrderDetail struct {
	OrderEntity
	Items []OrderItemEntity `json:"items"`
}

type OrderListFilter struct {
	UserID  uint64
	Status  constant.OrderStatus
	Page    int
	PerPage int
}

type OrderListResponse struct {
	Items      []OrderEntity `json:"items"`
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
}

type InsertOrderTx struct {
	ID              string
	UserID          uint64
	Status          constant.OrderStatus
	TotalAmount     decimal.Decimal
	DiscountAmount  decimal.Decimal
	FinalAmount     decimal.Decimal
	ShippingAddress string
	Items           []OrderItemEntity
}

type OrderResponse struct {
	OrderID        string          `json:"order_id"`
	Status         string          `json:"status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	ExpiresAt      time.Time       `json:"expires_at"`
}

type UpdateOrderStatusRequest struct {
	Status       constant.OrderStatus `json:"status" validate:"required"`
	TrackingCode string               `json:"tracking_code"`
}
