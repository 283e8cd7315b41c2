package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductEntity struct {
	ID          uint64          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Slug        string          `db:"slug" json:"slug"`
	Description string          `db:"description" json:"description,omitempty"`
	Price       decimal.Decimal `db:"price" json:"price"`
	StockCount  int64           `db:"stock_count" json:"stock_count"`
	MinOrder    int64           `db:"min_order" json:"min_order"`
	InStock     bool            `db:"in_stock" json:"in_stock"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}

type ProductListItem struct {
	ID             uint64          `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	Slug           string          `db:"slug" json:"slug"`
	Price          decimal.Decimal `db:"price" json:"price"`
	MinOrder       int64           `db:"min_order" json:"min_order"`
	AvailableStock int64           `db:"available_stock" json:"available_stock"`
	InStock        bool            `db:"in_stock" json:"in_stock"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
}

type ProductDetail struct {
	ProductEntity
	AvailableStock int64 `db:"available_stock" json:"available_stock"`
}

type UpdateStockRequest struct {
	StockCount int64 `json:"stock_count" validate:"gte=0"`
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Slug        string          `json:"slug" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	StockCount  int64           `json:"stock_count" validate:"gte=0"`
	MinOrder    int64           `json:"min_order" validate:"gte=1"`
}
