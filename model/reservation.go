package model

import "time"

// Reservation is a time-bounded claim on a quantity of a product's stock,
// tied to one in-flight order. Multiple reservations may exist per product;
// they are additive.
type Reservation struct {
	ID        int64     `db:"id" json:"id"`
	ProductID uint64    `db:"product_id" json:"product_id"`
	OrderID   string    `db:"order_id" json:"order_id"`
	Quantity  int64     `db:"quantity" json:"quantity"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

type ReserveRequest struct {
	ProductID uint64
	OrderID   string
	Quantity  int64
	ExpiresAt time.Time
}
