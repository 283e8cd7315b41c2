package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/constant"
)

// UserEntity represents the user table entity. Wholesale buyers authenticate
// by phone+OTP; password_hash is only set for back-office admins.
type UserEntity struct {
	ID           uint64              `db:"id" json:"id"`
	Phone        string              `db:"phone" json:"phone"`
	Name         string              `db:"name" json:"name"`
	StoreName    string              `db:"store_name" json:"store_name"`
	Email        string              `db:"email" json:"email,omitempty"`
	PasswordHash string              `db:"password_hash" json:"-"`
	Role         constant.UserRole   `db:"role" json:"role"`
	Status       constant.UserStatus `db:"status" json:"status"`
	VIPLevel     constant.VIPLevel   `db:"vip_level" json:"vip_level"`
	TotalSpent   decimal.Decimal     `db:"total_spent" json:"total_spent"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Phone string
	Email string
}

type UserListFilter struct {
	Status  constant.UserStatus
	Search  string
	Page    int
	PerPage int
}

type UserListResponse struct {
	Items      []UserEntity `json:"items"`
	TotalCount int64        `json:"total_count"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
}

type UpdateUserRequest struct {
	Name      *string              `json:"name"`
	StoreName *string              `json:"store_name"`
	Status    *constant.UserStatus `json:"status"`
	VIPLevel  *constant.VIPLevel   `json:"vip_level"`
}
