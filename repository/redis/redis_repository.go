package redis

import (
	"context"
	"fmt"
	"time"

	redisclient "github.com/vapehero/wholesale-backend/cmd/redis"
	"github.com/vapehero/wholesale-backend/constant"
)

// Repository defines methods for interacting with Redis key-values. The
// relational store stays authoritative for reservations; the keys written
// here are a best-effort accelerator only.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetOTP(ctx context.Context, phone, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, phone string) (string, error)
	DeleteOTP(ctx context.Context, phone string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetReservation(ctx context.Context, productID uint64, orderID string, quantity int64, ttl time.Duration) error
	DeleteReservation(ctx context.Context, productID uint64, orderID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	return client.Get(ctx, key).Result()
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

func (r *redis) SetOTP(ctx context.Context, phone, code string, ttl time.Duration) error {
	return r.SetWithTTL(ctx, fmt.Sprintf(constant.KeyOTP, phone), code, ttl)
}

func (r *redis) GetOTP(ctx context.Context, phone string) (string, error) {
	return r.Get(ctx, fmt.Sprintf(constant.KeyOTP, phone))
}

func (r *redis) DeleteOTP(ctx context.Context, phone string) error {
	return r.Delete(ctx, fmt.Sprintf(constant.KeyOTP, phone))
}

func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, fmt.Sprintf(constant.KeySession, sessionID), userID, ttl).Err()
}

func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	return client.Get(ctx, fmt.Sprintf(constant.KeySession, sessionID)).Uint64()
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, fmt.Sprintf(constant.KeySession, sessionID))
}

func (r *redis) SetReservation(ctx context.Context, productID uint64, orderID string, quantity int64, ttl time.Duration) error {
	key := fmt.Sprintf(constant.KeyInventoryReservation, productID, orderID)
	return r.SetWithTTL(ctx, key, fmt.Sprintf("%d", quantity), ttl)
}

func (r *redis) DeleteReservation(ctx context.Context, productID uint64, orderID string) error {
	return r.Delete(ctx, fmt.Sprintf(constant.KeyInventoryReservation, productID, orderID))
}
