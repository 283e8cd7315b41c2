package inventory

import (
	"context"
	goerrors "errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vapehero/wholesale-backend/cmd/config"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	productrepo "github.com/vapehero/wholesale-backend/repository/product"
	redisrepo "github.com/vapehero/wholesale-backend/repository/redis"
	reservationrepo "github.com/vapehero/wholesale-backend/repository/reservation"
	"github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/vapehero/wholesale-backend/utils/logger"
	"go.uber.org/zap"
)

// InventoryApp tracks time-bounded stock holds against the product ledger.
// The relational store is authoritative; Redis carries a best-effort mirror
// of each hold for quick lookups and never influences reserve decisions.
type InventoryApp interface {
	ReserveTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int64, orderID string) (*model.Reservation, error)
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, productID uint64, orderID string) error
	CacheReservation(ctx context.Context, r *model.Reservation)
	DropCachedReservation(ctx context.Context, productID uint64, orderID string)
	SweepExpired(ctx context.Context) (int64, error)
}

type inventoryAppImpl struct {
	config          *config.Config
	productRepo     productrepo.ProductRepository
	reservationRepo reservationrepo.ReservationRepository
	redisRepo       redisrepo.Repository
}

func NewInventoryApp(config *config.Config, productRepo productrepo.ProductRepository,
	reservationRepo reservationrepo.ReservationRepository, redisRepo redisrepo.Repository) InventoryApp {
	return &inventoryAppImpl{
		config:          config,
		productRepo:     productRepo,
		reservationRepo: reservationRepo,
		redisRepo:       redisRepo,
	}
}

// ReserveTx places a hold on stock inside the caller's transaction. The
// product row lock taken by GetStockForUpdateTx serializes concurrent
// reserves per product, so the read-sum-insert below cannot race: after any
// successful reserve, sum(active holds) <= stock_count.
func (s *inventoryAppImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity int64, orderID string) (*model.Reservation, error) {
	now := time.Now()

	stock, err := s.productRepo.GetStockForUpdateTx(ctx, tx, productID)
	if err != nil {
		var ce errors.CustomError
		if goerrors.As(err, &ce) {
			return nil, ce
		}
		logger.Error("[ReserveTx] lock product stock", zap.Uint64("product_id", productID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	reserved, err := s.reservationRepo.SumActiveTx(ctx, tx, productID, now)
	if err != nil {
		logger.Error("[ReserveTx] sum active reservations", zap.Uint64("product_id", productID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	available := stock - reserved
	if available < quantity {
		logger.Info("[ReserveTx] insufficient stock",
			zap.Uint64("product_id", productID),
			zap.Int64("available", available),
			zap.Int64("requested", quantity))
		return nil, errors.InsufficientStockError{Available: available, Requested: quantity}
	}

	reservation, err := s.reservationRepo.InsertTx(ctx, tx, &model.ReserveRequest{
		ProductID: productID,
		OrderID:   orderID,
		Quantity:  quantity,
		ExpiresAt: now.Add(s.config.Order.HoldDuration),
	})
	if err != nil {
		logger.Error("[ReserveTx] insert reservation", zap.Uint64("product_id", productID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return reservation, nil
}

// ReleaseTx drops every hold the order has on the product. Idempotent: a
// missing hold is a no-op.
func (s *inventoryAppImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, productID uint64, orderID string) error {
	return s.reservationRepo.ReleaseTx(ctx, tx, productID, orderID)
}

func (s *inventoryAppImpl) CacheReservation(ctx context.Context, r *model.Reservation) {
	ttl := time.Until(r.ExpiresAt)
	if ttl <= 0 {
		return
	}
	if err := s.redisRepo.SetReservation(ctx, r.ProductID, r.OrderID, r.Quantity, ttl); err != nil {
		logger.Warn("[CacheReservation] mirror write failed", zap.Uint64("product_id", r.ProductID), zap.Error(err))
	}
}

func (s *inventoryAppImpl) DropCachedReservation(ctx context.Context, productID uint64, orderID string) {
	if err := s.redisRepo.DeleteReservation(ctx, productID, orderID); err != nil {
		logger.Warn("[DropCachedReservation] mirror delete failed", zap.Uint64("product_id", productID), zap.Error(err))
	}
}

// SweepExpired reclaims holds whose expiry has passed. Runs on a timer; safe
// next to concurrent reserves because expired rows already stopped counting
// toward availability.
func (s *inventoryAppImpl) SweepExpired(ctx context.Context) (int64, error) {
	count, err := s.reservationRepo.SweepExpired(ctx, time.Now())
	if err != nil {
		logger.Error("[SweepExpired] delete expired reservations", zap.Error(err))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if count > 0 {
		logger.Info("[SweepExpired] reclaimed expired reservations", zap.Int64("count", count))
	}
	return count, nil
}
