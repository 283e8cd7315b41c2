package reservation

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vapehero/wholesale-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ReservationRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) (*model.Reservation, error)
	SumActiveTx(ctx context.Context, tx *sqlx.Tx, productID uint64, now time.Time) (int64, error)
	SumActive(ctx context.Context, productID uint64, now time.Time) (int64, error)
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, productID uint64, orderID string) error
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

func NewReservationRepository(conn *sqlx.DB) ReservationRepository {
	return &SQL{conn: conn}
}

const sumActiveQuery = `SELECT COALESCE(SUM(quantity), 0) FROM stock_reservation WHERE product_id = ? AND expires_at > ?`

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) (*model.Reservation, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO stock_reservation (product_id, order_id, quantity, expires_at) VALUES (?, ?, ?, ?)",
		req.ProductID, req.OrderID, req.Quantity, req.ExpiresAt)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Reservation{
		ID:        id,
		ProductID: req.ProductID,
		OrderID:   req.OrderID,
		Quantity:  req.Quantity,
		ExpiresAt: req.ExpiresAt,
	}, nil
}

// SumActiveTx sums non-expired holds for a product. Expired rows stop
// counting immediately, whether or not the sweep has removed them yet.
func (s *SQL) SumActiveTx(ctx context.Context, tx *sqlx.Tx, productID uint64, now time.Time) (int64, error) {
	var total sql.NullInt64
	if err := tx.GetContext(ctx, &total, sumActiveQuery, productID, now); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (s *SQL) SumActive(ctx context.Context, productID uint64, now time.Time) (int64, error) {
	var total sql.NullInt64
	if err := s.conn.GetContext(ctx, &total, sumActiveQuery, productID, now); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

// ReleaseTx deletes every hold matching the product+order pair. Releasing a
// hold that no longer exists is a no-op, not an error.
func (s *SQL) ReleaseTx(ctx context.Context, tx *sqlx.Tx, productID uint64, orderID string) error {
	_, err := tx.ExecContext(ctx,
		"DELETE FROM stock_reservation WHERE product_id = ? AND order_id = ?", productID, orderID)
	return err
}

func (s *SQL) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM stock_reservation WHERE expires_at < ?", now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
