package order

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	"github.com/vapehero/wholesale-backend/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	NextOrderIDTx(ctx context.Context, tx *sqlx.Tx) (string, error)
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTx) error
	GetOrder(ctx context.Context, orderID string) (*model.OrderEntity, error)
	GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.OrderEntity, error)
	GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItemEntity, error)
	GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string) ([]model.OrderItemEntity, error)
	List(ctx context.Context, filter *model.OrderListFilter) ([]model.OrderEntity, int64, error)
	TransitionStatusTx(ctx context.Context, tx *sqlx.Tx, orderID string, from, to constant.OrderStatus) (bool, error)
	UpdateTrackingCodeTx(ctx context.Context, tx *sqlx.Tx, orderID, trackingCode string) error
	UpdateReceiptURL(ctx context.Context, orderID, receiptURL string) error
	CountByStatuses(ctx context.Context, statuses []constant.OrderStatus) (int64, error)
	SumFinalAmount(ctx context.Context, statuses []constant.OrderStatus, since sql.NullTime) (decimal.Decimal, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const getOrderQuery = `SELECT id, user_id, status, total_amount, discount_amount, final_amount,
shipping_address, receipt_url, tracking_code, created_at, updated_at
FROM ` + "`order`" + ` WHERE id = ?`

// NextOrderIDTx issues the next human-readable sequential order code
// (VH-1001, VH-1002, ...). It parses the numeric suffix of the highest
// order and falls back to the base value when none exists or parsing fails.
// Ordering is on the numeric suffix, not the id string, so the sequence
// survives digit-length rollovers (VH-9999 to VH-10000). The SELECT locks
// the latest row so concurrent creators serialize here; a duplicate key on
// insert still surfaces as a retryable conflict upstream.
func (r *SQL) NextOrderIDTx(ctx context.Context, tx *sqlx.Tx) (string, error) {
	var lastID string
	err := tx.GetContext(ctx, &lastID,
		"SELECT id FROM `order` ORDER BY CAST(SUBSTRING(id, 4) AS UNSIGNED) DESC LIMIT 1 FOR UPDATE")
	if err != nil && err != sql.ErrNoRows {
		return "", err
	}

	next := constant.OrderIDBase
	if err == nil {
		suffix := strings.TrimPrefix(lastID, constant.OrderIDPrefix+"-")
		if n, parseErr := strconv.Atoi(suffix); parseErr == nil {
			next = n + 1
		}
	}

	return fmt.Sprintf("%s-%d", constant.OrderIDPrefix, next), nil
}

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTx) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO `order` (id, user_id, status, total_amount, discount_amount, final_amount, shipping_address, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())",
		req.ID, req.UserID, req.Status, req.TotalAmount, req.DiscountAmount, req.FinalAmount, req.ShippingAddress)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if goerrors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return errors.SetCustomError(constant.ErrConflict)
		}
		return err
	}

	itemQuery := "INSERT INTO order_item (order_id, product_id, product_name, unit_price, quantity) VALUES (?, ?, ?, ?, ?)"
	for _, it := range req.Items {
		if _, err := tx.ExecContext(ctx, itemQuery, req.ID, it.ProductID, it.ProductName, it.UnitPrice, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetOrder(ctx context.Context, orderID string) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	if err := r.conn.QueryRowxContext(ctx, getOrderQuery, orderID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	if err := tx.QueryRowxContext(ctx, getOrderQuery, orderID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

const getOrderItemsQuery = `SELECT id, order_id, product_id, product_name, unit_price, quantity FROM order_item WHERE order_id = ?`

func (r *SQL) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItemEntity, error) {
	return scanOrderItems(r.conn.QueryxContext(ctx, getOrderItemsQuery, orderID))
}

func (r *SQL) GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string) ([]model.OrderItemEntity, error) {
	return scanOrderItems(tx.QueryxContext(ctx, getOrderItemsQuery, orderID))
}

func scanOrderItems(rows *sqlx.Rows, err error) ([]model.OrderItemEntity, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderItemEntity, 0)
	for rows.Next() {
		var it model.OrderItemEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *SQL) List(ctx context.Context, filter *model.OrderListFilter) ([]model.OrderEntity, int64, error) {
	where := " WHERE true"
	args := make([]any, 0, 4)
	if filter.UserID != 0 {
		where += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}

	query := "SELECT id, user_id, status, total_amount, discount_amount, final_amount, shipping_address, receipt_url, tracking_code, created_at, updated_at FROM `order`" +
		where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	offset := (filter.Page - 1) * filter.PerPage
	rows, err := r.conn.QueryxContext(ctx, query, append(args, filter.PerPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]model.OrderEntity, 0)
	for rows.Next() {
		var o model.OrderEntity
		if err := rows.StructScan(&o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM `order`"+where, args...); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// TransitionStatusTx moves the order forward only when it is still in the
// expected source status. Zero rows affected means another request already
// moved it, which makes the paid-transition settlement safe to retry.
func (r *SQL) TransitionStatusTx(ctx context.Context, tx *sqlx.Tx, orderID string, from, to constant.OrderStatus) (bool, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE `order` SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?", to, orderID, from)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *SQL) UpdateTrackingCodeTx(ctx context.Context, tx *sqlx.Tx, orderID, trackingCode string) error {
	_, err := tx.ExecContext(ctx, "UPDATE `order` SET tracking_code = ? WHERE id = ?", trackingCode, orderID)
	return err
}

func (r *SQL) UpdateReceiptURL(ctx context.Context, orderID, receiptURL string) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE `order` SET receipt_url = ? WHERE id = ?", receiptURL, orderID)
	return err
}

func (r *SQL) CountByStatuses(ctx context.Context, statuses []constant.OrderStatus) (int64, error) {
	query, args, err := sqlx.In("SELECT COUNT(*) FROM `order` WHERE status IN (?)", statuses)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := r.conn.GetContext(ctx, &total, r.conn.Rebind(query), args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQL) SumFinalAmount(ctx context.Context, statuses []constant.OrderStatus, since sql.NullTime) (decimal.Decimal, error) {
	base := "SELECT COALESCE(SUM(final_amount), 0) FROM `order` WHERE status IN (?)"
	args := []any{statuses}
	if since.Valid {
		base += " AND created_at >= ?"
		args = append(args, since.Time)
	}
	query, inArgs, err := sqlx.In(base, args...)
	if err != nil {
		return decimal.Zero, err
	}
	var total decimal.Decimal
	if err := r.conn.GetContext(ctx, &total, r.conn.Rebind(query), inArgs...); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
