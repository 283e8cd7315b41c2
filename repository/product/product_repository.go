package product

import (
	"context"
	"database/sql"
	goerrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	"github.com/vapehero/wholesale-backend/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error)
	GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (int64, error)
	DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error
	UpdateStock(ctx context.Context, id uint64, stockCount int64) error
	Insert(ctx context.Context, req *model.ProductRequest) (uint64, error)
	Update(ctx context.Context, id uint64, req *model.ProductRequest) error
	Delete(ctx context.Context, id uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	listProductsBase = `SELECT p.id, p.name, p.slug, p.price, p.min_order, p.in_stock,
p.stock_count - COALESCE((SELECT SUM(r.quantity) FROM stock_reservation r WHERE r.product_id = p.id AND r.expires_at > NOW()), 0) AS available_stock
FROM product p`

	countProductsQuery = `SELECT COUNT(*) FROM product`

	getProductQuery = `SELECT id, name, slug, description, price, stock_count, min_order, in_stock, created_at, updated_at
FROM product WHERE id = ?`
)

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.ProductListItem, int64, error) {
	offset := (page - 1) * perPage

	query := listProductsBase + " ORDER BY p.id LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countProductsQuery); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := tx.QueryRowxContext(ctx, getProductQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetStockForUpdateTx locks the product row for the rest of the transaction.
// Reservation attempts for the same product serialize on this lock.
func (s *SQL) GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (int64, error) {
	var stock int64
	err := tx.GetContext(ctx, &stock, "SELECT stock_count FROM product WHERE id = ? FOR UPDATE", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, errors.SetCustomError(constant.ErrNotFound)
		}
		return 0, err
	}
	return stock, nil
}

// DecrementStockTx permanently reduces on-hand stock. The guard keeps
// stock_count from ever going negative; the settlement processor only
// decrements quantities it previously reserved.
func (s *SQL) DecrementStockTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error {
	// in_stock is assigned first: MySQL evaluates SET clauses left to right,
	// so it must read stock_count before the decrement lands.
	res, err := tx.ExecContext(ctx,
		"UPDATE product SET in_stock = stock_count - ? > 0, stock_count = stock_count - ? WHERE id = ? AND stock_count >= ?",
		quantity, quantity, id, quantity)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists int
		if err := tx.GetContext(ctx, &exists, "SELECT COUNT(*) FROM product WHERE id = ?", id); err != nil {
			return err
		}
		if exists == 0 {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	return nil
}

func (s *SQL) Insert(ctx context.Context, req *model.ProductRequest) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO product (name, slug, description, price, stock_count, min_order, in_stock, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())",
		req.Name, req.Slug, req.Description, req.Price, req.StockCount, req.MinOrder, req.StockCount > 0)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if goerrors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return 0, errors.SetCustomError(constant.ErrConflict)
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, req *model.ProductRequest) error {
	res, err := s.conn.ExecContext(ctx,
		"UPDATE product SET name = ?, slug = ?, description = ?, price = ?, stock_count = ?, min_order = ?, in_stock = ?, updated_at = NOW() WHERE id = ?",
		req.Name, req.Slug, req.Description, req.Price, req.StockCount, req.MinOrder, req.StockCount > 0, id)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if goerrors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return errors.SetCustomError(constant.ErrConflict)
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists int
		if err := s.conn.GetContext(ctx, &exists, "SELECT COUNT(*) FROM product WHERE id = ?", id); err != nil {
			return err
		}
		if exists == 0 {
			return errors.SetCustomError(constant.ErrNotFound)
		}
	}
	return nil
}

// Delete removes a product. Placed orders keep their name/price snapshots in
// order_item, so history survives the delete; a foreign key on live holds or
// items still surfaces as a conflict.
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM product WHERE id = ?", id)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if goerrors.As(err, &mysqlErr) && mysqlErr.Number == 1451 {
			return errors.SetCustomError(constant.ErrConflict)
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *SQL) UpdateStock(ctx context.Context, id uint64, stockCount int64) error {
	res, err := s.conn.ExecContext(ctx,
		"UPDATE product SET stock_count = ?, in_stock = ? > 0 WHERE id = ?", stockCount, stockCount, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// MySQL also reports zero affected rows when the values did not change.
		var exists int
		if err := s.conn.GetContext(ctx, &exists, "SELECT COUNT(*) FROM product WHERE id = ?", id); err != nil {
			return err
		}
		if exists == 0 {
			return errors.SetCustomError(constant.ErrNotFound)
		}
	}
	return nil
}
