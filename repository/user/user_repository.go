package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	"github.com/vapehero/wholesale-backend/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserListFilter) ([]model.UserEntity, int64, error)
	UpdateStatus(ctx context.Context, id uint64, status constant.UserStatus) error
	UpdateProfile(ctx context.Context, id uint64, req *model.UpdateUserRequest) error
	AddSpentTx(ctx context.Context, tx *sqlx.Tx, id uint64, amount decimal.Decimal) error
	UpdateVIPLevelTx(ctx context.Context, tx *sqlx.Tx, id uint64, level constant.VIPLevel) error
	CountByStatus(ctx context.Context, status constant.UserStatus) (int64, error)
	Count(ctx context.Context) (int64, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (phone, name, store_name, email, password_hash, role, status, vip_level, total_spent, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getUserBase = `SELECT id, phone, name, store_name, email, password_hash, role, status, vip_level, total_spent, created_at, updated_at
FROM user WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Phone, data.Name, data.StoreName, data.Email, data.PasswordHash,
		data.Role, data.Status, data.VIPLevel, data.TotalSpent)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := tx.QueryRowxContext(ctx, getUserBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.UserListFilter) ([]model.UserEntity, int64, error) {
	where := " AND role = ?"
	args := []any{constant.UserRoleUser}
	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Search != "" {
		where += " AND (phone LIKE ? OR name LIKE ? OR store_name LIKE ?)"
		like := "%" + filter.Search + "%"
		args = append(args, like, like, like)
	}

	offset := (filter.Page - 1) * filter.PerPage
	rows, err := s.conn.QueryxContext(ctx,
		getUserBase+where+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		append(args, filter.PerPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var u model.UserEntity
		if err := rows.StructScan(&u); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM user WHERE true"+where, args...); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *SQL) UpdateStatus(ctx context.Context, id uint64, status constant.UserStatus) error {
	res, err := s.conn.ExecContext(ctx, "UPDATE user SET status = ?, updated_at = NOW() WHERE id = ?", status, id)
	if err != nil {
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

func (s *SQL) UpdateProfile(ctx context.Context, id uint64, req *model.UpdateUserRequest) error {
	query := "UPDATE user SET updated_at = NOW()"
	args := make([]any, 0, 5)
	if req.Name != nil {
		query += ", name = ?"
		args = append(args, *req.Name)
	}
	if req.StoreName != nil {
		query += ", store_name = ?"
		args = append(args, *req.StoreName)
	}
	if req.Status != nil {
		query += ", status = ?"
		args = append(args, *req.Status)
	}
	if req.VIPLevel != nil {
		query += ", vip_level = ?"
		args = append(args, *req.VIPLevel)
	}
	query += " WHERE id = ?"
	args = append(args, id)

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

// AddSpentTx accumulates lifetime spend. total_spent only ever grows here;
// manual admin corrections go through UpdateProfile.
func (s *SQL) AddSpentTx(ctx context.Context, tx *sqlx.Tx, id uint64, amount decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, "UPDATE user SET total_spent = total_spent + ? WHERE id = ?", amount, id)
	return err
}

func (s *SQL) UpdateVIPLevelTx(ctx context.Context, tx *sqlx.Tx, id uint64, level constant.VIPLevel) error {
	_, err := tx.ExecContext(ctx, "UPDATE user SET vip_level = ? WHERE id = ?", level, id)
	return err
}

func (s *SQL) CountByStatus(ctx context.Context, status constant.UserStatus) (int64, error) {
	var total int64
	err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM user WHERE status = ? AND role = ?", status, constant.UserRoleUser)
	return total, err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM user WHERE role = ?", constant.UserRoleUser)
	return total, err
}
