package setting

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

// SettingRepository persists the admin-editable configuration tables (VIP
// tiers, discount codes) as typed settings rows. The original system kept
// untyped JSON blobs; here each value is unmarshalled into its model type and
// validated before every write.
type SettingRepository interface {
	GetVIPTiers(ctx context.Context) (*model.VIPTierTable, error)
	GetVIPTiersTx(ctx context.Context, tx *sqlx.Tx, forUpdate bool) (*model.VIPTierTable, error)
	UpsertVIPTiers(ctx context.Context, table *model.VIPTierTable) error
	GetDiscountCodes(ctx context.Context) (*model.DiscountCodeTable, error)
	UpsertDiscountCodes(ctx context.Context, table *model.DiscountCodeTable) error
}

func NewSettingRepository(conn *sqlx.DB) SettingRepository {
	return &SQL{conn: conn}
}

const getSettingQuery = `SELECT value FROM setting WHERE ` + "`key`" + ` = ?`

func (s *SQL) GetVIPTiers(ctx context.Context) (*model.VIPTierTable, error) {
	var raw string
	if err := s.conn.GetContext(ctx, &raw, getSettingQuery, constant.SettingKeyVIPTiers); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return decodeTiers(raw)
}

func (s *SQL) GetVIPTiersTx(ctx context.Context, tx *sqlx.Tx, forUpdate bool) (*model.VIPTierTable, error) {
	query := getSettingQuery
	if forUpdate {
		query += " FOR UPDATE"
	}
	var raw string
	if err := tx.GetContext(ctx, &raw, query, constant.SettingKeyVIPTiers); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return decodeTiers(raw)
}

func (s *SQL) UpsertVIPTiers(ctx context.Context, table *model.VIPTierTable) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx,
		"INSERT INTO setting (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)",
		constant.SettingKeyVIPTiers, string(raw))
	return err
}

func (s *SQL) GetDiscountCodes(ctx context.Context) (*model.DiscountCodeTable, error) {
	var raw string
	if err := s.conn.GetContext(ctx, &raw, getSettingQuery, constant.SettingKeyDiscountCodes); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	var table model.DiscountCodeTable
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *SQL) UpsertDiscountCodes(ctx context.Context, table *model.DiscountCodeTable) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx,
		"INSERT INTO setting (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)",
		constant.SettingKeyDiscountCodes, string(raw))
	return err
}

func decodeTiers(raw string) (*model.VIPTierTable, error) {
	var table model.VIPTierTable
	if err := json.Unmarshal([]byte(raw), &table); err != nil {
		return nil, err
	}
	return &table, nil
}
