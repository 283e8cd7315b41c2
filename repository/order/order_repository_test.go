package order_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/vapehero/wholesale-backend/repository/order"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

const nextIDQuery = "SELECT id FROM `order` ORDER BY CAST(SUBSTRING(id, 4) AS UNSIGNED) DESC LIMIT 1 FOR UPDATE"

func TestOrderRepository_NextOrderIDTx(t *testing.T) {
	tests := []struct {
		name   string
		lastID *string
		want   string
	}{
		{
			name:   "first order starts at the base",
			lastID: nil,
			want:   "VH-1001",
		},
		{
			name:   "increments the numeric suffix",
			lastID: strptr("VH-1041"),
			want:   "VH-1042",
		},
		{
			name:   "survives the digit-length rollover",
			lastID: strptr("VH-9999"),
			want:   "VH-10000",
		},
		{
			name:   "rollover id stays the highest",
			lastID: strptr("VH-10000"),
			want:   "VH-10001",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := order.NewOrderRepository(db)

			rows := sqlmock.NewRows([]string{"id"})
			if tt.lastID != nil {
				rows.AddRow(*tt.lastID)
			}
			mock.ExpectBegin()
			mock.ExpectQuery(nextIDQuery).WillReturnRows(rows)

			tx, err := db.Beginx()
			if err != nil {
				t.Fatalf("Beginx() error = %v", err)
			}
			got, err := repo.NextOrderIDTx(context.Background(), tx)
			if err != nil {
				t.Fatalf("NextOrderIDTx() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("NextOrderIDTx() = %s, want %s", got, tt.want)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func strptr(s string) *string { return &s }
