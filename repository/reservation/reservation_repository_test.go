package reservation_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/vapehero/wholesale-backend/repository/reservation"
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

// Expired rows must stop counting against capacity the moment they expire,
// whether or not the sweep has removed them yet: the sum is bounded by the
// caller's now.
func TestReservationRepository_SumActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := reservation.NewReservationRepository(db)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT COALESCE(SUM(quantity), 0) FROM stock_reservation WHERE product_id = ? AND expires_at > ?").
		WithArgs(uint64(1), now).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(7)))

	got, err := repo.SumActive(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("SumActive() error = %v", err)
	}
	if got != 7 {
		t.Fatalf("SumActive() = %d, want 7", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationRepository_SumActiveTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := reservation.NewReservationRepository(db)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE(SUM(quantity), 0) FROM stock_reservation WHERE product_id = ? AND expires_at > ?").
		WithArgs(uint64(3), now).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(nil))

	tx, err := db.Beginx()
	if err != nil {
		t.Fatalf("Beginx() error = %v", err)
	}
	got, err := repo.SumActiveTx(context.Background(), tx, 3, now)
	if err != nil {
		t.Fatalf("SumActiveTx() error = %v", err)
	}
	if got != 0 {
		t.Fatalf("SumActiveTx() with no holds = %d, want 0", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// The sweep must delete rows strictly before now and only those.
func TestReservationRepository_SweepExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := reservation.NewReservationRepository(db)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM stock_reservation WHERE expires_at < ?").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	got, err := repo.SweepExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("SweepExpired() error = %v", err)
	}
	if got != 3 {
		t.Fatalf("SweepExpired() = %d, want 3", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationRepository_ReleaseTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := reservation.NewReservationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM stock_reservation WHERE product_id = ? AND order_id = ?").
		WithArgs(uint64(1), "VH-1001").
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := db.Beginx()
	if err != nil {
		t.Fatalf("Beginx() error = %v", err)
	}
	// zero matching rows is still success
	if err := repo.ReleaseTx(context.Background(), tx, 1, "VH-1001"); err != nil {
		t.Fatalf("ReleaseTx() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
