package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appinventory "github.com/vapehero/wholesale-backend/application/inventory"
	"github.com/vapehero/wholesale-backend/cmd/config"
	"github.com/vapehero/wholesale-backend/constant"
	productmocks "github.com/vapehero/wholesale-backend/mocks/repository/product"
	redismocks "github.com/vapehero/wholesale-backend/mocks/repository/redis"
	reservationmocks "github.com/vapehero/wholesale-backend/mocks/repository/reservation"
	"github.com/vapehero/wholesale-backend/model"
	cerr "github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Order: config.OrderConfig{
			HoldDuration: 2 * time.Hour,
		},
	}
}

func TestInventoryApp_ReserveTx(t *testing.T) {
	type fields struct {
		config          *config.Config
		productRepo     *productmocks.ProductRepository
		reservationRepo *reservationmocks.ReservationRepository
		redisRepo       *redismocks.Repository
	}
	type args struct {
		productID uint64
		quantity  int64
		orderID   string
	}
	tests := []struct {
		name          string
		fields        fields
		args          args
		mockCall      func(f fields, tx *sqlx.Tx)
		wantErr       bool
		errCode       constant.ErrorType
		wantAvailable int64
	}{
		{
			name: "success: enough stock after holds",
			fields: fields{
				config:          testConfig(),
				productRepo:     productmocks.NewProductRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				redisRepo:       redismocks.NewRepository(t),
			},
			args: args{productID: 1, quantity: 6, orderID: "VH-1001"},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(int64(10), nil).Once()
				f.reservationRepo.On("SumActiveTx", mock.Anything, tx, uint64(1), mock.Anything).
					Return(int64(4), nil).Once()
				f.reservationRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(req *model.ReserveRequest) bool {
					return req.ProductID == 1 && req.Quantity == 6 && req.OrderID == "VH-1001" &&
						!req.ExpiresAt.IsZero()
				})).Return(&model.Reservation{
					ID:        1,
					ProductID: 1,
					OrderID:   "VH-1001",
					Quantity:  6,
					ExpiresAt: time.Now().Add(2 * time.Hour),
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: held stock pushes request over the line",
			fields: fields{
				config:          testConfig(),
				productRepo:     productmocks.NewProductRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				redisRepo:       redismocks.NewRepository(t),
			},
			args: args{productID: 1, quantity: 6, orderID: "VH-1002"},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(int64(10), nil).Once()
				f.reservationRepo.On("SumActiveTx", mock.Anything, tx, uint64(1), mock.Anything).
					Return(int64(5), nil).Once()
			},
			wantErr:       true,
			errCode:       constant.ErrInsufficientStock,
			wantAvailable: 5,
		},
		{
			name: "error: product not found",
			fields: fields{
				config:          testConfig(),
				productRepo:     productmocks.NewProductRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				redisRepo:       redismocks.NewRepository(t),
			},
			args: args{productID: 99, quantity: 1, orderID: "VH-1003"},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(99)).
					Return(int64(0), cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: sum of holds fails",
			fields: fields{
				config:          testConfig(),
				productRepo:     productmocks.NewProductRepository(t),
				reservationRepo: reservationmocks.NewReservationRepository(t),
				redisRepo:       redismocks.NewRepository(t),
			},
			args: args{productID: 1, quantity: 1, orderID: "VH-1004"},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.productRepo.On("GetStockForUpdateTx", mock.Anything, tx, uint64(1)).
					Return(int64(10), nil).Once()
				f.reservationRepo.On("SumActiveTx", mock.Anything, tx, uint64(1), mock.Anything).
					Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(tt.fields, tx)
			}
			app := appinventory.NewInventoryApp(tt.fields.config,
				tt.fields.productRepo, tt.fields.reservationRepo, tt.fields.redisRepo)

			got, err := app.ReserveTx(context.Background(), tx, tt.args.productID, tt.args.quantity, tt.args.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReserveTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.errCode == constant.ErrInsufficientStock {
					var se cerr.InsufficientStockError
					if !errors.As(err, &se) {
						t.Fatalf("error type = %T, want InsufficientStockError", err)
					}
					if se.Available != tt.wantAvailable || se.Requested != tt.args.quantity {
						t.Fatalf("shortage = %d/%d, want %d/%d", se.Available, se.Requested, tt.wantAvailable, tt.args.quantity)
					}
					return
				}
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got == nil || got.ExpiresAt.IsZero() {
				t.Fatal("ReserveTx() should return a reservation with an expiry")
			}
		})
	}
}

func TestInventoryApp_ReleaseTx(t *testing.T) {
	t.Run("idempotent: missing hold is a no-op", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		reservationRepo := reservationmocks.NewReservationRepository(t)
		redisRepo := redismocks.NewRepository(t)

		tx := &sqlx.Tx{}
		reservationRepo.On("ReleaseTx", mock.Anything, tx, uint64(1), "VH-1001").Return(nil).Twice()

		app := appinventory.NewInventoryApp(testConfig(), productRepo, reservationRepo, redisRepo)
		if err := app.ReleaseTx(context.Background(), tx, 1, "VH-1001"); err != nil {
			t.Fatalf("ReleaseTx() error = %v", err)
		}
		if err := app.ReleaseTx(context.Background(), tx, 1, "VH-1001"); err != nil {
			t.Fatalf("second ReleaseTx() error = %v", err)
		}
	})
}

func TestInventoryApp_CacheReservation(t *testing.T) {
	t.Run("mirrors the hold with its remaining ttl", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		reservationRepo := reservationmocks.NewReservationRepository(t)
		redisRepo := redismocks.NewRepository(t)

		redisRepo.On("SetReservation", mock.Anything, uint64(1), "VH-1001", int64(3), mock.Anything).Return(nil).Once()

		app := appinventory.NewInventoryApp(testConfig(), productRepo, reservationRepo, redisRepo)
		app.CacheReservation(context.Background(), &model.Reservation{
			ID: 7, ProductID: 1, OrderID: "VH-1001", Quantity: 3,
			ExpiresAt: time.Now().Add(2 * time.Hour),
		})
	})

	t.Run("skips holds that already expired", func(t *testing.T) {
		productRepo := productmocks.NewProductRepository(t)
		reservationRepo := reservationmocks.NewReservationRepository(t)
		redisRepo := redismocks.NewRepository(t)

		app := appinventory.NewInventoryApp(testConfig(), productRepo, reservationRepo, redisRepo)
		app.CacheReservation(context.Background(), &model.Reservation{
			ID: 8, ProductID: 1, OrderID: "VH-1002", Quantity: 3,
			ExpiresAt: time.Now().Add(-time.Minute),
		})
	})
}

func TestInventoryApp_SweepExpired(t *testing.T) {
	productRepo := productmocks.NewProductRepository(t)
	reservationRepo := reservationmocks.NewReservationRepository(t)
	redisRepo := redismocks.NewRepository(t)

	reservationRepo.On("SweepExpired", mock.Anything, mock.Anything).Return(int64(3), nil).Once()

	app := appinventory.NewInventoryApp(testConfig(), productRepo, reservationRepo, redisRepo)
	count, err := app.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("SweepExpired() error = %v", err)
	}
	if count != 3 {
		t.Fatalf("SweepExpired() count = %d, want 3", count)
	}
}
