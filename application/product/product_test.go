package product_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/application/product"
	"github.com/vapehero/wholesale-backend/constant"
	productmocks "github.com/vapehero/wholesale-backend/mocks/repository/product"
	reservationmocks "github.com/vapehero/wholesale-backend/mocks/repository/reservation"
	"github.com/vapehero/wholesale-backend/model"
	cerr "github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

type productFields struct {
	productRepo     *productmocks.ProductRepository
	reservationRepo *reservationmocks.ReservationRepository
}

func newProductFields(t *testing.T) productFields {
	return productFields{
		productRepo:     productmocks.NewProductRepository(t),
		reservationRepo: reservationmocks.NewReservationRepository(t),
	}
}

func TestProductApp_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		id            uint64
		mockCall      func(f productFields)
		wantErr       bool
		errCode       constant.ErrorType
		wantAvailable int64
	}{
		{
			name: "availability subtracts active holds",
			id:   1,
			mockCall: func(f productFields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ProductEntity{
					ID: 1, Name: "Pod Kit", Price: decimal.NewFromInt(10_000),
					StockCount: 100, MinOrder: 10, InStock: true,
				}, nil).Once()
				f.reservationRepo.On("SumActive", mock.Anything, uint64(1), mock.Anything).
					Return(int64(30), nil).Once()
			},
			wantAvailable: 70,
		},
		{
			name: "no holds means full stock",
			id:   1,
			mockCall: func(f productFields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ProductEntity{
					ID: 1, Name: "Pod Kit", Price: decimal.NewFromInt(10_000),
					StockCount: 100, MinOrder: 10, InStock: true,
				}, nil).Once()
				f.reservationRepo.On("SumActive", mock.Anything, uint64(1), mock.Anything).
					Return(int64(0), nil).Once()
			},
			wantAvailable: 100,
		},
		{
			name: "error: unknown product",
			id:   42,
			mockCall: func(f productFields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(42)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: hold sum fails",
			id:   1,
			mockCall: func(f productFields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.ProductEntity{
					ID: 1, StockCount: 100,
				}, nil).Once()
				f.reservationRepo.On("SumActive", mock.Anything, uint64(1), mock.Anything).
					Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newProductFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := product.NewProductApp(f.productRepo, f.reservationRepo)

			got, err := app.GetByID(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.AvailableStock != tt.wantAvailable {
				t.Fatalf("AvailableStock = %d, want %d", got.AvailableStock, tt.wantAvailable)
			}
		})
	}
}

func TestProductApp_List(t *testing.T) {
	t.Run("defaults page and per_page", func(t *testing.T) {
		f := newProductFields(t)
		f.productRepo.On("List", mock.Anything, 1, 20).
			Return([]model.ProductListItem{{ID: 1, Name: "Pod Kit"}}, int64(1), nil).Once()

		app := product.NewProductApp(f.productRepo, f.reservationRepo)
		got, err := app.List(context.Background(), 0, 0)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if got.Page != 1 || got.PerPage != 20 {
			t.Fatalf("pagination = %d/%d, want 1/20", got.Page, got.PerPage)
		}
		if got.TotalCount != 1 {
			t.Fatalf("TotalCount = %d, want 1", got.TotalCount)
		}
	})

	t.Run("caps oversized per_page", func(t *testing.T) {
		f := newProductFields(t)
		f.productRepo.On("List", mock.Anything, 2, 20).
			Return([]model.ProductListItem{}, int64(0), nil).Once()

		app := product.NewProductApp(f.productRepo, f.reservationRepo)
		if _, err := app.List(context.Background(), 2, 500); err != nil {
			t.Fatalf("List() error = %v", err)
		}
	})
}

func TestProductApp_Create(t *testing.T) {
	validReq := func() *model.ProductRequest {
		return &model.ProductRequest{
			Name:       "Pod Kit",
			Slug:       "pod-kit",
			Price:      decimal.NewFromInt(150_000),
			StockCount: 100,
			MinOrder:   10,
		}
	}

	tests := []struct {
		name     string
		req      *model.ProductRequest
		mockCall func(f productFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  validReq(),
			mockCall: func(f productFields) {
				f.productRepo.On("Insert", mock.Anything, mock.AnythingOfType("*model.ProductRequest")).
					Return(uint64(5), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ProductEntity{
					ID: 5, Name: "Pod Kit", Slug: "pod-kit",
					Price: decimal.NewFromInt(150_000), StockCount: 100, MinOrder: 10, InStock: true,
				}, nil).Once()
				f.reservationRepo.On("SumActive", mock.Anything, uint64(5), mock.Anything).
					Return(int64(0), nil).Once()
			},
		},
		{
			name: "error: duplicate slug",
			req:  validReq(),
			mockCall: func(f productFields) {
				f.productRepo.On("Insert", mock.Anything, mock.AnythingOfType("*model.ProductRequest")).
					Return(uint64(0), cerr.SetCustomError(constant.ErrConflict)).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name:    "error: missing name",
			req:     &model.ProductRequest{Slug: "pod-kit", Price: decimal.NewFromInt(150_000), MinOrder: 1},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: negative price",
			req: &model.ProductRequest{
				Name: "Pod Kit", Slug: "pod-kit",
				Price: decimal.NewFromInt(-1), MinOrder: 1,
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newProductFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := product.NewProductApp(f.productRepo, f.reservationRepo)

			got, err := app.Create(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.ID != 5 {
				t.Fatalf("ID = %d, want 5", got.ID)
			}
		})
	}
}

func TestProductApp_Update(t *testing.T) {
	req := &model.ProductRequest{
		Name:       "Pod Kit v2",
		Slug:       "pod-kit",
		Price:      decimal.NewFromInt(175_000),
		StockCount: 80,
		MinOrder:   10,
	}

	t.Run("success", func(t *testing.T) {
		f := newProductFields(t)
		f.productRepo.On("Update", mock.Anything, uint64(1), req).Return(nil).Once()

		app := product.NewProductApp(f.productRepo, f.reservationRepo)
		if err := app.Update(context.Background(), 1, req); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})

	t.Run("error: unknown product", func(t *testing.T) {
		f := newProductFields(t)
		f.productRepo.On("Update", mock.Anything, uint64(42), req).
			Return(cerr.SetCustomError(constant.ErrNotFound)).Once()

		app := product.NewProductApp(f.productRepo, f.reservationRepo)
		err := app.Update(context.Background(), 42, req)

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrNotFound])
		}
	})
}

func TestProductApp_Delete(t *testing.T) {
	tests := []struct {
		name     string
		id       uint64
		mockCall func(f productFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			id:   1,
			mockCall: func(f productFields) {
				f.productRepo.On("Delete", mock.Anything, uint64(1)).Return(nil).Once()
			},
		},
		{
			name: "error: unknown product",
			id:   42,
			mockCall: func(f productFields) {
				f.productRepo.On("Delete", mock.Anything, uint64(42)).
					Return(cerr.SetCustomError(constant.ErrNotFound)).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: referenced by orders",
			id:   1,
			mockCall: func(f productFields) {
				f.productRepo.On("Delete", mock.Anything, uint64(1)).
					Return(cerr.SetCustomError(constant.ErrConflict)).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newProductFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := product.NewProductApp(f.productRepo, f.reservationRepo)

			err := app.Delete(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestProductApp_UpdateStock(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newProductFields(t)
		f.productRepo.On("UpdateStock", mock.Anything, uint64(1), int64(250)).Return(nil).Once()

		app := product.NewProductApp(f.productRepo, f.reservationRepo)
		if err := app.UpdateStock(context.Background(), 1, &model.UpdateStockRequest{StockCount: 250}); err != nil {
			t.Fatalf("UpdateStock() error = %v", err)
		}
	})

	t.Run("error: unknown product", func(t *testing.T) {
		f := newProductFields(t)
		f.productRepo.On("UpdateStock", mock.Anything, uint64(42), int64(250)).
			Return(cerr.SetCustomError(constant.ErrNotFound)).Once()

		app := product.NewProductApp(f.productRepo, f.reservationRepo)
		err := app.UpdateStock(context.Background(), 42, &model.UpdateStockRequest{StockCount: 250})

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrNotFound])
		}
	})
}
