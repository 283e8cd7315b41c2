package admin_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/application/admin"
	"github.com/vapehero/wholesale-backend/constant"
	ordermocks "github.com/vapehero/wholesale-backend/mocks/repository/order"
	settingmocks "github.com/vapehero/wholesale-backend/mocks/repository/setting"
	usermocks "github.com/vapehero/wholesale-backend/mocks/repository/user"
	"github.com/vapehero/wholesale-backend/model"
	cerr "github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

type adminFields struct {
	userRepo    *usermocks.UserRepository
	orderRepo   *ordermocks.OrderRepository
	settingRepo *settingmocks.SettingRepository
}

func newAdminFields(t *testing.T) adminFields {
	return adminFields{
		userRepo:    usermocks.NewUserRepository(t),
		orderRepo:   ordermocks.NewOrderRepository(t),
		settingRepo: settingmocks.NewSettingRepository(t),
	}
}

func TestAdminApp_DashboardStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newAdminFields(t)
		settled := []constant.OrderStatus{
			constant.OrderStatusPaid,
			constant.OrderStatusProcessing,
			constant.OrderStatusShipped,
		}

		f.userRepo.On("Count", mock.Anything).Return(int64(120), nil).Once()
		f.userRepo.On("CountByStatus", mock.Anything, constant.UserStatusPending).Return(int64(7), nil).Once()
		f.orderRepo.On("CountByStatuses", mock.Anything, mock.MatchedBy(func(ss []constant.OrderStatus) bool {
			return len(ss) == 6
		})).Return(int64(340), nil).Once()
		f.orderRepo.On("CountByStatuses", mock.Anything,
			[]constant.OrderStatus{constant.OrderStatusPendingPayment}).Return(int64(12), nil).Once()
		f.orderRepo.On("SumFinalAmount", mock.Anything, settled, sql.NullTime{}).
			Return(decimal.NewFromInt(420_000_000), nil).Once()
		f.orderRepo.On("SumFinalAmount", mock.Anything, settled, mock.MatchedBy(func(since sql.NullTime) bool {
			return since.Valid
		})).Return(decimal.NewFromInt(35_000_000), nil).Once()

		app := admin.NewAdminApp(f.userRepo, f.orderRepo, f.settingRepo)
		got, err := app.DashboardStats(context.Background())
		if err != nil {
			t.Fatalf("DashboardStats() error = %v", err)
		}
		if got.Users.Total != 120 || got.Users.Pending != 7 {
			t.Fatalf("users = %d/%d, want 120/7", got.Users.Total, got.Users.Pending)
		}
		if got.Orders.Total != 340 || got.Orders.Pending != 12 {
			t.Fatalf("orders = %d/%d, want 340/12", got.Orders.Total, got.Orders.Pending)
		}
		if !got.Revenue.Total.Equal(decimal.NewFromInt(420_000_000)) {
			t.Fatalf("Revenue.Total = %s, want 420000000", got.Revenue.Total)
		}
		if !got.Revenue.Monthly.Equal(decimal.NewFromInt(35_000_000)) {
			t.Fatalf("Revenue.Monthly = %s, want 35000000", got.Revenue.Monthly)
		}
	})

	t.Run("error: counting users fails", func(t *testing.T) {
		f := newAdminFields(t)
		f.userRepo.On("Count", mock.Anything).Return(int64(0), errors.New("db error")).Once()

		app := admin.NewAdminApp(f.userRepo, f.orderRepo, f.settingRepo)
		_, err := app.DashboardStats(context.Background())

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInternal])
		}
	})
}

func TestAdminApp_ApproveUser(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint64
		mockCall func(f adminFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success",
			userID: 1,
			mockCall: func(f adminFields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: uint64(1)}).
					Return(&model.UserEntity{ID: 1, Status: constant.UserStatusPending}, nil).Once()
				f.userRepo.On("UpdateStatus", mock.Anything, uint64(1), constant.UserStatusActive).
					Return(nil).Once()
			},
		},
		{
			name:   "error: unknown user",
			userID: 42,
			mockCall: func(f adminFields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: uint64(42)}).
					Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := admin.NewAdminApp(f.userRepo, f.orderRepo, f.settingRepo)

			err := app.ApproveUser(context.Background(), tt.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApproveUser() error = %v, wantErr %v", err, tt.wantErr)
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

func TestAdminApp_RejectUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newAdminFields(t)
		f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: uint64(1)}).
			Return(&model.UserEntity{ID: 1, Status: constant.UserStatusPending}, nil).Once()
		f.userRepo.On("UpdateStatus", mock.Anything, uint64(1), constant.UserStatusRejected).
			Return(nil).Once()

		app := admin.NewAdminApp(f.userRepo, f.orderRepo, f.settingRepo)
		if err := app.RejectUser(context.Background(), 1); err != nil {
			t.Fatalf("RejectUser() error = %v", err)
		}
	})
}

func TestAdminApp_UpdateDiscountCodes(t *testing.T) {
	tests := []struct {
		name     string
		args     *model.DiscountCodeTable
		mockCall func(f adminFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			args: &model.DiscountCodeTable{Codes: []model.DiscountCode{
				{Code: "SUMMER10", Name: "Summer sale", Type: constant.DiscountTypePercentage,
					Value: decimal.NewFromInt(10), IsActive: true},
				{Code: "WELCOME", Name: "First order", Type: constant.DiscountTypeFixed,
					Value: decimal.NewFromInt(500_000), MinPurchase: decimal.NewFromInt(5_000_000)},
			}},
			mockCall: func(f adminFields) {
				f.settingRepo.On("UpsertDiscountCodes", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "error: duplicate code",
			args: &model.DiscountCodeTable{Codes: []model.DiscountCode{
				{Code: "SUMMER10", Name: "Summer sale", Type: constant.DiscountTypePercentage, Value: decimal.NewFromInt(10)},
				{Code: "SUMMER10", Name: "Summer again", Type: constant.DiscountTypeFixed, Value: decimal.NewFromInt(1)},
			}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: percentage over 100",
			args: &model.DiscountCodeTable{Codes: []model.DiscountCode{
				{Code: "ALL", Name: "Too generous", Type: constant.DiscountTypePercentage, Value: decimal.NewFromInt(150)},
			}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown type",
			args: &model.DiscountCodeTable{Codes: []model.DiscountCode{
				{Code: "ODD", Name: "Odd one", Type: "bogus", Value: decimal.NewFromInt(1)},
			}},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newAdminFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := admin.NewAdminApp(f.userRepo, f.orderRepo, f.settingRepo)

			err := app.UpdateDiscountCodes(context.Background(), tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateDiscountCodes() error = %v, wantErr %v", err, tt.wantErr)
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

func TestAdminApp_GetDiscountCodes(t *testing.T) {
	t.Run("no configured row yields an empty list", func(t *testing.T) {
		f := newAdminFields(t)
		f.settingRepo.On("GetDiscountCodes", mock.Anything).Return(nil, nil).Once()

		app := admin.NewAdminApp(f.userRepo, f.orderRepo, f.settingRepo)
		got, err := app.GetDiscountCodes(context.Background())
		if err != nil {
			t.Fatalf("GetDiscountCodes() error = %v", err)
		}
		if got == nil || len(got.Codes) != 0 {
			t.Fatalf("GetDiscountCodes() = %+v, want empty table", got)
		}
	})
}

func TestAdminApp_ListUsers(t *testing.T) {
	t.Run("defaults pagination", func(t *testing.T) {
		f := newAdminFields(t)
		f.userRepo.On("List", mock.Anything, mock.MatchedBy(func(filter *model.UserListFilter) bool {
			return filter.Page == 1 && filter.PerPage == 20
		})).Return([]model.UserEntity{{ID: 1}}, int64(1), nil).Once()

		app := admin.NewAdminApp(f.userRepo, f.orderRepo, f.settingRepo)
		got, err := app.ListUsers(context.Background(), &model.UserListFilter{})
		if err != nil {
			t.Fatalf("ListUsers() error = %v", err)
		}
		if got.TotalCount != 1 {
			t.Fatalf("TotalCount = %d, want 1", got.TotalCount)
		}
	})
}
