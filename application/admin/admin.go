package admin

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	orderrepo "github.com/vapehero/wholesale-backend/repository/order"
	settingrepo "github.com/vapehero/wholesale-backend/repository/setting"
	userrepo "github.com/vapehero/wholesale-backend/repository/user"
	"github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/vapehero/wholesale-backend/utils/logger"
	validatorx "github.com/vapehero/wholesale-backend/utils/validator"
	"go.uber.org/zap"
)

// AdminApp backs the back-office: account approval, the user roster, the
// dashboard counters and the marketing code configuration.
type AdminApp interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
	ListUsers(ctx context.Context, filter *model.UserListFilter) (*model.UserListResponse, error)
	ApproveUser(ctx context.Context, userID uint64) error
	RejectUser(ctx context.Context, userID uint64) error
	UpdateUser(ctx context.Context, userID uint64, req *model.UpdateUserRequest) error
	GetDiscountCodes(ctx context.Context) (*model.DiscountCodeTable, error)
	UpdateDiscountCodes(ctx context.Context, table *model.DiscountCodeTable) error
}

type adminAppImpl struct {
	userRepo    userrepo.UserRepository
	orderRepo   orderrepo.OrderRepository
	settingRepo settingrepo.SettingRepository
}

func NewAdminApp(userRepo userrepo.UserRepository, orderRepo orderrepo.OrderRepository,
	settingRepo settingrepo.SettingRepository) AdminApp {
	return &adminAppImpl{userRepo: userRepo, orderRepo: orderRepo, settingRepo: settingRepo}
}

// DashboardStats aggregates the landing-page counters. Revenue counts every
// order that reached paid, whatever fulfilment state it is in now.
func (s *adminAppImpl) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}
	settled := []constant.OrderStatus{
		constant.OrderStatusPaid,
		constant.OrderStatusProcessing,
		constant.OrderStatusShipped,
	}

	var err error
	if stats.Users.Total, err = s.userRepo.Count(ctx); err != nil {
		logger.Error("[DashboardStats] count users", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stats.Users.Pending, err = s.userRepo.CountByStatus(ctx, constant.UserStatusPending); err != nil {
		logger.Error("[DashboardStats] count pending users", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stats.Orders.Total, err = s.orderRepo.CountByStatuses(ctx, allOrderStatuses()); err != nil {
		logger.Error("[DashboardStats] count orders", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stats.Orders.Pending, err = s.orderRepo.CountByStatuses(ctx,
		[]constant.OrderStatus{constant.OrderStatusPendingPayment}); err != nil {
		logger.Error("[DashboardStats] count pending orders", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stats.Revenue.Total, err = s.orderRepo.SumFinalAmount(ctx, settled, sql.NullTime{}); err != nil {
		logger.Error("[DashboardStats] sum revenue", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	monthStart := time.Now().AddDate(0, -1, 0)
	if stats.Revenue.Monthly, err = s.orderRepo.SumFinalAmount(ctx, settled,
		sql.NullTime{Time: monthStart, Valid: true}); err != nil {
		logger.Error("[DashboardStats] sum monthly revenue", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return stats, nil
}

func allOrderStatuses() []constant.OrderStatus {
	return []constant.OrderStatus{
		constant.OrderStatusPendingPayment,
		constant.OrderStatusPaid,
		constant.OrderStatusProcessing,
		constant.OrderStatusShipped,
		constant.OrderStatusRejected,
		constant.OrderStatusCancelled,
	}
}

func (s *adminAppImpl) ListUsers(ctx context.Context, filter *model.UserListFilter) (*model.UserListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 || filter.PerPage > 100 {
		filter.PerPage = 20
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListUsers] list users", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserListResponse{
		Items:      users,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *adminAppImpl) ApproveUser(ctx context.Context, userID uint64) error {
	return s.setUserStatus(ctx, userID, constant.UserStatusActive)
}

func (s *adminAppImpl) RejectUser(ctx context.Context, userID uint64) error {
	return s.setUserStatus(ctx, userID, constant.UserStatusRejected)
}

func (s *adminAppImpl) setUserStatus(ctx context.Context, userID uint64, status constant.UserStatus) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[setUserStatus] get user", zap.Uint64("user_id", userID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		logger.Error("[setUserStatus] update status", zap.Uint64("user_id", userID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) UpdateUser(ctx context.Context, userID uint64, req *model.UpdateUserRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[UpdateUser] get user", zap.Uint64("user_id", userID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, req); err != nil {
		logger.Error("[UpdateUser] update profile", zap.Uint64("user_id", userID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) GetDiscountCodes(ctx context.Context) (*model.DiscountCodeTable, error) {
	table, err := s.settingRepo.GetDiscountCodes(ctx)
	if err != nil {
		logger.Error("[GetDiscountCodes] load codes", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if table == nil {
		table = &model.DiscountCodeTable{Codes: []model.DiscountCode{}}
	}
	return table, nil
}

// UpdateDiscountCodes replaces the whole code list. Codes are typed and
// checked here instead of landing as free-form JSON: unique codes, a
// non-negative value, percentages capped at 100 and a window that does not
// end before it starts.
func (s *adminAppImpl) UpdateDiscountCodes(ctx context.Context, table *model.DiscountCodeTable) error {
	if err := validatorx.ValidateStruct(table); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	seen := make(map[string]struct{}, len(table.Codes))
	for _, code := range table.Codes {
		if code.Value.IsNegative() {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if code.Type == constant.DiscountTypePercentage && code.Value.GreaterThan(decimal.NewFromInt(100)) {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if !code.EndDate.IsZero() && !code.StartDate.IsZero() && code.EndDate.Before(code.StartDate) {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if _, dup := seen[code.Code]; dup {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		seen[code.Code] = struct{}{}
	}

	if err := s.settingRepo.UpsertDiscountCodes(ctx, table); err != nil {
		logger.Error("[UpdateDiscountCodes] upsert codes", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
