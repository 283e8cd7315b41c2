package vip

import (
	"context"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	settingrepo "github.com/vapehero/wholesale-backend/repository/setting"
	userrepo "github.com/vapehero/wholesale-backend/repository/user"
	"github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/vapehero/wholesale-backend/utils/logger"
	validatorx "github.com/vapehero/wholesale-backend/utils/validator"
	"go.uber.org/zap"
)

type VIPApp interface {
	CalculateDiscount(ctx context.Context, userID uint64, subtotal decimal.Decimal) (*model.DiscountResult, error)
	ReevaluateTierTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error
	GetTiers(ctx context.Context) (*model.VIPTierTable, error)
	UpdateTiers(ctx context.Context, table *model.VIPTierTable) error
}

type vipAppImpl struct {
	userRepo    userrepo.UserRepository
	settingRepo settingrepo.SettingRepository
}

func NewVIPApp(userRepo userrepo.UserRepository, settingRepo settingrepo.SettingRepository) VIPApp {
	return &vipAppImpl{userRepo: userRepo, settingRepo: settingRepo}
}

// DefaultTiers is the staircase used until an admin configures one.
func DefaultTiers() *model.VIPTierTable {
	return &model.VIPTierTable{Tiers: []model.VIPTier{
		{Level: constant.VIPLevelBronze, MinSpent: decimal.Zero, DiscountPercent: 0},
		{Level: constant.VIPLevelSilver, MinSpent: decimal.NewFromInt(10_000_000), DiscountPercent: 5},
		{Level: constant.VIPLevelGold, MinSpent: decimal.NewFromInt(50_000_000), DiscountPercent: 10},
		{Level: constant.VIPLevelDiamond, MinSpent: decimal.NewFromInt(100_000_000), DiscountPercent: 15},
	}}
}

// CalculateDiscount prices the buyer's current tier into the cart subtotal.
// Pure read: no side effects. A missing user or an unmatched tier falls back
// to no discount / the lowest tier.
func (s *vipAppImpl) CalculateDiscount(ctx context.Context, userID uint64, subtotal decimal.Decimal) (*model.DiscountResult, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[CalculateDiscount] get user", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return &model.DiscountResult{
			DiscountPercent: 0,
			DiscountAmount:  decimal.Zero,
			FinalAmount:     subtotal,
		}, nil
	}

	table, err := s.loadTiers(ctx)
	if err != nil {
		logger.Error("[CalculateDiscount] load tiers", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rule := findTier(table, user.VIPLevel)
	discountAmount := subtotal.Mul(decimal.NewFromInt(rule.DiscountPercent)).Div(decimal.NewFromInt(100))

	return &model.DiscountResult{
		DiscountPercent: rule.DiscountPercent,
		DiscountAmount:  discountAmount,
		FinalAmount:     subtotal.Sub(discountAmount),
	}, nil
}

// ReevaluateTierTx recomputes vip_level from total_spent: the highest tier
// whose threshold is met wins. The level is written only when it changed, so
// repeated evaluation is a no-op.
func (s *vipAppImpl) ReevaluateTierTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error {
	user, err := s.userRepo.GetTx(ctx, tx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	table, err := s.settingRepo.GetVIPTiersTx(ctx, tx, false)
	if err != nil {
		return err
	}
	if table == nil || len(table.Tiers) == 0 {
		table = DefaultTiers()
	}

	newLevel := evaluateLevel(table, user.TotalSpent, user.VIPLevel)
	if newLevel == user.VIPLevel {
		return nil
	}
	return s.userRepo.UpdateVIPLevelTx(ctx, tx, userID, newLevel)
}

func (s *vipAppImpl) GetTiers(ctx context.Context) (*model.VIPTierTable, error) {
	table, err := s.loadTiers(ctx)
	if err != nil {
		logger.Error("[GetTiers] load tiers", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return table, nil
}

func (s *vipAppImpl) UpdateTiers(ctx context.Context, table *model.VIPTierTable) error {
	if err := validatorx.ValidateStruct(table); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	seen := make(map[constant.VIPLevel]struct{}, len(table.Tiers))
	for _, tier := range table.Tiers {
		if tier.MinSpent.IsNegative() {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if _, dup := seen[tier.Level]; dup {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		seen[tier.Level] = struct{}{}
	}

	sort.Slice(table.Tiers, func(i, j int) bool {
		return table.Tiers[i].MinSpent.LessThan(table.Tiers[j].MinSpent)
	})

	if err := s.settingRepo.UpsertVIPTiers(ctx, table); err != nil {
		logger.Error("[UpdateTiers] upsert tiers", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *vipAppImpl) loadTiers(ctx context.Context) (*model.VIPTierTable, error) {
	table, err := s.settingRepo.GetVIPTiers(ctx)
	if err != nil {
		return nil, err
	}
	if table == nil || len(table.Tiers) == 0 {
		return DefaultTiers(), nil
	}
	return table, nil
}

// findTier returns the rule for a level, defaulting to the cheapest tier when
// the level is unset or not present in the table.
func findTier(table *model.VIPTierTable, level constant.VIPLevel) model.VIPTier {
	lowest := table.Tiers[0]
	for _, tier := range table.Tiers {
		if tier.Level == level {
			return tier
		}
		if tier.MinSpent.LessThan(lowest.MinSpent) {
			lowest = tier
		}
	}
	return lowest
}

// evaluateLevel picks the highest tier whose threshold total_spent meets.
// When the configured table has no tier the user qualifies for (no
// zero-threshold base tier), the current level is kept unchanged.
func evaluateLevel(table *model.VIPTierTable, totalSpent decimal.Decimal, current constant.VIPLevel) constant.VIPLevel {
	level := current
	var bestMin decimal.Decimal
	matched := false
	for _, tier := range table.Tiers {
		if !totalSpent.GreaterThanOrEqual(tier.MinSpent) {
			continue
		}
		if !matched || tier.MinSpent.GreaterThanOrEqual(bestMin) {
			level = tier.Level
			bestMin = tier.MinSpent
			matched = true
		}
	}
	return level
}
