package product

import (
	"context"
	goerrors "errors"
	"time"

	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	productrepo "github.com/vapehero/wholesale-backend/repository/product"
	reservationrepo "github.com/vapehero/wholesale-backend/repository/reservation"
	"github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/vapehero/wholesale-backend/utils/logger"
	validatorx "github.com/vapehero/wholesale-backend/utils/validator"
	"go.uber.org/zap"
)

// ProductApp serves the buyer-facing catalog. Stock numbers shown here are
// availability, i.e. on-hand stock minus active holds, so a buyer never sees
// units another order is sitting on.
type ProductApp interface {
	List(ctx context.Context, page, perPage int) (*model.ProductListResponse, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error)
	Create(ctx context.Context, req *model.ProductRequest) (*model.ProductDetail, error)
	Update(ctx context.Context, id uint64, req *model.ProductRequest) error
	Delete(ctx context.Context, id uint64) error
	UpdateStock(ctx context.Context, id uint64, req *model.UpdateStockRequest) error
}

type productAppImpl struct {
	productRepo     productrepo.ProductRepository
	reservationRepo reservationrepo.ReservationRepository
}

func NewProductApp(productRepo productrepo.ProductRepository, reservationRepo reservationrepo.ReservationRepository) ProductApp {
	return &productAppImpl{
		productRepo:     productRepo,
		reservationRepo: reservationRepo,
	}
}

func (s *productAppImpl) List(ctx context.Context, page, perPage int) (*model.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	items, total, err := s.productRepo.List(ctx, page, perPage)
	if err != nil {
		logger.Error("[List] list products", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *productAppImpl) GetByID(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] get product", zap.Uint64("product_id", id), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	reserved, err := s.reservationRepo.SumActive(ctx, id, time.Now())
	if err != nil {
		logger.Error("[GetByID] sum active reservations", zap.Uint64("product_id", id), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductDetail{
		ProductEntity:  *product,
		AvailableStock: product.StockCount - reserved,
	}, nil
}

func (s *productAppImpl) Create(ctx context.Context, req *model.ProductRequest) (*model.ProductDetail, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Price.IsNegative() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	id, err := s.productRepo.Insert(ctx, req)
	if err != nil {
		var ce errors.CustomError
		if goerrors.As(err, &ce) {
			return nil, ce
		}
		logger.Error("[Create] insert product", zap.String("slug", req.Slug), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.GetByID(ctx, id)
}

func (s *productAppImpl) Update(ctx context.Context, id uint64, req *model.ProductRequest) error {
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Price.IsNegative() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.productRepo.Update(ctx, id, req); err != nil {
		var ce errors.CustomError
		if goerrors.As(err, &ce) {
			return ce
		}
		logger.Error("[Update] update product", zap.Uint64("product_id", id), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *productAppImpl) Delete(ctx context.Context, id uint64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		var ce errors.CustomError
		if goerrors.As(err, &ce) {
			return ce
		}
		logger.Error("[Delete] delete product", zap.Uint64("product_id", id), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// UpdateStock sets the absolute on-hand count and keeps the in_stock flag in
// step with it. Active holds are untouched; availability follows on its own.
func (s *productAppImpl) UpdateStock(ctx context.Context, id uint64, req *model.UpdateStockRequest) error {
	if err := s.productRepo.UpdateStock(ctx, id, req.StockCount); err != nil {
		var ce errors.CustomError
		if goerrors.As(err, &ce) {
			return ce
		}
		logger.Error("[UpdateStock] update stock", zap.Uint64("product_id", id), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
