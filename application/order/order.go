package order

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	inventoryapp "github.com/vapehero/wholesale-backend/application/inventory"
	vipapp "github.com/vapehero/wholesale-backend/application/vip"
	"github.com/vapehero/wholesale-backend/cmd/config"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	orderrepo "github.com/vapehero/wholesale-backend/repository/order"
	productrepo "github.com/vapehero/wholesale-backend/repository/product"
	txrepo "github.com/vapehero/wholesale-backend/repository/tx"
	userrepo "github.com/vapehero/wholesale-backend/repository/user"
	"github.com/vapehero/wholesale-backend/thirdparty/notifier"
	"github.com/vapehero/wholesale-backend/thirdparty/rabbitmq"
	"github.com/vapehero/wholesale-backend/thirdparty/sms"
	"github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/vapehero/wholesale-backend/utils/logger"
	"go.uber.org/zap"
)

// OrderApp assembles orders against reserved stock and settles them on
// payment. Placing an order holds stock without decrementing it; only the
// transition to paid burns the holds into the product ledger.
type OrderApp interface {
	CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderResponse, error)
	MarkPaid(ctx context.Context, orderID string) error
	CancelOrder(ctx context.Context, orderID string) error
	RejectOrder(ctx context.Context, orderID string) error
	UpdateStatus(ctx context.Context, orderID string, req *model.UpdateOrderStatusRequest) error
	UploadReceipt(ctx context.Context, userID uint64, orderID, receiptURL string) error
	GetOrder(ctx context.Context, userID uint64, isAdmin bool, orderID string) (*model.OrderDetail, error)
	ListOrders(ctx context.Context, filter *model.OrderListFilter) (*model.OrderListResponse, error)
}

type orderAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	orderRepo    orderrepo.OrderRepository
	productRepo  productrepo.ProductRepository
	userRepo     userrepo.UserRepository
	inventoryApp inventoryapp.InventoryApp
	vipApp       vipapp.VIPApp
	publisher    *rabbitmq.Publisher
	notifier     notifier.Publisher
	smsGateway   sms.Gateway
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository,
	productRepo productrepo.ProductRepository, userRepo userrepo.UserRepository,
	inventoryApp inventoryapp.InventoryApp, vipApp vipapp.VIPApp,
	publisher *rabbitmq.Publisher, notif notifier.Publisher, smsGateway sms.Gateway) OrderApp {
	return &orderAppImpl{
		config:       config,
		txRepo:       txRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		inventoryApp: inventoryApp,
		vipApp:       vipApp,
		publisher:    publisher,
		notifier:     notif,
		smsGateway:   smsGateway,
	}
}

// CreateOrder validates every line against the catalog, prices the cart with
// the buyer's tier discount, then inserts the order and reserves stock for
// each line inside one transaction. Either every line gets a hold or the
// whole order rolls back; no partial holds survive a failed line.
func (s *orderAppImpl) CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[CreateOrder] get user", zap.Uint64("user_id", userID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if user.Status != constant.UserStatusActive {
		return nil, errors.SetCustomErrorf(constant.ErrForbidden, "account is not approved for ordering")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	subtotal := decimal.Zero
	items := make([]model.OrderItemEntity, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.productRepo.GetByIDTx(ctx, tx, line.ProductID)
		if err != nil {
			logger.Error("[CreateOrder] get product", zap.Uint64("product_id", line.ProductID), zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if product == nil {
			return nil, errors.SetCustomErrorf(constant.ErrNotFound, "product %d not found", line.ProductID)
		}
		if !product.InStock || product.StockCount < line.Quantity {
			return nil, errors.SetCustomErrorf(constant.ErrOutOfStock, "product %s is out of stock", product.Name)
		}
		if line.Quantity < product.MinOrder {
			return nil, errors.SetCustomErrorf(constant.ErrBelowMinimumOrder,
				"product %s requires a minimum of %d units", product.Name, product.MinOrder)
		}

		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(line.Quantity)))
		items = append(items, model.OrderItemEntity{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
		})
	}

	discount, err := s.vipApp.CalculateDiscount(ctx, userID, subtotal)
	if err != nil {
		return nil, err
	}

	orderID, err := s.orderRepo.NextOrderIDTx(ctx, tx)
	if err != nil {
		logger.Error("[CreateOrder] next order id", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTx{
		ID:              orderID,
		UserID:          userID,
		Status:          constant.OrderStatusPendingPayment,
		TotalAmount:     subtotal,
		DiscountAmount:  discount.DiscountAmount,
		FinalAmount:     discount.FinalAmount,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
	}); err != nil {
		var ce errors.CustomError
		if goerrors.As(err, &ce) {
			return nil, ce
		}
		logger.Error("[CreateOrder] insert order", zap.String("order_id", orderID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	reservations := make([]*model.Reservation, 0, len(items))
	for _, it := range items {
		reservation, err := s.inventoryApp.ReserveTx(ctx, tx, it.ProductID, it.Quantity, orderID)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("order_id", orderID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	expiresAt := time.Now().Add(s.config.Order.HoldDuration)
	if len(reservations) > 0 {
		expiresAt = reservations[0].ExpiresAt
	}
	for _, reservation := range reservations {
		s.inventoryApp.CacheReservation(ctx, reservation)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderExpiration(rabbitmq.OrderExpirationMessage{
			OrderID:   orderID,
			UserID:    userID,
			ExpiresAt: expiresAt,
		}); err != nil {
			logger.Error("[CreateOrder] publish expiration", zap.String("order_id", orderID), zap.Error(err))
		}
	}

	s.notifyNewOrder(user, orderID, discount.FinalAmount)

	return &model.OrderResponse{
		OrderID:        orderID,
		Status:         string(constant.OrderStatusPendingPayment),
		TotalAmount:    subtotal,
		DiscountAmount: discount.DiscountAmount,
		FinalAmount:    discount.FinalAmount,
		ExpiresAt:      expiresAt,
	}, nil
}

func (s *orderAppImpl) notifyNewOrder(user *model.UserEntity, orderID string, finalAmount decimal.Decimal) {
	if s.notifier == nil {
		return
	}
	now := time.Now()
	s.notifier.Publish(constant.TopicAdmin, notifier.Event{
		ID:          uuid.NewString(),
		Type:        notifier.EventOrderNew,
		Title:       fmt.Sprintf("New order %s", orderID),
		Description: fmt.Sprintf("%s placed an order worth %s", user.StoreName, finalAmount.StringFixed(0)),
		Link:        fmt.Sprintf("/admin/orders/%s", orderID),
		OrderID:     orderID,
		UserID:      user.ID,
		Timestamp:   now,
	})
	s.notifier.Publish(fmt.Sprintf(constant.TopicUserFormat, user.ID), notifier.Event{
		ID:          uuid.NewString(),
		Type:        notifier.EventOrderNew,
		Title:       fmt.Sprintf("Order %s registered", orderID),
		Description: "Your order is awaiting payment",
		OrderID:     orderID,
		UserID:      user.ID,
		Timestamp:   now,
	})
}

// MarkPaid settles the order: decrement stock per line, release the holds,
// add the final amount to the buyer's lifetime spend and reevaluate the tier.
// The guarded status update makes the whole thing apply exactly once; a
// second call finds the order already paid and changes nothing.
func (s *orderAppImpl) MarkPaid(ctx context.Context, orderID string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[MarkPaid] begin tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[MarkPaid] get order", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	ok, err := s.orderRepo.TransitionStatusTx(ctx, tx, orderID, constant.OrderStatusPendingPayment, constant.OrderStatusPaid)
	if err != nil {
		logger.Error("[MarkPaid] transition status", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomErrorf(constant.ErrInvalidOrderStatus,
			"order %s is not awaiting payment", orderID)
	}

	items, err := s.orderRepo.GetOrderItemsTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[MarkPaid] get order items", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}

	for _, it := range items {
		if err := s.productRepo.DecrementStockTx(ctx, tx, it.ProductID, it.Quantity); err != nil {
			var ce errors.CustomError
			if goerrors.As(err, &ce) {
				return ce
			}
			logger.Error("[MarkPaid] decrement stock", zap.Uint64("product_id", it.ProductID), zap.Error(err))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.inventoryApp.ReleaseTx(ctx, tx, it.ProductID, orderID); err != nil {
			logger.Error("[MarkPaid] release reservation", zap.Uint64("product_id", it.ProductID), zap.Error(err))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.userRepo.AddSpentTx(ctx, tx, order.UserID, order.FinalAmount); err != nil {
		logger.Error("[MarkPaid] add spent", zap.Uint64("user_id", order.UserID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.vipApp.ReevaluateTierTx(ctx, tx, order.UserID); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[MarkPaid] commit tx", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	for _, it := range items {
		s.inventoryApp.DropCachedReservation(ctx, it.ProductID, orderID)
	}
	return nil
}

func (s *orderAppImpl) CancelOrder(ctx context.Context, orderID string) error {
	return s.terminateUnpaid(ctx, orderID, constant.OrderStatusCancelled)
}

func (s *orderAppImpl) RejectOrder(ctx context.Context, orderID string) error {
	return s.terminateUnpaid(ctx, orderID, constant.OrderStatusRejected)
}

// terminateUnpaid closes an order that never reached payment and gives its
// holds back. Only pending_payment orders can be closed this way; the same
// path serves buyer cancels, admin rejects and the delayed-expiry consumer.
func (s *orderAppImpl) terminateUnpaid(ctx context.Context, orderID string, to constant.OrderStatus) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[terminateUnpaid] begin tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[terminateUnpaid] get order", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	ok, err := s.orderRepo.TransitionStatusTx(ctx, tx, orderID, constant.OrderStatusPendingPayment, to)
	if err != nil {
		logger.Error("[terminateUnpaid] transition status", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomErrorf(constant.ErrInvalidOrderStatus,
			"order %s is not awaiting payment", orderID)
	}

	items, err := s.orderRepo.GetOrderItemsTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[terminateUnpaid] get order items", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	for _, it := range items {
		if err := s.inventoryApp.ReleaseTx(ctx, tx, it.ProductID, orderID); err != nil {
			logger.Error("[terminateUnpaid] release reservation", zap.Uint64("product_id", it.ProductID), zap.Error(err))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[terminateUnpaid] commit tx", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	for _, it := range items {
		s.inventoryApp.DropCachedReservation(ctx, it.ProductID, orderID)
	}
	return nil
}

// UpdateStatus is the admin-facing dispatcher. Paid and the terminal unpaid
// states run their settlement paths; forward fulfilment moves (processing,
// shipped) only advance, never rewind.
func (s *orderAppImpl) UpdateStatus(ctx context.Context, orderID string, req *model.UpdateOrderStatusRequest) error {
	switch req.Status {
	case constant.OrderStatusPaid:
		return s.MarkPaid(ctx, orderID)
	case constant.OrderStatusCancelled:
		return s.CancelOrder(ctx, orderID)
	case constant.OrderStatusRejected:
		return s.RejectOrder(ctx, orderID)
	case constant.OrderStatusProcessing, constant.OrderStatusShipped:
		return s.advanceFulfilment(ctx, orderID, req)
	default:
		return errors.SetCustomErrorf(constant.ErrInvalidRequest, "unknown order status %s", req.Status)
	}
}

func (s *orderAppImpl) advanceFulfilment(ctx context.Context, orderID string, req *model.UpdateOrderStatusRequest) error {
	if req.Status == constant.OrderStatusShipped && req.TrackingCode == "" {
		return errors.SetCustomErrorf(constant.ErrInvalidRequest, "tracking code is required to ship an order")
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[advanceFulfilment] begin tx", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[advanceFulfilment] get order", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if !constant.CanTransitionOrder(order.Status, req.Status) {
		return errors.SetCustomErrorf(constant.ErrInvalidOrderStatus,
			"order %s cannot move from %s to %s", orderID, order.Status, req.Status)
	}

	ok, err := s.orderRepo.TransitionStatusTx(ctx, tx, orderID, order.Status, req.Status)
	if err != nil {
		logger.Error("[advanceFulfilment] transition status", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomErrorf(constant.ErrInvalidOrderStatus,
			"order %s cannot move from %s to %s", orderID, order.Status, req.Status)
	}

	if req.TrackingCode != "" {
		if err := s.orderRepo.UpdateTrackingCodeTx(ctx, tx, orderID, req.TrackingCode); err != nil {
			logger.Error("[advanceFulfilment] update tracking code", zap.String("order_id", orderID), zap.Error(err))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[advanceFulfilment] commit tx", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if req.Status == constant.OrderStatusShipped && s.smsGateway != nil {
		s.smsShipped(ctx, order.UserID, orderID, req.TrackingCode)
	}
	return nil
}

func (s *orderAppImpl) smsShipped(ctx context.Context, userID uint64, orderID, trackingCode string) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil || user == nil {
		logger.Warn("[smsShipped] get user", zap.Uint64("user_id", userID), zap.Error(err))
		return
	}
	message := fmt.Sprintf("Order %s shipped. Tracking code: %s", orderID, trackingCode)
	if err := s.smsGateway.SendNotification(ctx, user.Phone, message); err != nil {
		logger.Warn("[smsShipped] send sms", zap.String("order_id", orderID), zap.Error(err))
	}
}

// UploadReceipt records the payment receipt the buyer uploaded. It never
// settles the order; an admin confirms the payment separately.
func (s *orderAppImpl) UploadReceipt(ctx context.Context, userID uint64, orderID, receiptURL string) error {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[UploadReceipt] get order", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if order.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	if order.Status != constant.OrderStatusPendingPayment {
		return errors.SetCustomErrorf(constant.ErrInvalidOrderStatus,
			"order %s is not awaiting payment", orderID)
	}

	if err := s.orderRepo.UpdateReceiptURL(ctx, orderID, receiptURL); err != nil {
		logger.Error("[UploadReceipt] update receipt url", zap.String("order_id", orderID), zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, userID uint64, isAdmin bool, orderID string) (*model.OrderDetail, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("order_id", orderID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !isAdmin && order.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	items, err := s.orderRepo.GetOrderItems(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order items", zap.String("order_id", orderID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderDetail{OrderEntity: *order, Items: items}, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, filter *model.OrderListFilter) (*model.OrderListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 || filter.PerPage > 100 {
		filter.PerPage = 20
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderListResponse{
		Items:      orders,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}
