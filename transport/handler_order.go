package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	utilsContext "github.com/vapehero/wholesale-backend/utils/context"
	"github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/vapehero/wholesale-backend/utils/logger"
	validatorx "github.com/vapehero/wholesale-backend/utils/validator"
	"go.uber.org/zap"
)

const maxReceiptSize = 5 << 20

var receiptExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".pdf":  {},
}

// CreateOrder handler
// @Summary Place an order
// @Description Price the cart, apply the tier discount and hold stock for every line
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.OrderRequest true "Order Request"
// @Success 200 {object} model.OrderResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListMyOrders handler
// @Summary List own orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param page query int false "Page"
// @Success 200 {object} model.OrderListResponse
// @Router /api/v1/orders [get]
func (s *RestHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.OrderApp.ListOrders(ctx, &model.OrderListFilter{
		UserID:  userID,
		Status:  constant.OrderStatus(r.URL.Query().Get("status")),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Order detail
// @Description Order detail with line items; buyers see only their own orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} model.OrderDetail
// @Failure 404 {object} errorResponse
// @Router /api/v1/orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.OrderApp.GetOrder(ctx, userID, utilsContext.IsAdmin(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelMyOrder handler
// @Summary Cancel own order
// @Description Cancel an order that is still awaiting payment and release its holds
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/orders/{id}/cancel [post]
func (s *RestHandler) CancelMyOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	orderID := mux.Vars(r)["id"]

	// ownership check before touching the order
	if _, err := s.OrderApp.GetOrder(ctx, userID, utilsContext.IsAdmin(ctx), orderID); err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.CancelOrder(ctx, orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"status": string(constant.OrderStatusCancelled)})
}

// UploadReceipt handler
// @Summary Upload payment receipt
// @Description Attach a bank transfer receipt to an order awaiting payment
// @Tags Orders
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param receipt formData file true "Receipt image"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/orders/{id}/receipt [post]
func (s *RestHandler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	orderID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(maxReceiptSize); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	file, header, err := r.FormFile("receipt")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := receiptExtensions[ext]; !ok {
		writeError(w, errors.SetCustomErrorf(constant.ErrInvalidRequest, "unsupported receipt file type %s", ext))
		return
	}

	name := uuid.NewString() + ext
	if err := saveReceipt(s.Config.Order.ReceiptDir, name, file); err != nil {
		logger.Error("[UploadReceipt] save file", zap.String("order_id", orderID), zap.Error(err))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	receiptURL := "/uploads/receipts/" + name
	if err := s.OrderApp.UploadReceipt(ctx, userID, orderID, receiptURL); err != nil {
		// rejected upload must not leave an orphan file behind
		if rmErr := os.Remove(filepath.Join(s.Config.Order.ReceiptDir, name)); rmErr != nil {
			logger.Error("[UploadReceipt] remove rejected file", zap.String("order_id", orderID), zap.Error(rmErr))
		}
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"receipt_url": receiptURL})
}

func saveReceipt(dir, name string, src io.Reader) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, src)
	return err
}

// InternalCancelOrder handler, called by the delayed-expiry consumer when a
// pending order's hold window runs out. Idempotent from the caller's side: an
// order that already left pending_payment reports an invalid status.
func (s *RestHandler) InternalCancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := mux.Vars(r)["id"]

	if err := s.OrderApp.CancelOrder(ctx, orderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"status": string(constant.OrderStatusCancelled)})
}
