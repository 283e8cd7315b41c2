package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/model"
	"github.com/vapehero/wholesale-backend/utils/errors"
	validatorx "github.com/vapehero/wholesale-backend/utils/validator"
)

// Dashboard handler
// @Summary Dashboard counters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Router /api/v1/admin/dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.DashboardStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListUsers handler
// @Summary List accounts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param search query string false "Search by name, store or phone"
// @Param page query int false "Page"
// @Success 200 {object} model.UserListResponse
// @Router /api/v1/admin/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.AdminApp.ListUsers(r.Context(), &model.UserListFilter{
		Status:  constant.UserStatus(r.URL.Query().Get("status")),
		Search:  r.URL.Query().Get("search"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveUser handler
// @Summary Approve a pending account
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} successResponse
// @Router /api/v1/admin/users/{id}/approve [post]
func (s *RestHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.ApproveUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": string(constant.UserStatusActive)})
}

// RejectUser handler
// @Summary Reject a pending account
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} successResponse
// @Router /api/v1/admin/users/{id}/reject [post]
func (s *RestHandler) RejectUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.RejectUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": string(constant.UserStatusRejected)})
}

// UpdateUser handler
// @Summary Edit an account
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body model.UpdateUserRequest true "Fields to update"
// @Success 200 {object} successResponse
// @Router /api/v1/admin/users/{id} [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.UpdateUser(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "updated"})
}

// ListAllOrders handler
// @Summary List all orders
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param user_id query int false "Buyer filter"
// @Param page query int false "Page"
// @Success 200 {object} model.OrderListResponse
// @Router /api/v1/admin/orders [get]
func (s *RestHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	userID, _ := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 64)

	res, err := s.OrderApp.ListOrders(r.Context(), &model.OrderListFilter{
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

// UpdateOrderStatus handler
// @Summary Move an order through its lifecycle
// @Description paid settles the order, cancelled/rejected release its holds, shipped requires a tracking code
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/admin/orders/{id}/status [patch]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.UpdateStatus(r.Context(), orderID, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": string(req.Status)})
}

// CreateProduct handler
// @Summary Add a product to the catalog
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProductRequest true "Product"
// @Success 200 {object} model.ProductDetail
// @Failure 400 {object} errorResponse
// @Router /api/v1/admin/products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ProductApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Edit a product
// @Description Replaces the product fields; placed orders keep their snapshots
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.ProductRequest true "Product"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/admin/products/{id} [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ProductApp.Update(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "updated"})
}

// DeleteProduct handler
// @Summary Remove a product
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /api/v1/admin/products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ProductApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "deleted"})
}

// UpdateProductStock handler
// @Summary Set on-hand stock
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.UpdateStockRequest true "New stock count"
// @Success 200 {object} successResponse
// @Router /api/v1/admin/products/{id}/stock [put]
func (s *RestHandler) UpdateProductStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ProductApp.UpdateStock(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "updated"})
}

// GetVIPTiers handler
// @Summary Current tier table
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.VIPTierTable
// @Router /api/v1/admin/vip-tiers [get]
func (s *RestHandler) GetVIPTiers(w http.ResponseWriter, r *http.Request) {
	res, err := s.VIPApp.GetTiers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateVIPTiers handler
// @Summary Replace the tier table
// @Description Existing buyers keep their level until their next settlement reevaluates it
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.VIPTierTable true "Tier table"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/admin/vip-tiers [put]
func (s *RestHandler) UpdateVIPTiers(w http.ResponseWriter, r *http.Request) {
	var req model.VIPTierTable
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.VIPApp.UpdateTiers(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "updated"})
}

// GetDiscountCodes handler
// @Summary Current discount code list
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DiscountCodeTable
// @Router /api/v1/admin/discount-codes [get]
func (s *RestHandler) GetDiscountCodes(w http.ResponseWriter, r *http.Request) {
	res, err := s.AdminApp.GetDiscountCodes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateDiscountCodes handler
// @Summary Replace the discount code list
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DiscountCodeTable true "Code list"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /api/v1/admin/discount-codes [put]
func (s *RestHandler) UpdateDiscountCodes(w http.ResponseWriter, r *http.Request) {
	var req model.DiscountCodeTable
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.UpdateDiscountCodes(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"status": "updated"})
}
