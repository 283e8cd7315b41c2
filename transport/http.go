package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/vapehero/wholesale-backend/application/admin"
	authapp "github.com/vapehero/wholesale-backend/application/auth"
	orderapp "github.com/vapehero/wholesale-backend/application/order"
	productapp "github.com/vapehero/wholesale-backend/application/product"
	vipapp "github.com/vapehero/wholesale-backend/application/vip"
	"github.com/vapehero/wholesale-backend/cmd/config"
	"github.com/vapehero/wholesale-backend/thirdparty/notifier"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config     *config.Config
	AuthApp    authapp.AuthApp
	ProductApp productapp.ProductApp
	OrderApp   orderapp.OrderApp
	AdminApp   adminapp.AdminApp
	VIPApp     vipapp.VIPApp
	Hub        *notifier.Hub
}

func NewTransport(cfg *config.Config, authApp authapp.AuthApp, productApp productapp.ProductApp,
	orderApp orderapp.OrderApp, adminApp adminapp.AdminApp, vipApp vipapp.VIPApp, hub *notifier.Hub) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		Config:     cfg,
		AuthApp:    authApp,
		ProductApp: productApp,
		OrderApp:   orderApp,
		AdminApp:   adminApp,
		VIPApp:     vipApp,
		Hub:        hub,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Uploaded payment receipts
	router.PathPrefix("/uploads/receipts/").Handler(
		http.StripPrefix("/uploads/receipts/", http.FileServer(http.Dir(cfg.Order.ReceiptDir))))

	// Public routes
	router.HandleFunc("/api/v1/auth/otp/send", rh.SendOTP).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/auth/otp/verify", rh.VerifyOTP).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/auth/admin/login", rh.AdminLogin).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/products", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)

	// protected routes
	router.HandleFunc("/api/v1/auth/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/me", rh.Me).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/orders", rh.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/orders", rh.ListMyOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/orders/{id}/cancel", rh.CancelMyOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/orders/{id}/receipt", rh.UploadReceipt).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/ws", rh.Notifications).Methods(http.MethodGet)

	// admin routes
	router.HandleFunc("/api/v1/admin/dashboard", rh.Dashboard).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/admin/users", rh.ListUsers).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/admin/users/{id:[0-9]+}/approve", rh.ApproveUser).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/admin/users/{id:[0-9]+}/reject", rh.RejectUser).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/admin/users/{id:[0-9]+}", rh.UpdateUser).Methods(http.MethodPatch)
	router.HandleFunc("/api/v1/admin/orders", rh.ListAllOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/admin/orders/{id}/status", rh.UpdateOrderStatus).Methods(http.MethodPatch)
	router.HandleFunc("/api/v1/admin/products", rh.CreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/admin/products/{id:[0-9]+}", rh.UpdateProduct).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/admin/products/{id:[0-9]+}", rh.DeleteProduct).Methods(http.MethodDelete)
	router.HandleFunc("/api/v1/admin/products/{id:[0-9]+}/stock", rh.UpdateProductStock).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/admin/vip-tiers", rh.GetVIPTiers).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/admin/vip-tiers", rh.UpdateVIPTiers).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/admin/discount-codes", rh.GetDiscountCodes).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/admin/discount-codes", rh.UpdateDiscountCodes).Methods(http.MethodPut)

	// internal routes, called by the delayed-expiry consumer
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/orders/{id}/cancel", rh.InternalCancelOrder).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(authApp))

	return router
}
