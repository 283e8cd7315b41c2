package main

import (
	"context"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/vapehero/wholesale-backend/application/admin"
	authapp "github.com/vapehero/wholesale-backend/application/auth"
	inventoryapp "github.com/vapehero/wholesale-backend/application/inventory"
	orderapp "github.com/vapehero/wholesale-backend/application/order"
	productapp "github.com/vapehero/wholesale-backend/application/product"
	vipapp "github.com/vapehero/wholesale-backend/application/vip"
	"github.com/vapehero/wholesale-backend/cmd/config"
	redisclient "github.com/vapehero/wholesale-backend/cmd/redis"
	_ "github.com/vapehero/wholesale-backend/docs"
	orderRepo "github.com/vapehero/wholesale-backend/repository/order"
	productRepo "github.com/vapehero/wholesale-backend/repository/product"
	redisRepo "github.com/vapehero/wholesale-backend/repository/redis"
	reservationRepo "github.com/vapehero/wholesale-backend/repository/reservation"
	settingRepo "github.com/vapehero/wholesale-backend/repository/setting"
	txRepo "github.com/vapehero/wholesale-backend/repository/tx"
	userRepo "github.com/vapehero/wholesale-backend/repository/user"
	"github.com/vapehero/wholesale-backend/thirdparty/notifier"
	"github.com/vapehero/wholesale-backend/thirdparty/rabbitmq"
	"github.com/vapehero/wholesale-backend/thirdparty/sms"
	"github.com/vapehero/wholesale-backend/transport"
	"github.com/vapehero/wholesale-backend/utils/logger"
	"go.uber.org/zap"
)

// @title WHOLESALE BACKEND API
// @version 1.0
// @description Wholesale ordering API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	ReservationRepo := reservationRepo.NewReservationRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	SettingRepo := settingRepo.NewSettingRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Notification fan-out and SMS gateway
	hub := notifier.NewHub()
	smsGateway := sms.NewGateway(cfg)

	// RabbitMQ carries the delayed order-expiration messages. The service
	// still runs without it; the periodic sweep reclaims holds either way.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, order expiration falls back to the sweep", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize application layers
	VIPApp := vipapp.NewVIPApp(UserRepo, SettingRepo)
	InventoryApp := inventoryapp.NewInventoryApp(cfg, ProductRepo, ReservationRepo, RedisRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, ProductRepo, UserRepo, InventoryApp, VIPApp, publisher, hub, smsGateway)
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, RedisRepo, smsGateway, hub)
	ProductApp := productapp.NewProductApp(ProductRepo, ReservationRepo)
	AdminApp := adminapp.NewAdminApp(UserRepo, OrderRepo, SettingRepo)

	// Background reclaim of expired stock holds
	go runSweeper(context.Background(), cfg.Order.SweepInterval, InventoryApp)

	// Consume delayed expiration messages and cancel overdue orders through
	// the internal API
	if consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.APIURL, cfg.Internal.APIKey); err != nil {
		logger.Warn("rabbitmq consumer unavailable", zap.Error(err))
	} else {
		defer func() {
			_ = consumer.Close()
		}()
		if err := consumer.Start(context.Background()); err != nil {
			logger.Warn("rabbitmq consumer start failed", zap.Error(err))
		}
	}

	httpTransport := transport.NewTransport(cfg, AuthApp, ProductApp, OrderApp, AdminApp, VIPApp, hub)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

func runSweeper(ctx context.Context, interval time.Duration, inventoryApp inventoryapp.InventoryApp) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := inventoryApp.SweepExpired(ctx); err != nil {
				logger.Error("sweep expired reservations", zap.Error(err))
			}
		}
	}
}
