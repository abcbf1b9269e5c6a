package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/0xgaut85/r1x-pay/internal/pkg/config"
	"github.com/0xgaut85/r1x-pay/internal/pkg/database"
	"github.com/0xgaut85/r1x-pay/internal/pkg/health"
	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/metrics"
	"github.com/0xgaut85/r1x-pay/internal/pkg/middleware"
	nsqpkg "github.com/0xgaut85/r1x-pay/internal/pkg/nsq"
	"github.com/0xgaut85/r1x-pay/internal/pkg/retry"
	"github.com/0xgaut85/r1x-pay/internal/pkg/server"
	"github.com/0xgaut85/r1x-pay/services/payment/gateway/chain"
	"github.com/0xgaut85/r1x-pay/services/payment/gateway/facilitator"
	"github.com/0xgaut85/r1x-pay/services/payment/gateway/queue"
	httpHandler "github.com/0xgaut85/r1x-pay/services/payment/handler/http"
	"github.com/0xgaut85/r1x-pay/services/payment/repository"
	"github.com/0xgaut85/r1x-pay/services/payment/usecase"
	"github.com/0xgaut85/r1x-pay/services/payment/worker"
)

func main() {
	appName := "payd"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Infrastructure clients
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	recorder := metrics.NewPrometheusRecorder()

	// Fee policy and on-chain sender
	feePolicy, err := usecase.NewFeePolicy(configs.Fee)
	if err != nil {
		zapLogger.Fatal("Invalid fee configuration", logger.Err(err))
	}

	feeSender, err := chain.NewEVMSender(configs.Wallet, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize hot wallet", logger.Err(err))
	}
	if !feeSender.Enabled() {
		zapLogger.Warn("no wallet key configured, fee transfers will stay pending")
	}

	// Repositories
	db := postgresClient.GetDB()
	txRepo := repository.NewTransactionRepo(configs, db)
	feeRepo := repository.NewFeeRepo(configs, db)
	svcRepo := repository.NewServiceRepo(configs, db, redisClient, zapLogger)
	nonceRepo := repository.NewNonceRepo(redisClient)

	// Gateways
	gateways := facilitator.NewResolver(configs.Facilitator, zapLogger, recorder)
	feePublisher := queue.NewFeePublisher(producer, configs.NSQ.FeeTopic)

	// Use cases
	retrier := retry.NewWithDefaults(zapLogger)
	paymentUC := usecase.NewPaymentUC(configs, feePolicy, txRepo, feeRepo, svcRepo,
		nonceRepo, gateways, feePublisher, retrier, zapLogger, recorder)
	serviceUC := usecase.NewServiceUC(svcRepo, zapLogger)

	// Fee transfer worker
	feeWorker, err := worker.NewFeeWorker(configs.NSQ, feeRepo, feeSender, zapLogger, recorder)
	if err != nil {
		zapLogger.Fatal("Failed to start fee worker", logger.Err(err))
	}
	defer feeWorker.Stop()

	// HTTP surface
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version)
	httpHandler.RegisterRoutes(e,
		httpHandler.NewPaymentHandler(paymentUC),
		httpHandler.NewServiceHandler(serviceUC),
		configs.App.APIKey)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
