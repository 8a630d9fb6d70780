package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "jobledger/docs" // swag generated
	"jobledger/internal/adapter/http/handlers"
	"jobledger/internal/adapter/persistence/repository"
	"jobledger/internal/clock"
	"jobledger/internal/infrastructure/config"
	"jobledger/internal/infrastructure/database"
	"jobledger/internal/infrastructure/metrics"
	"jobledger/internal/infrastructure/payments"
	"jobledger/internal/usecase"
	"jobledger/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type dependencies struct {
	jobs      *handlers.JobHandler
	customers *handlers.CustomerHandler
	payments  *handlers.PaymentHandler
	metrics   *metrics.LifecycleMetrics
}

// Run opens the stores, wires the use cases and serves the API until the
// listener fails.
func Run(cfg config.Config, logger *zap.Logger) error {
	db, err := database.Open(cfg, logger)
	if err != nil {
		return err
	}
	deps, err := buildDependencies(context.Background(), cfg, logger, db, clock.Real{})
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	router := newRouter(deps, logger)

	logger.Info("[http] listening", zap.String("port", cfg.HTTPPort))
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func buildDependencies(ctx context.Context, cfg config.Config, logger *zap.Logger, db *gorm.DB, clk clock.Clock) (dependencies, error) {
	jobRepo := repository.NewJobGormRepository(db)
	customerRepo := repository.NewCustomerGormRepository(db)

	var receiptRepo interfaces.IPaymentReceiptRepository
	switch cfg.PaymentsStore {
	case config.PaymentsStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return dependencies{}, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		if err := database.CheckReceiptTable(ctx, ddb, cfg.PaymentsTable, repository.ReceiptsJobIDIndex); err != nil {
			return dependencies{}, fmt.Errorf("receipt table not ready: %w", err)
		}
		receiptRepo = repository.NewPaymentReceiptDynamoRepository(ddb, cfg.PaymentsTable)
	default:
		receiptRepo = repository.NewPaymentReceiptGormRepository(db)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("[payment][gateway] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	lifecycleMetrics := metrics.NewLifecycleMetrics()

	jobUseCase := usecase.NewJobUseCase(jobRepo, customerRepo, clk, logger,
		usecase.WithLocation(cfg.Location()),
		usecase.WithDueDays(cfg.InvoiceDueDays),
		usecase.WithMaxIdentifierAttempts(cfg.IdentifierMaxAttempts),
		usecase.WithObserver(lifecycleMetrics),
	)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, logger)
	paymentUseCase := usecase.NewPaymentUseCase(receiptRepo, jobRepo, jobUseCase, paymentGateway, clk, logger)

	return dependencies{
		jobs:      handlers.NewJobHandler(jobUseCase, logger),
		customers: handlers.NewCustomerHandler(customerUseCase),
		payments:  handlers.NewPaymentHandler(paymentUseCase, logger),
		metrics:   lifecycleMetrics,
	}, nil
}

func newRouter(deps dependencies, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(deps.metrics.Handler()))
	getRoutes(router, deps)
	return router
}

func getRoutes(router *gin.Engine, deps dependencies) {
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCustomerRoutes(v1, deps.customers)
	addJobRoutes(v1, deps.jobs, deps.payments)
	addWorkflowRoutes(v1, deps.jobs)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestID())
	router.Use(accessLog(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[http] recovered from panic", zap.Any("panic", recovered), zap.String("request_id", c.GetString(requestIDKey)))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
