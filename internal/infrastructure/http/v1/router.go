// Package v1 provides HTTP API version 1.
package v1

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"insural/internal/core/tx"
	"insural/internal/domain/feedback"
	"insural/internal/domain/insurance"
	"insural/internal/domain/payment"
	"insural/internal/domain/purchase"
	"insural/internal/domain/user"
	"insural/internal/infrastructure/http/v1/handlers"
	"insural/internal/infrastructure/http/v1/middleware"
	"insural/internal/infrastructure/storage/postgres"
	"insural/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (used by health checks).
	Pool *postgres.Pool

	// TxManager overrides the pool-backed transaction manager when set.
	TxManager tx.Manager

	// Logger for request logging.
	Logger *logger.Logger

	// JWTValidator for token validation.
	JWTValidator middleware.JWTValidator

	// TokenIssuer signs session tokens at login.
	TokenIssuer user.TokenIssuer

	// PasswordHasher hashes and verifies account passwords.
	PasswordHasher user.PasswordHasher

	// Uploader stores insurance images in object storage.
	Uploader insurance.Uploader
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerFieldNames()

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	txm := postgres.NewTxManager(cfg.Pool)
	var txManager tx.Manager = txm
	if cfg.TxManager != nil {
		txManager = cfg.TxManager
	}

	baseHandler := handlers.NewBaseHandler()

	// Repositories
	feedbackRepo := postgres.NewFeedbackRepo(txm)
	insuranceRepo := postgres.NewInsuranceRepo(txm)
	paymentRepo := postgres.NewPaymentRepo(txm)
	purchaseRepo := postgres.NewPurchaseRepo(txm)
	userRepo := postgres.NewUserRepo(txm)

	// Services
	feedbackService := feedback.NewService(feedbackRepo, txManager)
	insuranceService := insurance.NewService(insuranceRepo, txManager, cfg.Uploader)
	paymentService := payment.NewService(paymentRepo, txManager)
	purchaseService := purchase.NewService(purchaseRepo, txManager)
	userService := user.NewService(userRepo, txManager, cfg.PasswordHasher, cfg.TokenIssuer)

	// Handlers
	feedbackHandler := handlers.NewFeedbackHandler(baseHandler, feedbackService)
	insuranceHandler := handlers.NewInsuranceHandler(baseHandler, insuranceService)
	paymentHandler := handlers.NewPaymentHandler(baseHandler, paymentService)
	purchaseHandler := handlers.NewPurchaseHandler(baseHandler, purchaseService)
	userHandler := handlers.NewUserHandler(baseHandler, userService)

	// API v1
	v1 := router.Group("/api/v1")
	{
		feedbacks := v1.Group("/feedbacks")
		{
			feedbacks.GET("", feedbackHandler.List)
			feedbacks.GET("/:id", feedbackHandler.Get)
			feedbacks.POST("", feedbackHandler.Create)
			feedbacks.PUT("/:id", feedbackHandler.Update)
			// Feedback is never hard-deleted; there is no DELETE route.
			feedbacks.PUT("/:id/purchase", feedbackHandler.MarkPurchased)
		}

		insurances := v1.Group("/insurances")
		{
			insurances.GET("", insuranceHandler.List)
			insurances.GET("/:id", insuranceHandler.Get)
			insurances.POST("", insuranceHandler.Create)
			insurances.PUT("/:id", insuranceHandler.Update)
			insurances.DELETE("/:id", insuranceHandler.Delete)
		}

		payments := v1.Group("/payments")
		{
			payments.GET("", paymentHandler.List)
			payments.GET("/:id", paymentHandler.Get)
			payments.POST("", paymentHandler.Create)
			payments.PUT("/:id", paymentHandler.Update)
			payments.DELETE("/:id", paymentHandler.Delete)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.GET("", purchaseHandler.List)
			purchases.GET("/details", purchaseHandler.Details)
			purchases.GET("/lookup", purchaseHandler.Lookup)
			purchases.POST("", purchaseHandler.Create)
			purchases.PUT("/status", purchaseHandler.UpdateStatus)
		}

		// Login keeps its historical singular path.
		v1.GET("/user", userHandler.Login)

		users := v1.Group("/users")
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Register)
			users.GET("/me", middleware.Auth(cfg.JWTValidator), userHandler.Me)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}
	}

	return router
}

// registerFieldNames makes the validator report JSON field names, so the
// per-field violation map matches the request body the client sent.
func registerFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}
