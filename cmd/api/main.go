package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"moneymanager/internal/config"
	"moneymanager/internal/database"
	"moneymanager/internal/events"
	"moneymanager/internal/handlers"
	"moneymanager/internal/logger"
	"moneymanager/internal/middleware"
	"moneymanager/internal/services"
	"moneymanager/internal/validator"

	_ "moneymanager/internal/docs" // Import swagger docs
)

// @title           Money Manager API
// @version         1.0
// @description     Track income and expenses by category and break them down by period.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(&appConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Change stream shared by the stores, the analysis view and the AMQP bridge
	changes := events.NewTopic[events.Change]()

	if appConfig.AMQPURL != "" {
		publisher, err := events.DialAMQP(appConfig.AMQPURL, appConfig.AMQPExchange)
		if err != nil {
			return fmt.Errorf("failed to connect to AMQP broker: %w", err)
		}
		defer publisher.Close()
		go publisher.Run(ctx, changes)
		log.Infof("Forwarding data changes to AMQP exchange %s", appConfig.AMQPExchange)
	}

	// Initialize services
	db := dbManager.DB()
	categoryService := services.NewCategoryService(db, changes)
	transactionService := services.NewTransactionService(db, categoryService, changes)
	analyticsService := services.NewAnalyticsService(categoryService, transactionService,
		services.WithLocation(appConfig.Location),
		services.WithWeekStart(appConfig.WeekStart),
	)

	if appConfig.SeedCategories {
		if err := categoryService.SeedDefaults(); err != nil {
			return fmt.Errorf("failed to seed default categories: %w", err)
		}
	}

	go analyticsService.Run(ctx, changes)

	// Initialize handlers
	validator.Register()
	authHandler := handlers.NewAuthHandler(appConfig.AuthEnabled, appConfig.AuthPassphraseHash, appConfig.JWTSecret, appConfig.JWTExpirationDur)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, appConfig.Location)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/token", authHandler.IssueToken)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(appConfig.AuthEnabled, appConfig.JWTSecret))

	// Category routes
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.SaveCategory)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.SaveTransaction)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	protected.GET("/balance", transactionHandler.GetBalance)

	// Analytics routes
	analyticsRoutes := protected.Group("/analytics")
	analyticsRoutes.GET("/summary", analyticsHandler.GetSummary)
	analyticsRoutes.GET("/periods/current", analyticsHandler.GetCurrentPeriod)
	analyticsRoutes.GET("/periods/navigate", analyticsHandler.NavigatePeriod)
	analyticsRoutes.GET("/view", analyticsHandler.GetView)
	analyticsRoutes.PUT("/view/type", analyticsHandler.SetType)
	analyticsRoutes.PUT("/view/period", analyticsHandler.SetPeriod)
	analyticsRoutes.PUT("/view/range", analyticsHandler.SetRange)
	analyticsRoutes.POST("/view/navigate", analyticsHandler.Navigate)
	analyticsRoutes.GET("/view/stream", analyticsHandler.StreamView)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Money Manager server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
