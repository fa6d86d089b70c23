package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"dinero/internal/config"
	"dinero/internal/database"
	"dinero/internal/handlers"
	"dinero/internal/logger"
	"dinero/internal/middleware"
	"dinero/internal/services"
	"dinero/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "dinero/internal/docs" // Import swagger docs
)

// @title           Dinero API
// @version         1.0
// @description     Dinero is a personal finance tracker: record money sources, log expenses against them, and query spending statistics.

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Amounts cross the wire as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Bring the schema up to date
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	sourceService := services.NewSourceService(db)
	expenseService := services.NewExpenseService(db, sourceService)
	statisticsService := services.NewStatisticsService(db)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	sourceHandler := handlers.NewSourceHandler(userService, sourceService)
	expenseHandler := handlers.NewExpenseHandler(userService, expenseService)
	statisticsHandler := handlers.NewStatisticsHandler(userService, statisticsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prebuilt front-end entry file
	router.StaticFile("/", filepath.Join(appConfig.StaticDir, "index.html"))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API group
	api := router.Group("/api")

	api.POST("/init", userHandler.InitUser)

	sources := api.Group("/sources")
	sources.GET("", sourceHandler.GetSources)
	sources.POST("", sourceHandler.CreateSource)
	sources.PUT("/:id", sourceHandler.UpdateSource)
	sources.DELETE("/:id", sourceHandler.DeleteSource)

	expenses := api.Group("/expenses")
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	statistics := api.Group("/statistics")
	statistics.GET("/monthly", statisticsHandler.GetMonthly)
	statistics.GET("/weekly", statisticsHandler.GetWeekly)
	statistics.GET("/sources", statisticsHandler.GetSources)

	log.Infof("Starting Dinero server on port %s (storage engine: %s)", appConfig.Port, dbConfig.Engine())
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
