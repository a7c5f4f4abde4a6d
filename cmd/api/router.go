package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"budgetapp/internal/config"
	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/handlers"
	"budgetapp/internal/middleware"
	"budgetapp/internal/services"
)

type routerDeps struct {
	ledger  services.LedgerServicer
	budgets services.BudgetServicer
	remote  services.RemoteServicer
}

func newRouter(cfg *config.Config, deps routerDeps) (*gin.Engine, error) {
	limiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	transactionHandler := handlers.NewTransactionHandler(deps.ledger)
	budgetHandler := handlers.NewBudgetHandler(deps.budgets, deps.ledger)
	remoteHandler := handlers.NewRemoteHandler(deps.remote)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(limiter))

	v1.GET("/ledger", transactionHandler.GetLedger)
	v1.GET("/summary", transactionHandler.GetSummary)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/grouped", transactionHandler.GetGroupedTransactions)

	budget := v1.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)
	budget.PUT("/categories/:id", budgetHandler.SetLimit)

	remote := v1.Group("/remote/transactions")
	remote.POST("", remoteHandler.CreateTransaction)
	remote.GET("", remoteHandler.ListTransactions)
	remote.GET("/page", remoteHandler.ListTransactionsPage)
	remote.PUT("/:id", remoteHandler.UpdateTransaction)
	remote.DELETE("/:id", remoteHandler.DeleteTransaction)

	return router, nil
}
