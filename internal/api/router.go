package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/stonksbro/nsepulse/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1), with the portfolio and watchlist
//     groups guarded by bearer-token auth.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - verifier (middleware.TokenVerifier): Validates bearer tokens for protected routes.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, verifier middleware.TokenVerifier) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		stocks := v1.Group("/stocks")
		{
			stocks.GET("/price/:ticker", handler.GetPrice)
			stocks.GET("/history/:ticker", handler.GetHistory)
			stocks.GET("/index", handler.GetIndex)
			stocks.GET("/search/:query", handler.SearchStocks)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/technical/:ticker", handler.GetTechnical)
			analytics.GET("/fundamentals/:ticker", handler.GetFundamentals)
			analytics.GET("/alerts/:ticker", handler.GetAlerts)
			analytics.GET("/heatmap", handler.GetHeatmap)
		}

		v1.POST("/sentiment", handler.PostSentiment)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", handler.Register)
			auth.POST("/login", handler.Login)
		}

		portfolio := v1.Group("/portfolio")
		portfolio.Use(middleware.RequireAuth(verifier))
		{
			portfolio.GET("", handler.ListPortfolio)
			portfolio.POST("", handler.AddHolding)
			portfolio.PUT("/:id", handler.UpdateHolding)
			portfolio.DELETE("/:id", handler.DeleteHolding)
			portfolio.GET("/summary", handler.GetPortfolioSummary)
			portfolio.GET("/export", handler.ExportPortfolio)
		}

		watchlist := v1.Group("/watchlist")
		watchlist.Use(middleware.RequireAuth(verifier))
		{
			watchlist.GET("", handler.ListWatchlist)
			watchlist.POST("/:ticker", handler.AddWatch)
			watchlist.DELETE("/:ticker", handler.RemoveWatch)
		}

		admin := v1.Group("/admin")
		{
			admin.GET("/cache", handler.GetCacheStats)
			admin.POST("/cache/clear", handler.ClearCache)
		}
	}

	return router
}
