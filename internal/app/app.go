package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/stonksbro/nsepulse/config"
	"github.com/stonksbro/nsepulse/internal/api"
	"github.com/stonksbro/nsepulse/internal/auth"
	"github.com/stonksbro/nsepulse/internal/market"
	"github.com/stonksbro/nsepulse/internal/service"
	"github.com/stonksbro/nsepulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Builds the market core: symbol normalizer, upstream chart client,
//     fallback table, bulk quote cache and history fetcher.
//   - Initializes the repository layer (users, portfolio).
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Market core: normalizer, upstream client, fallback table, quote cache
	norm := market.NewNormalizer(cfg.Market.ExchangeSuffix, cfg.Market.IndexAlias, cfg.Market.IndexSymbol)
	chartClient := market.NewChartClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	cache := market.NewQuoteCache(chartClient, norm, market.DefaultFallbackPrices(), market.CacheOptions{
		TTL:           cfg.Market.QuoteTTL,
		FetchTimeout:  cfg.Market.FetchTimeout,
		MaxConcurrent: cfg.Market.MaxConcurrent,
	})
	history := market.NewHistoryFetcher(chartClient, norm, cfg.Market.FetchTimeout)

	// Repository layer
	usersRepo := storage.NewUsersRepository(db)
	portfolioRepo := storage.NewPortfolioRepository(db)

	// Auth
	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Service layer
	quoteSvc := service.NewQuoteService(cache, history, norm.Canonical(cfg.Market.IndexAlias), "NIFTY 50 Index")
	analyticsSvc := service.NewAnalyticsService(cache, history)
	accountSvc := service.NewAccountService(usersRepo, issuer)
	portfolioSvc := service.NewPortfolioService(portfolioRepo, cache, norm)

	// HTTP handler layer
	handler := api.NewHandler(quoteSvc, analyticsSvc, accountSvc, portfolioSvc)

	// Setup Gin router with routes
	router := api.NewRouter(handler, issuer)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping, quoteSvc.CacheStats)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
