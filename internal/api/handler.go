package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stonksbro/nsepulse/internal/domain/dto"
	"github.com/stonksbro/nsepulse/internal/service"
)

// Handler provides HTTP handlers for the dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP path and query parameters
//   - Interact with the service layer
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	quotes    service.QuoteService
	analytics service.AnalyticsService
	accounts  service.AccountService
	portfolio service.PortfolioService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - quotes: quote, history, index and search operations.
//   - analytics: technical indicators, heatmap and sentiment.
//   - accounts: registration and login.
//   - portfolio: holdings and watchlist for authenticated users.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(quotes service.QuoteService, analytics service.AnalyticsService, accounts service.AccountService, portfolio service.PortfolioService) *Handler {
	return &Handler{
		quotes:    quotes,
		analytics: analytics,
		accounts:  accounts,
		portfolio: portfolio,
	}
}

// GetPrice handles GET /api/v1/stocks/price/:ticker requests.
//
// Responses:
//   - 200 OK: Returns the quote snapshot (live or fallback).
//   - 400 Bad Request: Missing ticker.
//   - 503 Service Unavailable: No live, cached or fallback price exists.
//
// GetPrice godoc
// @Summary      Get a stock quote
// @Description  Returns the latest quote snapshot for a ticker, served from the bulk cache
// @Tags         stocks
// @Produce      json
// @Param        ticker  path      string  true  "Ticker symbol" example(TCS)
// @Success      200     {object}  dto.QuoteResponse      "Success"
// @Failure      400     {object}  dto.ErrorResponse      "Bad Request"
// @Failure      503     {object}  dto.ErrorResponse      "Quote Unavailable"
// @Router       /api/v1/stocks/price/{ticker} [get]
func (h *Handler) GetPrice(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	quote, ok := h.quotes.GetQuote(c.Request.Context(), ticker)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("no price available for "+ticker, nil))
		return
	}

	c.JSON(http.StatusOK, quote)
}

// GetHistory handles GET /api/v1/stocks/history/:ticker requests.
//
// Query Parameters:
//   - days (int, optional): Number of calendar days to cover, default 30.
//
// Responses:
//   - 200 OK: Returns the close series; synthetic=true marks a generated
//     placeholder when upstream history is unavailable.
//   - 400 Bad Request: Missing ticker or malformed days.
//
// GetHistory godoc
// @Summary      Get price history
// @Description  Returns the recent daily close series for a ticker
// @Tags         stocks
// @Produce      json
// @Param        ticker  path      string  true   "Ticker symbol" example(TCS)
// @Param        days    query     int     false  "Days of history" example(30)
// @Success      200     {object}  dto.HistoryResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse    "Bad Request"
// @Router       /api/v1/stocks/history/{ticker} [get]
func (h *Handler) GetHistory(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	days := 30
	if s := c.Query("days"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("days must be a positive integer", err))
			return
		}
		days = parsed
	}

	c.JSON(http.StatusOK, h.quotes.GetHistory(c.Request.Context(), ticker, days))
}

// GetIndex handles GET /api/v1/stocks/index requests.
//
// Responses:
//   - 200 OK: Returns the index quote plus its top component stocks, all
//     served from one bulk fetch.
//
// GetIndex godoc
// @Summary      Get index overview
// @Description  Returns the domestic index quote and top component stocks
// @Tags         stocks
// @Produce      json
// @Success      200  {object}  dto.IndexResponse  "Success"
// @Router       /api/v1/stocks/index [get]
func (h *Handler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, h.quotes.IndexOverview(c.Request.Context()))
}

// SearchStocks handles GET /api/v1/stocks/search/:query requests.
//
// Responses:
//   - 200 OK: Returns matching directory entries (possibly empty).
//   - 400 Bad Request: Missing query.
//
// SearchStocks godoc
// @Summary      Search the stock directory
// @Description  Matches the query against tickers and company names
// @Tags         stocks
// @Produce      json
// @Param        query  path      string  true  "Search text" example(bank)
// @Success      200    {object}  dto.SearchResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse   "Bad Request"
// @Router       /api/v1/stocks/search/{query} [get]
func (h *Handler) SearchStocks(c *gin.Context) {
	query := strings.TrimSpace(c.Param("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("query is required", nil))
		return
	}

	c.JSON(http.StatusOK, h.quotes.Search(query))
}
