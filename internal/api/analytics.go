package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stonksbro/nsepulse/internal/domain/dto"
)

// GetTechnical handles GET /api/v1/analytics/technical/:ticker requests.
//
// Responses:
//   - 200 OK: Returns RSI, MACD, Bollinger and long-EMA readings.
//   - 400 Bad Request: Missing ticker.
//   - 404 Not Found: No price history available for the ticker.
//
// GetTechnical godoc
// @Summary      Get technical indicators
// @Description  Returns RSI, MACD, Bollinger bands and long EMAs for a ticker
// @Tags         analytics
// @Produce      json
// @Param        ticker  path      string  true  "Ticker symbol" example(TCS)
// @Success      200     {object}  analytics.TechnicalReport  "Success"
// @Failure      400     {object}  dto.ErrorResponse          "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse          "Not Found"
// @Router       /api/v1/analytics/technical/{ticker} [get]
func (h *Handler) GetTechnical(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	report, err := h.analytics.Technical(c.Request.Context(), ticker)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no history available for "+ticker, err))
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetFundamentals handles GET /api/v1/analytics/fundamentals/:ticker requests.
//
// Responses:
//   - 200 OK: Returns the fundamental profile. Tickers outside the market
//     directory get an unknown-shaped document rather than an error.
//   - 400 Bad Request: Missing ticker.
//
// GetFundamentals godoc
// @Summary      Get fundamentals
// @Description  Returns name, sector and market-cap figures for a ticker
// @Tags         analytics
// @Produce      json
// @Param        ticker  path      string  true  "Ticker symbol" example(TCS)
// @Success      200     {object}  analytics.Fundamentals  "Success"
// @Failure      400     {object}  dto.ErrorResponse       "Bad Request"
// @Router       /api/v1/analytics/fundamentals/{ticker} [get]
func (h *Handler) GetFundamentals(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	c.JSON(http.StatusOK, h.analytics.Fundamentals(c.Request.Context(), ticker))
}

// GetAlerts handles GET /api/v1/analytics/alerts/:ticker requests.
//
// Responses:
//   - 200 OK: Returns the triggered technical alerts, possibly none.
//   - 400 Bad Request: Missing ticker.
//   - 404 Not Found: No price history available for the ticker.
//
// GetAlerts godoc
// @Summary      Get technical alerts
// @Description  Returns RSI, MACD and Bollinger alert conditions for a ticker
// @Tags         analytics
// @Produce      json
// @Param        ticker  path      string  true  "Ticker symbol" example(TCS)
// @Success      200     {object}  analytics.AlertsReport  "Success"
// @Failure      400     {object}  dto.ErrorResponse       "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse       "Not Found"
// @Router       /api/v1/analytics/alerts/{ticker} [get]
func (h *Handler) GetAlerts(c *gin.Context) {
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	report, err := h.analytics.Alerts(c.Request.Context(), ticker)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no history available for "+ticker, err))
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetHeatmap handles GET /api/v1/analytics/heatmap requests.
//
// Responses:
//   - 200 OK: Returns per-sector average change percent, best first.
//   - 503 Service Unavailable: No quotes could be obtained at all.
//
// GetHeatmap godoc
// @Summary      Get sector heatmap
// @Description  Returns average change percent per sector across the directory
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   analytics.SectorPerformance  "Success"
// @Failure      503  {object}  dto.ErrorResponse            "Unavailable"
// @Router       /api/v1/analytics/heatmap [get]
func (h *Handler) GetHeatmap(c *gin.Context) {
	heatmap, err := h.analytics.Heatmap(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("heatmap unavailable", err))
		return
	}

	c.JSON(http.StatusOK, heatmap)
}

// PostSentiment handles POST /api/v1/sentiment requests.
//
// Responses:
//   - 200 OK: Returns the keyword-based sentiment score and label.
//   - 400 Bad Request: Malformed body or missing ticker.
//
// PostSentiment godoc
// @Summary      Score headline sentiment
// @Description  Scores up to three headlines with keyword counting
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SentimentRequest   true  "Ticker and headlines"
// @Success      200      {object}  dto.SentimentResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Router       /api/v1/sentiment [post]
func (h *Handler) PostSentiment(c *gin.Context) {
	var req dto.SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid sentiment request", err))
		return
	}

	c.JSON(http.StatusOK, h.analytics.Sentiment(req))
}
