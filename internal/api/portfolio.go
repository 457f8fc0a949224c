package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stonksbro/nsepulse/internal/domain/dto"
	"github.com/stonksbro/nsepulse/internal/middleware"
	"github.com/stonksbro/nsepulse/internal/service"
	"github.com/stonksbro/nsepulse/internal/storage"
)

// authedUser pulls the authenticated user ID set by RequireAuth, aborting
// with 401 if the route was somehow reached without it.
func authedUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("not authenticated", nil))
	}
	return userID, ok
}

// ListPortfolio handles GET /api/v1/portfolio requests.
//
// Responses:
//   - 200 OK: Returns the user's holdings enriched with live quotes.
//   - 401 Unauthorized: Missing or invalid token.
//
// ListPortfolio godoc
// @Summary      List holdings
// @Description  Returns the user's holdings enriched with live quotes
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.EnrichedHolding  "Success"
// @Failure      401  {object}  dto.ErrorResponse    "Unauthorized"
// @Router       /api/v1/portfolio [get]
func (h *Handler) ListPortfolio(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	holdings, err := h.portfolio.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list holdings", err))
		return
	}

	c.JSON(http.StatusOK, holdings)
}

// AddHolding handles POST /api/v1/portfolio requests.
//
// Responses:
//   - 201 Created: Returns the stored holding, enriched.
//   - 400 Bad Request: Malformed body or a ticker outside the directory.
//   - 401 Unauthorized: Missing or invalid token.
//
// AddHolding godoc
// @Summary      Add a holding
// @Description  Stores a holding after validating the ticker against the directory
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      dto.HoldingCreateRequest  true  "Holding details"
// @Success      201      {object}  dto.EnrichedHolding       "Created"
// @Failure      400      {object}  dto.ErrorResponse         "Bad Request"
// @Failure      401      {object}  dto.ErrorResponse         "Unauthorized"
// @Router       /api/v1/portfolio [post]
func (h *Handler) AddHolding(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req dto.HoldingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid holding request", err))
		return
	}

	holding, err := h.portfolio.Add(c.Request.Context(), userID, req)
	if errors.Is(err, service.ErrUnknownTicker) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown ticker", err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to add holding", err))
		return
	}

	c.JSON(http.StatusCreated, holding)
}

// UpdateHolding handles PUT /api/v1/portfolio/:id requests.
//
// Responses:
//   - 200 OK: Returns the updated holding, enriched.
//   - 400 Bad Request: Malformed id, body, or ticker.
//   - 401 Unauthorized: Missing or invalid token.
//   - 404 Not Found: No such holding for this user.
//
// UpdateHolding godoc
// @Summary      Update a holding
// @Description  Applies a partial update to one holding
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                       true  "Holding ID"
// @Param        request  body      dto.HoldingUpdateRequest  true  "Fields to change"
// @Success      200      {object}  dto.EnrichedHolding       "Success"
// @Failure      400      {object}  dto.ErrorResponse         "Bad Request"
// @Failure      401      {object}  dto.ErrorResponse         "Unauthorized"
// @Failure      404      {object}  dto.ErrorResponse         "Not Found"
// @Router       /api/v1/portfolio/{id} [put]
func (h *Handler) UpdateHolding(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid holding id", err))
		return
	}

	var req dto.HoldingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid holding request", err))
		return
	}

	holding, err := h.portfolio.Update(c.Request.Context(), userID, id, req)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("holding not found", nil))
		return
	case errors.Is(err, service.ErrUnknownTicker):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown ticker", err))
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("failed to update holding", err))
		return
	}

	c.JSON(http.StatusOK, holding)
}

// DeleteHolding handles DELETE /api/v1/portfolio/:id requests.
//
// Responses:
//   - 204 No Content: Holding removed.
//   - 400 Bad Request: Malformed id.
//   - 401 Unauthorized: Missing or invalid token.
//   - 404 Not Found: No such holding for this user.
//
// DeleteHolding godoc
// @Summary      Delete a holding
// @Tags         portfolio
// @Security     BearerAuth
// @Param        id  path  int  true  "Holding ID"
// @Success      204  "No Content"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      401  {object}  dto.ErrorResponse  "Unauthorized"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/portfolio/{id} [delete]
func (h *Handler) DeleteHolding(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid holding id", err))
		return
	}

	err = h.portfolio.Delete(c.Request.Context(), userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("holding not found", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to delete holding", err))
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPortfolioSummary handles GET /api/v1/portfolio/summary requests.
//
// Responses:
//   - 200 OK: Returns portfolio totals and sector/broker allocations.
//   - 401 Unauthorized: Missing or invalid token.
//
// GetPortfolioSummary godoc
// @Summary      Summarize the portfolio
// @Description  Returns totals, gain/loss and allocation breakdowns
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PortfolioSummary  "Success"
// @Failure      401  {object}  dto.ErrorResponse     "Unauthorized"
// @Router       /api/v1/portfolio/summary [get]
func (h *Handler) GetPortfolioSummary(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	summary, err := h.portfolio.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to summarize portfolio", err))
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportPortfolio handles GET /api/v1/portfolio/export requests.
//
// Responses:
//   - 200 OK: Returns the enriched holdings as a CSV attachment.
//   - 401 Unauthorized: Missing or invalid token.
//
// ExportPortfolio godoc
// @Summary      Export the portfolio as CSV
// @Tags         portfolio
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string             "CSV content"
// @Failure      401  {object}  dto.ErrorResponse  "Unauthorized"
// @Router       /api/v1/portfolio/export [get]
func (h *Handler) ExportPortfolio(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	csvBytes, err := h.portfolio.ExportCSV(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to export portfolio", err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="portfolio.csv"`)
	c.Data(http.StatusOK, "text/csv", csvBytes)
}

// ListWatchlist handles GET /api/v1/watchlist requests.
//
// ListWatchlist godoc
// @Summary      List watched tickers
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.WatchItem   "Success"
// @Failure      401  {object}  dto.ErrorResponse  "Unauthorized"
// @Router       /api/v1/watchlist [get]
func (h *Handler) ListWatchlist(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	list, err := h.portfolio.Watchlist(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list watchlist", err))
		return
	}

	c.JSON(http.StatusOK, list)
}

// AddWatch handles POST /api/v1/watchlist/:ticker requests.
//
// AddWatch godoc
// @Summary      Watch a ticker
// @Tags         watchlist
// @Produce      json
// @Security     BearerAuth
// @Param        ticker  path      string             true  "Ticker symbol" example(TCS)
// @Success      201     {object}  models.WatchItem   "Created"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      401     {object}  dto.ErrorResponse  "Unauthorized"
// @Failure      409     {object}  dto.ErrorResponse  "Already Watched"
// @Router       /api/v1/watchlist/{ticker} [post]
func (h *Handler) AddWatch(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	ticker := strings.TrimSpace(c.Param("ticker"))
	item, err := h.portfolio.Watch(c.Request.Context(), userID, ticker)
	switch {
	case errors.Is(err, service.ErrUnknownTicker):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown ticker", err))
		return
	case errors.Is(err, storage.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("ticker already watched", nil))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to watch ticker", err))
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveWatch handles DELETE /api/v1/watchlist/:ticker requests.
//
// RemoveWatch godoc
// @Summary      Unwatch a ticker
// @Tags         watchlist
// @Security     BearerAuth
// @Param        ticker  path  string  true  "Ticker symbol" example(TCS)
// @Success      204  "No Content"
// @Failure      401  {object}  dto.ErrorResponse  "Unauthorized"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/watchlist/{ticker} [delete]
func (h *Handler) RemoveWatch(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	ticker := strings.TrimSpace(c.Param("ticker"))
	err := h.portfolio.Unwatch(c.Request.Context(), userID, ticker)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("ticker not watched", nil))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to unwatch ticker", err))
		return
	}

	c.Status(http.StatusNoContent)
}
