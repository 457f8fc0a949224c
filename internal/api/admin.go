package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCacheStats handles GET /api/v1/admin/cache requests.
//
// Responses:
//   - 200 OK: Returns entry count and configured TTL of the quote cache.
//
// GetCacheStats godoc
// @Summary      Inspect the quote cache
// @Description  Returns entry count and TTL of the bulk quote cache
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.CacheStatsResponse  "Success"
// @Router       /api/v1/admin/cache [get]
func (h *Handler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.quotes.CacheStats())
}

// ClearCache handles POST /api/v1/admin/cache/clear requests.
//
// Responses:
//   - 200 OK: Cache emptied; the next quote request refills from upstream.
//
// ClearCache godoc
// @Summary      Clear the quote cache
// @Description  Empties the bulk quote cache and resets its freshness window
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]string  "Success"
// @Router       /api/v1/admin/cache/clear [post]
func (h *Handler) ClearCache(c *gin.Context) {
	h.quotes.ClearCache()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
