package api

import (
	"github.com/gin-gonic/gin"

	"github.com/stonksbro/nsepulse/internal/domain/dto"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Liveness probe, reports quote cache state alongside status.
//   - /readyz: Readiness probe (depends on database connectivity).
type HealthHandler struct {
	dbPing     func() error
	cacheStats func() dto.CacheStatsResponse
}

// NewHealthHandler constructs a HealthHandler.
//
// Parameters:
//   - dbPing (func() error): checks whether the database is reachable,
//     typically db.Ping from *sql.DB.
//   - cacheStats (func() dto.CacheStatsResponse): reads the quote cache's
//     operational state for the liveness payload.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(dbPing func() error, cacheStats func() dto.CacheStatsResponse) *HealthHandler {
	return &HealthHandler{dbPing: dbPing, cacheStats: cacheStats}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK with cache stats.
//   - GET /readyz: Returns 200 OK if dbPing succeeds, 503 otherwise.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running, with quote cache stats
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]any
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if h.cacheStats != nil {
			body["cache"] = h.cacheStats()
		}
		c.JSON(200, body)
	})

	// Readiness probe (checks DB connection)
	// @Summary      Readiness probe
	// @Description  Returns ready if the service dependencies (DB) are reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.dbPing != nil && h.dbPing() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
