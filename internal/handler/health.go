package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports liveness of the two backing stores. Degraded means the API
// is up but scans would be answered with server_error denials, so the probe
// flips to 503 as soon as postgres or redis stops answering.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		checks := gin.H{
			"postgres": "ok",
			"redis":    "ok",
		}
		healthy := true

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			checks["postgres"] = "unreachable"
			healthy = false
		}
		if rdb.Ping(ctx).Err() != nil {
			checks["redis"] = "unreachable"
			healthy = false
		}

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"ok": healthy, "checks": checks})
	}
}
