package bootstrap

import (
	"context"
	"net/http"

	"go-employee/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StorePinger interface {
	Ping(ctx context.Context) error
}

// Health reports whether the employee store answers a ping.
func Health(store StorePinger) gin.HandlerFunc {
	fallback := zap.L().Named("bootstrap.health")

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := store.Ping(ctx); err != nil {
			contextutil.GetLogger(ctx, fallback).Warn("health check failed: store ping", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"store": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"store": "ok"})
	}
}
