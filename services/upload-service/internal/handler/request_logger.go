package handler

import (
	"net/http"
	"time"

	"github.com/LaithTanirah/football/pkg/logger"
	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"github.com/LaithTanirah/football/services/upload-service/internal/model"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs each HTTP request after it has been handled.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		)
	}
}

// Recovery turns a panic into the INTERNAL_ERROR envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic while handling request", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Message: "Internal server error",
			Code:    domain.CodeInternal,
		})
	})
}
