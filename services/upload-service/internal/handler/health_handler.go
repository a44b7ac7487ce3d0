package handler

import (
	"net/http"

	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"github.com/LaithTanirah/football/services/upload-service/internal/model"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store domain.AssetStore
}

func NewHealthHandler(store domain.AssetStore) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ready(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, model.HealthResponse{Status: "unhealthy", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Message: "upload-service"})
}
