package handler

import (
	"errors"
	"net/http"

	"github.com/LaithTanirah/football/pkg/logger"
	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"github.com/LaithTanirah/football/services/upload-service/internal/model"
	"github.com/gin-gonic/gin"
)

const assetCacheControl = "public, max-age=604800"

// AssetHandler serves assets from a backend that is not a local directory.
type AssetHandler struct {
	reader domain.AssetReader
	log    *logger.Logger
}

func NewAssetHandler(reader domain.AssetReader, log *logger.Logger) *AssetHandler {
	return &AssetHandler{reader: reader, log: log}
}

// ServeAsset handles GET /uploads/:filename.
func (h *AssetHandler) ServeAsset(c *gin.Context) {
	name := c.Param("filename")
	body, contentType, size, err := h.reader.Open(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Message: "Asset not found", Code: domain.CodeNotFound})
			return
		}
		h.log.Error("asset download failed", "filename", name, "error", err)
		writeError(c, err)
		return
	}
	defer body.Close()

	c.Header("Cache-Control", assetCacheControl)
	c.DataFromReader(http.StatusOK, size, contentType, body, nil)
}

// AssetHeaders hardens responses for user-supplied files; SVG must not run script when opened directly.
func AssetHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
		c.Next()
	}
}
