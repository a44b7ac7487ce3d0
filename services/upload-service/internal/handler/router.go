package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/LaithTanirah/football/pkg/jwt"
	"github.com/LaithTanirah/football/pkg/logger"
	"github.com/LaithTanirah/football/pkg/middleware"
	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// APIPrefix is where the uploads router is mounted.
const APIPrefix = "/api/uploads"

// bodySlack covers the JSON envelope and data URI header around the base64 payload.
const bodySlack = 64 << 10

type RouterConfig struct {
	Service       domain.UploadService
	Store         domain.AssetStore
	Reader        domain.AssetReader // nil serves LocalDir from disk
	LocalDir      string
	TokenManager  jwt.TokenManager
	Log           *logger.Logger
	MaxImageBytes int64
	URLPrefix     string
}

func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(Recovery(cfg.Log), RequestLogger(cfg.Log))

	r.GET("/healthz", NewHealthHandler(cfg.Store).Health)

	uploadHandler := NewUploadHandler(cfg.Service, cfg.Log, cfg.MaxImageBytes)
	uploads := r.Group(APIPrefix)
	uploads.POST("/team-logo",
		middleware.AuthMiddleware(cfg.TokenManager),
		MaxBodyBytes(MaxRequestBytes(cfg.MaxImageBytes)),
		uploadHandler.UploadTeamLogoHandler,
	)

	assets := r.Group(cfg.URLPrefix, AssetHeaders())
	if cfg.Reader != nil {
		assetHandler := NewAssetHandler(cfg.Reader, cfg.Log)
		assets.GET("/:filename", assetHandler.ServeAsset)
		assets.HEAD("/:filename", assetHandler.ServeAsset)
	} else {
		assets.StaticFS("/", gin.Dir(cfg.LocalDir, false))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found", "code": domain.CodeNotFound})
	})
	return r, nil
}

// MaxRequestBytes is the body size needed to carry an image of maxImageBytes as base64 JSON.
func MaxRequestBytes(maxImageBytes int64) int64 {
	return int64(base64.StdEncoding.EncodedLen(int(maxImageBytes))) + bodySlack
}
