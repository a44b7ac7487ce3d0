package handler

import (
	"errors"
	"net/http"

	"github.com/LaithTanirah/football/pkg/logger"
	"github.com/LaithTanirah/football/pkg/util"
	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"github.com/LaithTanirah/football/services/upload-service/internal/model"
	"github.com/LaithTanirah/football/services/upload-service/internal/service"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service       domain.UploadService
	log           *logger.Logger
	maxImageBytes int64
}

func NewUploadHandler(service domain.UploadService, log *logger.Logger, maxImageBytes int64) *UploadHandler {
	return &UploadHandler{service: service, log: log, maxImageBytes: maxImageBytes}
}

// UploadTeamLogoHandler handles POST /api/uploads/team-logo.
func (h *UploadHandler) UploadTeamLogoHandler(c *gin.Context) {
	ownerID, ok := util.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: "Authentication required", Code: domain.CodeUnauthorized})
		return
	}

	var req model.UploadTeamLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, domain.NewFileTooLargeError(service.SizeLimitMessage(h.maxImageBytes)))
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Message: "Validation error",
			Code:    domain.CodeValidation,
			Details: validationDetails(err),
		})
		return
	}

	asset, err := h.service.UploadTeamLogo(c.Request.Context(), ownerID, req.Image)
	if err != nil {
		if domain.CodeOf(err) == domain.CodeInternal {
			h.log.Error("team logo upload failed", "owner_id", ownerID, "error", err)
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.UploadTeamLogoResponse{Data: model.UploadURL{URL: asset.URL}})
}

// MaxBodyBytes caps how much of the request body handlers may read.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

// writeError renders err as the API error envelope. Causes of internal errors are never exposed.
func writeError(c *gin.Context, err error) {
	var ue *domain.UploadError
	if !errors.As(err, &ue) {
		ue = domain.NewInternalError(err)
	}
	c.JSON(statusFor(ue.Code), model.ErrorResponse{Message: ue.Message, Code: ue.Code})
}

func statusFor(code string) int {
	switch code {
	case domain.CodeValidation, domain.CodeInvalidFormat, domain.CodeFileTooLarge:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
