package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LaithTanirah/football/pkg/logger"
	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	suffixLength = 12
	auditTimeout = 3 * time.Second
)

type Options struct {
	MaxImageBytes int64
	URLPrefix     string // e.g. "/uploads"
}

// UploadService validates inline images and hands them to an AssetStore.
type UploadService struct {
	store domain.AssetStore
	audit domain.AuditRepository // nil disables the audit log
	log   *logger.Logger
	opts  Options

	now    func() time.Time
	suffix func() string
}

var _ domain.UploadService = (*UploadService)(nil)

func NewUploadService(store domain.AssetStore, audit domain.AuditRepository, log *logger.Logger, opts Options) *UploadService {
	opts.URLPrefix = "/" + strings.Trim(opts.URLPrefix, "/")
	return &UploadService{
		store:  store,
		audit:  audit,
		log:    log.With("component", "upload_service"),
		opts:   opts,
		now:    time.Now,
		suffix: randomSuffix,
	}
}

// UploadTeamLogo runs the validation pipeline and stores the logo under a fresh name.
// Every returned error is a *domain.UploadError.
func (s *UploadService) UploadTeamLogo(ctx context.Context, ownerID, image string) (*domain.StoredAsset, error) {
	if !IsImageDataURI(image) {
		return nil, domain.NewValidationError(InvalidImageMessage)
	}
	subtype, payload, ok := splitDataURI(image)
	if !ok {
		return nil, domain.NewInvalidFormatError("Invalid image data format", nil)
	}
	data, err := decodePayload(payload)
	if err != nil {
		return nil, domain.NewInvalidFormatError("Invalid image data format", err)
	}
	if int64(len(data)) > s.opts.MaxImageBytes {
		return nil, domain.NewFileTooLargeError(SizeLimitMessage(s.opts.MaxImageBytes))
	}

	owner := sanitizeOwner(ownerID)
	if owner == "" {
		return nil, domain.NewInternalError(errors.New("upload without owner id"))
	}
	createdAt := s.now()
	filename := fmt.Sprintf("team-logo-%s-%d-%s.%s", owner, createdAt.UnixMilli(), s.suffix(), extensionFor(subtype))
	contentType := contentTypeFor(subtype)

	// A client hanging up must not abort a write that is already under way.
	path, size, err := s.store.Save(context.WithoutCancel(ctx), filename, data, contentType)
	if err != nil {
		s.log.Error("storing team logo failed", "owner_id", ownerID, "filename", filename, "error", err)
		return nil, domain.NewInternalError(err)
	}

	detected := mimetype.Detect(data)
	if !detected.Is(contentType) {
		s.log.Warn("declared image type does not match content",
			"filename", filename, "declared", contentType, "detected", detected.String())
	}

	asset := &domain.StoredAsset{
		Filename:     filename,
		Path:         path,
		URL:          s.opts.URLPrefix + "/" + filename,
		SizeBytes:    size,
		OwnerID:      ownerID,
		ContentType:  contentType,
		DetectedType: detected.String(),
		CreatedAt:    createdAt,
	}
	s.recordAudit(ctx, asset)

	s.log.Info("team logo stored", "owner_id", ownerID, "path", path, "size_bytes", size)
	return asset, nil
}

// recordAudit is best-effort; failures are logged only.
func (s *UploadService) recordAudit(ctx context.Context, asset *domain.StoredAsset) {
	if s.audit == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()

	err := s.audit.Record(ctx, &domain.UploadRecord{
		OwnerID:      asset.OwnerID,
		Filename:     asset.Filename,
		URL:          asset.URL,
		ContentType:  asset.ContentType,
		DetectedType: asset.DetectedType,
		SizeBytes:    asset.SizeBytes,
		CreatedAt:    asset.CreatedAt,
	})
	if err != nil {
		s.log.Warn("upload audit record failed", "filename", asset.Filename, "error", err)
	}
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
}

// SizeLimitMessage is the caller-facing message for payloads over the quota.
func SizeLimitMessage(limit int64) string {
	return fmt.Sprintf("Image size exceeds %s limit", formatLimit(limit))
}

func formatLimit(n int64) string {
	const mib = 1 << 20
	if n >= mib && n%mib == 0 {
		return fmt.Sprintf("%dMB", n/mib)
	}
	return fmt.Sprintf("%d bytes", n)
}
