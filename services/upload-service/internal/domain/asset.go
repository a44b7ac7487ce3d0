package domain

import (
	"context"
	"io"
	"time"
)

// StoredAsset is an accepted upload. It is never mutated after creation.
type StoredAsset struct {
	Filename     string
	Path         string // location inside the backend (file path or container/blob)
	URL          string // public relative URL
	SizeBytes    int64
	OwnerID      string
	ContentType  string // declared by the data URI
	DetectedType string // sniffed from the bytes
	CreatedAt    time.Time
}

// UploadRecord is one row of the optional audit log.
type UploadRecord struct {
	ID           uint      `gorm:"primaryKey"`
	OwnerID      string    `gorm:"size:128;index;not null"`
	Filename     string    `gorm:"size:255;uniqueIndex;not null"`
	URL          string    `gorm:"size:512;not null"`
	ContentType  string    `gorm:"size:64"`
	DetectedType string    `gorm:"size:64"`
	SizeBytes    int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UploadRecord) TableName() string { return "upload_records" }

// AssetStore persists asset bytes under a caller-chosen unique name.
type AssetStore interface {
	// Init prepares the backend. It is idempotent and called once before serving.
	Init(ctx context.Context) error
	// Save writes data under filename without overwriting and returns where it went and the persisted size.
	Save(ctx context.Context, filename string, data []byte, contentType string) (path string, size int64, err error)
	// Ready reports whether the backend is reachable.
	Ready(ctx context.Context) error
}

// AssetReader streams stored assets back out for backends that are not served from disk.
type AssetReader interface {
	Open(ctx context.Context, filename string) (body io.ReadCloser, contentType string, size int64, err error)
}

type AuditRepository interface {
	Record(ctx context.Context, rec *UploadRecord) error
}

type UploadService interface {
	UploadTeamLogo(ctx context.Context, ownerID, image string) (*StoredAsset, error)
}
