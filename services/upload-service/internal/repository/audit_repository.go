package repository

import (
	"context"
	"fmt"

	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// auditRepository implements domain.AuditRepository using GORM.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new AuditRepository with the given GORM DB instance.
func NewAuditRepository(db *gorm.DB) domain.AuditRepository {
	return &auditRepository{db: db}
}

// OpenAuditDB connects to Postgres and migrates the upload_records table.
func OpenAuditDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to audit database: %w", err)
	}
	if err := db.AutoMigrate(&domain.UploadRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate audit database: %w", err)
	}
	return db, nil
}

// Record inserts one upload record.
func (r *auditRepository) Record(ctx context.Context, rec *domain.UploadRecord) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record upload: %w", err)
	}
	return nil
}
