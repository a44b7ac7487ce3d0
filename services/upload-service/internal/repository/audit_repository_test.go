package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db, mock
}

func testRecord() *domain.UploadRecord {
	return &domain.UploadRecord{
		OwnerID:      "user-42",
		Filename:     "team-logo-user-42-1700000000000-abc123def456.png",
		URL:          "/uploads/team-logo-user-42-1700000000000-abc123def456.png",
		ContentType:  "image/png",
		DetectedType: "image/png",
		SizeBytes:    10,
		CreatedAt:    time.UnixMilli(1700000000000),
	}
}

func TestAuditRepository_Record_Inserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)

	mock.ExpectQuery(`INSERT INTO "upload_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	rec := testRecord()
	if err := repo.Record(context.Background(), rec); err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.ID != 7 {
		t.Errorf("expected id 7 from RETURNING, got %d", rec.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAuditRepository_Record_WrapsDBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuditRepository(db)
	dbErr := errors.New("duplicate key value violates unique constraint")

	mock.ExpectQuery(`INSERT INTO "upload_records"`).WillReturnError(dbErr)

	err := repo.Record(context.Background(), testRecord())
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
