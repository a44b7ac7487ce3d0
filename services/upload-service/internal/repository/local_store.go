package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
)

// LocalAssetStore keeps assets as files in a single directory that is served statically.
type LocalAssetStore struct {
	baseDir string
}

var _ domain.AssetStore = (*LocalAssetStore)(nil)

func NewLocalAssetStore(baseDir string) *LocalAssetStore {
	return &LocalAssetStore{baseDir: baseDir}
}

// Dir returns the asset root.
func (s *LocalAssetStore) Dir() string { return s.baseDir }

func (s *LocalAssetStore) Init(_ context.Context) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	return nil
}

// Save creates the file exclusively, so an existing asset is never overwritten.
func (s *LocalAssetStore) Save(_ context.Context, filename string, data []byte, _ string) (string, int64, error) {
	if err := validateName(filename); err != nil {
		return "", 0, err
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: mkdir: %w", err)
	}

	dest := filepath.Join(s.baseDir, filename)
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", 0, fmt.Errorf("storage: %s: %w", filename, domain.ErrAssetExists)
		}
		return "", 0, fmt.Errorf("storage: create: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(dest)
		return "", 0, fmt.Errorf("storage: write: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dest)
		return "", 0, fmt.Errorf("storage: close: %w", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		return "", 0, fmt.Errorf("storage: stat: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", 0, fmt.Errorf("storage: %s is not a regular file", dest)
	}
	return dest, info.Size(), nil
}

func (s *LocalAssetStore) Ready(_ context.Context) error {
	info, err := os.Stat(s.baseDir)
	if err != nil {
		return fmt.Errorf("storage: stat: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage: %s is not a directory", s.baseDir)
	}
	return nil
}
