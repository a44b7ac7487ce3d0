package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/LaithTanirah/football/pkg/config"
	"github.com/joho/godotenv"
)

const (
	BackendLocal = "local"
	BackendAzure = "azure"

	defaultMaxImageBytes = 2 << 20 // 2 MiB
)

// UploadConfig extends GlobalConfig with upload-service settings.
type UploadConfig struct {
	config.GlobalConfig
	UploadsDir       string // absolute asset root for the local backend
	UploadsURLPrefix string // public prefix the asset root is served under
	MaxImageBytes    int64
	StorageBackend   string

	AzureStorageConnectionString string
	BlobContainerName            string

	RedisDBURL      string
	RedisDBPort     string
	RedisDBPassword string

	AuditDSN string // optional; enables the upload audit log
}

func LoadUploadConfig() *UploadConfig {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
	conf := &UploadConfig{
		GlobalConfig:     *config.LoadGlobalConfig(),
		UploadsDir:       mustAbs(config.GetEnvOrDefault("UPLOADS_DIR", "./public/uploads")),
		UploadsURLPrefix: "/" + strings.Trim(config.GetEnvOrDefault("UPLOADS_URL_PREFIX", "/uploads"), "/"),
		MaxImageBytes:    int64(config.GetEnvInt("MAX_IMAGE_BYTES", defaultMaxImageBytes)),
		StorageBackend:   strings.ToLower(config.GetEnvOrDefault("STORAGE_BACKEND", BackendLocal)),
		RedisDBURL:       config.GetEnvOrDefault("REDIS_DB_URL", ""),
		RedisDBPort:      config.GetEnvOrDefault("REDIS_DB_PORT", "6379"),
		RedisDBPassword:  config.GetEnvOrDefault("REDIS_DB_PASSWORD", ""),
		AuditDSN:         config.GetEnvOrDefault("UPLOAD_AUDIT_DSN", ""),
	}
	if conf.MaxImageBytes <= 0 {
		conf.MaxImageBytes = defaultMaxImageBytes
	}
	switch conf.StorageBackend {
	case BackendLocal:
	case BackendAzure:
		conf.AzureStorageConnectionString = config.GetEnv("AZURE_STORAGE_CONNECTION_STRING")
		conf.BlobContainerName = config.GetEnv("BLOB_CONTAINER_NAME")
	default:
		panic("unsupported STORAGE_BACKEND: " + conf.StorageBackend)
	}
	return conf
}

// RedisAddr returns host:port, or "" when Redis is not configured.
func (c *UploadConfig) RedisAddr() string {
	if c.RedisDBURL == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", c.RedisDBURL, c.RedisDBPort)
}

func mustAbs(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		panic("cannot resolve UPLOADS_DIR: " + err.Error())
	}
	return abs
}
