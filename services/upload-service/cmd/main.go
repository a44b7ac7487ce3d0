package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LaithTanirah/football/pkg/jwt"
	"github.com/LaithTanirah/football/pkg/logger"
	"github.com/LaithTanirah/football/services/upload-service/internal/config"
	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
	"github.com/LaithTanirah/football/services/upload-service/internal/handler"
	"github.com/LaithTanirah/football/services/upload-service/internal/repository"
	"github.com/LaithTanirah/football/services/upload-service/internal/service"
	"github.com/redis/go-redis/v9"
)

func main() {
	conf := config.LoadUploadConfig()
	log := logger.New(conf.LogLevel)

	store, reader := newAssetStore(conf, log)

	// The asset root must exist before the first request is accepted.
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Init(initCtx); err != nil {
		cancel()
		log.Fatal("failed to initialize asset store", "backend", conf.StorageBackend, "error", err)
	}
	cancel()
	log.Info("asset store ready", "backend", conf.StorageBackend, "dir", conf.UploadsDir)

	var audit domain.AuditRepository
	if conf.AuditDSN != "" {
		db, err := repository.OpenAuditDB(conf.AuditDSN)
		if err != nil {
			log.Fatal("failed to open audit database", "error", err)
		}
		audit = repository.NewAuditRepository(db)
		log.Info("upload audit log enabled")
	}

	var redisClient *redis.Client
	if addr := conf.RedisAddr(); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:       addr,
			Password:   conf.RedisDBPassword,
			DB:         0, // use default DB
			MaxRetries: 3,
			PoolSize:   10,
		})
		defer redisClient.Close()
		log.Info("token revocation check enabled", "redis", addr)
	}
	tokenManager := jwt.NewTokenManager(conf.JWTSecretKey, redisClient)

	uploadService := service.NewUploadService(store, audit, log, service.Options{
		MaxImageBytes: conf.MaxImageBytes,
		URLPrefix:     conf.UploadsURLPrefix,
	})

	router, err := handler.NewRouter(handler.RouterConfig{
		Service:       uploadService,
		Store:         store,
		Reader:        reader,
		LocalDir:      conf.UploadsDir,
		TokenManager:  tokenManager,
		Log:           log,
		MaxImageBytes: conf.MaxImageBytes,
		URLPrefix:     conf.UploadsURLPrefix,
	})
	if err != nil {
		log.Fatal("failed to build router", "error", err)
	}

	server := &http.Server{
		Addr:         ":" + conf.ServerPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Info("upload-service listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
	}
}

// newAssetStore picks the backend. The reader is nil when assets are served from disk.
func newAssetStore(conf *config.UploadConfig, log *logger.Logger) (domain.AssetStore, domain.AssetReader) {
	switch conf.StorageBackend {
	case config.BackendAzure:
		store, err := repository.NewBlobAssetStoreFromConnectionString(conf.AzureStorageConnectionString, conf.BlobContainerName)
		if err != nil {
			log.Fatal("failed to create blob client", "error", err)
		}
		return store, store
	default:
		return repository.NewLocalAssetStore(conf.UploadsDir), nil
	}
}
