package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/TWRT/taskboard/internal/api"
	"github.com/TWRT/taskboard/internal/client/workersai"
	"github.com/TWRT/taskboard/internal/config"
	"github.com/TWRT/taskboard/internal/logging"
	"github.com/TWRT/taskboard/internal/metrics"
	"github.com/TWRT/taskboard/internal/repository"
)

type serveOptions struct {
	envFile string
	addr    string
}

func runServe(ctx context.Context, opts serveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.HTTPAddr = opts.addr
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := repository.InitDB(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()
	logger.WithField("path", cfg.DBPath).Info("database ready")

	settings, closeSettings, err := newSettingStore(ctx, cfg, db, logger)
	if err != nil {
		return err
	}
	defer closeSettings()

	router := api.SetupRouter(api.Dependencies{
		Tasks:    repository.NewTaskRepository(db),
		Settings: settings,
		Summarizer: workersai.NewWorkersAIClient(workersai.Config{
			BaseURL:   cfg.AIBaseURL,
			AccountID: cfg.AIAccountID,
			Token:     cfg.AIAPIToken,
			Model:     cfg.AIModel,
			Timeout:   cfg.AITimeout,
		}),
		Logger:         logger,
		Metrics:        metrics.New(),
		AssetsDir:      cfg.AssetsDir,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	if cfg.AssetsDir == "" {
		logger.Warn("ASSETS_DIR not set; non-API requests will fail")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newSettingStore(ctx context.Context, cfg *config.Config, db *sql.DB, logger *logrus.Logger) (repository.SettingStore, func(), error) {
	if cfg.KVBackend != config.KVBackendRedis {
		return repository.NewSQLiteSettingStore(db), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
	}
	logger.WithField("addr", cfg.RedisAddr).Info("using redis for settings")

	return repository.NewRedisSettingStore(rdb, cfg.RedisPrefix), func() { rdb.Close() }, nil
}
