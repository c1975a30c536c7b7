// File: cmd/service/service.go
package main

import (
	"context"
	"fmt"
	"os"

	"session-guard/internal/cache"
	"session-guard/internal/config"
	"session-guard/internal/database"
	"session-guard/internal/logging"
	"session-guard/internal/router"
	"session-guard/internal/service"
	"session-guard/internal/session"
	"session-guard/internal/store"
	"session-guard/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "session-guard/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stdout, level)

	// 未設定 DATABASE_URL 時使用記憶體 store 與示範帳號
	var db database.DB
	var users store.UserStore
	if cfg.Database.URL != "" {
		if err := runMigrationsFn(cfg.Database.URL); err != nil {
			return fmt.Errorf("Migration 執行失敗: %v", err)
		}
		pool, err := newPgxPool(context.Background(), cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("DB 連線失敗: %v", err)
		}
		defer pool.Close()
		db = pool
		users = store.NewPostgresStore(pool)
	} else {
		logger.Info("DATABASE_URL 未設定，使用記憶體 store")
		users = store.NewMemoryStore(store.DemoUsers()...)
	}

	redis, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	wp := newWorkerPool(cfg.Worker.Count)
	defer wp.Stop()

	authSvc := service.NewAuthService(users, service.BcryptHasher{Cost: cfg.Auth.BcryptCost}, wp)
	tokens, err := service.NewTokenService(service.TokenOptions{Secret: cfg.Auth.Secret, Users: authSvc})
	if err != nil {
		return err
	}
	sessions, err := session.NewManager(
		session.NewStore(redis),
		session.NewSerializer(authSvc),
		session.Options{
			Secret:   cfg.Session.Secret,
			MaxAge:   cfg.Session.MaxAge,
			HTTPOnly: cfg.Session.HTTPOnly,
		},
		logger,
	)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		Auth:     authSvc,
		Tokens:   tokens,
		Sessions: sessions,
		DB:       db,
		Cache:    redis,
		TokenTTL: cfg.Auth.TokenTTL,
		Logger:   logger,
	})

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info("listening", "addr", cfg.HTTP.Addr)
	return startServer(e, cfg.HTTP.Addr)
}
