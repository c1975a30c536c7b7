// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var loadDotEnv = func() error { return godotenv.Load() }

type Config struct {
	LogLevel string
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Auth     AuthConfig
	Worker   WorkerConfig
}

type HTTPConfig struct {
	Addr string
}

// DatabaseConfig URL 為空時使用記憶體 store
type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret   string
	MaxAge   time.Duration
	HTTPOnly bool
}

type AuthConfig struct {
	Secret     string
	TokenTTL   time.Duration
	BcryptCost int
}

// WorkerConfig Count 預設為 CPU 數，bcrypt 比對可並行
type WorkerConfig struct {
	Count int
}

// Load 讀取 .env (若存在) 與環境變數
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("讀取 .env 失敗: %w", err)
	}

	cfg := &Config{}
	var err error

	cfg.LogLevel = getenv("LOG_LEVEL", "info")
	cfg.HTTP.Addr = getenv("HTTP_ADDR", ":8080")
	cfg.Database.URL = os.Getenv("DATABASE_URL")

	if cfg.Redis.Addr, err = required("REDIS_ADDR"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = requiredInt("REDIS_DB"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")

	if cfg.Session.Secret, err = required("SESSION_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Session.MaxAge, err = duration("SESSION_MAX_AGE", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.Session.HTTPOnly, err = boolean("SESSION_COOKIE_HTTP_ONLY", false); err != nil {
		return nil, err
	}

	if cfg.Auth.Secret, err = required("AUTH_SECRET_VALUE"); err != nil {
		return nil, err
	}
	if cfg.Auth.TokenTTL, err = duration("TOKEN_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.Auth.BcryptCost, err = positiveInt("BCRYPT_COST", 12); err != nil {
		return nil, err
	}

	if cfg.Worker.Count, err = positiveInt("WORKER_COUNT", runtime.NumCPU()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func required(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("環境變數 %s 未設定", key)
	}
	return v, nil
}

func requiredInt(key string) (int, error) {
	v, err := required(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}

func positiveInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return n, nil
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return d, nil
}

func boolean(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return b, nil
}
