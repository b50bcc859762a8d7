package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout         = 30 * time.Second
	defaultAddress         = ":9090"
	defaultCacheDB         = 0
	defaultBloomBitSize    = 10000000
	defaultRefreshInterval = time.Minute
	defaultDBMaxRetry      = 10
	defaultDBRetryInterval = 2 * time.Second
	defaultLogLevel        = "info"
	defaultTimeLocation    = "Asia/Seoul"
)

type Database struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	Location      string
	MaxRetry      int
	RetryInterval time.Duration
}

type Cache struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c Cache) Addr() string {
	return c.Host + ":" + c.Port
}

type Config struct {
	Address              string
	ContextTimeout       time.Duration
	JWTSecret            string
	AllowedOrigins       []string
	LogLevel             string
	BloomBitSize         uint64
	BloomRefreshInterval time.Duration
	Database             Database
	Cache                Cache
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Address:              getEnv("SERVER_ADDRESS", defaultAddress),
		ContextTimeout:       getSeconds("CONTEXT_TIMEOUT", defaultTimeout),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		LogLevel:             getEnv("LOG_LEVEL", defaultLogLevel),
		BloomBitSize:         defaultBloomBitSize,
		BloomRefreshInterval: getSeconds("BLOOM_REFRESH_INTERVAL", defaultRefreshInterval),
		Database: Database{
			Host:          getEnv("DATABASE_HOST", "localhost"),
			Port:          getEnv("DATABASE_PORT", "3306"),
			User:          getEnv("DATABASE_USER", "root"),
			Password:      os.Getenv("DATABASE_PASS"),
			Name:          getEnv("DATABASE_NAME", "forum"),
			Location:      getEnv("DATABASE_LOCATION", defaultTimeLocation),
			MaxRetry:      getInt("DATABASE_MAX_RETRY", defaultDBMaxRetry),
			RetryInterval: getSeconds("DATABASE_RETRY_INTERVAL", defaultDBRetryInterval),
		},
		Cache: Cache{
			Host:     getEnv("CACHE_HOST", "localhost"),
			Port:     getEnv("CACHE_PORT", "6379"),
			Password: os.Getenv("CACHE_PASS"),
			DB:       getInt("CACHE_DB", defaultCacheDB),
		},
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	if v := os.Getenv("BLOOM_FILTER_SIZE"); v != "" {
		size, err := strconv.ParseUint(v, 10, 64)
		if err != nil || size == 0 {
			logrus.Warn("failed to parse bloom bit size, using default size")
		} else {
			cfg.BloomBitSize = size
		}
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return n
}

// getSeconds reads a whole number of seconds.
func getSeconds(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logrus.Warnf("failed to parse %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return time.Duration(n) * time.Second
}

func splitList(s string) []string {
	var res []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
