package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type Config struct {
	Port     string `envconfig:"PORT"      default:"3001"`
	GrpcPort string `envconfig:"GRPC_PORT"`

	LogLevel  string `envconfig:"LOG_LEVEL"  default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Used to build the DSN when DATABASE_URL is unset.
	DBHost     string `envconfig:"DB_HOST"     default:"localhost"`
	DBPort     string `envconfig:"DB_PORT"     default:"5432"`
	DBUser     string `envconfig:"DB_USER"     default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"     default:"catalog"`
	DBSSLMode  string `envconfig:"DB_SSLMODE"  default:"disable"`

	// DefaultTagProductCategoryID is assigned to products created through a
	// tag without a category; 0 leaves them uncategorized.
	DefaultTagProductCategoryID int `envconfig:"DEFAULT_TAG_PRODUCT_CATEGORY_ID" default:"0"`

	CacheDriver   string        `envconfig:"CACHE_DRIVER"   default:"none"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL"      default:"1m"`
	RedisAddr     string        `envconfig:"REDIS_ADDR"     default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB"       default:"0"`

	KafkaBrokers     []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopicPrefix string   `envconfig:"KAFKA_TOPIC_PREFIX" default:"catalog."`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads an optional .env file and then the environment.
func Load(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Infof("Configuration loaded: Port=%s, GRPC Port=%s, Store=%s, Cache=%s, LogLevel=%s",
		cfg.Port, cfg.GrpcPort, cfg.StoreDriver, cfg.CacheDriver, cfg.LogLevel)
	return &cfg, nil
}

func (c *Config) validate() error {
	c.StoreDriver = strings.ToLower(c.StoreDriver)
	c.CacheDriver = strings.ToLower(c.CacheDriver)

	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.CacheDriver {
	case CacheDriverNone, CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER %q", c.CacheDriver)
	}
	if c.DefaultTagProductCategoryID < 0 {
		return fmt.Errorf("DEFAULT_TAG_PRODUCT_CATEGORY_ID cannot be negative")
	}
	return nil
}

// DSN returns DATABASE_URL, or a URL assembled from the DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) HTTPAddr() string {
	return listenAddr(c.Port)
}

func (c *Config) GRPCAddr() string {
	return listenAddr(c.GrpcPort)
}

func listenAddr(port string) string {
	if port == "" || strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
