package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// Config holds the application configuration
type Config struct {
	Environment string `validate:"required"`
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`

	APIKey         string   `validate:"required"`
	TrustedProxies []string `validate:"dive,ip"`

	DBUser            string `validate:"required"`
	DBPassword        string
	DBHost            string `validate:"required"`
	DBPort            string `validate:"required,numeric"`
	DBName            string `validate:"required"`
	DBSSLMode         string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	MigrateOnStart    bool

	StorageWorkers   int `validate:"min=1"`
	StorageQueueSize int `validate:"min=1"`

	BonusCacheSize int `validate:"min=0"`
	BonusCacheTTL  time.Duration

	ShieldPriceRow int    `validate:"min=1"`
	CatalogDir     string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:          getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:         getEnv(EnvLogFormat, DefaultLogFormat),
		APIKey:            getEnv(EnvAPIKey, ""),
		TrustedProxies:    getEnvAsList(EnvTrustedProxies),
		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBSSLMode:         getEnv(EnvDBSSLMode, DefaultDBSSLMode),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		MigrateOnStart:    getEnvAsBool(EnvMigrateOnStart, true),
		StorageWorkers:    getEnvAsInt(EnvStorageWorkers, DefaultStorageWorkers),
		StorageQueueSize:  getEnvAsInt(EnvStorageQueueSize, DefaultStorageQueueSize),
		BonusCacheSize:    getEnvAsInt(EnvBonusCacheSize, DefaultBonusCacheSize),
		BonusCacheTTL:     getEnvAsDuration(EnvBonusCacheTTL, DefaultBonusCacheTTL),
		ShieldPriceRow:    getEnvAsInt(EnvShieldPriceRow, DefaultShieldPriceRow),
		CatalogDir:        getEnv(EnvCatalogDir, DefaultCatalogDir),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct constraints of the loaded configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or error
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.Duration variable, falling back on absence or error
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	parts := lo.Map(strings.Split(getEnv(key, ""), ","), func(p string, _ int) string { return strings.TrimSpace(p) })
	return lo.Compact(parts)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}
