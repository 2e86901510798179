package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Store backend selectors.
const (
	StoreBackendMemory   = "memory"
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Store         StoreConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Session       SessionConfig
	CORS          CORSConfig
	Log           LogConfig
	Identity      IdentityConfig
	Notifications NotificationsConfig
	Exports       ExportsConfig
	Uploads       UploadsConfig
	Bootstrap     BootstrapConfig
}

// StoreConfig selects the key-value store backend holding the content lists.
type StoreConfig struct {
	Backend string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience []string
}

// SessionConfig governs admin session lifetime. Admin access tokens expire
// after AdminTTL, matching the portal's 8-hour session policy.
type SessionConfig struct {
	AdminTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// IdentityConfig tunes the member identity provider.
type IdentityConfig struct {
	// MinPasswordLength mirrors the managed provider's weak-password rule.
	MinPasswordLength int
}

// NotificationsConfig controls asynchronous notification delivery.
type NotificationsConfig struct {
	AsyncDelivery bool
	Workers       int
	BufferSize    int
}

// ExportsConfig gates the admin export endpoints.
type ExportsConfig struct {
	Enabled bool
}

// UploadsConfig controls photo upload storage and signed download links.
type UploadsConfig struct {
	Dir    string
	URLTTL time.Duration
}

// BootstrapConfig seeds the default admin accounts on first start.
type BootstrapConfig struct {
	SeedDefaultAdmins  bool
	SuperAdminPassword string
	AdminPassword      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Store = StoreConfig{Backend: strings.ToLower(v.GetString("STORE_BACKEND"))}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:   v.GetString("JWT_SECRET"),
		Issuer:   v.GetString("JWT_ISSUER"),
		Audience: splitAndTrim(v.GetString("JWT_AUDIENCE")),
	}

	cfg.Session = SessionConfig{
		AdminTTL: parseDuration(v.GetString("ADMIN_SESSION_TTL"), 8*time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Identity = IdentityConfig{
		MinPasswordLength: v.GetInt("IDENTITY_MIN_PASSWORD_LENGTH"),
	}

	cfg.Notifications = NotificationsConfig{
		AsyncDelivery: v.GetBool("NOTIFICATIONS_ASYNC"),
		Workers:       v.GetInt("NOTIFICATIONS_WORKERS"),
		BufferSize:    v.GetInt("NOTIFICATIONS_BUFFER_SIZE"),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	cfg.Uploads = UploadsConfig{
		Dir:    v.GetString("UPLOADS_DIR"),
		URLTTL: parseDuration(v.GetString("UPLOADS_URL_TTL"), 24*time.Hour),
	}

	cfg.Bootstrap = BootstrapConfig{
		SeedDefaultAdmins:  v.GetBool("SEED_DEFAULT_ADMINS"),
		SuperAdminPassword: v.GetString("BOOTSTRAP_SUPER_ADMIN_PASSWORD"),
		AdminPassword:      v.GetString("BOOTSTRAP_ADMIN_PASSWORD"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORE_BACKEND", StoreBackendMemory)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "alumni_portal")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_ISSUER", "alumni-portal-api")
	v.SetDefault("JWT_AUDIENCE", "alumni-portal")
	v.SetDefault("ADMIN_SESSION_TTL", "8h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("IDENTITY_MIN_PASSWORD_LENGTH", 6)

	v.SetDefault("NOTIFICATIONS_ASYNC", false)
	v.SetDefault("NOTIFICATIONS_WORKERS", 1)
	v.SetDefault("NOTIFICATIONS_BUFFER_SIZE", 16)

	v.SetDefault("ENABLE_EXPORTS", true)

	v.SetDefault("UPLOADS_DIR", "./uploads")
	v.SetDefault("UPLOADS_URL_TTL", "24h")

	v.SetDefault("SEED_DEFAULT_ADMINS", true)
	v.SetDefault("BOOTSTRAP_SUPER_ADMIN_PASSWORD", "")
	v.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
