package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Development signing secrets. Production refuses to start with them.
const (
	devSessionSecret      = "dev_session_secret"
	devAdminSessionSecret = "dev_admin_secret"
)

type Config struct {
	Env  string
	Port int

	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Session  SessionConfig
	Admin    AdminConfig
	Auth     AuthConfig
	Reviews  ReviewsConfig
	CORS     CORSConfig
	Log      LogConfig
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

// CacheConfig toggles read-page caching in Redis.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// SessionConfig configures the end-user session cookie.
type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
	Secure     bool
}

// AdminConfig holds the single admin credential pair and its session cookie.
type AdminConfig struct {
	Username      string
	Password      string
	SessionSecret string
	SessionTTL    time.Duration
	CookieName    string
}

// AuthConfig restricts which accounts may sign in and write data.
type AuthConfig struct {
	AllowedEmailDomain string
	MinPasswordLength  int
}

// ReviewsConfig caps review submissions.
type ReviewsConfig struct {
	CommentLimit int
	MaxTags      int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
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
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects production settings that would let anyone forge a
// session: an empty signing secret or one left at its development default.
func (c *Config) Validate() error {
	if c.Env != EnvProduction {
		return nil
	}
	secrets := []struct {
		key, value, dev string
	}{
		{"SESSION_SECRET", c.Session.Secret, devSessionSecret},
		{"ADMIN_SESSION_SECRET", c.Admin.SessionSecret, devAdminSessionSecret},
	}
	for _, s := range secrets {
		if strings.TrimSpace(s.value) == "" || s.value == s.dev {
			return fmt.Errorf("%s must be set to a non-default value in production", s.key)
		}
	}
	return nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

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

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CACHE"),
		TTL:     parseDuration(v.GetString("CACHE_TTL"), 5*time.Minute),
	}

	cfg.Session = SessionConfig{
		Secret:     v.GetString("SESSION_SECRET"),
		TTL:        parseDuration(v.GetString("SESSION_TTL"), 7*24*time.Hour),
		CookieName: v.GetString("SESSION_COOKIE"),
		Secure:     v.GetBool("COOKIE_SECURE"),
	}

	cfg.Admin = AdminConfig{
		Username:      v.GetString("ADMIN_USERNAME"),
		Password:      v.GetString("ADMIN_PASSWORD"),
		SessionSecret: v.GetString("ADMIN_SESSION_SECRET"),
		SessionTTL:    parseDuration(v.GetString("ADMIN_SESSION_TTL"), 12*time.Hour),
		CookieName:    v.GetString("ADMIN_COOKIE"),
	}

	cfg.Auth = AuthConfig{
		AllowedEmailDomain: v.GetString("ALLOWED_EMAIL_DOMAIN"),
		MinPasswordLength:  v.GetInt("MIN_PASSWORD_LENGTH"),
	}

	cfg.Reviews = ReviewsConfig{
		CommentLimit: v.GetInt("REVIEW_COMMENT_LIMIT"),
		MaxTags:      v.GetInt("REVIEW_MAX_TAGS"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "rate_my_teacher")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("CACHE_TTL", "5m")

	v.SetDefault("SESSION_SECRET", devSessionSecret)
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("SESSION_COOKIE", "rmt_session")
	v.SetDefault("COOKIE_SECURE", false)

	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_SESSION_SECRET", devAdminSessionSecret)
	v.SetDefault("ADMIN_SESSION_TTL", "12h")
	v.SetDefault("ADMIN_COOKIE", "rmt_admin")

	v.SetDefault("ALLOWED_EMAIL_DOMAIN", "basischina.com")
	v.SetDefault("MIN_PASSWORD_LENGTH", 8)

	v.SetDefault("REVIEW_COMMENT_LIMIT", 1200)
	v.SetDefault("REVIEW_MAX_TAGS", 10)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
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
