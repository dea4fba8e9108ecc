package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "basischina.com", cfg.Auth.AllowedEmailDomain)
	assert.Equal(t, 1200, cfg.Reviews.CommentLimit)
	assert.Equal(t, 10, cfg.Reviews.MaxTags)
	assert.Equal(t, "rmt_admin", cfg.Admin.CookieName)
	assert.Equal(t, 12*time.Hour, cfg.Admin.SessionTTL)
	assert.Empty(t, cfg.Admin.Username)
	assert.False(t, cfg.Cache.Enabled)
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ADMIN_SESSION_TTL", "bogus")
	v.Set("CACHE_TTL", "30s")
	v.Set("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	cfg := fromViper(v)

	assert.Equal(t, 12*time.Hour, cfg.Admin.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidateProductionSecrets(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)
	require.NoError(t, cfg.Validate())

	cfg.Env = EnvProduction
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")

	cfg.Session.Secret = "s3cr3t-user"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_SESSION_SECRET")

	cfg.Admin.SessionSecret = "  "
	require.Error(t, cfg.Validate())

	cfg.Admin.SessionSecret = "s3cr3t-admin"
	assert.NoError(t, cfg.Validate())
}
