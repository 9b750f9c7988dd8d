package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5003", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, StoreMongo, cfg.Store.Driver)
	assert.Equal(t, "localhost", cfg.Mongo.Host)
	assert.Equal(t, 27017, cfg.Mongo.Port)
	assert.Equal(t, "admin", cfg.Mongo.AuthSource)
	assert.Equal(t, "projects_db", cfg.Mongo.Database)
	assert.Equal(t, "projects", cfg.Mongo.Collection)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.True(t, cfg.HTTP.LenientJSON)
	assert.Zero(t, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, 20, cfg.HTTP.RateLimitBurst)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "postgres://localhost/projects")
	t.Setenv("MONGO_PORT", "not-a-number")
	t.Setenv("LENIENT_JSON", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, StorePostgres, cfg.Store.Driver)
	assert.Equal(t, 27017, cfg.Mongo.Port, "invalid ints fall back to the default")
	assert.False(t, cfg.HTTP.LenientJSON)
	assert.Equal(t, 2.5, cfg.HTTP.RateLimitRPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "5003"},
			Store:  StoreConfig{Driver: StoreMongo},
			Mongo:  MongoConfig{Host: "localhost"},
			Auth:   AuthConfig{JWTSecret: "s"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, "JWT_SECRET_KEY is required"},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "PORT is required"},
		{"postgres without dsn", func(c *Config) { c.Store.Driver = StorePostgres }, "DB_DSN is required"},
		{"memory", func(c *Config) { c.Store.Driver = StoreMemory }, ""},
		{"unknown driver", func(c *Config) { c.Store.Driver = "cassandra" }, "unknown STORE_DRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
