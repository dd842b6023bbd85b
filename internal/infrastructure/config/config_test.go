package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"FURNIMART_APP_NAME":           os.Getenv("FURNIMART_APP_NAME"),
		"FURNIMART_APP_ENV":            os.Getenv("FURNIMART_APP_ENV"),
		"FURNIMART_APP_PORT":           os.Getenv("FURNIMART_APP_PORT"),
		"FURNIMART_DATABASE_HOST":      os.Getenv("FURNIMART_DATABASE_HOST"),
		"FURNIMART_DATABASE_PORT":      os.Getenv("FURNIMART_DATABASE_PORT"),
		"FURNIMART_DATABASE_PASSWORD":  os.Getenv("FURNIMART_DATABASE_PASSWORD"),
		"FURNIMART_DATABASE_SSLMODE":   os.Getenv("FURNIMART_DATABASE_SSLMODE"),
		"FURNIMART_JWT_SECRET":         os.Getenv("FURNIMART_JWT_SECRET"),
		"FURNIMART_JWT_REFRESH_SECRET": os.Getenv("FURNIMART_JWT_REFRESH_SECRET"),
		"FURNIMART_REDIS_HOST":         os.Getenv("FURNIMART_REDIS_HOST"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "furnimart-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, 8080, cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "furnimart", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
		assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiration)
		assert.Equal(t, "furnimart-backend", cfg.JWT.Issuer)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.False(t, cfg.IsProduction())
	})

	t.Run("env vars override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("FURNIMART_APP_PORT", "9090")
		os.Setenv("FURNIMART_DATABASE_HOST", "db.internal")
		os.Setenv("FURNIMART_REDIS_HOST", "cache.internal")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
	})

	t.Run("production requires strong secrets", func(t *testing.T) {
		clearEnv()
		os.Setenv("FURNIMART_APP_ENV", "production")
		os.Setenv("FURNIMART_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects disabled ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("FURNIMART_APP_ENV", "production")
		os.Setenv("FURNIMART_JWT_SECRET", "an-access-secret-that-is-long-enough-123")
		os.Setenv("FURNIMART_JWT_REFRESH_SECRET", "a-refresh-secret-that-is-long-enough-456")
		os.Setenv("FURNIMART_DATABASE_PASSWORD", "secret")
		os.Setenv("FURNIMART_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "furnimart",
		Password: "p@ss/word",
		DBName:   "furnimart",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Password must be escaped, not embedded raw
	assert.NotContains(t, dsn, "p@ss/word")
}
