package testutils

import (
	"testing"
	"time"

	"github.com/happywht/gg-mange/config"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	if len(models) > 0 {
		err = db.AutoMigrate(models...)
		require.NoError(t, err)
	}

	return db
}

func GetTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: "3000",
		},
		Log: config.LogConfig{
			Level:  "error",
			Format: "json",
		},
		Database: config.DatabaseConfig{
			Driver:      "sqlite",
			DSN:         ":memory:",
			AutoMigrate: true,
		},
		Session: config.SessionConfig{
			Name:         "vault_session",
			Store:        "memory",
			MaxAge:       2 * time.Hour,
			Path:         "/",
			HttpOnly:     true,
			SameSite:     "lax",
			LegacyMaxAge: 2 * time.Hour,
		},
		Admin: config.AdminConfig{
			Password:      "admin123",
			AllowedEmails: []string{"admin@example.com"},
		},
		Auth: config.AuthConfig{
			BcryptCost:  4,
			TokenSecret: "test-secret",
			TokenExpiry: 2 * time.Hour,
			Issuer:      "gg-mange-test",
		},
		Contact: config.ContactConfig{
			Name:   "Test Contact",
			Email:  "contact@example.com",
			OpenID: "ou_test",
		},
	}
}

func AssertErrorType(t *testing.T, expected error, actual error) {
	require.Error(t, actual)
	require.Equal(t, expected.Error(), actual.Error())
}
