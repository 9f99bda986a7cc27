package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ValidateSSLMode(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		sslMode     string
		expectError bool
	}{
		{"Production with empty SSL mode", "production", "", true},
		{"Production with disable SSL mode", "production", "disable", true},
		{"Production with require SSL mode", "production", "require", false},
		{"Prod with verify-full SSL mode", "prod", "verify-full", false},
		{"Development with disable SSL mode", "development", "disable", false},
		{"Test with empty SSL mode", "test", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Port:      "8080",
				DBName:    "chirp",
				Env:       tt.env,
				DBSSLMode: tt.sslMode,
			}

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ValidateRequiredFields(t *testing.T) {
	t.Run("Missing Port", func(t *testing.T) {
		c := &Config{DBName: "chirp", Env: "development"}
		assert.Error(t, c.Validate())
	})

	t.Run("Missing DB Name", func(t *testing.T) {
		c := &Config{Port: "8080", Env: "development"}
		assert.Error(t, c.Validate())
	})
}

func TestConfig_DSN(t *testing.T) {
	c := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "chirp",
		DBSSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=app password=secret dbname=chirp sslmode=require",
		c.DSN())
}

func TestConfig_DSN_DefaultsSSLMode(t *testing.T) {
	c := &Config{DBHost: "localhost", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "d"}
	assert.Contains(t, c.DSN(), "sslmode=disable")
}

func TestConfig_IsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "PROD"}).IsProduction())
	assert.True(t, (&Config{Env: " prod "}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: ""}).IsProduction())
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	os.Unsetenv("PORT")
	os.Unsetenv("APP_ENV")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "static/uploads", cfg.UploadDir)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "chirp_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "chirp_test", cfg.DBName)
}
