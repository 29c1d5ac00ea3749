package config_test

import (
	"os"
	"testing"

	"github.com/dmateus/flashdeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := config.Config{
		Addr:     ":8080",
		DBPath:   "test.db",
		LogLevel: "INFO",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := config.Config{
		Addr:     "",
		DBPath:   "test.db",
		LogLevel: "INFO",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := config.Config{
		Addr:     ":8080",
		DBPath:   "",
		LogLevel: "INFO",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_LogLevels(t *testing.T) {
	valid := []string{"DEBUG", "INFO", "WARN", "ERROR", "debug"}
	for _, level := range valid {
		t.Run(level, func(t *testing.T) {
			cfg := config.Config{Addr: ":8080", DBPath: "test.db", LogLevel: level}
			assert.NoError(t, cfg.Validate())
		})
	}

	invalid := []string{"", "INVALID", "TRACE"}
	for _, level := range invalid {
		t.Run("invalid_"+level, func(t *testing.T) {
			cfg := config.Config{Addr: ":8080", DBPath: "test.db", LogLevel: level}
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "LOG_LEVEL")
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:     "",
		DBPath:   "",
		LogLevel: "INVALID",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "LOG_LEVEL"} {
		if v := os.Getenv(key); v != "" {
			t.Setenv(key, "")
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, v) })
		}
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:flashdeck.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
}
