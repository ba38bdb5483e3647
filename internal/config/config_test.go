package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name          string
		envValue      string
		setEnv        bool
		expected      time.Duration
		expectedError bool
	}{
		{
			name:     "not set uses default",
			expected: 10 * time.Minute,
		},
		{
			name:     "valid duration",
			setEnv:   true,
			envValue: "30m",
			expected: 30 * time.Minute,
		},
		{
			name:     "zero disables",
			setEnv:   true,
			envValue: "0s",
			expected: 0,
		},
		{
			name:          "invalid duration",
			setEnv:        true,
			envValue:      "soon",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv("TEST_DURATION", tt.envValue)
				defer os.Unsetenv("TEST_DURATION")
			}

			d, err := getDuration("TEST_DURATION", 10*time.Minute)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingBotToken(t *testing.T) {
	restoreEnv(t, "BOT_TOKEN", "DB_PASSWORD")

	os.Unsetenv("BOT_TOKEN")
	os.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	restoreEnv(t, "BOT_TOKEN", "DB_PASSWORD")

	os.Setenv("BOT_TOKEN", "test_token")
	os.Unsetenv("DB_PASSWORD")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_WithDefaults(t *testing.T) {
	restoreEnv(t, "BOT_TOKEN", "DB_PASSWORD",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
		"SCHEDULE_BASE_URL", "SCHEDULE_TIMEOUT", "INPUT_TTL")

	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("DB_PASSWORD", "test_db_password")

	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("DB_USER")
	os.Unsetenv("SCHEDULE_BASE_URL")
	os.Unsetenv("SCHEDULE_TIMEOUT")
	os.Unsetenv("INPUT_TTL")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "studjournal", cfg.Database.Name)
	assert.Equal(t, "studjournal", cfg.Database.User)
	assert.Equal(t, "https://table.nsu.ru", cfg.Schedule.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Schedule.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.InputTTL)
}

func TestLoad_InputTTLOverride(t *testing.T) {
	restoreEnv(t, "BOT_TOKEN", "DB_PASSWORD", "INPUT_TTL")

	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("DB_PASSWORD", "test_db_password")
	os.Setenv("INPUT_TTL", "0s")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.InputTTL)
}

func TestLoad_InvalidInputTTL(t *testing.T) {
	restoreEnv(t, "BOT_TOKEN", "DB_PASSWORD", "INPUT_TTL")

	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("DB_PASSWORD", "test_db_password")
	os.Setenv("INPUT_TTL", "forever")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "INPUT_TTL")
}

// restoreEnv snapshots the named variables and restores them when the test ends
func restoreEnv(t *testing.T, keys ...string) {
	t.Helper()
	saved := make(map[string]string, len(keys))
	for _, key := range keys {
		saved[key] = os.Getenv(key)
	}
	t.Cleanup(func() {
		for key, value := range saved {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	})
}
