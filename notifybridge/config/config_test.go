// --- File: notifybridge/config/config_test.go ---
package config_test

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinywideclouds/go-notification-bridge/notifybridge/config"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUpdateSettingsWithEnvOverrides(t *testing.T) {
	logger := newTestLogger()

	baseSettings := func() *config.Settings {
		return &config.Settings{
			Platform: notification.PlatformAndroid,
			Android:  config.AndroidSettings{DefaultIcon: "base_icon"},
			TokenBackend: config.TokenBackendSettings{
				Enabled:  true,
				Endpoint: "https://base.example.com/tokens",
				Timeout:  5 * time.Second,
			},
		}
	}

	t.Run("Success - All overrides applied", func(t *testing.T) {
		cfg := baseSettings()

		t.Setenv("NOTIFY_PLATFORM", "ios")
		t.Setenv("NOTIFY_DEFAULT_ICON", "env_icon")
		t.Setenv("NOTIFY_TOKEN_ENDPOINT", "https://env.example.com/tokens")
		t.Setenv("NOTIFY_TOKEN_TIMEOUT_SECONDS", "30")

		finalCfg, err := config.UpdateSettingsWithEnvOverrides(cfg, logger)
		require.NoError(t, err)

		assert.Equal(t, notification.PlatformIOS, finalCfg.Platform)
		assert.Equal(t, "env_icon", finalCfg.Android.DefaultIcon)
		assert.Equal(t, "https://env.example.com/tokens", finalCfg.TokenBackend.Endpoint)
		assert.Equal(t, 30*time.Second, finalCfg.TokenBackend.Timeout)
	})

	t.Run("Success - Defaults preserved", func(t *testing.T) {
		cfg := baseSettings()
		finalCfg, err := config.UpdateSettingsWithEnvOverrides(cfg, logger)
		require.NoError(t, err)

		assert.Equal(t, notification.PlatformAndroid, finalCfg.Platform)
		assert.Equal(t, "base_icon", finalCfg.Android.DefaultIcon)
		assert.Equal(t, 5*time.Second, finalCfg.TokenBackend.Timeout)
	})

	t.Run("Success - Endpoint override enables the backend", func(t *testing.T) {
		cfg := &config.Settings{Platform: notification.PlatformIOS}

		t.Setenv("NOTIFY_TOKEN_ENDPOINT", "https://env.example.com/tokens")
		t.Setenv("NOTIFY_TOKEN_AUTH_TOKEN", "env-jwt")

		finalCfg, err := config.UpdateSettingsWithEnvOverrides(cfg, logger)
		require.NoError(t, err)
		assert.True(t, finalCfg.TokenBackend.Enabled)
		assert.Equal(t, "env-jwt", finalCfg.TokenBackend.AuthToken)
		assert.Equal(t, 10*time.Second, finalCfg.TokenBackend.Timeout)
	})

	t.Run("Success - Backend can be disabled explicitly", func(t *testing.T) {
		cfg := baseSettings()

		t.Setenv("NOTIFY_TOKEN_BACKEND_ENABLED", "false")

		finalCfg, err := config.UpdateSettingsWithEnvOverrides(cfg, logger)
		require.NoError(t, err)
		assert.False(t, finalCfg.TokenBackend.Enabled)
	})

	t.Run("Validation Failure - Missing platform", func(t *testing.T) {
		cfg := &config.Settings{}
		os.Unsetenv("NOTIFY_PLATFORM")
		_, err := config.UpdateSettingsWithEnvOverrides(cfg, logger)
		assert.Error(t, err)
	})

	t.Run("Validation Failure - Unknown platform", func(t *testing.T) {
		cfg := baseSettings()

		t.Setenv("NOTIFY_PLATFORM", "symbian")

		_, err := config.UpdateSettingsWithEnvOverrides(cfg, logger)
		assert.ErrorIs(t, err, notification.ErrUnknownPlatform)
	})

	t.Run("Validation Failure - Android without default icon", func(t *testing.T) {
		cfg := &config.Settings{Platform: notification.PlatformAndroid}
		os.Unsetenv("NOTIFY_DEFAULT_ICON")
		_, err := config.UpdateSettingsWithEnvOverrides(cfg, logger)
		assert.Error(t, err)
	})

	t.Run("Validation Failure - Enabled backend without endpoint", func(t *testing.T) {
		cfg := &config.Settings{
			Platform:     notification.PlatformIOS,
			TokenBackend: config.TokenBackendSettings{Enabled: true},
		}
		_, err := config.UpdateSettingsWithEnvOverrides(cfg, logger)
		assert.Error(t, err)
	})
}

func TestInitializationSettings(t *testing.T) {
	t.Run("Android branch only", func(t *testing.T) {
		cfg := &config.Settings{
			Platform: notification.PlatformAndroid,
			Android:  config.AndroidSettings{DefaultIcon: "app_icon"},
			IOS:      config.IOSSettings{RequestAlertPermission: true},
		}

		settings := cfg.InitializationSettings()
		require.NotNil(t, settings.Android)
		assert.Equal(t, "app_icon", settings.Android.DefaultIcon)
		assert.Nil(t, settings.IOS)
	})

	t.Run("IOS branch only", func(t *testing.T) {
		cfg := &config.Settings{
			Platform: notification.PlatformIOS,
			IOS: config.IOSSettings{
				RequestAlertPermission: true,
				RequestSoundPermission: true,
			},
		}

		settings := cfg.InitializationSettings()
		require.NotNil(t, settings.IOS)
		assert.True(t, settings.IOS.RequestAlertPermission)
		assert.True(t, settings.IOS.RequestSoundPermission)
		assert.False(t, settings.IOS.RequestBadgePermission)
		assert.Nil(t, settings.Android)
	})
}
