// --- File: notifybridge/config/config.go ---
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

type AndroidSettings struct {
	DefaultIcon string
}

type IOSSettings struct {
	RequestAlertPermission bool
	RequestSoundPermission bool
	RequestBadgePermission bool
}

type TokenBackendSettings struct {
	Enabled   bool
	Endpoint  string
	AuthToken string
	Timeout   time.Duration
}

// Settings defines the *single*, authoritative configuration.
type Settings struct {
	Platform notification.Platform

	Android      AndroidSettings
	IOS          IOSSettings
	TokenBackend TokenBackendSettings
}

// InitializationSettings shapes the native initialization block for the
// configured platform.
func (s *Settings) InitializationSettings() notification.InitializationSettings {
	switch s.Platform {
	case notification.PlatformAndroid:
		return notification.InitializationSettings{
			Android: &notification.AndroidInitializationSettings{
				DefaultIcon: s.Android.DefaultIcon,
			},
		}
	case notification.PlatformIOS:
		return notification.InitializationSettings{
			IOS: &notification.IOSInitializationSettings{
				RequestAlertPermission: s.IOS.RequestAlertPermission,
				RequestSoundPermission: s.IOS.RequestSoundPermission,
				RequestBadgePermission: s.IOS.RequestBadgePermission,
			},
		}
	}
	return notification.InitializationSettings{}
}

// UpdateSettingsWithEnvOverrides applies environment variables and final validation.
func UpdateSettingsWithEnvOverrides(cfg *Settings, logger *slog.Logger) (*Settings, error) {
	logger.Debug("Applying environment variable overrides...")

	// 1. Apply Environment Overrides
	if val := os.Getenv("NOTIFY_PLATFORM"); val != "" {
		logger.Debug("Overriding settings value", "key", "NOTIFY_PLATFORM", "source", "env")
		cfg.Platform = notification.Platform(val)
	}
	if val := os.Getenv("NOTIFY_DEFAULT_ICON"); val != "" {
		logger.Debug("Overriding settings value", "key", "NOTIFY_DEFAULT_ICON", "source", "env")
		cfg.Android.DefaultIcon = val
	}

	// Token backend overrides
	if val := os.Getenv("NOTIFY_TOKEN_ENDPOINT"); val != "" {
		logger.Debug("Overriding settings value", "key", "NOTIFY_TOKEN_ENDPOINT", "source", "env")
		cfg.TokenBackend.Endpoint = val
		cfg.TokenBackend.Enabled = true
	}
	if val := os.Getenv("NOTIFY_TOKEN_AUTH_TOKEN"); val != "" {
		cfg.TokenBackend.AuthToken = val
	}
	if val := os.Getenv("NOTIFY_TOKEN_BACKEND_ENABLED"); val != "" {
		enabled, _ := strconv.ParseBool(val)
		cfg.TokenBackend.Enabled = enabled
	}
	if val := os.Getenv("NOTIFY_TOKEN_TIMEOUT_SECONDS"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			cfg.TokenBackend.Timeout = time.Duration(secs) * time.Second
		}
	}

	// 2. Final Validation
	if cfg.Platform == "" {
		return nil, fmt.Errorf("platform is required (set via YAML or NOTIFY_PLATFORM env var)")
	}
	platform, err := notification.ParsePlatform(string(cfg.Platform))
	if err != nil {
		return nil, err
	}
	cfg.Platform = platform

	if cfg.Platform == notification.PlatformAndroid && cfg.Android.DefaultIcon == "" {
		return nil, fmt.Errorf("android.default_icon is required on android (set via YAML or NOTIFY_DEFAULT_ICON env var)")
	}
	if cfg.TokenBackend.Enabled && cfg.TokenBackend.Endpoint == "" {
		return nil, fmt.Errorf("token_backend.endpoint is required when the token backend is enabled")
	}
	if cfg.TokenBackend.Timeout <= 0 {
		cfg.TokenBackend.Timeout = 10 * time.Second
	}

	logger.Debug("Settings finalized and validated successfully")
	return cfg, nil
}
