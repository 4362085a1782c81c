// --- File: notifybridge/config/yaml_config.go ---
package config

import (
	"log/slog"
	"time"

	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

type YamlAndroidSettings struct {
	DefaultIcon string `yaml:"default_icon"`
}

type YamlIOSSettings struct {
	RequestAlertPermission bool `yaml:"request_alert_permission"`
	RequestSoundPermission bool `yaml:"request_sound_permission"`
	RequestBadgePermission bool `yaml:"request_badge_permission"`
}

type YamlTokenBackendSettings struct {
	Enabled        bool   `yaml:"enabled"`
	Endpoint       string `yaml:"endpoint"`
	AuthToken      string `yaml:"auth_token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// YamlSettings is the structure that mirrors the raw settings yaml file.
type YamlSettings struct {
	Platform     string                   `yaml:"platform"`
	Android      YamlAndroidSettings      `yaml:"android"`
	IOS          YamlIOSSettings          `yaml:"ios"`
	TokenBackend YamlTokenBackendSettings `yaml:"token_backend"`
}

// NewSettingsFromYaml converts the YamlSettings into a clean, base Settings
// struct. The platform is carried over unparsed; validation happens after
// the environment overrides have been applied.
func NewSettingsFromYaml(base *YamlSettings, logger *slog.Logger) (*Settings, error) {
	logger.Debug("Mapping YAML settings to base settings struct")

	cfg := &Settings{
		Platform: notification.Platform(base.Platform),
		Android: AndroidSettings{
			DefaultIcon: base.Android.DefaultIcon,
		},
		IOS: IOSSettings{
			RequestAlertPermission: base.IOS.RequestAlertPermission,
			RequestSoundPermission: base.IOS.RequestSoundPermission,
			RequestBadgePermission: base.IOS.RequestBadgePermission,
		},
		TokenBackend: TokenBackendSettings{
			Enabled:   base.TokenBackend.Enabled,
			Endpoint:  base.TokenBackend.Endpoint,
			AuthToken: base.TokenBackend.AuthToken,
		},
	}

	if base.TokenBackend.TimeoutSeconds > 0 {
		cfg.TokenBackend.Timeout = time.Duration(base.TokenBackend.TimeoutSeconds) * time.Second
	}

	logger.Debug("YAML settings mapping complete",
		"platform", string(cfg.Platform),
		"token_backend_enabled", cfg.TokenBackend.Enabled,
	)

	return cfg, nil
}
