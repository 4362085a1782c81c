// --- File: cmd/bridgedemo/main.go ---
package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tinywideclouds/go-notification-bridge/notifybridge"
	"github.com/tinywideclouds/go-notification-bridge/notifybridge/config"
	"github.com/tinywideclouds/go-notification-bridge/pkg/channel"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
	"github.com/tinywideclouds/go-notification-bridge/pkg/tokensink"
)

//go:embed local.yaml
var settingsFile []byte

func main() {
	var logLevel slog.Level
	switch os.Getenv("LOG_LEVEL") {
	case "debug", "DEBUG":
		logLevel = slog.LevelDebug
	case "info", "INFO":
		logLevel = slog.LevelInfo
	case "warn", "WARN":
		logLevel = slog.LevelWarn
	case "error", "ERROR":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})).With("service", "bridge-demo")
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Settings Loading ---
	var yamlCfg config.YamlSettings
	if err := yaml.Unmarshal(settingsFile, &yamlCfg); err != nil {
		logger.Error("Failed to unmarshal embedded yaml settings", "err", err)
		os.Exit(1)
	}
	baseCfg, _ := config.NewSettingsFromYaml(&yamlCfg, logger)
	cfg, err := config.UpdateSettingsWithEnvOverrides(baseCfg, logger)
	if err != nil {
		logger.Error("Settings failed", "err", err)
		os.Exit(1)
	}

	// --- Host & Channel ---
	host := newDesktopHost(cfg.Android.DefaultIcon, logger)
	link := channel.NewHostLink(host, logger)
	host.Bind(link)

	// --- Client ---
	handled := make(chan string, 1)
	opts := []notifybridge.Option{
		notifybridge.WithLogger(logger),
		notifybridge.WithTapHandler(func(payload string) {
			logger.Info("Notification tapped", "payload", payload)
		}),
		notifybridge.WithTokenHandler(func(token string) {
			select {
			case handled <- token:
			default:
			}
		}),
	}
	if cfg.TokenBackend.Enabled {
		logger.Info("Token backend enabled", "endpoint", cfg.TokenBackend.Endpoint)
		sink := tokensink.NewHTTPSink(cfg.TokenBackend.Endpoint, cfg.TokenBackend.AuthToken,
			&http.Client{Timeout: cfg.TokenBackend.Timeout}, logger)
		opts = append(opts, notifybridge.WithTokenSink(sink))
	}

	client, err := notifybridge.New(cfg.Platform, link, opts...)
	if err != nil {
		logger.Error("Client creation failed", "err", err)
		os.Exit(1)
	}

	// --- Demo Flow ---
	ok, err := client.Initialize(ctx, cfg.InitializationSettings())
	if err != nil {
		logger.Error("Initialize failed", "err", err)
		os.Exit(1)
	}
	logger.Info("Initialized", "accepted", ok)

	launch, err := client.GetNotificationAppLaunchDetails(ctx)
	if err != nil {
		logger.Error("Launch details failed", "err", err)
		os.Exit(1)
	}
	logger.Info("Launch details", "from_notification", launch.NotificationLaunchedApp)

	err = client.Show(ctx, 1, "Bridge demo", "Hello from the notification bridge", &notification.Details{
		Android: &notification.AndroidDetails{
			ChannelID:   "demo",
			ChannelName: "Demo",
			Importance:  notification.ImportanceHigh,
		},
		IOS: &notification.IOSDetails{PresentAlert: true, PresentSound: true},
	}, "demo:hello")
	if err != nil {
		logger.Error("Show failed", "err", err)
		os.Exit(1)
	}

	token, err := client.RegisterForRemoteNotifications(ctx, notification.RemoteRegistrationOptions{
		Alert: true,
		Sound: true,
	})
	if err != nil {
		logger.Error("Registration failed", "err", err)
		os.Exit(1)
	}
	logger.Info("Device token issued", "token", token)

	// The token handler and backend delivery run asynchronously to the
	// registration call; give them a moment before tearing down.
	select {
	case <-handled:
	case <-time.After(time.Second):
	}

	if err := client.CancelAll(ctx); err != nil {
		logger.Error("CancelAll failed", "err", err)
		os.Exit(1)
	}
	logger.Info("Demo complete.")
}
