// --- File: notifybridge/options.go ---
package notifybridge

import (
	"log/slog"
	"time"

	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
	"github.com/tinywideclouds/go-notification-bridge/pkg/tokensink"
)

// Option configures the client.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	clock   func() time.Time
	onTap   notification.TapHandler
	onToken notification.TokenHandler
	sink    tokensink.Sink
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
		clock:  time.Now,
	}
}

// WithLogger supplies an external slog.Logger instance.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithClock replaces the wall clock used for repeat scheduling timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.clock = now }
}

// WithTapHandler registers the callback invoked when the user taps a
// notification.
func WithTapHandler(h notification.TapHandler) Option {
	return func(c *config) { c.onTap = h }
}

// WithTokenHandler registers the callback invoked when native remote
// registration delivers a device token.
func WithTokenHandler(h notification.TokenHandler) Option {
	return func(c *config) { c.onToken = h }
}

// WithTokenSink forwards every delivered device token to a backend sink.
func WithTokenSink(s tokensink.Sink) Option {
	return func(c *config) { c.sink = s }
}
