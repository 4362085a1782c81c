package pipeline

import (
	"encoding/json"
	"log/slog"

	"github.com/tinywideclouds/go-notification-bridge/internal/registration"
	"github.com/tinywideclouds/go-notification-bridge/pkg/channel"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

// Callbacks are the application hooks inbound events route to. A nil hook
// means its event is acknowledged and dropped.
type Callbacks struct {
	OnTap               notification.TapHandler
	OnLocalNotification notification.LocalNotificationHandler
	OnToken             notification.TokenHandler
}

// NewProcessor creates the inbound event handler. Each event is decoded and
// routed to its hook. Token events cache the token and resolve the
// registrar's waiters first, then run the token hook.
func NewProcessor(
	callbacks Callbacks,
	registrar *registration.Registrar,
	logger *slog.Logger,
) channel.EventHandlerFunc {
	procLogger := logger.With("component", "EventProcessor")

	return func(method string, args json.RawMessage) error {
		event, err := DecodeEvent(method, args)
		if err != nil {
			procLogger.Error("Inbound event rejected.", "method", method, "err", err)
			return err
		}

		switch evt := event.(type) {
		case TapEvent:
			if callbacks.OnTap != nil {
				callbacks.OnTap(evt.Payload)
			}
		case LocalNotificationEvent:
			if callbacks.OnLocalNotification != nil {
				callbacks.OnLocalNotification(evt.ID, evt.Title, evt.Body, evt.Payload)
			}
		case TokenEvent:
			registrar.Resolve(evt.Token)
			if callbacks.OnToken != nil {
				callbacks.OnToken(evt.Token)
			}
		case RegistrationFailedEvent:
			// Acknowledged but not surfaced to callers; waiters keep
			// waiting for a token that may still arrive.
			procLogger.Warn("Native remote registration failed.")
		case RemoteNotificationEvent:
			procLogger.Debug("Remote notification received while running.")
		}
		return nil
	}
}
