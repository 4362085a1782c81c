// --- File: cmd/bridgedemo/desktophost.go ---
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gen2brain/beeep"
	"github.com/google/uuid"

	"github.com/tinywideclouds/go-notification-bridge/pkg/channel"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

// displayRequest is the slice of the call body the desktop host cares
// about; scheduling fields are ignored.
type displayRequest struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Payload string `json:"payload"`
}

// desktopHost stands in for a mobile runtime: show calls become desktop
// notifications and registration issues a random token through the event
// path. The desktop has no scheduler, so schedule and repeat calls degrade
// to an immediate display.
type desktopHost struct {
	logger *slog.Logger
	icon   string
	events *channel.HostLink
}

func newDesktopHost(icon string, logger *slog.Logger) *desktopHost {
	return &desktopHost{
		logger: logger.With("component", "DesktopHost"),
		icon:   icon,
	}
}

// Bind gives the host its event path. The link wraps the host, so the two
// are tied together after construction.
func (h *desktopHost) Bind(link *channel.HostLink) { h.events = link }

// HandleCall implements channel.Host.
func (h *desktopHost) HandleCall(method string, args []byte) ([]byte, error) {
	switch method {
	case notification.MethodInitialize:
		h.logger.Info("Host initialized.")
		return json.Marshal(true)

	case notification.MethodShow,
		notification.MethodSchedule,
		notification.MethodPeriodicallyShow,
		notification.MethodShowDailyAtTime,
		notification.MethodShowWeeklyAtDayAndTime:
		return nil, h.display(method, args)

	case notification.MethodCancel, notification.MethodCancelAll:
		h.logger.Info("Cancel acknowledged.", "method", method)
		return nil, nil

	case notification.MethodRegisterForRemoteNotifications:
		go h.issueToken()
		return nil, nil

	case notification.MethodGetNotificationAppLaunchDetails:
		return json.Marshal(map[string]any{"notificationLaunchedApp": false})

	default:
		return nil, &channel.Error{Code: "unimplemented", Message: fmt.Sprintf("method %q", method)}
	}
}

func (h *desktopHost) display(method string, args []byte) error {
	var req displayRequest
	if err := json.Unmarshal(args, &req); err != nil {
		return &channel.Error{Code: "bad_args", Message: err.Error()}
	}
	h.logger.Info("Displaying notification.", "method", method, "id", req.ID, "title", req.Title)
	if err := beeep.Notify(req.Title, req.Body, h.icon); err != nil {
		return err
	}

	// Desktop notifications give us no tap callback; emulate one so the
	// selection path is visible in the demo.
	payload, _ := json.Marshal(req.Payload)
	if err := h.events.EmitEvent(notification.EventSelectNotification, payload); err != nil {
		h.logger.Warn("Tap event rejected.", "err", err)
	}
	return nil
}

// issueToken emulates the asynchronous native registration flow: the call
// returns immediately and the token arrives later as an event.
func (h *desktopHost) issueToken() {
	token, err := json.Marshal(uuid.NewString())
	if err != nil {
		h.logger.Error("Token encode failed.", "err", err)
		return
	}
	if err := h.events.EmitEvent(notification.EventTokenRegistered, token); err != nil {
		h.logger.Error("Token event rejected.", "err", err)
	}
}
