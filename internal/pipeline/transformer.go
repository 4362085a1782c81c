// --- File: internal/pipeline/transformer.go ---
// Package pipeline turns raw inbound channel events into typed events and
// routes them to the application's callbacks.
package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

// ErrUnsupportedEvent is returned when the native side emits an event this
// build does not know. Unknown events always fail, never silently drop.
var ErrUnsupportedEvent = errors.New("pipeline: unsupported event")

// TapEvent reports that the user tapped a notification.
type TapEvent struct {
	Payload string
}

// LocalNotificationEvent reports a notification presented while the app was
// foregrounded on an older ios version.
type LocalNotificationEvent struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Payload string `json:"payload"`
}

// TokenEvent carries the device token issued by the native push service.
type TokenEvent struct {
	Token string
}

// RegistrationFailedEvent reports that native remote registration failed.
type RegistrationFailedEvent struct{}

// RemoteNotificationEvent reports a remote push delivered while the app was
// running.
type RemoteNotificationEvent struct {
	Payload string
}

// DecodeEvent validates and unmarshals one inbound event into its typed
// form. Event names outside the known set fail with ErrUnsupportedEvent.
func DecodeEvent(name string, args json.RawMessage) (any, error) {
	switch name {
	case notification.EventSelectNotification:
		payload, err := decodeString(name, args)
		if err != nil {
			return nil, err
		}
		return TapEvent{Payload: payload}, nil

	case notification.EventDidReceiveLocal:
		var evt LocalNotificationEvent
		if err := decodeObject(name, args, &evt); err != nil {
			return nil, err
		}
		return evt, nil

	case notification.EventTokenRegistered:
		token, err := decodeString(name, args)
		if err != nil {
			return nil, err
		}
		return TokenEvent{Token: token}, nil

	case notification.EventTokenRegistrationFailed:
		// The native side sends no arguments worth keeping.
		return RegistrationFailedEvent{}, nil

	case notification.EventRemoteReceived:
		payload, err := decodeString(name, args)
		if err != nil {
			return nil, err
		}
		return RemoteNotificationEvent{Payload: payload}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEvent, name)
	}
}

// decodeString reads a bare JSON string argument, treating absent and null
// as empty.
func decodeString(name string, args json.RawMessage) (string, error) {
	if len(args) == 0 || bytes.Equal(args, []byte("null")) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(args, &s); err != nil {
		return "", fmt.Errorf("pipeline: decode %s args: %w", name, err)
	}
	return s, nil
}

func decodeObject(name string, args json.RawMessage, into any) error {
	if len(args) == 0 || bytes.Equal(args, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(args, into); err != nil {
		return fmt.Errorf("pipeline: decode %s args: %w", name, err)
	}
	return nil
}
