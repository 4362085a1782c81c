// Package platform defines how per-platform notification options are shaped
// for the native side. Each platform contributes an Encoder that knows its
// own branch of the option structs; everything outside the matching branch
// is never sent.
package platform

import (
	"errors"

	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

// ErrMissingSettings is returned when initialization settings carry no
// branch for the platform being initialized.
var ErrMissingSettings = errors.New("platform: missing initialization settings")

// Encoder turns the platform-neutral option structs into the wire shapes one
// native platform expects. Implementations are pure value mappings and are
// safe for concurrent use.
type Encoder interface {
	// Platform identifies which native side this encoder speaks for.
	Platform() notification.Platform

	// InitializationArgs shapes the settings branch for this platform into
	// the initialize call's arguments. Settings without this platform's
	// branch fail with ErrMissingSettings.
	InitializationArgs(settings notification.InitializationSettings) (any, error)

	// DetailsArgs shapes the details branch for this platform into the
	// platformSpecifics value of a show or schedule call. A nil details
	// struct, or one without this platform's branch, yields nil so the
	// field is omitted from the request.
	DetailsArgs(details *notification.Details) (any, error)

	// LocalNotificationHandler extracts the foreground-display callback
	// from the settings when this platform supports one, nil otherwise.
	LocalNotificationHandler(settings notification.InitializationSettings) notification.LocalNotificationHandler
}
