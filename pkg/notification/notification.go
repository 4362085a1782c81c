// Package notification contains the public domain types for the notification
// bridge: identifiers, repeat schedules, per-platform styling options and the
// callback contracts the native layer fires back into application code.
package notification

import (
	"fmt"
	"math"
)

// Platform identifies the native notification subsystem the bridge talks to.
// The value is fixed at client construction; it decides which branch of the
// per-platform option structs is serialized.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// ParsePlatform maps a configuration string onto a known Platform.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformAndroid:
		return PlatformAndroid, nil
	case PlatformIOS:
		return PlatformIOS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// ValidateID checks the one piece of input validation the bridge performs
// locally: notification identifiers must fit in a signed 32-bit integer,
// because that is what the native schedulers key their records on.
func ValidateID(id int) error {
	if id < math.MinInt32 || id > math.MaxInt32 {
		return fmt.Errorf("%w: %d is outside [%d, %d]", ErrIDOutOfRange, id, math.MinInt32, math.MaxInt32)
	}
	return nil
}

// TapHandler receives the payload of a notification the user tapped.
type TapHandler func(payload string)

// LocalNotificationHandler receives notifications delivered while the app is
// in the foreground on hosts that cannot display them themselves (iOS < 10).
type LocalNotificationHandler func(id int, title, body, payload string)

// TokenHandler receives the device token issued by a successful remote
// registration.
type TokenHandler func(token string)
