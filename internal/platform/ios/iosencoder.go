// --- File: internal/platform/ios/iosencoder.go ---
package ios

import (
	"fmt"

	"github.com/tinywideclouds/go-notification-bridge/internal/platform"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

// initArgs is the ios branch of an initialize call.
type initArgs struct {
	RequestAlertPermission bool `json:"requestAlertPermission"`
	RequestSoundPermission bool `json:"requestSoundPermission"`
	RequestBadgePermission bool `json:"requestBadgePermission"`
}

// specifics is the ios branch of a show or schedule call.
type specifics struct {
	PresentAlert bool   `json:"presentAlert"`
	PresentSound bool   `json:"presentSound"`
	PresentBadge bool   `json:"presentBadge"`
	Sound        string `json:"sound,omitempty"`
	BadgeNumber  *int   `json:"badgeNumber,omitempty"`
}

// Encoder shapes notification options for the ios side.
type Encoder struct{}

// NewEncoder returns the ios encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Platform implements platform.Encoder.
func (e *Encoder) Platform() notification.Platform {
	return notification.PlatformIOS
}

// InitializationArgs implements platform.Encoder.
func (e *Encoder) InitializationArgs(settings notification.InitializationSettings) (any, error) {
	if settings.IOS == nil {
		return nil, fmt.Errorf("%w: ios", platform.ErrMissingSettings)
	}
	return initArgs{
		RequestAlertPermission: settings.IOS.RequestAlertPermission,
		RequestSoundPermission: settings.IOS.RequestSoundPermission,
		RequestBadgePermission: settings.IOS.RequestBadgePermission,
	}, nil
}

// DetailsArgs implements platform.Encoder.
func (e *Encoder) DetailsArgs(details *notification.Details) (any, error) {
	if details == nil || details.IOS == nil {
		return nil, nil
	}
	d := details.IOS

	return specifics{
		PresentAlert: d.PresentAlert,
		PresentSound: d.PresentSound,
		PresentBadge: d.PresentBadge,
		Sound:        d.Sound,
		BadgeNumber:  d.BadgeNumber,
	}, nil
}

// LocalNotificationHandler implements platform.Encoder.
func (e *Encoder) LocalNotificationHandler(settings notification.InitializationSettings) notification.LocalNotificationHandler {
	if settings.IOS == nil {
		return nil
	}
	return settings.IOS.OnLocalNotification
}
