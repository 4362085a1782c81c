// --- File: internal/platform/android/androidencoder.go ---
package android

import (
	"fmt"

	"github.com/tinywideclouds/go-notification-bridge/internal/platform"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

// initArgs is the android branch of an initialize call.
type initArgs struct {
	DefaultIcon string `json:"defaultIcon"`
}

// specifics is the android branch of a show or schedule call, shaped the way
// the native scheduler expects it.
type specifics struct {
	Icon               string  `json:"icon,omitempty"`
	ChannelID          string  `json:"channelId"`
	ChannelName        string  `json:"channelName"`
	ChannelDescription string  `json:"channelDescription,omitempty"`
	Importance         int     `json:"importance"`
	Priority           int     `json:"priority"`
	PlaySound          bool    `json:"playSound"`
	Sound              string  `json:"sound,omitempty"`
	EnableVibration    bool    `json:"enableVibration"`
	VibrationPattern   []int64 `json:"vibrationPattern,omitempty"`
	GroupKey           string  `json:"groupKey,omitempty"`
	SetAsGroupSummary  bool    `json:"setAsGroupSummary"`
	AutoCancel         bool    `json:"autoCancel"`
	Ongoing            bool    `json:"ongoing"`
	LargeIcon          string  `json:"largeIcon,omitempty"`
	Ticker             string  `json:"ticker,omitempty"`
}

// importanceValues maps the neutral importance scale onto the values the
// android notification manager defines.
var importanceValues = map[notification.Importance]int{
	notification.ImportanceNone:    0,
	notification.ImportanceMin:     1,
	notification.ImportanceLow:     2,
	notification.ImportanceDefault: 3,
	notification.ImportanceHigh:    4,
	notification.ImportanceMax:     5,
}

// Encoder shapes notification options for the android side.
type Encoder struct{}

// NewEncoder returns the android encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Platform implements platform.Encoder.
func (e *Encoder) Platform() notification.Platform {
	return notification.PlatformAndroid
}

// InitializationArgs implements platform.Encoder.
func (e *Encoder) InitializationArgs(settings notification.InitializationSettings) (any, error) {
	if settings.Android == nil {
		return nil, fmt.Errorf("%w: android", platform.ErrMissingSettings)
	}
	return initArgs{DefaultIcon: settings.Android.DefaultIcon}, nil
}

// DetailsArgs implements platform.Encoder.
func (e *Encoder) DetailsArgs(details *notification.Details) (any, error) {
	if details == nil || details.Android == nil {
		return nil, nil
	}
	d := details.Android

	importance, ok := importanceValues[d.Importance]
	if !ok {
		return nil, fmt.Errorf("%w: %d", notification.ErrInvalidImportance, int(d.Importance))
	}
	if !d.Priority.Valid() {
		return nil, fmt.Errorf("%w: %d", notification.ErrInvalidPriority, int(d.Priority))
	}

	return specifics{
		Icon:               d.Icon,
		ChannelID:          d.ChannelID,
		ChannelName:        d.ChannelName,
		ChannelDescription: d.ChannelDescription,
		Importance:         importance,
		Priority:           int(d.Priority),
		PlaySound:          d.PlaySound,
		Sound:              d.Sound,
		EnableVibration:    d.EnableVibration,
		VibrationPattern:   d.VibrationPattern,
		GroupKey:           d.GroupKey,
		SetAsGroupSummary:  d.SetAsGroupSummary,
		AutoCancel:         d.AutoCancel,
		Ongoing:            d.Ongoing,
		LargeIcon:          d.LargeIcon,
		Ticker:             d.Ticker,
	}, nil
}

// LocalNotificationHandler implements platform.Encoder. Android delivers
// foreground notifications itself, so there is never a callback to extract.
func (e *Encoder) LocalNotificationHandler(notification.InitializationSettings) notification.LocalNotificationHandler {
	return nil
}
