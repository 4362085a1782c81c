package ios_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinywideclouds/go-notification-bridge/internal/platform"
	"github.com/tinywideclouds/go-notification-bridge/internal/platform/ios"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	encoded, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(encoded, &m))
	return m
}

func TestDetailsArgs(t *testing.T) {
	encoder := ios.NewEncoder()

	t.Run("Success - Only the ios branch is sent", func(t *testing.T) {
		details := &notification.Details{
			Android: &notification.AndroidDetails{ChannelID: "alerts", Ticker: "tick"},
			IOS:     &notification.IOSDetails{PresentAlert: true, Sound: "chime.aiff"},
		}

		args, err := encoder.DetailsArgs(details)
		require.NoError(t, err)

		m := marshalToMap(t, args)
		assert.Equal(t, true, m["presentAlert"])
		assert.Equal(t, "chime.aiff", m["sound"])
		assert.NotContains(t, m, "channelId")
		assert.NotContains(t, m, "ticker")
	})

	t.Run("Success - Zero badge still sent when set", func(t *testing.T) {
		badge := 0
		args, err := encoder.DetailsArgs(&notification.Details{
			IOS: &notification.IOSDetails{BadgeNumber: &badge},
		})
		require.NoError(t, err)

		m := marshalToMap(t, args)
		require.Contains(t, m, "badgeNumber")
		assert.Equal(t, float64(0), m["badgeNumber"])
	})

	t.Run("Success - Unset badge omitted", func(t *testing.T) {
		args, err := encoder.DetailsArgs(&notification.Details{
			IOS: &notification.IOSDetails{PresentSound: true},
		})
		require.NoError(t, err)
		assert.NotContains(t, marshalToMap(t, args), "badgeNumber")
	})

	t.Run("Success - Nil details or missing branch yields nothing", func(t *testing.T) {
		args, err := encoder.DetailsArgs(nil)
		require.NoError(t, err)
		assert.Nil(t, args)

		args, err = encoder.DetailsArgs(&notification.Details{
			Android: &notification.AndroidDetails{ChannelID: "alerts"},
		})
		require.NoError(t, err)
		assert.Nil(t, args)
	})
}

func TestInitializationArgs(t *testing.T) {
	encoder := ios.NewEncoder()

	t.Run("Success - Permission flags carried", func(t *testing.T) {
		args, err := encoder.InitializationArgs(notification.InitializationSettings{
			IOS: &notification.IOSInitializationSettings{
				RequestAlertPermission: true,
				RequestBadgePermission: true,
			},
		})
		require.NoError(t, err)

		m := marshalToMap(t, args)
		assert.Equal(t, true, m["requestAlertPermission"])
		assert.Equal(t, false, m["requestSoundPermission"])
		assert.Equal(t, true, m["requestBadgePermission"])
	})

	t.Run("Failure - Missing ios branch", func(t *testing.T) {
		_, err := encoder.InitializationArgs(notification.InitializationSettings{
			Android: &notification.AndroidInitializationSettings{DefaultIcon: "app_icon"},
		})
		assert.ErrorIs(t, err, platform.ErrMissingSettings)
	})
}

func TestLocalNotificationHandler(t *testing.T) {
	encoder := ios.NewEncoder()

	t.Run("Success - Callback extracted from settings", func(t *testing.T) {
		called := false
		handler := encoder.LocalNotificationHandler(notification.InitializationSettings{
			IOS: &notification.IOSInitializationSettings{
				OnLocalNotification: func(int, string, string, string) { called = true },
			},
		})
		require.NotNil(t, handler)

		handler(1, "t", "b", "p")
		assert.True(t, called)
	})

	t.Run("Success - No branch means no callback", func(t *testing.T) {
		handler := encoder.LocalNotificationHandler(notification.InitializationSettings{})
		assert.Nil(t, handler)
	})
}
