package pipeline_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinywideclouds/go-notification-bridge/internal/pipeline"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

func TestDecodeEvent(t *testing.T) {
	t.Run("Success - Tap event with payload", func(t *testing.T) {
		event, err := pipeline.DecodeEvent(notification.EventSelectNotification, json.RawMessage(`"order:42"`))
		require.NoError(t, err)
		assert.Equal(t, pipeline.TapEvent{Payload: "order:42"}, event)
	})

	t.Run("Success - Tap event with null payload", func(t *testing.T) {
		event, err := pipeline.DecodeEvent(notification.EventSelectNotification, json.RawMessage(`null`))
		require.NoError(t, err)
		assert.Equal(t, pipeline.TapEvent{}, event)
	})

	t.Run("Success - Local notification event", func(t *testing.T) {
		args := json.RawMessage(`{"id":7,"title":"Hi","body":"There","payload":"p"}`)
		event, err := pipeline.DecodeEvent(notification.EventDidReceiveLocal, args)
		require.NoError(t, err)
		assert.Equal(t, pipeline.LocalNotificationEvent{ID: 7, Title: "Hi", Body: "There", Payload: "p"}, event)
	})

	t.Run("Success - Token event", func(t *testing.T) {
		event, err := pipeline.DecodeEvent(notification.EventTokenRegistered, json.RawMessage(`"apns-token-1"`))
		require.NoError(t, err)
		assert.Equal(t, pipeline.TokenEvent{Token: "apns-token-1"}, event)
	})

	t.Run("Success - Registration failure carries nothing", func(t *testing.T) {
		event, err := pipeline.DecodeEvent(notification.EventTokenRegistrationFailed, nil)
		require.NoError(t, err)
		assert.Equal(t, pipeline.RegistrationFailedEvent{}, event)
	})

	t.Run("Failure - Unknown event name", func(t *testing.T) {
		_, err := pipeline.DecodeEvent("didSomethingNovel", nil)
		assert.ErrorIs(t, err, pipeline.ErrUnsupportedEvent)
	})

	t.Run("Failure - Malformed args", func(t *testing.T) {
		_, err := pipeline.DecodeEvent(notification.EventSelectNotification, json.RawMessage(`{"not":"a string"}`))
		assert.Error(t, err)
	})
}
