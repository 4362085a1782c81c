package pipeline_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinywideclouds/go-notification-bridge/internal/pipeline"
	"github.com/tinywideclouds/go-notification-bridge/internal/registration"
	"github.com/tinywideclouds/go-notification-bridge/pkg/notification"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessor_Routing(t *testing.T) {
	logger := newTestLogger()

	t.Run("Routes tap events to the tap hook", func(t *testing.T) {
		var tapped []string
		processor := pipeline.NewProcessor(pipeline.Callbacks{
			OnTap: func(payload string) { tapped = append(tapped, payload) },
		}, registration.NewRegistrar(logger), logger)

		err := processor(notification.EventSelectNotification, json.RawMessage(`"order:42"`))
		require.NoError(t, err)
		assert.Equal(t, []string{"order:42"}, tapped)
	})

	t.Run("Routes local notification events with all fields", func(t *testing.T) {
		type received struct {
			id                   int
			title, body, payload string
		}
		var got received
		processor := pipeline.NewProcessor(pipeline.Callbacks{
			OnLocalNotification: func(id int, title, body, payload string) {
				got = received{id, title, body, payload}
			},
		}, registration.NewRegistrar(logger), logger)

		err := processor(notification.EventDidReceiveLocal, json.RawMessage(`{"id":3,"title":"T","body":"B","payload":"P"}`))
		require.NoError(t, err)
		assert.Equal(t, received{3, "T", "B", "P"}, got)
	})

	t.Run("Token events resolve waiters before the token hook", func(t *testing.T) {
		registrar := registration.NewRegistrar(logger)

		// The hook must observe the token already cached.
		var cachedAtHook bool
		processor := pipeline.NewProcessor(pipeline.Callbacks{
			OnToken: func(token string) {
				_, cachedAtHook = registrar.Token()
			},
		}, registrar, logger)

		err := processor(notification.EventTokenRegistered, json.RawMessage(`"fcm-token-9"`))
		require.NoError(t, err)
		assert.True(t, cachedAtHook)

		token, err := registrar.Register(context.Background(), func(context.Context) error {
			t.Error("unexpected native request after token event")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "fcm-token-9", token)
	})

	t.Run("Nil hooks acknowledge and drop", func(t *testing.T) {
		processor := pipeline.NewProcessor(pipeline.Callbacks{}, registration.NewRegistrar(logger), logger)

		assert.NoError(t, processor(notification.EventSelectNotification, json.RawMessage(`"ignored"`)))
		assert.NoError(t, processor(notification.EventTokenRegistrationFailed, nil))
		assert.NoError(t, processor(notification.EventRemoteReceived, json.RawMessage(`"data"`)))
	})

	t.Run("Unknown events fail the dispatch", func(t *testing.T) {
		processor := pipeline.NewProcessor(pipeline.Callbacks{}, registration.NewRegistrar(logger), logger)

		err := processor("didSomethingNovel", nil)
		assert.ErrorIs(t, err, pipeline.ErrUnsupportedEvent)
	})
}
