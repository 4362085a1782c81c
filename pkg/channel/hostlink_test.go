package channel_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinywideclouds/go-notification-bridge/pkg/channel"
	"github.com/tinywideclouds/go-notification-bridge/pkg/channel/channeltest"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHostLinkInvoke(t *testing.T) {
	t.Run("Success - Result relayed", func(t *testing.T) {
		host := channeltest.NewHost()
		host.Handle("echo", func(args json.RawMessage) (any, error) {
			var payload map[string]string
			require.NoError(t, json.Unmarshal(args, &payload))
			return payload["value"], nil
		})
		link := channel.NewHostLink(host, newTestLogger())

		result, err := link.Invoke(context.Background(), "echo", map[string]string{"value": "pong"})
		require.NoError(t, err)
		assert.JSONEq(t, `"pong"`, string(result))
	})

	t.Run("Success - Nil args sent as absent", func(t *testing.T) {
		host := channeltest.NewHost()
		host.Handle("noop", func(args json.RawMessage) (any, error) {
			assert.Empty(t, args)
			return nil, nil
		})
		link := channel.NewHostLink(host, newTestLogger())

		result, err := link.Invoke(context.Background(), "noop", nil)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Failure - Host error code preserved", func(t *testing.T) {
		host := channeltest.NewHost()
		link := channel.NewHostLink(host, newTestLogger())

		_, err := link.Invoke(context.Background(), "unscripted", nil)
		require.Error(t, err)

		var hostErr *channel.Error
		require.ErrorAs(t, err, &hostErr)
		assert.Equal(t, "unimplemented", hostErr.Code)
	})

	t.Run("Failure - Cancelled context stops dispatch", func(t *testing.T) {
		host := channeltest.NewHost()
		link := channel.NewHostLink(host, newTestLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := link.Invoke(ctx, "echo", nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, host.CallCount("echo"))
	})
}

func TestHostLinkEmitEvent(t *testing.T) {
	t.Run("Success - Events reach handler in order", func(t *testing.T) {
		link := channel.NewHostLink(channeltest.NewHost(), newTestLogger())

		var seen []string
		link.SetEventHandler(channel.EventHandlerFunc(func(method string, args json.RawMessage) error {
			seen = append(seen, method+":"+string(args))
			return nil
		}))

		require.NoError(t, link.EmitEvent("first", []byte(`"a"`)))
		require.NoError(t, link.EmitEvent("second", []byte(`"b"`)))

		assert.Equal(t, []string{`first:"a"`, `second:"b"`}, seen)
	})

	t.Run("Success - Concurrent emitters deliver one at a time", func(t *testing.T) {
		link := channel.NewHostLink(channeltest.NewHost(), newTestLogger())

		var active atomic.Int32
		var overlapped atomic.Bool
		link.SetEventHandler(channel.EventHandlerFunc(func(method string, args json.RawMessage) error {
			if active.Add(1) > 1 {
				overlapped.Store(true)
			}
			// Stay inside the handler long enough for a second emitter to
			// collide if deliveries were not serialized.
			time.Sleep(2 * time.Millisecond)
			active.Add(-1)
			return nil
		}))

		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, link.EmitEvent("tick", nil))
			}()
		}
		wg.Wait()

		assert.False(t, overlapped.Load(), "handler ran concurrently")
	})

	t.Run("Failure - No handler registered", func(t *testing.T) {
		link := channel.NewHostLink(channeltest.NewHost(), newTestLogger())

		err := link.EmitEvent("orphan", nil)
		assert.ErrorIs(t, err, channel.ErrNoHandler)
	})
}
