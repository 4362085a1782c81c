// Package channeltest provides a scripted Host for exercising bridge
// components in tests without a native runtime.
package channeltest

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tinywideclouds/go-notification-bridge/pkg/channel"
)

// HandlerFunc answers one scripted call. The returned value is JSON-encoded
// into the reply.
type HandlerFunc func(args json.RawMessage) (any, error)

// Call records one call the host received.
type Call struct {
	Method string
	Args   json.RawMessage
}

// Host is a channel.Host whose behaviour is scripted per method. Calls to
// methods without a script fail with an "unimplemented" host error. All
// methods are safe for concurrent use.
type Host struct {
	mu       sync.Mutex
	handlers map[string]HandlerFunc
	calls    []Call
}

// NewHost returns an empty scripted host.
func NewHost() *Host {
	return &Host{handlers: make(map[string]HandlerFunc)}
}

// Handle scripts the reply for one method, replacing any previous script.
func (h *Host) Handle(method string, fn HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[method] = fn
}

// HandleCall implements channel.Host.
func (h *Host) HandleCall(method string, args []byte) ([]byte, error) {
	h.mu.Lock()
	recorded := make(json.RawMessage, len(args))
	copy(recorded, args)
	h.calls = append(h.calls, Call{Method: method, Args: recorded})
	fn := h.handlers[method]
	h.mu.Unlock()

	if fn == nil {
		return nil, &channel.Error{
			Code:    "unimplemented",
			Message: fmt.Sprintf("no script for method %q", method),
		}
	}

	result, err := fn(recorded)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("channeltest: encode scripted result: %w", err)
	}
	return encoded, nil
}

// Calls returns a copy of every call received so far, in order.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// CallCount reports how many times the given method was called.
func (h *Host) CallCount(method string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for _, c := range h.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// LastCall returns the most recent call to the given method, or false when
// it was never called.
func (h *Host) LastCall(method string) (Call, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := len(h.calls) - 1; i >= 0; i-- {
		if h.calls[i].Method == method {
			return h.calls[i], true
		}
	}
	return Call{}, false
}
