// Package channel carries calls and events between the notification facade
// and the native host. The facade issues named calls with JSON arguments and
// awaits JSON replies; the native side pushes named events back the same way.
// Two implementations are provided: HostLink for hosts living in the same
// process, and StreamChannel for hosts reached over a byte stream.
package channel

import (
	"context"
	"encoding/json"
	"fmt"
)

// Invoker issues a single named call to the native host and waits for its
// reply. A nil args value sends no arguments. A failure reported by the host
// is returned as an *Error.
type Invoker interface {
	Invoke(ctx context.Context, method string, args any) (json.RawMessage, error)
}

// EventHandler receives events pushed by the native host. Events for one
// channel are delivered sequentially, in arrival order. A handler may
// invoke methods back on the channel that delivered the event.
type EventHandler interface {
	HandleEvent(method string, args json.RawMessage) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(method string, args json.RawMessage) error

// HandleEvent calls f.
func (f EventHandlerFunc) HandleEvent(method string, args json.RawMessage) error {
	return f(method, args)
}

// Channel is a full bidirectional link to the native host.
type Channel interface {
	Invoker

	// SetEventHandler registers the handler for inbound events, replacing
	// any previous one. Events arriving while no handler is registered are
	// dropped.
	SetEventHandler(h EventHandler)
}

// Error is a structured failure relayed from the native host. Code is a
// short machine-readable identifier, Message is human-readable, and Details
// optionally carries extra JSON context.
type Error struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("channel: host error %s", e.Code)
	}
	return fmt.Sprintf("channel: host error %s: %s", e.Code, e.Message)
}

// asHostError normalizes a host failure into an *Error. Hosts that want to
// control the code return an *Error themselves; anything else is wrapped
// under the generic "error" code.
func asHostError(err error) *Error {
	if hostErr, ok := err.(*Error); ok {
		return hostErr
	}
	return &Error{Code: "error", Message: err.Error()}
}

// marshalArgs encodes call or event arguments, keeping nil as absent rather
// than JSON null.
func marshalArgs(args any) (json.RawMessage, error) {
	if args == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("channel: encode args: %w", err)
	}
	return encoded, nil
}
