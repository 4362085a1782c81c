// --- File: pkg/channel/hostlink.go ---
package channel

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Host is the contract the native runtime implements when it shares a
// process with the facade. Methods use only strings and byte slices so the
// interface survives language binding layers.
type Host interface {
	// HandleCall executes one named call and returns its JSON-encoded
	// result. A host that wants to control the error code returns an
	// *Error; any other error is relayed under the generic "error" code.
	HandleCall(method string, args []byte) ([]byte, error)
}

// HostLink is the in-process Channel implementation. Calls run synchronously
// on the caller's goroutine; a call already handed to the host cannot be
// interrupted, so the context is only consulted before dispatch. Events
// pushed by the host through EmitEvent reach the registered handler on the
// emitting goroutine, one delivery at a time: a host emitting from several
// goroutines never overlaps handler runs.
type HostLink struct {
	host   Host
	logger *slog.Logger

	handlerMu sync.RWMutex
	handler   EventHandler

	// deliverMu serializes handler runs across emitting goroutines.
	deliverMu sync.Mutex
}

// NewHostLink wires a Host into a Channel.
func NewHostLink(host Host, logger *slog.Logger) *HostLink {
	return &HostLink{
		host:   host,
		logger: logger.With("component", "HostLink"),
	}
}

// Invoke implements Invoker.
func (l *HostLink) Invoke(ctx context.Context, method string, args any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	encoded, err := marshalArgs(args)
	if err != nil {
		return nil, err
	}

	result, err := l.host.HandleCall(method, encoded)
	if err != nil {
		return nil, asHostError(err)
	}
	return result, nil
}

// SetEventHandler implements Channel.
func (l *HostLink) SetEventHandler(h EventHandler) {
	l.handlerMu.Lock()
	defer l.handlerMu.Unlock()
	l.handler = h
}

// EmitEvent delivers a named event from the host to the registered handler,
// one delivery at a time even when hosts emit concurrently. It returns
// ErrNoHandler when nothing is registered, in which case the event is
// dropped.
func (l *HostLink) EmitEvent(method string, args []byte) error {
	l.handlerMu.RLock()
	handler := l.handler
	l.handlerMu.RUnlock()

	if handler == nil {
		l.logger.Warn("Event dropped, no handler registered.", "method", method)
		return ErrNoHandler
	}

	l.deliverMu.Lock()
	defer l.deliverMu.Unlock()
	return handler.HandleEvent(method, json.RawMessage(args))
}
