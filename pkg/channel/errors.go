// --- File: pkg/channel/errors.go ---
package channel

import "errors"

// ErrClosed is returned when a call is attempted on a channel that has been
// closed, or when the channel closes while calls are still in flight.
var ErrClosed = errors.New("channel: closed")

// ErrNoHandler is returned when an event arrives and no event handler is
// registered to receive it.
var ErrNoHandler = errors.New("channel: no event handler registered")
