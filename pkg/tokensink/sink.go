// Package tokensink forwards device tokens obtained from native remote
// registration to whatever backend needs them for sending pushes.
package tokensink

import "context"

// Sink receives the device token whenever native registration delivers one.
type Sink interface {
	Deliver(ctx context.Context, token string) error
}

// Func adapts a function to the Sink interface.
type Func func(ctx context.Context, token string) error

// Deliver calls f.
func (f Func) Deliver(ctx context.Context, token string) error {
	return f(ctx, token)
}
