// --- File: internal/registration/registrar.go ---
// Package registration holds the single-flight bookkeeping for remote
// notification registration: one native request at a time, any number of
// callers waiting on its token.
package registration

import (
	"context"
	"log/slog"
	"sync"
)

// Registrar caches the device token and fans one token event out to every
// caller waiting on it. All methods are safe for concurrent use.
type Registrar struct {
	logger *slog.Logger

	mu       sync.Mutex
	token    string
	cached   bool
	inFlight bool
	waiters  []chan string
}

// NewRegistrar returns an empty registrar with no cached token.
func NewRegistrar(logger *slog.Logger) *Registrar {
	return &Registrar{logger: logger.With("component", "Registrar")}
}

// Register returns the device token. A cached token resolves immediately
// without native traffic. Otherwise the caller joins the waiter list and, if
// no native request is outstanding, issues one through the supplied issue
// function; everyone waiting is resolved together when Resolve delivers the
// token. An issue failure is returned to the caller that issued it and
// clears the outstanding flag so a later caller can try again.
func (r *Registrar) Register(ctx context.Context, issue func(ctx context.Context) error) (string, error) {
	r.mu.Lock()
	if r.cached {
		token := r.token
		r.mu.Unlock()
		return token, nil
	}

	wait := make(chan string, 1)
	r.waiters = append(r.waiters, wait)

	mustIssue := !r.inFlight
	if mustIssue {
		r.inFlight = true
	}
	r.mu.Unlock()

	if mustIssue {
		if err := issue(ctx); err != nil {
			r.abandon(wait)
			return "", err
		}
	}

	select {
	case <-ctx.Done():
		r.drop(wait)
		return "", ctx.Err()
	case token := <-wait:
		return token, nil
	}
}

// Resolve caches the delivered token and resolves every waiter, in the order
// they registered.
func (r *Registrar) Resolve(token string) {
	r.mu.Lock()
	r.token = token
	r.cached = true
	r.inFlight = false
	waiters := r.waiters
	r.waiters = nil
	r.mu.Unlock()

	r.logger.Debug("Token resolved.", "waiters", len(waiters))
	for _, w := range waiters {
		w <- token
	}
}

// Token returns the cached token, if one has been delivered.
func (r *Registrar) Token() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token, r.cached
}

// abandon backs out after a failed issue call: the caller's waiter leaves
// the list and the outstanding flag clears so the next caller re-issues.
// Waiters from other callers stay queued for a token that may yet arrive.
func (r *Registrar) abandon(wait chan string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false
	r.removeLocked(wait)
}

// drop removes a waiter whose caller stopped waiting.
func (r *Registrar) drop(wait chan string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(wait)
}

func (r *Registrar) removeLocked(wait chan string) {
	for i, w := range r.waiters {
		if w == wait {
			r.waiters = append(r.waiters[:i], r.waiters[i+1:]...)
			return
		}
	}
}
