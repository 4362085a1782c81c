package channel

import "sync"

// pendingCalls tracks in-flight calls awaiting replies, keyed by frame ID.
// Closing the table fails every waiter, which is how stream teardown reaches
// callers blocked in Invoke.
type pendingCalls struct {
	mu     sync.Mutex
	calls  map[string]chan *frame
	closed bool
}

func newPendingCalls() *pendingCalls {
	return &pendingCalls{calls: make(map[string]chan *frame)}
}

// add registers a waiter for the given ID. The returned channel receives the
// reply frame, or is closed if the table shuts down first.
func (p *pendingCalls) add(id string) (<-chan *frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}
	ch := make(chan *frame, 1)
	p.calls[id] = ch
	return ch, nil
}

// resolve delivers a reply to its waiter. It reports false when no call with
// that ID is waiting, which happens when the caller already gave up.
func (p *pendingCalls) resolve(id string, f *frame) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, ok := p.calls[id]
	if !ok {
		return false
	}
	delete(p.calls, id)
	ch <- f
	return true
}

// remove drops a waiter whose caller abandoned the call.
func (p *pendingCalls) remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.calls, id)
}

// close fails every waiter and rejects future adds. Safe to call more than
// once.
func (p *pendingCalls) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	for id, ch := range p.calls {
		delete(p.calls, id)
		close(ch)
	}
}
