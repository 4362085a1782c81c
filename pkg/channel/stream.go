// --- File: pkg/channel/stream.go ---
package channel

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// maxFrameSize bounds a single wire frame. Notification payloads are small,
// so anything near this limit indicates a broken peer.
const maxFrameSize = 1 << 20

// streamWriter serializes frame writes onto a shared stream.
type streamWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (sw *streamWriter) writeFrame(f *frame) error {
	encoded, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("channel: encode frame: %w", err)
	}

	sw.mu.Lock()
	defer sw.mu.Unlock()

	if _, err := sw.w.Write(append(encoded, '\n')); err != nil {
		return fmt.Errorf("channel: write frame: %w", err)
	}
	return nil
}

// StreamChannel speaks the bridge protocol over a byte stream, one JSON
// frame per line. Replies are matched to calls by generated IDs, so calls
// from multiple goroutines may be in flight at once. Events are queued as
// they arrive and delivered one at a time from a dedicated goroutine; the
// read loop never waits on a handler, so a handler is free to invoke
// methods back on the channel that delivered the event.
//
// Once the stream fails or Close is called, every in-flight and future call
// fails with ErrClosed.
type StreamChannel struct {
	rw      io.ReadWriter
	logger  *slog.Logger
	writer  streamWriter
	pending *pendingCalls
	done    chan struct{}

	handlerMu sync.RWMutex
	handler   EventHandler

	queueMu     sync.Mutex
	queueCond   *sync.Cond
	queue       []*frame
	queueClosed bool

	closeOnce sync.Once
	closeErr  error
}

// NewStreamChannel wraps an established stream. If rw implements io.Closer,
// Close also closes the stream.
func NewStreamChannel(rw io.ReadWriter, logger *slog.Logger) *StreamChannel {
	c := &StreamChannel{
		rw:      rw,
		logger:  logger.With("component", "StreamChannel"),
		writer:  streamWriter{w: rw},
		pending: newPendingCalls(),
		done:    make(chan struct{}),
	}
	c.queueCond = sync.NewCond(&c.queueMu)
	return c
}

// Start launches the read and event delivery loops and returns immediately.
// Both run until the context is cancelled, the stream fails, or Close is
// called.
func (c *StreamChannel) Start(ctx context.Context) {
	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				_ = c.Close()
			case <-c.done:
			}
		}()
	}
	go c.readLoop()
	go c.deliverLoop()
}

// Close tears the channel down: in-flight calls fail with ErrClosed and the
// underlying stream is closed when it supports closing. Safe to call more
// than once.
func (c *StreamChannel) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.pending.close()

		c.queueMu.Lock()
		c.queueClosed = true
		c.queueMu.Unlock()
		c.queueCond.Broadcast()

		if closer, ok := c.rw.(io.Closer); ok {
			c.closeErr = closer.Close()
		}
	})
	return c.closeErr
}

// Invoke implements Invoker.
func (c *StreamChannel) Invoke(ctx context.Context, method string, args any) (json.RawMessage, error) {
	encoded, err := marshalArgs(args)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	reply, err := c.pending.add(id)
	if err != nil {
		return nil, err
	}

	if err := c.writer.writeFrame(&frame{Kind: kindCall, ID: id, Method: method, Args: encoded}); err != nil {
		c.pending.remove(id)
		return nil, err
	}

	select {
	case <-ctx.Done():
		c.pending.remove(id)
		return nil, ctx.Err()
	case f, ok := <-reply:
		if !ok {
			return nil, ErrClosed
		}
		if f.Error != nil {
			return nil, f.Error
		}
		return f.Result, nil
	}
}

// SetEventHandler implements Channel.
func (c *StreamChannel) SetEventHandler(h EventHandler) {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()
	c.handler = h
}

func (c *StreamChannel) readLoop() {
	defer func() { _ = c.Close() }()

	scanner := bufio.NewScanner(c.rw)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var f frame
		if err := json.Unmarshal(line, &f); err != nil {
			c.logger.Warn("Dropping undecodable frame.", "err", err)
			continue
		}
		c.dispatch(&f)
	}

	if err := scanner.Err(); err != nil {
		select {
		case <-c.done:
			// Read failure caused by our own Close is not worth reporting.
		default:
			c.logger.Error("Stream read failed.", "err", err)
		}
	}
}

func (c *StreamChannel) dispatch(f *frame) {
	switch f.Kind {
	case kindReply:
		if !c.pending.resolve(f.ID, f) {
			c.logger.Warn("Reply without a waiting call.", "id", f.ID)
		}
	case kindEvent:
		c.enqueueEvent(f)
	default:
		c.logger.Warn("Dropping frame of unexpected kind.", "kind", f.Kind)
	}
}

// enqueueEvent hands an event frame to the delivery loop. The read loop
// never runs the handler itself, so a handler blocked on a nested Invoke
// cannot stall reply resolution.
func (c *StreamChannel) enqueueEvent(f *frame) {
	c.queueMu.Lock()
	if c.queueClosed {
		c.queueMu.Unlock()
		return
	}
	c.queue = append(c.queue, f)
	c.queueMu.Unlock()
	c.queueCond.Signal()
}

// deliverLoop drains the event queue one frame at a time, preserving
// arrival order. Events already queued when Close fires still drain.
func (c *StreamChannel) deliverLoop() {
	for {
		c.queueMu.Lock()
		for len(c.queue) == 0 && !c.queueClosed {
			c.queueCond.Wait()
		}
		if len(c.queue) == 0 {
			c.queueMu.Unlock()
			return
		}
		f := c.queue[0]
		c.queue = c.queue[1:]
		c.queueMu.Unlock()

		c.deliverEvent(f)
	}
}

func (c *StreamChannel) deliverEvent(f *frame) {
	c.handlerMu.RLock()
	handler := c.handler
	c.handlerMu.RUnlock()

	if handler == nil {
		c.logger.Warn("Event dropped, no handler registered.", "method", f.Method)
		return
	}
	if err := handler.HandleEvent(f.Method, f.Args); err != nil {
		c.logger.Error("Event handler failed.", "method", f.Method, "err", err)
	}
}

// StreamHost serves a Host over a byte stream, the mirror of StreamChannel.
// Calls are answered sequentially in arrival order. EmitEvent may be called
// from any goroutine.
type StreamHost struct {
	rw     io.ReadWriter
	host   Host
	logger *slog.Logger
	writer streamWriter
}

// NewStreamHost wraps an established stream.
func NewStreamHost(rw io.ReadWriter, host Host, logger *slog.Logger) *StreamHost {
	return &StreamHost{
		rw:     rw,
		host:   host,
		logger: logger.With("component", "StreamHost"),
		writer: streamWriter{w: rw},
	}
}

// Serve reads and answers calls until the stream ends or ctx is cancelled.
// It returns nil when the peer closes the stream cleanly.
func (h *StreamHost) Serve(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				if closer, ok := h.rw.(io.Closer); ok {
					_ = closer.Close()
				}
			case <-done:
			}
		}()
	}

	scanner := bufio.NewScanner(h.rw)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var f frame
		if err := json.Unmarshal(line, &f); err != nil {
			h.logger.Warn("Dropping undecodable frame.", "err", err)
			continue
		}
		if f.Kind != kindCall {
			h.logger.Warn("Dropping frame of unexpected kind.", "kind", f.Kind)
			continue
		}
		h.answer(&f)
	}

	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("channel: serve: %w", err)
	}
	return nil
}

// EmitEvent pushes a named event to the connected facade.
func (h *StreamHost) EmitEvent(method string, args any) error {
	encoded, err := marshalArgs(args)
	if err != nil {
		return err
	}
	return h.writer.writeFrame(&frame{Kind: kindEvent, Method: method, Args: encoded})
}

func (h *StreamHost) answer(call *frame) {
	reply := frame{Kind: kindReply, ID: call.ID}

	result, err := h.host.HandleCall(call.Method, call.Args)
	if err != nil {
		reply.Error = asHostError(err)
	} else {
		reply.Result = result
	}

	if err := h.writer.writeFrame(&reply); err != nil {
		h.logger.Error("Reply write failed.", "method", call.Method, "err", err)
	}
}
