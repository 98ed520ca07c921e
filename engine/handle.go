package engine

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrNotReady is returned by Handle.Err while acquisition is still in
// flight.
var ErrNotReady = errors.New("engine: handle not resolved yet")

// OpenFunc performs the actual engine acquisition: loading the module,
// completing the protocol handshake, and returning a ready-to-query
// Engine. It is called exactly once.
type OpenFunc func(ctx context.Context) (Engine, error)

// Handle is the one-shot asynchronous engine acquisition. Open starts
// it; the handle resolves exactly once, to either a ready Engine or an
// error, and never retries. All overlay rendering gates on Engine
// returning ok and renders nothing before that.
type Handle struct {
	done   chan struct{}
	engine atomic.Pointer[Engine]
	err    atomic.Pointer[error]
}

// Open begins acquiring the engine in the background. The returned
// Handle is immediately usable; Engine reports not-ok until the
// acquisition resolves. Canceling ctx fails the acquisition with the
// context's error.
func Open(ctx context.Context, open OpenFunc) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		eng, err := open(ctx)
		if err != nil {
			h.err.Store(&err)
			logger().Warn("engine acquisition failed", "error", err)
			return
		}
		h.engine.Store(&eng)
		logger().Info("engine handle resolved",
			"features", uint32(eng.Features()))
	}()
	return h
}

// Resolved wraps an already-acquired Engine in a ready Handle.
// Tests and in-process engines use this to skip the async path.
func Resolved(eng Engine) *Handle {
	h := &Handle{done: make(chan struct{})}
	h.engine.Store(&eng)
	close(h.done)
	return h
}

// Engine returns the acquired engine, or ok=false while unresolved or
// failed.
func (h *Handle) Engine() (Engine, bool) {
	if p := h.engine.Load(); p != nil {
		return *p, true
	}
	return nil, false
}

// Err returns ErrNotReady while in flight, the acquisition error if it
// failed, or nil once resolved successfully.
func (h *Handle) Err() error {
	select {
	case <-h.done:
	default:
		return ErrNotReady
	}
	if p := h.err.Load(); p != nil {
		return *p
	}
	return nil
}

// Done returns a channel closed when the acquisition resolves either way.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
