// Package notify provides the one-shot signalling primitive the kitchen
// coordinates with: courier cancellation and sweeper shutdown.
package notify

import "sync"

// Signal is a one-shot broadcast. Set closes the channel exactly once,
// waking every current and future waiter; a Signal never re-arms.
// Setting is non-blocking, so it is safe from under locks, and calling
// Set on an already fired Signal is a no-op.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// New returns an unfired Signal.
func New() *Signal { return &Signal{ch: make(chan struct{})} }

// Set fires the signal.
func (s *Signal) Set() { s.once.Do(func() { close(s.ch) }) }

// C returns the channel waiters select on; it is closed once Set fires.
func (s *Signal) C() <-chan struct{} { return s.ch }

// Fired reports whether Set has been called.
func (s *Signal) Fired() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}
