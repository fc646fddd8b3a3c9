package distance

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce matches the address-field debounce of the quoting UI.
const DefaultDebounce = 1500 * time.Millisecond

// ResolveFunc is the resolution entry point a Session debounces; normally
// (*Resolver).ResolveKm.
type ResolveFunc func(ctx context.Context, address string) float64

// Session serializes address-triggered distance resolution for one quoting
// session. Every address change bumps a sequence number and re-arms a
// debounce timer; a resolution's result is applied only while its sequence
// number is still the latest, so a slow in-flight call can never overwrite
// the result of a newer one.
type Session struct {
	mu       sync.Mutex
	resolve  ResolveFunc
	onResult func(km float64)
	delay    time.Duration
	seq      uint64
	timer    *time.Timer
	closed   bool
}

func NewSession(resolve ResolveFunc, delay time.Duration, onResult func(km float64)) *Session {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Session{resolve: resolve, onResult: onResult, delay: delay}
}

// AddressChanged registers a new address value. A blank address applies a
// zero distance after the debounce window; anything else resolves through
// the tiers.
func (s *Session) AddressChanged(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.seq++
	token := s.seq
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(token, address)
	})
}

func (s *Session) run(token uint64, address string) {
	s.mu.Lock()
	if s.closed || token != s.seq {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	var km float64
	if address != "" {
		km = s.resolve(context.Background(), address)
	}

	s.mu.Lock()
	stale := s.closed || token != s.seq
	cb := s.onResult
	s.mu.Unlock()
	if stale || cb == nil {
		return
	}
	cb(km)
}

// Close discards any pending resolution; late results are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
