package distance

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSession_DebouncesBursts(t *testing.T) {
	var mu sync.Mutex
	var calls []string
	results := make(chan float64, 8)

	resolve := func(_ context.Context, address string) float64 {
		mu.Lock()
		calls = append(calls, address)
		mu.Unlock()
		return float64(len(address))
	}

	s := NewSession(resolve, 30*time.Millisecond, func(km float64) { results <- km })
	defer s.Close()

	// Simulates typing: only the final value should resolve.
	s.AddressChanged("1")
	s.AddressChanged("10 r")
	s.AddressChanged("10 rue Principale")

	select {
	case km := <-results:
		if km != float64(len("10 rue Principale")) {
			t.Fatalf("expected result for final address, got %v", km)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for debounced result")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 || calls[0] != "10 rue Principale" {
		t.Fatalf("expected a single resolution for the last address, got %v", calls)
	}
}

func TestSession_LateResultNeverOverwritesNewer(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var applied []float64
	var mu sync.Mutex
	done := make(chan struct{}, 2)

	resolve := func(_ context.Context, address string) float64 {
		if address == "slow" {
			close(firstStarted)
			<-releaseFirst
			return 111
		}
		return 222
	}

	s := NewSession(resolve, time.Millisecond, func(km float64) {
		mu.Lock()
		applied = append(applied, km)
		mu.Unlock()
		done <- struct{}{}
	})
	defer s.Close()

	s.AddressChanged("slow")
	<-firstStarted

	// A newer address is issued while the first resolution is in flight.
	s.AddressChanged("fast")
	<-done

	// Let the superseded call finish late; its result must be discarded.
	close(releaseFirst)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(applied) != 1 || applied[0] != 222 {
		t.Fatalf("expected only the newer result 222 to apply, got %v", applied)
	}
}

func TestSession_BlankAddressAppliesZero(t *testing.T) {
	results := make(chan float64, 1)
	s := NewSession(func(_ context.Context, _ string) float64 {
		t.Errorf("resolver must not run for a blank address")
		return 0
	}, time.Millisecond, func(km float64) { results <- km })
	defer s.Close()

	s.AddressChanged("")

	select {
	case km := <-results:
		if km != 0 {
			t.Fatalf("expected 0 for blank address, got %v", km)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for zero distance")
	}
}

func TestSession_CloseDropsPending(t *testing.T) {
	s := NewSession(func(_ context.Context, _ string) float64 { return 1 }, 20*time.Millisecond, func(float64) {
		t.Errorf("no result may apply after Close")
	})
	s.AddressChanged("rue X")
	s.Close()
	time.Sleep(60 * time.Millisecond)
}
