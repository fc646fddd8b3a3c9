package availability

import (
	"context"
	"sync"
	"time"

	"mecanique_mobile/internal/domain/entities"
)

// LoadFunc computes the slots for a date; normally (*Engine).SlotsForDate.
type LoadFunc func(ctx context.Context, date time.Time) []entities.TimeSlot

// Loader serializes date-triggered slot loads for one quoting session.
// A date change supersedes any in-flight load: results carry the sequence
// number of the change that started them and are dropped when a newer date
// has been selected since, so availability is always consistent with the
// currently selected date.
type Loader struct {
	mu       sync.Mutex
	load     LoadFunc
	onResult func(date time.Time, slots []entities.TimeSlot)
	seq      uint64
	closed   bool
}

func NewLoader(load LoadFunc, onResult func(date time.Time, slots []entities.TimeSlot)) *Loader {
	return &Loader{load: load, onResult: onResult}
}

// DateChanged starts an asynchronous availability computation for date.
func (l *Loader) DateChanged(date time.Time) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.seq++
	token := l.seq
	l.mu.Unlock()

	go func() {
		slots := l.load(context.Background(), date)

		l.mu.Lock()
		stale := l.closed || token != l.seq
		cb := l.onResult
		l.mu.Unlock()
		if stale || cb == nil {
			return
		}
		cb(date, slots)
	}()
}

// Close drops any in-flight load's result.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}
