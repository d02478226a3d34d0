// apps/go-server/internal/store/memory.go
//
// In-memory session store shared by every game mode.
//
// Characteristics:
//   - Values keyed by session ID in a map guarded by an RWMutex.
//   - Each entry carries its own mutex; Update runs the caller's function
//     under it, so one round is mutated by one request at a time while
//     different rounds proceed in parallel.
//   - Entries untouched for longer than the TTL are removed by Sweep.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("not found")

type entry[T any] struct {
	mu      sync.Mutex
	value   T
	touched time.Time
	gone    bool
}

// Memory holds sessions of one kind.
type Memory[T any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]*entry[T]
}

// Option customizes a Memory store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewMemory constructs a store whose entries expire after ttl of inactivity.
// ttl <= 0 disables expiry. name only appears in logs.
func NewMemory[T any](name string, ttl time.Duration, opts ...Option) *Memory[T] {
	o := options{now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	return &Memory[T]{
		name:    name,
		ttl:     ttl,
		now:     o.now,
		entries: make(map[string]*entry[T]),
	}
}

// Save adds or replaces the value stored under id.
func (m *Memory[T]) Save(ctx context.Context, id string, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.entries[id]; ok {
		old.mu.Lock()
		old.gone = true
		old.mu.Unlock()
	}
	m.entries[id] = &entry[T]{value: v, touched: m.now()}
	return nil
}

// Get returns the value stored under id.
func (m *Memory[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	e, err := m.lookup(ctx, id)
	if err != nil {
		return zero, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return zero, ErrNotFound
	}
	return e.value, nil
}

// Update runs fn with exclusive access to the value under id and refreshes
// its TTL. fn's error is returned unchanged.
func (m *Memory[T]) Update(ctx context.Context, id string, fn func(v T) error) error {
	e, err := m.lookup(ctx, id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return ErrNotFound
	}
	e.touched = m.now()
	return fn(e.value)
}

// Delete removes id. Deleting an unknown id is not an error.
func (m *Memory[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	e, ok := m.entries[id]
	delete(m.entries, id)
	m.mu.Unlock()
	if ok {
		e.mu.Lock()
		e.gone = true
		e.mu.Unlock()
	}
	return nil
}

// Len reports the number of live entries.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Sweep removes entries idle for longer than the TTL and returns how many
// were removed. Entries busy inside Update are skipped until the next sweep.
func (m *Memory[T]) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.touched.Before(cutoff) {
			e.gone = true
			delete(m.entries, id)
			n++
		}
		e.mu.Unlock()
	}
	if n > 0 {
		log.Debug().Str("store", m.name).Int("removed", n).Msg("swept idle sessions")
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (m *Memory[T]) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			m.Sweep()
		}
	}
}

func (m *Memory[T]) lookup(ctx context.Context, id string) (*entry[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}
