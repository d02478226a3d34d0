// Package random provides the injectable random source used by the game engines.
//
// Production code seeds a math/rand generator from crypto/rand; tests pass a
// fixed seed (or their own Source) so bot and host choices are reproducible.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source is the subset of *rand.Rand the engines depend on.
type Source interface {
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a Source seeded from crypto/rand. If the system entropy source
// fails, it falls back to seed 1 rather than refusing to play.
func New() Source {
	seed, err := NewSeed()
	if err != nil {
		seed = 1
	}
	return NewSeeded(seed)
}

// NewSeeded returns a deterministic Source for the given seed.
// The returned value is safe for concurrent use.
func NewSeeded(seed int64) Source {
	return &locked{r: rand.New(rand.NewSource(seed))}
}

// locked guards a *rand.Rand, which is not safe for concurrent use on its own.
type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Pick returns a uniformly random element of items, or the zero value and
// false when items is empty.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.Intn(len(items))], true
}
