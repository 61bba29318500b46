// Package chance provides the random source used for template and sample
// selection. Engines take a Source so tests can pin their choices.
package chance

import (
	"math/rand/v2"
	"sync"
)

// Source returns a value in [0, n). n is always > 0.
type Source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.IntN(n) }

// Default is the process-wide source.
var Default Source = globalSource{}

// Seeded is a reproducible source safe for concurrent use.
type Seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeeded returns a Source seeded with seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Sequence replays fixed values, cycling when exhausted. Each value is
// reduced modulo n.
type Sequence struct {
	mu   sync.Mutex
	vals []int
	pos  int
}

// NewSequence returns a Sequence over vals. An empty Sequence always yields 0.
func NewSequence(vals ...int) *Sequence {
	return &Sequence{vals: vals}
}

func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Or returns src, or Default when src is nil.
func Or(src Source) Source {
	if src == nil {
		return Default
	}
	return src
}

// Pick returns one element of items. The zero value is returned for an
// empty slice.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Intn(len(items))]
}

// Sample returns up to k distinct elements of items in random order. items is
// not modified.
func Sample[T any](src Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []T{}
	}
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
