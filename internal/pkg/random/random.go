package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a goroutine-safe ports.Random.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New seeds a Source. A zero seed uses the current time.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n).
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
