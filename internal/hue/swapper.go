package hue

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Swapper assigns each input hue a random replacement the first time it is
// seen and returns that same replacement on every later call. It is safe for
// concurrent use; racing first touches of one hue agree on a single value.
type Swapper struct {
	mu    sync.Mutex
	rng   *rand.Rand
	swaps map[int]int
}

// NewSwapper returns a Swapper drawing from a PCG source seeded with seed.
// A zero seed picks one from the clock, so runs differ.
func NewSwapper(seed uint64) *Swapper {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Swapper{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		swaps: make(map[int]int),
	}
}

// Swap returns the replacement for h, in [0,359].
func (s *Swapper) Swap(h int) int {
	h = wrapHue(h)
	s.mu.Lock()
	defer s.mu.Unlock()
	out, ok := s.swaps[h]
	if !ok {
		out = s.rng.IntN(360)
		s.swaps[h] = out
	}
	return out
}

// Len reports how many hues have been assigned so far.
func (s *Swapper) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.swaps)
}
