package wheel

import (
	"math/rand"
	"sync"
	"time"

	"luckywheel/internal/domain"
)

// Selector draws a weighted-random prize from an ordered catalog using a
// cumulative-probability scan. It is stateless apart from the random source.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSelector() *Selector {
	return &Selector{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Draw returns a prize from catalog, which must be non-empty.
func (s *Selector) Draw(catalog []domain.Prize) domain.Prize {
	s.mu.Lock()
	r := s.rng.Float64()
	s.mu.Unlock()
	return Pick(catalog, r)
}

// Pick walks the catalog in order, accumulating probability mass, and
// returns the prize whose half-open interval [cumulative, cumulative+p)
// contains r. If rounding drift lets r land past the final boundary, the
// last entry is returned; Pick never fails on a non-empty catalog.
func Pick(catalog []domain.Prize, r float64) domain.Prize {
	var cumulative float64
	for _, prize := range catalog {
		cumulative += prize.Probability
		if r < cumulative {
			return prize
		}
	}
	return catalog[len(catalog)-1]
}
