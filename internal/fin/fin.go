// Package fin implements the deterministic financial calculators backing the
// assistant's tools. Market data (quotes, news) is simulated: values are drawn
// from a random source rather than fetched from a real provider.
package fin

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Rand supplies the randomness used for simulated market data. Tests can
// substitute a fixed-sequence source; the production default is seeded from
// the wall clock.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// lockedRand wraps a *rand.Rand so concurrent tool calls are safe.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}

// Service exposes the financial calculators. The zero value is not usable;
// construct with New.
type Service struct {
	rnd Rand
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(s *Service) { s.rnd = r }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a calculator service with an entropy-seeded random source.
func New(opts ...Option) *Service {
	s := &Service{
		rnd: &lockedRand{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// uniform returns a value uniformly drawn from [lo, hi).
func (s *Service) uniform(lo, hi float64) float64 {
	return lo + s.rnd.Float64()*(hi-lo)
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
