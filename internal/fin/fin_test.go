package fin

import "time"

// stubRand replays fixed sequences, cycling when exhausted.
type stubRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testService(r Rand) *Service {
	return New(WithRand(r), WithClock(func() time.Time { return testNow }))
}
