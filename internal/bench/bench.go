// Package bench implements the measurement harness: per-benchmark run
// state, custom counters, an anti-elision barrier, and a runner that
// executes registered benchmarks with filtering, repetitions, and
// observers.
package bench

import (
	"time"
)

// Counter is a custom statistic attached to a benchmark result. Rate
// counters are divided by elapsed wall time when read, so they report a
// per-second figure.
type Counter struct {
	Value float64
	Rate  bool
}

// Config fixes how one benchmark is driven. Iterations > 0 runs exactly
// that many measured iterations; Iterations == 0 keeps iterating until
// MinTime of wall clock has elapsed. Timing is always wall clock.
type Config struct {
	Iterations  int
	MinTime     time.Duration
	Repetitions int
	Unit        time.Duration
}

// State drives one benchmark run through its lifecycle: idle until the
// first Next call starts the clock, running while Next returns true, done
// once the iteration budget or minimum time is exhausted. Benchmark
// bodies loop with `for s.Next() { ... }` and attach counters afterwards.
type State struct {
	cfg      Config
	iters    int
	running  bool
	done     bool
	start    time.Time
	elapsed  time.Duration
	counters map[string]Counter
	label    string
}

func newState(cfg Config) *State {
	return &State{
		cfg:      cfg,
		counters: make(map[string]Counter),
	}
}

// Next reports whether the body should run another measured iteration.
// The first call starts the wall-clock timer; the call that returns false
// stops it, so counter and label writes after the loop sit outside the
// timed region.
func (s *State) Next() bool {
	if s.done {
		return false
	}
	if !s.running {
		s.running = true
		s.start = time.Now()
		return true
	}
	s.iters++
	if s.cfg.Iterations > 0 {
		if s.iters >= s.cfg.Iterations {
			s.stop()
			return false
		}
		return true
	}
	if time.Since(s.start) >= s.cfg.MinTime {
		s.stop()
		return false
	}
	return true
}

func (s *State) stop() {
	s.elapsed = time.Since(s.start)
	s.done = true
}

// Iterations returns the number of completed measured iterations.
func (s *State) Iterations() int { return s.iters }

// Elapsed returns the measured wall time once the run has finished.
func (s *State) Elapsed() time.Duration { return s.elapsed }

// SetCounter records a plain-valued counter.
func (s *State) SetCounter(name string, value float64) {
	s.counters[name] = Counter{Value: value}
}

// SetRate records a counter reported as value per second of elapsed time.
func (s *State) SetRate(name string, value float64) {
	s.counters[name] = Counter{Value: value, Rate: true}
}

// SetLabel attaches a free-text label to the run's result.
func (s *State) SetLabel(label string) { s.label = label }
