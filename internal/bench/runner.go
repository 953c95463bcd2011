package bench

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

// Definition pairs a registered benchmark body with its configuration.
type Definition struct {
	Name string
	Cfg  Config
	Fn   func(*State)
}

// Result is the outcome of one repetition of one benchmark.
type Result struct {
	Name         string
	Repetition   int
	Iterations   int
	Elapsed      time.Duration
	PerIteration time.Duration
	Counters     map[string]Counter
	Label        string
	Unit         time.Duration
}

// CounterValue resolves a counter by name, applying the per-second
// division for rate counters. Missing counters read as zero.
func (r Result) CounterValue(name string) float64 {
	c, ok := r.Counters[name]
	if !ok {
		return 0
	}
	if c.Rate {
		secs := r.Elapsed.Seconds()
		if secs <= 0 {
			return 0
		}
		return c.Value / secs
	}
	return c.Value
}

// Observer is notified as the runner progresses. Notifications happen
// outside the timed region.
type Observer interface {
	OnStart(name string, repetition int)
	OnRepetition(name string, repetition int, result Result)
}

// Runner executes registered benchmarks in registration order.
type Runner struct {
	defs      []Definition
	observers []Observer
}

func NewRunner() *Runner {
	return &Runner{}
}

// Register adds a benchmark under the given name and configuration.
func (r *Runner) Register(name string, cfg Config, fn func(*State)) {
	r.defs = append(r.defs, Definition{Name: name, Cfg: cfg, Fn: fn})
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Names returns the registered benchmark names in registration order.
func (r *Runner) Names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.Name
	}
	return names
}

// Run executes every registered benchmark whose name matches filter (an
// anchored-nowhere regexp; empty matches all), honoring each definition's
// repetition count. Cancellation is checked between repetitions, never
// inside a timed region.
func (r *Runner) Run(ctx context.Context, filter string) ([]Result, error) {
	var re *regexp.Regexp
	if filter != "" {
		var err error
		re, err = regexp.Compile(filter)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
		}
	}

	var results []Result
	for _, def := range r.defs {
		if re != nil && !re.MatchString(def.Name) {
			continue
		}
		if err := validateConfig(def.Cfg); err != nil {
			return nil, fmt.Errorf("benchmark %s: %w", def.Name, err)
		}

		reps := def.Cfg.Repetitions
		if reps <= 0 {
			reps = 1
		}
		for rep := 0; rep < reps; rep++ {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			default:
			}

			for _, o := range r.observers {
				o.OnStart(def.Name, rep)
			}

			st := newState(def.Cfg)
			def.Fn(st)

			res := Result{
				Name:       def.Name,
				Repetition: rep,
				Iterations: st.Iterations(),
				Elapsed:    st.Elapsed(),
				Counters:   st.counters,
				Label:      st.label,
				Unit:       def.Cfg.Unit,
			}
			if res.Iterations > 0 {
				res.PerIteration = res.Elapsed / time.Duration(res.Iterations)
			}
			results = append(results, res)

			for _, o := range r.observers {
				o.OnRepetition(def.Name, rep, res)
			}
		}
	}
	return results, nil
}

func validateConfig(cfg Config) error {
	if cfg.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", cfg.Iterations)
	}
	if cfg.Iterations == 0 && cfg.MinTime <= 0 {
		return fmt.Errorf("config needs an iteration count or a minimum time")
	}
	return nil
}
