// Package experiment defines the closed set of dispatch benchmarks and
// the shared statistics reporting they both use.
package experiment

import (
	"fmt"
	"time"

	"github.com/san-kum/dispatchbench/internal/bench"
	"github.com/san-kum/dispatchbench/internal/constants"
)

// Names of the two registered benchmarks, in run order.
const (
	GenericDispatch   = "generic-dispatch"
	InterfaceDispatch = "interface-dispatch"
)

// Registry holds the benchmark definitions. The set is closed: exactly
// the two dispatch strategies, always run in the same order.
type Registry struct {
	names []string
	defs  map[string]func(*bench.State)
}

func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]func(*bench.State))}
	r.register(GenericDispatch, runGenericDispatch)
	r.register(InterfaceDispatch, runInterfaceDispatch)
	return r
}

func (r *Registry) register(name string, fn func(*bench.State)) {
	r.names = append(r.names, name)
	r.defs[name] = fn
}

// Get returns the benchmark body registered under name.
func (r *Registry) Get(name string) (func(*bench.State), error) {
	fn, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("unknown benchmark: %s", name)
	}
	return fn, nil
}

// List returns the benchmark names in run order.
func (r *Registry) List() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// BuildRunner registers every benchmark on a fresh runner with the given
// configuration.
func (r *Registry) BuildRunner(cfg bench.Config) *bench.Runner {
	runner := bench.NewRunner()
	for _, name := range r.names {
		runner.Register(name, cfg, r.defs[name])
	}
	return runner
}

// DefaultConfig is the fixed configuration both benchmarks are registered
// with: exact iteration count, wall-clock floor, millisecond display.
func DefaultConfig() bench.Config {
	return bench.Config{
		Iterations:  constants.BenchmarkIterations,
		MinTime:     constants.MinTime,
		Repetitions: 1,
		Unit:        time.Millisecond,
	}
}
