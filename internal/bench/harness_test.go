package bench_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dispatchbench/internal/bench"
)

type recordingObserver struct {
	starts  []string
	results []bench.Result
}

func (o *recordingObserver) OnStart(name string, rep int) {
	o.starts = append(o.starts, name)
}

func (o *recordingObserver) OnRepetition(name string, rep int, r bench.Result) {
	o.results = append(o.results, r)
}

var _ = Describe("Runner", func() {
	var runner *bench.Runner

	BeforeEach(func() {
		runner = bench.NewRunner()
	})

	It("runs exactly the configured iteration count", func() {
		count := 0
		runner.Register("fixed", bench.Config{Iterations: 7}, func(s *bench.State) {
			for s.Next() {
				count++
			}
		})

		results, err := runner.Run(context.Background(), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(count).To(Equal(7))
		Expect(results[0].Iterations).To(Equal(7))
		Expect(results[0].Elapsed).To(BeNumerically(">", 0))
	})

	It("iterates until the minimum wall time elapses", func() {
		minTime := 20 * time.Millisecond
		runner.Register("timed", bench.Config{MinTime: minTime}, func(s *bench.State) {
			for s.Next() {
				time.Sleep(time.Millisecond)
			}
		})

		results, err := runner.Run(context.Background(), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(results[0].Elapsed).To(BeNumerically(">=", minTime))
		Expect(results[0].Iterations).To(BeNumerically(">=", 1))
	})

	It("records counters, rates, and labels on the result", func() {
		runner.Register("counted", bench.Config{Iterations: 3}, func(s *bench.State) {
			for s.Next() {
				time.Sleep(time.Millisecond)
			}
			s.SetCounter("iterations", float64(s.Iterations()))
			s.SetRate("items_per_second", float64(s.Iterations()))
			s.SetLabel("three quick iterations")
		})

		results, err := runner.Run(context.Background(), "")
		Expect(err).NotTo(HaveOccurred())

		r := results[0]
		Expect(r.CounterValue("iterations")).To(Equal(3.0))
		Expect(r.CounterValue("items_per_second")).To(BeNumerically(">", 0))
		Expect(r.CounterValue("missing")).To(Equal(0.0))
		Expect(r.Label).To(Equal("three quick iterations"))
		Expect(r.PerIteration).To(BeNumerically(">", 0))
	})

	It("runs benchmarks in registration order", func() {
		var order []string
		for _, name := range []string{"b", "a", "c"} {
			name := name
			runner.Register(name, bench.Config{Iterations: 1}, func(s *bench.State) {
				for s.Next() {
				}
				order = append(order, name)
			})
		}

		_, err := runner.Run(context.Background(), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(order).To(Equal([]string{"b", "a", "c"}))
		Expect(runner.Names()).To(Equal([]string{"b", "a", "c"}))
	})

	It("filters benchmarks by regexp", func() {
		ran := map[string]bool{}
		for _, name := range []string{"generic-dispatch", "interface-dispatch"} {
			name := name
			runner.Register(name, bench.Config{Iterations: 1}, func(s *bench.State) {
				for s.Next() {
				}
				ran[name] = true
			})
		}

		results, err := runner.Run(context.Background(), "^generic")
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(1))
		Expect(ran).To(HaveKey("generic-dispatch"))
		Expect(ran).NotTo(HaveKey("interface-dispatch"))
	})

	It("rejects an invalid filter", func() {
		runner.Register("x", bench.Config{Iterations: 1}, func(s *bench.State) {
			for s.Next() {
			}
		})

		_, err := runner.Run(context.Background(), "(unclosed")
		Expect(err).To(HaveOccurred())
	})

	It("rejects a config with no iteration or time budget", func() {
		runner.Register("empty", bench.Config{}, func(s *bench.State) {
			for s.Next() {
			}
		})

		_, err := runner.Run(context.Background(), "")
		Expect(err).To(HaveOccurred())
	})

	It("repeats benchmarks the configured number of times", func() {
		runner.Register("rep", bench.Config{Iterations: 2, Repetitions: 3}, func(s *bench.State) {
			for s.Next() {
			}
		})

		results, err := runner.Run(context.Background(), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(3))
		for i, r := range results {
			Expect(r.Repetition).To(Equal(i))
		}
	})

	It("notifies observers outside the timed region", func() {
		obs := &recordingObserver{}
		runner.AddObserver(obs)
		runner.Register("observed", bench.Config{Iterations: 1, Repetitions: 2}, func(s *bench.State) {
			for s.Next() {
			}
		})

		_, err := runner.Run(context.Background(), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(obs.starts).To(Equal([]string{"observed", "observed"}))
		Expect(obs.results).To(HaveLen(2))
	})

	It("stops between repetitions when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		runner.Register("canceled", bench.Config{Iterations: 1}, func(s *bench.State) {
			for s.Next() {
			}
		})

		_, err := runner.Run(ctx, "")
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Clobber", func() {
	It("publishes the value to the package sink", func() {
		bench.Clobber(42.5)
		Expect(bench.SinkValue()).To(Equal(42.5))
	})
})
