// Package report renders benchmark results for the terminal: the startup
// banner, the tabular summary, and per-repetition timing charts.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dispatchbench/internal/bench"
)

// Banner returns the styled startup line printed before any benchmark
// runs.
func Banner() string {
	return titleStyle.Render("starting benchmarks (should complete quickly)...")
}

// Table writes the standard result table followed by each result's label
// line. Elapsed times are shown in the result's display unit.
func Table(w io.Writer, results []bench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BENCHMARK\tREP\tTIME\tITERATIONS\tITERS/SEC\tAVG WORK/ITER")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%.0f\t%.4f\n",
			r.Name,
			r.Repetition,
			FormatDuration(r.Elapsed, r.Unit),
			r.Iterations,
			r.CounterValue("items_per_second"),
			r.CounterValue("avg_work_per_iteration"),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	for _, r := range results {
		if r.Label == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(r.Name+":"), r.Label)
	}
	return nil
}

// Comparison prints per-iteration times for two results and the speedup
// of the faster over the slower.
func Comparison(w io.Writer, a, b bench.Result) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(a.Name), valueStyle.Render(perIteration(a)))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(b.Name), valueStyle.Render(perIteration(b)))

	if a.PerIteration == 0 || b.PerIteration == 0 {
		return
	}
	if a.PerIteration < b.PerIteration {
		fmt.Fprintf(w, "\nspeedup: %.3fx (%s faster)\n",
			float64(b.PerIteration)/float64(a.PerIteration), a.Name)
	} else {
		fmt.Fprintf(w, "\nspeedup: %.3fx (%s faster)\n",
			float64(a.PerIteration)/float64(b.PerIteration), b.Name)
	}
}

func perIteration(r bench.Result) string {
	return fmt.Sprintf("%v/iter over %d iterations", r.PerIteration, r.Iterations)
}

// Chart renders a per-repetition elapsed-time series as an ASCII graph.
func Chart(name string, samplesMs []float64) string {
	if len(samplesMs) < 2 {
		return ""
	}
	plot := asciigraph.Plot(samplesMs,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption(name+" (ms per repetition)"))
	return graphStyle.Render(plot)
}

// FormatDuration renders d in the given display unit, defaulting to
// milliseconds when unit is unset.
func FormatDuration(d, unit time.Duration) string {
	if unit <= 0 {
		unit = time.Millisecond
	}
	value := float64(d) / float64(unit)
	switch unit {
	case time.Second:
		return fmt.Sprintf("%.4fs", value)
	case time.Microsecond:
		return fmt.Sprintf("%.1fus", value)
	default:
		return fmt.Sprintf("%.3fms", value)
	}
}
