// Package kernel provides the shared numeric workload both dispatch
// strategies run. The cost of one call is identical regardless of how it
// was dispatched, so any timing difference between strategies is dispatch
// overhead, not arithmetic.
package kernel

import "math"

// Accelerate performs one acceleration step at the given speed. It
// overwrites calculations in place with a trig series and folds each term
// into the accumulated work, which it returns. No allocation happens here;
// the caller owns the scratch buffer and reuses it across calls.
//
// Certain speeds produce non-finite terms (tan near odd multiples of pi/2,
// sqrt of a negative sum). Those propagate into work unguarded; the
// benchmarks only care that the arithmetic volume is fixed.
func Accelerate(speed, work float64, calculations []float64) float64 {
	tanSpeed := math.Tan(speed)
	for i := range calculations {
		fi := float64(i)
		calculations[i] = math.Sin(speed*fi) * math.Cos(fi*0.5) * tanSpeed
		work += calculations[i] * math.Sqrt(speed+fi)
	}
	return work
}
