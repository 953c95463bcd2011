package experiment

import (
	"fmt"
	"runtime"

	"github.com/san-kum/dispatchbench/internal/bench"
	"github.com/san-kum/dispatchbench/internal/constants"
	"github.com/san-kum/dispatchbench/internal/poly"
	"github.com/san-kum/dispatchbench/internal/vehicle"
)

// runGenericDispatch measures the compile-time path: both cars are
// distinct concrete types driven through the Variant union, so every
// accelerate/work/brake call is resolved statically.
func runGenericDispatch(s *bench.State) {
	tesla := vehicle.NewElectric("Tesla", "Model S")
	porsche := vehicle.NewGas("Porsche", "911")

	var total float64
	for s.Next() {
		for i := 0; i < constants.InnerLoopCount; i++ {
			total += vehicle.Lap(tesla)
			total += vehicle.Lap(porsche)
		}
		bench.Clobber(total)
	}
	reportStats(s, total)
	runtime.KeepAlive(tesla)
	runtime.KeepAlive(porsche)
}

// runInterfaceDispatch measures the runtime path: the same loop shape,
// but every call goes through a poly.Vehicle interface value.
func runInterfaceDispatch(s *bench.State) {
	tesla := poly.NewElectric()
	porsche := poly.NewGas()
	vehicles := [2]poly.Vehicle{tesla, porsche}

	var total float64
	for s.Next() {
		for i := 0; i < constants.InnerLoopCount; i++ {
			vehicles[0].Accelerate(constants.AccelerationValue)
			total += tesla.Work()
			vehicles[0].Brake()

			vehicles[1].Accelerate(constants.AccelerationValue)
			total += porsche.Work()
			vehicles[1].Brake()
		}
		bench.Clobber(total)
	}
	reportStats(s, total)
	runtime.KeepAlive(vehicles)
}

// reportStats attaches the counters both benchmarks share. Called after
// the measured loop, so none of this shows up in the timings.
func reportStats(s *bench.State, total float64) {
	iters := float64(s.Iterations())
	if iters == 0 {
		iters = 1
	}
	s.SetCounter("iterations", float64(s.Iterations()))
	s.SetRate("items_per_second", float64(s.Iterations()))
	s.SetCounter("avg_work_per_iteration", total/iters)
	s.SetLabel(fmt.Sprintf("Total accumulated work (from calculations): %f (avg per iter: %f)", total, total/iters))
}
