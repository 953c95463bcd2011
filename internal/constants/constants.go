// Package constants holds the fixed workload parameters shared by every
// benchmark variant. Nothing here is configurable at runtime; changing a
// value changes the workload and invalidates comparisons against earlier
// runs.
package constants

import "time"

const (
	// VectorSize is the length of each vehicle's scratch buffer, and so
	// the number of trig evaluations per acceleration step.
	VectorSize = 10000

	// InnerLoopCount is how many accelerate/work/brake rounds each
	// measured iteration performs per vehicle.
	InnerLoopCount = 10

	// BenchmarkIterations is the exact number of measured iterations per
	// benchmark run.
	BenchmarkIterations = 10000

	// AccelerationValue is the speed delta fed to every accelerate call.
	AccelerationValue = 50.0

	// MinTime is the minimum wall time a benchmark runs for when no exact
	// iteration count is configured.
	MinTime = 100 * time.Millisecond
)

// Per-variant drivetrain coefficients. The friction ordering
// (gas above electric) is relied on by the regenerative braking model.
const (
	ElectricAcceleration = 0.95
	ElectricFriction     = 0.85
	GasAcceleration      = 0.75
	GasFriction          = 0.95

	PolyAcceleration = 0.8
	PolyFriction     = 0.9
)
