// Package poly holds the runtime-dispatch side of the comparison: a
// Vehicle interface over a shared drivetrain implementation plus two leaf
// variants. The benchmark driver only ever touches Vehicle values, so
// every call in the measured loop goes through the interface's method
// table.
package poly

import (
	"github.com/san-kum/dispatchbench/internal/constants"
	"github.com/san-kum/dispatchbench/internal/kernel"
)

// Vehicle is the runtime-dispatched contract. CurrentSpeed and Friction
// are part of it so the interface carries the same surface the benchmark
// reads through, not just the two loop operations.
type Vehicle interface {
	Accelerate(s float64)
	Brake()
	CurrentSpeed() float64
	Friction() float64
}

var (
	_ Vehicle = (*Electric)(nil)
	_ Vehicle = (*Gas)(nil)
)

// drivetrain is the shared-implementation layer: state plus the common
// acceleration step. Leaves embed it and supply their friction coefficient
// and braking policy.
type drivetrain struct {
	speed        float64
	work         float64
	calculations []float64
}

func newDrivetrain() drivetrain {
	return drivetrain{calculations: make([]float64, constants.VectorSize)}
}

// accelerate scales the incoming speed delta by the leaf's friction, then
// runs the workload kernel at the new speed.
func (d *drivetrain) accelerate(s, friction float64) {
	d.speed += s * friction
	d.work = kernel.Accelerate(d.speed, d.work, d.calculations)
}

func (d *drivetrain) CurrentSpeed() float64 { return d.speed }

// Work exposes the accumulated work for the benchmark's running total.
func (d *drivetrain) Work() float64 { return d.work }

// Electric recovers energy on braking: a friction-scaled share of the
// current speed is added back to work before the speed drops to zero.
type Electric struct {
	drivetrain
}

func NewElectric() *Electric {
	return &Electric{drivetrain: newDrivetrain()}
}

func (e *Electric) Friction() float64 { return constants.ElectricFriction }

func (e *Electric) Accelerate(s float64) { e.accelerate(s, e.Friction()) }

func (e *Electric) Brake() {
	e.work += e.speed * constants.ElectricFriction
	e.speed = 0
}

// Gas brakes by shedding all speed as heat; work is untouched.
type Gas struct {
	drivetrain
}

func NewGas() *Gas {
	return &Gas{drivetrain: newDrivetrain()}
}

func (g *Gas) Friction() float64 { return constants.GasFriction }

func (g *Gas) Accelerate(s float64) { g.accelerate(s, g.Friction()) }

func (g *Gas) Brake() { g.speed = 0 }
