// Package vehicle holds the generic-dispatch side of the comparison: two
// structurally identical car types selected through a compile-time-checked
// closed type union rather than a shared base type. A type that does not
// satisfy the capability set fails to compile, never at runtime.
package vehicle

import (
	"github.com/san-kum/dispatchbench/internal/constants"
	"github.com/san-kum/dispatchbench/internal/kernel"
)

// Acceleratable is the minimal capability set a car must expose to take
// part in the benchmark loop.
type Acceleratable interface {
	Accelerate(s float64)
	Brake()
	Work() float64
}

// SportsCar extends Acceleratable with identity labels. The labels have no
// behavioral effect; they exist so the constraint checks more than the
// bare loop operations.
type SportsCar interface {
	Acceleratable
	Brand() string
	Model() string
}

// Variant is the closed set of car types eligible for generic dispatch.
// Exactly these two; adding a third requires editing this union, and a
// member missing a SportsCar method is a compile error.
type Variant interface {
	*Electric | *Gas
	SportsCar
}

var (
	_ SportsCar = (*Electric)(nil)
	_ SportsCar = (*Gas)(nil)
)

// Electric is the battery variant. Brake discards speed without recovery;
// the regenerative model lives only on the interface-dispatch side so the
// two strategies stay behaviorally comparable per call.
type Electric struct {
	speed        float64
	work         float64
	calculations []float64
	brand        string
	model        string
}

func NewElectric(brand, model string) *Electric {
	return &Electric{
		calculations: make([]float64, constants.VectorSize),
		brand:        brand,
		model:        model,
	}
}

func (e *Electric) Accelerate(s float64) {
	e.speed += s
	e.work = kernel.Accelerate(e.speed, e.work, e.calculations)
}

func (e *Electric) Brake()        { e.speed = 0 }
func (e *Electric) Work() float64 { return e.work }
func (e *Electric) Brand() string { return e.brand }
func (e *Electric) Model() string { return e.model }

// Gas is the combustion variant, structurally identical to Electric. The
// duplication is deliberate: the generic path must dispatch between two
// distinct types, not two values of one type.
type Gas struct {
	speed        float64
	work         float64
	calculations []float64
	brand        string
	model        string
}

func NewGas(brand, model string) *Gas {
	return &Gas{
		calculations: make([]float64, constants.VectorSize),
		brand:        brand,
		model:        model,
	}
}

func (g *Gas) Accelerate(s float64) {
	g.speed += s
	g.work = kernel.Accelerate(g.speed, g.work, g.calculations)
}

func (g *Gas) Brake()        { g.speed = 0 }
func (g *Gas) Work() float64 { return g.work }
func (g *Gas) Brand() string { return g.brand }
func (g *Gas) Model() string { return g.model }

// Lap runs one accelerate/read/brake round on a car through the generic
// constraint and returns the accumulated work observed after the
// accelerate step. The call target is resolved at compile time from the
// concrete type argument.
func Lap[V Variant](car V) float64 {
	car.Accelerate(constants.AccelerationValue)
	w := car.Work()
	car.Brake()
	return w
}
