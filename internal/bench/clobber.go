package bench

// sink receives every clobbered value. Being package-level and written
// through a noinline call, the compiler has to materialize the value that
// feeds it instead of eliding the work that produced it.
var sink float64

// Clobber publishes v as externally observed. Benchmark bodies call it
// with their accumulated total after each measured iteration so dead-code
// elimination cannot hollow out the loop.
//
//go:noinline
func Clobber(v float64) { sink = v }

// SinkValue returns the last clobbered value. Only tests read it.
func SinkValue() float64 { return sink }
