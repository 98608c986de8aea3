package hwtrace_test

import (
	"fmt"

	hw "github.com/db47h/hwtrace"
	hl "github.com/db47h/hwtrace/hwlib"
	"github.com/db47h/hwtrace/hwtest"
)

// Trace a 3 bits counter for a few clock cycles.
func ExampleCircuit_Trace() {
	c, err := hw.NewCircuit(0, 4,
		hl.Const(1, 1)("out=en"),
		hl.Counter(3)("en=en, out=count"),
	)
	if err != nil {
		panic(err)
	}
	defer c.Dispose()

	// any vcd.Tracer will do, like a vcd.Writer.
	var r hwtest.Recorder
	count := c.Wire("count")
	if err = c.Trace(&r, count); err != nil {
		panic(err)
	}
	for i := 0; i < 10; i++ {
		c.TickTock()
	}
	fmt.Println(r.Values(count), r.Time())

	// Output:
	// [0 1 2 3 4 5 6 7 0 1 2] 40
}
