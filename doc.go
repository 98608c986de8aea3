/*
Package hwtrace provides a naive hardware simulator whose wires can be traced
to VCD waveform files.

Circuits are built by composing parts (logic gates, muxers, registers, etc.)
into chips, then mounting them in a Circuit. Wires are multi-bit: a pin
declared as "a[8]" is a single 8 bit wire.

	c, err := hwtrace.NewCircuit(0, 4,
		hwlib.Const(1, 1)("out=en"),
		hwlib.Counter(8)("en=en, out=count"),
	)
	if err != nil {
		// handle error
	}
	defer c.Dispose()

	w, err := vcd.New("count.vcd")
	if err != nil {
		// handle error
	}
	if err := c.Trace(w); err != nil {
		// handle error
	}
	for i := 0; i < 100; i++ {
		c.TickTock()
	}
	if err := c.Err(); err != nil {
		// handle error
	}
	if err := w.Close(); err != nil {
		// handle error
	}

Each simulation step advances the trace time by one unit.

*/
package hwtrace
