// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package vcd writes Value Change Dump (VCD) waveform traces.

A VCD file declares every traced variable in its header, before any value
change. The Writer in this package does not need to know the traced signals
upfront: signals are discovered as they are first Set. Every value change and
time advance is appended to a private event log, and whenever a new signal
shows up, the destination file is rebuilt from scratch: a fresh header listing
all signals known so far, followed by a replay of the whole log. Codes
assigned to signals never change, so records logged before a rebuild stay
valid under the new header.

The destination file is therefore a best-effort live view during a run: it is
only refreshed when the set of signals grows. Close always performs one last
complete rebuild, which is the authoritative trace.

	w, err := vcd.New("out.vcd")
	if err != nil {
		// handle error
	}
	w.Set(clk, 1)
	w.Delay(1)
	w.Set(clk, 0)
	if err := w.Close(); err != nil {
		// handle error
	}

Nop is a Tracer that does nothing, for callers that want to keep tracing calls
in place with tracing disabled.

*/
package vcd
