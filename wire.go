// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtrace

import (
	"github.com/db47h/hwtrace/vcd"
)

// Clk is the name of the clock wire. It is available in every chip.
//
const Clk = "clk"

// A Wire is a named, multi-bit connection between parts of a circuit.
//
// Wires are allocated by Sockets while mounting parts; their values live in
// the Circuit.
//
type Wire struct {
	name  string
	width int
	reset int64
	mask  uint64
	n     int // index in circuit state
}

var _ vcd.Named = (*Wire)(nil)
var _ vcd.Signal = (*Wire)(nil)

func newWire(name string, width int, n int) *Wire {
	m := ^uint64(0)
	if width < 64 {
		m = 1<<uint(width) - 1
	}
	return &Wire{name: name, width: width, mask: m, n: n}
}

// Name returns the wire's hierarchical name.
//
func (w *Wire) Name() string { return w.name }

// Width returns the wire width in bits.
//
func (w *Wire) Width() int { return w.width }

// Reset returns the value of the wire when the circuit starts.
//
func (w *Wire) Reset() int64 { return w.reset }
