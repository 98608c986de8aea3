// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable parts for hwtrace.
//
// All parts operate on multi-bit wires and are built by functions taking the
// wire width and returning a hwtrace.NewPartFn:
//
//	and8 := hwlib.And(8)
//	part := and8("a=x, b=y, out=z")
//
package hwlib

import (
	"strconv"

	"github.com/db47h/hwtrace"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
)

// pins returns pin declarations of the given width.
func pins(bits int, names ...string) []string {
	b := make([]string, len(names))
	for i, n := range names {
		if bits == 1 {
			b[i] = n
		} else {
			b[i] = n + "[" + strconv.Itoa(bits) + "]"
		}
	}
	return b
}

// name builds a part name like AND8. The width is omitted for 1 bit parts.
func name(base string, bits int) string {
	if bits == 1 {
		return base
	}
	return base + strconv.Itoa(bits)
}

// Not returns a N-bits NOT gate.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: out = ^in
//
func Not(bits int) hwtrace.NewPartFn {
	return (&hwtrace.PartSpec{
		Name:    name("NOT", bits),
		Inputs:  pins(bits, pIn),
		Outputs: pins(bits, pOut),
		Mount: func(s *hwtrace.Socket) []hwtrace.Component {
			in, out := s.Wire(pIn), s.Wire(pOut)
			return []hwtrace.Component{
				func(c *hwtrace.Circuit) { c.Set(out, ^c.Get(in)) },
			}
		}}).NewPart
}

type gate func(a, b int64) int64

func (g gate) mount(s *hwtrace.Socket) []hwtrace.Component {
	a, b, out := s.Wire(pA), s.Wire(pB), s.Wire(pOut)
	return []hwtrace.Component{
		func(c *hwtrace.Circuit) { c.Set(out, g(c.Get(a), c.Get(b))) },
	}
}

// Gate returns a N-bits logic gate. f is applied to whole wire values; bits of
// the result beyond the gate's width are discarded.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: out = f(a, b)
//
func Gate(base string, bits int, f func(a, b int64) int64) hwtrace.NewPartFn {
	return (&hwtrace.PartSpec{
		Name:    name(base, bits),
		Inputs:  pins(bits, pA, pB),
		Outputs: pins(bits, pOut),
		Mount:   gate(f).mount,
	}).NewPart
}

// And returns a N-bits AND gate.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: out = a & b
//
func And(bits int) hwtrace.NewPartFn {
	return Gate("AND", bits, func(a, b int64) int64 { return a & b })
}

// Nand returns a N-bits NAND gate.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: out = ^(a & b)
//
func Nand(bits int) hwtrace.NewPartFn {
	return Gate("NAND", bits, func(a, b int64) int64 { return ^(a & b) })
}

// Or returns a N-bits OR gate.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: out = a | b
//
func Or(bits int) hwtrace.NewPartFn {
	return Gate("OR", bits, func(a, b int64) int64 { return a | b })
}

// Nor returns a N-bits NOR gate.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: out = ^(a | b)
//
func Nor(bits int) hwtrace.NewPartFn {
	return Gate("NOR", bits, func(a, b int64) int64 { return ^(a | b) })
}

// Xor returns a N-bits XOR gate.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: out = a ^ b
//
func Xor(bits int) hwtrace.NewPartFn {
	return Gate("XOR", bits, func(a, b int64) int64 { return a ^ b })
}

// Xnor returns a N-bits XNOR gate.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: out = ^(a ^ b)
//
func Xnor(bits int) hwtrace.NewPartFn {
	return Gate("XNOR", bits, func(a, b int64) int64 { return ^(a ^ b) })
}
