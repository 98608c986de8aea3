// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwtrace"
)

// Mux returns a N-bits multiplexer.
//
//	Inputs: a[bits], b[bits], sel
//	Outputs: out[bits]
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(bits int) hwtrace.NewPartFn {
	return (&hwtrace.PartSpec{
		Name:    name("MUX", bits),
		Inputs:  append(pins(bits, pA, pB), pSel),
		Outputs: pins(bits, pOut),
		Mount: func(s *hwtrace.Socket) []hwtrace.Component {
			a, b, sel, out := s.Wire(pA), s.Wire(pB), s.Wire(pSel), s.Wire(pOut)
			return []hwtrace.Component{func(c *hwtrace.Circuit) {
				if c.Get(sel) != 0 {
					c.Set(out, c.Get(b))
				} else {
					c.Set(out, c.Get(a))
				}
			}}
		}}).NewPart
}

// DMux returns a N-bits demultiplexer.
//
//	Inputs: in[bits], sel
//	Outputs: a[bits], b[bits]
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(bits int) hwtrace.NewPartFn {
	return (&hwtrace.PartSpec{
		Name:    name("DMUX", bits),
		Inputs:  append(pins(bits, pIn), pSel),
		Outputs: pins(bits, pA, pB),
		Mount: func(s *hwtrace.Socket) []hwtrace.Component {
			in, sel, a, b := s.Wire(pIn), s.Wire(pSel), s.Wire(pA), s.Wire(pB)
			return []hwtrace.Component{func(c *hwtrace.Circuit) {
				if c.Get(sel) != 0 {
					c.Set(a, 0)
					c.Set(b, c.Get(in))
				} else {
					c.Set(a, c.Get(in))
					c.Set(b, 0)
				}
			}}
		}}).NewPart
}
