// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwtrace"
)

// Input creates a function based N-bits input.
//
//	Outputs: out[bits]
//	Function: out = f()
//
func Input(bits int, f func() int64) hwtrace.NewPartFn {
	return (&hwtrace.PartSpec{
		Name:    name("INPUT", bits),
		Inputs:  nil,
		Outputs: pins(bits, pOut),
		Mount: func(s *hwtrace.Socket) []hwtrace.Component {
			out := s.Wire(pOut)
			return []hwtrace.Component{
				func(c *hwtrace.Circuit) { c.Set(out, f()) },
			}
		}}).NewPart
}

// Output creates an output or probe. The fn function is
// called with the input wire value on every circuit update.
//
//	Inputs: in[bits]
//	Function: f(in)
//
func Output(bits int, f func(int64)) hwtrace.NewPartFn {
	return (&hwtrace.PartSpec{
		Name:    name("OUTPUT", bits),
		Inputs:  pins(bits, pIn),
		Outputs: nil,
		Mount: func(s *hwtrace.Socket) []hwtrace.Component {
			in := s.Wire(pIn)
			return []hwtrace.Component{
				func(c *hwtrace.Circuit) { f(c.Get(in)) },
			}
		}}).NewPart
}

// Const returns a N-bits constant.
//
//	Outputs: out[bits]
//	Function: out = v
//
func Const(bits int, v int64) hwtrace.NewPartFn {
	return (&hwtrace.PartSpec{
		Name:    name("CONST", bits),
		Outputs: pins(bits, pOut),
		Mount: func(s *hwtrace.Socket) []hwtrace.Component {
			out := s.WireReset(pOut, v)
			return []hwtrace.Component{
				func(c *hwtrace.Circuit) { c.Set(out, v) },
			}
		}}).NewPart
}
