// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwtrace"
)

// DFF returns a N-bits clocked data flip flop.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: out(t) = in(t-1) // where t is the current clock cycle.
//
func DFF(bits int) hwtrace.NewPartFn {
	return Register(bits, 0)
}

// Register returns a N-bits clocked register with the given reset value. It
// behaves like a DFF.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: out(0) = reset
//	          out(t) = in(t-1) // where t is the current clock cycle.
//
func Register(bits int, reset int64) hwtrace.NewPartFn {
	base := "DFF"
	if reset != 0 {
		base = "REG"
	}
	return (&hwtrace.PartSpec{
		Name:    name(base, bits),
		Inputs:  pins(bits, pIn),
		Outputs: pins(bits, pOut),
		Mount: func(s *hwtrace.Socket) []hwtrace.Component {
			in, out := s.Wire(pIn), s.WireReset(pOut, reset)
			curOut := out.Reset()
			return []hwtrace.Component{
				func(c *hwtrace.Circuit) {
					// raising edge?
					if c.AtTick() {
						curOut = c.Get(in)
					}
					c.Set(out, curOut)
				}}
		}}).NewPart
}

// Counter returns a N-bits counter. The counter is incremented on every
// raising edge of the clock while en is set, and wraps around.
//
//	Inputs: en
//	Outputs: out[bits]
//	Function: if en(t-1) != 0 { out(t) = out(t-1) + 1 }
//
func Counter(bits int) hwtrace.NewPartFn {
	return (&hwtrace.PartSpec{
		Name:    name("Counter", bits),
		Inputs:  []string{"en"},
		Outputs: pins(bits, pOut),
		Mount: func(s *hwtrace.Socket) []hwtrace.Component {
			en, out := s.Wire("en"), s.Wire(pOut)
			mask := int64(^uint64(0) >> uint(64-bits))
			var cur int64
			return []hwtrace.Component{
				func(c *hwtrace.Circuit) {
					if c.AtTick() && c.Get(en) != 0 {
						cur = (cur + 1) & mask
					}
					c.Set(out, cur)
				}}
		}}).NewPart
}
