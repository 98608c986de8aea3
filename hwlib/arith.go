// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/hwtrace"
)

var fullAdder = &hwtrace.PartSpec{
	Name:    "FullAdder",
	Inputs:  []string{pA, pB, "cin"},
	Outputs: []string{"s", "cout"},
	Mount: func(s *hwtrace.Socket) []hwtrace.Component {
		a, b, cin := s.Wire(pA), s.Wire(pB), s.Wire("cin")
		sum, cout := s.Wire("s"), s.Wire("cout")
		return []hwtrace.Component{
			func(c *hwtrace.Circuit) {
				va, vb, vc := c.Get(a), c.Get(b), c.Get(cin)
				s := va ^ vb
				c.Set(sum, s^vc)
				c.Set(cout, s&vc|va&vb)
			}}
	}}

// FullAdder returns a 1 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(c string) hwtrace.Part {
	return fullAdder.NewPart(c)
}

// Adder returns a N-bits adder.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//	Function: out = a + b
//	          c = carry out
//
func Adder(bits int) hwtrace.NewPartFn {
	return (&hwtrace.PartSpec{
		Name:    name("Adder", bits),
		Inputs:  pins(bits, pA, pB),
		Outputs: append(pins(bits, pOut), "c"),
		Mount: func(s *hwtrace.Socket) []hwtrace.Component {
			a, b := s.Wire(pA), s.Wire(pB)
			out, cout := s.Wire(pOut), s.Wire("c")
			return []hwtrace.Component{
				func(c *hwtrace.Circuit) {
					va, vb := uint64(c.Get(a)), uint64(c.Get(b))
					sum := va + vb
					// carry out of the top bit
					carry := (va&vb | (va|vb)&^sum) >> uint(bits-1) & 1
					c.Set(out, int64(sum))
					c.Set(cout, int64(carry))
				}}
		}}).NewPart
}
