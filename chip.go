// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtrace

import (
	"github.com/pkg/errors"
)

type chip struct {
	PartSpec        // PartSpec for this chip
	parts    []Part // sub parts
}

func (c *chip) mount(s *Socket) []Component {
	var updaters []Component
	for _, p := range c.parts {
		updaters = append(updaters, s.Mount(p)...)
	}
	return updaters
}

// Chip composes existing parts into a new part packaged into a chip.
// The pins declared as inputs and outputs will be the inputs
// and outputs of the chip. Wires used by the sub parts that are not chip pins
// are private to each chip instance and named after it:
// "Chip_0.wire", "Chip_1.wire", etc.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip("XOR", "a, b", "out",
//		hwlib.Nand(1)("a=a, b=b, out=nandAB"),
//		hwlib.Nand(1)("a=a, b=nandAB, out=w0"),
//		hwlib.Nand(1)("a=b, b=nandAB, out=w1"),
//		hwlib.Nand(1)("a=w0, b=w1, out=out"),
//	)
//
// The returned value is a function of type NewPartFn that can be used to
// compose the new part with others into other chips:
//
//	xnor, err := Chip("XNOR", "a, b", "out",
//		xor("a=a, b=b, out=xorAB"),
//		hwlib.Not(1)("in=xorAB, out=out"),
//	)
//
func Chip(name string, inputs string, outputs string, parts ...Part) (NewPartFn, error) {
	if len(parts) == 0 {
		return nil, errors.New("chip " + name + ": empty part list")
	}
	c := &chip{
		PartSpec: PartSpec{
			Name:    name,
			Inputs:  IO(inputs),
			Outputs: IO(outputs),
		},
		parts: parts,
	}
	if _, err := c.pinWidths(); err != nil {
		return nil, err
	}
	// chip pins must match the width of the sub part pins they connect to.
	for _, p := range parts {
		for k, v := range p.Conns {
			cw := c.PinWidth(v)
			if cw == 0 {
				continue
			}
			if pw := p.PinWidth(k); pw != cw {
				return nil, errors.Errorf("chip %s: %d bits pin %s connected to %d bits pin %s.%s", name, cw, v, pw, p.Name, k)
			}
		}
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}
