// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtrace

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Socket maps a part's pin names to wires in a circuit.
//
type Socket struct {
	c     *Circuit
	spec  *PartSpec
	conns map[string]string // pin name -> wire name in the circuit
	scope string            // prefix for wires private to this part
}

func newSocket(c *Circuit) *Socket {
	return &Socket{c: c}
}

// resolve returns the circuit wide name of the wire with the given local
// name. Connected pins resolve to the wire they are connected to, anything
// else is private to the socket's scope.
//
func (s *Socket) resolve(name string) string {
	if name == Clk {
		return Clk
	}
	if n, ok := s.conns[name]; ok {
		return n
	}
	return s.scope + name
}

// sub returns a socket for part p mounted in s.
//
func (s *Socket) sub(p Part) *Socket {
	conns := make(map[string]string, len(p.Conns))
	for k, v := range p.Conns {
		conns[k] = s.resolve(v)
	}
	n := s.c.insts[s.scope+p.Name]
	s.c.insts[s.scope+p.Name] = n + 1
	return &Socket{
		c:     s.c,
		spec:  p.PartSpec,
		conns: conns,
		scope: s.scope + p.Name + "_" + strconv.Itoa(n) + ".",
	}
}

// Mount mounts the given sub-part and allocates new wires as necessary
// (according to the part's connections).
//
func (s *Socket) Mount(p Part) []Component {
	return p.Mount(s.sub(p))
}

// Wire returns the wire connected to the given pin. Unconnected pins get a
// private wire that nothing drives: it keeps its reset value forever.
//
// This function panics if the pin does not exist, or if the wire is already
// used with a different width.
//
func (s *Socket) Wire(pin string) *Wire {
	width := s.spec.PinWidth(pin)
	if width == 0 {
		panic("pin " + pin + " does not exist in part " + s.spec.Name)
	}
	return s.c.wire(s.resolve(pin), width)
}

// WireReset is like Wire and also sets the wire's reset value.
//
func (s *Socket) WireReset(pin string, reset int64) *Wire {
	w := s.Wire(pin)
	if w.width < 64 && (reset > int64(w.mask) || reset < -int64(1)<<uint(w.width-1)) {
		panic(errors.Errorf("reset value %d does not fit in %d bits wire %s", reset, w.width, w.name))
	}
	w.reset = int64(uint64(reset) & w.mask)
	return w
}
