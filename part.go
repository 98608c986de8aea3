// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtrace

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Component is a component in a circuit that can Get and Set states.
//
type Component func(c *Circuit)

// A MountFn mounts a part into socket s. MountFn's should query
// the socket for the part's wires and return closures around them.
//
// For example, a Not gate can be defined like this:
//
//	not := &PartSpec{
//		Name:    "Not",
//		Inputs:  IO("in[8]"),
//		Outputs: IO("out[8]"),
//		Mount: func(s *Socket) []Component {
//			in, out := s.Wire("in"), s.Wire("out")
//			return []Component{
//				func(c *Circuit) { c.Set(out, ^c.Get(in)) },
//			}
//		}}
//
type MountFn func(s *Socket) []Component

// A PartSpec wraps a part specification (its blueprint).
//
// Custom parts are implemented by creating a PartSpec, then using its
// NewPart method as a NewPartFn:
//
//	var notGate = notSpec.NewPart
//
// Which can then be used when building chips or circuits:
//
//	c, _ := Chip("dummy", "a, b", "c, d",
//		notGate("in=a, out=c"),
//		notGate("in=b, out=d"),
//	)
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin declarations. A declaration is a pin name, optionally
	// followed by its width in brackets: "sel" is a 1 bit pin, "a[8]" an 8
	// bit pin. Use the IO() function to split a declaration list like
	// "a[8], b[8], sel".
	Inputs []string
	// Output pin declarations.
	Outputs []string
	// Mount function (see MountFn).
	Mount MountFn

	pins map[string]int // pin widths
}

// IO splits a comma separated list of pin declarations.
//
//	IO("a[8], b[8], sel") // returns []string{"a[8]", "b[8]", "sel"}
//
func IO(spec string) []string {
	var out []string
	for _, p := range strings.Split(spec, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parsePin parses a pin declaration and returns the pin name and width.
//
func parsePin(decl string) (string, int, error) {
	decl = strings.TrimSpace(decl)
	i := strings.IndexByte(decl, '[')
	if i < 0 {
		if !isIdent(decl) {
			return "", 0, parseError(decl, 0, "invalid pin name")
		}
		return decl, 1, nil
	}
	name := decl[:i]
	if !isIdent(name) {
		return "", 0, parseError(decl, 0, "invalid pin name")
	}
	if !strings.HasSuffix(decl, "]") {
		return "", 0, parseError(decl, len(decl), "missing close bracket")
	}
	width, err := strconv.Atoi(decl[i+1 : len(decl)-1])
	if err != nil || width < 1 || width > 64 {
		return "", 0, parseError(decl, i+1, "invalid pin width")
	}
	return name, width, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '.'):
		default:
			return false
		}
	}
	return true
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}

// pinWidths parses the part's pin declarations.
//
func (p *PartSpec) pinWidths() (map[string]int, error) {
	if p.pins != nil {
		return p.pins, nil
	}
	pins := make(map[string]int, len(p.Inputs)+len(p.Outputs))
	for _, decls := range [][]string{p.Inputs, p.Outputs} {
		for _, d := range decls {
			name, width, err := parsePin(d)
			if err != nil {
				return nil, errors.Wrap(err, p.Name)
			}
			if _, ok := pins[name]; ok {
				return nil, errors.Errorf("%s: duplicate pin %q", p.Name, name)
			}
			pins[name] = width
		}
	}
	p.pins = pins
	return pins, nil
}

// PinWidth returns the width of the named pin, or 0 if the part has no such
// pin.
//
func (p *PartSpec) PinWidth(name string) int {
	pins, err := p.pinWidths()
	if err != nil {
		panic(err)
	}
	return pins[name]
}

// ParseConnections parses a connection string like "a=x, b=y" into a map
// of part pin names to wire names.
//
func ParseConnections(conns string) (map[string]string, error) {
	m := make(map[string]string)
	pos := 0
	for _, c := range strings.Split(conns, ",") {
		if strings.TrimSpace(c) == "" {
			pos += len(c) + 1
			continue
		}
		i := strings.IndexByte(c, '=')
		if i < 0 {
			return nil, parseError(conns, pos, "expected '='")
		}
		k, v := strings.TrimSpace(c[:i]), strings.TrimSpace(c[i+1:])
		if !isIdent(k) {
			return nil, parseError(conns, pos, "expected pin name")
		}
		if !isIdent(v) {
			return nil, parseError(conns, pos+i+1, "expected wire name")
		}
		if _, ok := m[k]; ok {
			return nil, parseError(conns, pos, "pin "+k+" connected twice")
		}
		m[k] = v
		pos += len(c) + 1
	}
	return m, nil
}

// NewPart is a NewPartFn that wraps p with the given connections into a Part.
// It panics if the connection string is invalid or references an unknown pin.
//
func (p *PartSpec) NewPart(connections string) Part {
	conns, err := ParseConnections(connections)
	if err != nil {
		panic(err)
	}
	pins, err := p.pinWidths()
	if err != nil {
		panic(err)
	}
	for k := range conns {
		if _, ok := pins[k]; !ok {
			panic(errors.Errorf("invalid pin name %s for part %s", k, p.Name))
		}
	}
	return Part{p, conns}
}

// A NewPartFn is a function that takes a connection configuration and returns a
// new Part. See ParseConnections for the syntax of the connection configuration
// string.
//
type NewPartFn func(c string) Part

// A Part wraps a part specification together with its connections within a host
// chip.
//
type Part struct {
	*PartSpec
	Conns map[string]string
}

// Parts is a convenience wrapper for []Part.
//
type Parts []Part
