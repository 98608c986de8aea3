package hwtrace_test

import (
	"testing"

	hw "github.com/db47h/hwtrace"
	hl "github.com/db47h/hwtrace/hwlib"
)

func xorChip(t *testing.T) hw.NewPartFn {
	t.Helper()
	xor, err := hw.Chip("XOR", "a, b", "out",
		hl.Nand(1)("a=a, b=b, out=nandAB"),
		hl.Nand(1)("a=a, b=nandAB, out=w0"),
		hl.Nand(1)("a=b, b=nandAB, out=w1"),
		hl.Nand(1)("a=w0, b=w1, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return xor
}

func TestChip(t *testing.T) {
	xor := xorChip(t)
	var a, b, out int64
	c, err := hw.NewCircuit(0, 16,
		hl.Input(1, func() int64 { return a })("out=a"),
		hl.Input(1, func() int64 { return b })("out=b"),
		xor("a=a, b=b, out=x0"),
		xor("a=x0, b=b, out=x1"),
		hl.Output(1, func(v int64) { out = v })("in=x1"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	for _, n := range []string{"XOR_0.nandAB", "XOR_0.w0", "XOR_1.nandAB", "XOR_1.w1"} {
		if c.Wire(n) == nil {
			t.Errorf("no wire named %s", n)
		}
	}
	if c.Wire("nandAB") != nil {
		t.Error("chip internal wire leaked to the top level")
	}

	// (a ^ b) ^ b == a
	for _, in := range [][2]int64{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		a, b = in[0], in[1]
		c.TickTock()
		if out != a {
			t.Errorf("(%d ^ %d) ^ %d = %d, expected %d", a, b, b, out, a)
		}
	}
}

func TestChip_nested(t *testing.T) {
	xor := xorChip(t)
	xnor, err := hw.Chip("XNOR", "a, b", "out",
		xor("a=a, b=b, out=xorAB"),
		hl.Not(1)("in=xorAB, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	c, err := hw.NewCircuit(0, 8, xnor("a=a, b=b, out=o"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	for _, n := range []string{"XNOR_0.xorAB", "XNOR_0.XOR_0.nandAB", "a", "b", "o"} {
		if c.Wire(n) == nil {
			t.Errorf("no wire named %s", n)
		}
	}
	c.TickTock()
	// a = b = 0
	if v := c.Get(c.Wire("o")); v != 1 {
		t.Fatalf("XNOR(0, 0) = %d, expected 1", v)
	}
}

func TestChip_errors(t *testing.T) {
	td := []struct {
		name    string
		in, out string
		parts   hw.Parts
		err     string
	}{
		{"empty", "a", "out", nil, "chip empty: empty part list"},
		{"width", "a[4]", "out", hw.Parts{
			hl.Not(1)("in=a, out=out"),
		}, "chip width: 4 bits pin a connected to 1 bits pin NOT.in"},
		{"bad pin", "a[", "out", hw.Parts{
			hl.Not(1)("in=a, out=out"),
		}, `bad pin: in "a[" at pos 3: missing close bracket`},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := hw.Chip(d.name, d.in, d.out, d.parts...)
			if err == nil || err.Error() != d.err {
				t.Fatalf("got error %v, expected %q", err, d.err)
			}
		})
	}
}

func TestChip_unconnected(t *testing.T) {
	c, err := hw.NewCircuit(0, 2, hl.Mux(4)("a=x, out=o"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	for _, n := range []string{"MUX4_0.b", "MUX4_0.sel"} {
		w := c.Wire(n)
		if w == nil {
			t.Fatalf("no private wire %s for unconnected pin", n)
		}
		c.Step()
		if v := c.Get(w); v != 0 {
			t.Fatalf("unconnected pin %s = %d, expected 0", n, v)
		}
	}
}
