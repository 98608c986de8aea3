// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits and tracers.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/hwtrace"
	"github.com/db47h/hwtrace/hwlib"
)

type pin struct {
	name  string
	width int
}

func pinList(p hwtrace.Part, decls []string) []pin {
	ps := make([]pin, len(decls))
	for i, d := range decls {
		n := d
		if j := strings.IndexByte(d, '['); j >= 0 {
			n = d[:j]
		}
		ps[i] = pin{n, p.PinWidth(n)}
	}
	return ps
}

func connString(in []pin, out []pin, prefix string) string {
	var b strings.Builder
	for _, p := range in {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(p.name)
		b.WriteRune('=')
		b.WriteString(p.name)
	}
	for _, p := range out {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(p.name)
		b.WriteRune('=')
		b.WriteString(prefix + p.name)
	}
	return b.String()
}

// ComparePart takes two parts and compares their outputs given the same inputs.
// Both parts must have the same Input/Output interface.
//
func ComparePart(t *testing.T, tpc uint, part1 hwtrace.NewPartFn, part2 hwtrace.NewPartFn) {
	t.Helper()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	ps1, ps2 := part1(""), part2("")
	ins, outs := pinList(ps1, ps1.Inputs), pinList(ps1, ps1.Outputs)

	// compare specs
	ins2, outs2 := pinList(ps2, ps2.Inputs), pinList(ps2, ps2.Outputs)
	if fmt.Sprint(ins) != fmt.Sprint(ins2) {
		t.Fatalf("%s inputs %v != %s inputs %v", ps1.Name, ins, ps2.Name, ins2)
	}
	if fmt.Sprint(outs) != fmt.Sprint(outs2) {
		t.Fatalf("%s outputs %v != %s outputs %v", ps1.Name, outs, ps2.Name, outs2)
	}

	inputs := make([]int64, len(ins))
	outputs := make([][2]int64, len(outs))

	parts := hwtrace.Parts{
		part1(connString(ins, outs, "p1_")),
		part2(connString(ins, outs, "p2_")),
	}
	for i, p := range ins {
		n := i
		parts = append(parts, hwlib.Input(p.width, func() int64 { return inputs[n] })("out="+p.name))
	}
	for i, p := range outs {
		n := i
		parts = append(parts,
			hwlib.Output(p.width, func(v int64) { outputs[n][0] = v })("in=p1_"+p.name),
			hwlib.Output(p.width, func(v int64) { outputs[n][1] = v })("in=p2_"+p.name))
	}

	c, err := hwtrace.NewCircuit(0, tpc, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	errString := func(oname string, ex, got int64) string {
		var b strings.Builder
		for i, p := range ins {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%d", p.name, inputs[i])
		}
		return fmt.Sprintf("\nExpected %s => %s=%d\nGot %d", b.String(), oname, ex, got)
	}

	check := func() {
		t.Helper()
		c.TickTock()
		c.TickTock()
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(outs[o].name, out[0], out[1]))
			}
		}
	}

	start := time.Now()

	// try all 0
	check()

	// try all 1
	for i, p := range ins {
		inputs[i] = int64(^uint64(0) >> uint(64-p.width))
	}
	check()

	for i := 0; i < 256; i++ {
		for in, p := range ins {
			inputs[in] = int64(r.Uint64() >> uint(64-p.width))
		}
		check()
	}

	elapsed := time.Since(start)
	ticks := c.Steps() / c.SPC()
	t.Logf("%d components. %d steps in %v. %d clock ticks => %.2f Hz", c.Size(), c.Steps(), elapsed, ticks, float64(ticks)/(float64(elapsed)/float64(time.Second)))
}
