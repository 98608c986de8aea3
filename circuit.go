// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtrace

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/db47h/hwtrace/vcd"
)

// Circuit is a runnable circuit simulation.
//
type Circuit struct {
	s0    []int64 // wire states frame #0
	s1    []int64 // wire states frame #1
	wires []*Wire
	names map[string]*Wire
	insts map[string]int // part instance count per scope
	cs    []Component
	clk   *Wire
	tpc   uint // ticks per clock cycle
	tick  uint

	tr     vcd.Tracer
	traced []*Wire
	err    error // first tracing error

	wc []chan struct{}
	wg sync.WaitGroup
}

// NewCircuit builds a new circuit based on the given parts.
//
// workers is the number of goroutines used to update the state of the Circuit
// each step of the simulation. If less or equal to 0, the value of GOMAXPROCS
// will be used.
//
// stepsPerCycle indicates how many simulation steps to run per clock cycle
// (the Clk signal, not wall clock). It is rounded up to the next power of two,
// with a minimum of 2.
//
// Callers must make sure to call Dispose() once the circuit is no longer needed
// in order to release allocated resources.
//
func NewCircuit(workers int, stepsPerCycle uint, parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}

	if stepsPerCycle < 2 {
		stepsPerCycle = 2
	}
	stepsPerCycle--
	stepsPerCycle |= stepsPerCycle >> 1
	stepsPerCycle |= stepsPerCycle >> 2
	stepsPerCycle |= stepsPerCycle >> 4
	stepsPerCycle |= stepsPerCycle >> 8
	stepsPerCycle |= stepsPerCycle >> 16
	stepsPerCycle |= stepsPerCycle >> 32
	stepsPerCycle++

	cc := &Circuit{
		names: make(map[string]*Wire),
		insts: make(map[string]int),
		tpc:   stepsPerCycle,
	}
	cc.clk = cc.wire(Clk, 1)
	cc.clk.reset = 1

	s := newSocket(cc)
	var ups []Component
	for _, p := range parts {
		ups = append(ups, s.Mount(p)...)
	}
	ups = append(ups, updClock)
	cc.cs = ups

	cc.s0 = make([]int64, len(cc.wires))
	cc.s1 = make([]int64, len(cc.wires))
	for _, w := range cc.wires {
		cc.s0[w.n] = w.reset
		cc.s1[w.n] = w.reset
	}

	// workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers <= 0 {
		workers = 1
	}
	for len(ups) > 0 {
		size := len(ups) / workers
		if size*workers < len(ups) {
			size++
		}
		wc := make(chan struct{}, 1)
		cc.wc = append(cc.wc, wc)
		go worker(cc, ups[:size], wc)
		ups = ups[size:]
	}

	return cc, nil
}

func updClock(c *Circuit) {
	// update clock signal
	n := c.clk.n
	tick := c.tick + 1
	if tick&(c.tpc-1) == 0 {
		c.s1[n] = 1
	} else if tick&(c.tpc/2-1) == 0 {
		c.s1[n] = 0
	} else {
		c.s1[n] = c.s0[n]
	}
}

// Dispose releases all resources allocated for a circuit and stops
// worker goroutines. It does not close the circuit's tracer.
//
func (c *Circuit) Dispose() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		close(wc)
	}
	c.wg.Wait()
}

func worker(c *Circuit, cs []Component, wc <-chan struct{}) {
	for {
		_, ok := <-wc
		if !ok {
			c.wg.Done()
			return
		}
		for _, f := range cs {
			f(c)
		}
		c.wg.Done()
	}
}

// wire returns the wire with the given name, allocating it if necessary.
//
func (c *Circuit) wire(name string, width int) *Wire {
	if w := c.names[name]; w != nil {
		if w.width != width {
			panic(errors.Errorf("wire %s used with widths %d and %d", name, w.width, width))
		}
		return w
	}
	w := newWire(name, width, len(c.wires))
	c.wires = append(c.wires, w)
	c.names[name] = w
	return w
}

// Wire returns the wire with the given name or nil if no such wire exists.
// Wires private to chip instances are named after the instance, like
// "Counter8_0.next".
//
func (c *Circuit) Wire(name string) *Wire {
	return c.names[name]
}

// Wires returns all wires in the circuit, in allocation order. The first wire
// is always the clock.
//
func (c *Circuit) Wires() []*Wire {
	return append([]*Wire(nil), c.wires...)
}

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint {
	return c.tick
}

// SPC returns the stepsPerCycle value.
//
func (c *Circuit) SPC() uint {
	return c.tpc
}

// AtTick returns true if the current step is at the beginning of a clock cycle
// (raising edge of Clk).
//
func (c *Circuit) AtTick() bool {
	return c.Steps()&(c.SPC()-1) == 0
}

// AtTock returns true if the current step is at the beginning of the second
// half of a clock cycle (falling edge of Clk).
//
func (c *Circuit) AtTock() bool {
	return (c.Steps()+c.SPC()/2)&(c.SPC()-1) == 0
}

// Get returns the value of wire w. Wires should be obtained in a MountFn by a
// call to one of the Socket methods.
//
func (c *Circuit) Get(w *Wire) int64 {
	return c.s0[w.n]
}

// Set sets the value of wire w. Bits that do not fit in the wire's width are
// discarded.
//
func (c *Circuit) Set(w *Wire, v int64) {
	c.s1[w.n] = int64(uint64(v) & w.mask)
}

// Toggle inverts all bits of wire w.
//
func (c *Circuit) Toggle(w *Wire) {
	c.s1[w.n] = int64(^uint64(c.s0[w.n]) & w.mask)
}

// Trace starts tracing the given wires into t, or all wires if none is given.
// The wires are declared with t.Init and their current value is recorded.
// From then on, every step advances the trace time by one and records the
// traced wires.
//
// Tracing stops on the first tracer error, which is returned by Err. The
// caller remains responsible for closing t.
//
func (c *Circuit) Trace(t vcd.Tracer, wires ...*Wire) error {
	if len(wires) == 0 {
		wires = c.Wires()
	}
	ss := make([]vcd.Signal, len(wires))
	for i, w := range wires {
		ss[i] = w
	}
	if err := t.Init(ss...); err != nil {
		return err
	}
	c.tr, c.traced = t, wires
	c.err = c.record()
	return c.err
}

func (c *Circuit) record() error {
	for _, w := range c.traced {
		if err := c.tr.Set(w, c.s0[w.n]); err != nil {
			return errors.Wrap(err, "trace "+w.name)
		}
	}
	return nil
}

// Err returns the first error encountered while tracing.
//
func (c *Circuit) Err() error {
	return c.err
}

// Step advances the simulation by one step.
//
func (c *Circuit) Step() {
	c.wg.Add(len(c.wc))
	for _, wc := range c.wc {
		wc <- struct{}{}
	}

	c.wg.Wait()
	c.tick++
	c.s0, c.s1 = c.s1, c.s0

	if c.tr != nil && c.err == nil {
		if c.err = c.tr.Delay(1); c.err == nil {
			c.err = c.record()
		}
	}
}

// Tick runs the simulation until the beginning of the next half clock cycle.
//
func (c *Circuit) Tick() {
	for c.Get(c.clk) != 0 {
		c.Step()
	}
}

// Tock runs the simulation until the beginning of the next clock cycle.
// Once Tock returns, the output of clocked components should have stabilized.
//
func (c *Circuit) Tock() {
	for c.Get(c.clk) == 0 {
		c.Step()
	}
}

// TickTock runs the simulation for a whole clock cycle.
//
func (c *Circuit) TickTock() {
	c.Tick()
	c.Tock()
}

// Size returns the component count in the circuit.
//
func (c *Circuit) Size() int { return len(c.cs) }
