// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vcd

import (
	"github.com/db47h/hwtrace/namer"
)

// A Signal is a traced quantity. Signals are identified by interface
// equality, so implementations should be pointer types.
//
type Signal interface {
	// Width returns the signal width in bits.
	Width() int
	// Reset returns the signal's initial value.
	Reset() int64
}

// Named is implemented by signals that have a hierarchical, dot separated
// name like "cpu.alu.out".
//
type Named interface {
	Name() string
}

// A Namer returns a display name for each of the given signals, in the same
// order. Names must be distinct and must not contain whitespace.
//
// A Namer is called with all the signals known to a Writer every time the
// header is rebuilt, so a signal's display name may change as new signals are
// discovered. Display names are never used to identify signals in value
// change records.
//
type Namer func(signals []Signal) []string

// DefaultNamer names signals after their Name method, if any, keeping the
// shortest suffix of each name that is unique among the given signals.
// Unnamed signals are called "sig".
//
func DefaultNamer(signals []Signal) []string {
	paths := make([]string, len(signals))
	for i, s := range signals {
		if n, ok := s.(Named); ok {
			paths[i] = n.Name()
		}
	}
	return namer.Unique(paths)
}

// Tracer is the interface implemented by trace writers.
//
type Tracer interface {
	// Init declares signals before any value is Set. It is optional.
	Init(signals ...Signal) error
	// Set records value v for signal s at the current time.
	Set(s Signal, v int64) error
	// Delay advances the current time by d.
	Delay(d uint64) error
	// Close finalizes the trace and releases all resources.
	Close() error
}

// Nop is a Tracer that does nothing.
//
type Nop struct{}

// Init implements Tracer.
func (Nop) Init(...Signal) error { return nil }

// Set implements Tracer.
func (Nop) Set(Signal, int64) error { return nil }

// Delay implements Tracer.
func (Nop) Delay(uint64) error { return nil }

// Close implements Tracer.
func (Nop) Close() error { return nil }
