// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"github.com/db47h/hwtrace/vcd"
)

// Sig is a minimal named signal.
//
type Sig struct {
	name  string
	width int
	reset int64
}

// NewSig returns a new signal.
//
func NewSig(name string, width int, reset int64) *Sig {
	return &Sig{name: name, width: width, reset: reset}
}

// Name implements vcd.Named.
func (s *Sig) Name() string { return s.name }

// Width implements vcd.Signal.
func (s *Sig) Width() int { return s.width }

// Reset implements vcd.Signal.
func (s *Sig) Reset() int64 { return s.reset }

// Op identifies a Tracer method.
//
type Op int

// Tracer operations.
//
const (
	OpInit Op = iota
	OpSet
	OpDelay
	OpClose
)

// An Event is a Tracer call recorded by a Recorder.
//
type Event struct {
	Op      Op
	Time    uint64       // current time after the call
	Signals []vcd.Signal // OpInit, OpSet
	Value   int64        // OpSet
	Delay   uint64       // OpDelay
}

// Recorder is a vcd.Tracer that records calls in memory. The zero value is
// ready to use.
//
type Recorder struct {
	Events []Event
	t      uint64
	closed bool
}

var _ vcd.Tracer = (*Recorder)(nil)

// Init implements vcd.Tracer.
func (r *Recorder) Init(signals ...vcd.Signal) error {
	if r.closed {
		return vcd.ErrClosed
	}
	r.Events = append(r.Events, Event{Op: OpInit, Time: r.t, Signals: signals})
	return nil
}

// Set implements vcd.Tracer.
func (r *Recorder) Set(s vcd.Signal, v int64) error {
	if r.closed {
		return vcd.ErrClosed
	}
	r.Events = append(r.Events, Event{Op: OpSet, Time: r.t, Signals: []vcd.Signal{s}, Value: v})
	return nil
}

// Delay implements vcd.Tracer.
func (r *Recorder) Delay(d uint64) error {
	if r.closed {
		return vcd.ErrClosed
	}
	r.t += d
	r.Events = append(r.Events, Event{Op: OpDelay, Time: r.t, Delay: d})
	return nil
}

// Close implements vcd.Tracer.
func (r *Recorder) Close() error {
	if r.closed {
		return vcd.ErrClosed
	}
	r.closed = true
	r.Events = append(r.Events, Event{Op: OpClose, Time: r.t})
	return nil
}

// Time returns the current time.
//
func (r *Recorder) Time() uint64 { return r.t }

// Values returns the values Set for s, in order, with consecutive duplicates
// removed (as a Writer would record them).
//
func (r *Recorder) Values(s vcd.Signal) []int64 {
	var vs []int64
	for _, e := range r.Events {
		if e.Op != OpSet || e.Signals[0] != s {
			continue
		}
		if len(vs) > 0 && vs[len(vs)-1] == e.Value {
			continue
		}
		vs = append(vs, e.Value)
	}
	return vs
}
