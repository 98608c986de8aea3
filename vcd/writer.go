// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vcd

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// ErrClosed is returned when using a Writer after Close.
//
var ErrClosed = errors.New("vcd: writer closed")

type state int

const (
	stateUninitialized state = iota
	stateLive
	stateClosed
)

// schema entry
type variable struct {
	code  Code
	width int
}

// Writer is a VCD Tracer writing to a file.
//
// A Writer is not safe for concurrent use.
//
type Writer struct {
	path      string
	namer     Namer
	timescale string
	logDir    string
	atomic    bool
	log       *slog.Logger

	state   state
	codes   *Codes
	signals []Signal            // schema, in discovery order
	vars    map[Signal]variable // schema
	values  map[Signal]int64    // last recorded values
	events  *eventLog
	t       uint64 // current time

	rebuilds int
}

var _ Tracer = (*Writer)(nil)

// New returns a new Writer for the destination file path.
//
// The destination file is not created until the first signal is Set (or
// declared with Init), or Close is called.
//
func New(path string, opts ...Option) (*Writer, error) {
	w := &Writer{
		path:   path,
		namer:  DefaultNamer,
		logDir: filepath.Dir(path),
		codes:  NewCodes(),
		vars:   make(map[Signal]variable),
		values: make(map[Signal]int64),
	}
	for _, o := range opts {
		o(w)
	}
	if w.log == nil {
		w.log = slog.Default()
	}
	l, err := newEventLog(w.logDir)
	if err != nil {
		return nil, err
	}
	w.events = l
	return w, nil
}

// Path returns the destination file path.
//
func (w *Writer) Path() string { return w.path }

// Time returns the current simulated time.
//
func (w *Writer) Time() uint64 { return w.t }

// Signals returns the traced signals in discovery order.
//
func (w *Writer) Signals() []Signal {
	return append([]Signal(nil), w.signals...)
}

// Code returns the code assigned to s, if any.
//
func (w *Writer) Code(s Signal) (Code, bool) {
	v, ok := w.vars[s]
	return v.code, ok
}

// Init declares the given signals, in order, without recording any value. If
// any of them is new, the destination file is rebuilt once.
//
func (w *Writer) Init(signals ...Signal) error {
	if w.state == stateClosed {
		return ErrClosed
	}
	grown := false
	for _, s := range signals {
		if _, ok := w.vars[s]; ok {
			continue
		}
		if err := w.declare(s); err != nil {
			return err
		}
		grown = true
	}
	if !grown {
		return nil
	}
	return w.rebuild()
}

// Set records value v for signal s at the current time. Setting a signal to
// the value it already has is a no-op. The first Set of a signal is always
// recorded and rebuilds the destination file.
//
// Values that do not fit in the signal's width are rejected with a
// *RangeError and nothing is recorded.
//
func (w *Writer) Set(s Signal, v int64) error {
	if w.state == stateClosed {
		return ErrClosed
	}
	if prev, ok := w.values[s]; ok && prev == v {
		return nil
	}
	if _, err := bits(s.Width(), v); err != nil {
		return err
	}
	if _, ok := w.vars[s]; !ok {
		if err := w.declare(s); err != nil {
			return err
		}
		if err := w.rebuild(); err != nil {
			return err
		}
	}
	vr := w.vars[s]
	rec, err := FormatValue(vr.width, v, vr.code)
	if err != nil {
		return err
	}
	if err := w.events.appendChange(rec); err != nil {
		return err
	}
	w.values[s] = v
	return nil
}

// Delay advances the current time by d and records a time marker.
//
func (w *Writer) Delay(d uint64) error {
	if w.state == stateClosed {
		return ErrClosed
	}
	w.t += d
	return w.events.appendTime(w.t)
}

// Close performs a final, complete rebuild of the destination file and
// releases all resources. The Writer cannot be used afterwards.
//
func (w *Writer) Close() error {
	if w.state == stateClosed {
		return ErrClosed
	}
	err := w.rebuild()
	w.state = stateClosed
	if cErr := w.events.close(); err == nil {
		err = cErr
	}
	if err != nil {
		return err
	}
	w.log.Info("vcd: trace written", "path", w.path, "signals", len(w.signals),
		"changes", w.events.changes, "time", w.t, "rebuilds", w.rebuilds)
	return nil
}

// declare adds s to the schema with a new code.
//
func (w *Writer) declare(s Signal) error {
	width := s.Width()
	if err := checkWidth(width); err != nil {
		return err
	}
	if _, err := bits(width, s.Reset()); err != nil {
		return errors.Wrap(err, "reset value")
	}
	w.vars[s] = variable{code: w.codes.Next(), width: width}
	w.signals = append(w.signals, s)
	return nil
}

// rebuild rewrites the destination file from scratch: header, initial values,
// time zero marker and the whole event log.
//
func (w *Writer) rebuild() error {
	f, commit, err := w.create()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = w.writeHeader(bw)
	if err == nil {
		err = w.events.replayInto(bw)
	}
	if err == nil {
		err = errors.Wrap(bw.Flush(), "write "+w.path)
	}
	err = commit(err)
	if err != nil {
		return err
	}
	if w.state == stateUninitialized {
		w.state = stateLive
	}
	w.rebuilds++
	w.log.Debug("vcd: rebuilt trace", "path", w.path, "signals", len(w.signals),
		"changes", w.events.changes, "markers", w.events.markers)
	return nil
}

// create opens the destination for a rebuild. The returned commit function
// must be called with the result of writing to f; it closes f and, for
// atomic rebuilds, moves it into place.
//
func (w *Writer) create() (f *os.File, commit func(error) error, err error) {
	if !w.atomic {
		f, err = os.Create(w.path)
		if err != nil {
			return nil, nil, errors.Wrap(err, "create trace file")
		}
		return f, func(err error) error {
			if cErr := f.Close(); err == nil && cErr != nil {
				err = errors.Wrap(cErr, "close "+w.path)
			}
			return err
		}, nil
	}
	dir, base := filepath.Split(w.path)
	if dir == "" {
		dir = "."
	}
	f, err = os.CreateTemp(dir, "."+base+"-*")
	if err != nil {
		return nil, nil, errors.Wrap(err, "create trace file")
	}
	return f, func(err error) error {
		if cErr := f.Close(); err == nil && cErr != nil {
			err = errors.Wrap(cErr, "close "+f.Name())
		}
		if err == nil {
			err = errors.Wrap(os.Rename(f.Name(), w.path), "replace "+w.path)
		}
		if err != nil {
			os.Remove(f.Name())
		}
		return err
	}, nil
}

func (w *Writer) writeHeader(out io.Writer) error {
	bw := errWriter{w: out}
	if w.timescale != "" {
		bw.write("$timescale ", w.timescale, " $end\n")
	}
	var names []string
	if len(w.signals) > 0 {
		names = w.namer(w.Signals())
		if len(names) != len(w.signals) {
			return errors.Errorf("vcd: namer returned %d names for %d signals", len(names), len(w.signals))
		}
	}
	for i, s := range w.signals {
		v := w.vars[s]
		bw.write("$var wire ", strconv.Itoa(v.width), " ", string(v.code), " ", names[i], " $end\n")
	}
	bw.write("$enddefinitions $end\n$dumpvars\n")
	for _, s := range w.signals {
		v := w.vars[s]
		rec, err := FormatValue(v.width, s.Reset(), v.code)
		if err != nil {
			return errors.Wrap(err, "reset value")
		}
		bw.write(rec, "\n")
	}
	bw.write("$end\n#0\n")
	return errors.Wrap(bw.err, "write "+w.path)
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(ss ...string) {
	for _, s := range ss {
		if e.err != nil {
			return
		}
		_, e.err = io.WriteString(e.w, s)
	}
}
