// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vcd

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// eventLog is the append-only history of a trace: time markers and value
// change records, in the order they were recorded. It lives in a temporary
// file and is never rewritten, only appended to and replayed.
//
type eventLog struct {
	f    *os.File
	w    *bufio.Writer
	size int64 // bytes appended so far

	changes uint64
	markers uint64
}

// newEventLog creates a log backed by a new temporary file in dir.
//
func newEventLog(dir string) (*eventLog, error) {
	f, err := os.CreateTemp(dir, ".vcdlog-*")
	if err != nil {
		return nil, errors.Wrap(err, "create event log")
	}
	return &eventLog{f: f, w: bufio.NewWriter(f)}, nil
}

func (l *eventLog) append(s string) error {
	n, err := l.w.WriteString(s)
	l.size += int64(n)
	if err != nil {
		return errors.Wrap(err, "append to event log")
	}
	return nil
}

// appendTime appends a marker for absolute time t.
//
func (l *eventLog) appendTime(t uint64) error {
	if err := l.append("#" + strconv.FormatUint(t, 10) + "\n"); err != nil {
		return err
	}
	l.markers++
	return nil
}

// appendChange appends a formatted value change record.
//
func (l *eventLog) appendChange(rec string) error {
	if err := l.append(rec + "\n"); err != nil {
		return err
	}
	l.changes++
	return nil
}

// replayInto copies the whole log, in append order, to w. The log itself is
// left untouched and can still be appended to.
//
func (l *eventLog) replayInto(w io.Writer) error {
	if err := l.w.Flush(); err != nil {
		return errors.Wrap(err, "flush event log")
	}
	if _, err := io.Copy(w, io.NewSectionReader(l.f, 0, l.size)); err != nil {
		return errors.Wrap(err, "replay event log")
	}
	return nil
}

// close releases the log and removes its backing file.
//
func (l *eventLog) close() error {
	name := l.f.Name()
	err := l.f.Close()
	if rmErr := os.Remove(name); err == nil && rmErr != nil {
		err = rmErr
	}
	return errors.Wrap(err, "close event log")
}
