// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vcd

import "log/slog"

// An Option configures a Writer.
//
type Option func(w *Writer)

// WithNamer sets the function used to build display names in the header.
// The default is DefaultNamer.
//
func WithNamer(n Namer) Option {
	return func(w *Writer) { w.namer = n }
}

// WithTimescale adds a $timescale declaration (for example "1ns") to the
// header. By default, no timescale is declared.
//
func WithTimescale(ts string) Option {
	return func(w *Writer) { w.timescale = ts }
}

// WithLogger sets the logger. The default is slog.Default().
//
func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) { w.log = l }
}

// WithLogDir sets the directory where the event log's temporary file is
// created. The default is the destination file's directory.
//
func WithLogDir(dir string) Option {
	return func(w *Writer) { w.logDir = dir }
}

// WithAtomic enables atomic rebuilds: the destination is written to a
// temporary file in the same directory, then renamed over the destination.
// Readers of the destination never see a partially written trace, at the
// cost of a rename per rebuild.
//
func WithAtomic(atomic bool) Option {
	return func(w *Writer) { w.atomic = atomic }
}
