// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package stimulus implements scripted trace producers.
//
// A stimulus script declares signals and an ordered list of steps. Each step
// advances time, then assigns new values to some signals. Scripts are written
// in TOML or YAML:
//
//	timescale = "1ns"
//
//	[[signals]]
//	name = "cpu.pc"
//	width = 16
//
//	[[steps]]
//	delay = 1
//	set = [{ signal = "cpu.pc", value = 2 }]
//
package stimulus

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/db47h/hwtrace/vcd"
)

// Format is a script encoding.
type Format int

// Supported formats.
const (
	TOML Format = iota
	YAML
)

// FormatOf returns the script format for the given file name, based on its
// extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, errors.Errorf("%s: unknown stimulus format", path)
}

// SignalDecl declares a traced signal.
type SignalDecl struct {
	Name  string `toml:"name" yaml:"name"`
	Width int    `toml:"width" yaml:"width"`
	Reset int64  `toml:"reset" yaml:"reset"`
}

// Assign sets Signal to Value.
type Assign struct {
	Signal string `toml:"signal" yaml:"signal"`
	Value  int64  `toml:"value" yaml:"value"`
}

// Step advances time by Delay, then applies the assignments in order.
type Step struct {
	Delay uint64   `toml:"delay" yaml:"delay"`
	Set   []Assign `toml:"set" yaml:"set"`
}

// Stimulus is a parsed stimulus script.
type Stimulus struct {
	Timescale string       `toml:"timescale" yaml:"timescale"`
	Signals   []SignalDecl `toml:"signals" yaml:"signals"`
	Steps     []Step       `toml:"steps" yaml:"steps"`
}

// Load reads and parses the stimulus script at path. Unknown fields are
// rejected.
func Load(path string) (*Stimulus, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read stimulus")
	}
	s, err := Parse(data, f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return s, nil
}

// Parse parses a stimulus script and validates it.
func Parse(data []byte, f Format) (*Stimulus, error) {
	var s Stimulus
	switch f {
	case TOML:
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&s); err != nil {
			return nil, errors.Wrap(err, "parse TOML")
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(err, "parse YAML")
		}
	default:
		return nil, errors.Errorf("unknown format %d", f)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks signal declarations and that every assignment targets a
// declared signal. Values are checked against widths when played.
func (s *Stimulus) Validate() error {
	names := make(map[string]bool, len(s.Signals))
	for i, d := range s.Signals {
		if d.Name == "" {
			return errors.Errorf("signal #%d: empty name", i)
		}
		if names[d.Name] {
			return errors.Errorf("signal %s: declared twice", d.Name)
		}
		if d.Width < 1 || d.Width > vcd.MaxWidth {
			return errors.Errorf("signal %s: invalid width %d", d.Name, d.Width)
		}
		names[d.Name] = true
	}
	for i, st := range s.Steps {
		for _, a := range st.Set {
			if !names[a.Signal] {
				return errors.Errorf("step #%d: undeclared signal %s", i, a.Signal)
			}
		}
	}
	return nil
}

// Duration returns the sum of all step delays.
func (s *Stimulus) Duration() uint64 {
	var d uint64
	for _, st := range s.Steps {
		d += st.Delay
	}
	return d
}

type signal struct {
	name  string
	width int
	reset int64
}

func (s *signal) Name() string { return s.name }
func (s *signal) Width() int   { return s.width }
func (s *signal) Reset() int64 { return s.reset }

// Play plays the script into t. All declared signals are passed to t.Init
// first, in declaration order, so that the trace header lists them in that
// order even if some are never assigned. Play does not close t.
func (s *Stimulus) Play(t vcd.Tracer) error {
	sigs := make(map[string]*signal, len(s.Signals))
	decl := make([]vcd.Signal, len(s.Signals))
	for i, d := range s.Signals {
		sig := &signal{d.Name, d.Width, d.Reset}
		sigs[d.Name] = sig
		decl[i] = sig
	}
	if err := t.Init(decl...); err != nil {
		return err
	}
	for i, st := range s.Steps {
		if st.Delay > 0 {
			if err := t.Delay(st.Delay); err != nil {
				return errors.Wrapf(err, "step #%d", i)
			}
		}
		for _, a := range st.Set {
			sig := sigs[a.Signal]
			if sig == nil {
				return errors.Errorf("step #%d: undeclared signal %s", i, a.Signal)
			}
			if err := t.Set(sig, a.Value); err != nil {
				return errors.Wrapf(err, "step #%d: set %s", i, a.Signal)
			}
		}
	}
	return nil
}
