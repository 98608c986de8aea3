// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vcd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxWidth is the largest supported signal width in bits.
//
const MaxWidth = 64

// ErrWidth is returned for signals whose width is not in [1, MaxWidth].
//
var ErrWidth = errors.New("vcd: invalid signal width")

// A RangeError reports a value that does not fit in a signal's width.
//
type RangeError struct {
	Width int
	Value int64
}

func (e *RangeError) Error() string {
	return "vcd: value " + strconv.FormatInt(e.Value, 10) + " out of range for width " + strconv.Itoa(e.Width)
}

func checkWidth(width int) error {
	if width < 1 || width > MaxWidth {
		return errors.Wrapf(ErrWidth, "width %d", width)
	}
	return nil
}

// bits returns the two's complement bit pattern of v on width bits. v must be
// in [-2^(width-1), 2^width-1].
//
func bits(width int, v int64) (uint64, error) {
	if err := checkWidth(width); err != nil {
		return 0, err
	}
	if width == MaxWidth {
		// every int64 is a valid 64 bit pattern.
		return uint64(v), nil
	}
	lo, hi := -int64(1)<<uint(width-1), int64(1)<<uint(width)-1
	if v < lo || v > hi {
		return 0, &RangeError{Width: width, Value: v}
	}
	if v < 0 {
		v += int64(1) << uint(width)
	}
	return uint64(v), nil
}

// FormatValue returns the value change record for value v of a signal with
// the given width and code, without a trailing newline.
//
// Single bit signals are formatted as the bit followed by the code, with no
// separator ("1!"). Wider signals are formatted as "b", width binary digits,
// a space and the code ("b0011 !"). Negative values are written in two's
// complement. Values outside [-2^(width-1), 2^width-1] are rejected with a
// *RangeError.
//
func FormatValue(width int, v int64, code Code) (string, error) {
	u, err := bits(width, v)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if width == 1 {
		b.Grow(1 + len(code))
		b.WriteByte(byte('0' + u))
		b.WriteString(string(code))
		return b.String(), nil
	}
	digits := strconv.FormatUint(u, 2)
	b.Grow(width + 2 + len(code))
	b.WriteByte('b')
	for i := len(digits); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
	b.WriteByte(' ')
	b.WriteString(string(code))
	return b.String(), nil
}
