// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vcd

// A Code is the short identifier of a signal in value change records.
//
type Code string

// code digits: all printable ASCII characters except space.
const (
	codeFirst = '!'
	codeLast  = '~'
	codeBase  = codeLast - codeFirst + 1
)

// Codes generates an unbounded sequence of distinct codes.
//
// The k-th code (starting at 0) is the base 94 representation of k, most
// significant digit first, using '!' through '~' as digits.
//
type Codes struct {
	n uint64
}

// NewCodes returns a new code generator whose first code is "!".
//
func NewCodes() *Codes {
	return &Codes{}
}

// Next returns the next code in the sequence.
//
func (g *Codes) Next() Code {
	c := codeAt(g.n)
	g.n++
	return c
}

// Count returns the number of codes generated so far.
//
func (g *Codes) Count() uint64 { return g.n }

func codeAt(n uint64) Code {
	// 10 digits are enough for a uint64 in base 94.
	var buf [10]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte(codeFirst + n%codeBase)
		n /= codeBase
		if n == 0 {
			break
		}
	}
	return Code(buf[i:])
}
