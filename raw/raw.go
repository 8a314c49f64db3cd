// Package raw splits the bit pattern of a float64 into two 32-bit halves and
// joins them back.
//
// Which half comes first is fixed by an explicit Order rather than the host's
// byte order:
//
//  | Order      | word[0]                       | word[1]       |
//  |------------|-------------------------------|---------------|
//  | HighFirst  | bits 63..32 (sign, exponent,  | bits 31..0    |
//  |            | top 20 bits of the mantissa)  |               |
//  | LowFirst   | bits 31..0                    | bits 63..32   |
//
// LowFirst matches what a little-endian host produces when it reinterprets
// the 8 bytes of a double as two native 32-bit words.
package raw

import (
	"fmt"
	"math"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("raw")

// Order selects which 32 bits of the float are the first half.
type Order uint8

// Half orders.
const (
	HighFirst Order = iota
	LowFirst
)

func (o Order) String() string {
	switch o {
	case HighFirst:
		return "high-first"
	case LowFirst:
		return "low-first"
	}

	return fmt.Sprintf("Order(%d)", uint8(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() (text []byte, err error) {
	switch o {
	case HighFirst, LowFirst:
		return []byte(o.String()), nil
	}

	return nil, Error.New("invalid order: %d", uint8(o))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(text []byte) (err error) {
	switch string(text) {
	case "", "high-first":
		*o = HighFirst
	case "low-first":
		*o = LowFirst
	default:
		return Error.New("invalid order: %q", text)
	}

	return nil
}

// Pair is the raw representation of a float64 as two 32-bit words.
type Pair [2]uint32

// FromBits splits b into a pair using order o.
func FromBits(b uint64, o Order) Pair {
	hi, lo := uint32(b>>32), uint32(b)

	if o == LowFirst {
		return Pair{lo, hi}
	}

	return Pair{hi, lo}
}

// Bits reassembles the 64-bit pattern of p using order o.
func (p Pair) Bits(o Order) uint64 {
	hi, lo := p[0], p[1]

	if o == LowFirst {
		hi, lo = lo, hi
	}

	return uint64(hi)<<32 | uint64(lo)
}

// Split returns the raw representation of f.
func Split(f float64, o Order) Pair {
	return FromBits(math.Float64bits(f), o)
}

// Join returns the float whose raw representation is p. It is the inverse of
// Split for the same order.
func Join(p Pair, o Order) float64 {
	return math.Float64frombits(p.Bits(o))
}

func (p Pair) String() string {
	return fmt.Sprintf("[%08x %08x]", p[0], p[1])
}
