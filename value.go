package bitstamp

import (
	"fmt"
	"strconv"
)

// Kind is the type held by a Value.
type Kind uint8

// Value kinds.
const (
	Invalid Kind = iota
	UintKind
	BoolKind
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case UintKind:
		return "uint"
	case BoolKind:
		return "bool"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is the content of a field: an unsigned integer or a boolean. Values
// are comparable with ==.
type Value struct {
	kind Kind
	v    uint32
}

// Uint returns an integer value.
func Uint(v uint32) Value {
	return Value{kind: UintKind, v: v}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	if b {
		return Value{kind: BoolKind, v: 1}
	}

	return Value{kind: BoolKind}
}

// Kind returns the kind of value.
func (v Value) Kind() Kind {
	return v.kind
}

// Uint returns the integer content. Booleans are 0 or 1.
func (v Value) Uint() uint32 {
	return v.v
}

// Bool returns true if the value is non-zero.
func (v Value) Bool() bool {
	return v.v != 0
}

// Bits returns the value as it is written into a segment.
func (v Value) Bits() uint32 {
	return v.v
}

func (v Value) String() string {
	switch v.kind {
	case UintKind:
		return strconv.FormatUint(uint64(v.v), 10)
	case BoolKind:
		return strconv.FormatBool(v.v != 0)
	}

	return "<invalid>"
}
