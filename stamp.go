package bitstamp

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/calebcase/oops"

	"github.com/calebcase/bitstamp/segment"
)

// Stamp is a set of fields packed into a float64.
//
// The float is never stored. It is rebuilt from Fields each time Float is
// called, so writes into Fields are reflected immediately.
type Stamp struct {
	Fields Fields

	layout *segment.Layout
}

// New decodes f using l.
func New(f float64, l *segment.Layout) *Stamp {
	return &Stamp{
		Fields: Decode(f, l),
		layout: l,
	}
}

// Layout returns the layout of the stamp.
func (s *Stamp) Layout() *segment.Layout {
	return s.layout
}

// Float returns the float encoding the current fields.
func (s *Stamp) Float() float64 {
	return Encode(s.Fields, s.layout)
}

// SetFloat replaces the fields with those decoded from f.
func (s *Stamp) SetFloat(f float64) {
	s.Fields = Decode(f, s.layout)
}

// Get returns the value of key.
func (s *Stamp) Get(key string) (v Value, ok bool) {
	v, ok = s.Fields[key]

	return v, ok
}

// Set stores v under key. The key must be part of the layout, v must be a
// Bool for single bit segments and a Uint otherwise, and it must fit in its
// segment.
func (s *Stamp) Set(key string, v Value) (err error) {
	if s.layout == nil {
		return Error.New("no layout")
	}

	c, ok := s.layout.Lookup(key)
	if !ok {
		return oops.Trace(ErrUnknownKey)
	}

	want := UintKind
	if c.Bool {
		want = BoolKind
	}

	if v.Kind() != want {
		return oops.Trace(ErrKind)
	}

	if v.Bits() > c.Max() {
		return oops.Trace(ErrOverflow)
	}

	if s.Fields == nil {
		s.Fields = Fields{}
	}

	s.Fields[key] = v

	return nil
}

// Equal returns true if both stamps hold equal fields. Layouts are not
// compared.
func (s *Stamp) Equal(other *Stamp) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Fields.Equal(other.Fields)
}

func (s *Stamp) String() string {
	return fmt.Sprintf("BitStamp (%v): %s", s.Float(), s.Fields)
}

// MarshalBinary implements encoding.BinaryMarshaler. The float is written as
// its 8 byte big-endian bit pattern.
func (s *Stamp) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 8)
	binary.BigEndian.PutUint64(data, math.Float64bits(s.Float()))

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The stamp must
// already have a layout.
func (s *Stamp) UnmarshalBinary(data []byte) (err error) {
	if len(data) != 8 {
		return oops.Trace(ErrSize)
	}

	if s.layout == nil {
		return Error.New("no layout")
	}

	s.SetFloat(math.Float64frombits(binary.BigEndian.Uint64(data)))

	return nil
}
