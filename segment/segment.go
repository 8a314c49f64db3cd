package segment

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Mask selects the bits of a half that belong to a segment.
//
// As text a mask is written in hex (0xf0000000). Any Go integer literal is
// accepted when reading (0x, 0b, 0o, decimal and _ separators).
type Mask uint32

func (m Mask) String() string {
	return fmt.Sprintf("0x%08x", uint32(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mask) MarshalText() (text []byte, err error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mask) UnmarshalText(text []byte) (err error) {
	v, err := strconv.ParseUint(strings.TrimSpace(string(text)), 0, 32)
	if err != nil {
		return Error.New("invalid mask %q: %v", text, err)
	}

	*m = Mask(v)

	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Both numbers and strings are
// accepted.
func (m *Mask) UnmarshalJSON(data []byte) (err error) {
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return Error.New("invalid mask %s: %v", data, err)
		}

		return m.UnmarshalText([]byte(s))
	}

	return m.UnmarshalText(bytes.TrimSpace(data))
}

// Segment is a named run of bits within one half.
type Segment struct {
	Key  string `yaml:"key" json:"key"`
	Mask Mask   `yaml:"mask" json:"mask"`
}

func (s Segment) String() string {
	return fmt.Sprintf("%s:%s", s.Key, s.Mask)
}

// Compiled is a validated segment with its placement resolved.
type Compiled struct {
	Segment

	// Shift is the position of the lowest bit of the segment.
	Shift int

	// Width is the number of bits in the segment.
	Width int

	// Half is the index of the word the segment lives in.
	Half int

	// Bool is true for single bit segments.
	Bool bool
}

// Max returns the largest value the segment can hold.
func (c Compiled) Max() uint32 {
	return uint32(c.Mask) >> c.Shift
}

// Closes returns true if the segment includes bit 0 of its half.
func (c Compiled) Closes() bool {
	return c.Shift == 0
}
