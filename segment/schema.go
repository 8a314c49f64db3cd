package segment

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/bitstamp/mask"
	"github.com/calebcase/bitstamp/raw"
)

// Schema is the declaration of a set of segments.
type Schema struct {
	Order    raw.Order `yaml:"order" json:"order"`
	Segments []Segment `yaml:"segments" json:"segments"`
}

// Layout is a compiled schema.
type Layout struct {
	order    raw.Order
	segments []Compiled
	index    map[string]int
	covered  raw.Pair
}

// Compile validates the schema and resolves the placement of each segment.
//
// Every problem found is reported. The returned error is always in the
// InvalidSegment class.
func Compile(schema Schema) (_ *Layout, err error) {
	defer InvalidSegment.WrapP(&err)

	var group errs.Group

	switch schema.Order {
	case raw.HighFirst, raw.LowFirst:
	default:
		group.Add(errs.New("unknown order: %s", schema.Order))
	}

	l := &Layout{
		order:    schema.Order,
		segments: make([]Compiled, 0, len(schema.Segments)),
		index:    make(map[string]int, len(schema.Segments)),
	}

	half := 0

	// prev is the mask of the previous segment in the current half.
	var prev uint32

	for i, s := range schema.Segments {
		m := uint32(s.Mask)
		shift := mask.TrailingZeros(m)

		if s.Key == "" {
			group.Add(errs.New("segment %d: empty key", i))
		} else if _, ok := l.index[s.Key]; ok {
			group.Add(errs.New("segment %d (%q): duplicate key", i, s.Key))
		}

		if half > 1 {
			group.Add(errs.New("segment %d (%q): both halves already closed", i, s.Key))

			continue
		}

		if m == 0 {
			group.Add(errs.New("segment %d (%q): zero mask", i, s.Key))

			continue
		}

		if !mask.Contiguous(m) {
			group.Add(errs.New("segment %d (%q): mask %s is not contiguous", i, s.Key, s.Mask))
		} else if hi, _ := mask.Span(m); prev != 0 && hi >= mask.TrailingZeros(prev) {
			group.Add(errs.New(
				"segment %d (%q): mask %s overlaps or precedes %s in half %d",
				i, s.Key, s.Mask, Mask(prev), half,
			))
		}

		if s.Key != "" {
			if _, ok := l.index[s.Key]; !ok {
				l.index[s.Key] = len(l.segments)
			}
		}

		l.segments = append(l.segments, Compiled{
			Segment: s,
			Shift:   shift,
			Width:   mask.Width(m),
			Half:    half,
			Bool:    mask.Single(m),
		})
		l.covered[half] |= m

		prev = m

		if shift == 0 {
			half++
			prev = 0
		}
	}

	err = group.Err()
	if err != nil {
		return nil, err
	}

	return l, nil
}

// MustCompile is like Compile but panics if the schema is invalid.
func MustCompile(schema Schema) *Layout {
	l, err := Compile(schema)
	if err != nil {
		panic(err)
	}

	return l
}

// Order returns the half order of the layout.
//
// A nil layout behaves like an empty one.
func (l *Layout) Order() raw.Order {
	if l == nil {
		return raw.HighFirst
	}

	return l.order
}

// Len returns the number of segments.
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}

	return len(l.segments)
}

// Segments returns the compiled segments in schema order.
func (l *Layout) Segments() []Compiled {
	if l == nil {
		return nil
	}

	return append([]Compiled(nil), l.segments...)
}

// At returns the i-th compiled segment.
func (l *Layout) At(i int) Compiled {
	return l.segments[i]
}

// Lookup returns the compiled segment for key.
func (l *Layout) Lookup(key string) (c Compiled, ok bool) {
	if l == nil {
		return c, false
	}

	i, ok := l.index[key]
	if !ok {
		return c, false
	}

	return l.segments[i], true
}

// Keys returns the segment keys in schema order.
func (l *Layout) Keys() []string {
	if l == nil {
		return []string{}
	}

	keys := make([]string, 0, len(l.segments))
	for _, c := range l.segments {
		keys = append(keys, c.Key)
	}

	return keys
}

// Covered returns the union of the segment masks in each half.
func (l *Layout) Covered() raw.Pair {
	if l == nil {
		return raw.Pair{}
	}

	return l.covered
}

// Schema returns the declaration the layout was compiled from.
func (l *Layout) Schema() Schema {
	if l == nil {
		return Schema{}
	}

	s := Schema{
		Order:    l.order,
		Segments: make([]Segment, 0, len(l.segments)),
	}

	for _, c := range l.segments {
		s.Segments = append(s.Segments, c.Segment)
	}

	return s
}
