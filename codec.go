package bitstamp

import (
	"github.com/calebcase/bitstamp/mask"
	"github.com/calebcase/bitstamp/raw"
	"github.com/calebcase/bitstamp/segment"
)

// Decode extracts the fields of f described by l.
func Decode(f float64, l *segment.Layout) Fields {
	p := raw.Split(f, l.Order())
	fs := make(Fields, l.Len())

	half := 0

	for i := 0; i < l.Len(); i++ {
		c := l.At(i)
		v := mask.Extract(p[half], uint32(c.Mask))

		if c.Bool {
			fs[c.Key] = Bool(v != 0)
		} else {
			fs[c.Key] = Uint(v)
		}

		// The segment holding bit 0 ends the half.
		if c.Closes() {
			half++
		}
	}

	return fs
}

// Encode packs fs into a float using l. Missing keys encode as zero and values
// wider than their segment are truncated to it.
func Encode(fs Fields, l *segment.Layout) float64 {
	var p raw.Pair

	half := 0

	for i := 0; i < l.Len(); i++ {
		c := l.At(i)

		p[half] |= mask.Insert(fs[c.Key].Bits(), uint32(c.Mask))

		if c.Closes() {
			half++
		}
	}

	return raw.Join(p, l.Order())
}
