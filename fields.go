package bitstamp

import (
	"sort"
	"strings"
)

// Fields maps segment keys to their values.
type Fields map[string]Value

// Equal returns true if both sets hold the same keys and every key maps to
// the same kind and value on both sides.
func (fs Fields) Equal(other Fields) bool {
	if len(fs) != len(other) {
		return false
	}

	for k, v := range fs {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}

	return true
}

// Clone returns a copy of the set.
func (fs Fields) Clone() Fields {
	if fs == nil {
		return nil
	}

	c := make(Fields, len(fs))
	for k, v := range fs {
		c[k] = v
	}

	return c
}

// Keys returns the keys in sorted order.
func (fs Fields) Keys() []string {
	keys := make([]string, 0, len(fs))
	for k := range fs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func (fs Fields) String() string {
	sb := &strings.Builder{}

	sb.WriteString("{")

	for i, k := range fs.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(fs[k].String())
	}

	sb.WriteString("}")

	return sb.String()
}
