// Package bitstamp packs small named fields into the raw bit pattern of a
// float64.
//
// A stamp is described by a segment.Layout: an ordered list of named masks
// spread over the two 32-bit halves of the float's raw representation (see
// package raw for which half is first). Decoding walks the segments in order
// reading from the first half until a segment that includes bit 0 closes it;
// the remaining segments read the second half. Encoding walks the same path in
// reverse.
//
//  l := segment.MustCompile(segment.Schema{
//  	Segments: []segment.Segment{
//  		{Key: "tag", Mask: 0xF000_0000},
//  		{Key: "flag", Mask: 0x0000_0001},
//  		{Key: "value", Mask: 0x7FFF_FFFE},
//  	},
//  })
//
//  s := bitstamp.New(f, l)
//  s.Fields["tag"]   // Uint(5)
//  s.Fields["flag"]  // Bool(true)
//  s.Float()         // f with uncovered bits cleared
//
// The half order is part of the schema and defaults to raw.HighFirst, where
// the first half holds the sign and exponent. Stamps written by programs that
// view the double's 8 bytes as two native 32-bit words on a little-endian host
// (typed array views in JavaScript, for example) put the low 32 bits first;
// decode those with Order set to raw.LowFirst (order: low-first in a schema
// document).
//
// Segments one bit wide decode to booleans, all others to unsigned integers.
// Bits that no segment covers are dropped: they decode to nothing and encode
// as zero.
//
// Nothing here checks that the resulting float is a number. Stamping bits
// into the exponent can yield infinities, NaNs or subnormals; the bit pattern
// is preserved either way.
package bitstamp
