// Package segment declares and validates the bit segments packed into the
// raw representation of a float64.
//
// A Schema lists segments from the most significant bit of the first half
// down to the least significant bit of the second half. The segment whose
// mask includes bit 0 closes the first half and every segment after it reads
// the second half:
//
//  half:  |<------------- word[0] ------------->|<------------- word[1] ------------->|
//  bit:   | 31 .. 28 | 27 ..................  1 | 0 | 31 | 30 ...................... 1 | 0 |
//  key:   |   tag    |          (unused)        |flg|    |            value           |   |
//
//  Schema{
//  	Segments: []Segment{
//  		{Key: "tag", Mask: 0xF000_0000},
//  		{Key: "flag", Mask: 0x0000_0001},
//  		{Key: "value", Mask: 0x7FFF_FFFE},
//  	},
//  }
//
// Bits not covered by any segment decode to nothing and encode as zero.
// Single bit segments are exposed as booleans.
//
// Schemas are checked once by Compile. A Layout is immutable and safe to
// share between goroutines.
package segment
