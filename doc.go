// Package posit provides the posit tapered precision number format.
//
// A posit<nbits,es> pattern is nbits wide and has up to four fields: a sign
// bit, a run-length coded regime (see package regime), an es bit exponent and
// a fraction with an implicit leading one. The regime and the exponent
// together form the scale:
//
//  value = (-1)^s * 2^(k*2^es + e) * (1 + f/2^fbits)
//
// Negative values are the two's complement of the whole pattern; decoding
// complements first and then reads the fields. The all zero pattern is 0 and
// the pattern with only the sign bit set is NaR (Not-a-Real). There are no
// infinities and no negative zero.
//
// Fields
//
// The regime has variable length so the exponent and fraction get whatever
// is left. Near 1.0 the regime is 2 bits and the fraction is longest (the
// golden zone). Towards maxpos and minpos the regime grows until it leaves no
// room for the fraction and then the exponent; missing exponent bits are
// zero.
//
// Examples
//
// posit<8,2> 1.0 (0x40)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|-------|-------|-----------|
//  | 0 | 1 . 0 | 0 . 0 | 0 . 0 . 0 | k=0 e=0 f=0
//  |---|-------|-------|-----------|
//
// posit<8,2> 1.5 (0x44)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|-------|-------|-----------|
//  | 0 | 1 . 0 | 0 . 0 | 1 . 0 . 0 | k=0 e=0 f=4/8
//  |---|-------|-------|-----------|
//
// posit<8,2> 0.5 (0x38)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|-------|-------|-----------|
//  | 0 | 0 . 1 | 1 . 1 | 0 . 0 . 0 | k=-1 e=3 scale=-1
//  |---|-------|-------|-----------|
//
// posit<8,2> 2^18 (0x7d)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|-----------------------|---|
//  | 0 | 1 . 1 . 1 . 1 . 1 . 0 | 1 | k=4 e=2 (one exponent bit left)
//  |---|-----------------------|---|
//
// posit<8,2> maxpos = 2^24 (0x7f)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---|---------------------------|
//  | 0 | 1 . 1 . 1 . 1 . 1 . 1 . 1 | k=6, no terminator
//  |---|---------------------------|
//
// Rounding
//
// Every conversion into a posit goes through Config.Round: the value is laid
// out as an unbounded pattern and cut to nbits with round to nearest, ties to
// the even pattern, on the bit string. Magnitudes beyond maxpos or minpos
// saturate; a nonzero value never rounds to zero or NaR.
//
// Arithmetic on Posit decodes the operands, computes exactly and rounds once.
// Sums of products that must round only once are computed with package quire
// and package fdp.
package posit
