// Package regime provides the run-length coded regime field of a posit.
//
// The regime is a unary prefix code that starts immediately after the sign
// bit. A run of m ones terminated by a zero encodes k = m - 1, a run of m
// zeros terminated by a one encodes k = -m. The terminator is part of the
// regime. When the run reaches the end of the pattern there is no terminator
// and all remaining bits belong to the regime.
//
// This diagram shows the regime of an 8 bit pattern (sign bit excluded, bit 0
// is the sign). Filled in bits are the regime, blanks are left for the
// exponent and fraction.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || k  | consumed |
//  |---|---------------------------||----|----------|
//  | s | 0 . 0 . 0 . 0 . 0 . 0 . 1 || -6 | 7        |
//  | s | 0 . 0 . 0 . 1 |           || -3 | 4        |
//  | s | 0 . 1 |                   || -1 | 2        |
//  | s | 1 . 0 |                   ||  0 | 2        |
//  | s | 1 . 1 . 1 . 0 |           ||  2 | 4        |
//  | s | 1 . 1 . 1 . 1 . 1 . 1 . 0 ||  5 | 7        |
//  | s | 1 . 1 . 1 . 1 . 1 . 1 . 1 ||  6 | 7        |
//  |---|---------------------------||----|----------|
//
// The last row is the unterminated run of maxpos: k takes its largest value,
// nbits - 2. The regime scales the value by useed^k where useed = 2^(2^es).
package regime
