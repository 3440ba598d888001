// Package quire provides an exact fixed point accumulator for sums of posit
// products.
//
// A quire of posit<nbits,es> with c capacity bits is a two's complement
// register wide enough to hold any product of two posits exactly:
//
//  | sign | capacity | integer          | fraction        |
//  |------|----------|------------------|-----------------|
//  | 1    | c        | 2*maxscale + 1   | 2*maxscale      |
//  |------|----------|------------------|-----------------|
//
// where maxscale = (nbits-2)*2^es is the scale of maxpos. The fraction
// segment reaches down to minpos^2 and the integer segment up to maxpos^2.
// The capacity bits allow 2^c products to be summed before the register can
// overflow; the quire counts accumulations and refuses the next one with
// ErrOverflow.
//
// Accumulation is exact. The only rounding happens in ToPosit, which hands
// the register to posit.Config.Round.
//
// A Quire is not safe for concurrent use.
package quire
