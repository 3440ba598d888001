// Package reference provides slow, independent implementations of posit
// rounding and fused dot products for tests.
//
// Round does not lay out any bits. It searches the patterns of the
// configuration for the pair that brackets the value and compares the value
// with their midpoint in pattern space: the posit<nbits+1,es> pattern
// between them.
package reference

import (
	"math/big"

	"github.com/calebcase/posit"
)

// Round returns the posit nearest to x, ties to the even pattern, saturating
// at minpos and maxpos. The configuration must be at most 63 bits wide.
func Round(cfg posit.Config, x *big.Rat) posit.Posit {
	switch x.Sign() {
	case 0:
		return cfg.Zero()
	case -1:
		return positive(cfg, new(big.Rat).Neg(x)).Neg()
	}

	return positive(cfg, x)
}

func positive(cfg posit.Config, x *big.Rat) posit.Posit {
	maxpos, minpos := cfg.MaxPos(), cfg.MinPos()

	if x.Cmp(maxpos.Rat()) >= 0 {
		return maxpos
	}

	if x.Cmp(minpos.Rat()) <= 0 {
		return minpos
	}

	// value(lo) <= x < value(hi)
	lo, hi := minpos.Bits(), maxpos.Bits()
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if cfg.FromBits(mid).Rat().Cmp(x) <= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	if cfg.FromBits(lo).Rat().Cmp(x) == 0 {
		return cfg.FromBits(lo)
	}

	wide := posit.MustConfig(cfg.Bits()+1, cfg.ES())
	midpoint := wide.FromBits(lo<<1 | 1).Rat()

	switch x.Cmp(midpoint) {
	case -1:
		return cfg.FromBits(lo)
	case 1:
		return cfg.FromBits(hi)
	}

	if lo&1 == 0 {
		return cfg.FromBits(lo)
	}

	return cfg.FromBits(hi)
}

// Dot returns the exact sum of x[i]*y[i] rounded once by Round. ok is false
// when an operand is NaR.
func Dot(x, y []posit.Posit) (p posit.Posit, ok bool) {
	cfg := x[0].Config()
	sum := new(big.Rat)

	for i := range x {
		a, b := x[i].Rat(), y[i].Rat()
		if a == nil || b == nil {
			return cfg.NaR(), false
		}

		sum.Add(sum, new(big.Rat).Mul(a, b))
	}

	return Round(cfg, sum), true
}

// Sqrt returns the posit nearest to the square root of a positive x without
// taking a root: the bracketing patterns and their pattern midpoint are
// squared and compared with x.
func Sqrt(x posit.Posit) posit.Posit {
	cfg := x.Config()
	v := x.Rat()

	sq := func(r *big.Rat) *big.Rat { return new(big.Rat).Mul(r, r) }

	// lo^2 <= v < hi^2
	lo, hi := cfg.MinPos().Bits(), cfg.MaxPos().Bits()
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if sq(cfg.FromBits(mid).Rat()).Cmp(v) <= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	if sq(cfg.FromBits(lo).Rat()).Cmp(v) == 0 {
		return cfg.FromBits(lo)
	}

	wide := posit.MustConfig(cfg.Bits()+1, cfg.ES())
	midpoint := sq(wide.FromBits(lo<<1 | 1).Rat())

	switch v.Cmp(midpoint) {
	case -1:
		return cfg.FromBits(lo)
	case 1:
		return cfg.FromBits(hi)
	}

	if lo&1 == 0 {
		return cfg.FromBits(lo)
	}

	return cfg.FromBits(hi)
}
