package posit

import (
	"math/big"

	"github.com/calebcase/posit/regime"
)

// Unrounded is a value that has not been rounded to a configuration yet:
//
//	(-1)^Negative * Significand * 2^(Scale - (Significand.BitLen()-1))
//
// Scale is the weight of the leading significand bit. Sticky reports that
// the true magnitude is strictly larger than the significand describes (some
// nonzero bits were dropped below it). When Sticky is set the significand
// must carry at least nbits bits so the guard bit is known.
type Unrounded struct {
	Negative    bool
	Scale       int
	Significand *big.Int
	Sticky      bool
}

// Round returns the posit nearest to u, ties to the even pattern. This is the
// one rounding step shared by every conversion into a posit and by the quire.
//
// Magnitudes above maxpos saturate to maxpos and nonzero magnitudes below
// minpos saturate to minpos; the result is never NaR and never zero unless u
// is zero.
func (c Config) Round(u Unrounded) Posit {
	if u.Significand == nil || u.Significand.Sign() == 0 {
		return c.Zero()
	}

	mag := c.roundMagnitude(u)
	if u.Negative {
		return Posit{cfg: c, bits: -mag & c.mask()}
	}

	return Posit{cfg: c, bits: mag}
}

// roundMagnitude lays out regime, exponent and fraction of |u| as an
// unbounded bit string and rounds it to nbits-1 bits.
func (c Config) roundMagnitude(u Unrounded) uint64 {
	switch {
	case u.Scale > c.MaxScale():
		return c.maxposBits()
	case u.Scale < c.MinScale():
		return 1
	}

	frac := new(big.Int).Abs(u.Significand)
	fbits := frac.BitLen() - 1
	frac.SetBit(frac, fbits, 0)

	k := u.Scale >> uint(c.es)
	e := u.Scale - k<<uint(c.es)

	reg, rlen := regime.Pattern(k)

	pt := new(big.Int).SetUint64(reg)
	pt.Lsh(pt, uint(c.es))
	pt.Or(pt, big.NewInt(int64(e)))
	pt.Lsh(pt, uint(fbits))
	pt.Or(pt, frac)

	length := rlen + c.es + fbits
	avail := c.nbits - 1

	if length <= avail {
		return pt.Uint64() << uint(avail-length)
	}

	shift := uint(length - avail)

	mag := new(big.Int).Rsh(pt, shift).Uint64()
	guard := pt.Bit(int(shift-1)) == 1
	sticky := u.Sticky || pt.TrailingZeroBits() < shift-1

	if guard && (sticky || mag&1 == 1) {
		mag++
	}

	return mag
}

// quotient returns num/den * 2^exp for positive num and den with enough
// quotient bits for rounding.
func (c Config) quotient(negative bool, num, den *big.Int, exp int) Unrounded {
	s := c.nbits + 2 + den.BitLen() - num.BitLen()
	if s < 0 {
		s = 0
	}

	n := new(big.Int).Lsh(num, uint(s))
	q, r := n.QuoRem(n, den, new(big.Int))

	return Unrounded{
		Negative:    negative,
		Scale:       q.BitLen() - 1 + exp - s,
		Significand: q,
		Sticky:      r.Sign() != 0,
	}
}

// exact rounds sig * 2^exp for a signed sig.
func (c Config) exact(sig *big.Int, exp int) Posit {
	if sig.Sign() == 0 {
		return c.Zero()
	}

	return c.Round(Unrounded{
		Negative:    sig.Sign() < 0,
		Scale:       sig.BitLen() - 1 + exp,
		Significand: sig,
	})
}
