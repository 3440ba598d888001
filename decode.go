package posit

import (
	"math"
	"math/big"

	"github.com/calebcase/posit/regime"
)

// Kind classifies a decoded pattern.
type Kind uint8

// Kinds of decoded patterns. Zero and NaR are recognized sentinels, not
// errors.
const (
	KindNormal Kind = iota
	KindZero
	KindNaR
)

func (k Kind) String() string {
	switch k {
	case KindZero:
		return "zero"
	case KindNaR:
		return "NaR"
	}

	return "normal"
}

// Decoded is the unpacked form of a pattern. For negative values the fields
// describe the two's complement of the pattern, i.e. the magnitude.
//
// The value is (-1)^Negative * 2^Scale * (1 + Fraction/2^FractionBits) where
// Scale = Regime.K * 2^es + Exponent.
type Decoded struct {
	Kind     Kind
	Negative bool

	Regime regime.Run

	// Exponent is aligned to es bits: when the regime left fewer than es
	// bits, the missing low order bits are zero. ExponentBits is the
	// number of bits actually present in the pattern.
	Exponent     uint64
	ExponentBits int

	Fraction     uint64
	FractionBits int

	Scale int
}

// Decode unpacks a pattern. Every pattern decodes; zero and NaR are reported
// through Kind.
func (c Config) Decode(bits uint64) (d Decoded) {
	bits &= c.mask()

	switch bits {
	case 0:
		d.Kind = KindZero
		d.Regime = regime.Truncated(-(c.nbits - 1), c.nbits)

		return d
	case c.narBits():
		d.Kind = KindNaR
		d.Negative = true
		d.Regime = regime.Truncated(-(c.nbits - 1), c.nbits)

		return d
	}

	mag := bits
	if bits&c.narBits() != 0 {
		d.Negative = true
		mag = -bits & c.mask()
	}

	d.Regime = regime.Decode(mag, c.nbits, 1)

	remaining := c.nbits - 1 - d.Regime.Len
	tail := mag & (1<<uint(remaining) - 1)

	d.ExponentBits = c.es
	if remaining < c.es {
		d.ExponentBits = remaining
	}

	d.FractionBits = remaining - d.ExponentBits
	d.Exponent = (tail >> uint(d.FractionBits)) << uint(c.es-d.ExponentBits)
	d.Fraction = tail & (1<<uint(d.FractionBits) - 1)
	d.Scale = d.Regime.K<<uint(c.es) + int(d.Exponent)

	return d
}

// Significand returns the fraction with its hidden bit.
func (d Decoded) Significand() uint64 {
	if d.Kind != KindNormal {
		return 0
	}

	return 1<<uint(d.FractionBits) | d.Fraction
}

// Exp returns the weight of the least significant significand bit, so the
// magnitude is Significand * 2^Exp.
func (d Decoded) Exp() int {
	return d.Scale - d.FractionBits
}

// Value returns the exact value. NaR is returned as +Inf, which encodes back
// to NaR.
func (d Decoded) Value() *big.Float {
	switch d.Kind {
	case KindZero:
		return new(big.Float)
	case KindNaR:
		return new(big.Float).SetInf(false)
	}

	f := new(big.Float).SetUint64(d.Significand())
	f.SetMantExp(f, d.Exp())
	if d.Negative {
		f.Neg(f)
	}

	return f
}

// Rat returns the exact value as a rational, or nil for NaR.
func (d Decoded) Rat() *big.Rat {
	switch d.Kind {
	case KindZero:
		return new(big.Rat)
	case KindNaR:
		return nil
	}

	sig, exp := d.signed()

	r := new(big.Rat)
	if exp >= 0 {
		return r.SetInt(sig.Lsh(sig, uint(exp)))
	}

	den := new(big.Int).Lsh(big.NewInt(1), uint(-exp))

	return r.SetFrac(sig, den)
}

// Float64 returns the nearest float64. NaR is NaN.
func (d Decoded) Float64() float64 {
	if d.Kind == KindNaR {
		return math.NaN()
	}

	f, _ := d.Value().Float64()

	return f
}

// signed returns the value as sig * 2^exp with a signed significand.
func (d Decoded) signed() (sig *big.Int, exp int) {
	sig = new(big.Int).SetUint64(d.Significand())
	if d.Negative {
		sig.Neg(sig)
	}

	return sig, d.Exp()
}
