package posit

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// Encode returns the posit nearest to x. Zero encodes to zero, ±Inf to NaR,
// and magnitudes outside [minpos, maxpos] saturate.
func (c Config) Encode(x *big.Float) Posit {
	switch {
	case x == nil || x.IsInf():
		return c.NaR()
	case x.Sign() == 0:
		return c.Zero()
	}

	exp := x.MantExp(nil)
	prec := int(x.MinPrec())

	m := new(big.Float).SetMantExp(x, prec-exp)
	sig, _ := m.Int(nil)

	return c.Round(Unrounded{
		Negative:    x.Signbit(),
		Scale:       exp - 1,
		Significand: sig,
	})
}

// FromFloat64 returns the posit nearest to f. NaN and ±Inf are NaR.
func (c Config) FromFloat64(f float64) Posit {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return c.NaR()
	}

	return c.Encode(new(big.Float).SetFloat64(f))
}

// FromRat returns the posit nearest to r. A nil r is NaR.
func (c Config) FromRat(r *big.Rat) Posit {
	switch {
	case r == nil:
		return c.NaR()
	case r.Sign() == 0:
		return c.Zero()
	}

	num := new(big.Int).Abs(r.Num())

	return c.Round(c.quotient(r.Sign() < 0, num, r.Denom(), 0))
}

// FromFloat16 returns the posit equal to (or nearest to) f.
func (c Config) FromFloat16(f float16.Float16) Posit {
	return c.FromFloat64(float64(f.Float32()))
}

// FromFloat returns the posit nearest to v.
func FromFloat[T constraints.Float](c Config, v T) Posit {
	return c.FromFloat64(float64(v))
}

// FromInt returns the posit nearest to v.
func FromInt[T constraints.Integer](c Config, v T) Posit {
	if v == 0 {
		return c.Zero()
	}

	negative := v < 0

	m := uint64(v)
	if negative {
		m = 0 - m
	}

	return c.Round(Unrounded{
		Negative:    negative,
		Scale:       bits.Len64(m) - 1,
		Significand: new(big.Int).SetUint64(m),
	})
}
