package quire

import (
	"math/bits"

	"github.com/calebcase/posit"
)

// Product is an exact, unrounded product of two posits:
//
//	(-1)^Negative * (Hi*2^64 + Lo) * 2^Exp
//
// Exp is the weight of the least significant bit.
type Product struct {
	Negative bool
	NaR      bool

	Hi, Lo uint64
	Exp    int
}

// Multiply returns a*b without rounding. The significands are at most 62 bits
// wide so their product always fits in 128 bits.
func Multiply(a, b posit.Posit) Product {
	if a.IsNaR() || b.IsNaR() {
		return Product{NaR: true}
	}

	if a.IsZero() || b.IsZero() {
		return Product{}
	}

	da, db := a.Decode(), b.Decode()

	hi, lo := bits.Mul64(da.Significand(), db.Significand())

	return Product{
		Negative: da.Negative != db.Negative,
		Hi:       hi,
		Lo:       lo,
		Exp:      da.Exp() + db.Exp(),
	}
}

// Single returns p as a product (p*1).
func Single(p posit.Posit) Product {
	if p.IsNaR() {
		return Product{NaR: true}
	}

	if p.IsZero() {
		return Product{}
	}

	d := p.Decode()

	return Product{
		Negative: d.Negative,
		Lo:       d.Significand(),
		Exp:      d.Exp(),
	}
}

// IsZero reports whether the product is zero.
func (p Product) IsZero() bool {
	return !p.NaR && p.Hi == 0 && p.Lo == 0
}

// Neg returns -p.
func (p Product) Neg() Product {
	p.Negative = !p.Negative

	return p
}
