package posit

import (
	"math/big"

	"github.com/calebcase/oops"
)

// Arithmetic decodes both operands, computes the exact result and rounds it
// once. NaR operands yield NaR.

// Add returns p + q.
func (p Posit) Add(q Posit) (Posit, error) {
	if p.cfg != q.cfg {
		return p.cfg.NaR(), oops.Trace(ErrConfigMismatch)
	}

	switch {
	case p.IsNaR() || q.IsNaR():
		return p.cfg.NaR(), nil
	case p.IsZero():
		return q, nil
	case q.IsZero():
		return p, nil
	}

	a, ea := p.Decode().signed()
	b, eb := q.Decode().signed()

	// Align to the smaller exponent; the sum is exact.
	if ea > eb {
		a.Lsh(a, uint(ea-eb))
		ea = eb
	} else {
		b.Lsh(b, uint(eb-ea))
	}

	return p.cfg.exact(a.Add(a, b), ea), nil
}

// Sub returns p - q.
func (p Posit) Sub(q Posit) (Posit, error) {
	return p.Add(q.Neg())
}

// Mul returns p * q.
func (p Posit) Mul(q Posit) (Posit, error) {
	if p.cfg != q.cfg {
		return p.cfg.NaR(), oops.Trace(ErrConfigMismatch)
	}

	switch {
	case p.IsNaR() || q.IsNaR():
		return p.cfg.NaR(), nil
	case p.IsZero() || q.IsZero():
		return p.cfg.Zero(), nil
	}

	a, ea := p.Decode().signed()
	b, eb := q.Decode().signed()

	return p.cfg.exact(a.Mul(a, b), ea+eb), nil
}

// Quo returns p / q. Division by zero and by (or of) NaR are faults: the
// result is NaR and the error is ErrDivideByZero or ErrDivideByNaR.
func (p Posit) Quo(q Posit) (Posit, error) {
	if p.cfg != q.cfg {
		return p.cfg.NaR(), oops.Trace(ErrConfigMismatch)
	}

	switch {
	case p.IsNaR() || q.IsNaR():
		return p.cfg.NaR(), oops.Trace(ErrDivideByNaR)
	case q.IsZero():
		return p.cfg.NaR(), oops.Trace(ErrDivideByZero)
	case p.IsZero():
		return p.cfg.Zero(), nil
	}

	a, b := p.Decode(), q.Decode()

	num := new(big.Int).SetUint64(a.Significand())
	den := new(big.Int).SetUint64(b.Significand())

	u := p.cfg.quotient(a.Negative != b.Negative, num, den, a.Exp()-b.Exp())

	return p.cfg.Round(u), nil
}

// Reciprocal returns 1/p. Zero and NaR fault as in Quo.
func (p Posit) Reciprocal() (Posit, error) {
	return p.cfg.One().Quo(p)
}

// Sqrt returns the square root of p rounded once. NaR yields NaR; a negative
// operand is a fault and returns NaR with ErrSqrtNegative.
func (p Posit) Sqrt() (Posit, error) {
	switch {
	case p.IsNaR():
		return p, nil
	case p.IsNeg():
		return p.cfg.NaR(), oops.Trace(ErrSqrtNegative)
	case p.IsZero():
		return p, nil
	}

	d := p.Decode()

	sig := new(big.Int).SetUint64(d.Significand())
	exp := d.Exp()

	// Make the exponent even and give the root at least nbits+2 bits.
	shift := 2 * (p.cfg.nbits + 2)
	if exp&1 != 0 {
		shift++
	}

	sig.Lsh(sig, uint(shift))
	exp -= shift

	root := new(big.Int).Sqrt(sig)
	rem := new(big.Int).Mul(root, root)
	rem.Sub(sig, rem)

	return p.cfg.Round(Unrounded{
		Scale:       root.BitLen() - 1 + exp/2,
		Significand: root,
		Sticky:      rem.Sign() != 0,
	}), nil
}
