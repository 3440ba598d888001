package posit

import "fmt"

// MustAdd is like [Posit.Add] but panics on error.
func (p Posit) MustAdd(q Posit) Posit {
	r, err := p.Add(q)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", q, err))
	}
	return r
}

// MustSub is like [Posit.Sub] but panics on error.
func (p Posit) MustSub(q Posit) Posit {
	r, err := p.Sub(q)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", q, err))
	}
	return r
}

// MustMul is like [Posit.Mul] but panics on error.
func (p Posit) MustMul(q Posit) Posit {
	r, err := p.Mul(q)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", q, err))
	}
	return r
}

// MustQuo is like [Posit.Quo] but panics on error.
func (p Posit) MustQuo(q Posit) Posit {
	r, err := p.Quo(q)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", q, err))
	}
	return r
}

// MustSqrt is like [Posit.Sqrt] but panics on error.
func (p Posit) MustSqrt() Posit {
	r, err := p.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v) failed: %v", p, err))
	}
	return r
}
