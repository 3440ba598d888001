package posit

import (
	"math"
	"math/big"
	"strings"

	"github.com/x448/float16"
)

// Posit is an immutable pattern of a configuration. The zero value is not
// usable; values are made by a Config.
type Posit struct {
	cfg  Config
	bits uint64
}

// Config returns the configuration of p.
func (p Posit) Config() Config { return p.cfg }

// Bits returns the pattern right-aligned.
func (p Posit) Bits() uint64 { return p.bits }

// Decode unpacks p.
func (p Posit) Decode() Decoded { return p.cfg.Decode(p.bits) }

// IsZero reports whether p is zero.
func (p Posit) IsZero() bool { return p.bits == 0 }

// IsNaR reports whether p is Not-a-Real.
func (p Posit) IsNaR() bool { return p.bits == p.cfg.narBits() }

// IsNeg reports whether p is a negative real.
func (p Posit) IsNeg() bool {
	return p.bits&p.cfg.narBits() != 0 && !p.IsNaR()
}

// Sign returns -1, 0 or +1. NaR has sign 0.
func (p Posit) Sign() int {
	switch {
	case p.IsZero() || p.IsNaR():
		return 0
	case p.IsNeg():
		return -1
	}

	return 1
}

// Neg returns -p. Zero and NaR are their own negation.
func (p Posit) Neg() Posit {
	return Posit{cfg: p.cfg, bits: -p.bits & p.cfg.mask()}
}

// Abs returns |p|.
func (p Posit) Abs() Posit {
	if p.IsNeg() {
		return p.Neg()
	}

	return p
}

// signed returns the pattern sign extended to 64 bits. The ordering of these
// integers is the ordering of the values with NaR below everything.
func (p Posit) signed() int64 {
	s := uint(64 - p.cfg.nbits)

	return int64(p.bits<<s) >> s
}

// Cmp compares p and q as patterns read as two's complement integers, which
// orders the reals. NaR compares below every real and equal to itself.
func (p Posit) Cmp(q Posit) int {
	a, b := p.signed(), q.signed()

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Equal reports whether p and q are the same pattern of the same
// configuration.
func (p Posit) Equal(q Posit) bool {
	return p.cfg == q.cfg && p.bits == q.bits
}

// Next returns the pattern after p. The successor of maxpos is NaR and of NaR
// is -maxpos.
func (p Posit) Next() Posit {
	return Posit{cfg: p.cfg, bits: (p.bits + 1) & p.cfg.mask()}
}

// Prev returns the pattern before p.
func (p Posit) Prev() Posit {
	return Posit{cfg: p.cfg, bits: (p.bits - 1) & p.cfg.mask()}
}

// BigFloat returns the exact value. NaR is +Inf.
func (p Posit) BigFloat() *big.Float { return p.Decode().Value() }

// Rat returns the exact value, or nil for NaR.
func (p Posit) Rat() *big.Rat { return p.Decode().Rat() }

// Float64 returns the nearest float64. NaR is NaN.
func (p Posit) Float64() float64 { return p.Decode().Float64() }

// Float32 returns the nearest float32. NaR is NaN.
func (p Posit) Float32() float32 {
	if p.IsNaR() {
		return float32(math.NaN())
	}

	f, _ := p.BigFloat().Float32()

	return f
}

// Float16 returns p as a half precision float, rounded through float32.
func (p Posit) Float16() float16.Float16 {
	return float16.Fromfloat32(p.Float32())
}

// String returns the shortest decimal that identifies the exact value, or
// NaR.
func (p Posit) String() string {
	if p.IsNaR() {
		return "NaR"
	}

	return p.BigFloat().Text('g', -1)
}

// Pattern returns the pattern split into its fields, sign first:
//
//	posit<8,2> 1.5 = 0|10|00|100
//
// Fields absent from the pattern are omitted. Zero and NaR are split into
// sign and the remaining bits.
func (p Posit) Pattern() string {
	n := p.cfg.nbits
	d := p.Decode()

	widths := []int{1, d.Regime.Len, d.ExponentBits, d.FractionBits}

	sb := &strings.Builder{}
	i := n - 1

	for f, w := range widths {
		if w == 0 {
			continue
		}

		if f > 0 {
			sb.WriteByte('|')
		}

		for ; w > 0; w-- {
			if p.bits>>uint(i)&1 == 1 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			i--
		}
	}

	return sb.String()
}
