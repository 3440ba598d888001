package quire

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"

	"github.com/calebcase/oops"
	"github.com/calebcase/posit"
)

// Capacity limits.
const (
	DefaultCapacity = 30
	MaxCapacity     = 63
)

// Quire is an exact accumulator for one configuration.
type Quire struct {
	cfg      posit.Config
	capacity int

	// radix is the number of fraction bits, 2*maxscale. Bit i of the
	// register has weight 2^(i-radix).
	radix int

	// reg is the two's complement register, least significant limb
	// first.
	reg []uint64

	count uint64
	nar   bool
}

// New returns a zeroed quire for cfg with capacity guard bits.
func New(cfg posit.Config, capacity int) (*Quire, error) {
	if capacity < 0 || capacity > MaxCapacity {
		return nil, Error.New("invalid capacity: %d not in [0, %d]", capacity, MaxCapacity)
	}

	radix := 2 * cfg.MaxScale()
	width := radix + (radix + 1) + capacity + 1

	return &Quire{
		cfg:      cfg,
		capacity: capacity,
		radix:    radix,
		reg:      make([]uint64, (width+63)/64),
	}, nil
}

// Config returns the configuration of the quire.
func (q *Quire) Config() posit.Config { return q.cfg }

// Capacity returns the number of guard bits.
func (q *Quire) Capacity() int { return q.capacity }

// Count returns the number of accumulations since the last reset.
func (q *Quire) Count() uint64 { return q.count }

// Width returns the size of the register in bits.
func (q *Quire) Width() int { return len(q.reg) * 64 }

// Reset zeroes the quire.
func (q *Quire) Reset() {
	for i := range q.reg {
		q.reg[i] = 0
	}

	q.count = 0
	q.nar = false
}

// Accumulate adds p to the register exactly.
//
// Every call counts against the capacity; once 2^capacity accumulations have
// been made the quire returns ErrOverflow and is left unchanged until Reset.
// A NaR product latches the quire into NaR.
func (q *Quire) Accumulate(p Product) (err error) {
	if !p.NaR && !p.IsZero() {
		err = q.check(p)
		if err != nil {
			return err
		}
	}

	if q.count >= 1<<uint(q.capacity) {
		return oops.Trace(ErrOverflow)
	}

	q.count++

	switch {
	case p.NaR:
		q.nar = true
	case p.IsZero():
	default:
		q.add(p.Hi, p.Lo, p.Exp+q.radix, p.Negative)
	}

	return nil
}

// check verifies that p lies within the fraction and integer segments.
func (q *Quire) check(p Product) error {
	shift := p.Exp + q.radix
	if shift < 0 {
		return Error.New("product below range: exp=%d min=%d", p.Exp, -q.radix)
	}

	n := bits.Len64(p.Lo)
	if p.Hi != 0 {
		n = 64 + bits.Len64(p.Hi)
	}

	if msb := shift + n - 1; msb > 2*q.radix {
		return Error.New("product above range: msb=%d max=%d", msb-q.radix, q.radix)
	}

	return nil
}

// add adds (or subtracts) hi:lo << shift with carry (borrow) propagation
// through the rest of the register.
func (q *Quire) add(hi, lo uint64, shift int, negative bool) {
	w := shift / 64
	b := uint(shift % 64)

	addend := [3]uint64{lo, hi, 0}
	if b != 0 {
		addend = [3]uint64{lo << b, hi<<b | lo>>(64-b), hi >> (64 - b)}
	}

	var carry uint64

	for i := 0; w+i < len(q.reg); i++ {
		var a uint64
		if i < len(addend) {
			a = addend[i]
		} else if carry == 0 {
			break
		}

		if negative {
			q.reg[w+i], carry = bits.Sub64(q.reg[w+i], a, carry)
		} else {
			q.reg[w+i], carry = bits.Add64(q.reg[w+i], a, carry)
		}
	}
}

// AddProduct adds a*b.
func (q *Quire) AddProduct(a, b posit.Posit) error {
	if a.Config() != q.cfg || b.Config() != q.cfg {
		return oops.Trace(ErrConfigMismatch)
	}

	return q.Accumulate(Multiply(a, b))
}

// SubProduct subtracts a*b.
func (q *Quire) SubProduct(a, b posit.Posit) error {
	if a.Config() != q.cfg || b.Config() != q.cfg {
		return oops.Trace(ErrConfigMismatch)
	}

	return q.Accumulate(Multiply(a, b).Neg())
}

// Add adds p.
func (q *Quire) Add(p posit.Posit) error {
	if p.Config() != q.cfg {
		return oops.Trace(ErrConfigMismatch)
	}

	return q.Accumulate(Single(p))
}

// Sub subtracts p.
func (q *Quire) Sub(p posit.Posit) error {
	if p.Config() != q.cfg {
		return oops.Trace(ErrConfigMismatch)
	}

	return q.Accumulate(Single(p).Neg())
}

// IsNaR reports whether a NaR was accumulated.
func (q *Quire) IsNaR() bool { return q.nar }

// IsZero reports whether the register is zero.
func (q *Quire) IsZero() bool {
	if q.nar {
		return false
	}

	for _, w := range q.reg {
		if w != 0 {
			return false
		}
	}

	return true
}

func (q *Quire) isNeg() bool {
	return q.reg[len(q.reg)-1]>>63 == 1
}

// Sign returns -1, 0 or +1 from the register. A NaR quire has sign 0.
func (q *Quire) Sign() int {
	switch {
	case q.nar || q.IsZero():
		return 0
	case q.isNeg():
		return -1
	}

	return 1
}

// magnitude returns the sign and the absolute value of the register as an
// integer scaled by 2^radix.
func (q *Quire) magnitude() (negative bool, mag *big.Int) {
	negative = q.isNeg()

	buf := make([]byte, 8*len(q.reg))

	var carry uint64 = 1
	for i, w := range q.reg {
		if negative {
			w, carry = bits.Add64(^w, 0, carry)
		}

		binary.BigEndian.PutUint64(buf[len(buf)-8*(i+1):], w)
	}

	return negative, new(big.Int).SetBytes(buf)
}

// ToPosit rounds the accumulated sum to the quire's configuration. This is
// the only rounding a quire performs.
func (q *Quire) ToPosit() posit.Posit {
	switch {
	case q.nar:
		return q.cfg.NaR()
	case q.IsZero():
		return q.cfg.Zero()
	}

	negative, mag := q.magnitude()

	return q.cfg.Round(posit.Unrounded{
		Negative:    negative,
		Scale:       mag.BitLen() - 1 - q.radix,
		Significand: mag,
	})
}

// Value returns the exact accumulated sum. NaR is +Inf.
func (q *Quire) Value() *big.Float {
	switch {
	case q.nar:
		return new(big.Float).SetInf(false)
	case q.IsZero():
		return new(big.Float)
	}

	negative, mag := q.magnitude()

	f := new(big.Float).SetInt(mag)
	f.SetMantExp(f, -q.radix)
	if negative {
		f.Neg(f)
	}

	return f
}

// Float64 returns the accumulated sum rounded to float64. NaR is NaN.
func (q *Quire) Float64() float64 {
	if q.nar {
		return math.NaN()
	}

	f, _ := q.Value().Float64()

	return f
}

// Merge adds the sum held by r into q. Both quires must share a
// configuration. The accumulations of r count against the capacity of q; if
// they do not fit, Merge returns ErrOverflow and leaves q unchanged. A NaR in
// either quire makes q NaR.
func (q *Quire) Merge(r *Quire) error {
	if r.cfg != q.cfg {
		return oops.Trace(ErrConfigMismatch)
	}

	if r.count > 1<<uint(q.capacity)-q.count {
		return oops.Trace(ErrOverflow)
	}

	q.count += r.count

	if r.nar {
		q.nar = true
	}

	if q.nar {
		return nil
	}

	// r holds at most as many products as q can take, so limbs of r
	// above the width of q are sign extension.
	var ext uint64
	if r.isNeg() {
		ext = ^uint64(0)
	}

	var carry uint64
	for i := range q.reg {
		a := ext
		if i < len(r.reg) {
			a = r.reg[i]
		}

		q.reg[i], carry = bits.Add64(q.reg[i], a, carry)
	}

	return nil
}

// Cmp compares the exact sums held by q and r. As with posits, NaR compares
// below every value and equal to itself.
func (q *Quire) Cmp(r *Quire) int {
	switch {
	case q.nar && r.nar:
		return 0
	case q.nar:
		return -1
	case r.nar:
		return 1
	}

	return q.Value().Cmp(r.Value())
}

// Equal reports whether q and r hold the same sum.
func (q *Quire) Equal(r *Quire) bool { return q.Cmp(r) == 0 }
