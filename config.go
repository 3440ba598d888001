package posit

import "fmt"

// Limits of a configuration.
const (
	MinBits = 2
	MaxBits = 64
	MaxES   = 16
)

// Config is a posit configuration: the total width of a pattern and the
// width of its exponent field. Values of different configurations can not be
// combined.
type Config struct {
	nbits int
	es    int
}

// NewConfig returns the configuration posit<nbits,es>.
func NewConfig(nbits, es int) (Config, error) {
	if nbits < MinBits || nbits > MaxBits {
		return Config{}, Error.New("invalid configuration: nbits=%d not in [%d, %d]", nbits, MinBits, MaxBits)
	}

	if es < 0 || es > MaxES {
		return Config{}, Error.New("invalid configuration: es=%d not in [0, %d]", es, MaxES)
	}

	return Config{
		nbits: nbits,
		es:    es,
	}, nil
}

// MustConfig is like NewConfig but panics on an invalid configuration.
func MustConfig(nbits, es int) Config {
	c, err := NewConfig(nbits, es)
	if err != nil {
		panic(fmt.Sprintf("MustConfig(%d, %d) failed: %v", nbits, es, err))
	}

	return c
}

// Bits returns the width of a pattern.
func (c Config) Bits() int { return c.nbits }

// ES returns the width of the exponent field.
func (c Config) ES() int { return c.es }

// Useed returns log2(useed) = 2^es.
func (c Config) Useed() int { return 1 << uint(c.es) }

// MaxScale returns the scale of maxpos: (nbits-2) * 2^es.
func (c Config) MaxScale() int { return (c.nbits - 2) << uint(c.es) }

// MinScale returns the scale of minpos.
func (c Config) MinScale() int { return -c.MaxScale() }

// FractionBits returns the largest number of fraction bits any value of this
// configuration carries.
func (c Config) FractionBits() int {
	if f := c.nbits - 3 - c.es; f > 0 {
		return f
	}

	return 0
}

// Size returns the number of bytes of a marshaled pattern.
func (c Config) Size() int { return (c.nbits + 7) / 8 }

func (c Config) String() string {
	return fmt.Sprintf("posit<%d,%d>", c.nbits, c.es)
}

func (c Config) mask() uint64 {
	if c.nbits == 64 {
		return ^uint64(0)
	}

	return 1<<uint(c.nbits) - 1
}

func (c Config) narBits() uint64 { return 1 << uint(c.nbits-1) }

func (c Config) maxposBits() uint64 { return c.narBits() - 1 }

// FromBits returns the posit with the given pattern. Bits above nbits are
// ignored.
func (c Config) FromBits(bits uint64) Posit {
	return Posit{cfg: c, bits: bits & c.mask()}
}

// Zero returns 0.
func (c Config) Zero() Posit { return Posit{cfg: c} }

// NaR returns Not-a-Real.
func (c Config) NaR() Posit { return Posit{cfg: c, bits: c.narBits()} }

// One returns 1.
func (c Config) One() Posit { return Posit{cfg: c, bits: 1 << uint(c.nbits-2)} }

// MaxPos returns the largest positive value, useed^(nbits-2).
func (c Config) MaxPos() Posit { return Posit{cfg: c, bits: c.maxposBits()} }

// MinPos returns the smallest positive value, useed^-(nbits-2).
func (c Config) MinPos() Posit { return Posit{cfg: c, bits: 1} }
