package posit_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/posit"
	"github.com/calebcase/posit/internal/reference"
)

type op struct {
	name  string
	posit func(p, q posit.Posit) (posit.Posit, error)
	exact func(a, b *big.Rat) *big.Rat
}

var ops = []op{
	{
		name:  "add",
		posit: posit.Posit.Add,
		exact: func(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) },
	},
	{
		name:  "sub",
		posit: posit.Posit.Sub,
		exact: func(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) },
	},
	{
		name:  "mul",
		posit: posit.Posit.Mul,
		exact: func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) },
	},
	{
		name:  "quo",
		posit: posit.Posit.Quo,
		exact: func(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) },
	},
}

// checkOp compares one operation on p and q against exact arithmetic
// rounded by the reference.
func checkOp(t *testing.T, o op, p, q posit.Posit) {
	t.Helper()

	cfg := p.Config()
	got, err := o.posit(p, q)

	if p.IsNaR() || q.IsNaR() {
		require.True(t, got.IsNaR())

		if o.name == "quo" {
			require.ErrorIs(t, err, posit.ErrDivideByNaR)
		} else {
			require.NoError(t, err)
		}

		return
	}

	if o.name == "quo" && q.IsZero() {
		require.ErrorIs(t, err, posit.ErrDivideByZero)
		require.True(t, got.IsNaR())

		return
	}

	require.NoError(t, err)

	want := reference.Round(cfg, o.exact(p.Rat(), q.Rat()))
	require.Equal(t, want, got, "%s %s %s: want=%s got=%s", p, o.name, q, want.Pattern(), got.Pattern())
}

func TestArithmeticExhaustive(t *testing.T) {
	cfg := posit.MustConfig(8, 1)

	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			for a := uint64(0); a < 256; a++ {
				for b := uint64(0); b < 256; b++ {
					checkOp(t, o, cfg.FromBits(a), cfg.FromBits(b))
				}
			}
		})
	}
}

func TestArithmeticSampled(t *testing.T) {
	cfgs := []posit.Config{
		posit.MustConfig(16, 1),
		posit.MustConfig(16, 2),
		posit.MustConfig(32, 2),
		posit.MustConfig(63, 3),
	}

	rng := rand.New(rand.NewSource(1))

	for _, cfg := range cfgs {
		for _, o := range ops {
			t.Run(cfg.String()+"/"+o.name, func(t *testing.T) {
				for i := 0; i < 1000; i++ {
					p := cfg.FromBits(rng.Uint64())
					q := cfg.FromBits(rng.Uint64())

					checkOp(t, o, p, q)
				}
			})
		}
	}
}

func TestArithmetic(t *testing.T) {
	cfg := posit.MustConfig(16, 1)

	two := cfg.FromFloat64(2)
	three := cfg.FromFloat64(3)

	require.Equal(t, cfg.FromFloat64(5), two.MustAdd(three))
	require.Equal(t, cfg.FromFloat64(-1), two.MustSub(three))
	require.Equal(t, cfg.FromFloat64(6), two.MustMul(three))
	require.Equal(t, cfg.FromRat(big.NewRat(2, 3)), two.MustQuo(three))

	// x - x is zero, not a tiny value.
	require.True(t, three.MustSub(three).IsZero())

	// Products beyond maxpos saturate instead of overflowing.
	require.Equal(t, cfg.MaxPos(), cfg.MaxPos().MustMul(cfg.MaxPos()))
	require.Equal(t, cfg.MinPos(), cfg.MinPos().MustMul(cfg.MinPos()))
	require.Equal(t, cfg.MinPos().Neg(), cfg.MinPos().MustMul(cfg.MinPos().Neg()))

	require.True(t, cfg.Zero().MustQuo(three).IsZero())
	require.True(t, cfg.NaR().MustAdd(three).IsNaR())
	require.True(t, three.MustMul(cfg.NaR()).IsNaR())
}

func TestArithmeticErrors(t *testing.T) {
	cfg := posit.MustConfig(16, 1)
	other := posit.MustConfig(16, 2)

	one := cfg.One()

	p, err := one.Quo(cfg.Zero())
	require.ErrorIs(t, err, posit.ErrDivideByZero)
	require.True(t, p.IsNaR())

	p, err = cfg.NaR().Quo(one)
	require.ErrorIs(t, err, posit.ErrDivideByNaR)
	require.True(t, p.IsNaR())

	require.Panics(t, func() {
		one.MustQuo(cfg.Zero())
	})

	for _, o := range ops {
		p, err = o.posit(one, other.One())
		require.ErrorIs(t, err, posit.ErrConfigMismatch, o.name)
		require.True(t, p.IsNaR(), o.name)
	}
}

func TestReciprocal(t *testing.T) {
	cfg := posit.MustConfig(8, 1)

	for b := uint64(0); b < 256; b++ {
		p := cfg.FromBits(b)

		got, err := p.Reciprocal()

		switch {
		case p.IsNaR():
			require.ErrorIs(t, err, posit.ErrDivideByNaR)
			require.True(t, got.IsNaR())
		case p.IsZero():
			require.ErrorIs(t, err, posit.ErrDivideByZero)
			require.True(t, got.IsNaR())
		default:
			require.NoError(t, err)

			want := reference.Round(cfg, new(big.Rat).Inv(p.Rat()))
			require.Equal(t, want, got, "1/%s want=%s got=%s", p, want.Pattern(), got.Pattern())
		}
	}

	// Reciprocals of powers of two are exact.
	wide := posit.MustConfig(32, 2)
	require.Equal(t, wide.FromFloat64(0.125), wide.FromFloat64(8).MustQuo(wide.FromFloat64(64)))
	r, err := wide.FromFloat64(8).Reciprocal()
	require.NoError(t, err)
	require.Equal(t, wide.FromFloat64(0.125), r)
	require.Equal(t, wide.MinPos(), must(wide.MaxPos().Reciprocal()))
}

func must(p posit.Posit, err error) posit.Posit {
	if err != nil {
		panic(err)
	}

	return p
}

func TestSqrt(t *testing.T) {
	cfgs := []posit.Config{
		posit.MustConfig(5, 0),
		posit.MustConfig(8, 0),
		posit.MustConfig(8, 1),
		posit.MustConfig(8, 2),
		posit.MustConfig(10, 3),
		posit.MustConfig(12, 1),
	}

	for _, cfg := range cfgs {
		t.Run(cfg.String(), func(t *testing.T) {
			n := uint64(1) << uint(cfg.Bits())

			for b := uint64(0); b < n; b++ {
				p := cfg.FromBits(b)

				got, err := p.Sqrt()

				switch {
				case p.IsNaR():
					require.NoError(t, err)
					require.True(t, got.IsNaR())
				case p.IsNeg():
					require.ErrorIs(t, err, posit.ErrSqrtNegative)
					require.True(t, got.IsNaR())
				case p.IsZero():
					require.NoError(t, err)
					require.True(t, got.IsZero())
				default:
					require.NoError(t, err)

					want := reference.Sqrt(p)
					require.Equal(t, want, got, "sqrt(%s) want=%s got=%s", p, want.Pattern(), got.Pattern())
				}
			}
		})
	}
}

func TestSqrtSampled(t *testing.T) {
	cfgs := []posit.Config{
		posit.MustConfig(32, 2),
		posit.MustConfig(63, 4),
	}

	rng := rand.New(rand.NewSource(9))

	for _, cfg := range cfgs {
		t.Run(cfg.String(), func(t *testing.T) {
			for i := 0; i < 500; i++ {
				p := cfg.FromBits(rng.Uint64()).Abs()
				if p.IsNaR() || p.IsZero() {
					continue
				}

				want := reference.Sqrt(p)
				got := p.MustSqrt()

				require.Equal(t, want, got, "sqrt(%s)", p)
			}
		})
	}

	cfg := posit.MustConfig(64, 2)
	require.Equal(t, cfg.FromFloat64(3), cfg.FromFloat64(9).MustSqrt())
	require.Equal(t, cfg.FromFloat64(0.75), cfg.FromFloat64(0.5625).MustSqrt())
	require.Panics(t, func() {
		cfg.One().Neg().MustSqrt()
	})
}
