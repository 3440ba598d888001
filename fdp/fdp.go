// Package fdp computes fused dot products: sums of posit products rounded
// once, through a quire.
package fdp

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/posit"
	"github.com/calebcase/posit/quire"
)

// Error is the error class for this package.
var Error = errs.Class("fdp")

var (
	// ErrLength is returned when the vectors differ in length.
	ErrLength = Error.New("length mismatch")

	// ErrEmpty is returned for empty vectors; their configuration is
	// unknown.
	ErrEmpty = Error.New("empty vector")
)

// Dot returns round(sum x[i]*y[i]) with a single rounding. The products are
// accumulated exactly in a quire of quire.DefaultCapacity guard bits.
func Dot(x, y []posit.Posit) (posit.Posit, error) {
	if len(x) != len(y) {
		return posit.Posit{}, oops.Trace(ErrLength)
	}

	if len(x) == 0 {
		return posit.Posit{}, oops.Trace(ErrEmpty)
	}

	q, err := quire.New(x[0].Config(), quire.DefaultCapacity)
	if err != nil {
		return posit.Posit{}, err
	}

	err = DotInto(q, x, y)
	if err != nil {
		return x[0].Config().NaR(), err
	}

	return q.ToPosit(), nil
}

// DotInto accumulates x[i]*y[i] into q without rounding. The caller owns q
// and decides when to round it.
func DotInto(q *quire.Quire, x, y []posit.Posit) (err error) {
	if len(x) != len(y) {
		return oops.Trace(ErrLength)
	}

	for i := range x {
		err = q.AddProduct(x[i], y[i])
		if err != nil {
			return err
		}
	}

	return nil
}

// Sum returns round(sum x[i]) with a single rounding.
func Sum(x []posit.Posit) (posit.Posit, error) {
	if len(x) == 0 {
		return posit.Posit{}, oops.Trace(ErrEmpty)
	}

	q, err := quire.New(x[0].Config(), quire.DefaultCapacity)
	if err != nil {
		return posit.Posit{}, err
	}

	for _, p := range x {
		err = q.Add(p)
		if err != nil {
			return x[0].Config().NaR(), err
		}
	}

	return q.ToPosit(), nil
}

// FMA returns round(a*b + c) with a single rounding.
func FMA(a, b, c posit.Posit) (posit.Posit, error) {
	q, err := quire.New(a.Config(), 1)
	if err != nil {
		return posit.Posit{}, err
	}

	err = q.AddProduct(a, b)
	if err != nil {
		return a.Config().NaR(), err
	}

	err = q.Add(c)
	if err != nil {
		return a.Config().NaR(), err
	}

	return q.ToPosit(), nil
}
