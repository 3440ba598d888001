package posit

import (
	"io"

	"github.com/calebcase/oops"
)

// Encoder writes consecutive patterns of one configuration.
type Encoder struct {
	cfg Config
	w   io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(cfg Config, w io.Writer) *Encoder {
	return &Encoder{
		cfg: cfg,
		w:   w,
	}
}

// Encode writes p.
func (e *Encoder) Encode(p Posit) (err error) {
	if p.cfg != e.cfg {
		return oops.Trace(ErrConfigMismatch)
	}

	data, err := p.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}
