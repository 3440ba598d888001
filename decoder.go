package posit

import (
	"errors"
	"io"
)

// Decoder reads consecutive patterns of one configuration.
type Decoder struct {
	cfg Config
	r   io.Reader
	buf []byte
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(cfg Config, r io.Reader) *Decoder {
	return &Decoder{
		cfg: cfg,
		r:   r,
		buf: make([]byte, cfg.Size()),
	}
}

// Decode reads the next posit. It returns io.EOF when the input ends on a
// pattern boundary.
func (d *Decoder) Decode() (p Posit, err error) {
	_, err = io.ReadFull(d.r, d.buf)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return p, io.EOF
		}

		return p, Error.Wrap(err)
	}

	return d.cfg.UnmarshalBinary(d.buf)
}
