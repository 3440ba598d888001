package posit

import "encoding/binary"

// MarshalBinary implements encoding.BinaryMarshaler. The pattern is written
// big-endian in Config.Size bytes with no header; the configuration is not
// part of the data.
func (p Posit) MarshalBinary() (data []byte, err error) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], p.bits)

	data = make([]byte, p.cfg.Size())
	copy(data, buf[8-len(data):])

	return data, nil
}

// UnmarshalBinary reads a pattern written by MarshalBinary.
func (c Config) UnmarshalBinary(data []byte) (p Posit, err error) {
	if len(data) != c.Size() {
		return p, Error.New("invalid length: %d != %d", len(data), c.Size())
	}

	var buf [8]byte
	copy(buf[8-len(data):], data)

	v := binary.BigEndian.Uint64(buf[:])
	if v&^c.mask() != 0 {
		return p, Error.New("invalid pattern: bits set above %d: %0*b", c.nbits, len(data)*8, v)
	}

	return Posit{cfg: c, bits: v}, nil
}
