package regime

import (
	"math/bits"
	"strings"
)

// Run is a decoded regime.
type Run struct {
	// K is the run value.
	K int

	// Len is the number of bits the regime occupies including the
	// terminator (if there was room for one).
	Len int
}

// Scan measures the regime starting at bit index start of an nbits wide
// pattern right-aligned in bits. Bit indices count from the most significant
// bit of the pattern, so start is normally 1 (the bit after the sign).
//
// The run is clamped to the end of the pattern. A run that reaches the end
// has no terminator and consumes every remaining bit.
func Scan(pattern uint64, nbits, start int) (k, consumed int) {
	remaining := nbits - start
	if remaining <= 0 {
		return 0, 0
	}

	// Left align the bit at start.
	v := pattern << uint(64-nbits+start)

	ones := v>>63 == 1

	var run int
	if ones {
		run = bits.LeadingZeros64(^v)
	} else {
		run = bits.LeadingZeros64(v)
	}

	if run >= remaining {
		run = remaining
		consumed = remaining
	} else {
		consumed = run + 1
	}

	if ones {
		return run - 1, consumed
	}

	return -run, consumed
}

// Decode is Scan returning a Run.
func Decode(pattern uint64, nbits, start int) Run {
	k, n := Scan(pattern, nbits, start)

	return Run{K: k, Len: n}
}

// Pattern returns the unbounded (terminated) regime bits for k right-aligned
// in pattern. For k >= 0 this is k+1 ones followed by a zero, otherwise it is
// |k| zeros followed by a one.
//
// Length is at most 64, so k must lie within [-63, 62].
func Pattern(k int) (pattern uint64, length int) {
	if k >= 0 {
		length = k + 2

		return (1<<uint(k+1) - 1) << 1, length
	}

	return 1, -k + 1
}

// Truncated returns the regime for k as it appears in an nbits wide pattern:
// the terminator (and possibly part of the run) is dropped when it does not
// fit after the sign bit.
func Truncated(k, nbits int) Run {
	_, n := Pattern(k)
	if n > nbits-1 {
		n = nbits - 1
	}

	return Run{K: k, Len: n}
}

// String renders the run as it appears in the pattern, e.g. 1110.
func (r Run) String() string {
	if r.Len <= 0 {
		return ""
	}

	sb := &strings.Builder{}

	run, term := byte('1'), byte('0')
	m := r.K + 1
	if r.K < 0 {
		run, term = '0', '1'
		m = -r.K
	}

	for i := 0; i < r.Len; i++ {
		if i < m {
			sb.WriteByte(run)
		} else {
			sb.WriteByte(term)
		}
	}

	return sb.String()
}
