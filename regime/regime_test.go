package regime_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
	"github.com/calebcase/posit/regime"
)

func TestScan(t *testing.T) {
	type TC struct {
		Pattern  uint64
		Nbits    int
		Start    int
		K        int
		Consumed int
		Mark     error
	}

	tcs := []TC{
		{
			Pattern:  0b_0000_0001,
			Nbits:    8,
			Start:    1,
			K:        -6,
			Consumed: 7,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0b_0000_1000,
			Nbits:    8,
			Start:    1,
			K:        -3,
			Consumed: 4,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0b_0010_0000,
			Nbits:    8,
			Start:    1,
			K:        -1,
			Consumed: 2,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0b_0100_0000,
			Nbits:    8,
			Start:    1,
			K:        0,
			Consumed: 2,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0b_0111_0101,
			Nbits:    8,
			Start:    1,
			K:        2,
			Consumed: 4,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0b_0111_1110,
			Nbits:    8,
			Start:    1,
			K:        5,
			Consumed: 7,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0b_0111_1111,
			Nbits:    8,
			Start:    1,
			K:        6,
			Consumed: 7,
			Mark:     oops.New("unexpected"),
		},
		{
			// Sign bit set: the scan ignores it.
			Pattern:  0b_1100_0000,
			Nbits:    8,
			Start:    1,
			K:        0,
			Consumed: 2,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0x7fff_ffff_ffff_ffff,
			Nbits:    64,
			Start:    1,
			K:        62,
			Consumed: 63,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0x0000_0000_0000_0001,
			Nbits:    64,
			Start:    1,
			K:        -62,
			Consumed: 63,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0b_01,
			Nbits:    2,
			Start:    1,
			K:        0,
			Consumed: 1,
			Mark:     oops.New("unexpected"),
		},
		{
			Pattern:  0b_0001_1000,
			Nbits:    8,
			Start:    3,
			K:        1,
			Consumed: 3,
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%0*b", i, tc.Nbits, tc.Pattern), func(t *testing.T) {
			k, consumed := regime.Scan(tc.Pattern, tc.Nbits, tc.Start)
			require.Equal(t, tc.K, k, tc.Mark)
			require.Equal(t, tc.Consumed, consumed, tc.Mark)

			run := regime.Decode(tc.Pattern, tc.Nbits, tc.Start)
			require.Equal(t, regime.Run{K: tc.K, Len: tc.Consumed}, run, tc.Mark)
		})
	}
}

func TestPattern(t *testing.T) {
	type TC struct {
		K       int
		Pattern uint64
		Length  int
	}

	tcs := []TC{
		{K: -3, Pattern: 0b0001, Length: 4},
		{K: -1, Pattern: 0b01, Length: 2},
		{K: 0, Pattern: 0b10, Length: 2},
		{K: 1, Pattern: 0b110, Length: 3},
		{K: 4, Pattern: 0b111110, Length: 6},
		{K: 62, Pattern: 0xffff_ffff_ffff_fffe, Length: 64},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("k=%d", tc.K), func(t *testing.T) {
			pattern, length := regime.Pattern(tc.K)
			require.Equal(t, tc.Pattern, pattern)
			require.Equal(t, tc.Length, length)
		})
	}

	t.Run("scan inverts pattern", func(t *testing.T) {
		const nbits = 16

		for k := -(nbits - 3); k <= nbits-3; k++ {
			pattern, length := regime.Pattern(k)

			// Place the regime directly after the sign bit.
			v := pattern << uint(nbits-1-length)

			gk, consumed := regime.Scan(v, nbits, 1)
			require.Equal(t, k, gk)
			require.Equal(t, length, consumed)
		}
	})
}

func TestTruncated(t *testing.T) {
	require.Equal(t, regime.Run{K: 6, Len: 7}, regime.Truncated(6, 8))
	require.Equal(t, regime.Run{K: 5, Len: 7}, regime.Truncated(5, 8))
	require.Equal(t, regime.Run{K: -6, Len: 7}, regime.Truncated(-6, 8))
	require.Equal(t, regime.Run{K: 1, Len: 3}, regime.Truncated(1, 8))
}

func TestRunString(t *testing.T) {
	require.Equal(t, "1110", regime.Run{K: 2, Len: 4}.String())
	require.Equal(t, "0001", regime.Run{K: -3, Len: 4}.String())
	require.Equal(t, "1111111", regime.Run{K: 6, Len: 7}.String())
	require.Equal(t, "10", regime.Run{K: 0, Len: 2}.String())
	require.Equal(t, "", regime.Run{}.String())
}
