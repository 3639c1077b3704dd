package pathsearch_test

import (
	"math/bits"
	"testing"

	"github.com/katalvlaran/latsum/pathsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		index  uint64
		length int
		want   string
	}{
		{0, 0, ""},
		{1, 2, "01"},
		{2, 2, "10"},
		{5, 6, "000101"},
		{63, 6, "111111"},
		{64 + 3, 6, "000011"}, // high bits beyond length are dropped
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pathsearch.Encode(tc.index, tc.length), "Encode(%d,%d)", tc.index, tc.length)
	}
}

func TestEnumerationRange(t *testing.T) {
	lo, hi, err := pathsearch.EnumerationRange(2, 2, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), lo)
	assert.Equal(t, uint64(2), hi)

	// 3 wide, 2 high: two rights, one down.
	lo, hi, err = pathsearch.EnumerationRange(3, 2, true)
	require.NoError(t, err)
	assert.Equal(t, "011", pathsearch.Encode(lo, 3))
	assert.Equal(t, "110", pathsearch.Encode(hi, 3))

	lo, hi, err = pathsearch.EnumerationRange(3, 2, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), lo)
	assert.Equal(t, uint64(7), hi)

	_, hi, err = pathsearch.EnumerationRange(32, 32, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<62-1, hi)

	_, _, err = pathsearch.EnumerationRange(33, 32, true)
	require.ErrorIs(t, err, pathsearch.ErrPathTooLong)

	_, _, err = pathsearch.EnumerationRange(0, 3, true)
	require.Error(t, err)
}

// TestEnumerationRange_CoversAllValid checks the narrowed range never
// excludes an index with the right number of one-bits.
func TestEnumerationRange_CoversAllValid(t *testing.T) {
	for w := 2; w <= 6; w++ {
		for h := 2; h <= 6; h++ {
			lo, hi, err := pathsearch.EnumerationRange(w, h, true)
			require.NoError(t, err)
			L := pathsearch.PathLength(w, h)
			for i := uint64(0); i < 1<<uint(L); i++ {
				if bits.OnesCount64(i) != w-1 {
					continue
				}
				require.True(t, i >= lo && i <= hi, "%dx%d: index %d outside [%d,%d]", w, h, i, lo, hi)
			}
		}
	}
}

func TestHasStepCounts(t *testing.T) {
	assert.True(t, pathsearch.HasStepCounts("01", 2, 2))
	assert.True(t, pathsearch.HasStepCounts("10", 2, 2))
	assert.False(t, pathsearch.HasStepCounts("11", 2, 2))
	assert.False(t, pathsearch.HasStepCounts("010", 2, 2), "wrong length")
	assert.False(t, pathsearch.HasStepCounts("0x", 2, 2))
	assert.True(t, pathsearch.HasStepCounts("11000", 3, 4))
	assert.False(t, pathsearch.HasStepCounts("11100", 3, 4))
}
