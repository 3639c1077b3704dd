package pathsearch

import (
	"fmt"
	"strings"
)

// MaxPathLength is the longest encoding an index range can hold.
const MaxPathLength = 62

const (
	stepDown  byte = '0'
	stepRight byte = '1'
)

// PathLength returns L = (width-1)+(height-1), the number of moves in every
// monotonic path across a width×height grid.
func PathLength(width, height int) int {
	return (width - 1) + (height - 1)
}

// Encode renders index as a length-character bit string, most significant bit
// first, left-padded with '0'. Bits of index above length are ignored.
// Complexity: O(length).
func Encode(index uint64, length int) string {
	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		buf[i] = stepDown + byte(index&1)
		index >>= 1
	}
	return string(buf)
}

// EnumerationRange returns the inclusive index range [lo, hi] to enumerate
// for a width×height grid.
//
// With narrow, a valid encoding holds exactly width-1 one-bits among L bits,
// so the smallest such value has them all in the low positions and the
// largest has them all in the high positions:
//
//	lo = 2^(width-1) - 1
//	hi = lo << (height-1)
//
// Without narrow the full [0, 2^L - 1] is returned.
// Returns ErrPathTooLong for L > MaxPathLength.
func EnumerationRange(width, height int, narrow bool) (lo, hi uint64, err error) {
	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("EnumerationRange(%d,%d): dimensions must be ≥ 1", width, height)
	}
	length := PathLength(width, height)
	if length > MaxPathLength {
		return 0, 0, fmt.Errorf("EnumerationRange(%d,%d): L=%d: %w", width, height, length, ErrPathTooLong)
	}
	if !narrow {
		return 0, (uint64(1) << uint(length)) - 1, nil
	}
	lo = (uint64(1) << uint(width-1)) - 1
	hi = lo << uint(height-1)

	return lo, hi, nil
}

// HasStepCounts is the cheap validity check: path has exactly width-1 '1'
// characters, height-1 '0' characters and nothing else.
func HasStepCounts(path string, width, height int) bool {
	if len(path) != PathLength(width, height) {
		return false
	}
	rights := strings.Count(path, "1")
	downs := strings.Count(path, "0")
	return rights == width-1 && downs == height-1
}
