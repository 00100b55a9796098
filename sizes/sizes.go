// Package sizes parses byte counts with dd-style multiplicative suffixes.
//
// A size is an unsigned base-10 numeral followed by an optional suffix.
// Decimal suffixes (kB, MB, GB, ...) multiply by powers of 1000, binary
// suffixes (K/KiB, M/MiB, G/GiB, ...) by powers of 1024, plus the dd
// oddities c (1), w (2), b (512), and xM (1 MiB).
// Suffixes are case-sensitive and matched exactly.
package sizes

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrSyntax indicates that the input has no leading numeral, or trails off into something that isn't a recognized suffix at all.
	ErrSyntax = errors.New("invalid size")
	// ErrSuffix indicates that the numeral was followed by an unrecognized suffix.
	ErrSuffix = errors.New("unrecognized size suffix")
	// ErrOverflow indicates that the count multiplied by its suffix doesn't fit in a uint64.
	ErrOverflow = errors.New("size overflow")
)

var multipliers = map[string]uint64{
	"c": 1,
	"w": 2,
	"b": 512,

	"kB": 1000,
	"MB": 1000 * 1000,
	"GB": 1000 * 1000 * 1000,
	"TB": 1000 * 1000 * 1000 * 1000,
	"PB": 1000 * 1000 * 1000 * 1000 * 1000,
	"EB": 1000 * 1000 * 1000 * 1000 * 1000 * 1000,

	"K": 1 << 10, "KiB": 1 << 10,
	"M": 1 << 20, "MiB": 1 << 20, "xM": 1 << 20,
	"G": 1 << 30, "GiB": 1 << 30,
	"T": 1 << 40, "TiB": 1 << 40,
	"P": 1 << 50, "PiB": 1 << 50,
	"E": 1 << 60, "EiB": 1 << 60,
}

// Suffixes whose multiplier exceeds the uint64 range entirely.
// They're still recognized so the caller gets an overflow error rather than a suffix error.
var unrepresentable = map[string]bool{
	"ZB": true, "Z": true, "ZiB": true,
	"YB": true, "Y": true, "YiB": true,
}

// Multiplier returns the multiplier for a suffix, and whether the suffix is recognized and representable.
// The empty suffix is valid with a multiplier of 1.
func Multiplier(suffix string) (uint64, bool) {
	if len(suffix) == 0 {
		return 1, true
	}
	mult, ok := multipliers[suffix]
	return mult, ok
}

// Parse converts a size string like "10K" or "2MB" to a byte count.
//
// Errors wrap [ErrSyntax], [ErrSuffix], or [ErrOverflow] so they can be matched with [errors.Is].
func Parse(s string) (uint64, error) {
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	count, err := strconv.ParseUint(s[:digits], 10, 64)
	if err != nil {
		// Only a range error is possible with an all-digit numeral.
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	suffix := s[digits:]
	mult, ok := Multiplier(suffix)
	if !ok {
		if unrepresentable[suffix] {
			if count == 0 {
				return 0, nil
			}
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrSuffix, suffix)
	}
	if count > 0 && mult > math.MaxUint64/count {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return count * mult, nil
}
