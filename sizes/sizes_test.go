package sizes

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected uint64
	}{
		{
			name:     "No suffix",
			input:    "10",
			expected: 10,
		},
		{
			name:     "Zero",
			input:    "0",
			expected: 0,
		},
		{
			name:     "Char",
			input:    "7c",
			expected: 7,
		},
		{
			name:     "Word",
			input:    "3w",
			expected: 6,
		},
		{
			name:     "Block",
			input:    "2b",
			expected: 1024,
		},
		{
			name:     "Kilobyte decimal",
			input:    "10kB",
			expected: 10_000,
		},
		{
			name:     "Kibibyte short",
			input:    "10K",
			expected: 10 * 1024,
		},
		{
			name:     "Kibibyte long",
			input:    "10KiB",
			expected: 10 * 1024,
		},
		{
			name:     "Megabyte decimal",
			input:    "2MB",
			expected: 2_000_000,
		},
		{
			name:     "Mebibyte dd alias",
			input:    "2xM",
			expected: 2 << 20,
		},
		{
			name:     "Gibibyte",
			input:    "1G",
			expected: 1 << 30,
		},
		{
			name:     "Exbibyte",
			input:    "15E",
			expected: 15 << 60,
		},
		{
			name:     "Zero of unrepresentable suffix",
			input:    "0Z",
			expected: 0,
		},
		{
			name:     "Max uint64",
			input:    strconv.FormatUint(math.MaxUint64, 10),
			expected: math.MaxUint64,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			val, err := Parse(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, val)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "Empty",
			input:    "",
			expected: ErrSyntax,
		},
		{
			name:     "No numeral",
			input:    "K",
			expected: ErrSyntax,
		},
		{
			name:     "Negative",
			input:    "-10K",
			expected: ErrSyntax,
		},
		{
			name:     "Unknown suffix",
			input:    "10Q",
			expected: ErrSuffix,
		},
		{
			name:     "Trailing garbage",
			input:    "123abc",
			expected: ErrSuffix,
		},
		{
			name:     "Lowercase variant of binary suffix",
			input:    "10k",
			expected: ErrSuffix,
		},
		{
			name:     "Numeral overflow",
			input:    "18446744073709551616",
			expected: ErrOverflow,
		},
		{
			name:     "Multiplied overflow",
			input:    "16E",
			expected: ErrOverflow,
		},
		{
			name:     "Unrepresentable suffix",
			input:    "1Z",
			expected: ErrOverflow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestMultiplier(t *testing.T) {
	mult, ok := Multiplier("")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), mult)

	mult, ok = Multiplier("GiB")
	assert.True(t, ok)
	assert.Equal(t, uint64(1<<30), mult)

	_, ok = Multiplier("Q")
	assert.False(t, ok)
}
