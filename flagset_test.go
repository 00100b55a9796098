package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSet_NameOf(t *testing.T) {
	fs := New()
	count := fs.Uint64("count", 0, "A counter")
	var bound string
	fs.StringVar(&bound, "out", "out.txt", "Output path")

	name, ok := fs.NameOf(count)
	assert.True(t, ok)
	assert.Equal(t, "count", name)

	name, ok = fs.NameOf(&bound)
	assert.True(t, ok, "Bound storage should resolve the same as internal slots")
	assert.Equal(t, "out", name)

	_, ok = fs.NameOf(new(uint64))
	assert.False(t, ok)

	other := New()
	_, ok = other.NameOf(count)
	assert.False(t, ok, "Handles don't cross FlagSet boundaries")
}

func TestFlagSet_VarBindingWritesDefault(t *testing.T) {
	fs := New()
	var (
		verbose bool
		count   uint64
		out     string
	)
	fs.BoolVar(&verbose, "verbose", true, "Verbose output")
	fs.Uint64Var(&count, "count", 64, "A counter")
	fs.StringVar(&out, "out", "out.txt", "Output path")

	assert.True(t, verbose, "Defaults are written to bound storage at registration")
	assert.Equal(t, uint64(64), count)
	assert.Equal(t, "out.txt", out)
}

func TestFlagSet_VarBindingParsesInPlace(t *testing.T) {
	fs := New()
	fs.SetProgramName("prog")
	var count uint64
	fs.Uint64Var(&count, "count", 64, "A counter")
	require.NoError(t, fs.Parse([]string{"-count", "12"}))
	assert.Equal(t, uint64(12), count)
}

func TestFlagSet_RegistrationPanics(t *testing.T) {
	t.Run("Duplicate name", func(t *testing.T) {
		fs := New()
		fs.Bool("v", false, "Verbose")
		assert.Panics(t, func() {
			fs.Uint64("v", 0, "Shadowing")
		})
	})
	t.Run("Empty name", func(t *testing.T) {
		fs := New()
		assert.Panics(t, func() {
			fs.Bool("", false, "Nameless")
		})
	})
	t.Run("Leading dash", func(t *testing.T) {
		fs := New()
		assert.Panics(t, func() {
			fs.Bool("-v", false, "Dashed")
		})
	})
	t.Run("Inverted range", func(t *testing.T) {
		fs := New()
		count := fs.Uint64("count", 0, "A counter")
		assert.Panics(t, func() {
			fs.Range(count, 10, 1)
		})
	})
	t.Run("Range on non-integer", func(t *testing.T) {
		fs := New()
		out := fs.String("out", "", "Output path")
		assert.Panics(t, func() {
			fs.Range(out, 0, 10)
		})
	})
	t.Run("Range on unregistered handle", func(t *testing.T) {
		fs := New()
		assert.Panics(t, func() {
			fs.Range(new(uint64), 0, 10)
		})
	})
	t.Run("Required on unregistered handle", func(t *testing.T) {
		fs := New()
		assert.Panics(t, func() {
			fs.Required(new(string))
		})
	})
}

func TestFlagSet_RangeOnSize(t *testing.T) {
	fs := New()
	fs.SetProgramName("prog")
	buf := fs.Size("buf", 0, "Buffer size")
	fs.Range(buf, 0, 1<<20)
	assert.ErrorIs(t, fs.Parse([]string{"-buf", "2M"}), ErrOutOfRange)
}

func TestDefault_Wrappers(t *testing.T) {
	prev := Default
	t.Cleanup(func() {
		Default = prev
	})
	Default = New()
	Default.SetProgramName("prog")

	count := Uint64("count", 1, "A counter")
	verbose := Bool("verbose", false, "Verbose output")
	Range(count, 0, 100)

	name, ok := NameOf(count)
	require.True(t, ok)
	assert.Equal(t, "count", name)

	require.NoError(t, Default.Parse([]string{"-count", "42", "-verbose", "tail"}))
	assert.Equal(t, uint64(42), *count)
	assert.True(t, *verbose)
	assert.Equal(t, []string{"tail"}, Rest())
}
