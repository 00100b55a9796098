package flagx

import (
	"io"
	"os"
)

// Default is the process-wide default [FlagSet], for programs with exactly one parsing context.
// Every package-level function below is a thin wrapper around it; nothing works through Default that
// doesn't work through an explicit [New].
var Default = New()

// Bool registers a boolean flag with [Default].
func Bool(name string, def bool, desc string) *bool {
	return Default.Bool(name, def, desc)
}

// BoolVar registers a boolean flag with [Default] using caller-owned storage.
func BoolVar(p *bool, name string, def bool, desc string) {
	Default.BoolVar(p, name, def, desc)
}

// Uint64 registers an unsigned integer flag with [Default].
func Uint64(name string, def uint64, desc string) *uint64 {
	return Default.Uint64(name, def, desc)
}

// Uint64Var registers an unsigned integer flag with [Default] using caller-owned storage.
func Uint64Var(p *uint64, name string, def uint64, desc string) {
	Default.Uint64Var(p, name, def, desc)
}

// Size registers a byte-count flag with [Default].
func Size(name string, def uint64, desc string) *uint64 {
	return Default.Size(name, def, desc)
}

// SizeVar registers a byte-count flag with [Default] using caller-owned storage.
func SizeVar(p *uint64, name string, def uint64, desc string) {
	Default.SizeVar(p, name, def, desc)
}

// Float32 registers a single-precision float flag with [Default].
func Float32(name string, def float32, desc string) *float32 {
	return Default.Float32(name, def, desc)
}

// Float32Var registers a single-precision float flag with [Default] using caller-owned storage.
func Float32Var(p *float32, name string, def float32, desc string) {
	Default.Float32Var(p, name, def, desc)
}

// Float64 registers a double-precision float flag with [Default].
func Float64(name string, def float64, desc string) *float64 {
	return Default.Float64(name, def, desc)
}

// Float64Var registers a double-precision float flag with [Default] using caller-owned storage.
func Float64Var(p *float64, name string, def float64, desc string) {
	Default.Float64Var(p, name, def, desc)
}

// String registers a string flag with [Default].
func String(name, def, desc string) *string {
	return Default.String(name, def, desc)
}

// StringVar registers a string flag with [Default] using caller-owned storage.
func StringVar(p *string, name, def, desc string) {
	Default.StringVar(p, name, def, desc)
}

// List registers a repeatable flag with [Default].
func List(name, desc string) *[]string {
	return Default.List(name, desc)
}

// OwnedList registers a repeatable flag with copied values with [Default].
func OwnedList(name, desc string) *[]string {
	return Default.OwnedList(name, desc)
}

// Required marks a flag on [Default] as mandatory.
func Required(handle any) {
	Default.Required(handle)
}

// Range attaches an inclusive bound to an integer flag on [Default].
func Range(handle any, lo, hi uint64) {
	Default.Range(handle, lo, hi)
}

// NameOf resolves a handle registered with [Default] back to its flag name.
func NameOf(handle any) (string, bool) {
	return Default.NameOf(handle)
}

// Parse runs [FlagSet.Parse] on [Default] with [os.Args].
func Parse() error {
	return Default.Parse(os.Args)
}

// Rest returns the unconsumed tail of [os.Args] after [Parse].
func Rest() []string {
	return Default.Rest()
}

// WriteUsage renders usage for every flag registered with [Default].
func WriteUsage(w io.Writer) {
	Default.WriteUsage(w)
}
