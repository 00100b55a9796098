package flagx

import (
	"fmt"

	"github.com/saylorsolutions/x/assert"
	"github.com/saylorsolutions/x/structures/set"
)

// flagDef is one registered flag: its metadata plus the typed storage slot behind the handle returned at registration.
type flagDef struct {
	name     string
	desc     string
	kind     Kind
	val      value
	handle   any
	required bool
}

// A FlagSet is an isolated namespace of registered flags plus the state of one parse run: the program name and the rest arguments.
//
// A FlagSet is built up with the registration methods, parsed exactly once with [FlagSet.Parse], and then only read.
// Parsing the same FlagSet twice is undefined: there is no reset operation, and a second run would see the first run's values and provided state.
// A FlagSet is not safe for concurrent use.
type FlagSet struct {
	progName    string
	progNameSet bool
	flags       []*flagDef
	byName      map[string]*flagDef
	provided    set.Set[string]
	rest        []string
	parsed      bool
	keepTerm    bool
}

// New creates an empty FlagSet with no program name.
// The first argument passed to [FlagSet.Parse] will be consumed as the program name unless [FlagSet.SetProgramName] is called first.
func New() *FlagSet {
	return &FlagSet{
		byName:   map[string]*flagDef{},
		provided: set.New[string](),
	}
}

// register appends a new flag definition.
// Registration mistakes are defects in the calling program, so they panic rather than returning an error.
func (f *FlagSet) register(kind Kind, name, desc string, val value, handle any) {
	assert.NotEmpty("flag name", name)
	assert.True("flag name has no leading dash", name[0] != '-')
	if _, exists := f.byName[name]; exists {
		panic(fmt.Sprintf("flag %q registered twice", name))
	}
	def := &flagDef{
		name:   name,
		desc:   desc,
		kind:   kind,
		val:    val,
		handle: handle,
	}
	f.flags = append(f.flags, def)
	f.byName[name] = def
}

// Bool registers a boolean flag and returns the storage location for its value.
// A boolean flag consumes no value argument; naming it sets it to true.
func (f *FlagSet) Bool(name string, def bool, desc string) *bool {
	p := new(bool)
	f.BoolVar(p, name, def, desc)
	return p
}

// BoolVar is [FlagSet.Bool] with caller-owned storage.
// The default is written to p immediately.
func (f *FlagSet) BoolVar(p *bool, name string, def bool, desc string) {
	*p = def
	f.register(KindBool, name, desc, &boolValue{p: p, def: def}, p)
}

// Uint64 registers an unsigned integer flag and returns the storage location for its value.
func (f *FlagSet) Uint64(name string, def uint64, desc string) *uint64 {
	p := new(uint64)
	f.Uint64Var(p, name, def, desc)
	return p
}

// Uint64Var is [FlagSet.Uint64] with caller-owned storage.
func (f *FlagSet) Uint64Var(p *uint64, name string, def uint64, desc string) {
	*p = def
	f.register(KindUint64, name, desc, &uint64Value{p: p, def: def}, p)
}

// Size registers a byte-count flag and returns the storage location for its value.
// Values accept the suffixes understood by [sizes.Parse], like "64K" or "2MB".
func (f *FlagSet) Size(name string, def uint64, desc string) *uint64 {
	p := new(uint64)
	f.SizeVar(p, name, def, desc)
	return p
}

// SizeVar is [FlagSet.Size] with caller-owned storage.
func (f *FlagSet) SizeVar(p *uint64, name string, def uint64, desc string) {
	*p = def
	f.register(KindSize, name, desc, &uint64Value{p: p, def: def, size: true}, p)
}

// Float32 registers a single-precision float flag and returns the storage location for its value.
func (f *FlagSet) Float32(name string, def float32, desc string) *float32 {
	p := new(float32)
	f.Float32Var(p, name, def, desc)
	return p
}

// Float32Var is [FlagSet.Float32] with caller-owned storage.
func (f *FlagSet) Float32Var(p *float32, name string, def float32, desc string) {
	*p = def
	f.register(KindFloat32, name, desc, &float32Value{p: p, def: def}, p)
}

// Float64 registers a double-precision float flag and returns the storage location for its value.
func (f *FlagSet) Float64(name string, def float64, desc string) *float64 {
	p := new(float64)
	f.Float64Var(p, name, def, desc)
	return p
}

// Float64Var is [FlagSet.Float64] with caller-owned storage.
func (f *FlagSet) Float64Var(p *float64, name string, def float64, desc string) {
	*p = def
	f.register(KindFloat64, name, desc, &float64Value{p: p, def: def}, p)
}

// String registers a string flag and returns the storage location for its value.
func (f *FlagSet) String(name, def, desc string) *string {
	p := new(string)
	f.StringVar(p, name, def, desc)
	return p
}

// StringVar is [FlagSet.String] with caller-owned storage.
func (f *FlagSet) StringVar(p *string, name, def, desc string) {
	*p = def
	f.register(KindString, name, desc, &stringValue{p: p, def: def}, p)
}

// List registers a repeatable flag that accumulates every occurrence's value in order.
// Appended values reference the argument vector passed to [FlagSet.Parse], so they share its lifetime.
func (f *FlagSet) List(name, desc string) *[]string {
	p := new([]string)
	f.ListVar(p, name, desc)
	return p
}

// ListVar is [FlagSet.List] with caller-owned storage.
func (f *FlagSet) ListVar(p *[]string, name, desc string) {
	f.register(KindList, name, desc, &listValue{p: p}, p)
}

// OwnedList registers a repeatable flag like [FlagSet.List], but appended values are copied.
// The resulting slice is independent of the argument vector, so it can outlive it or be fed to a nested [FlagSet.Parse] call.
func (f *FlagSet) OwnedList(name, desc string) *[]string {
	p := new([]string)
	f.OwnedListVar(p, name, desc)
	return p
}

// OwnedListVar is [FlagSet.OwnedList] with caller-owned storage.
func (f *FlagSet) OwnedListVar(p *[]string, name, desc string) {
	f.register(KindOwnedList, name, desc, &listValue{p: p, owned: true}, p)
}

// lookupHandle finds the flag owning the given storage location.
// External bindings rule out recovering the flag from the pointer itself, so this is a scan over every registered handle.
func (f *FlagSet) lookupHandle(handle any) *flagDef {
	for _, def := range f.flags {
		if def.handle == handle {
			return def
		}
	}
	return nil
}

// NameOf resolves a handle returned by a registration method (or the storage passed to a ...Var method) back to its flag name.
// Returns false if the handle was never registered with this FlagSet.
func (f *FlagSet) NameOf(handle any) (string, bool) {
	def := f.lookupHandle(handle)
	if def == nil {
		return "", false
	}
	return def.name, true
}

// Required marks a flag as mandatory.
// [FlagSet.Parse] fails with [ErrRequiredFlag] if the whole vector is consumed without the flag appearing.
// Panics if the handle isn't registered with this FlagSet.
func (f *FlagSet) Required(handle any) {
	def := f.lookupHandle(handle)
	assert.True("handle is registered", def != nil)
	def.required = true
}

// Range attaches an inclusive [lo, hi] bound to an integer flag, checked at parse time after numeric conversion.
// Values outside the bound fail with [ErrOutOfRange].
// Panics if the handle isn't registered, isn't an integer kind, or if lo > hi.
func (f *FlagSet) Range(handle any, lo, hi uint64) {
	def := f.lookupHandle(handle)
	assert.True("handle is registered", def != nil)
	assert.True("range bounds are ordered", lo <= hi)
	val, ok := def.val.(*uint64Value)
	if !ok {
		panic(fmt.Sprintf("flag %q is a %s flag, not an integer", def.name, def.kind))
	}
	val.lo, val.hi = lo, hi
	val.bounded = true
}

// SetProgramName sets the program name explicitly.
// When set, [FlagSet.Parse] does not consume its first argument as the program name.
func (f *FlagSet) SetProgramName(name string) {
	f.progName = name
	f.progNameSet = true
}

// ProgramName returns the program name, either set explicitly or consumed from the parsed vector.
func (f *FlagSet) ProgramName() string {
	return f.progName
}

// Rest returns the unconsumed tail of the argument vector after a parse: everything from the first non-flag token on.
// The returned slice aliases the vector passed to [FlagSet.Parse]; it is never a copy.
func (f *FlagSet) Rest() []string {
	return f.rest
}

// Parsed reports whether [FlagSet.Parse] has run.
func (f *FlagSet) Parsed() bool {
	return f.parsed
}

// Provided reports whether the named flag was explicitly given on the parsed vector.
// Ignored occurrences ("-/name") don't count as provided, and neither does a value that happens to equal the default.
func (f *FlagSet) Provided(name string) bool {
	return f.provided.Has(name)
}

// KeepTerminator controls whether a "--" terminator token is retained as the first element of [FlagSet.Rest].
// By default the terminator is dropped.
func (f *FlagSet) KeepTerminator(keep bool) {
	f.keepTerm = keep
}
