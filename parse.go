package flagx

import (
	"strings"
)

// terminator ends flag scanning explicitly.
// Whether it lands in the rest arguments is controlled by [FlagSet.KeepTerminator].
const terminator = "--"

// Parse consumes an argument vector against the registered flags in a single left-to-right pass.
//
// The first argument is consumed as the program name unless one was set with [FlagSet.SetProgramName].
// Scanning stops at the first token without a leading dash, or at a "--" terminator; everything from there on
// is available from [FlagSet.Rest] in original order, aliasing a suffix of args.
//
// Matched flags update their storage immediately, so a failed parse leaves flags matched before the failure
// already updated. Any failure means the caller should not proceed, not inspect partial state.
//
// An occurrence written as "-/name" is parsed and validated like "-name", but its value is discarded and the
// flag doesn't count as provided.
//
// Every failure is returned as a [*ParseError]; Parse never prints and never terminates the process.
func (f *FlagSet) Parse(args []string) error {
	f.parsed = true
	if !f.progNameSet && len(args) > 0 {
		f.progName = args[0]
		f.progNameSet = true
		args = args[1:]
	}
	for len(args) > 0 {
		token := args[0]
		if !strings.HasPrefix(token, "-") {
			// Not a flag. The token stays in rest along with everything after it.
			f.rest = args
			return f.checkRequired()
		}
		if token == terminator {
			if f.keepTerm {
				f.rest = args
			} else {
				f.rest = args[1:]
			}
			return f.checkRequired()
		}
		args = args[1:]

		name := token[1:]
		ignored := false
		if strings.HasPrefix(name, "/") {
			ignored = true
			name = name[1:]
		}
		name, inline, hasInline := strings.Cut(name, "=")

		def, ok := f.byName[name]
		if !ok {
			return parseErr(name, token, ErrUnknownFlag)
		}

		if !def.kind.takesValue() {
			// Booleans consume nothing; an inline value is discarded along with the rest of the token.
			if !ignored {
				_ = def.val.set("")
				f.provided.Add(def.name)
			}
			continue
		}

		var raw string
		switch {
		case hasInline:
			raw = inline
		case len(args) > 0:
			raw = args[0]
			args = args[1:]
		default:
			return parseErr(name, token, ErrNoValue)
		}

		if ignored {
			if err := def.val.check(raw); err != nil {
				return parseErr(name, raw, err)
			}
			continue
		}
		if err := def.val.set(raw); err != nil {
			return parseErr(name, raw, err)
		}
		f.provided.Add(def.name)
	}
	f.rest = args
	return f.checkRequired()
}

// checkRequired runs only after the scan itself succeeded.
// Flags are checked in registration order, so the first registered missing flag is the one reported.
func (f *FlagSet) checkRequired() error {
	for _, def := range f.flags {
		if def.required && !f.provided.Has(def.name) {
			return parseErr(def.name, "", ErrRequiredFlag)
		}
	}
	return nil
}
