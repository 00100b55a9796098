package flagx

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	minWidth     = 40
	usageIndent  = "    "
	descIndent   = "        "
)

var flagName = color.New(color.Bold)

// fdWriter is satisfied by [os.File] and anything else carrying a real file descriptor.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// outputWidth probes the writer for a terminal width to wrap descriptions against.
// Non-terminal writers get a fixed width so output is stable under redirection and in tests.
func outputWidth(w io.Writer) (width int, isTerm bool) {
	f, ok := w.(fdWriter)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < minWidth {
		return defaultWidth, true
	}
	return width, true
}

// WriteUsage renders one usage entry per registered flag in registration order.
//
// Each entry shows the flag name, a value placeholder for value-bearing flags, the wrapped description,
// any range constraint, and the default (strings only when non-empty, lists never).
// Rendering only reads the FlagSet, so repeated calls yield identical output.
func (f *FlagSet) WriteUsage(w io.Writer) {
	width, isTerm := outputWidth(w)
	for _, def := range f.flags {
		header := "-" + def.name
		if isTerm {
			header = flagName.Sprint(header)
		}
		if hint := def.kind.argHint(); len(hint) > 0 {
			header += " " + hint
		}
		if val, ok := def.val.(*uint64Value); ok && val.bounded {
			header += fmt.Sprintf(" [%d, %d]", val.lo, val.hi)
		}
		if def.required {
			header += " (required)"
		}
		_, _ = fmt.Fprintf(w, "%s%s\n", usageIndent, header)
		for _, line := range wrap(def.desc, width-len(descIndent)) {
			_, _ = fmt.Fprintf(w, "%s%s\n", descIndent, line)
		}
		if val, show := def.val.defString(); show {
			_, _ = fmt.Fprintf(w, "%sDefault: %s\n", descIndent, val)
		}
	}
}

// wrap splits text into lines of at most width characters, breaking on spaces.
// A single word longer than width gets its own line rather than being split.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range words {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
