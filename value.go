package flagx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/saylorsolutions/flagx/sizes"
)

// Kind identifies the value type of a registered flag.
// A flag's storage always holds the type its [Kind] declares, and no conversion across kinds is ever performed.
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindUint64
	KindSize
	KindFloat32
	KindFloat64
	KindString
	KindList
	KindOwnedList
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint64:
		return "uint"
	case KindSize:
		return "size"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindList, KindOwnedList:
		return "list"
	default:
		return "unknown"
	}
}

// argHint is the value placeholder shown in usage output.
// Booleans take no value, so they have no hint.
func (k Kind) argHint() string {
	switch k {
	case KindBool:
		return ""
	case KindUint64:
		return "<uint>"
	case KindSize:
		return "<size>"
	case KindFloat32, KindFloat64:
		return "<float>"
	case KindString:
		return "<string>"
	case KindList, KindOwnedList:
		return "<string>..."
	default:
		return ""
	}
}

// takesValue reports whether a flag of this kind consumes a value argument.
func (k Kind) takesValue() bool {
	return k != KindBool
}

// value is the typed storage slot behind a flag.
// set parses and stores, check parses and discards, so ignored occurrences can still be validated.
type value interface {
	set(arg string) error
	check(arg string) error
	defString() (string, bool)
}

type boolValue struct {
	p   *bool
	def bool
}

func (v *boolValue) set(string) error { *v.p = true; return nil }

func (v *boolValue) check(string) error { return nil }
func (v *boolValue) defString() (string, bool) {
	return strconv.FormatBool(v.def), true
}

type uint64Value struct {
	p       *uint64
	def     uint64
	size    bool
	lo, hi  uint64
	bounded bool
}

func (v *uint64Value) parse(arg string) (uint64, error) {
	var (
		val uint64
		err error
	)
	if v.size {
		val, err = sizes.Parse(arg)
		switch {
		case errors.Is(err, sizes.ErrSuffix):
			return 0, ErrBadSizeSuffix
		case errors.Is(err, sizes.ErrOverflow):
			return 0, ErrIntOverflow
		case err != nil:
			return 0, ErrInvalidNumber
		}
	} else {
		val, err = strconv.ParseUint(arg, 10, 64)
		switch {
		case errors.Is(err, strconv.ErrRange):
			return 0, ErrIntOverflow
		case err != nil:
			return 0, ErrInvalidNumber
		}
	}
	if v.bounded && (val < v.lo || val > v.hi) {
		return 0, fmt.Errorf("%w [%d, %d]", ErrOutOfRange, v.lo, v.hi)
	}
	return val, nil
}

func (v *uint64Value) set(arg string) error {
	val, err := v.parse(arg)
	if err != nil {
		return err
	}
	*v.p = val
	return nil
}

func (v *uint64Value) check(arg string) error {
	_, err := v.parse(arg)
	return err
}

func (v *uint64Value) defString() (string, bool) {
	return strconv.FormatUint(v.def, 10), true
}

type float32Value struct {
	p   *float32
	def float32
}

func (v *float32Value) parse(arg string) (float32, error) {
	val, err := strconv.ParseFloat(arg, 32)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, ErrFloat32Overflow
	case err != nil:
		return 0, ErrInvalidNumber
	}
	return float32(val), nil
}

func (v *float32Value) set(arg string) error {
	val, err := v.parse(arg)
	if err != nil {
		return err
	}
	*v.p = val
	return nil
}

func (v *float32Value) check(arg string) error {
	_, err := v.parse(arg)
	return err
}

func (v *float32Value) defString() (string, bool) {
	return strconv.FormatFloat(float64(v.def), 'g', -1, 32), true
}

type float64Value struct {
	p   *float64
	def float64
}

func (v *float64Value) parse(arg string) (float64, error) {
	val, err := strconv.ParseFloat(arg, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, ErrFloat64Overflow
	case err != nil:
		return 0, ErrInvalidNumber
	}
	return val, nil
}

func (v *float64Value) set(arg string) error {
	val, err := v.parse(arg)
	if err != nil {
		return err
	}
	*v.p = val
	return nil
}

func (v *float64Value) check(arg string) error {
	_, err := v.parse(arg)
	return err
}

func (v *float64Value) defString() (string, bool) {
	return strconv.FormatFloat(v.def, 'g', -1, 64), true
}

type stringValue struct {
	p   *string
	def string
}

func (v *stringValue) set(arg string) error { *v.p = arg; return nil }
func (v *stringValue) check(string) error   { return nil }
func (v *stringValue) defString() (string, bool) {
	return v.def, len(v.def) > 0
}

type listValue struct {
	p *[]string
	// owned lists clone appended values so they don't reference the argument vector.
	owned bool
}

func (v *listValue) set(arg string) error {
	if v.owned {
		arg = strings.Clone(arg)
	}
	*v.p = append(*v.p, arg)
	return nil
}

func (v *listValue) check(string) error { return nil }
func (v *listValue) defString() (string, bool) {
	return "", false
}
