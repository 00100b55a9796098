package flagx

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFlag indicates that an argument named a flag that was never registered.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrNoValue indicates that a value-bearing flag was the last argument in the vector.
	ErrNoValue = errors.New("no value provided")
	// ErrInvalidNumber indicates that a numeric flag's value wasn't a well-formed number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrIntOverflow indicates that an integer value doesn't fit in a uint64.
	ErrIntOverflow = errors.New("integer overflow")
	// ErrFloat32Overflow indicates that a float value is out of float32 range.
	ErrFloat32Overflow = errors.New("float32 overflow")
	// ErrFloat64Overflow indicates that a float value is out of float64 range.
	ErrFloat64Overflow = errors.New("float64 overflow")
	// ErrBadSizeSuffix indicates that a size value carried an unrecognized suffix.
	ErrBadSizeSuffix = errors.New("invalid size suffix")
	// ErrOutOfRange indicates that an integer value violated a registered [FlagSet.Range] constraint.
	ErrOutOfRange = errors.New("value out of range")
	// ErrRequiredFlag indicates that a [FlagSet.Required] flag was never provided.
	ErrRequiredFlag = errors.New("required flag not provided")
)

// ParseError is returned from [FlagSet.Parse] for every recoverable failure.
// It carries the offending flag name (without its leading dash) and, where one exists, the raw value token that triggered the failure.
//
// Use [errors.Is] with one of the package sentinel errors to match the failure kind.
type ParseError struct {
	// Flag is the name of the flag the failure relates to, without a leading dash.
	Flag string
	// Token is the raw offending token, if the failure relates to one.
	// It references the original argument vector, so it's only valid as long as that is.
	Token string

	err error
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.err, ErrUnknownFlag):
		return fmt.Sprintf("-%s: unknown flag", e.Flag)
	case errors.Is(e.err, ErrBadSizeSuffix):
		return fmt.Sprintf("-%s: invalid size suffix %q", e.Flag, e.Token)
	default:
		return fmt.Sprintf("-%s: %s", e.Flag, e.err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.err
}

func parseErr(flag, token string, err error) *ParseError {
	return &ParseError{Flag: flag, Token: token, err: err}
}
