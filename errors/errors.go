// Package zerr provides a mechanism to create or wrap errors with a Kind
// so that callers of the enum engine can tell malformed definitions apart
// from lookups of constants that do not exist.
package zerr

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
)

// A Kind represents a class of error.
type Kind int

const (
	Other Kind = iota
	// Invalid is returned for a malformed or missing type name or definition.
	Invalid
	// IllegalInstantiation is returned when something other than the
	// defining call tries to create a constant of an enum type.
	IllegalInstantiation
	// UnknownConstant is returned by name lookups that miss.
	UnknownConstant
	// UnknownMethod is returned when a constant is asked to invoke a
	// method neither it nor its type carries.
	UnknownMethod
	Exists
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "other error"
	case Invalid:
		return "invalid argument"
	case IllegalInstantiation:
		return "illegal instantiation"
	case UnknownConstant:
		return "unknown constant"
	case UnknownMethod:
		return "unknown method"
	case Exists:
		return "item already exists"
	case NotFound:
		return "item does not exist"
	}
	return "unknown error kind"
}

// IsTypeError reports whether errors of this kind describe misuse of a
// defined type rather than a bad definition.
func (k Kind) IsTypeError() bool {
	switch k {
	case IllegalInstantiation, UnknownConstant, UnknownMethod:
		return true
	}
	return false
}

type Error struct {
	Kind Kind
	Err  error
}

func pad(b *bytes.Buffer, s string) {
	if b.Len() == 0 {
		return
	}
	b.WriteString(s)
}

func (e *Error) Error() string {
	b := &bytes.Buffer{}
	if e.Kind != Other {
		pad(b, ": ")
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		pad(b, ": ")
		b.WriteString(e.Err.Error())
	}
	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns just the Err.Error() string, if present, or the Kind
// string description.
func (e *Error) Message() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != Other {
		return e.Kind.String()
	}
	return "no error"
}

// Function E generates an error from any mix of:
// - a Kind
// - an existing error
// - a string and optional formatting verbs, like fmt.Errorf (including support
//	for the `%w` verb).
//
// The string & format verbs must be last in the arguments, if present.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("no args to errors.E")
	}
	e := &Error{}
	for i, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case error:
			e.Err = arg
		case string:
			e.Err = fmt.Errorf(arg, args[i+1:]...)
			return e
		default:
			_, file, line, _ := runtime.Caller(1)
			return fmt.Errorf("unknown type %T value %v in errors.E call at %v:%v", arg, arg, file, line)
		}
	}
	return e
}

// KindOf returns the Kind of the first *Error in err's chain, or Other.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsTypeError reports whether err is an IllegalInstantiation,
// UnknownConstant or UnknownMethod error.
func IsTypeError(err error) bool {
	return err != nil && KindOf(err).IsTypeError()
}
