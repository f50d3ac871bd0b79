package psfmt

import (
	"errors"
	"strconv"
)

// ErrArity is wrapped by the error returned when the number of arguments
// supplied to a render call does not match the literal's specifier count.
var ErrArity = errors.New("argument count does not match specifier count")

// ParseError describes a literal rejected by the scanner. The whole
// validation surface is front-loaded: a literal that parses and type-checks
// once can never fail at render time.
type ParseError struct {
	Lit    Lit    // the offending literal
	Pos    int    // byte offset of the % that triggered the error
	Char   byte   // the specifier character found, 0 if the literal ended
	Reason string // human-readable cause
}

func (e *ParseError) Error() string {
	msg := "psfmt: " + e.Reason + " at offset " + strconv.Itoa(e.Pos)
	if e.Char != 0 {
		msg += " (" + strconv.Quote(string(e.Char)) + ")"
	}
	return msg + " in " + strconv.Quote(string(e.Lit))
}

// ArityError reports a specifier/argument count mismatch. It wraps ErrArity.
type ArityError struct {
	Specifiers int
	Args       int
}

func (e *ArityError) Error() string {
	return "psfmt: literal has " + strconv.Itoa(e.Specifiers) +
		" specifiers but " + strconv.Itoa(e.Args) + " arguments were supplied"
}

func (e *ArityError) Unwrap() error { return ErrArity }

// ArgError reports an argument whose type is illegal for its specifier.
// The message names the specifier, mirroring the per-kind diagnostics the
// validator produces for each rejection.
type ArgError struct {
	Index int  // zero-based argument position
	Kind  Kind // the specifier the argument was bound to
	Got   string
}

func (e *ArgError) Error() string {
	return "psfmt: the " + e.Kind.String() + " specifier (argument " +
		strconv.Itoa(e.Index) + ") " + kindRequirement(e.Kind) + ", got " + e.Got
}

func kindRequirement(k Kind) string {
	switch k {
	case KindSignedDec:
		return "accepts only signed integer arguments"
	case KindUnsignedDec:
		return "accepts only unsigned integer arguments"
	case KindHex:
		return "accepts only unsigned integer arguments"
	case KindChar:
		return "accepts only single character arguments"
	case KindString:
		return "accepts only literal string arguments"
	case KindPointer:
		return "accepts only pointer arguments"
	case KindTime:
		return "accepts only unsigned integers at least one machine word wide"
	case KindBool:
		return "accepts only arguments convertible to a truth value"
	default:
		return "matches no argument type"
	}
}
