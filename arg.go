package psfmt

import (
	"math/bits"
	"time"
	"unsafe"
)

// argClass partitions the closed set of renderable value shapes. The
// validator matches classes against specifier kinds; the renderer never
// inspects anything else, so an Arg is a plain value with no indirection.
type argClass uint8

const (
	classInvalid argClass = iota
	classSigned
	classUnsigned
	classChar
	classString
	classPointer
	classBool
)

func (c argClass) String() string {
	switch c {
	case classSigned:
		return "signed integer"
	case classUnsigned:
		return "unsigned integer"
	case classChar:
		return "character"
	case classString:
		return "literal string"
	case classPointer:
		return "pointer"
	case classBool:
		return "boolean"
	default:
		return "invalid argument"
	}
}

const wordBytes = bits.UintSize / 8

// Arg is one strongly typed render argument. Construct Args only through
// the package constructors; the zero Arg fails validation against every
// specifier. The struct is a small value type so argument lists live
// entirely on the caller's stack.
type Arg struct {
	class argClass
	size  uint8 // byte size of the source type, drives the length bounds
	neg   bool
	num   uint64 // magnitude for numerics, code point for chars, 0/1 for bools
	lit   Lit    // payload for classString
}

func signedArg(v int64, size uint8) Arg {
	u := uint64(v)
	neg := v < 0
	if neg {
		u = -u
	}
	return Arg{class: classSigned, size: size, neg: neg, num: u}
}

// Int binds a signed decimal argument for %d.
func Int(v int) Arg { return signedArg(int64(v), wordBytes) }

// Int8 binds an 8-bit signed decimal argument for %d.
func Int8(v int8) Arg { return signedArg(int64(v), 1) }

// Int16 binds a 16-bit signed decimal argument for %d.
func Int16(v int16) Arg { return signedArg(int64(v), 2) }

// Int32 binds a 32-bit signed decimal argument for %d.
func Int32(v int32) Arg { return signedArg(int64(v), 4) }

// Int64 binds a 64-bit signed decimal argument for %d.
func Int64(v int64) Arg { return signedArg(v, 8) }

// Uint binds an unsigned argument for %u, %X or %t.
func Uint(v uint) Arg { return Arg{class: classUnsigned, size: wordBytes, num: uint64(v)} }

// Uint8 binds an 8-bit unsigned argument for %u or %X.
func Uint8(v uint8) Arg { return Arg{class: classUnsigned, size: 1, num: uint64(v)} }

// Uint16 binds a 16-bit unsigned argument for %u or %X.
func Uint16(v uint16) Arg { return Arg{class: classUnsigned, size: 2, num: uint64(v)} }

// Uint32 binds a 32-bit unsigned argument for %u or %X.
func Uint32(v uint32) Arg { return Arg{class: classUnsigned, size: 4, num: uint64(v)} }

// Uint64 binds a 64-bit unsigned argument for %u, %X or %t.
func Uint64(v uint64) Arg { return Arg{class: classUnsigned, size: 8, num: v} }

// Millis binds a duration, truncated to milliseconds, for the %t specifier.
// Negative durations clamp to zero; tick sources are monotonic.
func Millis(d time.Duration) Arg {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return Arg{class: classUnsigned, size: 8, num: uint64(ms)}
}

// Char binds a single byte for %c.
func Char(c byte) Arg { return Arg{class: classChar, size: 1, num: uint64(c)} }

// Str binds a format literal for %s. Only Lit values qualify: the length of
// the rendered output must be known when the buffer is planned, and a
// runtime string carries no such bound.
func Str(lit Lit) Arg { return Arg{class: classString, size: 0, lit: lit} }

// Ptr binds the address of p for %p.
func Ptr[T any](p *T) Arg {
	return Arg{class: classPointer, size: wordBytes, num: uint64(uintptr(unsafe.Pointer(p)))}
}

// Uintptr binds an already-converted address for %p.
func Uintptr(p uintptr) Arg {
	return Arg{class: classPointer, size: wordBytes, num: uint64(p)}
}

// Bool binds a truth value for %b.
func Bool(v bool) Arg {
	a := Arg{class: classBool, size: 1}
	if v {
		a.num = 1
	}
	return a
}

// truthy reports the argument's truth value for %b rendering. Numeric and
// pointer arguments are truthy when nonzero, matching conversion-to-bool
// semantics.
func (a Arg) truthy() bool { return a.num != 0 }
