package psfmt

// Kind identifies one conversion specifier. The set is closed: a % followed
// by any character outside the table below is a parse error, never a
// pass-through, because an unrecognised suffix would corrupt the
// position/size bookkeeping of every later specifier.
type Kind uint8

const (
	KindUnknown Kind = iota

	KindSignedDec   // %d
	KindUnsignedDec // %u
	KindHex         // %X
	KindChar        // %c
	KindString      // %s
	KindPointer     // %p
	KindTime        // %t
	KindBool        // %b
)

func kindForChar(c byte) Kind {
	switch c {
	case 'd':
		return KindSignedDec
	case 'u':
		return KindUnsignedDec
	case 'X':
		return KindHex
	case 'c':
		return KindChar
	case 's':
		return KindString
	case 'p':
		return KindPointer
	case 't':
		return KindTime
	case 'b':
		return KindBool
	default:
		return KindUnknown
	}
}

// Char returns the specifier character for k, or 0 for KindUnknown.
func (k Kind) Char() byte {
	switch k {
	case KindSignedDec:
		return 'd'
	case KindUnsignedDec:
		return 'u'
	case KindHex:
		return 'X'
	case KindChar:
		return 'c'
	case KindString:
		return 's'
	case KindPointer:
		return 'p'
	case KindTime:
		return 't'
	case KindBool:
		return 'b'
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindSignedDec:
		return "%d"
	case KindUnsignedDec:
		return "%u"
	case KindHex:
		return "%X"
	case KindChar:
		return "%c"
	case KindString:
		return "%s"
	case KindPointer:
		return "%p"
	case KindTime:
		return "%t"
	case KindBool:
		return "%b"
	default:
		return "%?"
	}
}

// widthAllowed reports whether a nonzero field width is legal for k. Only
// the decimal kinds pad; every other kind renders at a fixed or
// content-determined length.
func (k Kind) widthAllowed() bool {
	return k == KindSignedDec || k == KindUnsignedDec
}
