package psfmt

// Per-kind legality predicates, maximum-length bounds and render routines,
// kept side by side so the three never drift apart. Bounds are a function
// of the argument's source type size, never of its value: decimal digits of
// an N-byte integer never exceed 3N - N/2, hex output is exactly two
// nibbles per byte plus the 0x prefix.

const falseLen = len("FALSE")

// decBound is the maximum digit count of an unsigned integer of the given
// byte size.
func decBound(size int) int { return 3*size - size/2 }

// checkArg validates one (specifier, argument) pair and returns the
// argument's maximum rendered length.
func checkArg(s specEntry, index int, a Arg) (int, error) {
	switch s.kind {
	case KindSignedDec:
		if a.class != classSigned {
			return 0, &ArgError{Index: index, Kind: s.kind, Got: a.class.String()}
		}
		n := decBound(int(a.size)) + 1
		if s.width > n {
			n = s.width + 1
		}
		return n, nil
	case KindUnsignedDec:
		if a.class != classUnsigned {
			return 0, &ArgError{Index: index, Kind: s.kind, Got: a.class.String()}
		}
		n := decBound(int(a.size))
		if s.width > n {
			n = s.width
		}
		return n, nil
	case KindHex:
		if a.class != classUnsigned {
			return 0, &ArgError{Index: index, Kind: s.kind, Got: a.class.String()}
		}
		return 2*int(a.size) + 2, nil
	case KindChar:
		if a.class != classChar {
			return 0, &ArgError{Index: index, Kind: s.kind, Got: a.class.String()}
		}
		return 1, nil
	case KindString:
		if a.class != classString {
			return 0, &ArgError{Index: index, Kind: s.kind, Got: a.class.String()}
		}
		return len(a.lit), nil
	case KindPointer:
		if a.class != classPointer {
			return 0, &ArgError{Index: index, Kind: s.kind, Got: a.class.String()}
		}
		return 2*int(a.size) + 2, nil
	case KindTime:
		if a.class != classUnsigned || int(a.size) < wordBytes {
			return 0, &ArgError{Index: index, Kind: s.kind, Got: a.class.String()}
		}
		return decBound(int(a.size)) + 4, nil
	case KindBool:
		switch a.class {
		case classBool, classSigned, classUnsigned, classChar, classPointer:
			return falseLen, nil
		}
		return 0, &ArgError{Index: index, Kind: s.kind, Got: a.class.String()}
	default:
		return 0, &ArgError{Index: index, Kind: s.kind, Got: a.class.String()}
	}
}

// appendArg renders one validated argument. Callers guarantee checkArg
// passed; the routines here never fail and never exceed the bound checkArg
// reported.
func appendArg(dst []byte, s specEntry, a Arg) []byte {
	switch s.kind {
	case KindSignedDec:
		return appendSignedDec(dst, a.neg, a.num, s.width)
	case KindUnsignedDec:
		return appendUnsignedDec(dst, a.num, s.width)
	case KindHex:
		return appendHexFixed(dst, a.num, int(a.size))
	case KindChar:
		return append(dst, byte(a.num))
	case KindString:
		return append(dst, a.lit...)
	case KindPointer:
		return appendHexFixed(dst, a.num, int(a.size))
	case KindTime:
		return appendTime(dst, a.num)
	case KindBool:
		if a.truthy() {
			return append(dst, "TRUE"...)
		}
		return append(dst, "FALSE"...)
	default:
		return dst
	}
}

// appendUnsignedDec emits v in decimal, least significant digit first, then
// reverses the written span in place. Zero padding up to width happens
// before the reversal so the pad lands on the left.
func appendUnsignedDec(dst []byte, v uint64, width int) []byte {
	start := len(dst)
	for {
		dst = append(dst, byte('0'+v%10))
		v /= 10
		if v == 0 {
			break
		}
	}
	for len(dst)-start < width {
		dst = append(dst, '0')
	}
	reverseSpan(dst, start)
	return dst
}

// appendSignedDec is the signed variant: magnitude digits, zero padding,
// then the sign, all written backwards and reversed at once so the minus
// ends up leftmost.
func appendSignedDec(dst []byte, neg bool, mag uint64, width int) []byte {
	start := len(dst)
	for {
		dst = append(dst, byte('0'+mag%10))
		mag /= 10
		if mag == 0 {
			break
		}
	}
	for len(dst)-start < width {
		dst = append(dst, '0')
	}
	if neg {
		dst = append(dst, '-')
	}
	reverseSpan(dst, start)
	return dst
}

func reverseSpan(b []byte, start int) {
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// appendHexFixed emits the 0x prefix followed by exactly two uppercase
// nibbles per byte of the source type, most significant first. Leading zero
// nibbles are kept: hex output is fixed width, unlike decimal.
func appendHexFixed(dst []byte, v uint64, size int) []byte {
	dst = append(dst, '0', 'x')
	for shift := 8*size - 4; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigit(byte(v>>uint(shift))&0xF))
	}
	return dst
}

func hexDigit(v byte) byte {
	if v < 0xA {
		return v + '0'
	}
	return v + 'A' - 0xA
}

// appendTime renders a millisecond count as seconds.milliseconds with
// exactly three fractional digits: 1500 -> "1.500", 59 -> "0.059".
func appendTime(dst []byte, ms uint64) []byte {
	dst = appendUnsignedDec(dst, ms/1000, 0)
	dst = append(dst, '.')
	return appendUnsignedDec(dst, ms%1000, 3)
}
