package psfmt

// specEntry is one discovered specifier. position/encodedSize exactly bound
// the literal bytes the specifier occupies, so the render loop can copy
// literal spans verbatim and skip the specifier syntax without rescanning.
type specEntry struct {
	kind        Kind
	width       int // nonzero only for the decimal kinds
	position    int // byte offset of the %
	encodedSize int // bytes from % through the kind character, inclusive
}

// maxWidth bounds the zero-padding a decimal specifier may request. The
// planner reserves width bytes up front, so an unbounded width would let a
// single specifier demand an arbitrarily large buffer.
const maxWidth = 4096

// scan walks lit once, left to right, and returns its specifier table in
// ascending position order. It rejects unknown specifier characters,
// truncated specifiers and width on non-decimal kinds; literals that pass
// never fail parsing again.
func scan(lit Lit) ([]specEntry, error) {
	n := 0
	for i := 0; i < len(lit); i++ {
		if lit[i] == '%' {
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}

	specs := make([]specEntry, 0, n)
	for i := 0; i < len(lit); i++ {
		if lit[i] != '%' {
			continue
		}
		start := i
		width := 0
		i++
		for i < len(lit) && lit[i] >= '0' && lit[i] <= '9' {
			// A leading zero marks "has width" without contributing
			// magnitude: %04u parses as width 4.
			width = 10*width + int(lit[i]-'0')
			if width > maxWidth {
				return nil, &ParseError{Lit: lit, Pos: start, Reason: "width exceeds the supported maximum"}
			}
			i++
		}
		if i >= len(lit) {
			return nil, &ParseError{Lit: lit, Pos: start, Reason: "literal ends inside specifier"}
		}
		kind := kindForChar(lit[i])
		if kind == KindUnknown {
			return nil, &ParseError{Lit: lit, Pos: start, Char: lit[i], Reason: "unknown specifier character"}
		}
		if width != 0 && !kind.widthAllowed() {
			return nil, &ParseError{Lit: lit, Pos: start, Char: lit[i], Reason: "width is only legal on decimal specifiers"}
		}
		specs = append(specs, specEntry{
			kind:        kind,
			width:       width,
			position:    start,
			encodedSize: i - start + 1,
		})
	}
	return specs, nil
}
