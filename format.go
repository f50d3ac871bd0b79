package psfmt

import (
	"io"
	"sync"
)

// Format is a parsed literal: the specifier table plus the literal itself.
// Parsing happens once; every later render walks previously-discovered
// positions without rescanning the literal. A Format is immutable and safe
// for concurrent use as long as the sinks it renders to are.
type Format struct {
	lit   Lit
	specs []specEntry
}

// Parse scans lit and returns its Format. It fails on unknown specifier
// characters, truncated specifiers and width on non-decimal kinds; a
// literal that parses cleanly can only be rejected later for
// arity or argument-type mismatches.
func Parse(lit Lit) (*Format, error) {
	specs, err := scan(lit)
	if err != nil {
		return nil, err
	}
	return &Format{lit: lit, specs: specs}, nil
}

// MustParse is Parse for package-level initialization: declaring formats in
// var blocks moves literal validation to program start, the closest Go
// equivalent of a compile-time rejection.
//
//	var readyFmt = psfmt.MustParse("ready after %t, attempt %u")
func MustParse(lit Lit) *Format {
	f, err := Parse(lit)
	if err != nil {
		panic(err)
	}
	return f
}

var formatCache sync.Map // Lit -> cachedFormat

type cachedFormat struct {
	f   *Format
	err error
}

// Cached returns the memoized Format for lit, parsing it on first use.
// Callers that format the same literal repeatedly through a string-keyed
// path (the log wrapper, for one) go through here so each literal is
// scanned exactly once for the process lifetime.
func Cached(lit Lit) (*Format, error) {
	if entry, ok := formatCache.Load(lit); ok {
		c := entry.(cachedFormat)
		return c.f, c.err
	}
	f, err := Parse(lit)
	entry, _ := formatCache.LoadOrStore(lit, cachedFormat{f: f, err: err})
	c := entry.(cachedFormat)
	return c.f, c.err
}

// Lit returns the literal the Format was parsed from.
func (f *Format) Lit() Lit { return f.lit }

// Arity returns the number of arguments the literal requires.
func (f *Format) Arity() int { return len(f.specs) }

// Check validates args against the specifier table without rendering:
// argument count must equal the specifier count and every argument's type
// must satisfy its specifier's predicate. Call it from init paths to verify
// call sites up front; Append and the Render variants run the same checks
// before touching the buffer.
func (f *Format) Check(args ...Arg) error {
	_, err := f.plan(args)
	return err
}

// MaxSize returns the exact buffer capacity one render of args needs: the
// sum of the per-specifier maximum lengths plus the literal byte count.
// Rendered output may be shorter, never longer.
func (f *Format) MaxSize(args ...Arg) (int, error) {
	return f.plan(args)
}

// plan fuses validation and length planning: one pass over the table
// decides legality and accumulates the per-kind bounds.
func (f *Format) plan(args []Arg) (int, error) {
	if len(args) != len(f.specs) {
		return 0, &ArityError{Specifiers: len(f.specs), Args: len(args)}
	}
	size := len(f.lit)
	for i, s := range f.specs {
		n, err := checkArg(s, i, args[i])
		if err != nil {
			return 0, err
		}
		size += n
	}
	return size, nil
}

// Append validates args, renders the substituted literal onto dst and
// returns the extended slice. This is the allocation-free path: give dst
// MaxSize capacity and the render writes into it without growing.
func (f *Format) Append(dst []byte, args ...Arg) ([]byte, error) {
	if _, err := f.plan(args); err != nil {
		return dst, err
	}
	return f.appendChecked(dst, args), nil
}

// appendChecked walks the literal and the argument list in lock step: copy
// the literal span up to the entry's position, render the argument, skip
// the specifier's encoded size, and after the last entry copy the tail
// verbatim. The scanner guarantees position/encodedSize exactly bound each
// substitution's source span.
func (f *Format) appendChecked(dst []byte, args []Arg) []byte {
	src := 0
	for i, s := range f.specs {
		dst = append(dst, f.lit[src:s.position]...)
		dst = appendArg(dst, s, args[i])
		src = s.position + s.encodedSize
	}
	return append(dst, f.lit[src:]...)
}

// Render renders args into a pooled buffer sized by the length planner and
// hands the finished line to w in a single Write. It returns the number of
// bytes rendered. The returned error reports validation failures only; per
// the sink contract, sink failures are invisible here (wrap the sink in an
// ObservedWriter to count them).
func (f *Format) Render(w io.Writer, args ...Arg) (int, error) {
	if len(f.specs) == 0 && len(args) == 0 {
		// Zero-argument fast path: the literal is the output.
		n, _ := io.WriteString(w, string(f.lit))
		return n, nil
	}
	size, err := f.plan(args)
	if err != nil {
		return 0, err
	}
	sw := acquireSinkWriter(w)
	sw.reserve(size)
	sw.buf = f.appendChecked(sw.buf, args)
	n := sw.flush()
	releaseSinkWriter(sw)
	return n, nil
}

// Renderln renders like Render and terminates the line with "\r\n".
func (f *Format) Renderln(w io.Writer, args ...Arg) (int, error) {
	size, err := f.plan(args)
	if err != nil {
		return 0, err
	}
	sw := acquireSinkWriter(w)
	sw.reserve(size + len(lineEnd))
	sw.buf = f.appendChecked(sw.buf, args)
	sw.buf = append(sw.buf, lineEnd...)
	n := sw.flush()
	releaseSinkWriter(sw)
	return n, nil
}
