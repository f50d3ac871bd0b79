package psfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"pkt.systems/psfmt"
)

func render(t *testing.T, lit psfmt.Lit, args ...psfmt.Arg) string {
	t.Helper()
	f, err := psfmt.Parse(lit)
	if err != nil {
		t.Fatalf("parse %q: %v", lit, err)
	}
	out, err := f.Append(nil, args...)
	if err != nil {
		t.Fatalf("render %q: %v", lit, err)
	}
	size, err := f.MaxSize(args...)
	if err != nil {
		t.Fatalf("size %q: %v", lit, err)
	}
	if len(out) > size {
		t.Fatalf("render %q exceeded planned capacity: %d > %d", lit, len(out), size)
	}
	return string(out)
}

func TestRenderSignedDecimal(t *testing.T) {
	if got := render(t, "%d", psfmt.Int(-555)); got != "-555" {
		t.Fatalf("got %q want %q", got, "-555")
	}
	if got := render(t, "%d", psfmt.Int8(-128)); got != "-128" {
		t.Fatalf("got %q want %q", got, "-128")
	}
	if got := render(t, "%d", psfmt.Int64(-9223372036854775808)); got != "-9223372036854775808" {
		t.Fatalf("min int64: got %q", got)
	}
	if got := render(t, "%d", psfmt.Int(0)); got != "0" {
		t.Fatalf("zero: got %q", got)
	}
}

func TestRenderUnsignedWidth(t *testing.T) {
	// Width pads only when the natural digit count is smaller.
	if got := render(t, "%04u", psfmt.Uint32(98765)); got != "98765" {
		t.Fatalf("got %q want %q", got, "98765")
	}
	if got := render(t, "%06u", psfmt.Uint32(7)); got != "000007" {
		t.Fatalf("got %q want %q", got, "000007")
	}
	if got := render(t, "%08d", psfmt.Int32(-42)); got != "-00000042" {
		t.Fatalf("got %q want %q", got, "-00000042")
	}
}

func TestRenderHexFixedWidth(t *testing.T) {
	// Hex always emits 0x plus two nibbles per byte of the source type,
	// leading zeros included.
	cases := []struct {
		arg  psfmt.Arg
		want string
	}{
		{psfmt.Uint8(0), "0x00"},
		{psfmt.Uint8(0x3F), "0x3F"},
		{psfmt.Uint16(0x1234), "0x1234"},
		{psfmt.Uint32(0xAB), "0x000000AB"},
		{psfmt.Uint64(0xDEADBEEF), "0x00000000DEADBEEF"},
	}
	for _, tc := range cases {
		if got := render(t, "%X", tc.arg); got != tc.want {
			t.Fatalf("got %q want %q", got, tc.want)
		}
	}
}

func TestRenderBoolean(t *testing.T) {
	if got := render(t, "%b", psfmt.Bool(true)); got != "TRUE" {
		t.Fatalf("got %q want TRUE", got)
	}
	if got := render(t, "%b", psfmt.Bool(false)); got != "FALSE" {
		t.Fatalf("got %q want FALSE", got)
	}
	// Numerics convert by truthiness.
	if got := render(t, "%b", psfmt.Uint8(3)); got != "TRUE" {
		t.Fatalf("truthy numeric: got %q", got)
	}
	if got := render(t, "%b", psfmt.Int(0)); got != "FALSE" {
		t.Fatalf("falsy numeric: got %q", got)
	}
}

func TestRenderTime(t *testing.T) {
	if got := render(t, "%t", psfmt.Uint64(1500)); got != "1.500" {
		t.Fatalf("got %q want %q", got, "1.500")
	}
	if got := render(t, "%t", psfmt.Uint64(59)); got != "0.059" {
		t.Fatalf("got %q want %q", got, "0.059")
	}
	if got := render(t, "%t", psfmt.Uint64(0)); got != "0.000" {
		t.Fatalf("got %q want %q", got, "0.000")
	}
	if got := render(t, "%t", psfmt.Uint64(987654)); got != "987.654" {
		t.Fatalf("got %q want %q", got, "987.654")
	}
}

func TestRenderCharAndString(t *testing.T) {
	if got := render(t, "say %c%c%c%c", psfmt.Char('T'), psfmt.Char('E'), psfmt.Char('S'), psfmt.Char('T')); got != "say TEST" {
		t.Fatalf("got %q", got)
	}
	// Verbatim copy, no escaping.
	if got := render(t, "<%s>", psfmt.Str("a\"b\\c")); got != "<a\"b\\c>" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderPointer(t *testing.T) {
	v := 7
	f := psfmt.MustParse("%p")
	out, err := f.Append(nil, psfmt.Ptr(&v))
	if err != nil {
		t.Fatalf("render pointer: %v", err)
	}
	got := string(out)
	if !strings.HasPrefix(got, "0x") {
		t.Fatalf("missing 0x prefix: %q", got)
	}
	if len(got) != 2+2*8 {
		t.Fatalf("pointer width %d, want %d chars: %q", len(got), 2+2*8, got)
	}
	zero, err := f.Append(nil, psfmt.Uintptr(0))
	if err != nil {
		t.Fatalf("render nil pointer: %v", err)
	}
	if string(zero) != "0x0000000000000000" {
		t.Fatalf("nil pointer: got %q", zero)
	}
}

func TestRenderMixed(t *testing.T) {
	got := render(t, "dec %d hex %X on %b",
		psfmt.Int16(-77), psfmt.Uint16(0x0102), psfmt.Bool(true))
	want := "dec -77 hex 0x0102 on TRUE"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	f := psfmt.MustParse("%t tick %u and %s")
	args := []psfmt.Arg{psfmt.Uint64(1500), psfmt.Uint8(9), psfmt.Str("lit")}
	first, err := f.Append(nil, args...)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := f.Append(nil, args...)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("renders differ: %q vs %q", first, second)
	}
}

func TestRenderZeroArgFastPath(t *testing.T) {
	var buf bytes.Buffer
	f := psfmt.MustParse("no specifiers here")
	n, err := f.Render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "no specifiers here" {
		t.Fatalf("got %q", buf.String())
	}
	if n != len("no specifiers here") {
		t.Fatalf("reported %d bytes", n)
	}
}

func TestRenderToSinkReportsLength(t *testing.T) {
	var buf bytes.Buffer
	f := psfmt.MustParse("v=%06u")
	n, err := f.Render(&buf, psfmt.Uint16(7))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "v=000007" {
		t.Fatalf("got %q", buf.String())
	}
	if n != buf.Len() {
		t.Fatalf("length mismatch: reported %d, sink saw %d", n, buf.Len())
	}
}

func TestRenderlnAppendsTerminator(t *testing.T) {
	var buf bytes.Buffer
	f := psfmt.MustParse("done %b")
	n, err := f.Renderln(&buf, psfmt.Bool(false))
	if err != nil {
		t.Fatalf("renderln: %v", err)
	}
	if buf.String() != "done FALSE\r\n" {
		t.Fatalf("got %q", buf.String())
	}
	if n != buf.Len() {
		t.Fatalf("length mismatch: reported %d, sink saw %d", n, buf.Len())
	}
}

func TestCachedParsesOnce(t *testing.T) {
	f1, err := psfmt.Cached("cached %u")
	if err != nil {
		t.Fatalf("cached: %v", err)
	}
	f2, err := psfmt.Cached("cached %u")
	if err != nil {
		t.Fatalf("cached: %v", err)
	}
	if f1 != f2 {
		t.Fatalf("expected the same Format instance from the cache")
	}
	if _, err := psfmt.Cached("bad %y"); err == nil {
		t.Fatalf("expected cached parse error")
	}
}
