package psfmt

import "io"

// lineEnd is CRLF, the serial-console line convention.
const lineEnd = "\r\n"

// dumpGroupLen is the width of one " XX" hex group.
const dumpGroupLen = 3

// RenderDump renders the literal and args, then appends one " XX" hex group
// per byte of data and a line terminator, and writes the whole thing to w
// in a single Write. It returns the total rendered length including the
// dump. A nil data slice fails fast: zero bytes written, the sink is never
// invoked. An empty-but-non-nil slice renders the line and the terminator
// with no groups.
func (f *Format) RenderDump(w io.Writer, data []byte, args ...Arg) (int, error) {
	if data == nil {
		return 0, nil
	}
	size, err := f.plan(args)
	if err != nil {
		return 0, err
	}
	sw := acquireSinkWriter(w)
	sw.reserve(size + dumpGroupLen*len(data) + len(lineEnd))
	sw.buf = f.appendChecked(sw.buf, args)
	for _, b := range data {
		sw.buf = append(sw.buf, ' ', hexDigit(b>>4), hexDigit(b&0xF))
	}
	sw.buf = append(sw.buf, lineEnd...)
	n := sw.flush()
	releaseSinkWriter(sw)
	return n, nil
}
