// Package psfmt renders printf-style format literals into bounded,
// preallocated buffers with every check pulled out of the render path. It
// targets the same discipline an embedded formatter lives under: no heap
// growth mid-render, no runtime reparsing, and a misused specifier is
// rejected before a single byte is written.
//
// # Design overview
//
//   - Parse-once literals: Parse (or MustParse in a var block) scans a
//     literal into an immutable specifier table. Unknown specifier
//     characters and width on non-decimal kinds are parse errors, so the
//     table's position/size bookkeeping is always trustworthy.
//   - Closed argument set: arguments are built with typed constructors
//     (Int, Uint8, Char, Str, Ptr, Bool, Millis, ...). Each render call
//     validates class and count against the table before rendering; a
//     mismatch is a typed error naming the offending specifier, never
//     corrupted output.
//   - Exact length planning: every specifier kind carries a maximum-length
//     bound derived from the argument's type size. MaxSize sums the bounds
//     plus the literal length, so one up-front reserve covers the whole
//     render.
//   - Single-write sinks: Render stages the line in a pooled buffer and
//     hands it to the io.Writer sink in one Write. Sink failures are not
//     observable to the core; wrap the sink in an ObservedWriter when loss
//     must be counted.
//
// # Specifiers
//
//	%d  signed decimal        Int, Int8..Int64          width pads with zeros
//	%u  unsigned decimal      Uint, Uint8..Uint64       width pads with zeros
//	%X  fixed-width hex       Uint, Uint8..Uint64       0x prefix, 2 nibbles/byte
//	%c  single character      Char
//	%s  format literal        Str                       verbatim, no escaping
//	%p  pointer address       Ptr, Uintptr              rendered like %X
//	%t  milliseconds          Uint, Uint64, Millis      seconds.mmm, 3 digits
//	%b  truth value           Bool and any numeric      TRUE / FALSE
//
// # Usage
//
//	var ready = psfmt.MustParse("up after %t, attempt %u of %u\r\n")
//
//	n, err := ready.Render(uart, psfmt.Millis(elapsed), psfmt.Uint8(try), psfmt.Uint8(max))
//
// RenderDump appends a hex dump of a byte buffer after the rendered line,
// one " XX" group per byte:
//
//	frame := psfmt.MustParse("rx frame len=%u:")
//	frame.RenderDump(uart, buf, psfmt.Uint(uint(len(buf))))
//
// The log subpackage layers tick-stamped leveled logging over this engine;
// the ansi subpackage holds its palette.
package psfmt
