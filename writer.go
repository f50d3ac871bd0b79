package psfmt

import (
	"io"
	"sync"
)

const (
	sinkWriterDefaultCap = 256
	sinkWriterMaxCap     = 16 << 10
)

// sinkWriter stages one rendered line before handing it to the sink in a
// single Write. The pool plays the role a fixed stack buffer plays on an
// embedded target: the length planner reserves the exact upper bound up
// front, the buffer never grows mid-render, and nothing escapes the call.
type sinkWriter struct {
	dst io.Writer
	buf []byte
}

var sinkWriterPool = sync.Pool{
	New: func() any {
		return &sinkWriter{buf: make([]byte, 0, sinkWriterDefaultCap)}
	},
}

func acquireSinkWriter(dst io.Writer) *sinkWriter {
	sw := sinkWriterPool.Get().(*sinkWriter)
	sw.dst = dst
	sw.buf = sw.buf[:0]
	return sw
}

func releaseSinkWriter(sw *sinkWriter) {
	sw.dst = nil
	if cap(sw.buf) > sinkWriterMaxCap {
		sw.buf = make([]byte, 0, sinkWriterDefaultCap)
	} else {
		sw.buf = sw.buf[:0]
	}
	sinkWriterPool.Put(sw)
}

func (sw *sinkWriter) reserve(n int) {
	if n <= 0 {
		return
	}
	need := len(sw.buf) + n
	if need <= cap(sw.buf) {
		return
	}
	newBuf := make([]byte, len(sw.buf), need)
	copy(newBuf, sw.buf)
	sw.buf = newBuf
}

// flush writes the staged bytes to the sink once and reports the staged
// length. Sink failures are not observable to the render path; wrap the
// sink in an ObservedWriter when loss matters.
func (sw *sinkWriter) flush() int {
	n := len(sw.buf)
	if n == 0 || sw.dst == nil {
		sw.buf = sw.buf[:0]
		return 0
	}
	_, _ = sw.dst.Write(sw.buf)
	sw.buf = sw.buf[:0]
	return n
}
