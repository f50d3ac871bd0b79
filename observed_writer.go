package psfmt

import (
	"io"
	"sync/atomic"
)

// WriteFailure describes one failed write observed by ObservedWriter.
type WriteFailure struct {
	Err       error
	Written   int
	Attempted int
}

// ObservedWriterStats captures aggregated failure counters for ObservedWriter.
type ObservedWriterStats struct {
	Failures    uint64
	ShortWrites uint64
}

// ObservedWriter wraps a sink and records write failures. The render path
// deliberately cannot see sink errors (formatting is infallible once
// validated), so hosts that care about log loss wrap their sink here and
// poll Stats or register a callback.
type ObservedWriter struct {
	dst        io.Writer
	onFailure  func(WriteFailure)
	failures   atomic.Uint64
	shortWrite atomic.Uint64
}

// NewObservedWriter wraps dst with failure observation hooks. onFailure may
// be nil.
func NewObservedWriter(dst io.Writer, onFailure func(WriteFailure)) *ObservedWriter {
	if dst == nil {
		dst = io.Discard
	}
	return &ObservedWriter{
		dst:       dst,
		onFailure: onFailure,
	}
}

func (w *ObservedWriter) Write(p []byte) (int, error) {
	if w == nil || w.dst == nil {
		return len(p), nil
	}

	n, err := w.dst.Write(p)
	if n != len(p) {
		w.shortWrite.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}

	if err != nil {
		w.failures.Add(1)
		if w.onFailure != nil {
			w.onFailure(WriteFailure{
				Err:       err,
				Written:   n,
				Attempted: len(p),
			})
		}
	}

	return n, err
}

// Stats returns cumulative write-failure counters.
func (w *ObservedWriter) Stats() ObservedWriterStats {
	if w == nil {
		return ObservedWriterStats{}
	}
	return ObservedWriterStats{
		Failures:    w.failures.Load(),
		ShortWrites: w.shortWrite.Load(),
	}
}
