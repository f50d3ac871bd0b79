package log

import "time"

// Clock supplies the tick value rendered through the %t specifier on every
// log line: milliseconds since an epoch the host defines. Embedded targets
// typically count from boot; the default clock counts from logger
// construction.
type Clock interface {
	Tick() uint64
}

type monotonicClock struct {
	start time.Time
}

// NewClock returns a Clock that reports milliseconds elapsed since the call
// to NewClock, using the runtime's monotonic reading.
func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Tick() uint64 {
	d := time.Since(c.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}
