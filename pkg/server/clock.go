package server

import "time"

// Clock provides the running millisecond counter embedded in packet
// timestamps. Wrapping is handled by the encoder's masking.
type Clock interface {
	NowMillis() uint32
}

type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a Clock counting milliseconds since construction.
func NewMonotonicClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) NowMillis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}
