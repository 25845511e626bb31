package ports

import "time"

// Clock supplies the current time. Every timestamp the ledger stores comes from it.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock, e.g. ports.ClockFunc(time.Now).
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}
