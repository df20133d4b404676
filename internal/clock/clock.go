package clock

import "time"

// Clock supplies "now" to anything with time-dependent behavior, so tests
// can pin it to a fixed instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock { return fixed{t: t} }

type fixed struct {
	t time.Time
}

func (f fixed) Now() time.Time { return f.t }
