package circulation

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

// NewClock returns the wall clock in loc. A nil loc means time.Local.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return realClock{loc: loc}
}

func (c realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
