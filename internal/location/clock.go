package location

import (
	"hash/fnv"
	"io"
	"time"

	"golang.org/x/text/language"

	"paralela/internal/config"
)

// Times carries the three formatted narrative times.
type Times struct {
	Current  string
	Parallel string
	Future   string
}

// Clock derives the narrative times from wall-clock time. The parallel
// offset is seeded from the civil date, so it is stable for the whole
// session but changes from one day to the next.
type Clock struct {
	layout     string
	longLayout string
	offset     time.Duration
	day        string
}

// NewClock selects time layouts for the given locale. English locales get
// 12-hour clocks; everything else reads a 24-hour clock.
func NewClock(tag language.Tag) *Clock {
	layout, long := "15:04", "15:04:05"
	if base, _ := tag.Base(); base.String() == "en" {
		layout, long = "3:04 PM", "3:04:05 PM"
	}
	return &Clock{layout: layout, longLayout: long}
}

// Derive recomputes the three times for the given instant. Called once per
// second by the application tick.
func (c *Clock) Derive(now time.Time) Times {
	if d := now.Format("2006-01-02"); d != c.day {
		c.day = d
		c.offset = parallelOffset(d)
	}
	return Times{
		Current:  now.Format(c.layout),
		Parallel: now.Add(c.offset).Format(c.layout),
		Future:   now.Add(config.FutureOffset).Format(c.layout),
	}
}

// DeviceTime formats the device clock with seconds, used as the aggregator's
// fallback when location times are absent.
func (c *Clock) DeviceTime(now time.Time) string {
	return now.Format(c.longLayout)
}

// Offset exposes the current parallel offset for inspection.
func (c *Clock) Offset() time.Duration {
	return c.offset
}

// parallelOffset maps a civil date to a stable offset in [-6h, +6h).
func parallelOffset(day string) time.Duration {
	h := fnv.New64a()
	io.WriteString(h, day)
	span := uint64(2 * config.ParallelOffsetMax)
	return time.Duration(h.Sum64()%span) - config.ParallelOffsetMax
}
