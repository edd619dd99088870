package store

import "time"

// Range names the listing windows the history and report screens offer.
type Range string

const (
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeAll   Range = "all"
)

// Bounds returns the [from, to) unix-milli window for r relative to now.
// RangeAll reports ok=false meaning no filtering applies.
func (r Range) Bounds(now time.Time) (from, to int64, ok bool) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeToday:
		return dayStart.UnixMilli(), dayStart.AddDate(0, 0, 1).UnixMilli(), true
	case RangeWeek:
		// runs eight full days back from today so a bill taken at the same
		// weekday last week is still visible after midnight rolls over
		return dayStart.AddDate(0, 0, -8).UnixMilli(), dayStart.AddDate(0, 0, 1).UnixMilli(), true
	case RangeMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthStart.UnixMilli(), monthStart.AddDate(0, 1, 0).UnixMilli(), true
	default:
		return 0, 0, false
	}
}
