package analytics

import "time"

// Window is a half-open [Start, End) time period.
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open windows share any instant.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Days returns the window length in whole days.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

// PeriodWindows pairs the current analysis window with the previous one it is
// compared against.
type PeriodWindows struct {
	Current  Window
	Previous Window
}

// PeriodsFrom derives contiguous current and previous windows from day
// counts: current ends at now, previous ends where current starts. Both day
// counts must be positive.
func PeriodsFrom(now time.Time, currentDays, previousDays int) (PeriodWindows, error) {
	if currentDays <= 0 {
		return PeriodWindows{}, validationErrorf("current_days must be positive, got %d", currentDays)
	}
	if previousDays <= 0 {
		return PeriodWindows{}, validationErrorf("previous_days must be positive, got %d", previousDays)
	}

	currentStart := now.AddDate(0, 0, -currentDays)
	return PeriodWindows{
		Current:  Window{Start: currentStart, End: now},
		Previous: Window{Start: currentStart.AddDate(0, 0, -previousDays), End: currentStart},
	}, nil
}

// PeriodsFromOffsets derives windows when the caller specifies the previous
// period as explicit days-ago offsets from now instead of a length. The
// previous window is [now-startDaysAgo, now-endDaysAgo). Configurations where
// the two windows overlap are rejected before any rows are fetched.
func PeriodsFromOffsets(now time.Time, currentDays, prevStartDaysAgo, prevEndDaysAgo int) (PeriodWindows, error) {
	if currentDays <= 0 {
		return PeriodWindows{}, validationErrorf("current_days must be positive, got %d", currentDays)
	}
	if prevStartDaysAgo <= 0 || prevEndDaysAgo < 0 {
		return PeriodWindows{}, validationErrorf(
			"previous period offsets must be positive, got start=%d end=%d", prevStartDaysAgo, prevEndDaysAgo)
	}
	if prevEndDaysAgo >= prevStartDaysAgo {
		return PeriodWindows{}, validationErrorf(
			"previous period is empty or inverted: starts %d days ago, ends %d days ago",
			prevStartDaysAgo, prevEndDaysAgo)
	}

	current := Window{Start: now.AddDate(0, 0, -currentDays), End: now}
	previous := Window{
		Start: now.AddDate(0, 0, -prevStartDaysAgo),
		End:   now.AddDate(0, 0, -prevEndDaysAgo),
	}
	if current.Overlaps(previous) {
		return PeriodWindows{}, validationErrorf(
			"previous period [%s, %s) overlaps current period [%s, %s)",
			previous.Start.Format(time.RFC3339), previous.End.Format(time.RFC3339),
			current.Start.Format(time.RFC3339), current.End.Format(time.RFC3339))
	}

	return PeriodWindows{Current: current, Previous: previous}, nil
}
