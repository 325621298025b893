package calendar

import (
	"fmt"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// Direction moves the anchor backward or forward.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Step moves anchor by one view unit. Month steps clamp the day of month:
// Jan 31 + 1 month is Feb 29 in 2024 and Feb 28 in 2023.
func Step(anchor time.Time, view View, dir Direction) (time.Time, error) {
	if dir != Prev && dir != Next {
		return anchor, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}
	switch view {
	case ViewDay:
		return anchor.AddDate(0, 0, int(dir)), nil
	case ViewWeek:
		return anchor.AddDate(0, 0, 7*int(dir)), nil
	case ViewMonth:
		return dateutil.AddMonthsClamped(anchor, int(dir)), nil
	default:
		return anchor, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
}

// VisibleRange returns the first and last date the view's label covers:
// the anchor for day view, Monday..Sunday for week view and the first and
// last day of the month for month view.
func VisibleRange(anchor time.Time, view View) (start, end time.Time) {
	switch view {
	case ViewWeek:
		return dateutil.WeekRange(anchor)
	case ViewMonth:
		return dateutil.MonthRange(anchor)
	default:
		d := dateutil.TruncateToDay(anchor)
		return d, d
	}
}

// Label returns the navigation header for view around anchor:
// "19 March 2024", "18 - 24 March 2024" or "March 2024".
func Label(anchor time.Time, view View, f Formatter) string {
	if f == nil {
		f = English
	}
	start, end := VisibleRange(anchor, view)
	switch view {
	case ViewWeek:
		return fmt.Sprintf("%02d - %02d %s %d", start.Day(), end.Day(), f.MonthName(end.Month()), end.Year())
	case ViewMonth:
		return fmt.Sprintf("%s %d", f.MonthName(start.Month()), start.Year())
	default:
		return fmt.Sprintf("%02d %s %d", start.Day(), f.MonthName(start.Month()), start.Year())
	}
}
