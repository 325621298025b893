package calendar

import (
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// HoursPerDay is the number of hour rows in day and week views.
const HoursPerDay = 24

// Days returns the dates shown by view around anchor, in display order:
// the anchor for day view, Monday..Sunday for week view and the full
// Monday-first weeks covering the month for month view.
// Returns nil for an unknown view.
func Days(view View, anchor time.Time) []time.Time {
	switch view {
	case ViewDay:
		return []time.Time{dateutil.TruncateToDay(anchor)}
	case ViewWeek:
		monday, sunday := dateutil.WeekRange(anchor)
		return dateutil.EachDay(monday, sunday)
	case ViewMonth:
		start, end := dateutil.MonthGridRange(anchor)
		return dateutil.EachDay(start, end)
	default:
		return nil
	}
}

// GridFor returns the ordered cells of view around anchor. Day and week
// cells are day-major with hours 0..23; month cells carry MonthCellHour.
func GridFor(view View, anchor time.Time) []Cell {
	days := Days(view, anchor)
	if view == ViewMonth {
		cells := make([]Cell, len(days))
		for i, d := range days {
			cells[i] = Cell{Date: d, Hour: MonthCellHour}
		}
		return cells
	}

	cells := make([]Cell, 0, len(days)*HoursPerDay)
	for _, d := range days {
		for h := 0; h < HoursPerDay; h++ {
			cells = append(cells, Cell{Date: d, Hour: h})
		}
	}
	return cells
}

// Weeks splits month-view days into rows of seven.
func Weeks(days []time.Time) [][]time.Time {
	var rows [][]time.Time
	for len(days) >= 7 {
		rows = append(rows, days[:7:7])
		days = days[7:]
	}
	if len(days) > 0 {
		rows = append(rows, days)
	}
	return rows
}
