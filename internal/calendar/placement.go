package calendar

import (
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/meeting"
)

// MeetingsForCell returns the meetings that start in the given cell, in
// collection order. Day and week views match the start hour; month view
// matches the start date only. A meeting never appears in hours it merely
// spans.
func MeetingsForCell(meetings []meeting.Meeting, date time.Time, hour int, view View) []meeting.Meeting {
	var out []meeting.Meeting
	for _, m := range meetings {
		if !dateutil.SameDay(m.Start, date) {
			continue
		}
		if view != ViewMonth && m.Start.Hour() != hour {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SpanHeight returns the number of hour rows a meeting block covers: whole
// hours between start and end, floored, at least 1.
func SpanHeight(m meeting.Meeting) int {
	h := int(m.End.Sub(m.Start) / time.Hour)
	if h < 1 {
		return 1
	}
	return h
}

// SpansMidnight reports whether m ends on a later date than it starts.
// Such meetings are only placed in their start cell; the renderer marks
// the continuation there.
func SpansMidnight(m meeting.Meeting) bool {
	end := m.End
	// an end of exactly midnight closes the start day
	if end.Equal(dateutil.TruncateToDay(end)) {
		end = end.Add(-time.Nanosecond)
	}
	return end.After(m.Start) && !dateutil.SameDay(m.Start, end)
}

// Placement maps slot ids to the meetings starting there.
type Placement map[SlotID][]meeting.Meeting

// Place computes the placement of meetings over cells for view. Cells with
// no meetings are absent from the result.
func Place(meetings []meeting.Meeting, cells []Cell, view View) Placement {
	wanted := make(map[SlotID]bool, len(cells))
	for _, c := range cells {
		wanted[c.ID()] = true
	}

	p := make(Placement)
	for _, m := range meetings {
		hour := m.Start.Hour()
		if view == ViewMonth {
			hour = MonthCellHour
		}
		id := NewSlotID(m.Start, hour)
		if wanted[id] {
			p[id] = append(p[id], m)
		}
	}
	return p
}

// At returns the meetings placed in c.
func (p Placement) At(c Cell) []meeting.Meeting {
	return p[c.ID()]
}

// Count returns the number of placed meetings.
func (p Placement) Count() int {
	n := 0
	for _, ms := range p {
		n += len(ms)
	}
	return n
}
