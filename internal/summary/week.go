// Package summary provides week summary utilities shared by the CLI and
// the TUI.
package summary

import (
	"fmt"
	"time"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/meeting"
)

// DayStats holds the meetings starting on one day.
type DayStats struct {
	Date     time.Time
	Meetings int
	Booked   time.Duration
}

// Stats holds aggregated statistics for the week.
type Stats struct {
	Meetings   int
	Booked     time.Duration
	Spills     int // meetings ending on a later day
	Organizers int // distinct organizer names
}

// WeekSummary holds aggregated week data. Meetings count toward the day
// they start on, with their full duration.
type WeekSummary struct {
	Start    time.Time
	End      time.Time
	Meetings meeting.Collection
	Days     [7]DayStats
	Stats    Stats
}

// SummarizeWeek builds the summary of the Monday-Sunday week containing
// date.
func SummarizeWeek(date time.Time, meetings meeting.Collection) *WeekSummary {
	start, end := dateutil.WeekRange(date)
	s := &WeekSummary{
		Start:    start,
		End:      end,
		Meetings: meetings.Between(start, end),
	}
	for i := range s.Days {
		s.Days[i].Date = start.AddDate(0, 0, i)
	}

	organizers := make(map[string]struct{})
	for _, m := range s.Meetings {
		i := int(dateutil.TruncateToDay(m.Start).Sub(start).Hours()+12) / 24
		if i < 0 || i >= len(s.Days) {
			continue
		}
		s.Days[i].Meetings++
		s.Days[i].Booked += m.Duration()

		s.Stats.Meetings++
		s.Stats.Booked += m.Duration()
		if calendar.SpansMidnight(m) {
			s.Stats.Spills++
		}
		if org := m.Organizer(); org != "" {
			organizers[org] = struct{}{}
		}
	}
	s.Stats.Organizers = len(organizers)
	return s
}

// BusiestDay returns the day with the most booked time. Ties go to the
// earlier day. It returns false for an empty week.
func (s *WeekSummary) BusiestDay() (DayStats, bool) {
	best := -1
	for i, d := range s.Days {
		if d.Meetings == 0 {
			continue
		}
		if best < 0 || d.Booked > s.Days[best].Booked {
			best = i
		}
	}
	if best < 0 {
		return DayStats{}, false
	}
	return s.Days[best], true
}

// LineStyle indicates how a summary line should be styled.
type LineStyle int

const (
	LineBody LineStyle = iota
	LineMeta
	LineSection
)

// Line is a display-ready summary line.
type Line struct {
	Text  string
	Style LineStyle
}

// Lines renders the summary as display lines.
func (s *WeekSummary) Lines(f calendar.Formatter) []Line {
	if f == nil {
		f = calendar.English
	}

	lines := []Line{
		{Text: "Week " + calendar.Label(s.Start, calendar.ViewWeek, f), Style: LineSection},
		{Text: fmt.Sprintf("%d meetings · %s booked", s.Stats.Meetings, FormatDuration(s.Stats.Booked)), Style: LineMeta},
		{},
	}
	for _, d := range s.Days {
		text := fmt.Sprintf("%s %02d  ", f.WeekdayShort(d.Date.Weekday()), d.Date.Day())
		if d.Meetings == 0 {
			text += "-"
		} else {
			text += fmt.Sprintf("%d × %s", d.Meetings, FormatDuration(d.Booked))
		}
		lines = append(lines, Line{Text: text, Style: LineBody})
	}

	if busiest, ok := s.BusiestDay(); ok {
		lines = append(lines, Line{}, Line{
			Text: fmt.Sprintf("Busiest: %s %02d (%s)",
				f.WeekdayShort(busiest.Date.Weekday()), busiest.Date.Day(), FormatDuration(busiest.Booked)),
			Style: LineMeta,
		})
		if s.Stats.Spills > 0 {
			lines = append(lines, Line{Text: fmt.Sprintf("Past midnight: %d", s.Stats.Spills), Style: LineMeta})
		}
		lines = append(lines, Line{Text: fmt.Sprintf("Organizers: %d", s.Stats.Organizers), Style: LineMeta})
	}
	return lines
}

// FormatDuration formats a duration as "1h", "45m" or "1h30m".
func FormatDuration(d time.Duration) string {
	minutes := int(d / time.Minute)
	if minutes <= 0 {
		return "0m"
	}
	hours, mins := minutes/60, minutes%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh%dm", hours, mins)
	}
}
