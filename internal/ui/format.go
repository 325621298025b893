package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/meeting"
	"github.com/javiermolinar/agenda/internal/summary"
)

// PrintOpts configures meeting printing.
type PrintOpts struct {
	Verbose       bool // Show descriptions and ids
	MaxTitleWidth int  // 0 = derive from the terminal width
}

// titleWidth returns the title column width.
func (o PrintOpts) titleWidth() int {
	if o.MaxTitleWidth > 0 {
		return o.MaxTitleWidth
	}
	// "  HH:MM-HH:MM  " plus room for location and organizer
	return max(20, termWidth()-40)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 3 || len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// PrintMeetingRow prints one meeting line.
func PrintMeetingRow(w io.Writer, m meeting.Meeting, opts PrintOpts) {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s", m.TimeRange(), formatMeeting(truncate(m.Title, opts.titleWidth())))
	if m.Location != "" {
		b.WriteString("  @ " + m.Location)
	}
	if org := m.Organizer(); org != "" {
		b.WriteString("  " + formatMuted("("+org+")"))
	}
	if calendar.SpansMidnight(m) {
		b.WriteString("  " + formatSpill("↓ ends "+m.End.Format("Mon 02 15:04")))
	}
	b.WriteString("  " + formatMuted(summary.FormatDuration(m.Duration())))
	fmt.Fprintln(w, b.String())

	if opts.Verbose {
		fmt.Fprintf(w, "      %s\n", formatMuted("id "+m.ID))
		if m.Description != "" {
			fmt.Fprintf(w, "      %s\n", m.Description)
		}
	}
}

// PrintAgenda prints the meetings of a view grouped by day.
func PrintAgenda(w io.Writer, s calendar.State, f calendar.Formatter, opts PrintOpts) {
	fmt.Fprintf(w, "=== %s ===\n", formatHeader(s.Label(f)))

	visible := s.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(w, "\nNo meetings.")
		return
	}

	var day time.Time
	var total time.Duration
	for _, m := range visible {
		if !dateutil.SameDay(m.Start, day) {
			day = dateutil.TruncateToDay(m.Start)
			fmt.Fprintf(w, "\n%s\n", formatHeader(dayLabel(day, f)))
		}
		PrintMeetingRow(w, m, opts)
		total += m.Duration()
	}
	fmt.Fprintf(w, "\n%d meetings, %s\n", len(visible), summary.FormatDuration(total))
}

func dayLabel(d time.Time, f calendar.Formatter) string {
	return fmt.Sprintf("%s %02d %s", f.WeekdayShort(d.Weekday()), d.Day(), f.MonthName(d.Month()))
}
