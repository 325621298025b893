package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/meeting"
	"github.com/javiermolinar/agenda/internal/summary"
)

const (
	headerLines = 2
	footerLines = 2
)

// spillMarker flags a meeting that continues into the next day.
const spillMarker = "↓"

// View renders the model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	bodyH := max(1, m.height-headerLines-footerLines)
	var body string
	if m.state.View == calendar.ViewMonth {
		body = m.renderMonthGrid(m.width, bodyH)
	} else {
		body = m.renderTimeGrid(m.width, bodyH)
	}

	parts := []string{m.renderHeader(), "", body, m.renderStatus(), m.renderHelp()}
	base := strings.Join(fitLines(strings.Join(parts, "\n"), m.width, m.height), "\n")

	if m.mode == ModeModal {
		return m.overlay.Render(base, m.width, m.height, m.modalContent())
	}
	return base
}

func (m Model) renderHeader() string {
	left := m.styles.TitleStyle.Render("agenda") + m.styles.LabelStyle.Render(m.state.Label(m.formatter))

	var tabs []string
	for _, v := range calendar.Views {
		style := m.styles.TabStyle
		if v == m.state.View {
			style = m.styles.TabActiveStyle
		}
		tabs = append(tabs, style.Render(string(v)))
	}
	right := strings.Join(tabs, "")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + m.styles.AppStyle.Render(strings.Repeat(" ", gap)) + right
}

// fitCell truncates text to width-1 cells after a one-cell left margin.
func fitCell(text string, width int) string {
	if width <= 1 {
		return ansi.Truncate(text, max(width, 0), "")
	}
	return " " + ansi.Truncate(text, width-1, "…")
}

func renderCell(style lipgloss.Style, text string, width int) string {
	return style.Width(width).MaxHeight(1).Render(fitCell(text, width))
}

// block is one hour row of a meeting block in a day column.
type block struct {
	meeting meeting.Meeting
	row     int // 0 for the start hour
	height  int
	others  int // further meetings starting in the same cell
	alt     bool
}

// columnBlocks lays out the meetings of one day over 24 hour rows. A
// meeting covers SpanHeight rows from its start hour, stopping early at
// the next occupied start cell or midnight.
func (m Model) columnBlocks(dayIdx int, date time.Time, placement calendar.Placement) [calendar.HoursPerDay]*block {
	var rows [calendar.HoursPerDay]*block
	alt := false
	for h := 0; h < calendar.HoursPerDay; h++ {
		ms := placement.At(calendar.Cell{Date: date, Hour: h})
		if len(ms) == 0 {
			continue
		}
		shown := ms[0]
		if dayIdx == m.cursor.Day && h == m.cursor.Hour && m.selected < len(ms) {
			shown = ms[m.selected]
		}
		height := calendar.SpanHeight(shown)
		for k := 0; k < height && h+k < calendar.HoursPerDay; k++ {
			if k > 0 && len(placement.At(calendar.Cell{Date: date, Hour: h + k})) > 0 {
				break
			}
			rows[h+k] = &block{meeting: shown, row: k, height: height, others: len(ms) - 1, alt: alt}
		}
		alt = !alt
	}
	return rows
}

func (b *block) text() string {
	mt := b.meeting
	switch b.row {
	case 0:
		title := mt.Title
		if calendar.SpansMidnight(mt) {
			title += " " + spillMarker
		}
		if b.others > 0 {
			title += fmt.Sprintf(" +%d", b.others)
		}
		return title
	case 1:
		if mt.Location != "" {
			return mt.Location
		}
		return mt.TimeRange()
	case 2:
		if mt.Location != "" {
			return mt.TimeRange()
		}
	}
	return ""
}

func (m Model) blockStyle(b *block) lipgloss.Style {
	switch {
	case b.meeting.End.Before(m.now()):
		return m.styles.MeetingPastStyle
	case calendar.SpansMidnight(b.meeting):
		return m.styles.SpillStyle
	case b.alt:
		return m.styles.MeetingAltStyle
	default:
		return m.styles.MeetingStyle
	}
}

// movePreviewRows returns the rows covered by the moving meeting when
// dropped at the cursor, or -1, -1 outside move mode.
func (m Model) movePreviewRows() (from, to int) {
	if m.mode != ModeMove {
		return -1, -1
	}
	mt, ok := m.state.Meetings.Find(m.moving)
	if !ok {
		return -1, -1
	}
	return m.cursor.Hour, m.cursor.Hour + calendar.SpanHeight(mt)
}

func (m Model) renderTimeGrid(width, height int) string {
	days := m.days()
	if len(days) == 0 {
		return ""
	}
	colW := max(minColWidth, (width-timeColumnWidth)/len(days))
	placement := m.state.Placement()
	today := m.today()

	var header strings.Builder
	header.WriteString(m.styles.TimeColumnStyle.Render(""))
	for _, d := range days {
		style := m.styles.DayHeaderStyle
		if dateutil.SameDay(d, today) {
			style = m.styles.DayHeaderTodayStyle
		}
		label := fmt.Sprintf("%s %02d", m.formatter.WeekdayShort(d.Weekday()), d.Day())
		header.WriteString(style.Width(colW).Render(ansi.Truncate(label, colW, "")))
	}

	columns := make([][calendar.HoursPerDay]*block, len(days))
	for i, d := range days {
		columns[i] = m.columnBlocks(i, d, placement)
	}
	var moving meeting.Meeting
	if m.mode == ModeMove {
		moving, _ = m.state.Meetings.Find(m.moving)
	}
	previewFrom, previewTo := m.movePreviewRows()

	lines := []string{header.String()}
	rows := min(height-1, calendar.HoursPerDay)
	for h := m.scrollOffset; h < m.scrollOffset+rows && h < calendar.HoursPerDay; h++ {
		var line strings.Builder
		line.WriteString(m.styles.TimeColumnStyle.Render(fmt.Sprintf("%02d:00", h)))
		for i := range days {
			onCursor := i == m.cursor.Day && h == m.cursor.Hour
			b := columns[i][h]
			switch {
			case i == m.cursor.Day && h >= previewFrom && h < previewTo:
				text := ""
				if h == previewFrom {
					text = "→ " + moving.Title
				}
				line.WriteString(renderCell(m.styles.MovePreviewStyle, text, colW))
			case b != nil && onCursor:
				line.WriteString(renderCell(m.styles.CursorStyle, b.text(), colW))
			case b != nil:
				line.WriteString(renderCell(m.blockStyle(b), b.text(), colW))
			case onCursor:
				line.WriteString(renderCell(m.styles.CursorStyle, "", colW))
			default:
				line.WriteString(renderCell(m.styles.EmptyCellStyle, "", colW))
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMonthGrid(width, height int) string {
	days := m.days()
	weeks := calendar.Weeks(days)
	if len(weeks) == 0 {
		return ""
	}
	colW := max(minColWidth, width/7)
	rowH := max(monthCellLines, (height-1)/len(weeks))
	placement := m.state.Placement()
	today := m.today()
	month := m.state.Anchor.Month()

	var header strings.Builder
	for _, d := range weeks[0] {
		name := m.formatter.WeekdayShort(d.Weekday())
		header.WriteString(m.styles.DayHeaderStyle.Width(colW).Render(ansi.Truncate(name, colW, "")))
	}

	lines := []string{header.String()}
	for wi, week := range weeks {
		cells := make([][]string, len(week))
		for di, d := range week {
			idx := wi*7 + di
			style := m.styles.MonthDayStyle
			if d.Month() != month {
				style = m.styles.MonthDayOutsideStyle
			}
			if idx == m.cursor.Day {
				style = m.styles.CursorStyle
				if m.mode == ModeMove {
					style = m.styles.MovePreviewStyle
				}
			}
			cells[di] = m.monthCell(d, placement, style, dateutil.SameDay(d, today), colW, rowH)
		}
		for row := 0; row < rowH; row++ {
			var line strings.Builder
			for _, c := range cells {
				line.WriteString(c[row])
			}
			lines = append(lines, line.String())
		}
	}
	return strings.Join(lines, "\n")
}

// monthCell renders rowH lines for one day: the day number then one line
// per meeting, with a "+N more" line when they do not fit.
func (m Model) monthCell(d time.Time, placement calendar.Placement, style lipgloss.Style, isToday bool, colW, rowH int) []string {
	out := make([]string, 0, rowH)

	number := fmt.Sprintf("%2d", d.Day())
	if isToday {
		rest := max(0, colW-1-lipgloss.Width(number))
		out = append(out, style.Render(" ")+m.styles.MonthTodayStyle.Render(number)+style.Render(strings.Repeat(" ", rest)))
	} else {
		out = append(out, renderCell(style.Inherit(m.styles.MonthDayNumberStyle), number, colW))
	}

	meetings := placement.At(calendar.Cell{Date: d, Hour: calendar.MonthCellHour})
	slots := rowH - 1
	for i, mt := range meetings {
		if i == slots-1 && len(meetings) > slots {
			out = append(out, renderCell(style, fmt.Sprintf("+%d more", len(meetings)-i), colW))
			break
		}
		if i >= slots {
			break
		}
		text := mt.Start.Format("15:04") + " " + mt.Title
		if calendar.SpansMidnight(mt) {
			text += " " + spillMarker
		}
		out = append(out, renderCell(style, text, colW))
	}
	for len(out) < rowH {
		out = append(out, renderCell(style, "", colW))
	}
	return out
}

func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return m.styles.StatusStyle.Render(" ")
	}
	if m.statusErr {
		return m.styles.ErrorStyle.Render(m.statusMsg)
	}
	return m.styles.StatusStyle.Render(m.statusMsg)
}

func (m Model) renderHelp() string {
	var help string
	switch m.mode {
	case ModeMove:
		help = "hjkl slot · H/L page · d/w/m view · enter drop · esc cancel"
	case ModeModal:
		help = "esc close"
	default:
		help = "hjkl move · H/L page · t today · d/w/m view · enter open · n new · y move · S week · c copy · s save · ? help · q quit"
	}
	return m.styles.HelpStyle.Render(ansi.Truncate(help, m.width, "…"))
}

func (m Model) modalContent() string {
	switch m.modalType {
	case ModalMeetingForm:
		return m.form.view(m.styles)
	case ModalMeetingDetail:
		return m.detailView()
	case ModalWeekSummary:
		return m.weekSummaryView()
	case ModalHelp:
		return m.helpView()
	default:
		return ""
	}
}

func (m Model) detailView() string {
	meetings := m.cellMeetings()
	s := m.styles

	var b strings.Builder
	b.WriteString(s.ModalTitleStyle.Render(m.cursorCell().Date.Format("Monday 02 January 2006")))
	b.WriteString("\n")
	for i, mt := range meetings {
		b.WriteString("\n")
		marker := "  "
		if i == m.selected {
			marker = "› "
		}
		b.WriteString(s.ModalBodyStyle.Render(marker + mt.Title))
		b.WriteString("\n")

		when := mt.TimeRange()
		if calendar.SpansMidnight(mt) {
			when += " " + spillMarker + " ends " + mt.End.Format("Mon 02 15:04")
		}
		meta := []string{when}
		if mt.Location != "" {
			meta = append(meta, mt.Location)
		}
		if org := mt.Organizer(); org != "" {
			meta = append(meta, org)
		}
		b.WriteString(s.ModalMetaStyle.Render("  " + strings.Join(meta, " · ")))
		b.WriteString("\n")
		if mt.Description != "" {
			b.WriteString(s.ModalMetaStyle.Render("  " + mt.Description))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(s.ModalHintStyle.Render("tab next · y move · a add · esc close"))
	return s.ModalStyle.Render(b.String())
}

func (m Model) weekSummaryView() string {
	s := m.styles
	ws := summary.SummarizeWeek(m.cursorCell().Date, m.state.Meetings)

	var b strings.Builder
	for _, line := range ws.Lines(m.formatter) {
		switch line.Style {
		case summary.LineSection:
			b.WriteString(s.ModalTitleStyle.Render(line.Text))
		case summary.LineMeta:
			b.WriteString(s.ModalMetaStyle.Render(line.Text))
		default:
			b.WriteString(s.ModalBodyStyle.Render(line.Text))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.ModalHintStyle.Render("esc close"))
	return s.ModalStyle.Render(b.String())
}

var helpKeys = [][2]string{
	{"h j k l", "move the cursor"},
	{"H L [ ]", "previous / next page"},
	{"t", "today"},
	{"d w m", "day, week, month view"},
	{"enter", "open cell"},
	{"a", "new meeting in cell"},
	{"n", "new blank meeting"},
	{"y", "move meeting"},
	{"tab", "next meeting in cell"},
	{"S", "week summary"},
	{"c", "copy agenda"},
	{"s", "save session file"},
	{"q", "quit"},
}

func (m Model) helpView() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.ModalTitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, kv := range helpKeys {
		b.WriteString(s.ModalLabelFocusedStyle.Render(kv[0]))
		b.WriteString(s.ModalBodyStyle.Render(kv[1]))
		b.WriteString("\n")
	}
	return s.ModalStyle.Render(strings.TrimRight(b.String(), "\n"))
}
