package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/ics"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeMove:
		return m.handleMoveKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigationKey(msg.String()) {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		if len(m.cellMeetings()) > 0 {
			m.openModal(ModalMeetingDetail)
			return m, nil
		}
		m.openDraftAtCursor()
	case "a":
		m.openDraftAtCursor()
	case "n":
		if err := m.apply(calendar.OpenBlankDraft{}); err != nil {
			m.setError(err)
			return m, nil
		}
		m.openForm()

	case "y":
		m.startMove()
	case "tab":
		if n := len(m.cellMeetings()); n > 1 {
			m.selected = (m.selected + 1) % n
			m.setStatus(fmt.Sprintf("Selected %s", m.cellMeetings()[m.selected].Title))
		}

	case "c":
		text := agendaText(m.state, m.formatter)
		if err := clipboard.WriteAll(text); err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", err))
		} else {
			m.setStatus("Agenda copied to clipboard")
		}
	case "s":
		m.saveSession()

	case "S":
		m.openModal(ModalWeekSummary)
	case "?":
		m.openModal(ModalHelp)
	}
	return m, nil
}

// handleNavigationKey handles cursor and calendar navigation, shared by
// normal and move modes. It reports whether the key was consumed.
func (m *Model) handleNavigationKey(key string) bool {
	month := m.state.View == calendar.ViewMonth

	switch key {
	case "h", "left":
		m.moveCursorDays(-1)
	case "l", "right":
		m.moveCursorDays(1)
	case "j", "down":
		if month {
			m.moveCursorDays(7)
		} else {
			m.moveCursorHours(1)
		}
	case "k", "up":
		if month {
			m.moveCursorDays(-7)
		} else {
			m.moveCursorHours(-1)
		}
	case "pgdown", "ctrl+d":
		if !month {
			m.moveCursorHours(m.visibleHours())
		}
	case "pgup", "ctrl+u":
		if !month {
			m.moveCursorHours(-m.visibleHours())
		}

	case "H", "[", "shift+left":
		m.navigate(calendar.Prev)
	case "L", "]", "shift+right":
		m.navigate(calendar.Next)
	case "t":
		m.goTo(m.today())

	case "d":
		m.switchView(calendar.ViewDay)
	case "w":
		m.switchView(calendar.ViewWeek)
	case "m":
		m.switchView(calendar.ViewMonth)

	default:
		return false
	}
	return true
}

func (m *Model) navigate(dir calendar.Direction) {
	if err := m.apply(calendar.Navigate{Direction: dir}); err != nil {
		m.setError(err)
		return
	}
	m.selected = 0
	m.focusAnchor()
}

func (m *Model) goTo(date time.Time) {
	if err := m.apply(calendar.GoTo{Date: date}); err != nil {
		m.setError(err)
		return
	}
	m.selected = 0
	m.focusAnchor()
}

func (m *Model) switchView(v calendar.View) {
	if m.state.View == v {
		return
	}
	// keep the cursor day as the anchor so the new view shows it
	anchor := m.cursorCell().Date
	if err := m.apply(calendar.SwitchView{View: v}); err != nil {
		m.setError(err)
		return
	}
	_ = m.apply(calendar.GoTo{Date: anchor})
	m.selected = 0
	m.focusAnchor()
	m.ensureCursorVisible()
}

// moveCursorDays moves the cursor by delta grid days, paging the calendar
// when it leaves the grid.
func (m *Model) moveCursorDays(delta int) {
	m.selected = 0
	days := m.days()
	target := m.cursor.Day + delta
	if target >= 0 && target < len(days) {
		m.cursor.Day = target
		LogCursorMove(m.cursor, "day")
		return
	}

	date := m.cursorCell().Date.AddDate(0, 0, delta)
	if err := m.apply(calendar.GoTo{Date: date}); err != nil {
		m.setError(err)
		return
	}
	m.focusAnchor()
	LogCursorMove(m.cursor, "page")
}

func (m *Model) moveCursorHours(delta int) {
	m.selected = 0
	m.cursor.Hour += delta
	m.clampCursor()
	m.ensureCursorVisible()
	LogCursorMove(m.cursor, "hour")
}

func (m *Model) openDraftAtCursor() {
	c := m.cursorCell()
	if err := m.apply(calendar.OpenDraft{Date: c.Date, Hour: c.Hour}); err != nil {
		m.setError(err)
		return
	}
	m.openForm()
}

func (m *Model) openForm() {
	if m.state.Draft == nil {
		return
	}
	m.form = newMeetingForm(m.styles, *m.state.Draft)
	m.openModal(ModalMeetingForm)
}

func (m *Model) openModal(t ModalType) {
	m.modalType = t
	m.overlay.Show()
	m.setMode(ModeModal, "open modal")
}

func (m *Model) closeModal() {
	m.modalType = ModalNone
	m.overlay.Hide()
	m.setMode(ModeNormal, "close modal")
}

// handleModalKeys handles keys while a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalMeetingForm:
		return m.handleFormKeys(msg)
	case ModalMeetingDetail:
		return m.handleDetailKeys(msg)
	default:
		switch msg.String() {
		case "esc", "enter", "q", "?":
			m.closeModal()
		}
		return m, nil
	}
}

// handleFormKeys handles keys in the meeting form.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		_ = m.apply(calendar.CancelDraft{})
		m.closeModal()
		m.setStatus("Meeting discarded")
		return m, nil
	case "tab", "down":
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case "enter":
		if !m.form.lastField() {
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		}
		m.submitForm()
		return m, nil
	case "ctrl+s":
		m.submitForm()
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m *Model) submitForm() {
	if err := m.apply(calendar.EditDraft{Draft: m.form.draft()}); err != nil {
		m.form.err = err.Error()
		return
	}
	before := len(m.state.Meetings)
	if err := m.apply(calendar.SubmitDraft{}); err != nil {
		m.form.err = err.Error()
		return
	}
	m.closeModal()
	if len(m.state.Meetings) > before {
		created := m.state.Meetings[len(m.state.Meetings)-1]
		m.setStatus(fmt.Sprintf("Created %s (%s)", created.Title, created.Start.Format("Mon 02 15:04")))
	}
}

// handleDetailKeys handles keys in the meeting detail modal.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.closeModal()
	case "tab", "j", "down":
		if n := len(m.cellMeetings()); n > 0 {
			m.selected = (m.selected + 1) % n
		}
	case "shift+tab", "k", "up":
		if n := len(m.cellMeetings()); n > 0 {
			m.selected = (m.selected + n - 1) % n
		}
	case "y":
		m.closeModal()
		m.startMove()
	case "a":
		m.closeModal()
		m.openDraftAtCursor()
	}
	return m, nil
}

// startMove picks up the selected meeting of the cursor cell.
func (m *Model) startMove() {
	meetings := m.cellMeetings()
	if len(meetings) == 0 {
		m.setStatus("No meeting here to move")
		return
	}
	if m.selected >= len(meetings) {
		m.selected = 0
	}
	picked := meetings[m.selected]
	m.moving = picked.ID
	m.setMode(ModeMove, "start move")
	m.setStatus(fmt.Sprintf("Moving %s: choose a slot, Enter to drop, Esc to cancel", picked.Title))
}

// handleMoveKeys handles keys while choosing a drop slot.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigationKey(msg.String()) {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		target := m.cursorCell().ID()
		if err := m.apply(calendar.Drop{MeetingID: m.moving, Target: target}); err != nil {
			m.setError(err)
			return m, nil
		}
		moved, _ := m.state.Meetings.Find(m.moving)
		m.endMove("dropped")
		m.setStatus(fmt.Sprintf("Moved %s to %s", moved.Title, moved.Start.Format("Mon 02 Jan 15:04")))
	case "esc", "q":
		// a drop outside the grid leaves the meeting where it was
		_ = m.apply(calendar.Drop{MeetingID: m.moving})
		m.endMove("cancelled")
		m.setStatus("Move cancelled")
	}
	return m, nil
}

func (m *Model) endMove(reason string) {
	m.moving = ""
	m.selected = 0
	m.setMode(ModeNormal, reason)
}

// saveSession writes every meeting to the session file.
func (m *Model) saveSession() {
	if m.sessionPath == "" {
		m.setStatus("No session file; start agenda with --file to save")
		return
	}
	if err := ics.WriteFile(m.sessionPath, m.state.Meetings, m.now()); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Saved %d meetings to %s", len(m.state.Meetings), m.sessionPath))
}

// agendaText renders the visible meetings as plain text, one line each.
func agendaText(s calendar.State, f calendar.Formatter) string {
	if f == nil {
		f = calendar.English
	}
	var b strings.Builder
	b.WriteString(s.Label(f))
	b.WriteString("\n")

	visible := s.Visible()
	if len(visible) == 0 {
		b.WriteString("No meetings\n")
		return b.String()
	}
	for _, mt := range visible {
		fmt.Fprintf(&b, "%s %02d  %s  %s", f.WeekdayShort(mt.Start.Weekday()), mt.Start.Day(), mt.TimeRange(), mt.Title)
		if mt.Location != "" {
			fmt.Fprintf(&b, " @ %s", mt.Location)
		}
		if org := mt.Organizer(); org != "" {
			fmt.Fprintf(&b, " (%s)", org)
		}
		if calendar.SpansMidnight(mt) {
			b.WriteString(" ↓")
		}
		b.WriteString("\n")
	}
	return b.String()
}
