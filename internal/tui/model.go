package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/meeting"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMove        // Choosing a drop slot for a meeting
	ModeModal
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeModal:
		return "modal"
	default:
		return "normal"
	}
}

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone          ModalType = iota
	ModalMeetingForm             // Draft being edited
	ModalMeetingDetail           // Meetings of the cursor cell
	ModalWeekSummary
	ModalHelp
)

// Cursor is a position in the current grid. Day indexes calendar.Days for
// the current view; Hour is ignored in month view.
type Cursor struct {
	Day  int
	Hour int
}

// Model is the main TUI model.
type Model struct {
	config *config.Config

	theme     *theme.Theme
	styles    *Styles
	formatter calendar.Formatter

	state calendar.State

	cursor Cursor
	mode   Mode

	// Move mode
	moving string // id of the meeting being moved

	// Modal state
	modalType ModalType
	form      meetingForm
	selected  int // index into the cursor cell's meetings
	overlay   OverlayModel

	// Session file written by the save key. Empty disables saving.
	sessionPath string

	width        int
	height       int
	scrollOffset int // first hour row shown in day and week views

	statusMsg string
	statusErr bool

	now func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithMeetings preloads the meeting collection.
func WithMeetings(c meeting.Collection) ModelOption {
	return func(m *Model) {
		m.state.Meetings = c
	}
}

// WithAnchor starts the calendar on the given date.
func WithAnchor(t time.Time) ModelOption {
	return func(m *Model) {
		m.state.Anchor = dateutil.TruncateToDay(t)
	}
}

// WithView overrides the configured default view.
func WithView(v calendar.View) ModelOption {
	return func(m *Model) {
		m.state.View = v
	}
}

// WithSessionPath enables saving meetings to an iCalendar file.
func WithSessionPath(path string) ModelOption {
	return func(m *Model) {
		m.sessionPath = path
	}
}

// WithNow overrides the clock, used for "today" and past meetings.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithIDFunc overrides meeting id generation.
func WithIDFunc(fn meeting.IDFunc) ModelOption {
	return func(m *Model) {
		m.state.NewID = fn
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	overlay := NewOverlayModel()
	overlay.SetBackground(styles.ModalBgColor)

	m := &Model{
		config:       cfg,
		theme:        t,
		styles:       styles,
		formatter:    cfg.Formatter(),
		mode:         ModeNormal,
		overlay:      overlay,
		scrollOffset: cfg.Calendar.DayStartHour,
		now:          time.Now,
	}
	m.state = calendar.State{View: cfg.View(), Policy: cfg.Policy()}

	for _, opt := range opts {
		opt(m)
	}

	if m.state.Anchor.IsZero() {
		m.state.Anchor = dateutil.TruncateToDay(m.now())
	}
	m.cursor.Hour = cfg.Calendar.DayStartHour
	m.focusAnchor()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the calendar state shown by the model.
func (m Model) State() calendar.State {
	return m.state
}

// Run starts the TUI.
func Run(cfg *config.Config, opts ...ModelOption) error {
	return RunWithDebug(cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// apply runs e through the calendar reducer and keeps the result only when
// it succeeds.
func (m *Model) apply(e calendar.Event) error {
	next, err := m.state.Apply(e)
	LogEvent(e, next, err)
	if err != nil {
		return err
	}
	m.state = next
	return nil
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.statusMsg = "Error: " + err.Error()
	m.statusErr = true
}

func (m *Model) setMode(to Mode, reason string) {
	if m.mode != to {
		LogModeChange(m.mode, to, reason)
	}
	m.mode = to
}

// days returns the dates of the current grid.
func (m Model) days() []time.Time {
	return calendar.Days(m.state.View, m.state.Anchor)
}

// cursorCell returns the grid cell under the cursor.
func (m Model) cursorCell() calendar.Cell {
	days := m.days()
	day := m.state.Anchor
	if m.cursor.Day >= 0 && m.cursor.Day < len(days) {
		day = days[m.cursor.Day]
	}
	hour := m.cursor.Hour
	if m.state.View == calendar.ViewMonth {
		hour = calendar.MonthCellHour
	}
	return calendar.Cell{Date: day, Hour: hour}
}

// cellMeetings returns the meetings starting in the cursor cell.
func (m Model) cellMeetings() []meeting.Meeting {
	c := m.cursorCell()
	return calendar.MeetingsForCell(m.state.Meetings, c.Date, c.Hour, m.state.View)
}

// focusAnchor puts the cursor on the anchor date.
func (m *Model) focusAnchor() {
	for i, d := range m.days() {
		if dateutil.SameDay(d, m.state.Anchor) {
			m.cursor.Day = i
			break
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.days())
	m.cursor.Day = max(0, min(m.cursor.Day, n-1))
	m.cursor.Hour = max(0, min(m.cursor.Hour, calendar.HoursPerDay-1))
}

// visibleHours is the number of hour rows the day and week grids can show.
func (m Model) visibleHours() int {
	h := m.height - headerLines - footerLines - 1 // day header row
	if h < 1 {
		return calendar.HoursPerDay
	}
	return min(h, calendar.HoursPerDay)
}

func (m *Model) ensureCursorVisible() {
	rows := m.visibleHours()
	if m.cursor.Hour < m.scrollOffset {
		m.scrollOffset = m.cursor.Hour
	}
	if m.cursor.Hour >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor.Hour - rows + 1
	}
	m.scrollOffset = max(0, min(m.scrollOffset, calendar.HoursPerDay-rows))
}

func (m Model) today() time.Time {
	return dateutil.TruncateToDay(m.now())
}
