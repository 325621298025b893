// Package tui provides the terminal user interface for agenda.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/agenda/internal/tui/theme"
)

const (
	timeColumnWidth = 6 // "09:00 "
	minColWidth     = 8
	monthCellLines  = 3 // minimum lines per month cell
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Header
	TitleStyle     lipgloss.Style
	LabelStyle     lipgloss.Style
	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style

	// Day and week grid
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style
	TimeColumnStyle     lipgloss.Style
	EmptyCellStyle      lipgloss.Style
	CursorStyle         lipgloss.Style
	MeetingStyle        lipgloss.Style
	MeetingAltStyle     lipgloss.Style // adjacent blocks in one column
	MeetingPastStyle    lipgloss.Style
	SpillStyle          lipgloss.Style // meetings running past midnight
	MovePreviewStyle    lipgloss.Style

	// Month grid
	MonthDayStyle        lipgloss.Style
	MonthDayOutsideStyle lipgloss.Style
	MonthDayNumberStyle  lipgloss.Style
	MonthTodayStyle      lipgloss.Style
	MonthMeetingStyle    lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalLabelFocusedStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style

	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(palette.Accent).
		Padding(0, 1)

	s.LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.Bg).
		Padding(0, 1)

	s.TabStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg).
		Padding(0, 1)

	s.TabActiveStyle = s.TabStyle.
		Foreground(palette.Fg).
		Background(palette.BgSelection).
		Bold(true)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(palette.Today)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg).
		Width(timeColumnWidth)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.BgHighlight)

	s.CursorStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.BgSelection)

	s.MeetingStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnMeeting).
		Background(palette.MeetingBg)

	s.MeetingAltStyle = s.MeetingStyle.
		Background(palette.MeetingBgAlt)

	s.MeetingPastStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.MeetingPastBg)

	s.SpillStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSpill).
		Background(palette.SpillBg)

	s.MovePreviewStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnWarning).
		Background(palette.Warning)

	s.MonthDayStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.BgHighlight)

	s.MonthDayOutsideStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.OutsideBg)

	s.MonthDayNumberStyle = lipgloss.NewStyle().
		Bold(true)

	s.MonthTodayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnToday).
		Background(palette.Today)

	s.MonthMeetingStyle = lipgloss.NewStyle().
		Foreground(palette.Meeting)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Warning).
		Background(palette.Bg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	modal := palette.Modal
	s.ModalBgColor = modal.Bg
	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		BorderBackground(modal.Bg).
		Background(modal.Bg).
		Padding(1, 2)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Border).
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg).
		Width(12)

	s.ModalLabelFocusedStyle = s.ModalLabelStyle.
		Foreground(modal.Border).
		Bold(true)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.Border)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalHintStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(modal.Error).
		Background(modal.Bg)

	s.AppStyle = lipgloss.NewStyle().
		Background(palette.Bg)

	return s
}
