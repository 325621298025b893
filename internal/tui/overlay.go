package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 5
)

// OverlayModel centers modal content on an opaque box over the calendar.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes a hidden overlay.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Show makes the overlay visible.
func (o *OverlayModel) Show() { o.active = true }

// Hide hides the overlay.
func (o *OverlayModel) Hide() { o.active = false }

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the overlay background color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render splices content, centered in a filled box, over base. base is
// padded or cut to width x height first.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	content = strings.TrimRight(content, "\n")
	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	contentW := 0
	for _, line := range contentLines {
		contentW = max(contentW, lipgloss.Width(line))
	}

	boxW := min(max(contentW, overlayMinWidth), width)
	boxH := min(max(len(contentLines), overlayMinHeight), height)
	top := max(0, (height-boxH)/2)
	left := max(0, (width-boxW)/2)

	bgSeq := o.backgroundSeq()
	box := o.box(contentLines, boxW, boxH, bgSeq)
	baseLines := fitLines(base, width, height)

	for i, line := range box {
		row := top + i
		baseLine := baseLines[row]
		baseLines[row] = ansi.Cut(baseLine, 0, left) + line + ansi.Cut(baseLine, left+boxW, width)
	}
	return strings.Join(baseLines, "\n")
}

func (o OverlayModel) backgroundSeq() string {
	if o.bgColor == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
}

// box renders boxH lines of width boxW with content centered inside.
func (o OverlayModel) box(content []string, boxW, boxH int, bgSeq string) []string {
	contentH := min(len(content), boxH)
	padTop := (boxH - contentH) / 2

	blank := bgSeq + strings.Repeat(" ", boxW) + ansi.ResetStyle
	lines := make([]string, boxH)
	for i := range lines {
		lines[i] = blank
	}

	contentW := 0
	for _, line := range content[:contentH] {
		contentW = max(contentW, lipgloss.Width(line))
	}
	contentW = min(contentW, boxW)
	padLeft := (boxW - contentW) / 2
	padRight := boxW - padLeft - contentW

	for i, line := range content[:contentH] {
		w := lipgloss.Width(line)
		if w > contentW {
			line = ansi.Cut(line, 0, contentW)
			w = contentW
		}
		line += strings.Repeat(" ", contentW-w)
		line = reapplyBackground(line, bgSeq)
		lines[padTop+i] = bgSeq + strings.Repeat(" ", padLeft) + line +
			bgSeq + strings.Repeat(" ", padRight) + ansi.ResetStyle
	}
	return lines
}

// reapplyBackground restores the box background after every reset inside
// line so styled content does not punch holes through it.
func reapplyBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

// fitLines pads or cuts s to exactly height lines of width cells.
func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
