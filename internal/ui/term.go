package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Meeting titles: bold cyan
	colorMeeting = color.New(color.FgCyan, color.Bold)

	// Meetings running past midnight: yellow
	colorSpill = color.New(color.FgYellow)

	// Slot ids and counts: green
	colorSlot = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMeeting(s string) string {
	return colorMeeting.Sprint(s)
}

func formatSpill(s string) string {
	return colorSpill.Sprint(s)
}

func formatSlot(s string) string {
	return colorSlot.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
