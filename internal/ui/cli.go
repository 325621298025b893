// Package ui implements the agenda command line.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	now    func() time.Time

	debug bool   // Enable debug logging
	file  string // iCalendar session file
	view  string
	date  string
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "agenda",
		Short: "A terminal calendar for placing and moving meetings",
		Long: `Agenda shows meetings on a day, week or month grid.

Meetings live in memory for the session. Pass --file to load an
iCalendar file on start and to save back to it.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	flags := a.root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	flags.StringVarP(&a.file, "file", "f", "", "iCalendar session file")
	flags.StringVar(&a.view, "view", "", "View: day, week or month (default from config)")
	flags.StringVar(&a.date, "date", "today", "Anchor date: YYYY-MM-DD, today, tomorrow, monday, next-friday...")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.slotsCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.summaryCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "agenda %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) runTUI() error {
	state, err := a.loadState()
	if err != nil {
		return err
	}

	opts := []tui.ModelOption{
		tui.WithAnchor(state.Anchor),
		tui.WithView(state.View),
		tui.WithMeetings(state.Meetings),
	}
	if a.file != "" {
		opts = append(opts, tui.WithSessionPath(a.file))
	}
	return tui.RunWithDebug(a.config, a.debug, opts...)
}

// resolveView returns the --view flag or the configured default.
func (a *App) resolveView() (calendar.View, error) {
	if a.view == "" {
		return a.config.View(), nil
	}
	return calendar.ParseView(a.view)
}

// resolveAnchor parses the --date flag relative to now.
func (a *App) resolveAnchor() (time.Time, error) {
	if a.date == "" {
		return dateutil.TruncateToDay(a.now()), nil
	}
	t, err := dateutil.ParseRelativeDate(a.date, a.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("--date: %w", err)
	}
	return t, nil
}

// loadState builds the calendar state from flags, config and the session
// file.
func (a *App) loadState() (calendar.State, error) {
	view, err := a.resolveView()
	if err != nil {
		return calendar.State{}, err
	}
	anchor, err := a.resolveAnchor()
	if err != nil {
		return calendar.State{}, err
	}

	state := calendar.NewState(anchor, view)
	state.Policy = a.config.Policy()
	if a.file != "" {
		meetings, err := readSession(a.file)
		if err != nil {
			return calendar.State{}, err
		}
		state.Meetings = meetings
	}
	return state, nil
}
