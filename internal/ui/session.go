package ui

import (
	"errors"
	"fmt"

	"github.com/javiermolinar/agenda/internal/ics"
	"github.com/javiermolinar/agenda/internal/meeting"
)

var errNoSession = errors.New("no session file: pass --file")

func readSession(path string) (meeting.Collection, error) {
	meetings, err := ics.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return meetings, nil
}

// requireSession returns the meetings of the --file session, failing when
// no file was given.
func (a *App) requireSession() (meeting.Collection, error) {
	if a.file == "" {
		return nil, errNoSession
	}
	return readSession(a.file)
}

func (a *App) saveSession(meetings meeting.Collection) error {
	if err := ics.WriteFile(a.file, meetings, a.now()); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
