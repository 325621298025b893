// Package meeting defines the meeting domain types for agenda.
package meeting

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrMissingField        = errors.New("required field is empty")
	ErrInvalidDateTime     = errors.New("date-time must be in YYYY-MM-DDTHH:MM format")
	ErrInvalidMeetingRange = errors.New("end must be after start")
)

// Domain errors.
var (
	ErrNotFound    = errors.New("meeting not found")
	ErrDuplicateID = errors.New("meeting id already in use")
)

// Meeting is a scheduled block on the calendar.
// Optional text fields use the empty string for "absent".
type Meeting struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	FirstName   string
	LastName    string
	Description string
}

// Validate checks the invariants every stored meeting holds. A zero-length
// meeting is valid: whole-hour relocation turns sub-hour meetings into one.
func (m Meeting) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrEmptyTitle
	}
	if m.End.Before(m.Start) {
		return ErrInvalidMeetingRange
	}
	return nil
}

// Duration returns end minus start.
func (m Meeting) Duration() time.Duration {
	return m.End.Sub(m.Start)
}

// Organizer returns "First Last", or whichever part is set.
func (m Meeting) Organizer() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// TimeRange formats the meeting as "HH:MM-HH:MM".
func (m Meeting) TimeRange() string {
	return m.Start.Format("15:04") + "-" + m.End.Format("15:04")
}
