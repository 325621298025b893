// Package calendar implements the scheduling core: slot addressing, meeting
// placement, relocation and navigation, plus the State reducer that ties them
// together.
package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// Errors.
var (
	ErrMalformedSlotID  = errors.New("malformed slot id")
	ErrInvalidDirection = errors.New("direction must be -1 or +1")
	ErrUnknownView      = errors.New("view must be 'day', 'week' or 'month'")
	ErrUnknownPolicy    = errors.New("relocation must be 'hours' or 'exact'")
	ErrUnknownLocale    = errors.New("locale must be 'en' or 'fr'")
	ErrNoDraft          = errors.New("no draft is open")
)

// View is the calendar layout.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Views lists every view in switcher order.
var Views = []View{ViewDay, ViewWeek, ViewMonth}

// Valid returns true if v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	default:
		return false
	}
}

// ParseView parses "day", "week" or "month", case-insensitively.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}
