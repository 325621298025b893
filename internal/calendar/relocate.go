package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/agenda/internal/meeting"
)

// DurationPolicy decides how a relocated meeting keeps its length.
type DurationPolicy string

const (
	// DurationWholeHours keeps the whole-hour part of the duration. A
	// 90 minute meeting becomes 60 minutes; a 30 minute one ends where it
	// starts.
	DurationWholeHours DurationPolicy = "hours"
	// DurationExact keeps end minus start unchanged.
	DurationExact DurationPolicy = "exact"
)

// Valid returns true if p is a known policy.
func (p DurationPolicy) Valid() bool {
	return p == DurationWholeHours || p == DurationExact
}

// ParseDurationPolicy parses "hours" or "exact".
func ParseDurationPolicy(s string) (DurationPolicy, error) {
	p := DurationPolicy(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
	return p, nil
}

// Relocate moves m so it starts at target's date and hour. Every field
// other than Start and End is kept.
func Relocate(m meeting.Meeting, target SlotID, policy DurationPolicy) (meeting.Meeting, error) {
	date, hour, err := ParseSlotID(target)
	if err != nil {
		return m, err
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	switch policy {
	case DurationExact:
		m.End = start.Add(m.End.Sub(m.Start))
	default:
		hours := int(m.End.Sub(m.Start) / time.Hour)
		// time.Date normalizes hours past 23 into the following days
		m.End = time.Date(date.Year(), date.Month(), date.Day(), hour+hours, 0, 0, 0, date.Location())
	}
	m.Start = start
	return m, nil
}

// RelocateIn returns a new collection where the meeting with id is moved to
// target. Other meetings are carried over unchanged. On error the input
// collection is returned.
func RelocateIn(c meeting.Collection, id string, target SlotID, policy DurationPolicy) (meeting.Collection, error) {
	if _, _, err := ParseSlotID(target); err != nil {
		return c, err
	}
	m, ok := c.Find(id)
	if !ok {
		return c, fmt.Errorf("%w: %s", meeting.ErrNotFound, id)
	}
	moved, err := Relocate(m, target, policy)
	if err != nil {
		return c, err
	}
	return c.Replace(moved)
}
