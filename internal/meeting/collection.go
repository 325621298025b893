package meeting

import (
	"fmt"
	"sort"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// maxIDAttempts bounds how often Create asks for a fresh id on collision.
const maxIDAttempts = 8

// Collection is the ordered set of meetings for a session.
// Methods never modify the receiver; updates return a new slice.
type Collection []Meeting

// Index returns the position of the meeting with id, or -1.
func (c Collection) Index(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the meeting with id.
func (c Collection) Find(id string) (Meeting, bool) {
	if i := c.Index(id); i >= 0 {
		return c[i], true
	}
	return Meeting{}, false
}

// Has reports whether a meeting with id exists.
func (c Collection) Has(id string) bool {
	return c.Index(id) >= 0
}

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Add returns a new collection with m appended.
func (c Collection) Add(m Meeting) (Collection, error) {
	if c.Has(m.ID) {
		return c, fmt.Errorf("%w: %s", ErrDuplicateID, m.ID)
	}
	out := make(Collection, len(c), len(c)+1)
	copy(out, c)
	return append(out, m), nil
}

// Map returns a new collection with fn applied to every meeting.
func (c Collection) Map(fn func(Meeting) Meeting) Collection {
	out := make(Collection, len(c))
	for i, m := range c {
		out[i] = fn(m)
	}
	return out
}

// Replace returns a new collection where the meeting sharing m's id is
// swapped for m. Every other meeting is kept as is.
func (c Collection) Replace(m Meeting) (Collection, error) {
	if !c.Has(m.ID) {
		return c, fmt.Errorf("%w: %s", ErrNotFound, m.ID)
	}
	return c.Map(func(existing Meeting) Meeting {
		if existing.ID == m.ID {
			return m
		}
		return existing
	}), nil
}

// Create parses d and appends the result. The id comes from newID and is
// regenerated if it clashes with an existing meeting.
func (c Collection) Create(d Draft, newID IDFunc) (Collection, Meeting, error) {
	if newID == nil {
		newID = NewID
	}
	m, err := d.Parse(newID)
	if err != nil {
		return c, Meeting{}, err
	}
	for attempt := 1; c.Has(m.ID); attempt++ {
		if attempt >= maxIDAttempts {
			return c, Meeting{}, fmt.Errorf("%w: %s", ErrDuplicateID, m.ID)
		}
		m.ID = newID()
	}
	out, err := c.Add(m)
	if err != nil {
		return c, Meeting{}, err
	}
	return out, m, nil
}

// Between returns the meetings starting on a date from start to end
// inclusive, ordered by start time.
func (c Collection) Between(start, end time.Time) Collection {
	first := dateutil.TruncateToDay(start)
	last := dateutil.TruncateToDay(end).AddDate(0, 0, 1)
	var out Collection
	for _, m := range c {
		s := m.Start.In(first.Location())
		if !s.Before(first) && s.Before(last) {
			out = append(out, m)
		}
	}
	return out.SortedByStart()
}

// SortedByStart returns a copy ordered by start time. Ties keep their
// collection order.
func (c Collection) SortedByStart() Collection {
	out := c.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
