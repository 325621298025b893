package calendar

import (
	"fmt"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/meeting"
)

// State is the whole application state. It is a value: Apply returns a new
// State and never modifies the meetings slice it was given.
type State struct {
	Anchor   time.Time
	View     View
	Meetings meeting.Collection
	Draft    *meeting.Draft // non-nil while the creation form is open
	Policy   DurationPolicy
	NewID    meeting.IDFunc // nil uses meeting.NewID
}

// NewState returns a state anchored on anchor with no meetings.
func NewState(anchor time.Time, view View) State {
	return State{
		Anchor: dateutil.TruncateToDay(anchor),
		View:   view,
		Policy: DurationWholeHours,
	}
}

// Event is an input to Apply.
type Event interface {
	event()
}

// Navigate moves the anchor one view unit.
type Navigate struct{ Direction Direction }

// SwitchView changes the layout and keeps the anchor.
type SwitchView struct{ View View }

// GoTo sets the anchor.
type GoTo struct{ Date time.Time }

// OpenDraft opens the creation form prefilled for a one-hour meeting at
// Hour on Date.
type OpenDraft struct {
	Date time.Time
	Hour int
}

// OpenBlankDraft opens an empty creation form.
type OpenBlankDraft struct{}

// EditDraft replaces the open draft.
type EditDraft struct{ Draft meeting.Draft }

// SubmitDraft parses the open draft, stores the meeting and closes the form.
type SubmitDraft struct{}

// CancelDraft discards the open draft.
type CancelDraft struct{}

// Drop relocates a meeting. An empty Target means the gesture ended
// outside the grid and is ignored.
type Drop struct {
	MeetingID string
	Target    SlotID
}

func (Navigate) event()       {}
func (SwitchView) event()     {}
func (GoTo) event()           {}
func (OpenDraft) event()      {}
func (OpenBlankDraft) event() {}
func (EditDraft) event()      {}
func (SubmitDraft) event()    {}
func (CancelDraft) event()    {}
func (Drop) event()           {}

// Apply returns the state after e. On error the returned state is s.
func (s State) Apply(e Event) (State, error) {
	switch e := e.(type) {
	case Navigate:
		anchor, err := Step(s.Anchor, s.View, e.Direction)
		if err != nil {
			return s, err
		}
		s.Anchor = anchor
		return s, nil

	case SwitchView:
		if !e.View.Valid() {
			return s, fmt.Errorf("%w: %q", ErrUnknownView, e.View)
		}
		s.View = e.View
		return s, nil

	case GoTo:
		s.Anchor = dateutil.TruncateToDay(e.Date)
		return s, nil

	case OpenDraft:
		if e.Hour < 0 || e.Hour >= HoursPerDay {
			return s, fmt.Errorf("%w: hour %d", ErrMalformedSlotID, e.Hour)
		}
		d := meeting.NewDraftForSlot(e.Date, e.Hour)
		s.Draft = &d
		return s, nil

	case OpenBlankDraft:
		s.Draft = &meeting.Draft{}
		return s, nil

	case EditDraft:
		if s.Draft == nil {
			return s, ErrNoDraft
		}
		d := e.Draft
		s.Draft = &d
		return s, nil

	case SubmitDraft:
		if s.Draft == nil {
			return s, ErrNoDraft
		}
		meetings, _, err := s.Meetings.Create(*s.Draft, s.NewID)
		if err != nil {
			return s, err
		}
		s.Meetings = meetings
		s.Draft = nil
		return s, nil

	case CancelDraft:
		s.Draft = nil
		return s, nil

	case Drop:
		if e.Target == "" {
			return s, nil
		}
		meetings, err := RelocateIn(s.Meetings, e.MeetingID, e.Target, s.Policy)
		if err != nil {
			return s, err
		}
		s.Meetings = meetings
		return s, nil

	default:
		return s, fmt.Errorf("unknown event %T", e)
	}
}

// Grid returns the cells of the current view.
func (s State) Grid() []Cell {
	return GridFor(s.View, s.Anchor)
}

// Placement places the current meetings on the current grid.
func (s State) Placement() Placement {
	return Place(s.Meetings, s.Grid(), s.View)
}

// Label returns the navigation header for the current view.
func (s State) Label(f Formatter) string {
	return Label(s.Anchor, s.View, f)
}

// Visible returns the meetings starting inside the current grid, ordered
// by start time.
func (s State) Visible() meeting.Collection {
	days := Days(s.View, s.Anchor)
	if len(days) == 0 {
		return nil
	}
	return s.Meetings.Between(days[0], days[len(days)-1])
}
