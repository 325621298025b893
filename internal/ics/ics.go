// Package ics reads and writes meeting collections as iCalendar data.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/emersion/go-ical"

	"github.com/javiermolinar/agenda/internal/meeting"
)

const productID = "-//agenda//agenda calendar//EN"

// Organizer name parts have no standard property.
const (
	propFirstName = "X-AGENDA-FIRST-NAME"
	propLastName  = "X-AGENDA-LAST-NAME"
)

// defaultDuration applies to events without DTEND.
const defaultDuration = time.Hour

// Errors.
var (
	ErrInvalidEvent = errors.New("invalid event")
	ErrNoMeetings   = errors.New("no meetings to export")
)

// Encode writes meetings as a single VCALENDAR. Times are written in UTC;
// now stamps every event. A calendar needs at least one component, so an
// empty collection returns ErrNoMeetings.
func Encode(w io.Writer, meetings []meeting.Meeting, now time.Time) error {
	if len(meetings) == 0 {
		return ErrNoMeetings
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, m := range meetings {
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, m.ID)
		ev.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeStart, m.Start.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeEnd, m.End.UTC())
		ev.Props.SetText(ical.PropSummary, m.Title)
		setOptionalText(ev.Props, ical.PropLocation, m.Location)
		setOptionalText(ev.Props, ical.PropDescription, m.Description)
		setOptionalText(ev.Props, propFirstName, m.FirstName)
		setOptionalText(ev.Props, propLastName, m.LastName)
		cal.Children = append(cal.Children, ev.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

func setOptionalText(props ical.Props, name, value string) {
	if value != "" {
		props.SetText(name, value)
	}
}

// Decode reads every VEVENT from r, across any number of VCALENDAR
// objects, in file order. Times are converted to local time. Events without
// a UID get a generated id.
func Decode(r io.Reader) (meeting.Collection, error) {
	dec := ical.NewDecoder(r)
	var out meeting.Collection
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			m, err := parseEvent(comp)
			if err != nil {
				return nil, err
			}
			if out, err = out.Add(m); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func parseEvent(comp *ical.Component) (meeting.Meeting, error) {
	m := meeting.Meeting{
		ID:          text(comp, ical.PropUID),
		Title:       text(comp, ical.PropSummary),
		Location:    text(comp, ical.PropLocation),
		Description: text(comp, ical.PropDescription),
		FirstName:   text(comp, propFirstName),
		LastName:    text(comp, propLastName),
	}
	if m.ID == "" {
		m.ID = meeting.NewID()
	}

	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return meeting.Meeting{}, fmt.Errorf("%w %q: missing DTSTART", ErrInvalidEvent, m.Title)
	}
	start, err := startProp.DateTime(time.Local)
	if err != nil {
		return meeting.Meeting{}, fmt.Errorf("%w %q: DTSTART: %v", ErrInvalidEvent, m.Title, err)
	}
	m.Start = start.In(time.Local)

	m.End = m.Start.Add(defaultDuration)
	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		end, err := endProp.DateTime(time.Local)
		if err != nil {
			return meeting.Meeting{}, fmt.Errorf("%w %q: DTEND: %v", ErrInvalidEvent, m.Title, err)
		}
		m.End = end.In(time.Local)
	}

	if err := m.Validate(); err != nil {
		return meeting.Meeting{}, fmt.Errorf("%w %q: %w", ErrInvalidEvent, m.Title, err)
	}
	return m, nil
}

func text(comp *ical.Component, name string) string {
	prop := comp.Props.Get(name)
	if prop == nil {
		return ""
	}
	s, err := prop.Text()
	if err != nil {
		return prop.Value
	}
	return s
}

// ReadFile decodes the session file at path. A missing file is an empty
// session.
func ReadFile(path string) (meeting.Collection, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	meetings, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return meetings, nil
}

// WriteFile encodes meetings to path, replacing its contents.
func WriteFile(path string, meetings []meeting.Meeting, now time.Time) error {
	var buf bytes.Buffer
	if err := Encode(&buf, meetings, now); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
