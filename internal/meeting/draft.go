package meeting

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// Field identifies one input of the creation form.
type Field int

const (
	FieldTitle Field = iota
	FieldStart
	FieldEnd
	FieldLocation
	FieldFirstName
	FieldLastName
	FieldDescription
)

// Fields lists the form inputs in display order.
var Fields = []Field{
	FieldTitle,
	FieldStart,
	FieldEnd,
	FieldLocation,
	FieldFirstName,
	FieldLastName,
	FieldDescription,
}

var fieldLabels = map[Field]string{
	FieldTitle:       "title",
	FieldStart:       "start",
	FieldEnd:         "end",
	FieldLocation:    "location",
	FieldFirstName:   "first name",
	FieldLastName:    "last name",
	FieldDescription: "description",
}

// String returns the field's display label.
func (f Field) String() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Required reports whether the field must be non-empty on submission.
func (f Field) Required() bool {
	return f != FieldDescription
}

// Draft is the text-based state of the creation form.
// Start and End hold local "YYYY-MM-DDTHH:MM" values.
type Draft struct {
	Title       string
	Start       string
	End         string
	Location    string
	FirstName   string
	LastName    string
	Description string
}

// NewDraftForSlot returns a draft prefilled for a one-hour meeting starting
// at hour:00 on date.
func NewDraftForSlot(date time.Time, hour int) Draft {
	start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	return Draft{
		Start: dateutil.FormatLocalDateTime(start),
		End:   dateutil.FormatLocalDateTime(start.Add(time.Hour)),
	}
}

// Get returns the raw value of a field.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldStart:
		return d.Start
	case FieldEnd:
		return d.End
	case FieldLocation:
		return d.Location
	case FieldFirstName:
		return d.FirstName
	case FieldLastName:
		return d.LastName
	case FieldDescription:
		return d.Description
	default:
		return ""
	}
}

// With returns a copy of d with field f set to value.
func (d Draft) With(f Field, value string) Draft {
	switch f {
	case FieldTitle:
		d.Title = value
	case FieldStart:
		d.Start = value
	case FieldEnd:
		d.End = value
	case FieldLocation:
		d.Location = value
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldDescription:
		d.Description = value
	}
	return d
}

// Parse validates the draft and converts it into a Meeting with an id from
// newID. Missing required fields are reported before time errors.
func (d Draft) Parse(newID IDFunc) (Meeting, error) {
	if strings.TrimSpace(d.Title) == "" {
		return Meeting{}, ErrEmptyTitle
	}
	for _, f := range Fields {
		if f == FieldTitle || !f.Required() {
			continue
		}
		if strings.TrimSpace(d.Get(f)) == "" {
			return Meeting{}, fmt.Errorf("%w: %s", ErrMissingField, f)
		}
	}

	start, err := dateutil.ParseLocalDateTime(d.Start)
	if err != nil {
		return Meeting{}, fmt.Errorf("start: %w", ErrInvalidDateTime)
	}
	end, err := dateutil.ParseLocalDateTime(d.End)
	if err != nil {
		return Meeting{}, fmt.Errorf("end: %w", ErrInvalidDateTime)
	}
	if !end.After(start) {
		return Meeting{}, ErrInvalidMeetingRange
	}

	if newID == nil {
		newID = NewID
	}
	return Meeting{
		ID:          newID(),
		Title:       strings.TrimSpace(d.Title),
		Start:       start,
		End:         end,
		Location:    strings.TrimSpace(d.Location),
		FirstName:   strings.TrimSpace(d.FirstName),
		LastName:    strings.TrimSpace(d.LastName),
		Description: strings.TrimSpace(d.Description),
	}, nil
}
