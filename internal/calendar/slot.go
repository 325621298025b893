package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// MonthCellHour is the hour a month-view cell stands for. Creating a meeting
// from a month cell starts it at this hour.
const MonthCellHour = 9

// SlotID addresses one grid cell as "YYYY-MM-DD-H", H being the unpadded
// hour 0-23.
type SlotID string

// NewSlotID encodes a date and hour. Only the calendar date of date is used.
func NewSlotID(date time.Time, hour int) SlotID {
	return SlotID(fmt.Sprintf("%s-%d", date.Format(dateutil.DateLayout), hour))
}

// ParseSlotID decodes id into local midnight of its date and the hour.
// Only the exact form NewSlotID produces is accepted.
func ParseSlotID(id SlotID) (time.Time, int, error) {
	s := string(id)
	const datePart = len(dateutil.DateLayout)
	if len(s) < datePart+2 || len(s) > datePart+3 || s[datePart] != '-' {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrMalformedSlotID, s)
	}

	date, err := time.ParseInLocation(dateutil.DateLayout, s[:datePart], time.Local)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrMalformedSlotID, s)
	}

	hourText := s[datePart+1:]
	for _, r := range hourText {
		if r < '0' || r > '9' {
			return time.Time{}, 0, fmt.Errorf("%w: %q", ErrMalformedSlotID, s)
		}
	}
	if len(hourText) > 1 && hourText[0] == '0' {
		return time.Time{}, 0, fmt.Errorf("%w: %q: hour has a leading zero", ErrMalformedSlotID, s)
	}
	hour, err := strconv.Atoi(hourText)
	if err != nil || hour > 23 {
		return time.Time{}, 0, fmt.Errorf("%w: %q: hour out of range", ErrMalformedSlotID, s)
	}
	return date, hour, nil
}

// Cell is one addressable grid slot.
type Cell struct {
	Date time.Time // local midnight
	Hour int
}

// ID returns the cell's slot id.
func (c Cell) ID() SlotID {
	return NewSlotID(c.Date, c.Hour)
}

// Start returns the instant the cell begins.
func (c Cell) Start() time.Time {
	return time.Date(c.Date.Year(), c.Date.Month(), c.Date.Day(), c.Hour, 0, 0, 0, c.Date.Location())
}
