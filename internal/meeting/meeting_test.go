package meeting

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 3, day, hour, minute, 0, 0, time.Local)
}

// sequence returns an IDFunc handing out ids in order, then "id-N".
func sequence(ids ...string) IDFunc {
	n := 0
	return func() string {
		n++
		if n <= len(ids) {
			return ids[n-1]
		}
		return fmt.Sprintf("id-%d", n)
	}
}

func TestMeeting_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       Meeting
		wantErr error
	}{
		{
			name: "valid",
			m:    Meeting{Title: "Standup", Start: at(19, 9, 0), End: at(19, 9, 15)},
		},
		{
			name:    "blank title",
			m:       Meeting{Title: "  ", Start: at(19, 9, 0), End: at(19, 10, 0)},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "zero length",
			m:    Meeting{Title: "Zero", Start: at(19, 9, 0), End: at(19, 9, 0)},
		},
		{
			name:    "end before start",
			m:       Meeting{Title: "Backwards", Start: at(19, 10, 0), End: at(19, 9, 0)},
			wantErr: ErrInvalidMeetingRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMeeting_Helpers(t *testing.T) {
	m := Meeting{
		Title:     "Review",
		Start:     at(19, 14, 0),
		End:       at(19, 15, 30),
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	if got := m.Duration(); got != 90*time.Minute {
		t.Errorf("Duration: got %v, want 90m", got)
	}
	if got := m.Organizer(); got != "Ada Lovelace" {
		t.Errorf("Organizer: got %q", got)
	}
	if got := m.TimeRange(); got != "14:00-15:30" {
		t.Errorf("TimeRange: got %q", got)
	}

	m.FirstName = ""
	if got := m.Organizer(); got != "Lovelace" {
		t.Errorf("Organizer without first name: got %q", got)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
