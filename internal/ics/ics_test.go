package ics

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/agenda/internal/meeting"
)

func crlf(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}

const fixture = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:sync-1
DTSTAMP:20240301T000000Z
DTSTART:20240319T100000Z
DTEND:20240319T110000Z
SUMMARY:Team sync
LOCATION:Room 4
DESCRIPTION:Weekly\, short
X-AGENDA-FIRST-NAME:Ada
X-AGENDA-LAST-NAME:Lovelace
END:VEVENT
BEGIN:VEVENT
UID:floating-1
DTSTAMP:20240301T000000Z
DTSTART:20240320T140000
SUMMARY:No end
END:VEVENT
END:VCALENDAR
`

func TestDecode(t *testing.T) {
	got, err := Decode(strings.NewReader(crlf(fixture)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d meetings, want 2", len(got))
	}

	sync := got[0]
	if sync.ID != "sync-1" || sync.Title != "Team sync" || sync.Location != "Room 4" {
		t.Errorf("unexpected meeting %+v", sync)
	}
	if sync.Description != "Weekly, short" {
		t.Errorf("description: got %q", sync.Description)
	}
	if sync.FirstName != "Ada" || sync.LastName != "Lovelace" {
		t.Errorf("organizer: got %q %q", sync.FirstName, sync.LastName)
	}
	if want := time.Date(2024, 3, 19, 10, 0, 0, 0, time.UTC); !sync.Start.Equal(want) {
		t.Errorf("start: got %v, want %v", sync.Start, want)
	}
	if sync.Start.Location() != time.Local {
		t.Errorf("start not converted to local time: %v", sync.Start.Location())
	}
	if sync.Duration() != time.Hour {
		t.Errorf("duration: got %v", sync.Duration())
	}

	floating := got[1]
	if want := time.Date(2024, 3, 20, 14, 0, 0, 0, time.Local); !floating.Start.Equal(want) {
		t.Errorf("floating start: got %v, want %v", floating.Start, want)
	}
	if floating.Duration() != defaultDuration {
		t.Errorf("missing DTEND: got duration %v", floating.Duration())
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		events  string
		wantErr error
	}{
		{
			name: "end before start",
			events: `BEGIN:VEVENT
UID:bad
DTSTAMP:20240301T000000Z
DTSTART:20240319T110000Z
DTEND:20240319T100000Z
SUMMARY:Backwards
END:VEVENT
`,
			wantErr: meeting.ErrInvalidMeetingRange,
		},
		{
			name: "missing start",
			events: `BEGIN:VEVENT
UID:nostart
DTSTAMP:20240301T000000Z
SUMMARY:Nowhen
END:VEVENT
`,
			wantErr: ErrInvalidEvent,
		},
		{
			name: "missing title",
			events: `BEGIN:VEVENT
UID:notitle
DTSTAMP:20240301T000000Z
DTSTART:20240319T100000Z
DTEND:20240319T110000Z
END:VEVENT
`,
			wantErr: meeting.ErrEmptyTitle,
		},
		{
			name: "duplicate uid",
			events: `BEGIN:VEVENT
UID:dup
DTSTAMP:20240301T000000Z
DTSTART:20240319T100000Z
DTEND:20240319T110000Z
SUMMARY:One
END:VEVENT
BEGIN:VEVENT
UID:dup
DTSTAMP:20240301T000000Z
DTSTART:20240320T100000Z
DTEND:20240320T110000Z
SUMMARY:Two
END:VEVENT
`,
			wantErr: meeting.ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := "BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//test//EN\n" + tt.events + "END:VCALENDAR\n"
			_, err := Decode(strings.NewReader(crlf(data)))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	meetings := meeting.Collection{
		{
			ID:          "a",
			Title:       "Planning",
			Start:       time.Date(2024, 3, 19, 9, 0, 0, 0, time.Local),
			End:         time.Date(2024, 3, 19, 10, 30, 0, 0, time.Local),
			Location:    "Room 1",
			FirstName:   "Grace",
			LastName:    "Hopper",
			Description: "agenda; notes, and more",
		},
		{
			ID:    "b",
			Title: "Late call",
			Start: time.Date(2024, 3, 19, 23, 0, 0, 0, time.Local),
			End:   time.Date(2024, 3, 20, 1, 0, 0, 0, time.Local),
		},
	}

	var buf bytes.Buffer
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := Encode(&buf, meetings, now); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"BEGIN:VCALENDAR", "PRODID:" + productID, "UID:a", "X-AGENDA-LAST-NAME:Hopper"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Count(out, "LOCATION:") != 1 || strings.Count(out, "X-AGENDA-FIRST-NAME:") != 1 {
		t.Error("empty optional fields should be omitted")
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(meetings) {
		t.Fatalf("got %d meetings, want %d", len(got), len(meetings))
	}
	for i := range meetings {
		want, have := meetings[i], got[i]
		if have.ID != want.ID || have.Title != want.Title || have.Location != want.Location ||
			have.FirstName != want.FirstName || have.LastName != want.LastName || have.Description != want.Description {
			t.Errorf("meeting %d: got %+v, want %+v", i, have, want)
		}
		if !have.Start.Equal(want.Start) || !have.End.Equal(want.End) {
			t.Errorf("meeting %d: got %v-%v, want %v-%v", i, have.Start, have.End, want.Start, want.End)
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, time.Now()); !errors.Is(err, ErrNoMeetings) {
		t.Errorf("got error %v, want %v", err, ErrNoMeetings)
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ics")

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("missing file: unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("missing file: got %d meetings", len(got))
	}

	meetings := meeting.Collection{{
		ID:    "x",
		Title: "Review",
		Start: time.Date(2024, 3, 21, 15, 0, 0, 0, time.Local),
		End:   time.Date(2024, 3, 21, 16, 0, 0, 0, time.Local),
	}}
	if err := WriteFile(path, meetings, time.Now()); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 1 || got[0].ID != "x" || !got[0].Start.Equal(meetings[0].Start) {
		t.Errorf("got %+v", got)
	}
}

func TestEncodeDecode_ZeroLength(t *testing.T) {
	// whole-hour relocation of a sub-hour meeting leaves end equal to start
	start := time.Date(2024, 3, 20, 14, 0, 0, 0, time.Local)
	meetings := meeting.Collection{{ID: "z", Title: "Quick check", Start: start, End: start}}

	var buf bytes.Buffer
	if err := Encode(&buf, meetings, time.Now()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Duration() != 0 {
		t.Errorf("got %+v", got)
	}
}
