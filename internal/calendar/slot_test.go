package calendar

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNewSlotID(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		hour int
		want SlotID
	}{
		{name: "single digit hour", date: day(2024, 3, 20), hour: 9, want: "2024-03-20-9"},
		{name: "two digit hour", date: day(2024, 3, 20), hour: 14, want: "2024-03-20-14"},
		{name: "midnight", date: day(2024, 1, 1), hour: 0, want: "2024-01-01-0"},
		{name: "time of day ignored", date: time.Date(2024, 12, 31, 22, 15, 0, 0, time.Local), hour: 23, want: "2024-12-31-23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSlotID(tt.date, tt.hour); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSlotID_RoundTrip(t *testing.T) {
	start := day(2023, 12, 25)
	for i := 0; i < 70; i++ {
		date := start.AddDate(0, 0, i)
		for hour := 0; hour < 24; hour++ {
			id := NewSlotID(date, hour)
			gotDate, gotHour, err := ParseSlotID(id)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", id, err)
			}
			if !gotDate.Equal(date) || gotHour != hour {
				t.Fatalf("%s: got (%v, %d), want (%v, %d)", id, gotDate, gotHour, date, hour)
			}
		}
	}
}

func TestParseSlotID_LeapDay(t *testing.T) {
	date, hour, err := ParseSlotID("2024-02-29-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !date.Equal(day(2024, 2, 29)) || hour != 14 {
		t.Errorf("got (%v, %d)", date, hour)
	}
}

func TestParseSlotID_Malformed(t *testing.T) {
	tests := []struct {
		name string
		id   SlotID
	}{
		{name: "free text", id: "not-a-slot"},
		{name: "empty", id: ""},
		{name: "date only", id: "2024-03-20"},
		{name: "trailing dash", id: "2024-03-20-"},
		{name: "hour 24", id: "2024-03-20-24"},
		{name: "hour 99", id: "2024-03-20-99"},
		{name: "negative hour", id: "2024-03-20--1"},
		{name: "padded hour", id: "2024-03-20-09"},
		{name: "three digit hour", id: "2024-03-20-100"},
		{name: "signed hour", id: "2024-03-20-+9"},
		{name: "invalid day", id: "2024-02-30-9"},
		{name: "non leap february 29", id: "2023-02-29-9"},
		{name: "invalid month", id: "2024-13-01-9"},
		{name: "unpadded month", id: "2024-3-20-9"},
		{name: "wrong separator", id: "2024-03-20T9"},
		{name: "slashes", id: "2024/03/20-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseSlotID(tt.id)
			if !errors.Is(err, ErrMalformedSlotID) {
				t.Errorf("got error %v, want %v", err, ErrMalformedSlotID)
			}
		})
	}
}

func TestCell(t *testing.T) {
	c := Cell{Date: day(2024, 3, 20), Hour: 14}
	if c.ID() != "2024-03-20-14" {
		t.Errorf("ID: got %q", c.ID())
	}
	if want := time.Date(2024, 3, 20, 14, 0, 0, 0, time.Local); !c.Start().Equal(want) {
		t.Errorf("Start: got %v, want %v", c.Start(), want)
	}
}
