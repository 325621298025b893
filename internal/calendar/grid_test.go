package calendar

import (
	"testing"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

func TestGridFor_Day(t *testing.T) {
	anchor := time.Date(2024, 3, 19, 15, 30, 0, 0, time.Local)
	cells := GridFor(ViewDay, anchor)
	if len(cells) != 24 {
		t.Fatalf("got %d cells, want 24", len(cells))
	}
	for i, c := range cells {
		if !c.Date.Equal(day(2024, 3, 19)) || c.Hour != i {
			t.Errorf("cell %d: got (%v, %d)", i, c.Date, c.Hour)
		}
	}
}

func TestGridFor_Week(t *testing.T) {
	monday := day(2024, 3, 18)
	for offset := 0; offset < 7; offset++ {
		anchor := monday.AddDate(0, 0, offset).Add(13 * time.Hour)
		t.Run(anchor.Weekday().String(), func(t *testing.T) {
			cells := GridFor(ViewWeek, anchor)
			if len(cells) != 7*24 {
				t.Fatalf("got %d cells, want %d", len(cells), 7*24)
			}
			for i, c := range cells {
				wantDate := monday.AddDate(0, 0, i/24)
				if !c.Date.Equal(wantDate) || c.Hour != i%24 {
					t.Fatalf("cell %d: got (%v, %d), want (%v, %d)", i, c.Date, c.Hour, wantDate, i%24)
				}
			}
			if cells[0].Date.Weekday() != time.Monday {
				t.Errorf("first day is %v", cells[0].Date.Weekday())
			}
			if cells[len(cells)-1].Date.Weekday() != time.Sunday {
				t.Errorf("last day is %v", cells[len(cells)-1].Date.Weekday())
			}
		})
	}
}

func TestGridFor_Month(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			anchor := day(year, month, 15)
			t.Run(anchor.Format("2006-01"), func(t *testing.T) {
				cells := GridFor(ViewMonth, anchor)
				if len(cells)%7 != 0 {
					t.Fatalf("got %d cells, not a multiple of 7", len(cells))
				}
				if cells[0].Date.Weekday() != time.Monday {
					t.Errorf("grid starts on %v", cells[0].Date.Weekday())
				}

				covered := make(map[int]bool)
				for _, c := range cells {
					if c.Hour != MonthCellHour {
						t.Fatalf("cell %v has hour %d", c.Date, c.Hour)
					}
					if c.Date.Month() == month {
						covered[c.Date.Day()] = true
					}
				}
				if n := dateutil.DaysInMonth(year, month, time.Local); len(covered) != n {
					t.Errorf("covered %d days, want %d", len(covered), n)
				}
			})
		}
	}
}

func TestGridFor_MonthCellIDs(t *testing.T) {
	cells := GridFor(ViewMonth, day(2024, 3, 1))
	if cells[0].ID() != "2024-02-26-9" {
		t.Errorf("first cell: got %q", cells[0].ID())
	}
	if last := cells[len(cells)-1]; last.ID() != "2024-03-31-9" {
		t.Errorf("last cell: got %q", last.ID())
	}
}

func TestGridFor_UnknownView(t *testing.T) {
	if cells := GridFor(View("year"), day(2024, 3, 1)); cells != nil {
		t.Errorf("got %d cells, want nil", len(cells))
	}
}

func TestWeeks(t *testing.T) {
	rows := Weeks(Days(ViewMonth, day(2024, 9, 10)))
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	for i, row := range rows {
		if len(row) != 7 {
			t.Errorf("row %d has %d days", i, len(row))
		}
		if row[0].Weekday() != time.Monday {
			t.Errorf("row %d starts on %v", i, row[0].Weekday())
		}
	}
}
