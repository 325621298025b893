package meeting

import (
	"errors"
	"testing"
)

func sampleCollection() Collection {
	return Collection{
		{ID: "a", Title: "Standup", Start: at(19, 9, 0), End: at(19, 9, 30)},
		{ID: "b", Title: "Lunch", Start: at(19, 12, 0), End: at(19, 13, 0)},
		{ID: "c", Title: "Retro", Start: at(21, 16, 0), End: at(21, 17, 0)},
	}
}

func TestCollection_Find(t *testing.T) {
	c := sampleCollection()
	m, ok := c.Find("b")
	if !ok || m.Title != "Lunch" {
		t.Errorf("got %+v, %v", m, ok)
	}
	if _, ok := c.Find("zzz"); ok {
		t.Error("expected missing id to be absent")
	}
	if got := c.Index("c"); got != 2 {
		t.Errorf("Index: got %d, want 2", got)
	}
}

func TestCollection_Add(t *testing.T) {
	c := sampleCollection()
	out, err := c.Add(Meeting{ID: "d", Title: "Demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 4 || len(c) != 3 {
		t.Errorf("got lengths %d/%d, want 4/3", len(out), len(c))
	}

	_, err = c.Add(Meeting{ID: "a"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("got error %v, want %v", err, ErrDuplicateID)
	}
}

func TestCollection_Add_DoesNotAlias(t *testing.T) {
	base := make(Collection, 1, 4)
	base[0] = Meeting{ID: "a"}
	first, _ := base.Add(Meeting{ID: "b"})
	second, _ := base.Add(Meeting{ID: "c"})
	if first[1].ID != "b" || second[1].ID != "c" {
		t.Errorf("appends shared a backing array: %q %q", first[1].ID, second[1].ID)
	}
}

func TestCollection_Replace(t *testing.T) {
	c := sampleCollection()
	updated := c[1]
	updated.Title = "Long lunch"

	out, err := c.Replace(updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[1].Title != "Long lunch" {
		t.Errorf("got %q", out[1].Title)
	}
	if c[1].Title != "Lunch" {
		t.Error("original collection was modified")
	}
	for _, i := range []int{0, 2} {
		if out[i] != c[i] {
			t.Errorf("meeting %d changed: %+v", i, out[i])
		}
	}

	_, err = c.Replace(Meeting{ID: "nope"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got error %v, want %v", err, ErrNotFound)
	}
}

func TestCollection_Create(t *testing.T) {
	c := sampleCollection()

	t.Run("fresh id", func(t *testing.T) {
		out, m, err := c.Create(validDraft(), sequence("new"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID != "new" || len(out) != 4 || out[3].ID != "new" {
			t.Errorf("got %+v in %d meetings", m, len(out))
		}
		if m.Title != "Team sync" || !m.Start.Equal(at(19, 10, 0)) || !m.End.Equal(at(19, 11, 0)) {
			t.Errorf("unexpected meeting %+v", m)
		}
	})

	t.Run("colliding id is regenerated", func(t *testing.T) {
		_, m, err := c.Create(validDraft(), sequence("a", "b", "fresh"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ID != "fresh" {
			t.Errorf("got id %q, want %q", m.ID, "fresh")
		}
	})

	t.Run("generator stuck on existing id", func(t *testing.T) {
		stuck := func() string { return "a" }
		out, _, err := c.Create(validDraft(), stuck)
		if !errors.Is(err, ErrDuplicateID) {
			t.Fatalf("got error %v, want %v", err, ErrDuplicateID)
		}
		if len(out) != len(c) {
			t.Error("collection changed on error")
		}
	})

	t.Run("invalid draft", func(t *testing.T) {
		d := validDraft()
		d.End = d.Start
		out, _, err := c.Create(d, sequence("x"))
		if !errors.Is(err, ErrInvalidMeetingRange) {
			t.Fatalf("got error %v, want %v", err, ErrInvalidMeetingRange)
		}
		if len(out) != len(c) {
			t.Error("collection changed on error")
		}
	})
}

func TestCollection_Between(t *testing.T) {
	c := Collection{
		{ID: "late", Start: at(20, 18, 0), End: at(20, 19, 0)},
		{ID: "early", Start: at(20, 8, 0), End: at(20, 9, 0)},
		{ID: "outside", Start: at(22, 8, 0), End: at(22, 9, 0)},
		{ID: "first", Start: at(19, 0, 0), End: at(19, 1, 0)},
	}
	got := c.Between(at(19, 0, 0), at(21, 0, 0))
	want := []string{"first", "early", "late"}
	if len(got) != len(want) {
		t.Fatalf("got %d meetings, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}
