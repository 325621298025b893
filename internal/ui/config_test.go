package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/agenda/internal/config"
)

func TestRunConfigInteractive_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda", "config.toml")

	var out bytes.Buffer
	if err := runConfigInteractive(path, strings.NewReader("n\n"), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	for _, want := range []string{"Created " + path, "default_view   = week", "theme          = mocha"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunConfigInteractive_Edit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	// invalid answers are asked again; empty answers keep the current value
	input := strings.Join([]string{"y", "year", "Month", "", "exact", "25", "7", "latte"}, "\n") + "\n"
	var out bytes.Buffer
	if err := runConfigInteractive(path, strings.NewReader(input), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `Invalid value "year"`) {
		t.Errorf("expected invalid view message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), `Invalid hour "25"`) {
		t.Errorf("expected invalid hour message:\n%s", out.String())
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if cfg.Calendar.DefaultView != "month" {
		t.Errorf("default_view = %q, want month", cfg.Calendar.DefaultView)
	}
	if cfg.Calendar.Locale != "en" {
		t.Errorf("locale = %q, want en", cfg.Calendar.Locale)
	}
	if cfg.Calendar.Relocation != "exact" {
		t.Errorf("relocation = %q, want exact", cfg.Calendar.Relocation)
	}
	if cfg.Calendar.DayStartHour != 7 {
		t.Errorf("day_start_hour = %d, want 7", cfg.Calendar.DayStartHour)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("theme = %q, want latte", cfg.UI.Theme)
	}
}
