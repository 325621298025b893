package tui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/javiermolinar/agenda/internal/calendar"
)

func captureDebugLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugLog
	debugLog = newDebugLogger(&buf)
	t.Cleanup(func() { debugLog = prev })
	return &buf
}

func TestLogEvent(t *testing.T) {
	buf := captureDebugLog(t)
	s := calendar.NewState(at(19, 0, 0), calendar.ViewWeek)

	LogEvent(calendar.Navigate{Direction: calendar.Next}, s, nil)
	LogEvent(calendar.SubmitDraft{}, s, calendar.ErrNoDraft)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d records, want 2:\n%s", len(lines), buf.String())
	}

	var ok, failed map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ok); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &failed); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}

	if ok["msg"] != "event" || ok["event"] != "calendar.Navigate" || ok["anchor"] != "2024-03-19" {
		t.Errorf("unexpected record %v", ok)
	}
	if failed["msg"] != "event_failed" || failed["level"] != "WARN" || failed["error"] != calendar.ErrNoDraft.Error() {
		t.Errorf("unexpected record %v", failed)
	}
}

func TestKeyPressesAreLogged(t *testing.T) {
	buf := captureDebugLog(t)
	press(t, newTestModel(t), "y")

	out := buf.String()
	for _, want := range []string{`"msg":"key_press"`, `"key":"y"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s:\n%s", want, out)
		}
	}
}

func TestInitDebugLoggerDisabled(t *testing.T) {
	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if debugFile != nil {
		t.Error("disabled logging should not open a file")
	}
	CloseDebugLogger()
}
