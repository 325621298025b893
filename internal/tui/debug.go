package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/calendar"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "agenda-debug.log"

var (
	debugLog  = slog.New(slog.NewJSONHandler(io.Discard, nil))
	debugFile *os.File
)

// InitDebugLogger starts writing JSON debug records to DebugLogPath when
// enabled. Disabled logging discards everything.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugFile = f
	debugLog = newDebugLogger(f)
	debugLog.Info("debug_start", "log_file", DebugLogPath)
	return nil
}

func newDebugLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugFile == nil {
		return
	}
	debugLog.Info("debug_end")
	_ = debugFile.Close()
	debugFile = nil
	debugLog = slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.Debug("key_press", "key", msg.String())
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	debugLog.Debug("mode_change", "from", from.String(), "to", to.String(), "reason", reason)
}

// LogCursorMove logs cursor movement.
func LogCursorMove(c Cursor, reason string) {
	debugLog.Debug("cursor_move", "day", c.Day, "hour", c.Hour, "reason", reason)
}

// LogEvent logs an event applied to the calendar state and its outcome.
func LogEvent(e calendar.Event, s calendar.State, err error) {
	attrs := []any{
		"event", fmt.Sprintf("%T", e),
		"anchor", s.Anchor.Format("2006-01-02"),
		"view", string(s.View),
		"meetings", len(s.Meetings),
		"draft_open", s.Draft != nil,
	}
	if err != nil {
		debugLog.Warn("event_failed", append(attrs, "error", err.Error())...)
		return
	}
	debugLog.Debug("event", attrs...)
}
