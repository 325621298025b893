package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  agenda config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(config.DefaultConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Calendar.DefaultView = promptChoice(reader, out, "Default view", cfg.Calendar.DefaultView, viewNames(), func(v string) bool {
		_, err := calendar.ParseView(v)
		return err == nil
	})
	cfg.Calendar.Locale = promptChoice(reader, out, "Locale", cfg.Calendar.Locale, []string{"en", "fr"}, func(v string) bool {
		_, err := calendar.FormatterFor(v)
		return err == nil
	})
	cfg.Calendar.Relocation = promptChoice(reader, out, "Relocation policy", cfg.Calendar.Relocation,
		[]string{string(calendar.DurationWholeHours), string(calendar.DurationExact)}, func(v string) bool {
			_, err := calendar.ParseDurationPolicy(v)
			return err == nil
		})
	cfg.Calendar.DayStartHour = promptHour(reader, out, "Day start hour (0-23)", cfg.Calendar.DayStartHour)
	cfg.UI.Theme = promptChoice(reader, out, "UI theme", cfg.UI.Theme, theme.Available(), theme.IsAvailable)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func viewNames() []string {
	names := make([]string, len(calendar.Views))
	for i, v := range calendar.Views {
		names[i] = string(v)
	}
	return names
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[calendar]")
	fmt.Fprintf(out, "  default_view   = %s\n", cfg.Calendar.DefaultView)
	fmt.Fprintf(out, "  locale         = %s\n", cfg.Calendar.Locale)
	fmt.Fprintf(out, "  relocation     = %s\n", cfg.Calendar.Relocation)
	fmt.Fprintf(out, "  day_start_hour = %d\n", cfg.Calendar.DayStartHour)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme          = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, err := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" || (err != nil && input == "") {
		return current
	}
	return input
}

// promptChoice asks until valid accepts the answer. An empty answer or end
// of input keeps current.
func promptChoice(reader *bufio.Reader, out io.Writer, label, current string, options []string, valid func(string) bool) string {
	joined := strings.Join(options, ", ")
	label = fmt.Sprintf("%s (%s)", label, joined)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if value == current || valid(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid value %q. Available: %s\n", value, joined)
	}
}

func promptHour(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		hour, err := strconv.Atoi(value)
		if err == nil && hour >= 0 && hour <= 23 {
			return hour
		}
		fmt.Fprintf(out, "  Invalid hour %q\n", value)
	}
}
