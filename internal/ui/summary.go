package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/summary"
)

func (a *App) summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize the meetings of a week",
		Long: `Show meeting counts and booked time per day for the week containing --date.

Example:
  agenda summary --file work.ics --date last-week`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			meetings, err := a.requireSession()
			if err != nil {
				return err
			}
			anchor, err := a.resolveAnchor()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, line := range summary.SummarizeWeek(anchor, meetings).Lines(a.config.Formatter()) {
				switch line.Style {
				case summary.LineSection:
					fmt.Fprintf(w, "=== %s ===\n", formatHeader(line.Text))
				case summary.LineMeta:
					fmt.Fprintln(w, formatMuted(line.Text))
				default:
					fmt.Fprintln(w, line.Text)
				}
			}
			return nil
		},
	}
	return cmd
}
