package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/calendar"
)

func (a *App) slotsCmd() *cobra.Command {
	var busy bool

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the slot ids of a view",
		Long: `List every cell of a day, week or month grid with its slot id.

Slot ids are the drop targets accepted by 'agenda move'. With --file the
meetings starting in each cell are listed next to it.

Example:
  agenda slots --view day --date 2024-03-19 --file work.ics --busy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := a.loadState()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			placement := state.Placement()
			for _, cell := range state.Grid() {
				meetings := placement.At(cell)
				if busy && len(meetings) == 0 {
					continue
				}
				titles := make([]string, len(meetings))
				for i, m := range meetings {
					titles[i] = m.Title
				}
				line := formatSlot(string(cell.ID()))
				if len(titles) > 0 {
					line += "  " + strings.Join(titles, ", ")
				}
				fmt.Fprintln(w, line)
			}
			if busy && placement.Count() == 0 {
				fmt.Fprintf(w, "No meetings in %s.\n", state.Label(a.config.Formatter()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&busy, "busy", false, "Only list cells holding meetings")
	return cmd
}

// parseSlotArg validates a slot id given on the command line.
func parseSlotArg(s string) (calendar.SlotID, error) {
	id := calendar.SlotID(strings.TrimSpace(s))
	if _, _, err := calendar.ParseSlotID(id); err != nil {
		return "", err
	}
	return id, nil
}
