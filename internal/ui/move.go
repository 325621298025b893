package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/calendar"
)

func (a *App) moveCmd() *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "move <meeting-id> <slot-id>",
		Short: "Move a meeting to another slot",
		Long: `Relocate a meeting so it starts at the given slot.

With the "hours" policy the meeting keeps its whole-hour length; with
"exact" it keeps its exact duration. The default comes from config.

Example:
  agenda move 3f2a... 2024-03-20-14 --file work.ics`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			meetings, err := a.requireSession()
			if err != nil {
				return err
			}

			p := a.config.Policy()
			if policy != "" {
				if p, err = calendar.ParseDurationPolicy(policy); err != nil {
					return err
				}
			}
			target, err := parseSlotArg(args[1])
			if err != nil {
				return err
			}

			meetings, err = calendar.RelocateIn(meetings, args[0], target, p)
			if err != nil {
				return err
			}
			if err := a.saveSession(meetings); err != nil {
				return err
			}

			moved, _ := meetings.Find(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s %s\n",
				moved.Title, moved.Start.Format("2006-01-02"), moved.TimeRange())
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "", "Duration policy: hours or exact")
	return cmd
}
