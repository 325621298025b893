package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/meeting"
)

func (a *App) addCmd() *cobra.Command {
	var (
		draft meeting.Draft
		slot  string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a meeting to the session file",
		Long: `Add a meeting to the session file.

Start and end use local time as YYYY-MM-DDTHH:MM. --slot fills both for a
one hour meeting at that cell.

Example:
  agenda add "Team sync" --file work.ics --slot 2024-03-19-10 \
    --location "Room 4" --first-name Ada --last-name Lovelace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meetings, err := a.requireSession()
			if err != nil {
				return err
			}

			d := draft
			if slot != "" {
				id, err := parseSlotArg(slot)
				if err != nil {
					return err
				}
				date, hour, _ := calendar.ParseSlotID(id)
				prefill := meeting.NewDraftForSlot(date, hour)
				if d.Start == "" {
					d.Start = prefill.Start
				}
				if d.End == "" {
					d.End = prefill.End
				}
			}
			d.Title = args[0]

			meetings, created, err := meetings.Create(d, nil)
			if err != nil {
				return err
			}
			if err := a.saveSession(meetings); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created meeting %s: %s %s %s\n",
				created.ID,
				created.Title,
				created.Start.Format("2006-01-02"),
				created.TimeRange(),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&slot, "slot", "", "Slot id (YYYY-MM-DD-H) for a one hour meeting")
	cmd.Flags().StringVar(&draft.Start, "start", "", "Start (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&draft.End, "end", "", "End (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&draft.Location, "location", "", "Location (required)")
	cmd.Flags().StringVar(&draft.FirstName, "first-name", "", "Organizer first name (required)")
	cmd.Flags().StringVar(&draft.LastName, "last-name", "", "Organizer last name (required)")
	cmd.Flags().StringVar(&draft.Description, "description", "", "Description")

	return cmd
}
