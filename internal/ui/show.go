package ui

import (
	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var verbose bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the meetings of a day, week or month",
		Long: `Print the meetings visible in a view, grouped by day.

Example:
  agenda show --file work.ics --view week --date next-monday`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			if a.file == "" {
				return errNoSession
			}
			state, err := a.loadState()
			if err != nil {
				return err
			}

			PrintAgenda(cmd.OutOrStdout(), state, a.config.Formatter(), PrintOpts{Verbose: verbose})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show ids and descriptions")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
