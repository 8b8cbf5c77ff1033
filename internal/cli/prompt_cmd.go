package cli

import (
	"fmt"

	"github.com/alexanderramin/briefsmith/internal/importer"
	"github.com/spf13/cobra"
)

func newPromptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <intake-file>",
		Short: "Print the planning prompt for an intake file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := importer.LoadIntake(args[0])
			if err != nil {
				return fmt.Errorf("loading intake: %w", err)
			}

			prompt, err := app.Briefs.Prompt(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), prompt)
			return nil
		},
	}
}
