package cli

import (
	"fmt"

	"github.com/alexanderramin/briefsmith/internal/cli/formatter"
	"github.com/alexanderramin/briefsmith/internal/importer"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <intake-file>",
		Short: "Check an intake file against the wizard's rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			in, err := importer.LoadIntake(path)
			if err != nil {
				return fmt.Errorf("loading intake: %w", err)
			}

			errs := app.Briefs.Validate(cmd.Context(), in)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(path, errs))
			if len(errs) > 0 {
				return fmt.Errorf("%w: %s", importer.ErrInvalidIntake, formatter.Plural(len(errs), "problem"))
			}
			return nil
		},
	}
}
