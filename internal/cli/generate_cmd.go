package cli

import (
	"fmt"

	"github.com/alexanderramin/briefsmith/internal/cli/formatter"
	"github.com/alexanderramin/briefsmith/internal/importer"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var opts outputOptions

	cmd := &cobra.Command{
		Use:   "generate <intake-file>",
		Short: "Generate a project brief from an intake file (JSON or YAML)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			in, err := importer.LoadIntake(path)
			if err != nil {
				return fmt.Errorf("loading intake: %w", err)
			}

			// Generation accepts incomplete intakes; submission does not.
			if errs := app.Briefs.Validate(cmd.Context(), in); len(errs) > 0 {
				fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatValidation(path, errs))
				if opts.notify {
					return fmt.Errorf("%w: %s", importer.ErrInvalidIntake, formatter.Plural(len(errs), "problem"))
				}
			}

			return emitBrief(cmd, app, opts, in)
		},
	}

	addOutputFlags(cmd.Flags(), &opts)

	return cmd
}
