package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/briefsmith/internal/cli/formatter"
	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("the wizard needs an interactive terminal; use 'briefsmith generate <intake-file>' instead")

func newWizardCmd(app *App) *cobra.Command {
	var opts outputOptions
	var save string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Fill in the project intake interactively and produce the brief",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}

			in, err := runWizard(cmd.Context())
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Cancelled."))
				return nil
			}
			if err != nil {
				return err
			}

			if save != "" {
				if err := saveIntake(save, in); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Saved intake to "+save))
			}

			if errs := app.Briefs.Validate(cmd.Context(), in); len(errs) > 0 {
				fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatValidation("intake", errs))
				return fmt.Errorf("%w: %s", importer.ErrInvalidIntake, formatter.Plural(len(errs), "problem"))
			}

			return emitBrief(cmd, app, opts, in)
		},
	}

	addOutputFlags(cmd.Flags(), &opts)
	cmd.Flags().StringVar(&save, "save", "", "Save the completed intake to a .json or .yaml file")

	return cmd
}

func saveIntake(path string, in *domain.Intake) error {
	data, err := importer.MarshalIntake(in, importer.FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("encoding intake: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
