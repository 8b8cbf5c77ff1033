package cli

import (
	"log/slog"

	"github.com/alexanderramin/briefsmith/internal/server"
	"github.com/alexanderramin/briefsmith/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and settings used by CLI commands.
type App struct {
	Briefs      service.BriefService
	Submissions service.SubmissionService

	Server  server.Config
	Logger  *slog.Logger
	Version string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "briefsmith" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "briefsmith",
		Short:         "Turn a client intake into an internal project brief",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newWizardCmd(app),
		newPromptCmd(app),
		newValidateCmd(app),
		newServeCmd(app),
		newMCPCmd(app),
	)

	return root
}
