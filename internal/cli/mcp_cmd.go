package cli

import (
	"github.com/alexanderramin/briefsmith/internal/mcptool"
	"github.com/spf13/cobra"
)

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the brief tools as an MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcptool.ServeStdio(app.Briefs, app.Version)
		},
	}
}
