package cli

import (
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/briefsmith/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the brief API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Server
			if cfg == (server.Config{}) {
				cfg = server.DefaultConfig()
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			logger := app.Logger
			if logger == nil {
				logger = slog.New(slog.NewTextHandler(io.Discard, nil))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, app.Briefs, app.Submissions, logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultConfig().Addr, "Listen address (overrides BRIEFSMITH_ADDR)")

	return cmd
}
