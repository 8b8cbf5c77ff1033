package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/briefsmith/internal/cli"
	"github.com/alexanderramin/briefsmith/internal/complexity"
	"github.com/alexanderramin/briefsmith/internal/notify"
	"github.com/alexanderramin/briefsmith/internal/server"
	"github.com/alexanderramin/briefsmith/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Wire the notifier
	notifyCfg := notify.LoadConfig()
	var observer notify.Observer = notify.NoopObserver{}
	if notifyCfg.LogCalls {
		observer = notify.NewLogObserver(os.Stderr)
	}
	var notifier notify.Notifier = notify.DisabledNotifier{}
	if notifyCfg.Enabled {
		notifier = notify.NewHTTPNotifier(notifyCfg, observer)
	}

	// Wire services
	var observers []service.UseCaseObserver
	if os.Getenv("BRIEFSMITH_LOG_USE_CASES") == "true" {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}
	briefs := service.NewBriefService(complexity.LoadWeights(), observers...)
	submissions := service.NewSubmissionService(briefs, notifier, service.DefaultDeliveryWait, observers...)

	app := &cli.App{
		Briefs:      briefs,
		Submissions: submissions,
		Server:      server.LoadConfig(),
		Logger:      logger,
		Version:     version,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
