package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/briefsmith/internal/cli/formatter"
	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/export"
	"github.com/spf13/cobra"
)

func renderBrief(format outputFormat, in *domain.Intake, b *domain.Brief) (string, error) {
	switch format {
	case formatText:
		return export.Text(in, b), nil
	case formatMarkdown:
		return export.Markdown(in, b), nil
	case formatHTML:
		return export.HTML(in, b)
	case formatJSON:
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding brief: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return formatter.FormatBrief(in, b), nil
	}
}

// emitBrief produces the brief for in, submitting it first when --notify is
// set, and writes it to the file, the pager or stdout.
func emitBrief(cmd *cobra.Command, app *App, opts outputOptions, in *domain.Intake) error {
	ctx := cmd.Context()

	var b *domain.Brief
	if opts.notify {
		stop := func() {}
		if app.interactive() {
			s := formatter.NewSpinner(cmd.ErrOrStderr(), "Submitting intake...")
			s.Start()
			stop = s.Stop
		}
		sub, err := app.Submissions.Submit(ctx, in)
		stop()
		if err != nil {
			return err
		}
		b = sub.Brief
		defer fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatDelivery(sub.ID, sub.Delivered, sub.Advisory))
	} else {
		var err error
		if b, err = app.Briefs.Generate(ctx, in); err != nil {
			return err
		}
	}

	body, err := renderBrief(opts.format, in, b)
	if err != nil {
		return err
	}

	switch {
	case opts.out != "":
		if err := os.WriteFile(opts.out, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.out, err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Wrote "+opts.out))
	case opts.pager && app.interactive():
		return runPager("Internal Project Brief: "+in.CompanyName, body)
	default:
		fmt.Fprint(cmd.OutOrStdout(), body)
	}
	return nil
}
