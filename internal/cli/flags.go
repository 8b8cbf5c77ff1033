package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

type outputFormat string

const (
	formatTerminal outputFormat = "terminal"
	formatText     outputFormat = "text"
	formatMarkdown outputFormat = "markdown"
	formatHTML     outputFormat = "html"
	formatJSON     outputFormat = "json"
)

var outputFormats = []outputFormat{formatTerminal, formatText, formatMarkdown, formatHTML, formatJSON}

// formatValue is a pflag.Value restricted to outputFormats.
type formatValue struct {
	target *outputFormat
}

func newFormatValue(def outputFormat, target *outputFormat) *formatValue {
	*target = def
	return &formatValue{target: target}
}

func (v *formatValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "md" {
		s = string(formatMarkdown)
	}
	for _, f := range outputFormats {
		if string(f) == s {
			*v.target = f
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", formatNames())
}

func (v *formatValue) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v *formatValue) Type() string { return "format" }

func formatNames() string {
	names := make([]string, len(outputFormats))
	for i, f := range outputFormats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}

// outputOptions are the flags shared by commands that emit a brief.
type outputOptions struct {
	format outputFormat
	out    string
	notify bool
	pager  bool
}

func addOutputFlags(fs *pflag.FlagSet, o *outputOptions) {
	fs.VarP(newFormatValue(formatTerminal, &o.format), "format", "f", "Output format ("+formatNames()+")")
	fs.StringVarP(&o.out, "out", "o", "", "Write the brief to a file instead of stdout")
	fs.BoolVar(&o.notify, "notify", false, "Submit the intake and send the notification")
	fs.BoolVar(&o.pager, "pager", false, "Open terminal output in a scrollable pager")
}
