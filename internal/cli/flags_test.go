package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	var f outputFormat
	v := newFormatValue(formatTerminal, &f)
	assert.Equal(t, "terminal", v.String())
	assert.Equal(t, "format", v.Type())

	tests := []struct {
		in   string
		want outputFormat
	}{
		{"text", formatText},
		{"MARKDOWN", formatMarkdown},
		{"md", formatMarkdown},
		{" html ", formatHTML},
		{"json", formatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.NoError(t, v.Set(tt.in))
			assert.Equal(t, tt.want, f)
		})
	}

	assert.Error(t, v.Set("pdf"))
	assert.Equal(t, formatJSON, f)
}

func TestAddOutputFlags(t *testing.T) {
	var opts outputOptions
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addOutputFlags(fs, &opts)

	require.NoError(t, fs.Parse([]string{"-f", "html", "-o", "brief.html", "--notify"}))
	assert.Equal(t, formatHTML, opts.format)
	assert.Equal(t, "brief.html", opts.out)
	assert.True(t, opts.notify)
	assert.False(t, opts.pager)
}
