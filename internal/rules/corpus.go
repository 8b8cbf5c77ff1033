// Package rules holds the static rule tables that turn an intake into brief
// fragments. Every table is a pure function of the intake; tables never
// share state and never mutate their input.
package rules

import (
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// Corpus is the lower-cased, space-joined free text that pattern rules scan.
func Corpus(in *domain.Intake) string {
	return strings.ToLower(strings.Join([]string{
		in.OneSentence,
		in.Problem,
		in.Success,
		in.ScopeDescription,
	}, " "))
}

// FirstSentence returns s up to the first '.', '!', '?' or newline, trimmed.
func FirstSentence(s string) string {
	if i := strings.IndexAny(s, ".!?\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
