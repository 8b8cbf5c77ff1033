// Package brief turns one intake into the advisory document. Synthesis is a
// pure function: the same intake and weights always yield the same Brief.
package brief

import (
	"strings"

	"github.com/alexanderramin/briefsmith/internal/complexity"
	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/rules"
)

// Synthesize builds every section independently and assembles the document
// once at the end.
func Synthesize(in *domain.Intake, w complexity.Weights) *domain.Brief {
	corpus := rules.Corpus(in)

	return &domain.Brief{
		ExecutiveSummary: ExecutiveSummary(in),
		TechReqs:         orEmpty(rules.TechRequirements(in)),
		FuncReqs:         orEmpty(rules.FunctionalRequirements(in)),
		MktBrief:         orEmpty(rules.Marketing(in, corpus)),
		Positioning:      orEmpty(rules.Positioning(in)),
		Expectations:     orEmpty(rules.Expectations(in)),
		Stack:            orEmpty(rules.Stack(in)),
		Deliverables:     orEmpty(rules.Deliverables(in)),
		Complexity:       complexity.Assess(in, w),
		Risks:            rules.Risks(in),
		Questions:        rules.Questions(in, corpus),
		Upsells:          orEmpty(rules.Upsells(in)),
		Blueprint:        rules.Blueprint(in),
	}
}

// ExecutiveSummary renders the one-sentence summary:
//
//	<company> needs a <scope + scope> that solves: "<first sentence>" [— deadline-driven (<deadline>)].
func ExecutiveSummary(in *domain.Intake) string {
	parts := []string{in.CompanyName + " needs a"}
	if named := in.NamedScope(); len(named) > 0 {
		parts = append(parts, strings.ToLower(strings.Join(named, " + ")))
	} else {
		parts = append(parts, "custom solution")
	}
	parts = append(parts, `that solves: "`+rules.FirstSentence(in.Problem)+`"`)
	if in.Deadline != "" {
		parts = append(parts, "— deadline-driven ("+in.Deadline+")")
	}
	return strings.Join(parts, " ") + "."
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
