package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/briefsmith/internal/brief"
	"github.com/alexanderramin/briefsmith/internal/complexity"
	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatBrief_Sections(t *testing.T) {
	in := testutil.NewTestIntake(
		testutil.WithScope(domain.ScopeWebsite, domain.ScopeCRM),
		testutil.WithDeadline("June 1"),
	)
	b := brief.Synthesize(in, complexity.DefaultWeights())

	out := stripANSI(FormatBrief(in, b))

	assert.Contains(t, out, "INTERNAL PROJECT BRIEF")
	assert.Contains(t, out, "● MEDIUM (score: 6)")
	assert.Contains(t, out, "2 deliverables")
	assert.Contains(t, out, "Deadline: June 1")
	assert.Contains(t, out, "TECHNICAL REQUIREMENTS\n")
	assert.Contains(t, out, "  [ ] Configured CRM with custom fields and pipeline\n")
	assert.Contains(t, out, "TOOL")
	assert.Contains(t, out, "  ! No existing website:")
	assert.Contains(t, out, "  1. ")
	assert.Contains(t, out, "  + Lead Generation System:")
	assert.Contains(t, out, "Phase 5: Handoff & Support\n")

	order := []string{"TECHNICAL REQUIREMENTS", "MARKETING STRATEGY BRIEF", "RECOMMENDED STACK & TOOLS",
		"DELIVERABLES CHECKLIST", "COMPLEXITY ASSESSMENT", "RED FLAGS & RISKS", "DISCOVERY QUESTIONS",
		"PHASE 2 / UPSELL OPPORTUNITIES", "SOLUTION BLUEPRINT"}
	last := -1
	for _, h := range order {
		idx := strings.Index(out, h)
		assert.Greater(t, idx, last, h)
		last = idx
	}
}

func TestFormatBrief_OmitsEmptyOptionalSections(t *testing.T) {
	in := testutil.NewEmptyIntake(testutil.WithScope(domain.ScopeAutomation))
	b := brief.Synthesize(in, complexity.DefaultWeights())

	out := stripANSI(FormatBrief(in, b))

	assert.NotContains(t, out, "PHASE 2 / UPSELL OPPORTUNITIES")
	assert.NotContains(t, out, "Client's Functional Description")
	assert.Contains(t, out, "1 deliverable")
}

func TestRenderComplexityMeter(t *testing.T) {
	tests := []struct {
		score  int
		filled int
	}{
		{0, 0},
		{5, 6},
		{10, 12},
		{17, 20},
		{40, 20},
	}
	for _, tt := range tests {
		c := domain.Complexity{Level: complexity.Band(tt.score), Score: tt.score}
		out := stripANSI(RenderComplexityMeter(c, 20))
		assert.Equal(t, tt.filled, strings.Count(out, filledBlock), "score %d", tt.score)
		assert.Equal(t, 20-tt.filled, strings.Count(out, emptyBlock), "score %d", tt.score)
	}
}

func TestFormatValidation_Clean(t *testing.T) {
	out := stripANSI(FormatValidation("intake.yaml", nil))
	assert.Equal(t, "✔ intake.yaml is a complete intake\n", out)
}

func TestFormatDelivery(t *testing.T) {
	assert.Contains(t, stripANSI(FormatDelivery("abc", true, "")), "Submission sent (abc)")
	assert.Equal(t, "careful\n", stripANSI(FormatDelivery("abc", false, "careful")))
	assert.Contains(t, stripANSI(FormatDelivery("abc", false, "")), "notifications are disabled")
}

func TestRenderTable_Truncates(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"short", "a very long reason"}}, 6)
	out = stripANSI(out)

	assert.Contains(t, out, "a ver…")
	assert.NotContains(t, out, "reason")
}

func TestPluralAndTruncate(t *testing.T) {
	assert.Equal(t, "1 problem", Plural(1, "problem"))
	assert.Equal(t, "0 problems", Plural(0, "problem"))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab…", Truncate("abcd", 3))
}

func TestFormatValidation_CountsErrors(t *testing.T) {
	out := stripANSI(FormatValidation("x.json", []error{errors.New("one")}))
	assert.Contains(t, out, "has 1 problem\n")
}
