package export

import (
	"strings"
	"testing"

	"github.com/alexanderramin/briefsmith/internal/brief"
	"github.com/alexanderramin/briefsmith/internal/complexity"
	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synth(in *domain.Intake) *domain.Brief {
	return brief.Synthesize(in, complexity.DefaultWeights())
}

func TestPrompt_Placeholders(t *testing.T) {
	in := testutil.NewEmptyIntake(testutil.WithCompany("Acme"))

	p := Prompt(in)

	assert.True(t, strings.HasPrefix(p, "You are a solutions architect building a project for Acme.\n\n"))
	assert.Contains(t, p, "- Preferred contact: Not specified\n")
	assert.Contains(t, p, "DEADLINE: Flexible\n")
	assert.Contains(t, p, "EXCLUSIONS:\nNone specified\n")
	assert.Contains(t, p, "- Website: None\n")
	assert.Contains(t, p, "- Offers/Pricing: None\n")
	assert.Contains(t, p, "USER FLOW:\nNot specified\n")
	assert.Contains(t, p, "ADDITIONAL NOTES:\nNone\n")
	assert.True(t, strings.HasSuffix(p, "5. Estimated timeline for each phase"))
}

func TestPrompt_ListsAndOthers(t *testing.T) {
	in := testutil.NewTestIntake(
		testutil.WithScope(domain.ScopeWebsite, domain.ScopeOther),
		testutil.WithPriority(domain.PrioritySpeed, domain.PriorityBudget),
		testutil.WithFlowSteps("Land on page", "Book a call"),
		testutil.WithIntake(func(in *domain.Intake) {
			in.ScopeOther = "Podcast setup"
			in.PriorityOther = "Accessibility"
		}),
	)

	p := Prompt(in)

	assert.Contains(t, p, "SCOPE OF WORK:\n- Website / Landing Page\n- Other\n- Podcast setup\n\n")
	assert.Contains(t, p, "USER FLOW:\n1. Land on page\n2. Book a call\n\n")
	assert.Contains(t, p, "PRIORITIES: Speed, Budget, Accessibility\n")
	assert.Contains(t, p, "CLIENT INVOLVEMENT: Review key milestones\n")
}

func TestText_Layout(t *testing.T) {
	in := testutil.NewTestIntake(
		testutil.WithScope(domain.ScopeWebsite, domain.ScopeCRM),
		testutil.WithFlowSteps("Visit", "Sign up"),
	)
	b := synth(in)

	out := Text(in, b)

	assert.True(t, strings.HasPrefix(out, "PROJECT START FORM - SUBMISSION SUMMARY\n"+heavyRule+"\nDate: 2026-03-01\nCompany: Acme\n"))
	assert.Contains(t, out, lightRule+"\nUSER FLOW\n"+lightRule+"\n1. Visit\n2. Sign up\n")
	assert.Contains(t, out, "Deadline: Flexible\n")
	assert.Contains(t, out, "Exclusions: None\n")
	assert.Contains(t, out, "Scope: Website / Landing Page, CRM Setup\n")
	assert.Contains(t, out, "\nCRM Setup:\n  [ ] ")
	assert.Contains(t, out, "Complexity: Low (score: 5)\n")
	assert.Contains(t, out, heavyRule+"\nAI PROMPT\n"+heavyRule+"\nYou are a solutions architect")
	assert.Contains(t, out, heavyRule+"\nSOLUTION BLUEPRINT\n"+heavyRule+"\n")
	assert.True(t, strings.HasSuffix(out, "\n"))

	// sections appear in order
	order := []string{"PROJECT OVERVIEW", "SOURCE MATERIALS", "USER FLOW", "EXPECTATIONS",
		"TRANSLATION (Technical & Marketing)", "AI PROMPT", "SOLUTION BLUEPRINT"}
	last := -1
	for _, h := range order {
		idx := strings.Index(out, "\n"+h+"\n")
		require.Greater(t, idx, last, h)
		last = idx
	}
}

func TestTranslation_Markers(t *testing.T) {
	in := testutil.NewTestIntake(
		testutil.WithScope(domain.ScopeWebsite),
		testutil.WithIntake(func(in *domain.Intake) {
			in.ExistingContent = ""
		}),
	)
	b := synth(in)
	b.Upsells = []domain.Upsell{{Idea: "Idea", Reason: "Because"}}

	out := Translation(b)

	assert.True(t, strings.HasPrefix(out, "EXECUTIVE SUMMARY\n"+b.ExecutiveSummary+"\n"))
	assert.Contains(t, out, "Website / Landing Page:\n  - ")
	assert.Contains(t, out, "\n  1. ")
	assert.Contains(t, out, "\n  + Idea: Because")
	for _, r := range b.Risks {
		assert.Contains(t, out, "  ! "+r.Flag+": "+r.Note)
	}
}

func TestText_StripsControlCharacters(t *testing.T) {
	in := testutil.NewTestIntake(testutil.WithProblem("Broken\x1b[31m site\x07."))
	out := Text(in, synth(in))

	assert.NotContains(t, out, "\x1b")
	assert.NotContains(t, out, "\x07")
	assert.Contains(t, out, "Problem: Broken[31m site.\n")
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		company  string
		date     string
		expected string
	}{
		{"simple", "Acme", "2026-03-01", "project-start-acme-2026-03-01.txt"},
		{"spaces collapse", "Big  Blue\tLabs", "2026-03-01", "project-start-big-blue-labs-2026-03-01.txt"},
		{"path separators dropped", "A/B Co", "2026-03-01", "project-start-ab-co-2026-03-01.txt"},
		{"empty", "", "", "project-start--.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testutil.NewEmptyIntake(testutil.WithCompany(tt.company), testutil.WithIntake(func(in *domain.Intake) {
				in.SignDate = tt.date
			}))
			assert.Equal(t, tt.expected, Filename(in))
		})
	}
}

func TestMarkdown_Sections(t *testing.T) {
	in := testutil.NewTestIntake(
		testutil.WithScope(domain.ScopeWebsite, domain.ScopeCRM),
		testutil.WithDeadline("June 1"),
	)
	b := synth(in)

	out := Markdown(in, b)

	assert.True(t, strings.HasPrefix(out, "# Internal Project Brief: Acme\n"))
	assert.Contains(t, out, "**Complexity: Medium** · 2 deliverables · Review key milestones · Deadline: June 1")
	assert.Contains(t, out, "### CRM Setup\n\n- [ ] ")
	assert.Contains(t, out, "## Discovery Questions\n")
	assert.Contains(t, out, "## Solution Blueprint\n")
	assert.Contains(t, out, "### Phase 1: Discovery & Setup\n")
}

func TestMarkdown_EscapesClientText(t *testing.T) {
	in := testutil.NewTestIntake(testutil.WithCompany("*Acme* <script>"))
	out := Markdown(in, synth(in))

	assert.Contains(t, out, `# Internal Project Brief: \*Acme\* \<script\>`)
}

func TestHTML_RendersAndEscapes(t *testing.T) {
	in := testutil.NewTestIntake(testutil.WithCompany("Acme <script>alert(1)</script>"))
	b := synth(in)

	out, err := HTML(in, b)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Project Brief: Acme &lt;script&gt;alert(1)&lt;/script&gt;</title>")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<h2>Executive Summary</h2>")
	assert.Contains(t, out, `type="checkbox"`)
	assert.Contains(t, out, "background:#10b981")
}
