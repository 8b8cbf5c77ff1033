package rules

import (
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// complementRule suggests Idea when Present is selected and Absent is not.
type complementRule struct {
	Present domain.ScopeOption
	Absent  domain.ScopeOption
	Idea    string
	Reason  string
}

var complementRules = []complementRule{
	{domain.ScopeWebsite, domain.ScopeLeadGen, "Lead Generation System",
		"You're building a page but not capturing leads — add forms, CTAs, and qualification logic"},
	{domain.ScopeLeadGen, domain.ScopeEmail, "Email Nurture Sequences",
		"Leads without follow-up go cold — automate email sequences to warm them up"},
	{domain.ScopeLeadGen, domain.ScopeDashboard, "Lead Attribution Dashboard",
		"Know which channels produce your best leads — UTM tracking + dashboard"},
	{domain.ScopeCRM, domain.ScopeAutomation, "CRM Automation",
		"Automate deal stage updates, task creation, and follow-up reminders"},
	{domain.ScopeEmail, domain.ScopeDashboard, "Email Performance Dashboard",
		"Track open rates, CTR, revenue per send, and list health over time"},
}

// abTestRule is checked last so it trails the cross-system suggestion.
var abTestRule = complementRule{domain.ScopeWebsite, domain.ScopeInternalTool, "A/B Testing Setup",
	"Test headlines, CTAs, and layouts to continuously improve conversion rates"}

func (r complementRule) applies(in *domain.Intake) bool {
	return in.HasScope(r.Present) && !in.HasScope(r.Absent)
}

// Upsells reasons over what the client selected versus what usually pairs
// with it. The result may be empty.
func Upsells(in *domain.Intake) []domain.Upsell {
	var out []domain.Upsell
	for _, r := range complementRules {
		if r.applies(in) {
			out = append(out, domain.Upsell{Idea: r.Idea, Reason: r.Reason})
		}
	}
	if !in.HasScope(domain.ScopeAutomation) && len(in.Scope) >= 2 {
		named := in.NamedScope()
		if len(named) > 2 {
			named = named[:2]
		}
		out = append(out, domain.Upsell{
			Idea:   "Cross-System Automation",
			Reason: "Connect your " + strings.Join(named, " and ") + " so data flows automatically",
		})
	}
	if abTestRule.applies(in) {
		out = append(out, domain.Upsell{Idea: abTestRule.Idea, Reason: abTestRule.Reason})
	}
	return out
}
