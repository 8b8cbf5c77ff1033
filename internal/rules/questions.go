package rules

import (
	"github.com/alexanderramin/briefsmith/internal/domain"
)

type questionRule struct {
	When      func(in *domain.Intake, corpus string) bool
	Questions []string
}

// FallbackQuestion is asked when no question rule fires.
const FallbackQuestion = "What does your ideal first week after launch look like?"

func scopeSelected(option domain.ScopeOption) func(*domain.Intake, string) bool {
	return func(in *domain.Intake, _ string) bool { return in.HasScope(option) }
}

var questionRules = []questionRule{
	{
		When: func(in *domain.Intake, _ string) bool {
			return in.HasScope(domain.ScopeWebsite) && in.ExistingContent == ""
		},
		Questions: []string{"Who is writing the copy? Do you have approved messaging or do we need to create it?"},
	},
	{
		When: scopeSelected(domain.ScopeLeadGen),
		Questions: []string{
			`What qualifies a "good" lead? What makes one worth your time vs. not?`,
			"Where is traffic coming from? Paid ads, organic, referrals, social?",
		},
	},
	{
		When:      scopeSelected(domain.ScopeAutomation),
		Questions: []string{"Walk me through the current manual process step by step — what exactly are you doing today?"},
	},
	{
		When: scopeSelected(domain.ScopeCRM),
		Questions: []string{
			"How many contacts/deals are we importing? What format is the data in?",
			"Who on your team will use the CRM daily, and what's their tech comfort level?",
		},
	},
	{
		When: scopeSelected(domain.ScopeEmail),
		Questions: []string{
			"Do you have an existing email list? How big, and when was it last engaged?",
			"What's the first email someone should get after opting in?",
		},
	},
	{
		When:      scopeSelected(domain.ScopeDashboard),
		Questions: []string{"What decisions will this dashboard help you make? What action follows the data?"},
	},
	{
		When: scopeSelected(domain.ScopeInternalTool),
		Questions: []string{
			"How many users? What are the distinct roles and what can each role do?",
			"Is there an existing spreadsheet/process this is replacing? Can we see it?",
		},
	},
	{
		When:      func(in *domain.Intake, _ string) bool { return in.Deadline != "" },
		Questions: []string{"Is the deadline hard (event, launch) or soft (preference)? What happens if we miss it?"},
	},
	{
		When: func(in *domain.Intake, corpus string) bool {
			return in.OfferDetails == "" && revenuePattern.MatchString(corpus)
		},
		Questions: []string{"What's the offer? What are you selling, at what price point, to whom?"},
	},
}

// Questions returns the kickoff questions raised by the intake. The result is
// never empty: FallbackQuestion stands in when nothing fires.
func Questions(in *domain.Intake, corpus string) []string {
	var qs []string
	for _, r := range questionRules {
		if r.When(in, corpus) {
			qs = append(qs, r.Questions...)
		}
	}
	if len(qs) == 0 {
		qs = append(qs, FallbackQuestion)
	}
	return qs
}
