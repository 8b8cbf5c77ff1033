package rules

import (
	"fmt"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

type riskRule struct {
	When func(in *domain.Intake) bool
	Emit func(in *domain.Intake) domain.Risk
}

// NoRisks is emitted when no risk rule fires.
var NoRisks = domain.Risk{
	Flag: "None detected",
	Note: "Straightforward brief — still worth confirming assumptions in kickoff",
}

var riskRules = []riskRule{
	{
		When: func(in *domain.Intake) bool {
			return in.WebsiteURL == "" && in.HasScope(domain.ScopeWebsite)
		},
		Emit: fixedRisk("No existing website",
			"Building from scratch — confirm content, copy, and brand assets are ready or budget for content creation"),
	},
	{
		When: func(in *domain.Intake) bool {
			return in.BrandAssets == "" && (in.HasScope(domain.ScopeWebsite) || in.HasScope(domain.ScopeEmail))
		},
		Emit: fixedRisk("No brand assets provided",
			"Need logo, colors, fonts before design can start — may delay kickoff"),
	},
	{
		When: func(in *domain.Intake) bool { return len(in.Scope) >= 4 },
		Emit: func(in *domain.Intake) domain.Risk {
			return domain.Risk{
				Flag: fmt.Sprintf("Large scope (%d items)", len(in.Scope)),
				Note: "Consider phasing delivery rather than building everything at once",
			}
		},
	},
	{
		When: func(in *domain.Intake) bool { return in.Deadline != "" && len(in.Scope) >= 3 },
		Emit: func(in *domain.Intake) domain.Risk {
			return domain.Risk{
				Flag: "Tight timeline vs. scope",
				Note: fmt.Sprintf(`"%s" with %d deliverables — may need to cut or phase`, in.Deadline, len(in.Scope)),
			}
		},
	},
	{
		When: func(in *domain.Intake) bool {
			return in.Involvement == string(domain.InvolvementEveryStep) && in.Deadline != ""
		},
		Emit: fixedRisk("High review cadence + deadline",
			"Step-by-step reviews slow delivery — set SLAs for feedback turnaround"),
	},
	{
		When: func(in *domain.Intake) bool {
			return in.ToolAccess == "" && (in.HasScope(domain.ScopeCRM) || in.HasScope(domain.ScopeAutomation))
		},
		Emit: fixedRisk("No tool access listed",
			"Will need login credentials for CRM/automation platforms before build starts"),
	},
	{
		When: func(in *domain.Intake) bool { return in.CustomerData == "" && in.HasScope(domain.ScopeCRM) },
		Emit: fixedRisk("No customer data mentioned",
			"CRM is only useful with data — confirm import source and format"),
	},
	{
		When: func(in *domain.Intake) bool { return in.Exclusions != "" },
		Emit: func(in *domain.Intake) domain.Risk {
			return domain.Risk{
				Flag: "Exclusions noted",
				Note: `"` + in.Exclusions + `" — make sure team is aligned so this doesn't creep back in`,
			}
		},
	},
}

func fixedRisk(flag, note string) func(*domain.Intake) domain.Risk {
	return func(*domain.Intake) domain.Risk {
		return domain.Risk{Flag: flag, Note: note}
	}
}

// Risks evaluates every risk rule in declaration order. The result is never
// empty: NoRisks stands in when nothing fires.
func Risks(in *domain.Intake) []domain.Risk {
	var risks []domain.Risk
	for _, r := range riskRules {
		if r.When(in) {
			risks = append(risks, r.Emit(in))
		}
	}
	if len(risks) == 0 {
		risks = append(risks, NoRisks)
	}
	return risks
}
