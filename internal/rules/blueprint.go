package rules

import (
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// designItems are added to the architecture phase in declaration order.
var designItems = []struct {
	Scope domain.ScopeOption
	Items []string
}{
	{domain.ScopeWebsite, []string{"Design responsive landing page wireframes", "Create visual mockups aligned with brand assets"}},
	{domain.ScopeCRM, []string{"Map CRM data model and pipeline stages"}},
	{domain.ScopeAutomation, []string{"Design automation workflow diagrams"}},
	{domain.ScopeDashboard, []string{"Define KPIs and dashboard layout"}},
	{domain.ScopeLeadGen, []string{"Design lead capture funnel and qualification criteria"}},
	{domain.ScopeEmail, []string{"Plan email sequences and templates"}},
	{domain.ScopeInternalTool, []string{"Define app architecture and user interface specs"}},
}

// Blueprint lays the engagement out as five sequential phases.
func Blueprint(in *domain.Intake) []domain.BlueprintPhase {
	return []domain.BlueprintPhase{
		{Title: "Phase 1: Discovery & Setup", Items: discoveryPhase(in)},
		{Title: "Phase 2: Architecture & Design", Items: designPhase(in)},
		{Title: "Phase 3: Build & Implement", Items: buildPhase(in)},
		{Title: "Phase 4: Test & Launch", Items: launchPhase(in)},
		{Title: "Phase 5: Handoff & Support", Items: handoffPhase(in)},
	}
}

func discoveryPhase(in *domain.Intake) []string {
	channel := in.BestContact
	if channel == "" {
		channel = "email"
	}
	items := []string{
		"Review all provided source materials and assets",
		"Set up project workspace and communication channel (" + channel + ")",
	}
	if in.WebsiteURL != "" {
		items = append(items, "Audit existing website: "+in.WebsiteURL)
	}
	if in.ToolAccess != "" {
		items = append(items, "Gain access to required platforms: "+in.ToolAccess)
	}
	return items
}

func designPhase(in *domain.Intake) []string {
	var items []string
	for _, d := range designItems {
		if in.HasScope(d.Scope) {
			items = append(items, d.Items...)
		}
	}
	if len(items) == 0 {
		items = append(items, "Define system architecture and design specs")
	}
	return items
}

func buildPhase(in *domain.Intake) []string {
	var items []string
	for _, s := range in.NamedScope() {
		items = append(items, "Build: "+s)
	}
	if in.ScopeOther != "" {
		items = append(items, "Build: "+in.ScopeOther)
	}
	flow := strings.Join(in.FlowSteps, " -> ")
	if flow == "" {
		flow = "as described"
	}
	return append(items, "Implement user flow: "+flow)
}

func launchPhase(in *domain.Intake) []string {
	items := []string{
		"QA testing across devices and browsers",
		"Client review and feedback round",
		`Validate success criteria: "` + in.Success + `"`,
		"Go-live deployment",
	}
	if in.Deadline != "" {
		items = append(items, "Target deadline: "+in.Deadline)
	}
	return items
}

func handoffPhase(in *domain.Intake) []string {
	items := []string{
		"Documentation and training materials",
		"Handoff meeting and walkthrough",
	}
	if in.Involvement == string(domain.InvolvementMinimal) {
		items = append(items, "Provide detailed operating guide for self-service management")
	}
	return items
}
