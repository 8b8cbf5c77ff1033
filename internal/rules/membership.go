package rules

import (
	"slices"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// scopeTech lists the technical requirement items for each scope option.
var scopeTech = map[domain.ScopeOption][]string{
	domain.ScopeWebsite: {
		"Responsive front-end (mobile-first, Core Web Vitals compliant)",
		"SEO infrastructure: meta tags, Open Graph, structured data, sitemap",
		"Form handling with client-side validation and server submission",
		"Analytics integration (GA4/GTM event tracking)",
	},
	domain.ScopeAutomation: {
		"Event-driven automation engine (webhook triggers, conditional branching)",
		"API integrations between systems (REST/webhook connectors)",
		"Error handling with retry logic and failure notifications",
		"Execution logging and audit trail",
	},
	domain.ScopeCRM: {
		"Data model: contacts, companies, deals with custom properties",
		"Pipeline configuration with stage-based automation",
		"Import/migration of existing data (deduplication, field mapping)",
		"API sync with external systems",
	},
	domain.ScopeDashboard: {
		"Data aggregation layer pulling from connected sources",
		"Chart/widget rendering with date-range filtering",
		"Export functionality (CSV/PDF)",
		"Role-based access to reports",
	},
	domain.ScopeLeadGen: {
		"Multi-step or progressive form with field validation",
		"Spam/bot protection (honeypot, reCAPTCHA)",
		"Lead routing: CRM insert + team notification (email/Slack)",
		"UTM parameter capture for source attribution",
	},
	domain.ScopeEmail: {
		"ESP integration with list management and segmentation",
		"Template system (responsive, brand-consistent)",
		"Automation sequences: welcome, nurture, re-engagement",
		"Deliverability setup: SPF, DKIM, DMARC",
	},
	domain.ScopeInternalTool: {
		"Authentication and role-based access control",
		"CRUD interface with data validation",
		"Database persistence (relational or document store)",
		"Deployment pipeline with staging environment",
	},
}

// scopeDeliverables lists the checklist for each scope option.
var scopeDeliverables = map[domain.ScopeOption][]string{
	domain.ScopeWebsite: {
		"Live, deployed website/landing page",
		"Mobile-responsive across all breakpoints",
		"SEO configuration and analytics setup",
		"Content populated and reviewed",
	},
	domain.ScopeAutomation: {
		"Documented workflow with trigger/action map",
		"Live automations tested end-to-end",
		"Error handling and notification setup",
	},
	domain.ScopeCRM: {
		"Configured CRM with custom fields and pipeline",
		"Data imported and deduplicated",
		"Team accounts created with permissions",
	},
	domain.ScopeDashboard: {
		"Live dashboard with agreed-upon KPIs",
		"Data sources connected and validated",
		"Export and sharing configured",
	},
	domain.ScopeLeadGen: {
		"Lead capture form(s) live and tested",
		"CRM integration receiving leads",
		"Notification system for sales team",
		"Attribution tracking active",
	},
	domain.ScopeEmail: {
		"Email templates designed and tested",
		"Automation sequences built and active",
		"List segmentation configured",
		"Deliverability verified (SPF/DKIM)",
	},
	domain.ScopeInternalTool: {
		"Deployed application with login",
		"User roles and permissions configured",
		"Documentation / training guide",
	},
}

// stackRule recommends tools when its scope option is selected.
type stackRule struct {
	Scope domain.ScopeOption
	Items []domain.StackItem
}

// scopeStack is evaluated in declaration order, not selection order.
var scopeStack = []stackRule{
	{domain.ScopeWebsite, []domain.StackItem{
		{Tool: "Webflow / WordPress / Custom HTML", Reason: "Landing page build — choose based on client's technical comfort and update frequency"},
		{Tool: "Google Analytics 4 + Tag Manager", Reason: "Event tracking, conversion goals, UTM attribution"},
	}},
	{domain.ScopeCRM, []domain.StackItem{
		{Tool: "HubSpot / GoHighLevel / Pipedrive", Reason: "CRM with pipeline management — pick based on budget and feature needs"},
	}},
	{domain.ScopeAutomation, []domain.StackItem{
		{Tool: "Zapier / Make / n8n", Reason: "Cross-platform automation orchestration with conditional logic"},
	}},
	{domain.ScopeDashboard, []domain.StackItem{
		{Tool: "Google Looker Studio / Databox / Custom", Reason: "Data visualization and KPI dashboards"},
	}},
	{domain.ScopeLeadGen, []domain.StackItem{
		{Tool: "Typeform / HubSpot Forms / Custom", Reason: "Lead capture with progressive profiling and validation"},
		{Tool: "Calendly / Cal.com", Reason: "Appointment scheduling if lead-to-call flow is needed"},
	}},
	{domain.ScopeEmail, []domain.StackItem{
		{Tool: "Mailchimp / ActiveCampaign / ConvertKit", Reason: "Email automation with segmentation and analytics"},
	}},
	{domain.ScopeInternalTool, []domain.StackItem{
		{Tool: "Retool / Bubble / Custom (React/Node)", Reason: "Internal app — low-code if speed matters, custom if flexibility matters"},
	}},
}

// scopePositioning is the marketing angle for each scope option.
var scopePositioning = map[domain.ScopeOption]string{
	domain.ScopeWebsite:      "Credibility storefront — the page has to earn trust before it asks for anything",
	domain.ScopeAutomation:   "Time back — sell hours saved and errors avoided, not the tooling",
	domain.ScopeCRM:          "Nothing falls through the cracks — every contact has an owner and a next step",
	domain.ScopeDashboard:    "Clarity — one screen that answers \"is this working?\"",
	domain.ScopeLeadGen:      "Predictable pipeline — a steady flow of qualified conversations",
	domain.ScopeEmail:        "Owned audience — relationships that do not depend on ad spend",
	domain.ScopeInternalTool: "Operational leverage — replace spreadsheets and tribal knowledge with one tool",
}

// priorityMeanings translates a priority selection into delivery guidance.
var priorityMeanings = map[domain.PriorityOption]string{
	domain.PrioritySpeed:       "Ship a working first version fast — favor proven tools and phase the extras",
	domain.PriorityQuality:     "Polish and reliability over speed — budget extra QA and review rounds",
	domain.PriorityBudget:      "Cost-sensitive — prefer low-code and existing subscriptions over custom builds",
	domain.PriorityScalability: "Build for growth — clean data model and integrations that survive volume",
	domain.PriorityEaseOfUse:   "The team must run it without us — simple admin, documentation, training",
	domain.PriorityDesign:      "Visual impression matters — allocate design time before build starts",
}

// involvementMeanings translates the involvement level into a review cadence.
var involvementMeanings = map[domain.Involvement]string{
	domain.InvolvementMinimal:    "Async updates only — decide on their behalf and document assumptions",
	domain.InvolvementMilestones: "Checkpoint reviews at the end of each phase — batch questions for those calls",
	domain.InvolvementEveryStep:  "Step-by-step sign-off — agree on feedback turnaround times up front",
}

// TechRequirements returns one category per recognised scope selection, in
// selection order, plus a discovery placeholder for the free-text scope.
func TechRequirements(in *domain.Intake) []domain.TechCategory {
	var reqs []domain.TechCategory
	for _, s := range in.Scope {
		if items, ok := scopeTech[domain.ScopeOption(s)]; ok {
			reqs = append(reqs, domain.TechCategory{Category: s, Items: slices.Clone(items)})
		}
	}
	if in.ScopeOther != "" {
		reqs = append(reqs, domain.TechCategory{
			Category: in.ScopeOther,
			Items:    []string{"Custom implementation — define spec during discovery"},
		})
	}
	return reqs
}

// FunctionalRequirements passes the client's own description and exclusions
// through verbatim.
func FunctionalRequirements(in *domain.Intake) []string {
	var reqs []string
	if in.ScopeDescription != "" {
		reqs = append(reqs, in.ScopeDescription)
	}
	if in.Exclusions != "" {
		reqs = append(reqs, "EXCLUSIONS: "+in.Exclusions)
	}
	return reqs
}

// Stack returns tool recommendations for the selected scope, followed by the
// client's own tools when they listed any.
func Stack(in *domain.Intake) []domain.StackItem {
	var stack []domain.StackItem
	for _, r := range scopeStack {
		if in.HasScope(r.Scope) {
			stack = append(stack, r.Items...)
		}
	}
	if in.ToolAccess != "" {
		stack = append(stack, domain.StackItem{
			Tool:   in.ToolAccess,
			Reason: "Client-specified — already has access, integrate directly",
		})
	}
	return stack
}

// Deliverables returns the checklist for each selection except "Other", plus
// a discovery placeholder for the free-text scope.
func Deliverables(in *domain.Intake) []domain.Deliverable {
	var out []domain.Deliverable
	for _, s := range in.Scope {
		if s == string(domain.ScopeOther) {
			continue
		}
		if items, ok := scopeDeliverables[domain.ScopeOption(s)]; ok {
			out = append(out, domain.Deliverable{Scope: s, Items: slices.Clone(items)})
		}
	}
	if in.ScopeOther != "" {
		out = append(out, domain.Deliverable{
			Scope: in.ScopeOther,
			Items: []string{"Deliverables to be defined during discovery"},
		})
	}
	return out
}

// Positioning returns one marketing angle per recognised scope selection.
func Positioning(in *domain.Intake) []domain.LabelValue {
	var out []domain.LabelValue
	for _, s := range in.Scope {
		if angle, ok := scopePositioning[domain.ScopeOption(s)]; ok {
			out = append(out, domain.LabelValue{Label: s, Value: angle})
		}
	}
	return out
}

// Expectations translates priorities and involvement into delivery guidance.
func Expectations(in *domain.Intake) []domain.LabelValue {
	var out []domain.LabelValue
	for _, p := range in.Priority {
		if meaning, ok := priorityMeanings[domain.PriorityOption(p)]; ok {
			out = append(out, domain.LabelValue{Label: "Priority: " + p, Value: meaning})
		}
	}
	if in.PriorityOther != "" {
		out = append(out, domain.LabelValue{
			Label: "Priority: " + in.PriorityOther,
			Value: "Client-defined priority — confirm how success on this is measured",
		})
	}
	if meaning, ok := involvementMeanings[domain.Involvement(in.Involvement)]; ok {
		out = append(out, domain.LabelValue{Label: "Involvement: " + in.Involvement, Value: meaning})
	}
	return out
}
