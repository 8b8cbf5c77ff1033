package domain

type ScopeOption string

const (
	ScopeWebsite      ScopeOption = "Website / Landing Page"
	ScopeAutomation   ScopeOption = "Automation / Workflow"
	ScopeCRM          ScopeOption = "CRM Setup"
	ScopeDashboard    ScopeOption = "Dashboard / Reporting"
	ScopeLeadGen      ScopeOption = "Lead Generation System"
	ScopeEmail        ScopeOption = "Email Marketing Setup"
	ScopeInternalTool ScopeOption = "Internal Tool / App"
	ScopeOther        ScopeOption = "Other"
)

// ScopeOptions is the wizard's scope vocabulary in display order.
var ScopeOptions = []ScopeOption{
	ScopeWebsite,
	ScopeAutomation,
	ScopeCRM,
	ScopeDashboard,
	ScopeLeadGen,
	ScopeEmail,
	ScopeInternalTool,
	ScopeOther,
}

type PriorityOption string

const (
	PrioritySpeed       PriorityOption = "Speed"
	PriorityQuality     PriorityOption = "Quality"
	PriorityBudget      PriorityOption = "Budget"
	PriorityScalability PriorityOption = "Scalability"
	PriorityEaseOfUse   PriorityOption = "Ease of Use"
	PriorityDesign      PriorityOption = "Design / Look & Feel"
	PriorityOther       PriorityOption = "Other"
)

// PriorityOptions is the wizard's priority vocabulary in display order.
var PriorityOptions = []PriorityOption{
	PrioritySpeed,
	PriorityQuality,
	PriorityBudget,
	PriorityScalability,
	PriorityEaseOfUse,
	PriorityDesign,
	PriorityOther,
}

type Involvement string

const (
	InvolvementMinimal    Involvement = "Minimal involvement"
	InvolvementMilestones Involvement = "Review key milestones"
	InvolvementEveryStep  Involvement = "Review every step"
)

// InvolvementOptions is the wizard's involvement vocabulary in display order.
var InvolvementOptions = []Involvement{
	InvolvementMinimal,
	InvolvementMilestones,
	InvolvementEveryStep,
}

// ValidScopeOptions is the canonical set of accepted scope labels.
var ValidScopeOptions = func() map[string]bool {
	m := make(map[string]bool, len(ScopeOptions))
	for _, o := range ScopeOptions {
		m[string(o)] = true
	}
	return m
}()

// ValidPriorityOptions is the canonical set of accepted priority labels.
var ValidPriorityOptions = func() map[string]bool {
	m := make(map[string]bool, len(PriorityOptions))
	for _, o := range PriorityOptions {
		m[string(o)] = true
	}
	return m
}()

// ValidInvolvements is the canonical set of accepted involvement labels.
var ValidInvolvements = map[string]bool{
	string(InvolvementMinimal):    true,
	string(InvolvementMilestones): true,
	string(InvolvementEveryStep):  true,
}

type ComplexityLevel string

const (
	ComplexityLow    ComplexityLevel = "Low"
	ComplexityMedium ComplexityLevel = "Medium"
	ComplexityHigh   ComplexityLevel = "High"
)
