package domain

import "slices"

// Intake is one validated client submission. Every field defaults to its zero
// value; nothing downstream distinguishes "missing" from "empty".
type Intake struct {
	CompanyName string `json:"companyName" yaml:"companyName"`
	ContactName string `json:"contactName" yaml:"contactName"`
	Email       string `json:"email" yaml:"email"`
	Phone       string `json:"phone" yaml:"phone"`
	BestContact string `json:"bestContact" yaml:"bestContact"`

	OneSentence string `json:"oneSentence" yaml:"oneSentence"`
	Problem     string `json:"problem" yaml:"problem"`
	Success     string `json:"success" yaml:"success"`
	Deadline    string `json:"deadline" yaml:"deadline"`

	Scope            []string `json:"scope" yaml:"scope"`
	ScopeOther       string   `json:"scopeOther" yaml:"scopeOther"`
	ScopeDescription string   `json:"scopeDescription" yaml:"scopeDescription"`
	Exclusions       string   `json:"exclusions" yaml:"exclusions"`

	WebsiteURL      string `json:"websiteUrl" yaml:"websiteUrl"`
	ExistingContent string `json:"existingContent" yaml:"existingContent"`
	BrandAssets     string `json:"brandAssets" yaml:"brandAssets"`
	MediaAssets     string `json:"mediaAssets" yaml:"mediaAssets"`
	CustomerData    string `json:"customerData" yaml:"customerData"`
	OfferDetails    string `json:"offerDetails" yaml:"offerDetails"`
	PastMarketing   string `json:"pastMarketing" yaml:"pastMarketing"`
	CaseStudies     string `json:"caseStudies" yaml:"caseStudies"`
	ToolAccess      string `json:"toolAccess" yaml:"toolAccess"`
	FolderLink      string `json:"folderLink" yaml:"folderLink"`

	FlowSteps []string `json:"flowSteps" yaml:"flowSteps"`

	Priority      []string `json:"priority" yaml:"priority"`
	PriorityOther string   `json:"priorityOther" yaml:"priorityOther"`
	Involvement   string   `json:"involvement" yaml:"involvement"`

	FinalNotes string `json:"finalNotes" yaml:"finalNotes"`
	Signature  string `json:"signature" yaml:"signature"`
	SignDate   string `json:"signDate" yaml:"signDate"`
}

// HasScope reports whether option is among the scope selections.
func (in *Intake) HasScope(option ScopeOption) bool {
	return slices.Contains(in.Scope, string(option))
}

// HasPriority reports whether option is among the priority selections.
func (in *Intake) HasPriority(option PriorityOption) bool {
	return slices.Contains(in.Priority, string(option))
}

// NamedScope returns the scope selections without the literal "Other" entry,
// preserving selection order.
func (in *Intake) NamedScope() []string {
	named := make([]string, 0, len(in.Scope))
	for _, s := range in.Scope {
		if s == string(ScopeOther) {
			continue
		}
		named = append(named, s)
	}
	return named
}
