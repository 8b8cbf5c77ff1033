package notify

import (
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// Payload is the flat label->value body accepted by form relay endpoints.
type Payload map[string]string

// BuildPayload flattens an intake into the labelled fields sent to the
// relay. Multi-selects are comma joined; flow steps are joined with arrows.
// The submission ID, when set, is appended to the subject line.
func BuildPayload(submissionID string, in *domain.Intake) Payload {
	return Payload{
		"_subject":            subject(submissionID, in.CompanyName),
		"Company Name":        in.CompanyName,
		"Contact Name":        in.ContactName,
		"Email":               in.Email,
		"Phone":               in.Phone,
		"Best Contact Method": in.BestContact,
		"Project Goal":        in.OneSentence,
		"Problem":             in.Problem,
		"Success Criteria":    in.Success,
		"Deadline":            in.Deadline,
		"Scope":               strings.Join(in.Scope, ", "),
		"Scope Other":         in.ScopeOther,
		"Scope Description":   in.ScopeDescription,
		"Exclusions":          in.Exclusions,
		"Website URL":         in.WebsiteURL,
		"Existing Content":    in.ExistingContent,
		"Brand Assets":        in.BrandAssets,
		"Media Assets":        in.MediaAssets,
		"Customer Data":       in.CustomerData,
		"Offer Details":       in.OfferDetails,
		"Past Marketing":      in.PastMarketing,
		"Case Studies":        in.CaseStudies,
		"Tool Access":         in.ToolAccess,
		"Folder Link":         in.FolderLink,
		"User Flow":           strings.Join(in.FlowSteps, " -> "),
		"Priorities":          strings.Join(in.Priority, ", "),
		"Priority Other":      in.PriorityOther,
		"Involvement Level":   in.Involvement,
		"Final Notes":         in.FinalNotes,
		"Signature":           in.Signature,
		"Date":                in.SignDate,
	}
}

func subject(submissionID, company string) string {
	s := "New Project Submission: " + company
	if submissionID != "" {
		s += " [" + submissionID + "]"
	}
	return s
}
