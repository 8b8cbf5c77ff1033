// Package export renders intakes and briefs into the formats people take away:
// plain text, markdown, HTML and the planning prompt.
package export

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// Prompt builds the planning prompt handed to a solutions architect or an
// assistant. Empty optional fields render as fixed placeholders.
func Prompt(in *domain.Intake) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a solutions architect building a project for %s.\n\n", in.CompanyName)

	b.WriteString("CLIENT OVERVIEW:\n")
	fmt.Fprintf(&b, "- Contact: %s (%s)\n", in.ContactName, in.Email)
	fmt.Fprintf(&b, "- Preferred contact: %s\n\n", or(in.BestContact, "Not specified"))

	fmt.Fprintf(&b, "PROJECT OBJECTIVE:\n%s\n\n", in.OneSentence)
	fmt.Fprintf(&b, "PROBLEM STATEMENT:\n%s\n\n", in.Problem)
	fmt.Fprintf(&b, "SUCCESS CRITERIA:\n%s\n\n", in.Success)
	fmt.Fprintf(&b, "DEADLINE: %s\n\n", or(in.Deadline, "Flexible"))

	b.WriteString("SCOPE OF WORK:\n")
	b.WriteString(bulleted(in.Scope))
	if in.ScopeOther != "" {
		b.WriteString("\n- " + in.ScopeOther)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "FUNCTIONAL REQUIREMENTS:\n%s\n\n", in.ScopeDescription)
	fmt.Fprintf(&b, "EXCLUSIONS:\n%s\n\n", or(in.Exclusions, "None specified"))

	b.WriteString("EXISTING ASSETS:\n")
	for _, a := range []struct{ label, value string }{
		{"Website", in.WebsiteURL},
		{"Content", in.ExistingContent},
		{"Brand Assets", in.BrandAssets},
		{"Media", in.MediaAssets},
		{"Customer Data", in.CustomerData},
		{"Offers/Pricing", in.OfferDetails},
		{"Past Marketing", in.PastMarketing},
		{"Case Studies", in.CaseStudies},
		{"Tool Access", in.ToolAccess},
	} {
		fmt.Fprintf(&b, "- %s: %s\n", a.label, or(a.value, "None"))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "USER FLOW:\n%s\n\n", or(numbered(in.FlowSteps), "Not specified"))

	fmt.Fprintf(&b, "PRIORITIES: %s\n", priorities(in))
	fmt.Fprintf(&b, "CLIENT INVOLVEMENT: %s\n\n", in.Involvement)

	fmt.Fprintf(&b, "ADDITIONAL NOTES:\n%s\n\n", or(in.FinalNotes, "None"))

	b.WriteString(`INSTRUCTIONS:
Based on the above brief, create a detailed project plan with:
1. Recommended tech stack and tools
2. Phase-by-phase implementation plan
3. Key milestones and deliverables
4. Potential risks and mitigation strategies
5. Estimated timeline for each phase`)

	return b.String()
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func bulleted(items []string) string {
	lines := make([]string, len(items))
	for i, s := range items {
		lines[i] = "- " + s
	}
	return strings.Join(lines, "\n")
}

func numbered(items []string) string {
	lines := make([]string, len(items))
	for i, s := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return strings.Join(lines, "\n")
}

// priorities joins the selected priorities and the free-text one.
func priorities(in *domain.Intake) string {
	s := strings.Join(in.Priority, ", ")
	if in.PriorityOther != "" {
		s += ", " + in.PriorityOther
	}
	return s
}

// scopeLine joins the scope selections and the free-text scope.
func scopeLine(in *domain.Intake) string {
	s := strings.Join(in.Scope, ", ")
	if in.ScopeOther != "" {
		s += ", " + in.ScopeOther
	}
	return s
}
