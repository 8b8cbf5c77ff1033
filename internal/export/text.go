package export

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

const (
	heavyRule = "========================================"
	lightRule = "----------------------------------------"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename is the download name for the text export:
// project-start-<company with whitespace runs as dashes, lowercased>-<signDate>.txt
func Filename(in *domain.Intake) string {
	slug := strings.ToLower(whitespaceRun.ReplaceAllString(in.CompanyName, "-"))
	return "project-start-" + sanitizeFilename(slug) + "-" + sanitizeFilename(in.SignDate) + ".txt"
}

// Text renders the full plain-text submission summary: the intake, the
// translated brief, the planning prompt and the blueprint.
func Text(in *domain.Intake, b *domain.Brief) string {
	var w strings.Builder

	w.WriteString("PROJECT START FORM - SUBMISSION SUMMARY\n")
	w.WriteString(heavyRule + "\n")
	fmt.Fprintf(&w, "Date: %s\n", in.SignDate)
	fmt.Fprintf(&w, "Company: %s\n", in.CompanyName)
	fmt.Fprintf(&w, "Contact: %s (%s)\n\n", in.ContactName, in.Email)

	section(&w, lightRule, "PROJECT OVERVIEW")
	fmt.Fprintf(&w, "Objective: %s\n", in.OneSentence)
	fmt.Fprintf(&w, "Problem: %s\n", in.Problem)
	fmt.Fprintf(&w, "Success: %s\n", in.Success)
	fmt.Fprintf(&w, "Deadline: %s\n\n", or(in.Deadline, "Flexible"))
	fmt.Fprintf(&w, "Scope: %s\n", scopeLine(in))
	fmt.Fprintf(&w, "Description: %s\n", in.ScopeDescription)
	fmt.Fprintf(&w, "Exclusions: %s\n\n", or(in.Exclusions, "None"))

	section(&w, lightRule, "SOURCE MATERIALS")
	fmt.Fprintf(&w, "Website: %s\n", or(in.WebsiteURL, "None"))
	fmt.Fprintf(&w, "Content: %s\n", or(in.ExistingContent, "None"))
	fmt.Fprintf(&w, "Brand Assets: %s\n", or(in.BrandAssets, "None"))
	fmt.Fprintf(&w, "Media: %s\n", or(in.MediaAssets, "None"))
	fmt.Fprintf(&w, "Customer Data: %s\n", or(in.CustomerData, "None"))
	fmt.Fprintf(&w, "Offers: %s\n", or(in.OfferDetails, "None"))
	fmt.Fprintf(&w, "Past Marketing: %s\n", or(in.PastMarketing, "None"))
	fmt.Fprintf(&w, "Case Studies: %s\n", or(in.CaseStudies, "None"))
	fmt.Fprintf(&w, "Tool Access: %s\n\n", or(in.ToolAccess, "None"))

	section(&w, lightRule, "USER FLOW")
	w.WriteString(numbered(in.FlowSteps) + "\n\n")

	section(&w, lightRule, "EXPECTATIONS")
	fmt.Fprintf(&w, "Priorities: %s\n", priorities(in))
	fmt.Fprintf(&w, "Involvement: %s\n", in.Involvement)
	fmt.Fprintf(&w, "Notes: %s\n", or(in.FinalNotes, "None"))
	fmt.Fprintf(&w, "Signature: %s\n\n", in.Signature)

	section(&w, heavyRule, "TRANSLATION (Technical & Marketing)")
	w.WriteString(Translation(b) + "\n\n")

	section(&w, heavyRule, "AI PROMPT")
	w.WriteString(Prompt(in) + "\n\n")

	section(&w, heavyRule, "SOLUTION BLUEPRINT")
	w.WriteString(blueprintText(b.Blueprint) + "\n")

	return Sanitize(w.String())
}

// Translation renders only the brief, in the layout used inside Text.
func Translation(b *domain.Brief) string {
	lines := []string{
		"EXECUTIVE SUMMARY",
		b.ExecutiveSummary,
		fmt.Sprintf("Complexity: %s (score: %d)", b.Complexity.Level, b.Complexity.Score),
		"",
		"TECHNICAL REQUIREMENTS",
	}
	for _, c := range b.TechReqs {
		lines = append(lines, c.Category+":\n"+prefixed("  - ", c.Items))
	}

	lines = append(lines, "", "MARKETING STRATEGY")
	for _, m := range b.MktBrief {
		lines = append(lines, "  "+m.Label+": "+m.Value)
	}

	lines = append(lines, "", "RECOMMENDED STACK")
	for _, s := range b.Stack {
		lines = append(lines, "  "+s.Tool+" — "+s.Reason)
	}

	lines = append(lines, "", "DELIVERABLES")
	for _, d := range b.Deliverables {
		lines = append(lines, d.Scope+":\n"+prefixed("  [ ] ", d.Items))
	}

	lines = append(lines, "", "COMPLEXITY FACTORS")
	for _, r := range b.Complexity.Reasons {
		lines = append(lines, "  - "+r)
	}

	lines = append(lines, "", "RED FLAGS & RISKS")
	for _, r := range b.Risks {
		lines = append(lines, "  ! "+r.Flag+": "+r.Note)
	}

	lines = append(lines, "", "DISCOVERY QUESTIONS")
	for i, q := range b.Questions {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, q))
	}

	lines = append(lines, "", "PHASE 2 / UPSELL OPPORTUNITIES")
	for _, u := range b.Upsells {
		lines = append(lines, "  + "+u.Idea+": "+u.Reason)
	}

	return strings.Join(lines, "\n")
}

func section(w *strings.Builder, rule, title string) {
	w.WriteString(rule + "\n" + title + "\n" + rule + "\n")
}

func prefixed(prefix string, items []string) string {
	lines := make([]string, len(items))
	for i, s := range items {
		lines[i] = prefix + s
	}
	return strings.Join(lines, "\n")
}

func blueprintText(phases []domain.BlueprintPhase) string {
	blocks := make([]string, len(phases))
	for i, p := range phases {
		blocks[i] = p.Title + "\n" + prefixed("  - ", p.Items)
	}
	return strings.Join(blocks, "\n\n")
}

// Sanitize drops control characters other than newline and tab.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '"' || unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}
