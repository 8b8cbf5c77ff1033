package export

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
	"|", `\|`,
)

// md escapes inline markdown so client text renders literally.
func md(s string) string {
	return mdEscaper.Replace(Sanitize(s))
}

// Markdown renders the brief as a GitHub-flavoured markdown document.
// Optional sections (stack, upsells, functional description) are omitted
// when empty.
func Markdown(in *domain.Intake, b *domain.Brief) string {
	var w strings.Builder

	fmt.Fprintf(&w, "# Internal Project Brief: %s\n\n", md(in.CompanyName))
	w.WriteString("What the client actually needs, in terms your team can execute on.\n\n")

	w.WriteString("## Executive Summary\n\n")
	w.WriteString(md(b.ExecutiveSummary) + "\n\n")
	meta := []string{
		fmt.Sprintf("**Complexity: %s**", b.Complexity.Level),
		deliverableCount(len(in.Scope)),
	}
	if in.Involvement != "" {
		meta = append(meta, md(in.Involvement))
	}
	if in.Deadline != "" {
		meta = append(meta, "Deadline: "+md(in.Deadline))
	}
	w.WriteString(strings.Join(meta, " · ") + "\n\n")

	w.WriteString("## Technical Requirements\n\n")
	for _, c := range b.TechReqs {
		fmt.Fprintf(&w, "### %s\n\n%s\n", md(c.Category), mdList("- ", c.Items))
	}
	if len(b.FuncReqs) > 0 {
		w.WriteString("### Client's Functional Description\n\n")
		for _, r := range b.FuncReqs {
			w.WriteString(md(r) + "\n\n")
		}
	}

	w.WriteString("## Marketing Strategy Brief\n\n")
	w.WriteString(mdLabelled(b.MktBrief))

	if len(b.Positioning) > 0 {
		w.WriteString("## Positioning\n\n")
		w.WriteString(mdLabelled(b.Positioning))
	}
	if len(b.Expectations) > 0 {
		w.WriteString("## Client Expectations\n\n")
		w.WriteString(mdLabelled(b.Expectations))
	}

	if len(b.Stack) > 0 {
		w.WriteString("## Recommended Stack & Tools\n\n")
		for _, s := range b.Stack {
			fmt.Fprintf(&w, "- **%s** — %s\n", md(s.Tool), md(s.Reason))
		}
		w.WriteString("\n")
	}

	w.WriteString("## Deliverables Checklist\n\n")
	for _, d := range b.Deliverables {
		fmt.Fprintf(&w, "### %s\n\n%s\n", md(d.Scope), mdList("- [ ] ", d.Items))
	}

	w.WriteString("## Complexity Assessment\n\n")
	fmt.Fprintf(&w, "**%s** (score: %d)\n\n", b.Complexity.Level, b.Complexity.Score)
	if len(b.Complexity.Reasons) > 0 {
		w.WriteString(mdList("- ", b.Complexity.Reasons) + "\n")
	}

	w.WriteString("## Red Flags & Risks\n\n")
	for _, r := range b.Risks {
		fmt.Fprintf(&w, "- **%s:** %s\n", md(r.Flag), md(r.Note))
	}
	w.WriteString("\n")

	w.WriteString("## Discovery Questions\n\n_Ask these in the kickoff call._\n\n")
	for i, q := range b.Questions {
		fmt.Fprintf(&w, "%d. %s\n", i+1, md(q))
	}
	w.WriteString("\n")

	if len(b.Upsells) > 0 {
		w.WriteString("## Phase 2 / Upsell Opportunities\n\n")
		for _, u := range b.Upsells {
			fmt.Fprintf(&w, "- **%s:** %s\n", md(u.Idea), md(u.Reason))
		}
		w.WriteString("\n")
	}

	w.WriteString("## Solution Blueprint\n\n")
	for _, p := range b.Blueprint {
		fmt.Fprintf(&w, "### %s\n\n%s\n", md(p.Title), mdList("- ", p.Items))
	}

	return strings.TrimRight(w.String(), "\n") + "\n"
}

func deliverableCount(n int) string {
	if n == 1 {
		return "1 deliverable"
	}
	return fmt.Sprintf("%d deliverables", n)
}

func mdList(marker string, items []string) string {
	var w strings.Builder
	for _, s := range items {
		w.WriteString(marker + md(s) + "\n")
	}
	return w.String()
}

func mdLabelled(entries []domain.LabelValue) string {
	var w strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&w, "- **%s:** %s\n", md(e.Label), md(e.Value))
	}
	w.WriteString("\n")
	return w.String()
}
