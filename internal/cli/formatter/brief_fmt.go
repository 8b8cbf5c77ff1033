package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// stackCellWidth keeps the stack table inside an 80-column terminal.
const stackCellWidth = 60

// FormatBrief renders the full advisory document for the terminal.
func FormatBrief(in *domain.Intake, b *domain.Brief) string {
	var out strings.Builder

	meta := []string{
		ComplexityBadge(b.Complexity),
		Dim(Plural(len(in.Scope), "deliverable")),
	}
	if in.Involvement != "" {
		meta = append(meta, Dim(in.Involvement))
	}
	if in.Deadline != "" {
		meta = append(meta, StyleYellow.Render("Deadline: "+in.Deadline))
	}
	summary := b.ExecutiveSummary + "\n\n" + strings.Join(meta, Dim("  ·  "))
	out.WriteString(RenderBox("Internal Project Brief", summary) + "\n\n")

	out.WriteString(Header("Technical Requirements") + "\n")
	for _, c := range b.TechReqs {
		out.WriteString(Bold(c.Category) + "\n")
		out.WriteString(Bullets(StyleDim.Render("-"), c.Items))
	}
	if len(b.FuncReqs) > 0 {
		out.WriteString(Bold("Client's Functional Description") + "\n")
		out.WriteString(Bullets(StyleDim.Render("›"), b.FuncReqs))
	}
	out.WriteString("\n")

	out.WriteString(Header("Marketing Strategy Brief") + "\n")
	out.WriteString(LabelValues(b.MktBrief) + "\n")

	if len(b.Positioning) > 0 {
		out.WriteString(Header("Positioning") + "\n")
		out.WriteString(LabelValues(b.Positioning) + "\n")
	}
	if len(b.Expectations) > 0 {
		out.WriteString(Header("Client Expectations") + "\n")
		out.WriteString(LabelValues(b.Expectations) + "\n")
	}

	if len(b.Stack) > 0 {
		out.WriteString(Header("Recommended Stack & Tools") + "\n")
		rows := make([][]string, len(b.Stack))
		for i, s := range b.Stack {
			rows[i] = []string{s.Tool, s.Reason}
		}
		out.WriteString(RenderTable([]string{"TOOL", "WHY"}, rows, stackCellWidth) + "\n")
	}

	out.WriteString(Header("Deliverables Checklist") + "\n")
	for _, d := range b.Deliverables {
		out.WriteString(Bold(d.Scope) + "\n")
		out.WriteString(Bullets(StyleGreen.Render("[ ]"), d.Items))
	}
	out.WriteString("\n")

	out.WriteString(Header("Complexity Assessment") + "\n")
	out.WriteString("  " + RenderComplexityMeter(b.Complexity, 20) + "\n")
	out.WriteString(Bullets(StyleDim.Render("-"), b.Complexity.Reasons) + "\n")

	out.WriteString(Header("Red Flags & Risks") + "\n")
	for _, r := range b.Risks {
		fmt.Fprintf(&out, "  %s %s %s\n", StyleRed.Render("!"), StyleYellow.Render(r.Flag+":"), r.Note)
	}
	out.WriteString("\n")

	out.WriteString(Header("Discovery Questions") + "  " + Dim("ask these in the kickoff call") + "\n")
	out.WriteString(Numbered(b.Questions) + "\n")

	if len(b.Upsells) > 0 {
		out.WriteString(Header("Phase 2 / Upsell Opportunities") + "\n")
		for _, u := range b.Upsells {
			fmt.Fprintf(&out, "  %s %s %s\n", StylePurple.Render("+"), Bold(u.Idea+":"), u.Reason)
		}
		out.WriteString("\n")
	}

	out.WriteString(Header("Solution Blueprint") + "\n")
	for _, p := range b.Blueprint {
		out.WriteString(StyleBlue.Render(p.Title) + "\n")
		out.WriteString(Bullets(StyleDim.Render("-"), p.Items))
	}

	return out.String()
}

// FormatValidation renders validation problems, or a success line when there
// are none.
func FormatValidation(path string, errs []error) string {
	if len(errs) == 0 {
		return StyleGreen.Render("✔ ") + path + Dim(" is a complete intake") + "\n"
	}
	var out strings.Builder
	fmt.Fprintf(&out, "%s %s %s\n", StyleRed.Render("✖"), path, Dim(fmt.Sprintf("has %s", Plural(len(errs), "problem"))))
	for _, err := range errs {
		fmt.Fprintf(&out, "  %s %s\n", StyleRed.Render("-"), err.Error())
	}
	return out.String()
}

// FormatDelivery renders the outcome of sending a submission notification.
func FormatDelivery(id string, delivered bool, advisory string) string {
	switch {
	case delivered:
		return StyleGreen.Render("✔ Submission sent") + Dim(" ("+id+")") + "\n"
	case advisory != "":
		return StyleYellow.Render(advisory) + "\n"
	default:
		return Dim("Submission recorded locally ("+id+"); notifications are disabled.") + "\n"
	}
}
