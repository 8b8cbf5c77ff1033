package complexity

import (
	"fmt"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// Band thresholds: scores up to LowMax are Low, up to MediumMax are Medium.
const (
	LowMax    = 5
	MediumMax = 10
)

var bandColors = map[domain.ComplexityLevel]string{
	domain.ComplexityLow:    "#10b981",
	domain.ComplexityMedium: "#f59e0b",
	domain.ComplexityHigh:   "#ef4444",
}

// Assess scores the intake and collects the human-readable reasons.
//
// The score and the reasons come from two separate predicate sets. They agree
// in direction but not in magnitude; automation, for instance, only moves the
// score on larger scopes while it always earns a reason.
func Assess(in *domain.Intake, w Weights) domain.Complexity {
	score := Score(in, w)
	level := Band(score)
	return domain.Complexity{
		Level:   level,
		Color:   bandColors[level],
		Score:   score,
		Reasons: Reasons(in),
	}
}

// Band maps a score onto Low/Medium/High.
func Band(score int) domain.ComplexityLevel {
	switch {
	case score <= LowMax:
		return domain.ComplexityLow
	case score <= MediumMax:
		return domain.ComplexityMedium
	default:
		return domain.ComplexityHigh
	}
}

// BandColor returns the display color token for a level.
func BandColor(level domain.ComplexityLevel) string {
	return bandColors[level]
}

// Score is the weighted sum of independent contributions.
func Score(in *domain.Intake, w Weights) int {
	factors := []func(*domain.Intake, Weights) int{
		scorePerScope,
		scoreInternalTool,
		scoreAutomation,
		scoreCRM,
		scoreLongFlow,
		scoreToolAccess,
		scoreDeadline,
		scoreExclusions,
	}
	var score int
	for _, f := range factors {
		score += f(in, w)
	}
	return score
}

func scorePerScope(in *domain.Intake, w Weights) int {
	return len(in.Scope) * w.PerScopeItem
}

func scoreInternalTool(in *domain.Intake, w Weights) int {
	if in.HasScope(domain.ScopeInternalTool) {
		return w.InternalTool
	}
	return 0
}

func scoreAutomation(in *domain.Intake, w Weights) int {
	if in.HasScope(domain.ScopeAutomation) && len(in.Scope) > w.AutomationMinScope {
		return w.Automation
	}
	return 0
}

func scoreCRM(in *domain.Intake, w Weights) int {
	if in.HasScope(domain.ScopeCRM) {
		return w.CRM
	}
	return 0
}

func scoreLongFlow(in *domain.Intake, w Weights) int {
	if len(in.FlowSteps) > w.LongFlowSteps {
		return w.LongFlow
	}
	return 0
}

func scoreToolAccess(in *domain.Intake, w Weights) int {
	if in.ToolAccess != "" {
		return w.ToolAccess
	}
	return 0
}

func scoreDeadline(in *domain.Intake, w Weights) int {
	if in.Deadline != "" {
		return w.Deadline
	}
	return 0
}

func scoreExclusions(in *domain.Intake, w Weights) int {
	if in.Exclusions != "" {
		return w.Exclusions
	}
	return 0
}

// Reasons explains the assessment in plain language.
func Reasons(in *domain.Intake) []string {
	rules := []func(*domain.Intake) (string, bool){
		reasonManyWorkstreams,
		reasonCustomApp,
		reasonAutomation,
		reasonLongFlow,
		reasonDeadline,
		reasonFocusedScope,
		reasonMinimalInvolvement,
		reasonStepReview,
	}
	reasons := []string{}
	for _, r := range rules {
		if msg, ok := r(in); ok {
			reasons = append(reasons, msg)
		}
	}
	return reasons
}

func reasonManyWorkstreams(in *domain.Intake) (string, bool) {
	if len(in.Scope) >= 4 {
		return fmt.Sprintf("%d scope items means multiple workstreams", len(in.Scope)), true
	}
	return "", false
}

func reasonCustomApp(in *domain.Intake) (string, bool) {
	if in.HasScope(domain.ScopeInternalTool) {
		return "Custom app development adds significant build time", true
	}
	return "", false
}

func reasonAutomation(in *domain.Intake) (string, bool) {
	if in.HasScope(domain.ScopeAutomation) {
		return "Automation across multiple systems requires integration testing", true
	}
	return "", false
}

func reasonLongFlow(in *domain.Intake) (string, bool) {
	if len(in.FlowSteps) > 4 {
		return fmt.Sprintf("Multi-step user flow (%d steps) requires thorough QA", len(in.FlowSteps)), true
	}
	return "", false
}

func reasonDeadline(in *domain.Intake) (string, bool) {
	if in.Deadline != "" {
		return fmt.Sprintf("Hard deadline (%s) limits flexibility", in.Deadline), true
	}
	return "", false
}

func reasonFocusedScope(in *domain.Intake) (string, bool) {
	if len(in.Scope) <= 2 && !in.HasScope(domain.ScopeInternalTool) {
		return "Focused scope keeps this manageable", true
	}
	return "", false
}

func reasonMinimalInvolvement(in *domain.Intake) (string, bool) {
	if in.Involvement == string(domain.InvolvementMinimal) {
		return "Minimal client involvement speeds up execution", true
	}
	return "", false
}

func reasonStepReview(in *domain.Intake) (string, bool) {
	if in.Involvement == string(domain.InvolvementEveryStep) {
		return "Step-by-step review adds feedback cycles to timeline", true
	}
	return "", false
}
