package complexity

import (
	"os"
	"strconv"
)

// Weights are the policy constants behind the complexity score.
type Weights struct {
	PerScopeItem       int
	InternalTool       int
	Automation         int
	AutomationMinScope int // automation counts only when scope size exceeds this
	CRM                int
	LongFlow           int
	LongFlowSteps      int // flows with more steps than this count as long
	ToolAccess         int
	Deadline           int
	Exclusions         int
}

// DefaultWeights returns the standard scoring policy.
func DefaultWeights() Weights {
	return Weights{
		PerScopeItem:       2,
		InternalTool:       3,
		Automation:         2,
		AutomationMinScope: 2,
		CRM:                1,
		LongFlow:           2,
		LongFlowSteps:      4,
		ToolAccess:         1,
		Deadline:           1,
		Exclusions:         1,
	}
}

// LoadWeights reads weight overrides from BRIEFSMITH_WEIGHT_* environment
// variables, falling back to defaults for unset or invalid values.
func LoadWeights() Weights {
	w := DefaultWeights()
	applyWeightEnv(&w.PerScopeItem, "BRIEFSMITH_WEIGHT_PER_SCOPE_ITEM")
	applyWeightEnv(&w.InternalTool, "BRIEFSMITH_WEIGHT_INTERNAL_TOOL")
	applyWeightEnv(&w.Automation, "BRIEFSMITH_WEIGHT_AUTOMATION")
	applyWeightEnv(&w.AutomationMinScope, "BRIEFSMITH_WEIGHT_AUTOMATION_MIN_SCOPE")
	applyWeightEnv(&w.CRM, "BRIEFSMITH_WEIGHT_CRM")
	applyWeightEnv(&w.LongFlow, "BRIEFSMITH_WEIGHT_LONG_FLOW")
	applyWeightEnv(&w.LongFlowSteps, "BRIEFSMITH_WEIGHT_LONG_FLOW_STEPS")
	applyWeightEnv(&w.ToolAccess, "BRIEFSMITH_WEIGHT_TOOL_ACCESS")
	applyWeightEnv(&w.Deadline, "BRIEFSMITH_WEIGHT_DEADLINE")
	applyWeightEnv(&w.Exclusions, "BRIEFSMITH_WEIGHT_EXCLUSIONS")
	return w
}

func applyWeightEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return
	}
	*dst = n
}
