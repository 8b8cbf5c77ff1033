package domain

// Brief is the advisory document produced for one Intake. It is built fresh
// on every call and never mutated after assembly.
type Brief struct {
	ExecutiveSummary string           `json:"executiveSummary"`
	TechReqs         []TechCategory   `json:"techReqs"`
	FuncReqs         []string         `json:"funcReqs"`
	MktBrief         []LabelValue     `json:"mktBrief"`
	Positioning      []LabelValue     `json:"positioning"`
	Expectations     []LabelValue     `json:"expectations"`
	Stack            []StackItem      `json:"stack"`
	Deliverables     []Deliverable    `json:"deliverables"`
	Complexity       Complexity       `json:"complexity"`
	Risks            []Risk           `json:"risks"`
	Questions        []string         `json:"questions"`
	Upsells          []Upsell         `json:"upsells"`
	Blueprint        []BlueprintPhase `json:"blueprint"`
}

type TechCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type LabelValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type StackItem struct {
	Tool   string `json:"tool"`
	Reason string `json:"reason"`
}

type Deliverable struct {
	Scope string   `json:"scope"`
	Items []string `json:"items"`
}

// Complexity is the banded effort estimate. Color is a display token only.
type Complexity struct {
	Level   ComplexityLevel `json:"level"`
	Color   string          `json:"color"`
	Score   int             `json:"score"`
	Reasons []string        `json:"reasons"`
}

type Risk struct {
	Flag string `json:"flag"`
	Note string `json:"note"`
}

type Upsell struct {
	Idea   string `json:"idea"`
	Reason string `json:"reason"`
}

type BlueprintPhase struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}
