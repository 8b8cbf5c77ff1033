package testutil

import (
	"github.com/alexanderramin/briefsmith/internal/domain"
)

// IntakeOption customises a test intake.
type IntakeOption func(*domain.Intake)

func WithCompany(name string) IntakeOption {
	return func(in *domain.Intake) {
		in.CompanyName = name
	}
}

func WithScope(options ...domain.ScopeOption) IntakeOption {
	return func(in *domain.Intake) {
		in.Scope = make([]string, 0, len(options))
		for _, o := range options {
			in.Scope = append(in.Scope, string(o))
		}
	}
}

func WithPriority(options ...domain.PriorityOption) IntakeOption {
	return func(in *domain.Intake) {
		in.Priority = make([]string, 0, len(options))
		for _, o := range options {
			in.Priority = append(in.Priority, string(o))
		}
	}
}

func WithInvolvement(v domain.Involvement) IntakeOption {
	return func(in *domain.Intake) {
		in.Involvement = string(v)
	}
}

func WithProblem(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.Problem = s
	}
}

func WithSuccess(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.Success = s
	}
}

func WithOneSentence(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.OneSentence = s
	}
}

func WithDeadline(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.Deadline = s
	}
}

func WithFlowSteps(steps ...string) IntakeOption {
	return func(in *domain.Intake) {
		in.FlowSteps = steps
	}
}

func WithToolAccess(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.ToolAccess = s
	}
}

func WithExclusions(s string) IntakeOption {
	return func(in *domain.Intake) {
		in.Exclusions = s
	}
}

func WithIntake(fn func(*domain.Intake)) IntakeOption {
	return fn
}

// NewTestIntake returns a valid, signed intake for a one-page website.
// Options are applied in order after the defaults.
func NewTestIntake(opts ...IntakeOption) *domain.Intake {
	in := &domain.Intake{
		CompanyName: "Acme",
		ContactName: "Jane Doe",
		Email:       "jane@acme.test",
		BestContact: "Email",
		OneSentence: "A landing page for our spring launch.",
		Problem:     "Our site is outdated.",
		Success:     "A site we are proud to share.",
		Scope:       []string{string(domain.ScopeWebsite)},
		FlowSteps:   []string{},
		Priority:    []string{string(domain.PriorityQuality)},
		Involvement: string(domain.InvolvementMilestones),
		Signature:   "Jane Doe",
		SignDate:    "2026-03-01",
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// NewEmptyIntake returns an intake with every field at its zero value except
// the sequences, which are empty.
func NewEmptyIntake(opts ...IntakeOption) *domain.Intake {
	in := &domain.Intake{
		Scope:     []string{},
		FlowSteps: []string{},
		Priority:  []string{},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}
