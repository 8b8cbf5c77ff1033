package service

import (
	"context"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// BriefService turns intakes into advisory documents and their derivatives.
type BriefService interface {
	// Generate synthesizes the brief. It never fails on content; only a
	// cancelled context is reported.
	Generate(ctx context.Context, in *domain.Intake) (*domain.Brief, error)

	// Prompt renders the planning prompt for the intake.
	Prompt(ctx context.Context, in *domain.Intake) (string, error)

	// Validate returns every problem that would stop the wizard from submitting.
	Validate(ctx context.Context, in *domain.Intake) []error
}

// SubmissionService accepts a completed intake from the wizard or the API.
type SubmissionService interface {
	Submit(ctx context.Context, in *domain.Intake) (*Submission, error)
}

// Submission is the outcome of accepting one intake.
type Submission struct {
	ID        string        `json:"id"`
	Brief     *domain.Brief `json:"document"`
	Delivered bool          `json:"delivered"`
	Advisory  string        `json:"advisory,omitempty"`
}
