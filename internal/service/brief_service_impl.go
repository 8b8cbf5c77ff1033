package service

import (
	"context"
	"time"

	"github.com/alexanderramin/briefsmith/internal/brief"
	"github.com/alexanderramin/briefsmith/internal/complexity"
	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/export"
	"github.com/alexanderramin/briefsmith/internal/importer"
)

type briefService struct {
	weights  complexity.Weights
	observer UseCaseObserver
}

func NewBriefService(weights complexity.Weights, observers ...UseCaseObserver) BriefService {
	return &briefService{
		weights:  weights,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *briefService) Generate(ctx context.Context, in *domain.Intake) (b *domain.Brief, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"company":     in.CompanyName,
		"scope_count": len(in.Scope),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-brief",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	b = brief.Synthesize(in, s.weights)
	fields["complexity"] = string(b.Complexity.Level)
	fields["score"] = b.Complexity.Score
	return b, nil
}

func (s *briefService) Prompt(ctx context.Context, in *domain.Intake) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return export.Prompt(in), nil
}

func (s *briefService) Validate(_ context.Context, in *domain.Intake) []error {
	return importer.ValidateIntake(in)
}
