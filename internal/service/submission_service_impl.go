package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/importer"
	"github.com/alexanderramin/briefsmith/internal/notify"
	"github.com/google/uuid"
)

// DeliveryAdvisory is shown when the notification could not be confirmed.
const DeliveryAdvisory = "Note: Email delivery could not be confirmed. Please use the download option to save your submission."

// DefaultDeliveryWait bounds how long Submit waits on the notifier after the
// brief is ready.
const DefaultDeliveryWait = 10 * time.Second

type submissionService struct {
	briefs   BriefService
	notifier notify.Notifier
	wait     time.Duration
	observer UseCaseObserver
}

func NewSubmissionService(
	briefs BriefService,
	notifier notify.Notifier,
	wait time.Duration,
	observers ...UseCaseObserver,
) SubmissionService {
	if notifier == nil {
		notifier = notify.DisabledNotifier{}
	}
	if wait <= 0 {
		wait = DefaultDeliveryWait
	}
	return &submissionService{
		briefs:   briefs,
		notifier: notifier,
		wait:     wait,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Submit validates the intake and synthesizes the brief, then sends the
// notification and waits for it up to the delivery window. Nothing is sent
// when generation fails. The brief is returned whatever happens to delivery.
func (s *submissionService) Submit(ctx context.Context, in *domain.Intake) (sub *Submission, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"company": in.CompanyName,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit-intake",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = importer.Check(in); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	fields["submission_id"] = id

	var b *domain.Brief
	b, err = s.briefs.Generate(ctx, in)
	if err != nil {
		return nil, err
	}

	sub = &Submission{ID: id, Brief: b}

	// Buffered so the sender never blocks if we stop waiting.
	sent := make(chan error, 1)
	go func() {
		sent <- s.notifier.Send(context.WithoutCancel(ctx), id, in)
	}()

	timer := time.NewTimer(s.wait)
	defer timer.Stop()

	var sendErr error
	select {
	case sendErr = <-sent:
	case <-timer.C:
		sendErr = notify.ErrTimeout
	case <-ctx.Done():
		sendErr = ctx.Err()
	}

	switch {
	case sendErr == nil:
		sub.Delivered = true
	case errors.Is(sendErr, notify.ErrDisabled):
	default:
		sub.Advisory = DeliveryAdvisory
		fields["notify_error"] = sendErr.Error()
	}
	fields["delivered"] = sub.Delivered
	return sub, nil
}
