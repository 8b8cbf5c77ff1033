// Package notify relays submitted intakes to an external form endpoint.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// Notifier delivers a submission to whoever needs to act on it.
type Notifier interface {
	// Send posts the intake. A nil error means the endpoint acknowledged it.
	Send(ctx context.Context, submissionID string, in *domain.Intake) error
}

// httpNotifier implements Notifier against a JSON form relay.
type httpNotifier struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPNotifier creates a Notifier that POSTs payloads to cfg.Endpoint.
func NewHTTPNotifier(cfg Config, observer Observer) Notifier {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpNotifier{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// rejectedError marks a response the relay refused outright; retrying won't help.
type rejectedError struct {
	status int
	body   string
}

func (e *rejectedError) Error() string {
	return fmt.Sprintf("endpoint returned status %d: %s", e.status, e.body)
}

func (n *httpNotifier) Send(ctx context.Context, submissionID string, in *domain.Intake) error {
	if !n.cfg.Enabled {
		return ErrDisabled
	}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(n.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	data, err := json.Marshal(BuildPayload(submissionID, in))
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	var lastErr error
	attempts := 1 + n.cfg.MaxRetries
	made := 0

	for i := 0; i < attempts; i++ {
		made++
		err := n.doRequest(ctx, data)
		if err == nil {
			n.observer.OnCallComplete(CallEvent{
				SubmissionID: submissionID,
				Endpoint:     n.cfg.Endpoint,
				LatencyMs:    time.Since(start).Milliseconds(),
				Attempts:     made,
				Success:      true,
			})
			return nil
		}
		lastErr = err

		// 4xx answers and cancelled contexts are final
		var rej *rejectedError
		if ctx.Err() != nil || (errors.As(err, &rej) && rej.status < 500) {
			break
		}
	}

	n.observer.OnCallComplete(CallEvent{
		SubmissionID: submissionID,
		Endpoint:     n.cfg.Endpoint,
		LatencyMs:    time.Since(start).Milliseconds(),
		Attempts:     made,
		Success:      false,
		ErrorCode:    errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(lastErr) {
		return ErrUnavailable
	}
	var rej *rejectedError
	if errors.As(lastErr, &rej) && rej.status < 500 {
		return fmt.Errorf("%w: %v", ErrRejected, lastErr)
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (n *httpNotifier) doRequest(ctx context.Context, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &rejectedError{status: resp.StatusCode, body: string(body)}
	}
	return nil
}

// isConnectionError checks if an error is a network connection error.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

// errorCode returns a short error classification string.
func errorCode(err error) string {
	if err == nil {
		return ""
	}
	var rej *rejectedError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case isConnectionError(err):
		return "connection"
	case errors.As(err, &rej):
		return fmt.Sprintf("status_%d", rej.status)
	default:
		return "unknown"
	}
}

// DisabledNotifier never delivers. It is used when no endpoint is configured.
type DisabledNotifier struct{}

func (DisabledNotifier) Send(context.Context, string, *domain.Intake) error { return ErrDisabled }
