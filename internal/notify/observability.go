package notify

import (
	"io"
	"log/slog"
)

// CallEvent records metadata about a single notification attempt sequence.
type CallEvent struct {
	SubmissionID string
	Endpoint     string
	LatencyMs    int64
	Attempts     int
	Success      bool
	ErrorCode    string
}

// Observer receives events about notification calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes notification events through a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"submission_id", event.SubmissionID,
		"endpoint", event.Endpoint,
		"latency_ms", event.LatencyMs,
		"attempts", event.Attempts,
	}
	if !event.Success {
		o.logger.Warn("notify_call", append(attrs, "status", "err:"+event.ErrorCode)...)
		return
	}
	o.logger.Info("notify_call", append(attrs, "status", "ok")...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
