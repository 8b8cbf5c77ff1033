package notify

import "errors"

var (
	// ErrUnavailable indicates the notification endpoint is unreachable.
	ErrUnavailable = errors.New("notification endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("notification request timed out")

	// ErrRejected indicates the endpoint answered with a non-2xx status.
	ErrRejected = errors.New("notification rejected")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("notification retry attempts exhausted")

	// ErrDisabled indicates notifications are turned off in configuration.
	ErrDisabled = errors.New("notifications disabled")
)
