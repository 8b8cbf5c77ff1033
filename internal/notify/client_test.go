package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	return cfg
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) { o.events = append(o.events, e) }

func TestHTTPNotifier_Send_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "New Project Submission: Acme [sub-1]", body["_subject"])
		assert.Equal(t, "Website / Landing Page, CRM Setup", body["Scope"])
		assert.Equal(t, "Visit -> Sign up", body["User Flow"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	n := NewHTTPNotifier(testConfig(srv.URL), obs)
	in := testutil.NewTestIntake(
		testutil.WithScope(domain.ScopeWebsite, domain.ScopeCRM),
		testutil.WithFlowSteps("Visit", "Sign up"),
	)

	require.NoError(t, n.Send(context.Background(), "sub-1", in))
	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "sub-1", obs.events[0].SubmissionID)
	assert.Equal(t, 1, obs.events[0].Attempts)
}

func TestHTTPNotifier_Send_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	n := NewHTTPNotifier(cfg, nil)

	err := n.Send(context.Background(), "sub-1", testutil.NewTestIntake())
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestHTTPNotifier_Send_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	n := NewHTTPNotifier(cfg, NoopObserver{})
	err := n.Send(context.Background(), "sub-1", testutil.NewTestIntake())

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPNotifier_Send_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 1000

	n := NewHTTPNotifier(cfg, NoopObserver{})
	err := n.Send(context.Background(), "sub-1", testutil.NewTestIntake())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPNotifier_Send_RetryOnServerError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	obs := &recordingObserver{}
	n := NewHTTPNotifier(cfg, obs)
	require.NoError(t, n.Send(context.Background(), "sub-1", testutil.NewTestIntake()))
	assert.Equal(t, int32(2), attempts.Load())
	require.Len(t, obs.events, 1)
	assert.Equal(t, 2, obs.events[0].Attempts)
}

func TestHTTPNotifier_Send_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2

	obs := &recordingObserver{}
	n := NewHTTPNotifier(cfg, obs)
	err := n.Send(context.Background(), "sub-1", testutil.NewTestIntake())

	assert.ErrorIs(t, err, ErrRetryExhausted)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "status_500", obs.events[0].ErrorCode)
	assert.Equal(t, 3, obs.events[0].Attempts)
}

func TestHTTPNotifier_Send_RejectedIsNotRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"bad email"}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3

	n := NewHTTPNotifier(cfg, NoopObserver{})
	err := n.Send(context.Background(), "sub-1", testutil.NewTestIntake())

	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestBuildPayload_EmptyIntake(t *testing.T) {
	p := BuildPayload("", testutil.NewEmptyIntake())

	assert.Equal(t, "New Project Submission: ", p["_subject"])
	assert.Equal(t, "", p["Scope"])
	assert.Equal(t, "", p["User Flow"])
	assert.Len(t, p, 31)
}

func TestBuildPayload_SubjectCarriesSubmissionID(t *testing.T) {
	p := BuildPayload("sub-42", testutil.NewTestIntake())

	assert.Equal(t, "New Project Submission: Acme [sub-42]", p["_subject"])
	assert.Equal(t, "Acme", p["Company Name"])
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BRIEFSMITH_NOTIFY_ENABLED", "true")
	t.Setenv("BRIEFSMITH_NOTIFY_ENDPOINT", "http://relay.test/f/abc")
	t.Setenv("BRIEFSMITH_NOTIFY_TIMEOUT_MS", "1500")
	t.Setenv("BRIEFSMITH_NOTIFY_MAX_RETRIES", "0")
	t.Setenv("BRIEFSMITH_NOTIFY_LOG_CALLS", "yes") // not a bool, stays default

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://relay.test/f/abc", cfg.Endpoint)
	assert.Equal(t, 1500, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
	assert.False(t, cfg.LogCalls)
}
