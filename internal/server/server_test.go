package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/briefsmith/internal/complexity"
	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/notify"
	"github.com/alexanderramin/briefsmith/internal/service"
	"github.com/alexanderramin/briefsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct{ err error }

func (n stubNotifier) Send(context.Context, string, *domain.Intake) error { return n.err }

func newTestServer(t *testing.T, n notify.Notifier) http.Handler {
	t.Helper()
	briefs := service.NewBriefService(complexity.DefaultWeights())
	subs := service.NewSubmissionService(briefs, n, time.Second)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(DefaultConfig(), briefs, subs, logger).Router()
}

func intakeBody(t *testing.T, in *domain.Intake) io.Reader {
	t.Helper()
	data, err := json.Marshal(in)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func do(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGenerateBrief_OK(t *testing.T) {
	in := testutil.NewTestIntake(testutil.WithScope(domain.ScopeWebsite, domain.ScopeCRM))
	rec := do(newTestServer(t, nil), http.MethodPost, "/api/v1/briefs", intakeBody(t, in))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var b domain.Brief
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, 5, b.Complexity.Score)
	assert.Len(t, b.TechReqs, 2)
	assert.NotEmpty(t, b.Questions)
}

func TestGenerateBrief_Malformed(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodPost, "/api/v1/briefs", strings.NewReader(`{"companyName":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "malformed intake json", resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestGenerateBrief_BodyErrors(t *testing.T) {
	briefs := service.NewBriefService(complexity.DefaultWeights())
	cfg := DefaultConfig()
	cfg.MaxBodyBytes = 64
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(cfg, briefs, service.NewSubmissionService(briefs, nil, time.Second), logger).Router()

	tests := []struct {
		name string
		body io.Reader
		want int
	}{
		{"oversized", strings.NewReader(strings.Repeat("x", 128)), http.StatusRequestEntityTooLarge},
		{"read failure", failingBody{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/api/v1/briefs", tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestGenerateBrief_UnknownField(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodPost, "/api/v1/briefs", strings.NewReader(`{"budget":1}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateBrief_Invalid(t *testing.T) {
	in := testutil.NewTestIntake(testutil.WithCompany(""), testutil.WithScope())
	rec := do(newTestServer(t, nil), http.MethodPost, "/api/v1/briefs", intakeBody(t, in))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"companyName is required", "scope: select at least one option"}, resp.Errors)
}

func TestExportBrief_Formats(t *testing.T) {
	h := newTestServer(t, nil)
	in := testutil.NewTestIntake()

	tests := []struct {
		format      string
		contentType string
		contains    string
	}{
		{"", "text/plain; charset=utf-8", "PROJECT START FORM - SUBMISSION SUMMARY"},
		{"text", "text/plain; charset=utf-8", "PROJECT START FORM - SUBMISSION SUMMARY"},
		{"markdown", "text/markdown; charset=utf-8", "# Internal Project Brief: Acme"},
		{"html", "text/html; charset=utf-8", "<h2>Executive Summary</h2>"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/api/v1/briefs/export?format="+tt.format, intakeBody(t, in))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestExportBrief_TextIsAttachment(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodPost, "/api/v1/briefs/export?format=text", intakeBody(t, testutil.NewTestIntake()))

	assert.Equal(t, `attachment; filename="project-start-acme-2026-03-01.txt"`, rec.Header().Get("Content-Disposition"))
}

func TestExportBrief_BadFormat(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodPost, "/api/v1/briefs/export?format=pdf", intakeBody(t, testutil.NewTestIntake()))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPrompt(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodPost, "/api/v1/prompt", intakeBody(t, testutil.NewTestIntake()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "You are a solutions architect building a project for Acme."))
}

func TestSubmit_DeliveryFailureStillOK(t *testing.T) {
	h := newTestServer(t, stubNotifier{err: notify.ErrUnavailable})
	rec := do(h, http.MethodPost, "/api/v1/submissions", intakeBody(t, testutil.NewTestIntake()))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		ID        string        `json:"id"`
		Document  *domain.Brief `json:"document"`
		Delivered bool          `json:"delivered"`
		Advisory  string        `json:"advisory"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	require.NotNil(t, resp.Document)
	assert.False(t, resp.Delivered)
	assert.Equal(t, service.DeliveryAdvisory, resp.Advisory)
}

func TestSubmit_Delivered(t *testing.T) {
	h := newTestServer(t, stubNotifier{})
	rec := do(h, http.MethodPost, "/api/v1/submissions", intakeBody(t, testutil.NewTestIntake()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"delivered":true`)
	assert.NotContains(t, rec.Body.String(), `"advisory"`)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(newTestServer(t, nil), http.MethodGet, "/api/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("BRIEFSMITH_ADDR", "127.0.0.1:9999")
	assert.Equal(t, "127.0.0.1:9999", LoadConfig().Addr)
}
