package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/export"
	"github.com/alexanderramin/briefsmith/internal/importer"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Errors    []string `json:"errors,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGenerateBrief handles POST /api/v1/briefs
func (s *Server) handleGenerateBrief(w http.ResponseWriter, r *http.Request) {
	in, ok := s.readIntake(w, r)
	if !ok {
		return
	}

	b, err := s.briefs.Generate(r.Context(), in)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "failed to generate brief", nil)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// handleExportBrief handles POST /api/v1/briefs/export?format=text|markdown|html
func (s *Server) handleExportBrief(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "markdown" && format != "html" {
		s.writeError(w, r, http.StatusBadRequest, "format must be one of text, markdown, html", nil)
		return
	}

	in, ok := s.readIntake(w, r)
	if !ok {
		return
	}

	b, err := s.briefs.Generate(r.Context(), in)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "failed to generate brief", nil)
		return
	}

	switch format {
	case "markdown":
		writeBody(w, "text/markdown; charset=utf-8", export.Markdown(in, b))
	case "html":
		page, err := export.HTML(in, b)
		if err != nil {
			s.writeError(w, r, http.StatusInternalServerError, "failed to render html", nil)
			return
		}
		writeBody(w, "text/html; charset=utf-8", page)
	default:
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(in)+`"`)
		writeBody(w, "text/plain; charset=utf-8", export.Text(in, b))
	}
}

// handlePrompt handles POST /api/v1/prompt
func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	in, ok := s.readIntake(w, r)
	if !ok {
		return
	}

	p, err := s.briefs.Prompt(r.Context(), in)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "failed to build prompt", nil)
		return
	}
	writeBody(w, "text/plain; charset=utf-8", p)
}

// handleSubmit handles POST /api/v1/submissions
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	in, ok := s.readIntake(w, r)
	if !ok {
		return
	}

	sub, err := s.submissions.Submit(r.Context(), in)
	if err != nil {
		if errors.Is(err, importer.ErrInvalidIntake) {
			s.writeError(w, r, http.StatusUnprocessableEntity, "invalid intake", []string{err.Error()})
			return
		}
		s.writeError(w, r, http.StatusInternalServerError, "failed to accept submission", nil)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// readIntake decodes and validates the request body. It writes the error
// response itself and reports false when the handler should stop.
func (s *Server) readIntake(w http.ResponseWriter, r *http.Request) (*domain.Intake, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large", nil)
			return nil, false
		}
		s.writeError(w, r, http.StatusBadRequest, "failed to read request body", nil)
		return nil, false
	}

	in, err := importer.ParseIntake(data, importer.FormatJSON)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "malformed intake json", []string{err.Error()})
		return nil, false
	}

	if errs := s.briefs.Validate(r.Context(), in); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		s.writeError(w, r, http.StatusUnprocessableEntity, "invalid intake", msgs)
		return nil, false
	}
	return in, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, details []string) {
	reqID := middleware.GetReqID(r.Context())
	s.logger.Warn("request failed", "request_id", reqID, "status", status, "error", msg)
	writeJSON(w, status, ErrorResponse{Error: msg, Errors: details, RequestID: reqID})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeBody(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}
