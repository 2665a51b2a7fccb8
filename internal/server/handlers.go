package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/pipeline"
	"github.com/matzehuels/casement/pkg/render/model"
	"github.com/matzehuels/casement/pkg/window"
)

// Generic messages for failures that are not the caller's fault.
const (
	msgQuoteFailed = "Failed to generate quotation. Please try again."
	msgModelFailed = "Failed to generate model. Please try again."
)

var contentTypes = map[string]string{
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatOBJ:  "model/obj",
	pipeline.FormatHTML: "text/html; charset=utf-8",
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	page, err := model.RenderHTML(nil,
		model.WithPageTitle("casement"),
		model.WithLiveForm(s.seed, PathModel, PathPrice, PathQuote))
	if err != nil {
		s.fail(w, r, err, msgModelFailed)
		return
	}
	w.Header().Set("Content-Type", contentTypes[pipeline.FormatHTML])
	_, _ = w.Write(page)
}

func (s *Server) price(w http.ResponseWriter, r *http.Request) {
	specs, ok := s.decode(w, r)
	if !ok {
		return
	}
	b, err := s.runner.Price(specs, s.options(r))
	if err != nil {
		s.fail(w, r, err, msgQuoteFailed)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) model(w http.ResponseWriter, r *http.Request) {
	specs, ok := s.decode(w, r)
	if !ok {
		return
	}
	format := formatParam(r, pipeline.FormatJSON)

	opts := s.options(r)
	opts.Formats = []string{format}
	result, err := s.runner.Model(r.Context(), specs, opts)
	if err != nil {
		s.fail(w, r, err, msgModelFailed)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	_, _ = w.Write(result.Artifacts[format])
}

func (s *Server) quote(w http.ResponseWriter, r *http.Request) {
	specs, ok := s.decode(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	format := formatParam(r, pipeline.FormatPDF)
	client := q.Get("client")
	if client == "" {
		client = s.client
	}

	opts := s.options(r)
	opts.Formats = []string{format}
	opts.Client = client
	opts.Template = q.Get("template")
	result, err := s.runner.Quote(r.Context(), specs, opts)
	if err != nil {
		s.fail(w, r, err, msgQuoteFailed)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName(format)))
	_, _ = w.Write(result.Artifacts[format])
}

// ============================================================
// Helpers
// ============================================================

// options tags the run's log lines with the request ID.
func (s *Server) options(r *http.Request) pipeline.Options {
	return pipeline.Options{Logger: s.logger.With("id", middleware.GetReqID(r.Context()))}
}

func formatParam(r *http.Request, fallback string) string {
	if f := r.URL.Query().Get("format"); f != "" {
		return f
	}
	return fallback
}

// decode reads a WindowSpecs body. On failure it writes a 400 and
// returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (window.WindowSpecs, bool) {
	var specs window.WindowSpecs
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&specs); err != nil {
		msg := "invalid json: " + err.Error()
		if err == io.EOF {
			msg = "empty body"
		}
		writeError(w, http.StatusBadRequest, msg, string(errors.ErrCodeInvalidInput))
		return specs, false
	}
	return specs, true
}

// fail maps err to a status. Caller errors keep their message; anything
// else is logged and replaced by generic.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, generic string) {
	code := errors.GetCode(err)
	switch {
	case errors.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: errors.UserMessage(err),
			Code:  string(code),
			Field: errors.FieldOf(err),
		})
	case code == errors.ErrCodeUnsupported:
		writeError(w, http.StatusNotImplemented, errors.UserMessage(err), string(code))
	default:
		s.logger.Error("generation failed", "path", r.URL.Path, "err", err)
		if code == "" {
			code = errors.ErrCodeInternal
		}
		writeError(w, http.StatusInternalServerError, generic, string(code))
	}
}

func writeError(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
