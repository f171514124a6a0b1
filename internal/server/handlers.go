package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	gperrors "github.com/matzehuels/growplan/pkg/errors"
	"github.com/matzehuels/growplan/pkg/layout"
	"github.com/matzehuels/growplan/pkg/observability"
	"github.com/matzehuels/growplan/pkg/pipeline"
	"github.com/matzehuels/growplan/pkg/render"
)

// maxBodySize bounds request bodies; a parameter set is a few hundred bytes.
const maxBodySize = 64 << 10

// layoutResponse is the body of POST /api/v1/layout: the interchange
// document stamped with a fresh ID so clients can correlate follow-up render
// requests in their own logs.
type layoutResponse struct {
	ID string `json:"id"`
	render.Document
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDefaults returns the default parameter surface so UIs can seed their
// forms without duplicating the values.
func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pipeline.Options{
		Params:  layout.DefaultParams(),
		Formats: []string{pipeline.FormatSVG},
	})
}

// handleLayout computes a plan and returns rectangles plus metrics as JSON.
// Only the layout stage runs; the response document is built directly from
// the plan, so no render artifact is produced.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}

	plan, err := s.runner.Layout(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		ID:       uuid.NewString(),
		Document: render.NewDocument(plan),
	})
}

// handleRender computes a plan and streams a single artifact back with the
// format's content type. The format is the first entry of options.formats
// (default svg).
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}
	if len(opts.Formats) > 1 {
		s.writeError(w, gperrors.New(gperrors.ErrCodeInvalidFormat,
			"render accepts exactly one format, got %d", len(opts.Formats)))
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "layout."+format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// decodeOptions parses the request body into pipeline options. It reports
// false after writing an error response.
func (s *Server) decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, bool) {
	var opts pipeline.Options

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		s.writeError(w, gperrors.Wrap(gperrors.ErrCodeInvalidInput, err, "decode request body"))
		return pipeline.Options{}, false
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, err)
		return pipeline.Options{}, false
	}
	opts.Logger = s.logger
	return opts, true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := gperrors.GetCode(err)
	status := http.StatusBadRequest
	switch code {
	case gperrors.ErrCodeNotFound, gperrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case gperrors.ErrCodeInternal, "":
		code = gperrors.ErrCodeInternal
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: gperrors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// logRequests emits one structured log line per request and feeds the HTTP
// observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.status, duration)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration", duration)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
