package api

import (
	"encoding/json"
	"net/http"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/pipeline"
)

// errorResponse is the JSON error body for every non-2xx response.
type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleCrate computes a crate layout from JSON parameters. The default
// response is the full layout result as JSON; ?format=exp returns the NX
// expression file as plain text instead.
func (s *Server) handleCrate(w http.ResponseWriter, r *http.Request) {
	var params crate.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body"))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Compute(r.Context(), pipeline.Options{
		Params: params,
		Logger: s.logger.With("request_id", RequestID(r.Context())),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	artifacts, err := s.runner.RenderArtifacts(res, pipeline.Options{
		Params:  params,
		Formats: []string{format},
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	switch format {
	case pipeline.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
		w.Write(artifacts[pipeline.FormatJSON])
	case pipeline.FormatExp:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="crate.exp"`)
		w.Write(artifacts[pipeline.FormatExp])
	case pipeline.FormatPDF:
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="crate.pdf"`)
		w.Write(artifacts[pipeline.FormatPDF])
	case pipeline.FormatXLSX:
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="crate.xlsx"`)
		w.Write(artifacts[pipeline.FormatXLSX])
	default:
		// svg produces one artifact per panel; bundle them as JSON.
		w.Header().Set("Content-Type", "application/json")
		bundle := make(map[string]string, len(artifacts))
		for k, v := range artifacts {
			bundle[k] = string(v)
		}
		json.NewEncoder(w).Encode(bundle)
	}
}

// writeError maps engine error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeCapacityExceeded, errors.ErrCodeUnsupportedWeight:
		status = http.StatusUnprocessableEntity
	}

	if status >= 500 {
		s.logger.Error("request failed", "error", err, "request_id", RequestID(r.Context()))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{
		Code:      string(errors.GetCode(err)),
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	})
}
