package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/XenFolio/cv-ai/internal/corrections"
	"github.com/XenFolio/cv-ai/internal/feedback"
	"github.com/XenFolio/cv-ai/internal/parsing"
	"github.com/XenFolio/cv-ai/internal/richtext"
	"github.com/XenFolio/cv-ai/internal/schemas"
	"github.com/XenFolio/cv-ai/internal/types"
	schemafiles "github.com/XenFolio/cv-ai/schemas"
)

// AnalysisRequest is the body of the analysis endpoints
type AnalysisRequest struct {
	Raw string `json:"raw"`
}

// CorrectionRequest is the body of /v1/corrections
type CorrectionRequest struct {
	Raw          string `json:"raw"`
	OriginalText string `json:"original_text"`
}

// OffsetRequest is the body of /v1/offsets
type OffsetRequest struct {
	PlainText string       `json:"plain_text"`
	RichText  string       `json:"rich_text"`
	Offsets   []int        `json:"offsets" validate:"required_without=Spans,max=10000"`
	Spans     []types.Span `json:"spans" validate:"max=10000,dive"`
}

// OffsetResponse holds the mapped offsets and spans, in request order
type OffsetResponse struct {
	Offsets []int        `json:"offsets"`
	Spans   []types.Span `json:"spans"`
}

// GenerateRequest is the body of /v1/generate/{kind}
type GenerateRequest struct {
	Document   string `json:"document" validate:"required"`
	JobContext string `json:"job_context" validate:"max=20000"`
}

// validatable is implemented by every record the parsers return
type validatable interface {
	Validate() error
}

func (s *Server) handleCVAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, schemafiles.CVAnalysis, parsing.ParseCVAnalysis(req.Raw))
}

func (s *Server) handleLetterAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, schemafiles.LetterAnalysis, parsing.ParseLetterAnalysis(req.Raw))
}

func (s *Server) handleCorrections(w http.ResponseWriter, r *http.Request) {
	var req CorrectionRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, schemafiles.CorrectionResult, corrections.ParseCorrections(req.Raw, req.OriginalText))
}

func (s *Server) handleOffsets(w http.ResponseWriter, r *http.Request) {
	var req OffsetRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	resp := OffsetResponse{
		Offsets: make([]int, len(req.Offsets)),
		Spans:   make([]types.Span, len(req.Spans)),
	}
	m := richtext.NewMapper(req.PlainText, req.RichText)
	for i, offset := range req.Offsets {
		resp.Offsets[i] = m.Offset(offset)
	}
	for i, span := range req.Spans {
		resp.Spans[i] = m.Span(span)
	}

	s.jsonResponse(w, r, http.StatusOK, resp)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.feedback == nil {
		s.fail(w, r, &ErrGeneratorUnavailable{})
		return
	}

	kind := feedback.Kind(r.PathValue("kind"))
	if _, ok := kind.PromptKey(); !ok {
		s.errorResponse(w, r, http.StatusNotFound, "unknown kind: "+string(kind))
		return
	}

	var req GenerateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	record, err := s.feedback.Run(ctx, kind, req.Document, req.JobContext)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var schemaName string
	switch kind {
	case feedback.KindCV:
		schemaName = schemafiles.CVAnalysis
	case feedback.KindLetter:
		schemaName = schemafiles.LetterAnalysis
	default:
		schemaName = schemafiles.CorrectionResult
	}
	s.respond(w, r, schemaName, record.(validatable))
}

// decode reads a size-bounded JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ErrPayloadTooLarge{Limit: tooLarge.Limit}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}

	if err := s.validator.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// respond checks the record before writing it: struct validation always, schema
// validation when enabled.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, schemaName string, record validatable) {
	if err := record.Validate(); err != nil {
		s.fail(w, r, err)
		return
	}
	if s.validateOutput {
		if err := schemas.ValidateDocument(schemaName, record); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	s.jsonResponse(w, r, http.StatusOK, record)
}
