package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
)

const maxBodyBytes = 1 << 20

type analyzeRequest struct {
	Condition string            `json:"condition"`
	Quantity  analysis.Quantity `json:"quantity"`
	Load      float64           `json:"load"`
	Beam      *beam.Beam        `json:"beam"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleConditions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.analysis.Conditions())
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	res, err := s.analysis.Analyze(req.Beam, req.Load, req.Condition, req.Quantity)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleAnalyzeAll(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	res, err := s.analysis.AnalyzeAll(req.Beam, req.Load, req.Condition)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReactions(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	res, err := s.analysis.GetReactions(req.Beam, req.Load, req.Condition)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	res, err := s.analysis.Analyze(req.Beam, req.Load, req.Condition, req.Quantity)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	img, err := diagram.RenderCurve(res.Equation, "png")
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(img)
}

// decode reads an analysis request. Beams without a deflection factor get the
// configured default.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*analyzeRequest, bool) {
	req := &analyzeRequest{Beam: &beam.Beam{DeflectionFactor: s.cfg.Factor}}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return nil, false
	}

	return req, true
}

func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	if errors.Is(err, commerr.ErrNotFound) || errors.Is(err, commerr.ErrInvalidArgument) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.WithFields(l.ErrorField(err)).Error("analysis failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
