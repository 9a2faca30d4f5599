package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"cricket-analytics/internal/service"
)

// AnalyticsServer exposes the derived relations as a JSON API for downstream
// reporting consumers.
type AnalyticsServer struct {
	matchSvc    *service.MatchService
	pipelineSvc *service.PipelineService
	feedSvc     *service.FeedService
	logger      zerolog.Logger
}

func NewAnalyticsServer(matchSvc *service.MatchService, pipelineSvc *service.PipelineService, feedSvc *service.FeedService, logger zerolog.Logger) *AnalyticsServer {
	return &AnalyticsServer{matchSvc: matchSvc, pipelineSvc: pipelineSvc, feedSvc: feedSvc, logger: logger}
}

// Routes registers all handlers on the mux.
func (s *AnalyticsServer) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /matches/{id}", s.handleMatch)
	mux.HandleFunc("GET /matches/{id}/innings", s.handleInnings)
	mux.HandleFunc("GET /matches/{id}/partnerships", s.handlePartnerships)
	mux.HandleFunc("GET /matches/{id}/batting-order", s.handleBattingOrder)
	mux.HandleFunc("GET /matches/{id}/chase", s.handleChase)
	mux.HandleFunc("GET /feed/status", s.handleFeedStatus)
	mux.HandleFunc("POST /pipeline/run", s.handlePipelineRun)
}

func (s *AnalyticsServer) handleMatch(w http.ResponseWriter, r *http.Request) {
	derived, err := s.matchSvc.GetMatchDerived(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, derived)
}

func (s *AnalyticsServer) handleInnings(w http.ResponseWriter, r *http.Request) {
	innings, err := s.matchSvc.GetInnings(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, innings)
}

func (s *AnalyticsServer) handlePartnerships(w http.ResponseWriter, r *http.Request) {
	partnerships, err := s.matchSvc.GetPartnerships(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, partnerships)
}

func (s *AnalyticsServer) handleBattingOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.matchSvc.GetBattingOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, order)
}

func (s *AnalyticsServer) handleChase(w http.ResponseWriter, r *http.Request) {
	chase, err := s.matchSvc.GetChaseContext(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, chase)
}

func (s *AnalyticsServer) handleFeedStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.feedSvc.Status(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, status)
}

func (s *AnalyticsServer) handlePipelineRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.pipelineSvc.Run(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, run)
}

func (s *AnalyticsServer) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("failed to encode response")
	}
}

func (s *AnalyticsServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
