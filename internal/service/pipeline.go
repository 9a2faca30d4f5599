package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"cricket-analytics/internal/config"
	"cricket-analytics/internal/constants"
	"cricket-analytics/internal/domain"
	"cricket-analytics/internal/engine"
	"cricket-analytics/internal/repository"
)

// PipelineService runs the full derivation over every stored match. Matches
// are independent, so they are computed concurrently; within a match the
// engine enforces stage order. One malformed match is logged and skipped,
// never allowed to sink the run.
type PipelineService struct {
	deliveryRepo *repository.DeliveryRepository
	derivedRepo  *repository.DerivedRepository
	runRepo      *repository.RunRepository
	workers      int
	logger       zerolog.Logger
}

func NewPipelineService(deliveryRepo *repository.DeliveryRepository, derivedRepo *repository.DerivedRepository, runRepo *repository.RunRepository, cfg *config.Config, logger zerolog.Logger) *PipelineService {
	return &PipelineService{
		deliveryRepo: deliveryRepo,
		derivedRepo:  derivedRepo,
		runRepo:      runRepo,
		workers:      cfg.PipelineWorkers,
		logger:       logger,
	}
}

func (s *PipelineService) Run(ctx context.Context) (*domain.PipelineRun, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.PipelineTimeout)
	defer cancel()

	run := &domain.PipelineRun{StartedAt: time.Now()}

	matchIDs, err := s.deliveryRepo.ListMatchIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	run.MatchesTotal = len(matchIDs)

	s.logger.Info().Int("matches", len(matchIDs)).Int("workers", s.workers).Msg("pipeline run starting")

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, matchID := range matchIDs {
		g.Go(func() error {
			innings, deliveries, err := s.processMatch(gCtx, matchID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Error().Err(err).Str("match_id", matchID).Msg("match derivation failed")
				run.MatchesFailed++
				return nil
			}
			run.InningsWritten += innings
			run.DeliveriesRead += deliveries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	run.FinishedAt = time.Now()
	if err := s.runRepo.Record(ctx, run); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record pipeline run")
	}

	s.logger.Info().
		Str("run_id", run.ID).
		Int("matches", run.MatchesTotal).
		Int("failed", run.MatchesFailed).
		Int("innings", run.InningsWritten).
		Dur("elapsed", run.FinishedAt.Sub(run.StartedAt)).
		Msg("pipeline run finished")

	return run, nil
}

func (s *PipelineService) processMatch(ctx context.Context, matchID string) (inningsWritten, deliveriesRead int, err error) {
	cfg, outcome, err := s.deliveryRepo.GetMatch(ctx, matchID)
	if err != nil {
		return 0, 0, err
	}
	if cfg == nil {
		return 0, 0, fmt.Errorf("match %s has no config row", matchID)
	}

	deliveries, err := s.deliveryRepo.GetDeliveries(ctx, matchID)
	if err != nil {
		return 0, 0, err
	}
	if len(deliveries) == 0 {
		s.logger.Debug().Str("match_id", matchID).Msg("match has no deliveries, skipping")
		return 0, 0, nil
	}

	derived := engine.ComputeMatch(*cfg, outcome, deliveries, s.logger)

	if err := s.derivedRepo.ReplaceMatch(ctx, derived); err != nil {
		return 0, 0, err
	}
	return len(derived.Innings), len(deliveries), nil
}
