package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"cricket-analytics/internal/api"
	"cricket-analytics/internal/constants"
	"cricket-analytics/internal/domain"
	"cricket-analytics/internal/repository"
)

// FeedService reports whether the upstream Cricsheet archive has changed
// since the last pipeline run.
type FeedService struct {
	cricsheet *api.CricsheetClient
	runRepo   *repository.RunRepository
	logger    zerolog.Logger
}

type FeedStatus struct {
	Feed            *api.FeedInfo       `json:"feed"`
	LastRun         *domain.PipelineRun `json:"last_run,omitempty"`
	UpdateAvailable bool                `json:"update_available"`
	CheckedAt       time.Time           `json:"checked_at"`
}

func NewFeedService(cricsheet *api.CricsheetClient, runRepo *repository.RunRepository, logger zerolog.Logger) *FeedService {
	return &FeedService{cricsheet: cricsheet, runRepo: runRepo, logger: logger}
}

func (s *FeedService) Status(ctx context.Context) (*FeedStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.FeedCheckTimeout)
	defer cancel()

	info, err := s.cricsheet.CheckFeed(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("cricsheet feed check failed")
		return nil, err
	}

	lastRun, err := s.runRepo.Latest(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load latest pipeline run")
	}

	status := &FeedStatus{
		Feed:      info,
		LastRun:   lastRun,
		CheckedAt: time.Now(),
	}
	// No run yet means anything upstream counts as new.
	status.UpdateAvailable = lastRun == nil ||
		(!info.LastModified.IsZero() && info.LastModified.After(lastRun.FinishedAt))

	s.logger.Info().
		Time("feed_last_modified", info.LastModified).
		Bool("update_available", status.UpdateAvailable).
		Msg("cricsheet feed checked")

	return status, nil
}
