package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"cricket-analytics/internal/constants"
	"cricket-analytics/internal/domain"
	"cricket-analytics/internal/repository"
)

// MatchService is the read side: it serves the derived relations to
// downstream consumers.
type MatchService struct {
	derivedRepo *repository.DerivedRepository
	logger      zerolog.Logger
}

func NewMatchService(derivedRepo *repository.DerivedRepository, logger zerolog.Logger) *MatchService {
	return &MatchService{derivedRepo: derivedRepo, logger: logger}
}

func (s *MatchService) GetInnings(ctx context.Context, matchID string) ([]domain.Innings, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.derivedRepo.GetInnings(ctx, matchID)
}

func (s *MatchService) GetPartnerships(ctx context.Context, matchID string) ([]domain.Partnership, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.derivedRepo.GetPartnerships(ctx, matchID)
}

func (s *MatchService) GetBattingOrder(ctx context.Context, matchID string) ([]domain.BattingOrderEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.derivedRepo.GetBattingOrder(ctx, matchID)
}

func (s *MatchService) GetChaseContext(ctx context.Context, matchID string) ([]domain.DeliveryContext, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.derivedRepo.GetChaseContext(ctx, matchID)
}

// GetMatchDerived fans out to all four relations in parallel.
func (s *MatchService) GetMatchDerived(ctx context.Context, matchID string) (*domain.MatchDerived, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	derived := &domain.MatchDerived{MatchID: matchID}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		derived.Innings, err = s.derivedRepo.GetInnings(gCtx, matchID)
		return err
	})
	g.Go(func() error {
		var err error
		derived.Partnerships, err = s.derivedRepo.GetPartnerships(gCtx, matchID)
		return err
	})
	g.Go(func() error {
		var err error
		derived.BattingOrder, err = s.derivedRepo.GetBattingOrder(gCtx, matchID)
		return err
	})
	g.Go(func() error {
		var err error
		derived.ChaseContext, err = s.derivedRepo.GetChaseContext(gCtx, matchID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return derived, nil
}
