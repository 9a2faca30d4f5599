package engine

import (
	"github.com/rs/zerolog"

	"cricket-analytics/internal/domain"
)

// ComputeMatch runs the full derivation cascade for one match: innings
// aggregation, sequencing and context classification, partnerships, batting
// order, and per-delivery chase context, then joins the recorded outcome.
// The delivery slice is sorted in place; nothing else is mutated.
//
// Stages run in dependency order because later ones consume derived fields
// (the chase context needs target_runs from sequencing). Matches themselves
// are independent, so callers may run ComputeMatch concurrently per match.
func ComputeMatch(cfg domain.MatchConfig, outcome *domain.MatchOutcome, deliveries []domain.Delivery, logger zerolog.Logger) domain.MatchDerived {
	if cfg.MatchType == domain.MatchTypeOther {
		logger.Warn().
			Str("match_id", cfg.MatchID).
			Msg("unrecognized match type, innings beyond the first will classify as batting_again")
	}

	SortDeliveries(deliveries)

	innings := AggregateInnings(deliveries)
	SequenceInnings(innings, cfg)

	derived := domain.MatchDerived{
		MatchID: cfg.MatchID,
		Innings: innings,
	}

	byInnings := GroupByInnings(deliveries)
	for i, group := range byInnings {
		derived.Partnerships = append(derived.Partnerships, TrackPartnerships(group)...)
		derived.BattingOrder = append(derived.BattingOrder, ResolveBattingOrder(group)...)

		inn := innings[i]
		if inn.InningsContext == domain.ContextChasing && inn.TargetRuns != nil {
			derived.ChaseContext = append(derived.ChaseContext, BuildChaseContext(group, *inn.TargetRuns, cfg)...)
		}
	}

	JoinOutcome(derived.Innings, outcome)

	logger.Debug().
		Str("match_id", cfg.MatchID).
		Int("innings", len(derived.Innings)).
		Int("partnerships", len(derived.Partnerships)).
		Int("chase_rows", len(derived.ChaseContext)).
		Msg("match derivation complete")

	return derived
}
