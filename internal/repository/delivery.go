package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"cricket-analytics/internal/constants"
	"cricket-analytics/internal/domain"
)

// DeliveryRepository reads the upstream normalizer's contract surface: one
// row per delivery plus one match row carrying config and outcome.
type DeliveryRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewDeliveryRepository(sqlDB *sql.DB, logger zerolog.Logger) *DeliveryRepository {
	return &DeliveryRepository{
		db:     sqlDB,
		logger: logger,
	}
}

func (r *DeliveryRepository) ListMatchIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT match_id FROM matches ORDER BY match_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list match ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetMatch returns the config and outcome for a match, or nil config when the
// match is unknown. An unknown match is a missing reference, not an error.
func (r *DeliveryRepository) GetMatch(ctx context.Context, matchID string) (*domain.MatchConfig, *domain.MatchOutcome, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT match_id, match_type, scheduled_overs, balls_per_over,
		       team_1, team_2, venue, city, event_name, start_date,
		       toss_winner, toss_decision,
		       winner, result_type, result_description, outcome_method, players_of_match,
		       created_at, updated_at
		FROM matches
		WHERE match_id = ?
	`, matchID)

	var cfg domain.MatchConfig
	var outcome domain.MatchOutcome
	var rawType string
	var startDate sql.NullTime

	err := row.Scan(
		&cfg.MatchID, &rawType, &cfg.ScheduledOvers, &cfg.BallsPerOver,
		&cfg.Team1, &cfg.Team2, &cfg.Venue, &cfg.City, &cfg.EventName, &startDate,
		&cfg.TossWinner, &cfg.TossDecision,
		&outcome.Winner, &outcome.ResultType, &outcome.ResultDescription,
		&outcome.OutcomeMethod, &outcome.PlayersOfMatch,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		r.logger.Debug().Str("match_id", matchID).Msg("match not found")
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
	}

	matchType, ok := domain.ParseMatchType(rawType)
	if !ok {
		r.logger.Warn().Str("match_id", matchID).Str("match_type", rawType).Msg("unrecognized match type")
	}
	cfg.MatchType = matchType
	if cfg.BallsPerOver <= 0 {
		r.logger.Debug().Str("match_id", matchID).Msg("no balls_per_over on match row, assuming six")
		cfg.BallsPerOver = constants.DefaultBallsPerOver
	}
	if startDate.Valid {
		cfg.StartDate = startDate.Time
	}
	outcome.MatchID = cfg.MatchID

	return &cfg, &outcome, nil
}

func (r *DeliveryRepository) GetDeliveries(ctx context.Context, matchID string) ([]domain.Delivery, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT match_id, innings_number, batting_team, over_number, ball_in_over,
		       batter, non_striker, bowler,
		       runs_batter, runs_extras, runs_total,
		       extras_byes, extras_legbyes, extras_noballs, extras_penalty, extras_wides,
		       is_wicket, wicket_player_out, wicket_kind, wicket_fielder_1, wicket_fielder_2,
		       source_miscounted_over
		FROM deliveries
		WHERE match_id = ?
		ORDER BY innings_number, over_number, ball_in_over
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveries for %s: %w", matchID, err)
	}
	defer rows.Close()

	var deliveries []domain.Delivery
	for rows.Next() {
		var d domain.Delivery
		if err := rows.Scan(
			&d.MatchID, &d.InningsNumber, &d.BattingTeam, &d.OverNumber, &d.BallInOver,
			&d.Batter, &d.NonStriker, &d.Bowler,
			&d.RunsBatter, &d.RunsExtras, &d.RunsTotal,
			&d.ExtrasByes, &d.ExtrasLegbyes, &d.ExtrasNoballs, &d.ExtrasPenalty, &d.ExtrasWides,
			&d.IsWicket, &d.WicketPlayerOut, &d.WicketKind, &d.WicketFielder1, &d.WicketFielder2,
			&d.SourceMiscountedOver,
		); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}
