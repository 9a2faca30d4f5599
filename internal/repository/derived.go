package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"cricket-analytics/internal/constants"
	"cricket-analytics/internal/domain"
)

// DerivedRepository persists and serves the four derived relations. Writes
// replace a match's rows wholesale inside one transaction, so re-running the
// pipeline on unchanged input leaves the tables byte-identical. Inserts run
// as multi-row statements in DBBatchSize chunks.
type DerivedRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewDerivedRepository(sqlDB *sql.DB, logger zerolog.Logger) *DerivedRepository {
	return &DerivedRepository{
		db:     sqlDB,
		logger: logger,
	}
}

func (r *DerivedRepository) ReplaceMatch(ctx context.Context, derived domain.MatchDerived) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"innings", "partnerships", "batting_order", "delivery_context"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE match_id = ?", table), derived.MatchID); err != nil {
			return fmt.Errorf("failed to clear %s for %s: %w", table, derived.MatchID, err)
		}
	}

	if err := insertInningsBatched(ctx, tx, derived.Innings); err != nil {
		return fmt.Errorf("failed to insert innings for %s: %w", derived.MatchID, err)
	}
	if err := insertPartnershipsBatched(ctx, tx, derived.Partnerships); err != nil {
		return fmt.Errorf("failed to insert partnerships for %s: %w", derived.MatchID, err)
	}
	if err := insertBattingOrderBatched(ctx, tx, derived.BattingOrder); err != nil {
		return fmt.Errorf("failed to insert batting order for %s: %w", derived.MatchID, err)
	}
	if err := insertChaseContextBatched(ctx, tx, derived.ChaseContext); err != nil {
		return fmt.Errorf("failed to insert delivery context for %s: %w", derived.MatchID, err)
	}

	return tx.Commit()
}

func insertInningsBatched(ctx context.Context, tx *sql.Tx, innings []domain.Innings) error {
	const cols = 15
	for i := 0; i < len(innings); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(innings) {
			end = len(innings)
		}

		chunk := innings[i:end]
		args := make([]any, 0, len(chunk)*cols)
		for _, inn := range chunk {
			args = append(args,
				inn.MatchID, inn.InningsNumber, inn.BattingTeam, inn.InningsTotal, inn.WicketsLost,
				inn.TeamInningsNumber, string(inn.InningsContext),
				inn.PreviousInningsTotal, inn.PreviousBattingTeam,
				inn.TargetRuns, inn.SuccessfullyChased, inn.RunsShortOfTarget,
				inn.Winner, inn.ResultType, inn.InningsTeamWon,
			)
		}

		query := `
			INSERT INTO innings (
				match_id, innings_number, batting_team, innings_total, wickets_lost,
				team_innings_number, innings_context,
				previous_innings_total, previous_batting_team,
				target_runs, successfully_chased, runs_short_of_target,
				winner, result_type, innings_team_won
			) VALUES ` + valuesClause(len(chunk), cols)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

func insertPartnershipsBatched(ctx context.Context, tx *sql.Tx, partnerships []domain.Partnership) error {
	const cols = 13
	for i := 0; i < len(partnerships); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(partnerships) {
			end = len(partnerships)
		}

		chunk := partnerships[i:end]
		args := make([]any, 0, len(chunk)*cols)
		for _, p := range chunk {
			args = append(args,
				p.MatchID, p.InningsNumber, p.BattingTeam, p.PartnershipNumber,
				p.Batter, p.Partner, p.PartnershipRuns, p.PartnershipBalls,
				p.BatterRuns, p.PartnerRuns, p.EndedInWicket, p.DismissedBatter, p.DismissalOrder,
			)
		}

		query := `
			INSERT INTO partnerships (
				match_id, innings_number, batting_team, partnership_number,
				batter, partner, partnership_runs, partnership_balls,
				batter_runs, partner_runs, ended_in_wicket, dismissed_batter, dismissal_order
			) VALUES ` + valuesClause(len(chunk), cols)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

func insertBattingOrderBatched(ctx context.Context, tx *sql.Tx, entries []domain.BattingOrderEntry) error {
	const cols = 4
	for i := 0; i < len(entries); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(entries) {
			end = len(entries)
		}

		chunk := entries[i:end]
		args := make([]any, 0, len(chunk)*cols)
		for _, e := range chunk {
			args = append(args, e.MatchID, e.InningsNumber, e.Batter, e.BattingPosition)
		}

		query := `
			INSERT INTO batting_order (match_id, innings_number, batter, batting_position)
			VALUES ` + valuesClause(len(chunk), cols)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

func insertChaseContextBatched(ctx context.Context, tx *sql.Tx, contexts []domain.DeliveryContext) error {
	const cols = 20
	for i := 0; i < len(contexts); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(contexts) {
			end = len(contexts)
		}

		chunk := contexts[i:end]
		args := make([]any, 0, len(chunk)*cols)
		for _, c := range chunk {
			args = append(args,
				c.MatchID, c.InningsNumber, c.BattingTeam, c.OverNumber, c.BallInOver,
				c.RunsSoFar, c.BallsSoFar, c.WicketsSoFar, c.LegalDeliveriesSoFar, c.LegalBallOfOver,
				c.BallsRemaining, c.RequiredRunRate, c.CurrentRunRate,
				c.TargetRuns, c.TargetReached, c.IsLastDeliveryOfInnings, string(c.Pressure),
				c.IsMiscountedOverComputed, c.IsMiscountedDeliveryComputed, c.MiscountCheckPassed,
			)
		}

		query := `
			INSERT INTO delivery_context (
				match_id, innings_number, batting_team, over_number, ball_in_over,
				runs_so_far, balls_so_far, wickets_so_far, legal_deliveries_so_far, legal_ball_of_over,
				balls_remaining, required_run_rate, current_run_rate,
				target_runs, target_reached, is_last_delivery_of_innings, pressure,
				is_miscounted_over_computed, is_miscounted_delivery_computed, miscount_check_passed
			) VALUES ` + valuesClause(len(chunk), cols)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// valuesClause renders "(?, ..., ?), (?, ..., ?)" for rows rows of cols
// placeholders each.
func valuesClause(rows, cols int) string {
	row := "(" + strings.Repeat("?, ", cols-1) + "?)"
	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(row)
	}
	return b.String()
}

func (r *DerivedRepository) GetInnings(ctx context.Context, matchID string) ([]domain.Innings, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT match_id, innings_number, batting_team, innings_total, wickets_lost,
		       team_innings_number, innings_context,
		       previous_innings_total, previous_batting_team,
		       target_runs, successfully_chased, runs_short_of_target,
		       winner, result_type, innings_team_won
		FROM innings
		WHERE match_id = ?
		ORDER BY innings_number
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get innings for %s: %w", matchID, err)
	}
	defer rows.Close()

	var result []domain.Innings
	for rows.Next() {
		var inn domain.Innings
		var context string
		var prevTotal, target, short sql.NullInt64
		var chased sql.NullBool
		if err := rows.Scan(
			&inn.MatchID, &inn.InningsNumber, &inn.BattingTeam, &inn.InningsTotal, &inn.WicketsLost,
			&inn.TeamInningsNumber, &context,
			&prevTotal, &inn.PreviousBattingTeam,
			&target, &chased, &short,
			&inn.Winner, &inn.ResultType, &inn.InningsTeamWon,
		); err != nil {
			return nil, err
		}
		inn.InningsContext = domain.InningsContext(context)
		inn.PreviousInningsTotal = nullableInt(prevTotal)
		inn.TargetRuns = nullableInt(target)
		inn.RunsShortOfTarget = nullableInt(short)
		if chased.Valid {
			v := chased.Bool
			inn.SuccessfullyChased = &v
		}
		result = append(result, inn)
	}
	return result, rows.Err()
}

func (r *DerivedRepository) GetPartnerships(ctx context.Context, matchID string) ([]domain.Partnership, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT match_id, innings_number, batting_team, partnership_number,
		       batter, partner, partnership_runs, partnership_balls,
		       batter_runs, partner_runs, ended_in_wicket, dismissed_batter, dismissal_order
		FROM partnerships
		WHERE match_id = ?
		ORDER BY innings_number, partnership_number
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partnerships for %s: %w", matchID, err)
	}
	defer rows.Close()

	var result []domain.Partnership
	for rows.Next() {
		var p domain.Partnership
		var order sql.NullInt64
		if err := rows.Scan(
			&p.MatchID, &p.InningsNumber, &p.BattingTeam, &p.PartnershipNumber,
			&p.Batter, &p.Partner, &p.PartnershipRuns, &p.PartnershipBalls,
			&p.BatterRuns, &p.PartnerRuns, &p.EndedInWicket, &p.DismissedBatter, &order,
		); err != nil {
			return nil, err
		}
		p.DismissalOrder = nullableInt(order)
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *DerivedRepository) GetBattingOrder(ctx context.Context, matchID string) ([]domain.BattingOrderEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT match_id, innings_number, batter, batting_position
		FROM batting_order
		WHERE match_id = ?
		ORDER BY innings_number, batting_position
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get batting order for %s: %w", matchID, err)
	}
	defer rows.Close()

	var result []domain.BattingOrderEntry
	for rows.Next() {
		var e domain.BattingOrderEntry
		if err := rows.Scan(&e.MatchID, &e.InningsNumber, &e.Batter, &e.BattingPosition); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (r *DerivedRepository) GetChaseContext(ctx context.Context, matchID string) ([]domain.DeliveryContext, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT match_id, innings_number, batting_team, over_number, ball_in_over,
		       runs_so_far, balls_so_far, wickets_so_far, legal_deliveries_so_far, legal_ball_of_over,
		       balls_remaining, required_run_rate, current_run_rate,
		       target_runs, target_reached, is_last_delivery_of_innings, pressure,
		       is_miscounted_over_computed, is_miscounted_delivery_computed, miscount_check_passed
		FROM delivery_context
		WHERE match_id = ?
		ORDER BY innings_number, over_number, ball_in_over
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chase context for %s: %w", matchID, err)
	}
	defer rows.Close()

	var result []domain.DeliveryContext
	for rows.Next() {
		var c domain.DeliveryContext
		var pressure string
		var rrr, crr sql.NullFloat64
		if err := rows.Scan(
			&c.MatchID, &c.InningsNumber, &c.BattingTeam, &c.OverNumber, &c.BallInOver,
			&c.RunsSoFar, &c.BallsSoFar, &c.WicketsSoFar, &c.LegalDeliveriesSoFar, &c.LegalBallOfOver,
			&c.BallsRemaining, &rrr, &crr,
			&c.TargetRuns, &c.TargetReached, &c.IsLastDeliveryOfInnings, &pressure,
			&c.IsMiscountedOverComputed, &c.IsMiscountedDeliveryComputed, &c.MiscountCheckPassed,
		); err != nil {
			return nil, err
		}
		c.Pressure = domain.PressureState(pressure)
		if rrr.Valid {
			v := rrr.Float64
			c.RequiredRunRate = &v
		}
		if crr.Valid {
			v := crr.Float64
			c.CurrentRunRate = &v
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func nullableInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
