package engine

import (
	"cricket-analytics/internal/domain"
)

// BuildChaseContext computes the per-delivery running state of a chasing
// innings: cumulative totals, current and required run rates, pressure, and
// over-length consistency flags. Deliveries must be one innings in canonical
// order; targetRuns comes from the sequenced innings row.
//
// Running totals include the delivery itself, so target_reached flips true on
// the ball that levels the scores plus one.
func BuildChaseContext(deliveries []domain.Delivery, targetRuns int, cfg domain.MatchConfig) []domain.DeliveryContext {
	if len(deliveries) == 0 {
		return nil
	}

	quota := cfg.ScheduledOvers * cfg.BallsPerOver

	rows := make([]domain.DeliveryContext, len(deliveries))
	runs, balls, wickets, legal := 0, 0, 0, 0
	overSeq := 0
	currentOver := -1

	for i, d := range deliveries {
		if d.OverNumber != currentOver {
			currentOver = d.OverNumber
			overSeq = 0
		}

		runs += d.RunsTotal
		balls++
		if d.IsWicket {
			wickets++
		}
		if d.IsLegal() {
			legal++
			overSeq++
		}

		row := domain.DeliveryContext{
			MatchID:                 d.MatchID,
			InningsNumber:           d.InningsNumber,
			BattingTeam:             d.BattingTeam,
			OverNumber:              d.OverNumber,
			BallInOver:              d.BallInOver,
			RunsSoFar:               runs,
			BallsSoFar:              balls,
			WicketsSoFar:            wickets,
			LegalDeliveriesSoFar:    legal,
			BallsRemaining:          ballsRemaining(quota, legal),
			TargetRuns:              targetRuns,
			TargetReached:           runs >= targetRuns,
			IsLastDeliveryOfInnings: i == len(deliveries)-1,
		}
		if d.IsLegal() {
			row.LegalBallOfOver = overSeq
			row.IsMiscountedDeliveryComputed = overSeq > cfg.BallsPerOver
		}

		if row.BallsRemaining != 0 {
			rrr := float64(targetRuns-runs) * 6 / float64(row.BallsRemaining)
			row.RequiredRunRate = &rrr
		}
		if balls != 0 {
			crr := float64(runs) * 6 / float64(balls)
			row.CurrentRunRate = &crr
		}

		row.Pressure = classifyPressure(targetRuns-runs, wickets, row.RequiredRunRate)

		rows[i] = row
	}

	flagMiscountedOvers(deliveries, rows, cfg.BallsPerOver)
	return rows
}

// ballsRemaining is the unspent legal-ball allocation. Formats without a
// fixed allocation (Test matches carry scheduled_overs of zero) have no
// meaningful remainder, which surfaces as a nil required rate downstream.
func ballsRemaining(quota, legalSoFar int) int {
	if quota <= 0 {
		return 0
	}
	if rem := quota - legalSoFar; rem > 0 {
		return rem
	}
	return 0
}

// classifyPressure walks the pressure ladder top down. A nil required rate
// (no balls remaining) that is not already won or all out lands on low, since
// there is no rate left to chase.
func classifyPressure(runsNeeded, wickets int, requiredRate *float64) domain.PressureState {
	switch {
	case runsNeeded <= 0:
		return domain.PressureWon
	case wickets >= 10:
		return domain.PressureAllOut
	case requiredRate != nil && *requiredRate > 12:
		return domain.PressureExtreme
	case requiredRate != nil && *requiredRate > 9:
		return domain.PressureHigh
	case requiredRate != nil && *requiredRate > 6:
		return domain.PressureModerate
	default:
		return domain.PressureLow
	}
}

// flagMiscountedOvers marks each over whose legal-ball count differs from the
// format quota, except overs in which the target was reached: a chase ending
// mid-over legitimately leaves the over short. The computed flag is then
// checked against the source-supplied one.
func flagMiscountedOvers(deliveries []domain.Delivery, rows []domain.DeliveryContext, ballsPerOver int) {
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i < len(rows) && rows[i].OverNumber == rows[start].OverNumber {
			continue
		}

		legalInOver := 0
		reachedInOver := false
		for j := start; j < i; j++ {
			if deliveries[j].IsLegal() {
				legalInOver++
			}
			if rows[j].TargetReached {
				reachedInOver = true
			}
		}

		miscounted := legalInOver != ballsPerOver && !reachedInOver
		for j := start; j < i; j++ {
			rows[j].IsMiscountedOverComputed = miscounted
			rows[j].MiscountCheckPassed = miscounted == deliveries[j].SourceMiscountedOver
			if reachedInOver {
				// A legitimate early finish also clears any spurious
				// extra-ball flag within the over.
				rows[j].IsMiscountedDeliveryComputed = rows[j].IsMiscountedDeliveryComputed && !rows[j].TargetReached
			}
		}

		start = i
	}
}
