package engine

import (
	"cricket-analytics/internal/domain"
)

// AggregateInnings computes per-innings totals from a match's sorted
// deliveries. Wickets lost counts distinct dismissed players, so a player
// recorded out twice in bad data is counted once. An innings with zero
// deliveries produces no row: callers treat a missing innings as not yet
// played, never as zero.
func AggregateInnings(deliveries []domain.Delivery) []domain.Innings {
	var innings []domain.Innings
	for _, group := range GroupByInnings(deliveries) {
		if len(group) == 0 {
			continue
		}

		total := 0
		dismissed := make(map[string]struct{})
		for _, d := range group {
			total += d.RunsTotal
			if d.IsWicket && d.WicketPlayerOut != "" {
				dismissed[d.WicketPlayerOut] = struct{}{}
			}
		}

		innings = append(innings, domain.Innings{
			MatchID:       group[0].MatchID,
			InningsNumber: group[0].InningsNumber,
			BattingTeam:   group[0].BattingTeam,
			InningsTotal:  total,
			WicketsLost:   len(dismissed),
		})
	}
	return innings
}
