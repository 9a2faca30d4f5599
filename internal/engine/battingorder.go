package engine

import (
	"sort"

	"cricket-analytics/internal/domain"
)

// ResolveBattingOrder ranks one innings' batters by the first delivery they
// faced on strike. A batter who only ever stood at the non-striker's end gets
// no entry: they never faced a ball, which is a valid state, not an error.
func ResolveBattingOrder(deliveries []domain.Delivery) []domain.BattingOrderEntry {
	if len(deliveries) == 0 {
		return nil
	}

	firstFaced := make(map[string]int)
	for i, d := range deliveries {
		if _, ok := firstFaced[d.Batter]; !ok {
			firstFaced[d.Batter] = i
		}
	}

	batters := make([]string, 0, len(firstFaced))
	for b := range firstFaced {
		batters = append(batters, b)
	}
	sort.Slice(batters, func(i, j int) bool {
		return firstFaced[batters[i]] < firstFaced[batters[j]]
	})

	entries := make([]domain.BattingOrderEntry, len(batters))
	for pos, b := range batters {
		entries[pos] = domain.BattingOrderEntry{
			MatchID:         deliveries[0].MatchID,
			InningsNumber:   deliveries[0].InningsNumber,
			Batter:          b,
			BattingPosition: pos + 1,
		}
	}
	return entries
}
