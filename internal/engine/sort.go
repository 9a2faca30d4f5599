package engine

import (
	"sort"

	"cricket-analytics/internal/domain"
)

// SortDeliveries orders a match's deliveries by (innings_number, over_number,
// ball_in_over). Every stage folds over this canonical order; storage order is
// never trusted.
func SortDeliveries(deliveries []domain.Delivery) {
	sort.SliceStable(deliveries, func(i, j int) bool {
		a, b := deliveries[i], deliveries[j]
		if a.InningsNumber != b.InningsNumber {
			return a.InningsNumber < b.InningsNumber
		}
		if a.OverNumber != b.OverNumber {
			return a.OverNumber < b.OverNumber
		}
		return a.BallInOver < b.BallInOver
	})
}

// GroupByInnings splits sorted deliveries into per-innings slices, ordered by
// innings number. Input must already be in canonical order.
func GroupByInnings(deliveries []domain.Delivery) [][]domain.Delivery {
	var groups [][]domain.Delivery
	start := 0
	for i := 1; i <= len(deliveries); i++ {
		if i == len(deliveries) || deliveries[i].InningsNumber != deliveries[start].InningsNumber {
			groups = append(groups, deliveries[start:i])
			start = i
		}
	}
	return groups
}
