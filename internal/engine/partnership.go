package engine

import (
	"cricket-analytics/internal/domain"
)

// endsPartnership reports whether a delivery dismisses one of the two batters
// currently at the crease. A wicket attributed to anyone else (bad data) does
// not close the partnership.
func endsPartnership(d domain.Delivery) bool {
	return d.IsWicket && (d.WicketPlayerOut == d.Batter || d.WicketPlayerOut == d.NonStriker)
}

// TrackPartnerships segments one innings' sorted deliveries into partnerships
// and attributes runs to each. The partnership number of a delivery is one
// plus the count of partnership-ending wickets strictly before it, so the
// delivery that falls a wicket still belongs to the partnership it ends.
func TrackPartnerships(deliveries []domain.Delivery) []domain.Partnership {
	if len(deliveries) == 0 {
		return nil
	}

	// Segment boundaries first, then one row per segment.
	var segments [][]domain.Delivery
	start := 0
	for i, d := range deliveries {
		if endsPartnership(d) {
			segments = append(segments, deliveries[start:i+1])
			start = i + 1
		}
	}
	if start < len(deliveries) {
		segments = append(segments, deliveries[start:])
	}

	dismissals := 0
	partnerships := make([]domain.Partnership, 0, len(segments))
	for n, seg := range segments {
		p := buildPartnership(seg, n+1)

		// Retirements do not consume a dismissal slot.
		for _, d := range seg {
			if d.IsWicket && !domain.IsRetirement(d.WicketKind) {
				dismissals++
			}
		}
		last := seg[len(seg)-1]
		if p.EndedInWicket && !domain.IsRetirement(last.WicketKind) {
			order := dismissals
			p.DismissalOrder = &order
		}

		partnerships = append(partnerships, p)
	}
	return partnerships
}

func buildPartnership(seg []domain.Delivery, number int) domain.Partnership {
	type pair struct{ batter, nonStriker string }

	counts := make(map[pair]int)
	firstSeen := make(map[pair]int)
	runsByPlayer := make(map[string]int)

	runs, balls := 0, 0
	for i, d := range seg {
		pr := pair{d.Batter, d.NonStriker}
		counts[pr]++
		if _, ok := firstSeen[pr]; !ok {
			firstSeen[pr] = i
		}
		runsByPlayer[d.Batter] += d.RunsBatter
		runs += d.RunsTotal
		balls++
	}

	// Mode pair; ties broken by earliest occurrence to keep output stable.
	var best pair
	bestCount := -1
	for pr, c := range counts {
		if c > bestCount || (c == bestCount && firstSeen[pr] < firstSeen[best]) {
			best, bestCount = pr, c
		}
	}

	last := seg[len(seg)-1]
	p := domain.Partnership{
		MatchID:           last.MatchID,
		InningsNumber:     last.InningsNumber,
		BattingTeam:       last.BattingTeam,
		PartnershipNumber: number,
		Batter:            best.batter,
		Partner:           best.nonStriker,
		PartnershipRuns:   runs,
		PartnershipBalls:  balls,
		BatterRuns:        runsByPlayer[best.batter],
		PartnerRuns:       runsByPlayer[best.nonStriker],
	}
	if endsPartnership(last) {
		p.EndedInWicket = true
		p.DismissedBatter = last.WicketPlayerOut
	}
	return p
}
