package engine

import (
	"cricket-analytics/internal/domain"
)

type ballOpt func(*domain.Delivery)

func wicket(playerOut, kind string) ballOpt {
	return func(d *domain.Delivery) {
		d.IsWicket = true
		d.WicketPlayerOut = playerOut
		d.WicketKind = kind
	}
}

func wide(runs int) ballOpt {
	return func(d *domain.Delivery) {
		d.ExtrasWides = runs
		d.RunsBatter = 0
		d.RunsExtras = runs
		d.RunsTotal = runs
	}
}

func noBall(extras int) ballOpt {
	return func(d *domain.Delivery) {
		d.ExtrasNoballs = extras
		d.RunsExtras += extras
		d.RunsTotal += extras
	}
}

func sourceMiscounted() ballOpt {
	return func(d *domain.Delivery) {
		d.SourceMiscountedOver = true
	}
}

func ball(innings, over, ballInOver int, batter, nonStriker string, runsBatter int, opts ...ballOpt) domain.Delivery {
	d := domain.Delivery{
		MatchID:       "m1",
		InningsNumber: innings,
		BattingTeam:   battingTeamFor(innings),
		OverNumber:    over,
		BallInOver:    ballInOver,
		Batter:        batter,
		NonStriker:    nonStriker,
		Bowler:        "Bowler",
		RunsBatter:    runsBatter,
		RunsTotal:     runsBatter,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func battingTeamFor(innings int) string {
	if innings%2 == 1 {
		return "Team A"
	}
	return "Team B"
}

// overOf builds one over of legal deliveries with the given per-ball batter
// runs, alternating strike is ignored for simplicity.
func overOf(innings, over int, batter, nonStriker string, runs []int) []domain.Delivery {
	deliveries := make([]domain.Delivery, len(runs))
	for i, r := range runs {
		deliveries[i] = ball(innings, over, i+1, batter, nonStriker, r)
	}
	return deliveries
}

func t20Config() domain.MatchConfig {
	return domain.MatchConfig{
		MatchID:        "m1",
		MatchType:      domain.MatchTypeT20,
		ScheduledOvers: 20,
		BallsPerOver:   6,
		Team1:          "Team A",
		Team2:          "Team B",
	}
}

func testConfig() domain.MatchConfig {
	return domain.MatchConfig{
		MatchID:      "m1",
		MatchType:    domain.MatchTypeTest,
		BallsPerOver: 6,
	}
}
