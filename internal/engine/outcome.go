package engine

import (
	"cricket-analytics/internal/domain"
)

// JoinOutcome attaches the match result to each innings row. A nil outcome
// (no result recorded for the match) leaves the fields empty and team-won
// false rather than failing; one missing reference must not sink the match.
func JoinOutcome(innings []domain.Innings, outcome *domain.MatchOutcome) {
	if outcome == nil {
		return
	}
	for i := range innings {
		innings[i].Winner = outcome.Winner
		innings[i].ResultType = outcome.ResultType
		innings[i].InningsTeamWon = outcome.Winner != "" && innings[i].BattingTeam == outcome.Winner
	}
}
