package engine

import (
	"cricket-analytics/internal/domain"
)

// SequenceInnings fills in lag fields, team innings numbers, situation
// context, targets, and chase outcomes for a match's innings. Input must be
// ordered by innings number; rows are modified in place.
//
// An unrecognized match type means neither chase branch can fire and every
// later innings falls through to batting_again; callers should flag that
// rather than trust the classification.
func SequenceInnings(innings []domain.Innings, cfg domain.MatchConfig) {
	teamCounts := make(map[string]int)

	for i := range innings {
		inn := &innings[i]

		if i > 0 {
			prev := innings[i-1]
			total := prev.InningsTotal
			inn.PreviousInningsTotal = &total
			inn.PreviousBattingTeam = prev.BattingTeam
		}

		teamCounts[inn.BattingTeam]++
		inn.TeamInningsNumber = teamCounts[inn.BattingTeam]

		inn.InningsContext = classifyContext(cfg.MatchType, inn.TeamInningsNumber, inn.BattingTeam, inn.PreviousBattingTeam)

		if inn.TeamInningsNumber > 1 && inn.PreviousInningsTotal != nil {
			target := *inn.PreviousInningsTotal + 1
			inn.TargetRuns = &target

			short := target - inn.InningsTotal
			if short < 0 {
				short = 0
			}
			inn.RunsShortOfTarget = &short

			if inn.InningsContext == domain.ContextChasing {
				chased := inn.InningsTotal >= target
				inn.SuccessfullyChased = &chased
			}
		}
	}
}

// classifyContext tags an innings with the match situation. Two consecutive
// innings by the same team is an enforced follow-on, which takes precedence
// over the second-team-innings chase rule: a side following on is digging out
// of a deficit, not chasing a target.
func classifyContext(matchType domain.MatchType, teamInnings int, battingTeam, previousBattingTeam string) domain.InningsContext {
	switch {
	case teamInnings == 1:
		return domain.ContextBattingFirst
	case matchType.IsLimitedOvers() && teamInnings == 2:
		return domain.ContextChasing
	case matchType == domain.MatchTypeTest && battingTeam == previousBattingTeam && previousBattingTeam != "":
		return domain.ContextFollowingOn
	case matchType == domain.MatchTypeTest && teamInnings == 2:
		return domain.ContextChasing
	default:
		return domain.ContextBattingAgain
	}
}
