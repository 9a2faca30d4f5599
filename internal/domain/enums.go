package domain

import "strings"

// MatchType is the playing format of a match.
type MatchType string

const (
	MatchTypeTest  MatchType = "Test"
	MatchTypeODI   MatchType = "ODI"
	MatchTypeT20   MatchType = "T20"
	MatchTypeOther MatchType = "Other"
)

// ParseMatchType maps a raw format string to a MatchType. Anything
// unrecognized comes back as MatchTypeOther together with ok=false so
// callers can flag it instead of silently mis-tagging a chase.
func ParseMatchType(s string) (MatchType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TEST", "MDM":
		return MatchTypeTest, true
	case "ODI", "ODM":
		return MatchTypeODI, true
	case "T20", "IT20":
		return MatchTypeT20, true
	}
	return MatchTypeOther, false
}

// IsLimitedOvers reports whether the format has a fixed over allocation.
func (t MatchType) IsLimitedOvers() bool {
	return t == MatchTypeODI || t == MatchTypeT20
}

// InningsContext tags the match situation of an innings.
type InningsContext string

const (
	ContextBattingFirst InningsContext = "batting_first"
	ContextChasing      InningsContext = "chasing"
	ContextFollowingOn  InningsContext = "following_on"
	ContextBattingAgain InningsContext = "batting_again"
)

// PressureState classifies the state of a chase on a single delivery.
type PressureState string

const (
	PressureWon      PressureState = "won"
	PressureAllOut   PressureState = "all_out"
	PressureExtreme  PressureState = "extreme_pressure"
	PressureHigh     PressureState = "high_pressure"
	PressureModerate PressureState = "moderate_pressure"
	PressureLow      PressureState = "low_pressure"
)

// IsRetirement reports whether a wicket kind is a retirement rather than a
// dismissal. Retirements do not consume a dismissal slot.
func IsRetirement(wicketKind string) bool {
	return strings.Contains(strings.ToLower(wicketKind), "retired")
}
