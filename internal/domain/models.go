package domain

import (
	"time"
)

// MatchConfig describes the format and static metadata of one match. It is
// produced by the upstream normalizer and never modified here.
type MatchConfig struct {
	MatchID        string
	MatchType      MatchType
	ScheduledOvers int
	BallsPerOver   int
	Team1          string
	Team2          string
	Venue          string
	City           string
	EventName      string
	StartDate      time.Time
	TossWinner     string
	TossDecision   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MatchOutcome is the recorded result of a match. Winner is empty when no
// winner was recorded (abandoned, tied without resolution).
type MatchOutcome struct {
	MatchID           string
	Winner            string
	ResultType        string
	ResultDescription string
	OutcomeMethod     string
	PlayersOfMatch    string
}

// Delivery is one ball bowled, legal or not. InningsNumber is global across
// the match (1-based), OverNumber is 0-based, BallInOver is the recorded
// sequence within the over (1-based).
type Delivery struct {
	MatchID         string
	InningsNumber   int
	BattingTeam     string
	OverNumber      int
	BallInOver      int
	Batter          string
	NonStriker      string
	Bowler          string
	RunsBatter      int
	RunsExtras      int
	RunsTotal       int
	ExtrasByes      int
	ExtrasLegbyes   int
	ExtrasNoballs   int
	ExtrasPenalty   int
	ExtrasWides     int
	IsWicket        bool
	WicketPlayerOut string
	WicketKind      string
	WicketFielder1  string
	WicketFielder2  string

	// Miscount flag as recorded by the upstream source, checked against the
	// computed flag in DeliveryContext.
	SourceMiscountedOver bool
}

// IsLegal reports whether the delivery counts toward the over's quota.
func (d Delivery) IsLegal() bool {
	return d.ExtrasWides == 0 && d.ExtrasNoballs == 0
}

// Innings is one team's batting stint with its situation classification and,
// when the team batted second or later, the target it faced.
type Innings struct {
	MatchID           string
	InningsNumber     int
	BattingTeam       string
	InningsTotal      int
	WicketsLost       int
	TeamInningsNumber int
	InningsContext    InningsContext

	PreviousInningsTotal *int
	PreviousBattingTeam  string

	TargetRuns         *int
	SuccessfullyChased *bool
	RunsShortOfTarget  *int

	// Outcome join; Winner empty when no winner was recorded.
	Winner         string
	ResultType     string
	InningsTeamWon bool
}

// Partnership is a maximal run of deliveries with the same two batters at
// the crease.
type Partnership struct {
	MatchID           string
	InningsNumber     int
	BattingTeam       string
	PartnershipNumber int
	Batter            string
	Partner           string
	PartnershipRuns   int
	PartnershipBalls  int
	BatterRuns        int
	PartnerRuns       int
	EndedInWicket     bool
	DismissedBatter   string

	// Count of non-retirement dismissals for the team so far in the innings,
	// nil when the partnership did not end in a counted dismissal.
	DismissalOrder *int
}

// BattingOrderEntry ranks batters by the first delivery they faced. Batters
// who only ever stood at the non-striker's end have no entry.
type BattingOrderEntry struct {
	MatchID         string
	InningsNumber   int
	Batter          string
	BattingPosition int
}

// DeliveryContext is the per-delivery running state of a chase. Rates are nil
// when their denominator is zero.
type DeliveryContext struct {
	MatchID       string
	InningsNumber int
	BattingTeam   string
	OverNumber    int
	BallInOver    int

	RunsSoFar            int
	BallsSoFar           int
	WicketsSoFar         int
	LegalDeliveriesSoFar int
	LegalBallOfOver      int

	BallsRemaining  int
	RequiredRunRate *float64
	CurrentRunRate  *float64

	TargetRuns              int
	TargetReached           bool
	IsLastDeliveryOfInnings bool
	Pressure                PressureState

	IsMiscountedOverComputed     bool
	IsMiscountedDeliveryComputed bool
	MiscountCheckPassed          bool
}

// MatchDerived bundles everything computed for one match.
type MatchDerived struct {
	MatchID      string
	Innings      []Innings
	Partnerships []Partnership
	BattingOrder []BattingOrderEntry
	ChaseContext []DeliveryContext
}

// PipelineRun records one batch computation over the stored matches.
type PipelineRun struct {
	ID             string
	StartedAt      time.Time
	FinishedAt     time.Time
	MatchesTotal   int
	MatchesFailed  int
	InningsWritten int
	DeliveriesRead int
}
