package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-analytics/internal/domain"
)

// successfulT20Chase builds innings 2 of a T20 chase of 151: 147 runs after
// seventeen overs, the target reached on the fourth ball of the eighteenth,
// followed by a spurious seventh legal ball.
func successfulT20Chase() []domain.Delivery {
	var deliveries []domain.Delivery
	for over := 0; over < 16; over++ {
		deliveries = append(deliveries, overOf(2, over, "Root", "Buttler", []int{2, 1, 2, 1, 2, 1})...)
	}
	deliveries = append(deliveries, overOf(2, 16, "Root", "Buttler", []int{1, 0, 1, 0, 1, 0})...)
	deliveries = append(deliveries, overOf(2, 17, "Root", "Buttler", []int{1, 1, 1, 1, 0, 0, 0})...)
	return deliveries
}

func TestBuildChaseContextRunningTotals(t *testing.T) {
	deliveries := []domain.Delivery{
		ball(2, 0, 1, "Root", "Buttler", 4),
		ball(2, 0, 2, "Root", "Buttler", 0, wide(1)),
		ball(2, 0, 3, "Root", "Buttler", 0, wicket("Root", "bowled")),
		ball(2, 0, 4, "Stokes", "Buttler", 2),
	}

	rows := BuildChaseContext(deliveries, 151, t20Config())
	require.Len(t, rows, 4)

	last := rows[3]
	assert.Equal(t, 7, last.RunsSoFar)
	assert.Equal(t, 4, last.BallsSoFar)
	assert.Equal(t, 1, last.WicketsSoFar)
	assert.Equal(t, 3, last.LegalDeliveriesSoFar)
	assert.Equal(t, 117, last.BallsRemaining)
	assert.True(t, last.IsLastDeliveryOfInnings)
	assert.False(t, rows[0].IsLastDeliveryOfInnings)

	// The wide does not advance the per-over legal sequence.
	assert.Equal(t, 1, rows[0].LegalBallOfOver)
	assert.Equal(t, 0, rows[1].LegalBallOfOver)
	assert.Equal(t, 2, rows[2].LegalBallOfOver)

	require.NotNil(t, last.RequiredRunRate)
	assert.InDelta(t, float64(151-7)*6/117, *last.RequiredRunRate, 1e-9)
	require.NotNil(t, last.CurrentRunRate)
	assert.InDelta(t, 7.0*6/4, *last.CurrentRunRate, 1e-9)
}

func TestBuildChaseContextPressureLadder(t *testing.T) {
	tests := []struct {
		name   string
		target int
		runs   []int
		want   domain.PressureState
	}{
		{"low", 10, []int{4}, domain.PressureLow},
		{"moderate", 150, []int{4}, domain.PressureModerate},
		{"high", 200, []int{4}, domain.PressureHigh},
		{"extreme", 260, []int{4}, domain.PressureExtreme},
		{"won", 4, []int{4}, domain.PressureWon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := BuildChaseContext(overOf(2, 0, "Root", "Buttler", tt.runs), tt.target, t20Config())
			require.NotEmpty(t, rows)
			assert.Equal(t, tt.want, rows[len(rows)-1].Pressure)
		})
	}
}

func TestBuildChaseContextAllOut(t *testing.T) {
	var deliveries []domain.Delivery
	batters := []string{"b1", "b2", "b3", "b4", "b5", "b6", "b7", "b8", "b9", "b10"}
	for i, b := range batters {
		deliveries = append(deliveries, ball(2, i/6, i%6+1, b, "lastman", 0, wicket(b, "bowled")))
	}

	rows := BuildChaseContext(deliveries, 151, t20Config())
	last := rows[len(rows)-1]
	assert.Equal(t, 10, last.WicketsSoFar)
	assert.Equal(t, domain.PressureAllOut, last.Pressure)
}

func TestBuildChaseContextTargetReachedMidOver(t *testing.T) {
	rows := BuildChaseContext(successfulT20Chase(), 151, t20Config())
	require.Len(t, rows, 17*6+7)

	// 147 after seventeen overs.
	endOf17 := rows[17*6-1]
	assert.Equal(t, 147, endOf17.RunsSoFar)
	assert.False(t, endOf17.TargetReached)

	// Target falls on the fourth ball of over eighteen; won from there on.
	fourth := rows[17*6+3]
	assert.Equal(t, 151, fourth.RunsSoFar)
	assert.True(t, fourth.TargetReached)
	assert.Equal(t, domain.PressureWon, fourth.Pressure)
	assert.NotEqual(t, domain.PressureWon, rows[17*6+2].Pressure)

	// The final over has seven legal balls, but the reached target exempts
	// both the over flag and the trailing extra ball.
	for _, row := range rows[17*6:] {
		assert.False(t, row.IsMiscountedOverComputed)
		assert.False(t, row.IsMiscountedDeliveryComputed)
	}
	assert.True(t, rows[len(rows)-1].IsLastDeliveryOfInnings)
}

func TestBuildChaseContextMiscountedOver(t *testing.T) {
	// Seven legal balls without reaching the target flags the over and the
	// seventh delivery.
	deliveries := overOf(2, 0, "Root", "Buttler", []int{0, 0, 0, 0, 0, 0, 0})

	rows := BuildChaseContext(deliveries, 151, t20Config())
	require.Len(t, rows, 7)

	for _, row := range rows {
		assert.True(t, row.IsMiscountedOverComputed)
		// Source carried no flag, so the cross-check fails.
		assert.False(t, row.MiscountCheckPassed)
	}
	assert.False(t, rows[5].IsMiscountedDeliveryComputed)
	assert.True(t, rows[6].IsMiscountedDeliveryComputed)
	assert.Equal(t, 7, rows[6].LegalBallOfOver)
}

func TestBuildChaseContextShortOverWithWides(t *testing.T) {
	// Six deliveries but only five legal ones: short over, flagged, and the
	// check passes when the source agrees.
	deliveries := []domain.Delivery{
		ball(2, 0, 1, "Root", "Buttler", 1, sourceMiscounted()),
		ball(2, 0, 2, "Root", "Buttler", 0, wide(1), sourceMiscounted()),
		ball(2, 0, 3, "Root", "Buttler", 1, sourceMiscounted()),
		ball(2, 0, 4, "Root", "Buttler", 0, sourceMiscounted()),
		ball(2, 0, 5, "Root", "Buttler", 2, sourceMiscounted()),
		ball(2, 0, 6, "Root", "Buttler", 0, sourceMiscounted()),
	}

	rows := BuildChaseContext(deliveries, 151, t20Config())
	for _, row := range rows {
		assert.True(t, row.IsMiscountedOverComputed)
		assert.True(t, row.MiscountCheckPassed)
	}
}

func TestBuildChaseContextCompleteOverConsistency(t *testing.T) {
	// A clean six-ball over with no flag from the source passes the check.
	rows := BuildChaseContext(overOf(2, 0, "Root", "Buttler", []int{1, 1, 1, 1, 1, 1}), 151, t20Config())
	for _, row := range rows {
		assert.False(t, row.IsMiscountedOverComputed)
		assert.True(t, row.MiscountCheckPassed)
	}
}

func TestBuildChaseContextNoScheduledOvers(t *testing.T) {
	// Test-match chases have no fixed allocation: no balls remaining, no
	// required rate, pressure from the ladder default.
	rows := BuildChaseContext(overOf(4, 0, "Root", "Buttler", []int{1, 1, 1, 1, 1, 1}), 151, testConfig())
	for _, row := range rows {
		assert.Equal(t, 0, row.BallsRemaining)
		assert.Nil(t, row.RequiredRunRate)
		require.NotNil(t, row.CurrentRunRate)
	}
	assert.Equal(t, domain.PressureLow, rows[0].Pressure)
}

func TestBuildChaseContextEmpty(t *testing.T) {
	assert.Nil(t, BuildChaseContext(nil, 151, t20Config()))
}
