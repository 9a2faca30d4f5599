package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-analytics/internal/domain"
)

func TestTrackPartnershipsRollover(t *testing.T) {
	// A wicket closes the partnership on the ball it falls; the next ball
	// opens the next partnership with the surviving batter retained.
	deliveries := []domain.Delivery{
		ball(1, 0, 1, "Amla", "Smith", 1),
		ball(1, 0, 2, "Smith", "Amla", 4),
		ball(1, 0, 3, "Smith", "Amla", 0, wicket("Smith", "caught")),
		ball(1, 0, 4, "Khan", "Amla", 2),
		ball(1, 0, 5, "Khan", "Amla", 1),
	}

	partnerships := TrackPartnerships(deliveries)
	require.Len(t, partnerships, 2)

	first := partnerships[0]
	assert.Equal(t, 1, first.PartnershipNumber)
	assert.Equal(t, 5, first.PartnershipRuns)
	assert.Equal(t, 3, first.PartnershipBalls)
	assert.True(t, first.EndedInWicket)
	assert.Equal(t, "Smith", first.DismissedBatter)
	require.NotNil(t, first.DismissalOrder)
	assert.Equal(t, 1, *first.DismissalOrder)

	second := partnerships[1]
	assert.Equal(t, 2, second.PartnershipNumber)
	assert.Equal(t, "Khan", second.Batter)
	assert.Equal(t, "Amla", second.Partner)
	assert.Equal(t, 3, second.PartnershipRuns)
	assert.Equal(t, 2, second.PartnershipBalls)
	assert.False(t, second.EndedInWicket)
	assert.Nil(t, second.DismissalOrder)
}

func TestTrackPartnershipsBallsSumToDeliveryCount(t *testing.T) {
	deliveries := []domain.Delivery{
		ball(1, 0, 1, "Amla", "Smith", 0),
		ball(1, 0, 2, "Amla", "Smith", 0, wide(1)),
		ball(1, 0, 3, "Amla", "Smith", 0, wicket("Amla", "lbw")),
		ball(1, 0, 4, "Khan", "Smith", 2),
		ball(1, 1, 1, "Smith", "Khan", 0, wicket("Khan", "run out")),
		ball(1, 1, 2, "Smith", "Patel", 6),
	}

	partnerships := TrackPartnerships(deliveries)
	require.Len(t, partnerships, 3)

	total := 0
	for i, p := range partnerships {
		assert.Equal(t, i+1, p.PartnershipNumber)
		total += p.PartnershipBalls
	}
	assert.Equal(t, len(deliveries), total)
}

func TestTrackPartnershipsNonStrikerRunOut(t *testing.T) {
	// A run out at the non-striker's end still ends the partnership.
	deliveries := []domain.Delivery{
		ball(1, 0, 1, "Amla", "Smith", 1),
		ball(1, 0, 2, "Amla", "Smith", 0, wicket("Smith", "run out")),
		ball(1, 0, 3, "Amla", "Khan", 0),
	}

	partnerships := TrackPartnerships(deliveries)
	require.Len(t, partnerships, 2)
	assert.Equal(t, "Smith", partnerships[0].DismissedBatter)
	assert.Equal(t, "Khan", partnerships[1].Partner)
}

func TestTrackPartnershipsModePair(t *testing.T) {
	// The reported pair is the most frequent (batter, non_striker)
	// orientation, earliest first occurrence winning ties.
	deliveries := []domain.Delivery{
		ball(1, 0, 1, "Amla", "Smith", 1),
		ball(1, 0, 2, "Smith", "Amla", 2),
		ball(1, 0, 3, "Amla", "Smith", 3),
	}

	partnerships := TrackPartnerships(deliveries)
	require.Len(t, partnerships, 1)

	p := partnerships[0]
	assert.Equal(t, "Amla", p.Batter)
	assert.Equal(t, "Smith", p.Partner)
	assert.Equal(t, 4, p.BatterRuns)
	assert.Equal(t, 2, p.PartnerRuns)
	assert.Equal(t, 6, p.PartnershipRuns)
}

func TestTrackPartnershipsRetirement(t *testing.T) {
	// A retirement ends the partnership but does not consume a dismissal
	// slot, so the next real wicket is still dismissal number one.
	deliveries := []domain.Delivery{
		ball(1, 0, 1, "Amla", "Smith", 1),
		ball(1, 0, 2, "Amla", "Smith", 0, wicket("Amla", "retired hurt")),
		ball(1, 0, 3, "Khan", "Smith", 0, wicket("Khan", "bowled")),
		ball(1, 0, 4, "Patel", "Smith", 4),
	}

	partnerships := TrackPartnerships(deliveries)
	require.Len(t, partnerships, 3)

	assert.True(t, partnerships[0].EndedInWicket)
	assert.Nil(t, partnerships[0].DismissalOrder)

	require.NotNil(t, partnerships[1].DismissalOrder)
	assert.Equal(t, 1, *partnerships[1].DismissalOrder)
}

func TestTrackPartnershipsEmpty(t *testing.T) {
	assert.Nil(t, TrackPartnerships(nil))
}
