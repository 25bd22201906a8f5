package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fintrack-cli/fintrack/internal/common"
)

func TestDueBandBoundaries(t *testing.T) {
	tests := []struct {
		want     DueBand
		daysLeft int
	}{
		{daysLeft: -5, want: DueOverdue},
		{daysLeft: 0, want: DueOverdue}, // due today groups with overdue
		{daysLeft: 1, want: DueSoon},
		{daysLeft: 7, want: DueSoon},
		{daysLeft: 8, want: DueUpcoming},
		{daysLeft: 30, want: DueUpcoming},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, dueBandFor(tt.daysLeft), "days left %d", tt.daysLeft)
	}
}

func TestAddSubscription(t *testing.T) {
	lgr, _ := newTestLedger(t)

	sub, err := lgr.AddSubscription(context.Background(), "  Netflix ", 499, date(2024, time.January, 18))
	require.NoError(t, err)
	require.Equal(t, "Netflix", sub.Name, "name is trimmed")
	require.NotZero(t, sub.ID)
}

func TestAddSubscription_RejectsInvalidInput(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := lgr.AddSubscription(ctx, "  ", 499, date(2024, time.January, 18))
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = lgr.AddSubscription(ctx, "Netflix", 0, date(2024, time.January, 18))
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = lgr.AddSubscription(ctx, "Netflix", 499, time.Time{})
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestUpcomingSubscriptions(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	// The frozen clock puts today at 2024-01-15.
	_, err := lgr.AddSubscription(ctx, "Netflix", 499, date(2024, time.January, 18))
	require.NoError(t, err)
	_, err = lgr.AddSubscription(ctx, "Gym", 900, date(2024, time.January, 10))
	require.NoError(t, err)
	_, err = lgr.AddSubscription(ctx, "Insurance", 1200, date(2024, time.January, 15))
	require.NoError(t, err)
	_, err = lgr.AddSubscription(ctx, "Cloud", 200, date(2024, time.February, 1))
	require.NoError(t, err)
	_, err = lgr.AddSubscription(ctx, "Domain", 99, date(2024, time.June, 1))
	require.NoError(t, err)

	upcoming, err := lgr.UpcomingSubscriptions(ctx, 30)
	require.NoError(t, err)
	require.Len(t, upcoming, 4, "far-future subscription is outside the window")

	// Ordered soonest first, overdue included.
	require.Equal(t, "Gym", upcoming[0].Subscription.Name)
	require.Equal(t, -5, upcoming[0].DaysLeft)
	require.Equal(t, DueOverdue, upcoming[0].Band)

	require.Equal(t, "Insurance", upcoming[1].Subscription.Name)
	require.Equal(t, 0, upcoming[1].DaysLeft)
	require.Equal(t, DueOverdue, upcoming[1].Band, "due today groups with overdue")

	require.Equal(t, "Netflix", upcoming[2].Subscription.Name)
	require.Equal(t, 3, upcoming[2].DaysLeft)
	require.Equal(t, DueSoon, upcoming[2].Band)

	require.Equal(t, "Cloud", upcoming[3].Subscription.Name)
	require.Equal(t, 17, upcoming[3].DaysLeft)
	require.Equal(t, DueUpcoming, upcoming[3].Band)
}

func TestUpcomingSubscriptions_Empty(t *testing.T) {
	lgr, _ := newTestLedger(t)

	upcoming, err := lgr.UpcomingSubscriptions(context.Background(), 30)
	require.NoError(t, err, "an empty result is not an error")
	require.Empty(t, upcoming)
}

func TestUpcomingSubscriptions_DefaultWindow(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	// 2024-02-14 is exactly 30 days from the frozen today.
	_, err := lgr.AddSubscription(ctx, "Edge", 100, date(2024, time.February, 14))
	require.NoError(t, err)
	_, err = lgr.AddSubscription(ctx, "Past window", 100, date(2024, time.February, 15))
	require.NoError(t, err)

	upcoming, err := lgr.UpcomingSubscriptions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, upcoming, 1, "cutoff is inclusive at exactly the default window")
	require.Equal(t, "Edge", upcoming[0].Subscription.Name)
	require.Equal(t, 30, upcoming[0].DaysLeft)
}
