package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fintrack-cli/fintrack/internal/common"
	"github.com/fintrack-cli/fintrack/internal/model"
)

// DefaultUpcomingDays is the lookahead window for upcoming subscriptions
// when the caller does not supply one.
const DefaultUpcomingDays = 30

// DueBand classifies how close a subscription's next charge is.
type DueBand string

// Due bands. Day zero (due today) is grouped with overdue; its rendered text
// differs ("TODAY!" vs "N days overdue") but the classification is the same.
const (
	DueOverdue  DueBand = "overdue"
	DueSoon     DueBand = "due-soon"
	DueUpcoming DueBand = "upcoming"
)

// dueBandFor maps a days-left count onto exactly one band.
func dueBandFor(daysLeft int) DueBand {
	switch {
	case daysLeft <= 0:
		return DueOverdue
	case daysLeft <= 7:
		return DueSoon
	default:
		return DueUpcoming
	}
}

// UpcomingSubscription pairs a subscription with its derived due state.
// DaysLeft is negative for overdue subscriptions.
type UpcomingSubscription struct {
	Subscription model.Subscription
	Band         DueBand
	DaysLeft     int
}

// AddSubscription records a recurring charge. The name is trimmed, the
// amount must be positive, and the next-due date must be a real calendar
// date; it may be in the past (already overdue).
func (l *Ledger) AddSubscription(ctx context.Context, name string, amount float64, nextDue time.Time) (*model.Subscription, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: subscription name must not be empty", common.ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %v", common.ErrInvalidInput, amount)
	}
	if nextDue.IsZero() {
		return nil, fmt.Errorf("%w: next due date is required", common.ErrInvalidInput)
	}

	sub := &model.Subscription{Name: name, Amount: amount, NextDue: nextDue}
	saved, err := l.store.CreateSubscription(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}
	return saved, nil
}

// UpcomingSubscriptions returns subscriptions due within the next `days`
// days (DefaultUpcomingDays when days <= 0), ordered soonest first. Overdue
// subscriptions are always included; an empty result is not an error.
func (l *Ledger) UpcomingSubscriptions(ctx context.Context, days int) ([]UpcomingSubscription, error) {
	if days <= 0 {
		days = DefaultUpcomingDays
	}

	today := l.today()
	cutoff := today.AddDate(0, 0, days)

	subs, err := l.store.QueryUpcomingSubscriptions(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}

	upcoming := make([]UpcomingSubscription, 0, len(subs))
	for _, sub := range subs {
		daysLeft := int(sub.NextDue.Sub(today).Hours() / 24)
		upcoming = append(upcoming, UpcomingSubscription{
			Subscription: sub,
			DaysLeft:     daysLeft,
			Band:         dueBandFor(daysLeft),
		})
	}
	return upcoming, nil
}
