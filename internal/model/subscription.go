package model

import "time"

// Subscription is a recurring named charge with a single next-due date.
// The date is updated manually by the user, never auto-advanced, and may be
// in the past (overdue).
type Subscription struct {
	NextDue time.Time
	Name    string
	Amount  float64
	ID      int64
}
