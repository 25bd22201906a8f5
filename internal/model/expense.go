package model

import "time"

// Expense is a single recorded spend. Every expense belongs to exactly one
// category. Dates are plain calendar dates; any time-of-day component is
// dropped at the storage boundary.
type Expense struct {
	Date         time.Time
	Title        string
	CategoryName string
	Amount       float64
	ID           int64
	CategoryID   int
}
