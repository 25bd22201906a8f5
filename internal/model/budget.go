package model

// Budget is a monthly spending ceiling. At most one budget exists per month;
// setting a budget for an existing month overwrites its limit in place.
type Budget struct {
	Month Month
	Limit float64
	ID    int64
}
