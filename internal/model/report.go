package model

// CategoryTotal is one row of the per-category monthly spending report.
type CategoryTotal struct {
	Category string
	Total    float64
}
