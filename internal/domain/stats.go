package domain

// StatBucket is one aggregation bucket for dashboard charts.
type StatBucket struct {
	Label  string  `json:"label"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount,omitempty"`
}

// Stats aggregates case counts for the dashboard overview.
type Stats struct {
	Provinces  []StatBucket `json:"provinces"`
	Industries []StatBucket `json:"industries"`
	Months     []StatBucket `json:"months"`
}
