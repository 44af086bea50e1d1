package model

import "time"

type ActionStats struct {
	Action    string  `json:"action" db:"action"`
	Events    int     `json:"events" db:"events"`
	Items     int     `json:"items" db:"items"`
	FineTotal float64 `json:"fineTotal" db:"fine_total"`
	FinePaid  float64 `json:"finePaid" db:"fine_paid"`
}

// Summary aggregates circulation events, optionally within [From, To).
type Summary struct {
	From         *time.Time    `json:"from,omitempty"`
	To           *time.Time    `json:"to,omitempty"`
	Events       int           `json:"events"`
	FineAssessed float64       `json:"fineAssessed"`
	FinePaid     float64       `json:"finePaid"`
	FineUnpaid   float64       `json:"fineUnpaid"`
	Actions      []ActionStats `json:"actions"`
}

type Period struct {
	From *time.Time
	To   *time.Time
}
