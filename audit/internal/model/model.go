package model

import (
	"time"
)

// AuditEvent is a consumed lending event as persisted.
type AuditEvent struct {
	ID         int       `json:"-" db:"id"`
	EventType  string    `json:"eventType" db:"event_type"`
	PatronID   string    `json:"patronId" db:"patron_id"`
	BookID     int       `json:"bookId" db:"book_id"`
	OccurredAt time.Time `json:"occurredAt" db:"occurred_at"`
	LateFee    float64   `json:"lateFee" db:"late_fee"`
	RecordedAt time.Time `json:"recordedAt" db:"recorded_at"`
}

// PatronActivity summarizes a patron's consumed event stream.
type PatronActivity struct {
	PatronID      string       `json:"patronId"`
	Borrows       int          `json:"borrows"`
	Returns       int          `json:"returns"`
	LateFeesTotal float64      `json:"lateFeesTotal"`
	Events        []AuditEvent `json:"events"`
}
