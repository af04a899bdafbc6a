package domain

import "time"

// ActivityAction identifies what happened to a loan.
type ActivityAction string

const (
	ActionBorrowed ActivityAction = "borrowed"
	ActionReturned ActivityAction = "returned"
)

// LoanActivity describes a completed borrow or return, emitted by the
// lifecycle engine for the recent-activity feed. It is informational only;
// the catalog and ledger remain the authoritative state.
type LoanActivity struct {
	RecordID  string         `json:"record_id"`
	BookID    string         `json:"book_id"`
	BookTitle string         `json:"book_title"`
	UserID    string         `json:"user_id"`
	Action    ActivityAction `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
}
