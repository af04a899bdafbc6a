package domain

import (
	"errors"
	"time"
)

// LoanPeriod is the fixed time a borrower may keep a book. Due dates are
// always BorrowDate + LoanPeriod; the policy is not configurable per book
// or per user.
const LoanPeriod = 14 * 24 * time.Hour

var ErrRecordNotFound = errors.New("borrow record not found")
var ErrLoanClosed = errors.New("borrow record already returned")
var ErrNoSession = errors.New("no active user session")

// BorrowRecord is a single entry in the loan ledger. BorrowDate and DueDate
// are fixed at creation; only ReturnDate is ever set afterwards.
type BorrowRecord struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	BookID     string     `json:"book_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// Open reports whether the record denotes an active loan.
func (r *BorrowRecord) Open() bool {
	return r.ReturnDate == nil
}
