package ports

import (
	"context"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// BorrowInput identifies the book to borrow and the session user borrowing
// it. UserID comes from the session claims, never from the request body.
type BorrowInput struct {
	BookID string
	UserID string
}

// Loan pairs a ledger record with the book it references, the shape the
// my-loans view renders.
type Loan struct {
	Record domain.BorrowRecord `json:"record"`
	Book   domain.Book         `json:"book"`
}

// LoanService is the lifecycle engine: the only component that moves books
// between available and borrowed, and the only writer of the ledger.
type LoanService interface {
	// Borrow creates an open record due in domain.LoanPeriod and marks the
	// book borrowed, atomically. Rejected with domain.ErrNoSession,
	// domain.ErrBookNotFound or domain.ErrBookUnavailable; rejection leaves
	// all state untouched.
	Borrow(ctx context.Context, input BorrowInput) (*domain.BorrowRecord, error)

	// Return closes the record and releases the book, atomically. Rejected
	// with domain.ErrRecordNotFound when no open record resolves; rejection
	// leaves all state untouched.
	Return(ctx context.Context, recordID string) (*domain.BorrowRecord, error)

	// LoansForUser returns the user's active loans joined with their books.
	// Records whose book no longer resolves are omitted.
	LoansForUser(ctx context.Context, userID string) ([]Loan, error)
}
