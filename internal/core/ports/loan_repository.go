package ports

import (
	"context"
	"time"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// LoanRepository handles the loan ledger and the atomic status updates that
// keep it consistent with the catalog.
type LoanRepository interface {
	// All returns every borrow record ever created, in creation order.
	All(ctx context.Context) ([]domain.BorrowRecord, error)
	FindByID(ctx context.Context, recordID string) (*domain.BorrowRecord, error)
	// FindByUser returns the records belonging to a user, open and closed,
	// in creation order.
	FindByUser(ctx context.Context, userID string) ([]domain.BorrowRecord, error)

	// Checkout atomically marks the referenced book as borrowed and appends
	// the record to the ledger as one visible step. It fails with
	// domain.ErrBookNotFound or domain.ErrBookUnavailable without touching
	// either collection.
	Checkout(ctx context.Context, record *domain.BorrowRecord) error

	// CheckIn atomically closes the record and marks its book available
	// again, returning the closed record. It fails with
	// domain.ErrRecordNotFound or domain.ErrLoanClosed without touching
	// either collection.
	CheckIn(ctx context.Context, recordID string, returnedAt time.Time) (*domain.BorrowRecord, error)
}
