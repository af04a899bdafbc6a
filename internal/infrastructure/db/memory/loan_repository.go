package memory

import (
	"context"
	"time"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// LoanRepository implements ports.LoanRepository over the shared store.
// Checkout and CheckIn delegate to the store so the catalog status change
// and the ledger write happen under the same lock acquisition.
type LoanRepository struct {
	store *Store
}

func NewLoanRepository(store *Store) *LoanRepository {
	return &LoanRepository{store: store}
}

// All returns every record ever created, open and closed, in creation order.
func (r *LoanRepository) All(_ context.Context) ([]domain.BorrowRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	records := make([]domain.BorrowRecord, len(r.store.records))
	copy(records, r.store.records)
	return records, nil
}

func (r *LoanRepository) FindByID(_ context.Context, recordID string) (*domain.BorrowRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.recIndex[recordID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := r.store.records[i]
	return &clone, nil
}

func (r *LoanRepository) FindByUser(_ context.Context, userID string) ([]domain.BorrowRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []domain.BorrowRecord
	for _, rec := range r.store.records {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (r *LoanRepository) Checkout(_ context.Context, record *domain.BorrowRecord) error {
	return r.store.checkout(record)
}

func (r *LoanRepository) CheckIn(_ context.Context, recordID string, returnedAt time.Time) (*domain.BorrowRecord, error) {
	return r.store.checkIn(recordID, returnedAt)
}
