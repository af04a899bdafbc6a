// Package memory holds the authoritative in-process state: the book catalog
// and the loan ledger. Nothing is persisted; a restart rebuilds the store
// from its seed. One lock guards both collections so every loan transition
// is a single visible step.
package memory

import (
	"sync"
	"time"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// Store is the shared state behind the catalog and loan repositories.
type Store struct {
	mu        sync.RWMutex
	books     []domain.Book // catalog order
	bookIndex map[string]int
	records   []domain.BorrowRecord // creation order
	recIndex  map[string]int
}

// NewStore returns an empty store. Call Seed before serving.
func NewStore() *Store {
	return &Store{
		bookIndex: make(map[string]int),
		recIndex:  make(map[string]int),
	}
}

// Seed replaces the catalog with the given books and empties the ledger.
// It is also the recovery path: any corruption report is answered by
// reseeding, since every state the store owns is reconstructible.
func (s *Store) Seed(books []domain.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = make([]domain.Book, len(books))
	copy(s.books, books)
	s.bookIndex = make(map[string]int, len(books))
	for i, b := range s.books {
		s.bookIndex[b.ID] = i
	}
	s.records = nil
	s.recIndex = make(map[string]int)
}

// Seeded reports whether the catalog holds any books. Used by the readiness
// probe.
func (s *Store) Seeded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books) > 0
}

// checkout marks the book borrowed and appends the record under one lock.
func (s *Store) checkout(record *domain.BorrowRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.bookIndex[record.BookID]
	if !ok {
		return domain.ErrBookNotFound
	}
	if !s.books[i].Status.CanTransitionTo(domain.StatusBorrowed) {
		return domain.ErrBookUnavailable
	}

	s.books[i].Status = domain.StatusBorrowed
	s.recIndex[record.ID] = len(s.records)
	s.records = append(s.records, *record)
	return nil
}

// checkIn closes the record and releases its book under one lock.
func (s *Store) checkIn(recordID string, returnedAt time.Time) (*domain.BorrowRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.recIndex[recordID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	if !s.records[i].Open() {
		return nil, domain.ErrLoanClosed
	}

	ts := returnedAt
	s.records[i].ReturnDate = &ts
	if bi, ok := s.bookIndex[s.records[i].BookID]; ok {
		s.books[bi].Status = domain.StatusAvailable
	}

	clone := s.records[i]
	return &clone, nil
}
