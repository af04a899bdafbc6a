package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/libraryhub/catalog-api/internal/core/domain"
	"github.com/libraryhub/catalog-api/internal/core/ports"
)

// ActivityRecorder receives loan activity after a successful mutation.
// Delivery is best-effort; the catalog and ledger are already committed by
// the time it is called.
type ActivityRecorder interface {
	Record(activity domain.LoanActivity)
}

// LoanService is the lifecycle engine. All catalog status changes and all
// ledger writes go through it; the repositories commit each transition as a
// single atomic step so the borrowed-iff-open-record invariant is never
// observably broken.
type LoanService struct {
	books    ports.CatalogRepository
	loans    ports.LoanRepository
	activity ActivityRecorder
	log      zerolog.Logger
}

func NewLoanService(
	books ports.CatalogRepository,
	loans ports.LoanRepository,
	activity ActivityRecorder,
	log zerolog.Logger,
) *LoanService {
	return &LoanService{books: books, loans: loans, activity: activity, log: log}
}

// Borrow opens a loan for the session user. The UI never offers the action
// on an unavailable book or without a session, but both guards hold here
// regardless.
func (s *LoanService) Borrow(ctx context.Context, in ports.BorrowInput) (*domain.BorrowRecord, error) {
	if in.UserID == "" {
		return nil, domain.ErrNoSession
	}

	now := time.Now().UTC()
	record := &domain.BorrowRecord{
		ID:         uuid.NewString(),
		UserID:     in.UserID,
		BookID:     in.BookID,
		BorrowDate: now,
		DueDate:    now.Add(domain.LoanPeriod),
	}

	// Checkout flips the book to borrowed and appends the record in one
	// step, or rejects without touching either collection.
	if err := s.loans.Checkout(ctx, record); err != nil {
		s.log.Debug().Err(err).Str("book_id", in.BookID).Str("user_id", in.UserID).Msg("borrow rejected")
		return nil, fmt.Errorf("borrow: %w", err)
	}

	s.log.Info().
		Str("record_id", record.ID).
		Str("book_id", record.BookID).
		Str("user_id", record.UserID).
		Time("due_date", record.DueDate).
		Msg("book borrowed")

	s.recordActivity(ctx, record, domain.ActionBorrowed, now)
	return record, nil
}

// Return closes the loan identified by recordID and releases its book.
func (s *LoanService) Return(ctx context.Context, recordID string) (*domain.BorrowRecord, error) {
	now := time.Now().UTC()

	record, err := s.loans.CheckIn(ctx, recordID, now)
	if err != nil {
		s.log.Debug().Err(err).Str("record_id", recordID).Msg("return rejected")
		// A closed record is indistinguishable from a missing one to the
		// caller: no open record resolves either way.
		if errors.Is(err, domain.ErrLoanClosed) {
			return nil, fmt.Errorf("return: %w", domain.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("return: %w", err)
	}

	s.log.Info().
		Str("record_id", record.ID).
		Str("book_id", record.BookID).
		Str("user_id", record.UserID).
		Msg("book returned")

	s.recordActivity(ctx, record, domain.ActionReturned, now)
	return record, nil
}

// LoansForUser joins the user's open records with their books. A record
// whose book no longer resolves is omitted rather than surfaced half-empty.
func (s *LoanService) LoansForUser(ctx context.Context, userID string) ([]ports.Loan, error) {
	records, err := s.loans.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loans for user: %w", err)
	}

	loans := make([]ports.Loan, 0, len(records))
	for _, r := range records {
		if !r.Open() {
			continue
		}
		book, err := s.books.FindByID(ctx, r.BookID)
		if err != nil {
			s.log.Warn().Str("record_id", r.ID).Str("book_id", r.BookID).Msg("loan references unknown book, omitted")
			continue
		}
		loans = append(loans, ports.Loan{Record: r, Book: *book})
	}
	return loans, nil
}

func (s *LoanService) recordActivity(ctx context.Context, record *domain.BorrowRecord, action domain.ActivityAction, ts time.Time) {
	if s.activity == nil {
		return
	}
	title := ""
	if book, err := s.books.FindByID(ctx, record.BookID); err == nil {
		title = book.Title
	}
	s.activity.Record(domain.LoanActivity{
		RecordID:  record.ID,
		BookID:    record.BookID,
		BookTitle: title,
		UserID:    record.UserID,
		Action:    action,
		Timestamp: ts,
	})
}
