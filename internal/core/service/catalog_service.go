package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/libraryhub/catalog-api/internal/core/domain"
	"github.com/libraryhub/catalog-api/internal/core/ports"
)

// CategoryAll is the sentinel category value meaning "no category filter".
const CategoryAll = "All"

// CatalogService implements the catalog views. Every view is recomputed
// from a fresh snapshot on each call; nothing is cached.
type CatalogService struct {
	books  ports.CatalogRepository
	loans  ports.LoanRepository
	logger zerolog.Logger
}

func NewCatalogService(books ports.CatalogRepository, loans ports.LoanRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{books: books, loans: loans, logger: logger}
}

func (s *CatalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.books.All(ctx)
}

// SearchBooks filters the catalog by the query and category. The query
// matches case-insensitively against title or author as a substring; the
// category is an exact match unless it is empty or "All". Catalog order is
// preserved.
func (s *CatalogService) SearchBooks(ctx context.Context, input ports.SearchInput) ([]domain.Book, error) {
	books, err := s.books.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}

	query := strings.ToLower(input.Query)
	filtered := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Title), query) &&
			!strings.Contains(strings.ToLower(b.Author), query) {
			continue
		}
		if input.Category != "" && input.Category != CategoryAll && b.Category != input.Category {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

func (s *CatalogService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	return s.books.FindByID(ctx, id)
}

// AddBook inserts a new book at the end of the catalog. New books always
// start available; only the loan lifecycle can change that.
func (s *CatalogService) AddBook(ctx context.Context, input ports.AddBookInput) (*domain.Book, error) {
	book := &domain.Book{
		ID:            uuid.NewString(),
		Title:         input.Title,
		Author:        input.Author,
		ISBN:          input.ISBN,
		Category:      input.Category,
		Summary:       input.Summary,
		Status:        domain.StatusAvailable,
		CoverURL:      input.CoverURL,
		PublishedYear: input.PublishedYear,
	}

	if err := s.books.Insert(ctx, book); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to add book")
		return nil, err
	}

	s.logger.Info().Str("book_id", book.ID).Str("title", book.Title).Msg("book added to catalog")
	return book, nil
}

// Statistics recomputes the aggregate dashboard view in a single pass over
// each collection.
func (s *CatalogService) Statistics(ctx context.Context) (*ports.Statistics, error) {
	books, err := s.books.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}
	records, err := s.loans.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("statistics: %w", err)
	}

	stats := &ports.Statistics{
		Total:      len(books),
		TotalLoans: len(records),
		ByCategory: make(map[string]int),
	}
	for _, b := range books {
		stats.ByCategory[b.Category]++
		if b.Status == domain.StatusAvailable {
			stats.Available++
		} else {
			stats.Borrowed++
		}
	}
	if stats.Total > 0 {
		stats.AvailableRatio = int(math.Round(float64(stats.Available) / float64(stats.Total) * 100))
	}
	return stats, nil
}
