package ports

import (
	"context"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// SearchInput carries the catalog view filters. Both filters are ANDed.
type SearchInput struct {
	// Query matches case-insensitively as a substring of title or author.
	// Empty matches everything.
	Query string
	// Category is an exact match; empty or "All" disables the filter.
	Category string
}

// AddBookInput carries the fields for the admin add-book operation.
// New books always enter the catalog as available.
type AddBookInput struct {
	Title         string
	Author        string
	ISBN          string
	Category      string
	Summary       string
	CoverURL      string
	PublishedYear int
}

// Statistics is the aggregate dashboard view, recomputed on every read.
type Statistics struct {
	Total      int            `json:"total"`
	Available  int            `json:"available"`
	Borrowed   int            `json:"borrowed"`
	TotalLoans int            `json:"total_loans"`
	ByCategory map[string]int `json:"by_category"`
	// AvailableRatio is available/total as a percentage rounded to the
	// nearest integer; 0 when the catalog is empty.
	AvailableRatio int `json:"available_ratio"`
}

// CatalogService exposes the catalog views.
type CatalogService interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
	// SearchBooks applies the query and category filters, preserving
	// catalog order.
	SearchBooks(ctx context.Context, input SearchInput) ([]domain.Book, error)
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	AddBook(ctx context.Context, input AddBookInput) (*domain.Book, error)
	Statistics(ctx context.Context) (*Statistics, error)
}
