package ports

import (
	"context"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// CatalogRepository defines read access to the book catalog plus the single
// insert path used by the administrative surface. Book status is never set
// through this interface; only the loan lifecycle mutates it.
type CatalogRepository interface {
	// All returns a snapshot of every book in stable catalog order.
	All(ctx context.Context) ([]domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	// Insert adds a new book to the end of the catalog.
	Insert(ctx context.Context, book *domain.Book) error
}
