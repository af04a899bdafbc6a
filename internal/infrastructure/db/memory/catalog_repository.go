package memory

import (
	"context"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// CatalogRepository implements ports.CatalogRepository over the shared store.
type CatalogRepository struct {
	store *Store
}

func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// All returns a snapshot copy of the catalog in stable order.
func (r *CatalogRepository) All(_ context.Context) ([]domain.Book, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	books := make([]domain.Book, len(r.store.books))
	copy(books, r.store.books)
	return books, nil
}

func (r *CatalogRepository) FindByID(_ context.Context, id string) (*domain.Book, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.bookIndex[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	clone := r.store.books[i]
	return &clone, nil
}

// Insert appends a new book to the catalog.
func (r *CatalogRepository) Insert(_ context.Context, book *domain.Book) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.bookIndex[book.ID]; exists {
		return domain.ErrDuplicateBook
	}
	r.store.bookIndex[book.ID] = len(r.store.books)
	r.store.books = append(r.store.books, *book)
	return nil
}
