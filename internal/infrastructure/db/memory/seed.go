package memory

import "github.com/libraryhub/catalog-api/internal/core/domain"

// SeedCatalog returns the fixed startup catalog. "Atomic Habits" ships as
// borrowed with no ledger entry, mirroring the state the system boots into;
// it cannot be returned until the process restarts.
func SeedCatalog() []domain.Book {
	return []domain.Book{
		{
			ID:            "1",
			Title:         "The Great Gatsby",
			Author:        "F. Scott Fitzgerald",
			ISBN:          "9780743273565",
			Category:      "Classic",
			Summary:       "A story of wealth, love, and the American Dream in the 1920s.",
			Status:        domain.StatusAvailable,
			CoverURL:      "https://picsum.photos/seed/gatsby/400/600",
			PublishedYear: 1925,
		},
		{
			ID:            "2",
			Title:         "Dune",
			Author:        "Frank Herbert",
			ISBN:          "9780441172719",
			Category:      "Sci-Fi",
			Summary:       "Set on the desert planet Arrakis, Dune is the story of the boy Paul Atreides.",
			Status:        domain.StatusAvailable,
			CoverURL:      "https://picsum.photos/seed/dune/400/600",
			PublishedYear: 1965,
		},
		{
			ID:            "3",
			Title:         "Atomic Habits",
			Author:        "James Clear",
			ISBN:          "9780735211292",
			Category:      "Self-Help",
			Summary:       "An easy and proven way to build good habits and break bad ones.",
			Status:        domain.StatusBorrowed,
			CoverURL:      "https://picsum.photos/seed/habits/400/600",
			PublishedYear: 2018,
		},
		{
			ID:            "4",
			Title:         "Project Hail Mary",
			Author:        "Andy Weir",
			ISBN:          "9780593135204",
			Category:      "Sci-Fi",
			Summary:       "A lone astronaut must save the earth from a disaster.",
			Status:        domain.StatusAvailable,
			CoverURL:      "https://picsum.photos/seed/hailmary/400/600",
			PublishedYear: 2021,
		},
	}
}
