package book

import "context"

// CategoryCount is the store-level aggregate backing the statistics view.
type CategoryCount struct {
	Category Category
	Count    int64
}

// Repository is the catalog store contract.
type Repository interface {
	// Create persists a new book and fills in the generated id.
	Create(ctx context.Context, book *Book) error

	// FindAll returns the whole catalog, order not significant.
	FindAll(ctx context.Context) ([]Book, error)

	// CountByCategory groups the catalog by category. Only categories with
	// at least one book are present.
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}
