package loan

import "context"

// Repository is the ledger's data access contract. The postgres
// implementation lives in the repository subpackage; tests substitute an
// in-memory fake.
type Repository interface {
	// Create persists a new ledger row and fills in the generated id.
	Create(ctx context.Context, history *History) error

	// FindOutstandingByBookName returns the LOANED row for a book name.
	// Returns ErrLoanNotFound when no loan is outstanding.
	FindOutstandingByBookName(ctx context.Context, bookName string) (*History, error)

	// ExistsOutstandingByBookName reports whether a LOANED row exists for
	// the book name.
	ExistsOutstandingByBookName(ctx context.Context, bookName string) (bool, error)

	// FindAll returns every ledger row, order not significant.
	FindAll(ctx context.Context) ([]History, error)

	// Update persists the row's current status.
	Update(ctx context.Context, history *History) error

	// CountByStatus counts ledger rows in the given status.
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
