package book

import "context"

// Service is the catalog and loan lifecycle contract.
type Service interface {
	// SaveBook catalogs a new book. Fails with ErrBlankBookName or
	// ErrInvalidCategory before anything is persisted. Duplicate names are
	// allowed.
	SaveBook(ctx context.Context, req CreateBookRequest) (*BookResponse, error)

	// GetBooks returns the whole catalog.
	GetBooks(ctx context.Context) ([]BookResponse, error)

	// LoanBook issues a loan of the named book to the named member.
	// Fails with user.ErrUserNotFound for an unknown member and with
	// ErrBookAlreadyLoaned while a loan for the book name is outstanding.
	LoanBook(ctx context.Context, req LoanBookRequest) error

	// ReturnBook settles the outstanding loan on the named book.
	// Fails with user.ErrUserNotFound for an unknown member and with
	// loan.ErrLoanNotFound when no loan is outstanding.
	ReturnBook(ctx context.Context, req ReturnBookRequest) error

	// CountLoanedBooks reports how many loans are currently outstanding.
	CountLoanedBooks(ctx context.Context) (int64, error)

	// GetBookStatistics returns per-category book counts.
	GetBookStatistics(ctx context.Context) ([]BookStatResponse, error)
}
