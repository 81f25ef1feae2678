package loan

import "errors"

var (
	// ErrLoanNotFound means no outstanding LOANED row exists for the book
	// name, so there is nothing to return.
	ErrLoanNotFound = errors.New("no outstanding loan for this book")
)
