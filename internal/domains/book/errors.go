package book

import "errors"

// Validation errors
var (
	ErrBlankBookName   = errors.New("book name must not be blank")
	ErrInvalidCategory = errors.New("unknown book category")
)

// Business-rule errors
var (
	// ErrBookAlreadyLoaned means an outstanding LOANED ledger row already
	// exists for the book name.
	ErrBookAlreadyLoaned = errors.New("book is already loaned")
)
