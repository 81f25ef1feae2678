// Package book owns the catalog and the loan/return lifecycle built on top
// of the loan ledger.
package book

import "strings"

// Category is the closed classification set. The enumeration is fixed at
// compile time; the database stores the string form.
type Category string

const (
	CategoryComputer Category = "COMPUTER"
	CategoryEconomy  Category = "ECONOMY"
	CategorySociety  Category = "SOCIETY"
	CategoryLanguage Category = "LANGUAGE"
	CategoryScience  Category = "SCIENCE"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryComputer, CategoryEconomy, CategorySociety, CategoryLanguage, CategoryScience:
		return true
	}
	return false
}

// Book is a catalog entry. Immutable after creation; there is no update or
// delete operation. Names are not unique: several copies may share one.
type Book struct {
	ID       int64
	Name     string
	Category Category
}

// NewBook validates at construction. A book with a blank name or an
// unknown category can never exist.
func NewBook(name string, category Category) (*Book, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankBookName
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	return &Book{Name: name, Category: category}, nil
}
