package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateBookRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// Validate checks request shape only; blank-name and category rules belong
// to NewBook.
func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
	)
}

type LoanBookRequest struct {
	UserName string `json:"userName" binding:"required"`
	BookName string `json:"bookName" binding:"required"`
}

func (r LoanBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.Required.Error("userName is required")),
		validation.Field(&r.BookName, validation.Required.Error("bookName is required")),
	)
}

type ReturnBookRequest struct {
	UserName string `json:"userName" binding:"required"`
	BookName string `json:"bookName" binding:"required"`
}

func (r ReturnBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.Required.Error("userName is required")),
		validation.Field(&r.BookName, validation.Required.Error("bookName is required")),
	)
}

type BookResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

func (b *Book) ToResponse() BookResponse {
	return BookResponse{
		ID:       b.ID,
		Name:     b.Name,
		Category: b.Category,
	}
}

// BookStatResponse is one row of the per-category statistics. Categories
// without books are omitted, not zero-filled.
type BookStatResponse struct {
	Category Category `json:"category"`
	Count    int64    `json:"count"`
}

type LoanCountResponse struct {
	Count int64 `json:"count"`
}
