package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/loan"
	"library-backend/internal/domains/user"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// CreateBook - POST /api/v1/books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book", err)
		return
	}

	created, err := h.service.SaveBook(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, book.ErrBlankBookName) || errors.Is(err, book.ErrInvalidCategory) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to save book")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetBooks - GET /api/v1/books
func (h *BookHandler) GetBooks(c *gin.Context) {
	books, err := h.service.GetBooks(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list books")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// LoanBook - POST /api/v1/books/loan
func (h *BookHandler) LoanBook(c *gin.Context) {
	var req book.LoanBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid loan request", err)
		return
	}

	if err := h.service.LoanBook(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, book.ErrBookAlreadyLoaned):
			response.Conflict(c, "book is already loaned")
		default:
			response.InternalServerError(c, "failed to loan book")
		}
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// ReturnBook - PUT /api/v1/books/return
func (h *BookHandler) ReturnBook(c *gin.Context) {
	var req book.ReturnBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid return request", err)
		return
	}

	if err := h.service.ReturnBook(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			response.NotFound(c, "user not found")
		case errors.Is(err, loan.ErrLoanNotFound):
			response.NotFound(c, "no outstanding loan for this book")
		default:
			response.InternalServerError(c, "failed to return book")
		}
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// CountLoanedBooks - GET /api/v1/books/loan/count
func (h *BookHandler) CountLoanedBooks(c *gin.Context) {
	count, err := h.service.CountLoanedBooks(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to count loaned books")
		return
	}

	response.Success(c, http.StatusOK, book.LoanCountResponse{Count: count})
}

// GetBookStatistics - GET /api/v1/books/stat
func (h *BookHandler) GetBookStatistics(c *gin.Context) {
	stats, err := h.service.GetBookStatistics(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load book statistics")
		return
	}

	response.Success(c, http.StatusOK, stats)
}
