package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser - POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user", err)
		return
	}

	created, err := h.service.SaveUser(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "failed to save user")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetUsers - GET /api/v1/users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.GetUsers(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list users")
		return
	}

	response.Success(c, http.StatusOK, users)
}

// UpdateUserName - PUT /api/v1/users
func (h *UserHandler) UpdateUserName(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user update", err)
		return
	}

	if err := h.service.UpdateUserName(c.Request.Context(), req); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalServerError(c, "failed to update user")
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// DeleteUser - DELETE /api/v1/users/:name
func (h *UserHandler) DeleteUser(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.BadRequest(c, "name is required")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), name); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalServerError(c, "failed to delete user")
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// GetUserLoanHistories - GET /api/v1/users/loans
func (h *UserHandler) GetUserLoanHistories(c *gin.Context) {
	histories, err := h.service.GetUserLoanHistories(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to load loan histories")
		return
	}

	response.Success(c, http.StatusOK, histories)
}
