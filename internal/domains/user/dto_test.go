package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestCreateUserRequestValidate(t *testing.T) {
	assert.NoError(t, CreateUserRequest{Name: "A"}.Validate())
	assert.NoError(t, CreateUserRequest{Name: "A", Age: intPtr(0)}.Validate())
	assert.NoError(t, CreateUserRequest{Name: "A", Age: intPtr(20)}.Validate())

	assert.Error(t, CreateUserRequest{}.Validate())
	assert.Error(t, CreateUserRequest{Name: "A", Age: intPtr(-1)}.Validate())
}

func TestUpdateUserRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateUserRequest{ID: 1, Name: "A1"}.Validate())

	assert.Error(t, UpdateUserRequest{Name: "A1"}.Validate())
	assert.Error(t, UpdateUserRequest{ID: 1}.Validate())
}
