package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHistoryStartsLoaned(t *testing.T) {
	h := NewHistory(1, "The Alchemist")

	assert.Equal(t, int64(1), h.UserID)
	assert.Equal(t, "The Alchemist", h.BookName)
	assert.Equal(t, StatusLoaned, h.Status)
	assert.False(t, h.IsReturn())
}

func TestReturnFlipsStatus(t *testing.T) {
	h := NewHistory(1, "The Alchemist")

	h.Return()

	assert.Equal(t, StatusReturned, h.Status)
	assert.True(t, h.IsReturn())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusLoaned.Valid())
	assert.True(t, StatusReturned.Valid())
	assert.False(t, Status("OVERDUE").Valid())
}
