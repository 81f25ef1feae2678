package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBook(t *testing.T) {
	b, err := NewBook("The Alchemist", CategoryComputer)

	require.NoError(t, err)
	assert.Equal(t, "The Alchemist", b.Name)
	assert.Equal(t, CategoryComputer, b.Category)
	assert.Zero(t, b.ID)
}

func TestNewBookRejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		b, err := NewBook(name, CategoryComputer)

		assert.ErrorIs(t, err, ErrBlankBookName)
		assert.Nil(t, b)
	}
}

func TestNewBookRejectsUnknownCategory(t *testing.T) {
	b, err := NewBook("The Alchemist", Category("FICTION"))

	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Nil(t, b)
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryComputer, CategoryEconomy, CategorySociety, CategoryLanguage, CategoryScience} {
		assert.True(t, c.Valid(), string(c))
	}

	assert.False(t, Category("").Valid())
	assert.False(t, Category("computer").Valid())
}
