// internal/domain/list/entity_test.go
package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusActive))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.False(t, IsValidStatus(ListStatus("archived")))
	assert.False(t, IsValidStatus(ListStatus("")))
}

func TestShoppingListValidate(t *testing.T) {
	valid := ShoppingList{ID: "l1", Status: StatusActive}
	require.NoError(t, valid.Validate())

	assert.ErrorIs(t, ShoppingList{ID: " ", Status: StatusActive}.Validate(), ErrInvalidID)
	assert.ErrorIs(t, ShoppingList{ID: "l1", Status: "archived"}.Validate(), ErrInvalidStatus)
	assert.ErrorIs(t, ShoppingList{ID: "l1"}.Validate(), ErrInvalidStatus)
}
