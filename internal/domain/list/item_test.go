// internal/domain/list/item_test.go
package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeItemClassifiesOnTypePresence(t *testing.T) {
	legacy, err := DecodeItem(map[string]any{
		"id":       "i1",
		"name":     "Milk",
		"quantity": float64(2),
		"status":   "taken",
		"price":    6.9,
	})
	require.NoError(t, err)
	require.NotNil(t, legacy.Legacy)
	assert.False(t, legacy.Migrated())
	assert.Equal(t, ItemTaken, legacy.Legacy.Status)

	unified, err := DecodeItem(map[string]any{
		"id":        "i2",
		"name":      "Bread",
		"type":      "product",
		"isChecked": true,
		"productData": map[string]any{
			"quantity":  int64(1),
			"unitPrice": 8.5,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, unified.Unified)
	assert.True(t, unified.Migrated())
	assert.True(t, unified.Unified.IsChecked)
	assert.Equal(t, float64(1), unified.Unified.Product.Quantity, "int64 wire numbers decode")
}

func TestDecodeItemTask(t *testing.T) {
	it, err := DecodeItem(map[string]any{
		"id":   "t1",
		"name": "Pick up keys",
		"type": "task",
		"taskData": map[string]any{
			"dueDate":    "2026-09-05",
			"assignedTo": "u2",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, it.Unified)
	assert.Equal(t, TypeTask, it.Unified.Type)
	assert.Equal(t, "u2", it.Unified.Task.AssignedTo)
}

func TestDecodeItemRejectsBadDiscriminator(t *testing.T) {
	_, err := DecodeItem(map[string]any{"id": "x", "type": "banana"})
	assert.ErrorIs(t, err, ErrInvalidItemType)

	// Declared product but no payload.
	_, err = DecodeItem(map[string]any{"id": "x", "type": "product"})
	assert.ErrorIs(t, err, ErrPayloadMismatch)

	_, err = DecodeItem(nil)
	assert.Error(t, err)
}

func TestUnify(t *testing.T) {
	u := Unify(LegacyItem{
		ID:       "i1",
		Name:     "Milk",
		Category: "Dairy & Eggs",
		Quantity: 2,
		Unit:     "L",
		Status:   ItemPurchased,
		Price:    6.9,
		Barcode:  "7290000000001",
	})

	require.NoError(t, u.Validate())
	assert.Equal(t, TypeProduct, u.Type)
	assert.True(t, u.IsChecked, "purchased maps to checked")
	require.NotNil(t, u.Product)
	assert.Equal(t, float64(2), u.Product.Quantity)
	assert.Equal(t, 6.9, u.Product.UnitPrice)
	assert.Nil(t, u.Task)
}

func TestUnifyDefaults(t *testing.T) {
	u := Unify(LegacyItem{ID: "i1", Status: ItemPending})

	require.NoError(t, u.Validate())
	assert.Equal(t, "Unnamed product", u.Name)
	assert.False(t, u.IsChecked)
	assert.Equal(t, float64(1), u.Product.Quantity, "non-positive quantity defaults to 1")
}

func TestUnifyOutputSurvivesRoundtrip(t *testing.T) {
	u := Unify(LegacyItem{ID: "i1", Name: "Milk", Quantity: 2, Status: ItemTaken, Price: 6.9})

	doc := Item{Unified: &u}.Doc()
	assert.Equal(t, "product", doc["type"])

	back, err := DecodeItem(doc)
	require.NoError(t, err)
	assert.True(t, back.Migrated(), "unified output must classify as migrated")
	assert.Equal(t, u, *back.Unified)
}

func TestUnifiedItemValidate(t *testing.T) {
	pd := &ProductData{Quantity: 1}
	td := &TaskData{DueDate: "2026-09-05"}

	cases := []struct {
		name string
		item UnifiedItem
		want error
	}{
		{"product ok", UnifiedItem{Type: TypeProduct, Product: pd}, nil},
		{"task ok", UnifiedItem{Type: TypeTask, Task: td}, nil},
		{"product without payload", UnifiedItem{Type: TypeProduct}, ErrPayloadMismatch},
		{"task without payload", UnifiedItem{Type: TypeTask}, ErrPayloadMismatch},
		{"both payloads", UnifiedItem{Type: TypeProduct, Product: pd, Task: td}, ErrPayloadMismatch},
		{"no type", UnifiedItem{Product: pd}, ErrInvalidItemType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestLegacyDocKeepsSnakeCase(t *testing.T) {
	doc := Item{Legacy: &LegacyItem{ID: "i1", Name: "Milk", Status: ItemPending, AddedBy: "u1"}}.Doc()

	assert.Equal(t, "u1", doc["added_by"])
	assert.NotContains(t, doc, "type")
	assert.NotContains(t, doc, "isChecked")
}
