// internal/domain/template/catalog_test.go
package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemTemplatesCatalog(t *testing.T) {
	require.Len(t, SystemTemplates, 21, "one template per list type")

	ids := map[string]bool{}
	types := map[TemplateType]bool{}
	for i, tpl := range SystemTemplates {
		require.NoError(t, tpl.Validate(), tpl.ID)

		assert.False(t, ids[tpl.ID], "duplicate id %s", tpl.ID)
		ids[tpl.ID] = true
		assert.False(t, types[tpl.Type], "duplicate type %s", tpl.Type)
		types[tpl.Type] = true

		assert.True(t, tpl.IsSystem, tpl.ID)
		assert.Empty(t, tpl.HouseholdID, tpl.ID)
		assert.Equal(t, SystemCreator, tpl.CreatedBy, tpl.ID)
		assert.Equal(t, i+1, tpl.SortOrder, "%s: catalog order is sort order", tpl.ID)
	}
}

func TestTemplateValidate(t *testing.T) {
	valid := Template{ID: "t1", Name: "T", SortOrder: 1}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name string
		mod  func(*Template)
		want error
	}{
		{"blank id", func(t *Template) { t.ID = " " }, ErrInvalidID},
		{"blank name", func(t *Template) { t.Name = "" }, ErrInvalidName},
		{"zero sort order", func(t *Template) { t.SortOrder = 0 }, ErrInvalidSortOrder},
		{"system with household", func(t *Template) { t.IsSystem = true; t.HouseholdID = "h1" }, ErrSystemOwnership},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl := valid
			tc.mod(&tpl)
			assert.ErrorIs(t, tpl.Validate(), tc.want)
		})
	}
}

func TestMustNewPanicsOnBadEntry(t *testing.T) {
	assert.Panics(t, func() {
		MustNew("", TypeOther, "Broken", "", "", 1, nil)
	})
}
