// internal/domain/product/catalog_test.go
package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackCatalogIsUsable(t *testing.T) {
	products := Fallback()
	require.NotEmpty(t, products)

	barcodes := map[string]bool{}
	for _, p := range products {
		require.NoError(t, p.Validate(), p.Name)
		assert.True(t, p.Usable(), p.Name)
		assert.False(t, barcodes[p.Barcode], "duplicate barcode %s", p.Barcode)
		barcodes[p.Barcode] = true
	}
}

func TestFallbackCoversDemoCategories(t *testing.T) {
	// Every category the demo structure tables draw from must have at least
	// one fallback product, or the generator could synthesize empty records
	// on a fresh project.
	needed := []AppCategory{
		CategoryDairy, CategoryMeat, CategoryVegetables, CategoryFruits,
		CategoryBakery, CategoryDryGoods, CategoryBeverages, CategorySnacks,
		CategoryToiletries, CategoryCleaning,
	}

	products := Fallback()
	for _, c := range needed {
		found := false
		for _, p := range products {
			if p.MatchesCategory(c) {
				found = true
				break
			}
		}
		assert.True(t, found, "no fallback product for %s", c)
	}
}

func TestFallbackReturnsACopy(t *testing.T) {
	a := Fallback()
	a[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Fallback()[0].Name)
}

func TestAliasesFor(t *testing.T) {
	assert.Equal(t, []string{"Dairy & Eggs"}, AliasesFor(CategoryDairy))
	assert.Len(t, AliasesFor(CategoryDryGoods), 3)

	// Unknown labels pass through so a structure table may name a store
	// category directly.
	assert.Equal(t, []string{"Fancy Teas"}, AliasesFor(AppCategory("Fancy Teas")))
}

func TestMatchesCategory(t *testing.T) {
	rice := Product{Name: "Rice", Category: "Rice & Pasta", Price: 8.9}
	assert.True(t, rice.MatchesCategory(CategoryDryGoods))
	assert.False(t, rice.MatchesCategory(CategoryDairy))
}

func TestUsable(t *testing.T) {
	assert.True(t, Product{Name: "Milk", Price: 6.9}.Usable())
	assert.False(t, Product{Name: "", Price: 6.9}.Usable())
	assert.False(t, Product{Name: "Freebie", Price: 0}.Usable())
}
