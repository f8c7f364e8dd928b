// internal/application/demodata/synthesizer_test.go
package demodata

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invdom "homecart/internal/domain/inventory"
	ldom "homecart/internal/domain/list"
	pdom "homecart/internal/domain/product"
)

func testRng() *rand.Rand { return rand.New(rand.NewSource(42)) }

func testCatalog() []pdom.Product {
	return []pdom.Product{
		{Barcode: "b1", Name: "Milk 3%", Category: "Dairy & Eggs", Unit: "L", Price: 6.9},
		{Barcode: "b2", Name: "Yogurt", Category: "Dairy & Eggs", Unit: "unit", Price: 4.5},
		{Barcode: "b3", Name: "Butter", Category: "Dairy & Eggs", Unit: "unit", Price: 8.9},
		{Barcode: "b4", Name: "Tomatoes", Category: "Vegetables", Unit: "kg", Price: 5.9},
		{Barcode: "b5", Name: "Basmati rice", Category: "Rice & Pasta", Unit: "kg", Price: 12.9},
		{Barcode: "b6", Name: "Olive oil", Category: "Oils & Sauces", Unit: "bottle", Price: 32.9},
		{Barcode: "b7", Name: "", Category: "Vegetables", Unit: "kg", Price: 3.9},     // unusable: no name
		{Barcode: "b8", Name: "Freebie", Category: "Vegetables", Unit: "kg", Price: 0}, // unusable: no price
	}
}

func TestNewFiltersUnusableProducts(t *testing.T) {
	s := New(testCatalog(), testRng(), "house_demo", "u1")
	assert.Equal(t, 6, s.CatalogSize())
}

func TestNewEmptyCatalogFallsBack(t *testing.T) {
	s := New(nil, testRng(), "house_demo", "u1")
	assert.Equal(t, len(pdom.Fallback()), s.CatalogSize())

	// A catalog of only unusable products falls back too.
	s = New([]pdom.Product{{Barcode: "x", Category: "Vegetables"}}, testRng(), "h", "u")
	assert.Equal(t, len(pdom.Fallback()), s.CatalogSize())
}

func TestSampleWithoutReplacement(t *testing.T) {
	s := New(testCatalog(), testRng(), "house_demo", "u1")

	got := s.Sample(pdom.CategoryDairy, 2)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].Barcode, got[1].Barcode)
	for _, p := range got {
		assert.Equal(t, "Dairy & Eggs", p.Category)
	}
}

func TestSampleShortCategoryReturnsAllMatches(t *testing.T) {
	s := New(testCatalog(), testRng(), "house_demo", "u1")

	// Only one usable vegetable in the catalog.
	got := s.Sample(pdom.CategoryVegetables, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "Tomatoes", got[0].Name)
}

func TestSampleAliasedCategory(t *testing.T) {
	s := New(testCatalog(), testRng(), "house_demo", "u1")

	// dry_goods folds rice/pasta and oils/sauces together.
	got := s.Sample(pdom.CategoryDryGoods, 10)
	require.Len(t, got, 2)
}

func TestSampleZeroOrUnknown(t *testing.T) {
	s := New(testCatalog(), testRng(), "house_demo", "u1")

	assert.Nil(t, s.Sample(pdom.CategoryDairy, 0))
	assert.Empty(t, s.Sample(pdom.AppCategory("no_such"), 3))
}

func TestBuildList(t *testing.T) {
	s := New(testCatalog(), testRng(), "house_demo", "u1")
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	l := s.BuildList(ListSpec{
		ID:     "demo_list_weekly",
		Name:   "Weekly groceries",
		Type:   "supermarket",
		Status: ldom.StatusActive,
		Categories: []CategoryCount{
			{pdom.CategoryDairy, 3},
			{pdom.CategoryDryGoods, 2},
		},
	}, now)

	assert.Equal(t, "demo_list_weekly", l.ID)
	assert.Equal(t, "house_demo", l.HouseholdID)
	assert.Equal(t, "u1", l.CreatedBy)
	require.Len(t, l.Items, 5)

	var expected float64
	ids := map[string]bool{}
	for _, it := range l.Items {
		require.NotNil(t, it.Legacy)
		assert.False(t, it.Migrated())
		assert.GreaterOrEqual(t, it.Legacy.Quantity, float64(1))
		assert.LessOrEqual(t, it.Legacy.Quantity, float64(3))
		assert.Contains(t, []ldom.ItemStatus{ldom.ItemPending, ldom.ItemTaken}, it.Legacy.Status)
		assert.NotEmpty(t, it.Legacy.ID)
		assert.False(t, ids[it.Legacy.ID], "item ids must be unique")
		ids[it.Legacy.ID] = true
		expected += it.Legacy.Price * it.Legacy.Quantity
	}

	assert.InDelta(t, expected, l.TotalPrice, 0.005)
	assert.Equal(t, l.TotalPrice, math.Round(l.TotalPrice*100)/100, "total rounded to 2 decimals")
	assert.NotNil(t, l.Tags)
}

func TestBuildListDeterministicUnderSeed(t *testing.T) {
	spec := DemoLists[0]
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	a := New(testCatalog(), rand.New(rand.NewSource(7)), "h", "u").BuildList(spec, now)
	b := New(testCatalog(), rand.New(rand.NewSource(7)), "h", "u").BuildList(spec, now)

	require.Equal(t, len(a.Items), len(b.Items))
	for i := range a.Items {
		assert.Equal(t, a.Items[i].Legacy.Name, b.Items[i].Legacy.Name)
		assert.Equal(t, a.Items[i].Legacy.Quantity, b.Items[i].Legacy.Quantity)
		assert.Equal(t, a.Items[i].Legacy.Status, b.Items[i].Legacy.Status)
	}
	assert.Equal(t, a.TotalPrice, b.TotalPrice)
}

func TestBuildUnifiedList(t *testing.T) {
	s := New(testCatalog(), testRng(), "house_demo", "u1")
	now := time.Now().UTC()

	l := s.BuildUnifiedList(DemoLists[0], now)
	require.NotEmpty(t, l.Items)
	for _, it := range l.Items {
		require.True(t, it.Migrated())
		require.NoError(t, it.Unified.Validate())
		assert.Equal(t, ldom.TypeProduct, it.Unified.Type)
		require.NotNil(t, it.Unified.Product)
	}
}

func TestBuildReceipt(t *testing.T) {
	s := New(testCatalog(), testRng(), "house_demo", "u1")
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	rec := s.BuildReceipt(ReceiptSpec{
		ID:        "demo_receipt_fresh",
		StoreName: "FreshMart",
		DaysAgo:   3,
		Categories: []CategoryCount{
			{pdom.CategoryDairy, 2},
			{pdom.CategoryVegetables, 1},
		},
	}, now)

	assert.Equal(t, "FreshMart", rec.StoreName)
	assert.Equal(t, now.AddDate(0, 0, -3), rec.Date)
	require.Len(t, rec.Items, 3)

	var sum float64
	for _, line := range rec.Items {
		assert.GreaterOrEqual(t, line.Quantity, 1)
		assert.LessOrEqual(t, line.Quantity, 3)
		assert.InDelta(t, line.Price*float64(line.Quantity), line.Total, 0.005)
		sum += line.Total
	}
	assert.InDelta(t, sum, rec.Total, 0.005)
}

func TestBuildInventory(t *testing.T) {
	s := New(testCatalog(), testRng(), "house_demo", "u1")

	items := s.BuildInventory(LocationSpec{
		Location:    invdom.LocationFridge,
		Category:    pdom.CategoryDairy,
		Count:       2,
		MinQuantity: 1,
	})

	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, invdom.LocationFridge, it.Location)
		assert.Equal(t, 1, it.MinQuantity)
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 5)
		assert.Equal(t, "house_demo", it.HouseholdID)
		require.NoError(t, it.Validate())
	}
}

func TestDemoStructureCoveredByFallback(t *testing.T) {
	// The shipped structure tables must synthesize non-empty data even when
	// the live catalog is unreachable.
	s := New(nil, testRng(), "house_demo", "u1")
	now := time.Now().UTC()

	for _, spec := range DemoLists {
		l := s.BuildList(spec, now)
		assert.NotEmpty(t, l.Items, "list %s", spec.ID)
	}
	for _, spec := range DemoUnifiedLists {
		l := s.BuildUnifiedList(spec, now)
		require.NotEmpty(t, l.Items, "list %s", spec.ID)
		for _, it := range l.Items {
			assert.True(t, it.Migrated(), "list %s", spec.ID)
		}
	}
	for _, spec := range DemoReceipts {
		rec := s.BuildReceipt(spec, now)
		assert.NotEmpty(t, rec.Items, "receipt %s", spec.ID)
	}
	for _, spec := range DemoInventory {
		assert.NotEmpty(t, s.BuildInventory(spec), "location %s", spec.Location)
	}
}
