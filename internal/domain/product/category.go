// internal/domain/product/category.go
package product

// AppCategory is the coarse category label the app (and the demo structure
// tables) use. The products collection stores finer store categories, so a
// many-to-one alias table maps each AppCategory to the store categories it
// covers.
type AppCategory string

const (
	CategoryDairy      AppCategory = "dairy"
	CategoryMeat       AppCategory = "meat"
	CategoryVegetables AppCategory = "vegetables"
	CategoryFruits     AppCategory = "fruits"
	CategoryBakery     AppCategory = "bakery"
	CategoryDryGoods   AppCategory = "dry_goods"
	CategoryBeverages  AppCategory = "beverages"
	CategorySnacks     AppCategory = "snacks"
	CategoryToiletries AppCategory = "toiletries"
	CategoryCleaning   AppCategory = "cleaning"
	CategoryOther      AppCategory = "other"
)

// categoryAliases maps app categories to the store categories found in the
// products collection. Multiple store categories may fold into one app
// category (dry_goods covers rice/pasta, baking and sauces).
var categoryAliases = map[AppCategory][]string{
	CategoryDairy:      {"Dairy & Eggs"},
	CategoryMeat:       {"Meat & Fish"},
	CategoryVegetables: {"Vegetables"},
	CategoryFruits:     {"Fruits"},
	CategoryBakery:     {"Bakery"},
	CategoryDryGoods:   {"Rice & Pasta", "Spices & Baking", "Oils & Sauces"},
	CategoryBeverages:  {"Beverages", "Coffee & Tea"},
	CategorySnacks:     {"Snacks & Sweets"},
	CategoryToiletries: {"Personal Care"},
	CategoryCleaning:   {"Cleaning Supplies"},
	CategoryOther:      {"Other", "Frozen"},
}

// AliasesFor returns the store categories covered by the given app category.
// Unknown labels fall through to themselves, so a structure table may also
// name a store category directly.
func AliasesFor(c AppCategory) []string {
	if aliases, ok := categoryAliases[c]; ok {
		return aliases
	}
	return []string{string(c)}
}

// MatchesCategory reports whether p belongs to one of the store categories
// aliased by c.
func (p Product) MatchesCategory(c AppCategory) bool {
	for _, alias := range AliasesFor(c) {
		if p.Category == alias {
			return true
		}
	}
	return false
}
