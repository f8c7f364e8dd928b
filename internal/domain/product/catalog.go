// internal/domain/product/catalog.go
package product

// Fallback returns the embedded static catalog used whenever the products
// collection is empty or unreachable. The synthesizer must never hard-fail
// just because the upstream catalog was not uploaded yet.
func Fallback() []Product {
	out := make([]Product, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}

var fallbackCatalog = []Product{
	{Barcode: "7290000000001", Name: "Milk 3%", Category: "Dairy & Eggs", Brand: "Meadow", Unit: "1 L", Price: 7.9, Store: "FreshMart"},
	{Barcode: "7290000000002", Name: "Yellow Cheese", Category: "Dairy & Eggs", Brand: "Meadow", Unit: "200 g", Price: 15.2, Store: "FreshMart"},
	{Barcode: "7290000000003", Name: "Cottage Cheese 5%", Category: "Dairy & Eggs", Brand: "Meadow", Unit: "250 g", Price: 8.5, Store: "FreshMart"},
	{Barcode: "7290000000004", Name: "Natural Yogurt", Category: "Dairy & Eggs", Brand: "Danella", Unit: "500 g", Price: 7.9, Store: "FreshMart"},
	{Barcode: "7290000000005", Name: "Butter", Category: "Dairy & Eggs", Brand: "Meadow", Unit: "200 g", Price: 10.9, Store: "FreshMart"},
	{Barcode: "7290000000006", Name: "Eggs Large", Category: "Dairy & Eggs", Brand: "Sunny Farm", Unit: "12 pcs", Price: 16.9, Store: "FreshMart"},

	{Barcode: "7290000000010", Name: "Whole Wheat Bread", Category: "Bakery", Brand: "Daily Bake", Unit: "unit", Price: 8.5, Store: "FreshMart"},
	{Barcode: "7290000000011", Name: "White Bread", Category: "Bakery", Brand: "Daily Bake", Unit: "unit", Price: 7.9, Store: "FreshMart"},
	{Barcode: "7290000000012", Name: "Burger Buns", Category: "Bakery", Brand: "Daily Bake", Unit: "8 pcs", Price: 10.9, Store: "FreshMart"},

	{Barcode: "7290000000020", Name: "Tomatoes", Category: "Vegetables", Brand: "Local", Unit: "kg", Price: 5.4, Store: "FreshMart"},
	{Barcode: "7290000000021", Name: "Cucumbers", Category: "Vegetables", Brand: "Local", Unit: "kg", Price: 4.2, Store: "FreshMart"},
	{Barcode: "7290000000022", Name: "Carrots", Category: "Vegetables", Brand: "Local", Unit: "kg", Price: 3.9, Store: "FreshMart"},
	{Barcode: "7290000000023", Name: "Potatoes", Category: "Vegetables", Brand: "Local", Unit: "kg", Price: 3.5, Store: "FreshMart"},

	{Barcode: "7290000000030", Name: "Bananas", Category: "Fruits", Brand: "Local", Unit: "kg", Price: 6.5, Store: "FreshMart"},
	{Barcode: "7290000000031", Name: "Apples", Category: "Fruits", Brand: "Local", Unit: "kg", Price: 7.8, Store: "FreshMart"},
	{Barcode: "7290000000032", Name: "Oranges", Category: "Fruits", Brand: "Local", Unit: "kg", Price: 4.9, Store: "FreshMart"},

	{Barcode: "7290000000040", Name: "Chicken Breast", Category: "Meat & Fish", Brand: "Good Bird", Unit: "kg", Price: 32.9, Store: "FreshMart"},
	{Barcode: "7290000000041", Name: "Ground Beef", Category: "Meat & Fish", Brand: "Prime Cut", Unit: "kg", Price: 42.9, Store: "FreshMart"},
	{Barcode: "7290000000042", Name: "Salmon Fillet", Category: "Meat & Fish", Brand: "Sea Fresh", Unit: "kg", Price: 89.9, Store: "FreshMart"},

	{Barcode: "7290000000050", Name: "White Rice", Category: "Rice & Pasta", Brand: "Granary", Unit: "1 kg", Price: 8.9, Store: "FreshMart"},
	{Barcode: "7290000000051", Name: "Spaghetti", Category: "Rice & Pasta", Brand: "Granary", Unit: "500 g", Price: 5.9, Store: "FreshMart"},
	{Barcode: "7290000000052", Name: "Couscous", Category: "Rice & Pasta", Brand: "Granary", Unit: "500 g", Price: 6.9, Store: "FreshMart"},

	{Barcode: "7290000000060", Name: "Olive Oil", Category: "Oils & Sauces", Brand: "Grove", Unit: "1 L", Price: 32.9, Store: "FreshMart"},
	{Barcode: "7290000000061", Name: "Tomato Sauce", Category: "Oils & Sauces", Brand: "Orchard", Unit: "400 g", Price: 5.9, Store: "FreshMart"},
	{Barcode: "7290000000062", Name: "Ketchup", Category: "Oils & Sauces", Brand: "Orchard", Unit: "570 g", Price: 12.9, Store: "FreshMart"},

	{Barcode: "7290000000070", Name: "White Flour", Category: "Spices & Baking", Brand: "Granary", Unit: "1 kg", Price: 4.9, Store: "FreshMart"},
	{Barcode: "7290000000071", Name: "White Sugar", Category: "Spices & Baking", Brand: "Granary", Unit: "1 kg", Price: 5.9, Store: "FreshMart"},
	{Barcode: "7290000000072", Name: "Sea Salt", Category: "Spices & Baking", Brand: "Granary", Unit: "500 g", Price: 3.9, Store: "FreshMart"},

	{Barcode: "7290000000080", Name: "Dark Chocolate", Category: "Snacks & Sweets", Brand: "Cocoa Hill", Unit: "100 g", Price: 9.9, Store: "FreshMart"},
	{Barcode: "7290000000081", Name: "Potato Chips", Category: "Snacks & Sweets", Brand: "Crunchy", Unit: "170 g", Price: 8.9, Store: "FreshMart"},
	{Barcode: "7290000000082", Name: "Sandwich Cookies", Category: "Snacks & Sweets", Brand: "Crunchy", Unit: "176 g", Price: 10.9, Store: "FreshMart"},

	{Barcode: "7290000000090", Name: "Cola 1.5L", Category: "Beverages", Brand: "Fizz", Unit: "1.5 L", Price: 6.9, Store: "FreshMart"},
	{Barcode: "7290000000091", Name: "Orange Juice", Category: "Beverages", Brand: "Grove", Unit: "1 L", Price: 8.9, Store: "FreshMart"},
	{Barcode: "7290000000092", Name: "Mineral Water", Category: "Beverages", Brand: "Spring", Unit: "1.5 L", Price: 3.9, Store: "FreshMart"},
	{Barcode: "7290000000093", Name: "Instant Coffee", Category: "Coffee & Tea", Brand: "Morning", Unit: "200 g", Price: 22.9, Store: "FreshMart"},

	{Barcode: "7290000000100", Name: "Dish Soap", Category: "Cleaning Supplies", Brand: "Sparkle", Unit: "750 ml", Price: 8.9, Store: "FreshMart"},
	{Barcode: "7290000000101", Name: "Laundry Detergent", Category: "Cleaning Supplies", Brand: "Sparkle", Unit: "2 L", Price: 34.9, Store: "FreshMart"},
	{Barcode: "7290000000102", Name: "Toilet Paper", Category: "Cleaning Supplies", Brand: "Soft", Unit: "24 rolls", Price: 39.9, Store: "FreshMart"},

	{Barcode: "7290000000110", Name: "Shampoo", Category: "Personal Care", Brand: "Silk", Unit: "400 ml", Price: 18.9, Store: "FreshMart"},
	{Barcode: "7290000000111", Name: "Toothpaste", Category: "Personal Care", Brand: "Bright", Unit: "100 ml", Price: 9.9, Store: "FreshMart"},
	{Barcode: "7290000000112", Name: "Bath Soap", Category: "Personal Care", Brand: "Silk", Unit: "4 pcs", Price: 16.9, Store: "FreshMart"},
}
