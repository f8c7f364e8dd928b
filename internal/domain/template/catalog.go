// internal/domain/template/catalog.go
package template

// SystemTemplates is the static catalog seeded by cmd/seed_templates.
// The backend is the source of truth; the app only reads these.
var SystemTemplates = []Template{
	MustNew("template_supermarket", TypeSupermarket, "Weekly Supermarket", "Basic weekly groceries for the family", "🛒", 1, []TemplateItem{
		{Name: "Milk", Category: "Dairy & Eggs", Quantity: 2, Unit: "L"},
		{Name: "Bread", Category: "Bakery", Quantity: 1, Unit: "unit"},
		{Name: "Eggs", Category: "Dairy & Eggs", Quantity: 1, Unit: "carton"},
		{Name: "Tomatoes", Category: "Vegetables", Quantity: 1, Unit: "kg"},
		{Name: "Cucumbers", Category: "Vegetables", Quantity: 1, Unit: "kg"},
		{Name: "Bananas", Category: "Fruits", Quantity: 1, Unit: "kg"},
		{Name: "Chicken", Category: "Meat & Fish", Quantity: 1, Unit: "kg"},
		{Name: "Rice", Category: "Rice & Pasta", Quantity: 1, Unit: "kg"},
	}),
	MustNew("template_pharmacy", TypePharmacy, "Pharmacy", "Medicine and personal care", "💊", 2, []TemplateItem{
		{Name: "Pain reliever", Category: "Medicine", Quantity: 1, Unit: "pack"},
		{Name: "Vitamin D", Category: "Vitamins", Quantity: 1, Unit: "pack"},
		{Name: "Toothpaste", Category: "Personal Care", Quantity: 1, Unit: "unit"},
		{Name: "Toothbrush", Category: "Personal Care", Quantity: 2, Unit: "unit"},
	}),
	MustNew("template_hardware", TypeHardware, "Hardware Store", "Tools and materials for the house", "🔨", 3, []TemplateItem{
		{Name: "Hammer", Category: "Tools", Quantity: 1, Unit: "unit"},
		{Name: "Screwdriver set", Category: "Tools", Quantity: 1, Unit: "set"},
		{Name: "Screws", Category: "Building Materials", Quantity: 1, Unit: "box"},
		{Name: "White paint", Category: "Paint", Quantity: 1, Unit: "bucket"},
	}),
	MustNew("template_clothing", TypeClothing, "Clothing", "Clothes and footwear", "👕", 4, []TemplateItem{
		{Name: "Shirt", Category: "Shirts", Quantity: 2, Unit: "unit"},
		{Name: "Jeans", Category: "Pants", Quantity: 1, Unit: "unit"},
		{Name: "Shoes", Category: "Footwear", Quantity: 1, Unit: "pair"},
		{Name: "Socks", Category: "Underwear & Socks", Quantity: 5, Unit: "pair"},
	}),
	MustNew("template_electronics", TypeElectronics, "Electronics", "Gadgets and accessories", "💻", 5, []TemplateItem{
		{Name: "Headphones", Category: "Audio", Quantity: 1, Unit: "unit"},
		{Name: "USB cable", Category: "Accessories", Quantity: 2, Unit: "unit"},
		{Name: "Charger", Category: "Accessories", Quantity: 1, Unit: "unit"},
	}),
	MustNew("template_pets", TypePets, "Pets", "Food and supplies for pets", "🐕", 6, []TemplateItem{
		{Name: "Dog food", Category: "Pet Food", Quantity: 1, Unit: "bag"},
		{Name: "Treats", Category: "Pet Treats", Quantity: 1, Unit: "unit"},
		{Name: "Toy", Category: "Pet Toys", Quantity: 1, Unit: "unit"},
	}),
	MustNew("template_cosmetics", TypeCosmetics, "Cosmetics", "Makeup and skincare", "💄", 7, []TemplateItem{
		{Name: "Foundation", Category: "Face Makeup", Quantity: 1, Unit: "unit"},
		{Name: "Mascara", Category: "Face Makeup", Quantity: 1, Unit: "unit"},
		{Name: "Lipstick", Category: "Face Makeup", Quantity: 1, Unit: "unit"},
	}),
	MustNew("template_stationery", TypeStationery, "Office Supplies", "Stationery and study gear", "📝", 8, []TemplateItem{
		{Name: "Pens", Category: "Writing", Quantity: 10, Unit: "unit"},
		{Name: "Notebook", Category: "Notebooks", Quantity: 3, Unit: "unit"},
		{Name: "Eraser", Category: "Writing", Quantity: 2, Unit: "unit"},
	}),
	MustNew("template_toys", TypeToys, "Toys", "Games and toys for kids", "🧸", 9, []TemplateItem{
		{Name: "Puzzle", Category: "Puzzles", Quantity: 1, Unit: "unit"},
		{Name: "Doll", Category: "Dolls & Figures", Quantity: 1, Unit: "unit"},
		{Name: "Board game", Category: "Board Games", Quantity: 1, Unit: "unit"},
	}),
	MustNew("template_books", TypeBooks, "Books", "Reading material", "📚", 10, []TemplateItem{
		{Name: "Novel", Category: "Fiction", Quantity: 1, Unit: "unit"},
		{Name: "Cookbook", Category: "Cooking", Quantity: 1, Unit: "unit"},
		{Name: "Children's book", Category: "Children", Quantity: 2, Unit: "unit"},
	}),
	MustNew("template_sports", TypeSports, "Sports", "Workout and training gear", "⚽", 11, []TemplateItem{
		{Name: "Running shoes", Category: "Sport Shoes", Quantity: 1, Unit: "pair"},
		{Name: "Yoga mat", Category: "Fitness", Quantity: 1, Unit: "unit"},
		{Name: "Water bottle", Category: "Running Gear", Quantity: 1, Unit: "unit"},
	}),
	MustNew("template_home_decor", TypeHomeDecor, "Home Decor", "Furniture and accessories", "🛋️", 12, []TemplateItem{
		{Name: "Pillow", Category: "Textiles", Quantity: 2, Unit: "unit"},
		{Name: "Vase", Category: "Decoration", Quantity: 1, Unit: "unit"},
		{Name: "Candle", Category: "Candles & Scents", Quantity: 3, Unit: "unit"},
	}),
	MustNew("template_automotive", TypeAutomotive, "Car", "Car care and maintenance", "🚗", 13, []TemplateItem{
		{Name: "Engine oil", Category: "Engine Oil", Quantity: 1, Unit: "bottle"},
		{Name: "Windshield fluid", Category: "Fluids", Quantity: 1, Unit: "bottle"},
		{Name: "Cloth", Category: "Car Cleaning", Quantity: 2, Unit: "unit"},
	}),
	MustNew("template_baby", TypeBaby, "Baby", "Products for babies and toddlers", "👶", 14, []TemplateItem{
		{Name: "Diapers", Category: "Diapers", Quantity: 1, Unit: "pack"},
		{Name: "Wipes", Category: "Wipes", Quantity: 2, Unit: "pack"},
		{Name: "Bottle", Category: "Bottles & Pacifiers", Quantity: 2, Unit: "unit"},
	}),
	MustNew("template_gifts", TypeGifts, "Gifts", "Gift ideas", "🎁", 15, []TemplateItem{
		{Name: "Gift card", Category: "Gift Cards", Quantity: 1, Unit: "unit"},
		{Name: "Wrapping paper", Category: "Wrapping", Quantity: 2, Unit: "sheet"},
		{Name: "Greeting card", Category: "Cards", Quantity: 1, Unit: "unit"},
	}),
	MustNew("template_birthday", TypeBirthday, "Birthday", "Birthday party preparations", "🎂", 16, []TemplateItem{
		{Name: "Cake", Category: "Birthday Cake", Quantity: 1, Unit: "unit"},
		{Name: "Balloons", Category: "Balloons", Quantity: 20, Unit: "unit"},
		{Name: "Candles", Category: "Party Candles", Quantity: 1, Unit: "pack"},
		{Name: "Party hats", Category: "Party Hats", Quantity: 10, Unit: "unit"},
	}),
	MustNew("template_party", TypeParty, "Party", "Hosting and entertainment", "🎉", 17, []TemplateItem{
		{Name: "Chips", Category: "Party Food", Quantity: 3, Unit: "bag"},
		{Name: "Soft drinks", Category: "Cold Drinks", Quantity: 6, Unit: "bottle"},
		{Name: "Disposable cups", Category: "Cups", Quantity: 50, Unit: "unit"},
		{Name: "Napkins", Category: "Napkins", Quantity: 2, Unit: "pack"},
	}),
	MustNew("template_wedding", TypeWedding, "Wedding", "Wedding event planning", "💒", 18, []TemplateItem{
		{Name: "Flowers", Category: "Flowers", Quantity: 1, Unit: "arrangement"},
		{Name: "Invitations", Category: "Invitations", Quantity: 100, Unit: "unit"},
		{Name: "Guest favors", Category: "Guest Favors", Quantity: 100, Unit: "unit"},
		{Name: "Champagne", Category: "Alcohol", Quantity: 10, Unit: "bottle"},
	}),
	MustNew("template_picnic", TypePicnic, "Picnic", "Outdoor trip and meal", "🧺", 19, []TemplateItem{
		{Name: "Sandwiches", Category: "Sandwiches", Quantity: 6, Unit: "unit"},
		{Name: "Fruit", Category: "Fruits", Quantity: 1, Unit: "kg"},
		{Name: "Blanket", Category: "Picnic Gear", Quantity: 1, Unit: "unit"},
		{Name: "Cooler", Category: "Picnic Gear", Quantity: 1, Unit: "unit"},
	}),
	MustNew("template_holiday", TypeHoliday, "Holiday", "Holiday preparations", "🕎", 20, []TemplateItem{
		{Name: "Wine", Category: "Wine", Quantity: 1, Unit: "bottle"},
		{Name: "Challah", Category: "Holiday Food", Quantity: 2, Unit: "unit"},
		{Name: "Candles", Category: "Candles", Quantity: 2, Unit: "pack"},
	}),
	MustNew("template_other", TypeOther, "Other", "General purpose list", "📋", 21, nil),
}
