// internal/application/demodata/structure.go
package demodata

import (
	invdom "homecart/internal/domain/inventory"
	ldom "homecart/internal/domain/list"
	pdom "homecart/internal/domain/product"
)

// The fixed structure of the demo household. IDs are stable so re-running
// the generator overwrites the same documents instead of piling up copies.

// DemoLists are the shopping lists the generator synthesizes.
var DemoLists = []ListSpec{
	{
		ID:     "demo_list_weekly",
		Name:   "Weekly groceries",
		Type:   "supermarket",
		Status: ldom.StatusActive,
		Categories: []CategoryCount{
			{pdom.CategoryDairy, 4},
			{pdom.CategoryVegetables, 5},
			{pdom.CategoryFruits, 3},
			{pdom.CategoryMeat, 2},
			{pdom.CategoryDryGoods, 3},
		},
	},
	{
		ID:     "demo_list_pharmacy",
		Name:   "Pharmacy run",
		Type:   "pharmacy",
		Status: ldom.StatusActive,
		Categories: []CategoryCount{
			{pdom.CategoryToiletries, 4},
			{pdom.CategoryCleaning, 2},
		},
	},
	{
		ID:     "demo_list_bbq",
		Name:   "Friday barbecue",
		Type:   "supermarket",
		Status: ldom.StatusCompleted,
		Categories: []CategoryCount{
			{pdom.CategoryMeat, 3},
			{pdom.CategoryBeverages, 3},
			{pdom.CategorySnacks, 2},
			{pdom.CategoryVegetables, 2},
		},
	},
}

// DemoUnifiedLists are synthesized with post-migration items, so the demo
// household shows both item generations side by side.
var DemoUnifiedLists = []ListSpec{
	{
		ID:     "demo_list_restock",
		Name:   "Pantry restock",
		Type:   "supermarket",
		Status: ldom.StatusActive,
		Categories: []CategoryCount{
			{pdom.CategoryDryGoods, 3},
			{pdom.CategoryBeverages, 2},
			{pdom.CategorySnacks, 2},
		},
	},
}

// DemoReceipts are the historical receipts the generator synthesizes.
var DemoReceipts = []ReceiptSpec{
	{
		ID:        "demo_receipt_fresh",
		StoreName: "FreshMart",
		DaysAgo:   3,
		Categories: []CategoryCount{
			{pdom.CategoryDairy, 3},
			{pdom.CategoryVegetables, 4},
			{pdom.CategoryBakery, 2},
		},
	},
	{
		ID:        "demo_receipt_corner",
		StoreName: "Corner Pharm",
		DaysAgo:   10,
		Categories: []CategoryCount{
			{pdom.CategoryToiletries, 3},
			{pdom.CategoryCleaning, 2},
		},
	},
}

// DemoInventory maps home locations to the stock synthesized for each.
var DemoInventory = []LocationSpec{
	{Location: invdom.LocationPantry, Category: pdom.CategoryDryGoods, Count: 5, MinQuantity: 2},
	{Location: invdom.LocationFridge, Category: pdom.CategoryDairy, Count: 4, MinQuantity: 1},
	{Location: invdom.LocationFreezer, Category: pdom.CategoryMeat, Count: 3, MinQuantity: 1},
	{Location: invdom.LocationBathroom, Category: pdom.CategoryToiletries, Count: 3, MinQuantity: 1},
}
