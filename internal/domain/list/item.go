// internal/domain/list/item.go
package list

import (
	"errors"
	"fmt"
)

// The shopping_lists collection holds two generations of item shapes.
// Legacy items are flat product lines with a status field; unified items
// carry an explicit 'type' discriminator and split the payload into
// productData/taskData. Absence of 'type' is what marks an item as
// not-yet-migrated.

// ItemType discriminates unified items.
type ItemType string

const (
	TypeProduct ItemType = "product"
	TypeTask    ItemType = "task"
)

// ItemStatus is the legacy per-item state.
type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemTaken     ItemStatus = "taken"
	ItemPurchased ItemStatus = "purchased"
)

// LegacyItem is the pre-migration shape (snake_case in Firestore).
type LegacyItem struct {
	ID       string
	Name     string
	Category string
	Quantity float64
	Unit     string
	Status   ItemStatus
	Notes    string
	Price    float64
	Barcode  string
	AddedBy  string
}

// ProductData is the product payload of a unified item.
type ProductData struct {
	Quantity  float64
	UnitPrice float64
	Barcode   string
	Unit      string
}

// TaskData is the task payload of a unified item.
type TaskData struct {
	DueDate    string
	AssignedTo string
}

// UnifiedItem is the post-migration shape. Exactly one of Product/Task is
// non-nil, matching Type.
type UnifiedItem struct {
	ID        string
	Name      string
	Type      ItemType
	IsChecked bool
	Category  string
	Notes     string
	Product   *ProductData
	Task      *TaskData
}

var (
	ErrInvalidItemType = errors.New("list: invalid item type")
	ErrPayloadMismatch = errors.New("list: item payload does not match its type")
)

// Validate enforces the discriminator/payload invariant.
func (u UnifiedItem) Validate() error {
	switch u.Type {
	case TypeProduct:
		if u.Product == nil || u.Task != nil {
			return ErrPayloadMismatch
		}
	case TypeTask:
		if u.Task == nil || u.Product != nil {
			return ErrPayloadMismatch
		}
	default:
		return ErrInvalidItemType
	}
	return nil
}

// Item is the sum of both generations. Exactly one side is set.
type Item struct {
	Legacy  *LegacyItem
	Unified *UnifiedItem
}

// Migrated reports whether the item already carries the unified shape.
// This is the migration predicate: pure, and true for every Unify output.
func (it Item) Migrated() bool {
	return it.Unified != nil
}

// Unify converts a legacy item into a unified product item. A legacy status
// of taken or purchased becomes isChecked; the product payload keeps the
// purchase details. Quantity defaults to 1 so a migrated list stays usable.
func Unify(l LegacyItem) UnifiedItem {
	qty := l.Quantity
	if qty <= 0 {
		qty = 1
	}
	name := l.Name
	if name == "" {
		name = "Unnamed product"
	}
	return UnifiedItem{
		ID:        l.ID,
		Name:      name,
		Type:      TypeProduct,
		IsChecked: l.Status == ItemTaken || l.Status == ItemPurchased,
		Category:  l.Category,
		Notes:     l.Notes,
		Product: &ProductData{
			Quantity:  qty,
			UnitPrice: l.Price,
			Barcode:   l.Barcode,
			Unit:      l.Unit,
		},
	}
}

// DecodeItem classifies a raw Firestore item map into the sum type.
// A present 'type' field means unified; anything else is legacy.
func DecodeItem(raw map[string]any) (Item, error) {
	if raw == nil {
		return Item{}, errors.New("list: nil item")
	}

	if tv, ok := raw["type"]; ok {
		typ := ItemType(asString(tv))
		u := UnifiedItem{
			ID:        asString(raw["id"]),
			Name:      asString(raw["name"]),
			Type:      typ,
			IsChecked: asBool(raw["isChecked"]),
			Category:  asString(raw["category"]),
			Notes:     asString(raw["notes"]),
		}
		if pd, ok := raw["productData"].(map[string]any); ok && pd != nil {
			u.Product = &ProductData{
				Quantity:  asFloat(pd["quantity"]),
				UnitPrice: asFloat(pd["unitPrice"]),
				Barcode:   asString(pd["barcode"]),
				Unit:      asString(pd["unit"]),
			}
		}
		if td, ok := raw["taskData"].(map[string]any); ok && td != nil {
			u.Task = &TaskData{
				DueDate:    asString(td["dueDate"]),
				AssignedTo: asString(td["assignedTo"]),
			}
		}
		if err := u.Validate(); err != nil {
			return Item{}, fmt.Errorf("item %q: %w", u.ID, err)
		}
		return Item{Unified: &u}, nil
	}

	l := LegacyItem{
		ID:       asString(raw["id"]),
		Name:     asString(raw["name"]),
		Category: asString(raw["category"]),
		Quantity: asFloat(raw["quantity"]),
		Unit:     asString(raw["unit"]),
		Status:   ItemStatus(asString(raw["status"])),
		Notes:    asString(raw["notes"]),
		Price:    asFloat(raw["price"]),
		Barcode:  asString(raw["barcode"]),
		AddedBy:  asString(raw["added_by"]),
	}
	return Item{Legacy: &l}, nil
}

// Doc encodes an item back into its Firestore map. Unified payload keys are
// camelCase; that is the shape the migrated app reads.
func (it Item) Doc() map[string]any {
	if it.Unified != nil {
		u := it.Unified
		m := map[string]any{
			"id":        u.ID,
			"name":      u.Name,
			"type":      string(u.Type),
			"isChecked": u.IsChecked,
			"category":  nullable(u.Category),
			"notes":     nullable(u.Notes),
		}
		if u.Product != nil {
			m["productData"] = map[string]any{
				"quantity":  u.Product.Quantity,
				"unitPrice": u.Product.UnitPrice,
				"barcode":   nullable(u.Product.Barcode),
				"unit":      u.Product.Unit,
			}
		} else {
			m["productData"] = nil
		}
		if u.Task != nil {
			m["taskData"] = map[string]any{
				"dueDate":    nullable(u.Task.DueDate),
				"assignedTo": nullable(u.Task.AssignedTo),
			}
		} else {
			m["taskData"] = nil
		}
		return m
	}

	l := it.Legacy
	return map[string]any{
		"id":       l.ID,
		"name":     l.Name,
		"category": l.Category,
		"quantity": l.Quantity,
		"unit":     l.Unit,
		"status":   string(l.Status),
		"notes":    l.Notes,
		"price":    l.Price,
		"barcode":  nullable(l.Barcode),
		"added_by": l.AddedBy,
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Firestore decodes numbers as int64 or float64 depending on the stored
// value, so the readers below accept both.

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
