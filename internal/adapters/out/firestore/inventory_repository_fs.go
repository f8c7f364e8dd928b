// internal/adapters/out/firestore/inventory_repository_fs.go
package firestore

import (
	"context"
	"errors"

	gfs "cloud.google.com/go/firestore"

	invdom "homecart/internal/domain/inventory"
)

// InventoryRepositoryFS persists inventory items.
type InventoryRepositoryFS struct {
	Client     *gfs.Client
	Collection string
}

func NewInventoryRepositoryFS(client *gfs.Client, collection string) *InventoryRepositoryFS {
	if collection == "" {
		collection = "inventory"
	}
	return &InventoryRepositoryFS{Client: client, Collection: collection}
}

// Create writes one inventory document keyed by its id.
func (r *InventoryRepositoryFS) Create(ctx context.Context, item invdom.Item) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	if err := item.Validate(); err != nil {
		return err
	}

	var expiry any
	if item.ExpiryDate != nil {
		expiry = *item.ExpiryDate
	}
	var notes any
	if item.Notes != "" {
		notes = item.Notes
	}

	_, err := r.Client.Collection(r.Collection).Doc(item.ID).Set(ctx, map[string]any{
		"id":           item.ID,
		"name":         item.Name,
		"category":     item.Category,
		"quantity":     item.Quantity,
		"unit":         item.Unit,
		"location":     string(item.Location),
		"min_quantity": item.MinQuantity,
		"expiry_date":  expiry,
		"notes":        notes,
		"household_id": item.HouseholdID,
		"added_by":     item.AddedBy,
		"added_date":   gfs.ServerTimestamp,
		"updated_date": gfs.ServerTimestamp,
	})
	return err
}
