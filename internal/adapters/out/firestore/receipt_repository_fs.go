// internal/adapters/out/firestore/receipt_repository_fs.go
package firestore

import (
	"context"
	"errors"

	gfs "cloud.google.com/go/firestore"

	rdom "homecart/internal/domain/receipt"
)

// ReceiptRepositoryFS persists receipts.
type ReceiptRepositoryFS struct {
	Client     *gfs.Client
	Collection string
}

func NewReceiptRepositoryFS(client *gfs.Client, collection string) *ReceiptRepositoryFS {
	if collection == "" {
		collection = "receipts"
	}
	return &ReceiptRepositoryFS{Client: client, Collection: collection}
}

// Create writes one receipt document keyed by its id.
func (r *ReceiptRepositoryFS) Create(ctx context.Context, rec rdom.Receipt) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	lines := make([]map[string]any, 0, len(rec.Items))
	for _, l := range rec.Items {
		lines = append(lines, map[string]any{
			"name":     l.Name,
			"price":    l.Price,
			"quantity": l.Quantity,
			"total":    l.Total,
		})
	}

	var imagePath any
	if rec.ImagePath != "" {
		imagePath = rec.ImagePath
	}

	_, err := r.Client.Collection(r.Collection).Doc(rec.ID).Set(ctx, map[string]any{
		"id":           rec.ID,
		"store_name":   rec.StoreName,
		"date":         rec.Date,
		"total":        rec.Total,
		"items":        lines,
		"image_path":   imagePath,
		"household_id": rec.HouseholdID,
		"uploaded_by":  rec.UploadedBy,
		"created_date": gfs.ServerTimestamp,
	})
	return err
}
