// cmd/export_products/main.go
//
// Exports the Firestore product catalog to a timestamped JSON object in the
// backup bucket. The output uses the same envelope upload_products reads, so
// a backup can be re-uploaded as-is.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	fsadapter "homecart/internal/adapters/out/firestore"
	pdom "homecart/internal/domain/product"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

// exportLimit caps one export read; the catalog is a few hundred docs.
const exportLimit = 5000

type catalogFile struct {
	Generated string        `json:"generated"`
	Count     int           `json:"count"`
	Products  []productJSON `json:"products"`
}

type productJSON struct {
	Barcode  string  `json:"barcode"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Store    string  `json:"store"`
}

func main() {
	logging.Setup()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Error("product export failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	inf, err := shared.NewInfra(ctx)
	if err != nil {
		return err
	}
	defer inf.Close()

	if inf.GCS == nil {
		return errors.New("gcs client unavailable; export needs storage access")
	}
	bucket := inf.Config.BackupBucket
	if bucket == "" {
		return errors.New("BACKUP_BUCKET is not set")
	}

	repo := fsadapter.NewProductRepositoryFS(inf.Firestore, inf.Config.ProductsCollection)
	products, err := repo.Limit(ctx, exportLimit)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return fmt.Errorf("collection %s is empty, nothing to export", inf.Config.ProductsCollection)
	}

	now := time.Now().UTC()
	payload, err := encodeCatalog(products, now)
	if err != nil {
		return err
	}

	object := fmt.Sprintf("backups/products-%s.json", now.Format("20060102-150405"))
	w := inf.GCS.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(payload); err != nil {
		_ = w.Close()
		return fmt.Errorf("write gs://%s/%s: %w", bucket, object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close gs://%s/%s: %w", bucket, object, err)
	}

	slog.Info("catalog exported", "products", len(products), "bucket", bucket, "object", object)
	return nil
}

func encodeCatalog(products []pdom.Product, now time.Time) ([]byte, error) {
	out := catalogFile{
		Generated: now.Format(time.RFC3339),
		Count:     len(products),
		Products:  make([]productJSON, 0, len(products)),
	}
	for _, p := range products {
		out.Products = append(out.Products, productJSON{
			Barcode:  p.Barcode,
			Name:     p.Name,
			Category: p.Category,
			Brand:    p.Brand,
			Unit:     p.Unit,
			Price:    p.Price,
			Store:    p.Store,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
