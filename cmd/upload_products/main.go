// cmd/upload_products/main.go
//
// Uploads the local products.json catalog to Firestore, merge-set keyed by
// barcode so manual edits to untouched fields survive a re-upload.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	fsadapter "homecart/internal/adapters/out/firestore"
	pdom "homecart/internal/domain/product"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

// catalogFile is the JSON envelope the scraper emits.
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
		slog.Error("product upload failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	inf, err := shared.NewInfra(ctx)
	if err != nil {
		return err
	}
	defer inf.Close()

	products, err := readCatalog(inf.Config.ProductsFile)
	if err != nil {
		return err
	}
	slog.Info("catalog loaded", "file", inf.Config.ProductsFile, "products", len(products))

	repo := fsadapter.NewProductRepositoryFS(inf.Firestore, inf.Config.ProductsCollection)
	written, err := repo.Upload(ctx, products, func(written, total int) {
		slog.Info("uploading products", "written", written, "total", total)
	})
	if err != nil {
		return err
	}

	slog.Info("catalog uploaded", "count", written, "collection", inf.Config.ProductsCollection)
	return nil
}

func readCatalog(path string) ([]pdom.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("%s holds no products", path)
	}

	out := make([]pdom.Product, 0, len(file.Products))
	for _, p := range file.Products {
		out = append(out, pdom.Product{
			Barcode:  p.Barcode,
			Name:     p.Name,
			Category: p.Category,
			Brand:    p.Brand,
			Unit:     p.Unit,
			Price:    p.Price,
			Store:    p.Store,
		})
	}
	return out, nil
}
