// cmd/generate_demo_data/main.go
//
// Fills the demo household with synthesized lists, receipts and inventory,
// drawn from the live product catalog (or the embedded fallback when the
// catalog is empty or unreachable). Stable doc ids make re-runs overwrite
// instead of duplicating.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	fsadapter "homecart/internal/adapters/out/firestore"
	"homecart/internal/application/demodata"
	pdom "homecart/internal/domain/product"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

// catalogSample caps how much of the products collection feeds the
// synthesizer; a few hundred is plenty of variety.
const catalogSample = 1000

func main() {
	logging.Setup()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Error("demo data generation failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	inf, err := shared.NewInfra(ctx)
	if err != nil {
		return err
	}
	defer inf.Close()

	cfg := inf.Config
	lists := fsadapter.NewListRepositoryFS(inf.Firestore, cfg.ListsCollection)
	receipts := fsadapter.NewReceiptRepositoryFS(inf.Firestore, cfg.ReceiptsCollection)
	inventory := fsadapter.NewInventoryRepositoryFS(inf.Firestore, cfg.InventoryCollection)

	syn := demodata.New(loadCatalog(ctx, inf), nil, cfg.DemoHouseholdID, demoCreator(ctx, inf))
	slog.Info("synthesizer ready", "catalog", syn.CatalogSize(), "household", cfg.DemoHouseholdID)

	now := time.Now().UTC()
	failed := 0

	for _, spec := range demodata.DemoLists {
		l := syn.BuildList(spec, now)
		if err := lists.Create(ctx, l); err != nil {
			slog.Error("list write failed", "list", l.Name, "err", err)
			failed++
			continue
		}
		slog.Info("list created", "list", l.Name, "items", len(l.Items), "total", l.TotalPrice)
	}

	for _, spec := range demodata.DemoUnifiedLists {
		l := syn.BuildUnifiedList(spec, now)
		if err := lists.Create(ctx, l); err != nil {
			slog.Error("list write failed", "list", l.Name, "err", err)
			failed++
			continue
		}
		slog.Info("list created", "list", l.Name, "items", len(l.Items), "total", l.TotalPrice)
	}

	for _, spec := range demodata.DemoReceipts {
		rec := syn.BuildReceipt(spec, now)
		if err := receipts.Create(ctx, rec); err != nil {
			slog.Error("receipt write failed", "store", rec.StoreName, "err", err)
			failed++
			continue
		}
		slog.Info("receipt created", "store", rec.StoreName, "lines", len(rec.Items), "total", rec.Total)
	}

	for _, spec := range demodata.DemoInventory {
		for _, item := range syn.BuildInventory(spec) {
			if err := inventory.Create(ctx, item); err != nil {
				slog.Error("inventory write failed", "item", item.Name, "err", err)
				failed++
				continue
			}
		}
		slog.Info("inventory stocked", "location", string(spec.Location))
	}

	if failed > 0 {
		return fmt.Errorf("%d records failed to write", failed)
	}
	return nil
}

// loadCatalog reads a sample of the products collection. A read failure is
// not fatal: the synthesizer falls back to its embedded catalog.
func loadCatalog(ctx context.Context, inf *shared.Infra) []pdom.Product {
	repo := fsadapter.NewProductRepositoryFS(inf.Firestore, inf.Config.ProductsCollection)
	products, err := repo.Limit(ctx, catalogSample)
	if err != nil {
		slog.Warn("catalog unreadable, using embedded fallback", "err", err)
		return nil
	}
	if len(products) == 0 {
		slog.Warn("products collection is empty, using embedded fallback")
	}
	return products
}

// demoCreator resolves the UID stamped as creator on synthesized records.
// Prefers the first roster account when it exists so demo data shows up
// under a real user; otherwise a fixed placeholder.
func demoCreator(ctx context.Context, inf *shared.Infra) string {
	if inf.FirebaseAuth == nil {
		return "demo_user"
	}
	rec, err := inf.FirebaseAuth.GetUserByEmail(ctx, demodata.DemoUsers[0].Email)
	if err != nil {
		return "demo_user"
	}
	return rec.UID
}
