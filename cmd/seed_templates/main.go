// cmd/seed_templates/main.go
//
// Seeds the system shopping-list templates from the static catalog.
// Doc id = template id, so re-running overwrites in place.
package main

import (
	"context"
	"log/slog"
	"os"

	fsadapter "homecart/internal/adapters/out/firestore"
	tdom "homecart/internal/domain/template"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

func main() {
	logging.Setup()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Error("template seeding failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	inf, err := shared.NewInfra(ctx)
	if err != nil {
		return err
	}
	defer inf.Close()

	repo := fsadapter.NewTemplateRepositoryFS(inf.Firestore, inf.Config.TemplatesCollection)

	written, err := repo.Seed(ctx, tdom.SystemTemplates, func(written, total int) {
		slog.Info("seeding templates", "written", written, "total", total)
	})
	if err != nil {
		return err
	}

	slog.Info("system templates seeded", "count", written, "collection", inf.Config.TemplatesCollection)
	return nil
}
