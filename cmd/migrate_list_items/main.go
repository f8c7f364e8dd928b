// cmd/migrate_list_items/main.go
//
// Rewrites legacy-shaped list items into the unified shape. Re-runnable:
// already-unified items pass through untouched and unchanged lists are
// never written.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	fsadapter "homecart/internal/adapters/out/firestore"
	"homecart/internal/application/migrate"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

func main() {
	logging.Setup()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Error("item migration failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	inf, err := shared.NewInfra(ctx)
	if err != nil {
		return err
	}
	defer inf.Close()

	repo := fsadapter.NewListRepositoryFS(inf.Firestore, inf.Config.ListsCollection)
	rep, err := migrate.Run(ctx, listStore{repo})
	if err != nil {
		return err
	}

	slog.Info("migration finished",
		"lists", rep.Lists, "updated", rep.Updated,
		"already_migrated", rep.SkippedLists, "failed", rep.FailedLists,
		"items", rep.Items, "converted", rep.ItemsMigrated, "passed_through", rep.ItemsSkipped)

	if rep.FailedLists > 0 {
		return fmt.Errorf("%d lists failed and were left untouched", rep.FailedLists)
	}
	return nil
}

// listStore adapts the Firestore list repository to the migrator's store.
type listStore struct {
	repo *fsadapter.ListRepositoryFS
}

func (s listStore) Lists(ctx context.Context) ([]migrate.Parent, error) {
	raw, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]migrate.Parent, 0, len(raw))
	for _, rl := range raw {
		out = append(out, migrate.Parent{ID: rl.ID, Name: rl.Name, Items: rl.Items})
	}
	return out, nil
}

func (s listStore) UpdateItems(ctx context.Context, id string, items []map[string]any) error {
	return s.repo.UpdateItems(ctx, id, items)
}
