// cmd/migrate_list_types/main.go
//
// Renames the obsolete 'super' list type to 'supermarket'. Batch updates,
// re-runnable: a second run finds zero matches.
package main

import (
	"context"
	"log/slog"
	"os"

	fsadapter "homecart/internal/adapters/out/firestore"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

const (
	oldType = "super"
	newType = "supermarket"
)

func main() {
	logging.Setup()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Error("list type migration failed", "err", err)
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

	matches, err := repo.IDsByType(ctx, oldType)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		slog.Info("no lists carry the old type, nothing to do", "type", oldType)
		return nil
	}

	ids := make([]string, 0, len(matches))
	for _, rl := range matches {
		slog.Info("will update", "list", rl.Name, "id", rl.ID)
		ids = append(ids, rl.ID)
	}

	updated, err := repo.UpdateTypes(ctx, ids, newType)
	if err != nil {
		return err
	}

	slog.Info("list types migrated", "from", oldType, "to", newType, "updated", updated)
	return nil
}
