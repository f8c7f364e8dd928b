// cmd/delete_old_lists/main.go
//
// Deletes every shopping list of the demo household so the generator can
// start from a clean slate. Destructive; scoped by household id, never
// touches other households' data.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	fsadapter "homecart/internal/adapters/out/firestore"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

func main() {
	logging.Setup()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Error("list deletion failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	inf, err := shared.NewInfra(ctx)
	if err != nil {
		return err
	}
	defer inf.Close()

	household := inf.Config.DemoHouseholdID
	repo := fsadapter.NewListRepositoryFS(inf.Firestore, inf.Config.ListsCollection)

	lists, err := repo.ByHousehold(ctx, household)
	if err != nil {
		return err
	}
	if len(lists) == 0 {
		slog.Info("household has no lists", "household", household)
		return nil
	}

	failed := 0
	for _, rl := range lists {
		if err := repo.Delete(ctx, rl.ID); err != nil {
			slog.Error("delete failed", "list", rl.Name, "id", rl.ID, "err", err)
			failed++
			continue
		}
		slog.Info("deleted", "list", rl.Name, "id", rl.ID)
	}

	slog.Info("cleanup finished", "household", household, "deleted", len(lists)-failed, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d lists could not be deleted", failed)
	}
	return nil
}
