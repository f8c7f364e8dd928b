// cmd/cleanup_demo_users/main.go
//
// Removes the demo roster: Auth accounts by email plus their UID-keyed user
// documents. Safe to run when nothing exists; missing accounts are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	authadapter "homecart/internal/adapters/out/auth"
	fsadapter "homecart/internal/adapters/out/firestore"
	"homecart/internal/application/demodata"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

func main() {
	logging.Setup()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Error("demo user cleanup failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	inf, err := shared.NewInfra(ctx)
	if err != nil {
		return err
	}
	defer inf.Close()

	if inf.FirebaseAuth == nil {
		return errors.New("firebase auth unavailable; cannot manage accounts")
	}

	accounts := authadapter.NewAdapter(inf.FirebaseAuth)
	users := fsadapter.NewUserRepositoryFS(inf.Firestore, inf.Config.UsersCollection)

	var docIDs []string
	failed := 0

	for _, spec := range demodata.DemoUsers {
		log := slog.With("email", spec.Email)

		acc, found, err := accounts.ByEmail(ctx, spec.Email)
		if err != nil {
			log.Error("account lookup failed", "err", err)
			failed++
			continue
		}
		if !found {
			log.Info("no auth account, skipping")
			continue
		}

		if err := accounts.DeleteUser(ctx, acc.UID); err != nil {
			log.Error("account deletion failed", "uid", acc.UID, "err", err)
			failed++
			continue
		}
		log.Info("auth account deleted", "uid", acc.UID)
		docIDs = append(docIDs, acc.UID)
	}

	// Legacy hand-written ids go too, in case an old environment still
	// carries them.
	docIDs = append(docIDs, demodata.LegacyUserDocIDs...)

	deleted, err := users.DeleteIDs(ctx, docIDs)
	if err != nil {
		return fmt.Errorf("user document cleanup: %w", err)
	}
	slog.Info("user documents removed", "count", deleted)

	if failed > 0 {
		return fmt.Errorf("%d accounts could not be removed", failed)
	}
	return nil
}
