// cmd/create_demo_users/main.go
//
// Creates (or repairs) the demo household accounts: one Firebase Auth user
// per roster entry plus a UID-keyed Firestore user document, then removes
// the hand-written doc ids an early script revision left behind.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	authadapter "homecart/internal/adapters/out/auth"
	fsadapter "homecart/internal/adapters/out/firestore"
	"homecart/internal/application/demodata"
	"homecart/internal/application/secrets"
	udom "homecart/internal/domain/user"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

func main() {
	logging.Setup()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Error("demo user setup failed", "err", err)
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

	cfg := inf.Config
	password := secrets.DemoPassword(ctx, inf.SecretManager, inf.ProjectID, cfg.DemoPasswordName, cfg.DemoPassword)

	accounts := authadapter.NewAdapter(inf.FirebaseAuth)
	users := fsadapter.NewUserRepositoryFS(inf.Firestore, cfg.UsersCollection)

	now := time.Now().UTC()
	failed := 0

	for _, spec := range demodata.DemoUsers {
		log := slog.With("email", spec.Email)

		acc, created, err := accounts.EnsureUser(ctx, spec.Email, password, spec.Name)
		if err != nil {
			log.Error("auth account setup failed", "err", err)
			failed++
			continue
		}
		if created {
			log.Info("auth account created", "uid", acc.UID)
		} else {
			log.Info("auth account exists", "uid", acc.UID)
			if acc.DisplayName != spec.Name {
				if err := accounts.SetDisplayName(ctx, acc.UID, spec.Name); err != nil {
					log.Warn("display name update failed", "err", err)
				}
			}
		}

		existed, err := users.Exists(ctx, acc.UID)
		if err != nil {
			log.Warn("user document lookup failed", "err", err)
		}

		// Full overwrite doubles as the repair path: stray fields from
		// older script revisions do not survive it.
		err = users.Upsert(ctx, udom.User{
			ID:              acc.UID,
			Name:            spec.Name,
			Email:           spec.Email,
			HouseholdID:     cfg.DemoHouseholdID,
			JoinedAt:        now,
			LastLoginAt:     now,
			PreferredStores: spec.PreferredStores,
			WeeklyBudget:    spec.WeeklyBudget,
			IsAdmin:         spec.IsAdmin,
		})
		if err != nil {
			log.Error("user document write failed", "err", err)
			failed++
			continue
		}

		// Strip camelCase leftovers after the overwrite, same order as the
		// original repair sequence.
		if err := users.StripLegacyFields(ctx, acc.UID); err != nil && !errors.Is(err, udom.ErrNotFound) {
			log.Warn("legacy field strip failed", "err", err)
		}

		if existed {
			log.Info("user document repaired", "uid", acc.UID, "household", cfg.DemoHouseholdID)
		} else {
			log.Info("user document created", "uid", acc.UID, "household", cfg.DemoHouseholdID)
		}
	}

	deleted, err := users.DeleteIDs(ctx, demodata.LegacyUserDocIDs)
	if err != nil {
		slog.Warn("legacy doc cleanup failed", "err", err)
	} else if deleted > 0 {
		slog.Info("legacy user docs removed", "count", deleted)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d demo users failed", failed, len(demodata.DemoUsers))
	}

	fmt.Println("\nDemo accounts ready:")
	for _, spec := range demodata.DemoUsers {
		fmt.Printf("  %-30s %s\n", spec.Email, password)
	}
	return nil
}
