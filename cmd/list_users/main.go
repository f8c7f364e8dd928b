// cmd/list_users/main.go
//
// Prints every Firebase Auth account of the project, oldest first.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	authadapter "homecart/internal/adapters/out/auth"
	"homecart/internal/infra/logging"
	"homecart/internal/platform/di/shared"
)

func main() {
	logging.Setup()

	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.Error("user listing failed", "err", err)
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
		return errors.New("firebase auth unavailable; cannot list accounts")
	}

	accounts, err := authadapter.NewAdapter(inf.FirebaseAuth).ListAll(ctx)
	if err != nil {
		return err
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAtMS < accounts[j].CreatedAtMS
	})

	fmt.Printf("%-30s %-28s %-20s %-12s %s\n", "UID", "EMAIL", "NAME", "CREATED", "LAST LOGIN")
	for _, acc := range accounts {
		fmt.Printf("%-30s %-28s %-20s %-12s %s\n",
			acc.UID, acc.Email, acc.DisplayName,
			formatMillis(acc.CreatedAtMS), formatMillis(acc.LastLoginAtMS))
	}
	// Machine-readable summary for piping into other tooling.
	summary, err := json.Marshal(struct {
		Count    int    `json:"count"`
		Project  string `json:"project"`
		ListedAt string `json:"listed_at"`
	}{len(accounts), inf.ProjectID, time.Now().UTC().Format(time.RFC3339)})
	if err != nil {
		return err
	}
	fmt.Printf("\n%s\n", summary)
	return nil
}

// formatMillis renders an auth-provider millisecond timestamp; zero means
// the event never happened (e.g. an account that never signed in).
func formatMillis(ms int64) string {
	if ms == 0 {
		return "never"
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}
