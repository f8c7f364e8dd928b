// internal/application/migrate/runner.go
package migrate

import (
	"context"
	"log/slog"
)

// Parent is one list document as the migrator sees it: id, display name and
// the raw embedded items.
type Parent struct {
	ID    string
	Name  string
	Items []map[string]any
}

// Store is the slice of the list repository the migrator needs.
type Store interface {
	Lists(ctx context.Context) ([]Parent, error)
	UpdateItems(ctx context.Context, id string, items []map[string]any) error
}

// Report is the global outcome of one migration run.
type Report struct {
	Lists        int
	Updated      int
	SkippedLists int // nothing to migrate
	FailedLists  int // transform or write error; left untouched

	Items         int
	ItemsMigrated int
	ItemsSkipped  int
}

// Run migrates every list. Per-list failures are logged and counted but do
// not stop the run; the caller decides the exit code from the report.
// A list with zero unmigrated items is never written, so a second run is a
// no-op that reports ItemsMigrated == 0.
func Run(ctx context.Context, store Store) (Report, error) {
	lists, err := store.Lists(ctx)
	if err != nil {
		return Report{}, err
	}

	var rep Report
	rep.Lists = len(lists)

	for i, parent := range lists {
		log := slog.With("list", parent.Name, "id", parent.ID, "n", i+1, "of", len(lists))

		items, stats, changed, err := MigrateItems(parent.Items)
		if err != nil {
			log.Error("skipping list, item transform failed", "err", err)
			rep.FailedLists++
			continue
		}

		rep.Items += stats.Total
		rep.ItemsMigrated += stats.Migrated
		rep.ItemsSkipped += stats.Skipped

		if !changed {
			log.Debug("already migrated", "items", stats.Total)
			rep.SkippedLists++
			continue
		}

		if err := store.UpdateItems(ctx, parent.ID, items); err != nil {
			log.Error("list update failed", "err", err)
			rep.FailedLists++
			continue
		}

		rep.Updated++
		log.Info("migrated", "items", stats.Total, "converted", stats.Migrated, "skipped", stats.Skipped)
	}

	return rep, nil
}
