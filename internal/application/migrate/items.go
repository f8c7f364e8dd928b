// internal/application/migrate/items.go
package migrate

import (
	"fmt"

	ldom "homecart/internal/domain/list"
)

// Stats counts one parent's children by migration outcome.
type Stats struct {
	Total    int
	Migrated int
	Skipped  int // already unified before this run
}

// MigrateItems classifies each raw item and unifies the legacy ones.
// Already-unified items pass through with their original wire map untouched;
// rewriting them would churn documents for no reason.
//
// A single undecodable or invalid child fails the whole call: the caller
// must then skip this parent entirely rather than persist a half-migrated
// items array.
//
// The transform always yields an item carrying a 'type' field, so a second
// pass over its output classifies everything as migrated. That is what makes
// re-running the migration safe.
func MigrateItems(raw []map[string]any) ([]map[string]any, Stats, bool, error) {
	stats := Stats{Total: len(raw)}

	out := make([]map[string]any, 0, len(raw))
	for i, m := range raw {
		item, err := ldom.DecodeItem(m)
		if err != nil {
			return nil, Stats{}, false, fmt.Errorf("item %d: %w", i, err)
		}

		if item.Migrated() {
			stats.Skipped++
			out = append(out, m)
			continue
		}

		unified := ldom.Unify(*item.Legacy)
		if err := unified.Validate(); err != nil {
			return nil, Stats{}, false, fmt.Errorf("item %d: %w", i, err)
		}
		stats.Migrated++
		out = append(out, ldom.Item{Unified: &unified}.Doc())
	}

	return out, stats, stats.Migrated > 0, nil
}
