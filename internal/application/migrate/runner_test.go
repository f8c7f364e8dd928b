// internal/application/migrate/runner_test.go
package migrate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	parents []Parent
	listErr error

	updated   map[string][]map[string]any
	updateErr map[string]error
}

func (f *fakeStore) Lists(context.Context) ([]Parent, error) {
	return f.parents, f.listErr
}

func (f *fakeStore) UpdateItems(_ context.Context, id string, items []map[string]any) error {
	if err := f.updateErr[id]; err != nil {
		return err
	}
	if f.updated == nil {
		f.updated = map[string][]map[string]any{}
	}
	f.updated[id] = items
	return nil
}

func TestRunMigratesOnlyChangedLists(t *testing.T) {
	store := &fakeStore{parents: []Parent{
		{ID: "l1", Name: "Weekly", Items: []map[string]any{legacyRaw("i1", "Milk", "pending", 1, 6.9)}},
		{ID: "l2", Name: "Done", Items: []map[string]any{unifiedRaw("i2", "Bread")}},
		{ID: "l3", Name: "Empty"},
	}}

	rep, err := Run(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Lists)
	assert.Equal(t, 1, rep.Updated)
	assert.Equal(t, 2, rep.SkippedLists)
	assert.Equal(t, 0, rep.FailedLists)
	assert.Equal(t, 2, rep.Items)
	assert.Equal(t, 1, rep.ItemsMigrated)
	assert.Equal(t, 1, rep.ItemsSkipped)

	require.Contains(t, store.updated, "l1")
	assert.NotContains(t, store.updated, "l2", "unchanged lists must not be written")
	assert.NotContains(t, store.updated, "l3")
}

func TestRunContinuesPastFailures(t *testing.T) {
	store := &fakeStore{
		parents: []Parent{
			{ID: "l1", Name: "Bad item", Items: []map[string]any{{"type": "banana"}}},
			{ID: "l2", Name: "Write fails", Items: []map[string]any{legacyRaw("i1", "Milk", "pending", 1, 6.9)}},
			{ID: "l3", Name: "OK", Items: []map[string]any{legacyRaw("i2", "Eggs", "taken", 1, 12.5)}},
		},
		updateErr: map[string]error{"l2": errors.New("deadline exceeded")},
	}

	rep, err := Run(context.Background(), store)
	require.NoError(t, err, "per-list failures must not abort the run")

	assert.Equal(t, 2, rep.FailedLists)
	assert.Equal(t, 1, rep.Updated)
	require.Contains(t, store.updated, "l3")
}

func TestRunListReadErrorIsFatal(t *testing.T) {
	store := &fakeStore{listErr: errors.New("unavailable")}

	_, err := Run(context.Background(), store)
	require.Error(t, err)
}

func TestRunSecondPassIsNoop(t *testing.T) {
	store := &fakeStore{parents: []Parent{
		{ID: "l1", Name: "Weekly", Items: []map[string]any{
			legacyRaw("i1", "Milk", "pending", 1, 6.9),
			legacyRaw("i2", "Eggs", "taken", 2, 12.5),
		}},
	}}

	rep, err := Run(context.Background(), store)
	require.NoError(t, err)
	require.Equal(t, 2, rep.ItemsMigrated)

	// Feed the migrated output back in.
	store2 := &fakeStore{parents: []Parent{{ID: "l1", Name: "Weekly", Items: store.updated["l1"]}}}
	rep2, err := Run(context.Background(), store2)
	require.NoError(t, err)

	assert.Equal(t, 0, rep2.ItemsMigrated)
	assert.Equal(t, 0, rep2.Updated)
	assert.Empty(t, store2.updated)
}
