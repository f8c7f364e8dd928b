// internal/adapters/out/firestore/user_repository_fs_test.go
package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	udom "homecart/internal/domain/user"
)

func TestUserDocShape(t *testing.T) {
	doc := userDoc(udom.User{
		ID:          "uid_1",
		Name:        "Alex",
		Email:       "alex@demo.homecart.app",
		HouseholdID: "house_demo",
		JoinedAt:    time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "house_demo", doc["household_id"])
	assert.Equal(t, []string{}, doc["preferred_stores"])
	assert.Equal(t, []string{}, doc["favorite_products"])
	assert.Nil(t, doc["profile_image_url"])

	// The canonical shape shares no keys with the strip list: after an
	// overwrite plus strip, none of the camelCase leftovers can remain.
	for _, f := range udom.LegacyFields() {
		assert.NotContains(t, doc, f)
	}
}

func TestUserRepositoryNilClient(t *testing.T) {
	r := &UserRepositoryFS{}

	_, err := r.Exists(t.Context(), "uid_1")
	require.Error(t, err)
	require.Error(t, r.Upsert(t.Context(), udom.User{ID: "uid_1", Email: "a@b"}))
	require.Error(t, r.StripLegacyFields(t.Context(), "uid_1"))
	_, err = r.DeleteIDs(t.Context(), []string{"uid_1"})
	require.Error(t, err)
}
