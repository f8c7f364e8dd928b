// internal/domain/user/entity_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := User{ID: "uid_1", Email: "alex@demo.homecart.app"}
	require.NoError(t, valid.Validate())

	assert.ErrorIs(t, User{ID: " ", Email: "a@b"}.Validate(), ErrInvalidID)
	assert.ErrorIs(t, User{ID: "uid_1", Email: "not-an-email"}.Validate(), ErrInvalidEmail)
}

func TestLegacyFieldsReturnsACopy(t *testing.T) {
	fields := LegacyFields()
	require.NotEmpty(t, fields)
	assert.Contains(t, fields, "householdId")

	fields[0] = "mutated"
	assert.NotEqual(t, "mutated", LegacyFields()[0])
}
