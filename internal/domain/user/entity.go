// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

// User mirrors the app's user document. The document id is always the
// Firebase Auth UID; that is what ties the Firestore record to the account.
//
// Field names in Firestore are snake_case throughout. Older revisions of the
// seeding scripts produced camelCase duplicates (householdId, lastLoginAt);
// the repair path strips those.
type User struct {
	ID               string
	Name             string
	Email            string
	HouseholdID      string
	JoinedAt         time.Time
	LastLoginAt      time.Time
	PreferredStores  []string
	FavoriteProducts []string
	WeeklyBudget     float64
	IsAdmin          bool
	ProfileImageURL  string
}

var (
	ErrInvalidID    = errors.New("user: invalid id")
	ErrInvalidEmail = errors.New("user: invalid email")
	ErrNotFound     = errors.New("user: not found")
)

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return ErrInvalidID
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// legacyFields are camelCase leftovers deleted on repair.
var legacyFields = []string{"householdId", "lastLoginAt", "createdAt", "avatar"}

// LegacyFields returns the camelCase field names the repair path removes.
func LegacyFields() []string {
	out := make([]string, len(legacyFields))
	copy(out, legacyFields)
	return out
}
