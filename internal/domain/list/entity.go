// internal/domain/list/entity.go
package list

import (
	"errors"
	"strings"
	"time"
)

// ListStatus mirrors the app: 'active' | 'completed'
type ListStatus string

const (
	StatusActive    ListStatus = "active"
	StatusCompleted ListStatus = "completed"
)

func IsValidStatus(s ListStatus) bool {
	return s == StatusActive || s == StatusCompleted
}

// ShoppingList is one shopping_lists document. Items are embedded in the
// parent document, never a subcollection; the migrator always rewrites the
// whole items array in a single update so a list can never hold a mix of
// half-migrated items.
type ShoppingList struct {
	ID          string
	Name        string
	Type        string
	Status      ListStatus
	HouseholdID string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []Item
	Tags        []string
	TotalPrice  float64
}

var (
	ErrInvalidID     = errors.New("list: invalid id")
	ErrInvalidStatus = errors.New("list: invalid status")
	ErrNotFound      = errors.New("list: not found")
)

// Validate checks the fields the writers require.
func (l ShoppingList) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return ErrInvalidID
	}
	if !IsValidStatus(l.Status) {
		return ErrInvalidStatus
	}
	return nil
}
