// internal/domain/inventory/entity.go
package inventory

import (
	"errors"
	"strings"
	"time"
)

// Location is where an item is stored at home.
type Location string

const (
	LocationPantry   Location = "pantry"
	LocationFridge   Location = "fridge"
	LocationFreezer  Location = "freezer"
	LocationKitchen  Location = "kitchen"
	LocationBathroom Location = "bathroom"
)

// Item is one inventory document.
type Item struct {
	ID          string
	Name        string
	Category    string
	Quantity    int
	Unit        string
	Location    Location
	MinQuantity int
	ExpiryDate  *time.Time
	Notes       string
	HouseholdID string
	AddedBy     string
}

var ErrInvalidName = errors.New("inventory: invalid name")

func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidName
	}
	return nil
}
