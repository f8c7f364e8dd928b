// internal/domain/template/entity.go
package template

import (
	"errors"
	"fmt"
	"strings"
)

// TemplateType mirrors the app's list type enum.
type TemplateType string

const (
	TypeSupermarket TemplateType = "supermarket"
	TypePharmacy    TemplateType = "pharmacy"
	TypeHardware    TemplateType = "hardware"
	TypeClothing    TemplateType = "clothing"
	TypeElectronics TemplateType = "electronics"
	TypePets        TemplateType = "pets"
	TypeCosmetics   TemplateType = "cosmetics"
	TypeStationery  TemplateType = "stationery"
	TypeToys        TemplateType = "toys"
	TypeBooks       TemplateType = "books"
	TypeSports      TemplateType = "sports"
	TypeHomeDecor   TemplateType = "home_decor"
	TypeAutomotive  TemplateType = "automotive"
	TypeBaby        TemplateType = "baby"
	TypeGifts       TemplateType = "gifts"
	TypeBirthday    TemplateType = "birthday"
	TypeParty       TemplateType = "party"
	TypeWedding     TemplateType = "wedding"
	TypePicnic      TemplateType = "picnic"
	TypeHoliday     TemplateType = "holiday"
	TypeOther       TemplateType = "other"
)

const (
	// DefaultFormat marks a template as shared within the household.
	DefaultFormat = "shared"
	// SystemCreator is the created_by value of every system template.
	SystemCreator = "system"
)

// TemplateItem is one default line of a template.
type TemplateItem struct {
	Name     string
	Category string
	Quantity float64
	Unit     string
}

// Template is a starter list definition. System templates carry
// IsSystem=true and no household; user templates belong to a household.
type Template struct {
	ID          string
	Type        TemplateType
	Name        string
	Description string
	Icon        string
	SortOrder   int
	IsSystem    bool
	HouseholdID string // empty for system templates (stored as null)
	CreatedBy   string
	Items       []TemplateItem
}

var (
	ErrInvalidID        = errors.New("template: invalid id")
	ErrInvalidName      = errors.New("template: invalid name")
	ErrInvalidSortOrder = errors.New("template: invalid sort order")
	ErrSystemOwnership  = errors.New("template: system template must not have a household")
)

// Validate checks the invariants the seeder relies on.
func (t Template) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrInvalidName
	}
	if t.SortOrder < 1 {
		return ErrInvalidSortOrder
	}
	if t.IsSystem && t.HouseholdID != "" {
		return ErrSystemOwnership
	}
	return nil
}

// MustNew builds a validated system template for the static catalog.
// Panics on invalid input; the catalog is compiled-in data, so a bad entry
// is a programming error.
func MustNew(id string, typ TemplateType, name, description, icon string, sortOrder int, items []TemplateItem) Template {
	t := Template{
		ID:          id,
		Type:        typ,
		Name:        name,
		Description: description,
		Icon:        icon,
		SortOrder:   sortOrder,
		IsSystem:    true,
		CreatedBy:   SystemCreator,
		Items:       items,
	}
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("template catalog: %s: %v", id, err))
	}
	return t
}
