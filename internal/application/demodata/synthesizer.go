// internal/application/demodata/synthesizer.go
package demodata

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	invdom "homecart/internal/domain/inventory"
	ldom "homecart/internal/domain/list"
	pdom "homecart/internal/domain/product"
	rdom "homecart/internal/domain/receipt"
)

// Synthesizer derives randomized but structurally valid demo records from
// the reference catalog. It never mutates the catalog and never fails on a
// thin one: a category with fewer matches than requested just yields fewer
// items, and an empty catalog is swapped for the embedded fallback.
type Synthesizer struct {
	catalog []pdom.Product
	rng     *rand.Rand

	HouseholdID string
	UserID      string
}

// checkedProbability is the chance a synthesized list line is already
// taken, which makes demo lists look mid-shopping rather than untouched.
const checkedProbability = 0.3

// New builds a synthesizer. A nil rng gets a time-seeded source; tests pass
// a fixed seed for reproducible output.
func New(catalog []pdom.Product, rng *rand.Rand, householdID, userID string) *Synthesizer {
	usable := make([]pdom.Product, 0, len(catalog))
	for _, p := range catalog {
		if p.Usable() {
			usable = append(usable, p)
		}
	}
	if len(usable) == 0 {
		usable = pdom.Fallback()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{
		catalog:     usable,
		rng:         rng,
		HouseholdID: householdID,
		UserID:      userID,
	}
}

// CatalogSize reports how many usable products the synthesizer works from.
func (s *Synthesizer) CatalogSize() int { return len(s.catalog) }

// Sample returns up to count distinct products matching the app category,
// sampled without replacement. With fewer than count matches it returns all
// of them; it never errors and never pads.
func (s *Synthesizer) Sample(c pdom.AppCategory, count int) []pdom.Product {
	if count <= 0 {
		return nil
	}

	matches := make([]pdom.Product, 0, count)
	for _, p := range s.catalog {
		if p.MatchesCategory(c) {
			matches = append(matches, p)
		}
	}

	s.rng.Shuffle(len(matches), func(i, j int) {
		matches[i], matches[j] = matches[j], matches[i]
	})
	if len(matches) > count {
		matches = matches[:count]
	}
	return matches
}

// CategoryCount is one line of a structure template: how many items to draw
// from an app category. Ordered slice, not a map, so output order is stable
// under a seeded rng.
type CategoryCount struct {
	Category pdom.AppCategory
	Count    int
}

// ListSpec describes one demo shopping list to synthesize.
type ListSpec struct {
	ID         string
	Name       string
	Type       string
	Status     ldom.ListStatus
	Categories []CategoryCount
}

// BuildList synthesizes a shopping list with legacy-shaped items: the list
// migrator needs pre-migration data to demonstrate on.
func (s *Synthesizer) BuildList(spec ListSpec, now time.Time) ldom.ShoppingList {
	var items []ldom.Item
	var total float64

	for _, cc := range spec.Categories {
		for _, p := range s.Sample(cc.Category, cc.Count) {
			qty := float64(s.rng.Intn(3) + 1) // 1-3
			status := ldom.ItemPending
			if s.rng.Float64() < checkedProbability {
				status = ldom.ItemTaken
			}
			items = append(items, ldom.Item{Legacy: &ldom.LegacyItem{
				ID:       uuid.NewString(),
				Name:     p.Name,
				Category: p.Category,
				Quantity: qty,
				Unit:     p.Unit,
				Status:   status,
				Price:    p.Price,
				Barcode:  p.Barcode,
				AddedBy:  s.UserID,
			}})
			total += p.Price * qty
		}
	}

	return ldom.ShoppingList{
		ID:          spec.ID,
		Name:        spec.Name,
		Type:        spec.Type,
		Status:      spec.Status,
		HouseholdID: s.HouseholdID,
		CreatedBy:   s.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       items,
		Tags:        []string{},
		TotalPrice:  round2(total),
	}
}

// BuildUnifiedList synthesizes a list whose items already carry the unified
// shape, for environments past the item migration.
func (s *Synthesizer) BuildUnifiedList(spec ListSpec, now time.Time) ldom.ShoppingList {
	l := s.BuildList(spec, now)
	for i, it := range l.Items {
		u := ldom.Unify(*it.Legacy)
		l.Items[i] = ldom.Item{Unified: &u}
	}
	return l
}

// ReceiptSpec describes one demo receipt to synthesize.
type ReceiptSpec struct {
	ID         string
	StoreName  string
	DaysAgo    int
	Categories []CategoryCount
}

// BuildReceipt synthesizes a historical receipt.
func (s *Synthesizer) BuildReceipt(spec ReceiptSpec, now time.Time) rdom.Receipt {
	var lines []rdom.Line

	for _, cc := range spec.Categories {
		for _, p := range s.Sample(cc.Category, cc.Count) {
			qty := s.rng.Intn(3) + 1 // 1-3
			lines = append(lines, rdom.Line{
				Name:     p.Name,
				Price:    p.Price,
				Quantity: qty,
				Total:    round2(p.Price * float64(qty)),
			})
		}
	}

	return rdom.Receipt{
		ID:          spec.ID,
		StoreName:   spec.StoreName,
		Date:        now.AddDate(0, 0, -spec.DaysAgo),
		Total:       rdom.Sum(lines),
		Items:       lines,
		HouseholdID: s.HouseholdID,
		UploadedBy:  s.UserID,
	}
}

// LocationSpec describes the inventory synthesized for one home location.
type LocationSpec struct {
	Location    invdom.Location
	Category    pdom.AppCategory
	Count       int
	MinQuantity int
}

// BuildInventory synthesizes the inventory items of one location.
func (s *Synthesizer) BuildInventory(spec LocationSpec) []invdom.Item {
	products := s.Sample(spec.Category, spec.Count)

	items := make([]invdom.Item, 0, len(products))
	for _, p := range products {
		items = append(items, invdom.Item{
			ID:          uuid.NewString(),
			Name:        p.Name,
			Category:    p.Category,
			Quantity:    s.rng.Intn(5) + 1, // 1-5
			Unit:        p.Unit,
			Location:    spec.Location,
			MinQuantity: spec.MinQuantity,
			HouseholdID: s.HouseholdID,
			AddedBy:     s.UserID,
		})
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
