// internal/domain/receipt/entity.go
package receipt

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Line is one purchased line on a receipt.
type Line struct {
	Name     string
	Price    float64
	Quantity int
	Total    float64
}

// Receipt is one receipts document.
type Receipt struct {
	ID          string
	StoreName   string
	Date        time.Time
	Total       float64
	Items       []Line
	ImagePath   string
	HouseholdID string
	UploadedBy  string
}

var ErrInvalidStore = errors.New("receipt: invalid store name")

func (r Receipt) Validate() error {
	if strings.TrimSpace(r.StoreName) == "" {
		return ErrInvalidStore
	}
	return nil
}

// Sum recomputes the receipt total from its lines, rounded to 2 decimals.
func Sum(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.Total
	}
	return math.Round(total*100) / 100
}
