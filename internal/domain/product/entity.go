// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
)

// Product is one entry of the reference catalog. The catalog is read-only
// for the demo/migration scripts; only upload_products writes to it.
type Product struct {
	Barcode  string
	Name     string
	Category string
	Brand    string
	Unit     string
	Price    float64
	Store    string
}

var (
	ErrInvalidBarcode = errors.New("product: invalid barcode")
	ErrInvalidName    = errors.New("product: invalid name")
)

// Validate checks the fields upload_products requires before writing.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Barcode) == "" {
		return ErrInvalidBarcode
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	return nil
}

// Usable reports whether the synthesizer may pick this product.
// Unnamed or zero-priced entries would produce broken demo records.
func (p Product) Usable() bool {
	return strings.TrimSpace(p.Name) != "" && p.Price > 0
}
