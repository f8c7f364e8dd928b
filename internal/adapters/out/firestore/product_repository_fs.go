// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"

	gfs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	pdom "homecart/internal/domain/product"
)

// ProductRepositoryFS reads and uploads the reference catalog.
type ProductRepositoryFS struct {
	Client     *gfs.Client
	Collection string
}

func NewProductRepositoryFS(client *gfs.Client, collection string) *ProductRepositoryFS {
	if collection == "" {
		collection = "products"
	}
	return &ProductRepositoryFS{Client: client, Collection: collection}
}

func (r *ProductRepositoryFS) col() *gfs.CollectionRef {
	return r.Client.Collection(r.Collection)
}

// Limit reads up to n products from the catalog.
func (r *ProductRepositoryFS) Limit(ctx context.Context, n int) ([]pdom.Product, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().Limit(n).Documents(ctx)
	defer it.Stop()

	var out []pdom.Product
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, decodeProduct(doc))
	}
	return out, nil
}

// Upload batch-writes products keyed by barcode, merge-set so manual edits
// to other fields survive a re-upload. Every write stamps lastUpdate
// server-side; that field is how the app tells a fresh catalog from a stale
// one.
func (r *ProductRepositoryFS) Upload(ctx context.Context, products []pdom.Product, onChunk func(written, total int)) (int, error) {
	if r.Client == nil {
		return 0, errors.New("firestore client is nil")
	}

	docs := make([]Doc, 0, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return 0, err
		}
		docs = append(docs, Doc{
			Collection: r.Collection,
			ID:         p.Barcode,
			Data: map[string]any{
				"barcode":    p.Barcode,
				"name":       p.Name,
				"category":   p.Category,
				"brand":      p.Brand,
				"unit":       p.Unit,
				"price":      p.Price,
				"store":      p.Store,
				"lastUpdate": gfs.ServerTimestamp,
			},
		})
	}

	w := NewBatchWriter(r.Client)
	w.Merge = true
	w.OnChunk = onChunk
	return w.Write(ctx, docs)
}

func decodeProduct(doc *gfs.DocumentSnapshot) pdom.Product {
	data := doc.Data()

	p := pdom.Product{Barcode: doc.Ref.ID}
	if v, ok := data["barcode"].(string); ok && v != "" {
		p.Barcode = v
	}
	if v, ok := data["name"].(string); ok {
		p.Name = v
	}
	if v, ok := data["category"].(string); ok {
		p.Category = v
	}
	if v, ok := data["brand"].(string); ok {
		p.Brand = v
	}
	if v, ok := data["unit"].(string); ok {
		p.Unit = v
	}
	if v, ok := data["store"].(string); ok {
		p.Store = v
	}
	switch n := data["price"].(type) {
	case float64:
		p.Price = n
	case int64:
		p.Price = float64(n)
	}
	return p
}
