// internal/adapters/out/firestore/list_repository_fs.go
package firestore

import (
	"context"
	"errors"

	gfs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ldom "homecart/internal/domain/list"
)

// ListRepositoryFS persists shopping lists.
type ListRepositoryFS struct {
	Client     *gfs.Client
	Collection string
}

func NewListRepositoryFS(client *gfs.Client, collection string) *ListRepositoryFS {
	if collection == "" {
		collection = "shopping_lists"
	}
	return &ListRepositoryFS{Client: client, Collection: collection}
}

func (r *ListRepositoryFS) col() *gfs.CollectionRef {
	return r.Client.Collection(r.Collection)
}

// RawList is a list document with its items still in wire form. The item
// migrator classifies and rewrites them without forcing a full decode of
// fields it does not touch.
type RawList struct {
	ID    string
	Name  string
	Items []map[string]any
}

// All streams every list document.
func (r *ListRepositoryFS) All(ctx context.Context) ([]RawList, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	var out []RawList
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, decodeRawList(doc))
	}
	return out, nil
}

// UpdateItems rewrites the full items array of one list in a single update
// and stamps updated_date server-side.
func (r *ListRepositoryFS) UpdateItems(ctx context.Context, id string, items []map[string]any) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	_, err := r.col().Doc(id).Update(ctx, []gfs.Update{
		{Path: "items", Value: items},
		{Path: "updated_date", Value: gfs.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return ldom.ErrNotFound
	}
	return err
}

// Create writes a full list document keyed by its id.
func (r *ListRepositoryFS) Create(ctx context.Context, l ldom.ShoppingList) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	if err := l.Validate(); err != nil {
		return err
	}
	_, err := r.col().Doc(l.ID).Set(ctx, listDoc(l))
	return err
}

// ByHousehold returns ids and names of a household's lists.
func (r *ListRepositoryFS) ByHousehold(ctx context.Context, householdID string) ([]RawList, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().Where("household_id", "==", householdID).Documents(ctx)
	defer it.Stop()

	var out []RawList
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, decodeRawList(doc))
	}
	return out, nil
}

// Delete removes one list document.
func (r *ListRepositoryFS) Delete(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

// IDsByType returns ids of lists whose type equals the given value.
func (r *ListRepositoryFS) IDsByType(ctx context.Context, typ string) ([]RawList, error) {
	if r.Client == nil {
		return nil, errors.New("firestore client is nil")
	}

	it := r.col().Where("type", "==", typ).Documents(ctx)
	defer it.Stop()

	var out []RawList
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, decodeRawList(doc))
	}
	return out, nil
}

// UpdateTypes batch-updates the type field of the given list ids, stamping
// updated_date server-side. One atomic batch per chunk of 500.
func (r *ListRepositoryFS) UpdateTypes(ctx context.Context, ids []string, newType string) (int, error) {
	if r.Client == nil {
		return 0, errors.New("firestore client is nil")
	}

	updated := 0
	for start := 0; start < len(ids); start += DefaultChunkSize {
		end := start + DefaultChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := r.Client.Batch()
		for _, id := range ids[start:end] {
			batch.Update(r.col().Doc(id), []gfs.Update{
				{Path: "type", Value: newType},
				{Path: "updated_date", Value: gfs.ServerTimestamp},
			})
		}
		if _, err := batch.Commit(ctx); err != nil {
			return updated, err
		}
		updated += end - start
	}
	return updated, nil
}

func decodeRawList(doc *gfs.DocumentSnapshot) RawList {
	data := doc.Data()

	rl := RawList{ID: doc.Ref.ID}
	if name, ok := data["name"].(string); ok {
		rl.Name = name
	}
	if items, ok := data["items"].([]any); ok {
		for _, v := range items {
			if m, ok := v.(map[string]any); ok {
				rl.Items = append(rl.Items, m)
			}
		}
	}
	return rl
}

func listDoc(l ldom.ShoppingList) map[string]any {
	items := make([]map[string]any, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, it.Doc())
	}

	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}

	return map[string]any{
		"id":           l.ID,
		"name":         l.Name,
		"type":         l.Type,
		"status":       string(l.Status),
		"household_id": l.HouseholdID,
		"created_by":   l.CreatedBy,
		"created_date": l.CreatedAt,
		"updated_date": l.UpdatedAt,
		"items":        items,
		"tags":         tags,
		"total_price":  l.TotalPrice,
	}
}
