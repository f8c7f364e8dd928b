// internal/adapters/out/firestore/template_repository_fs.go
package firestore

import (
	"context"
	"errors"

	gfs "cloud.google.com/go/firestore"

	tdom "homecart/internal/domain/template"
)

// TemplateRepositoryFS persists templates.
type TemplateRepositoryFS struct {
	Client     *gfs.Client
	Collection string
}

func NewTemplateRepositoryFS(client *gfs.Client, collection string) *TemplateRepositoryFS {
	if collection == "" {
		collection = "templates"
	}
	return &TemplateRepositoryFS{Client: client, Collection: collection}
}

// Seed writes the given templates in chunked batches, doc id = template id
// so re-running overwrites instead of duplicating. created_date/updated_date
// are server timestamps; household_id is stored as an explicit null for
// system templates (the app queries on it).
func (r *TemplateRepositoryFS) Seed(ctx context.Context, templates []tdom.Template, onChunk func(written, total int)) (int, error) {
	if r.Client == nil {
		return 0, errors.New("firestore client is nil")
	}

	docs := make([]Doc, 0, len(templates))
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return 0, err
		}
		docs = append(docs, Doc{
			Collection: r.Collection,
			ID:         t.ID,
			Data:       templateDoc(t),
		})
	}

	w := NewBatchWriter(r.Client)
	w.OnChunk = onChunk
	return w.Write(ctx, docs)
}

func templateDoc(t tdom.Template) map[string]any {
	items := make([]map[string]any, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, map[string]any{
			"name":     it.Name,
			"category": it.Category,
			"quantity": it.Quantity,
			"unit":     it.Unit,
		})
	}

	var household any
	if t.HouseholdID != "" {
		household = t.HouseholdID
	}

	return map[string]any{
		"id":             t.ID,
		"type":           string(t.Type),
		"name":           t.Name,
		"description":    t.Description,
		"icon":           t.Icon,
		"default_format": tdom.DefaultFormat,
		"default_items":  items,
		"is_system":      t.IsSystem,
		"created_by":     t.CreatedBy,
		"household_id":   household,
		"sort_order":     t.SortOrder,
		"created_date":   gfs.ServerTimestamp,
		"updated_date":   gfs.ServerTimestamp,
	}
}
