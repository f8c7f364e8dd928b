// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	gfs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	udom "homecart/internal/domain/user"
)

// UserRepositoryFS persists user documents.
//
// IMPORTANT:
// - the doc id is always the Firebase Auth UID; no auto-generated ids here.
//   That is what keeps the auth account and the app profile in sync.
type UserRepositoryFS struct {
	Client     *gfs.Client
	Collection string
}

func NewUserRepositoryFS(client *gfs.Client, collection string) *UserRepositoryFS {
	if collection == "" {
		collection = "users"
	}
	return &UserRepositoryFS{Client: client, Collection: collection}
}

func (r *UserRepositoryFS) col() *gfs.CollectionRef {
	return r.Client.Collection(r.Collection)
}

// Exists reports whether a user document is present.
func (r *UserRepositoryFS) Exists(ctx context.Context, id string) (bool, error) {
	if r.Client == nil {
		return false, errors.New("firestore client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}
	_, err := r.col().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Upsert overwrites the full user document with the canonical snake_case
// shape. Overwrite (not merge) is deliberate: it is also the repair path
// that drops stray fields older script revisions left behind.
func (r *UserRepositoryFS) Upsert(ctx context.Context, u udom.User) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	if err := u.Validate(); err != nil {
		return err
	}
	_, err := r.col().Doc(u.ID).Set(ctx, userDoc(u))
	return err
}

// StripLegacyFields deletes camelCase leftovers from a user document using
// the field-deletion sentinel. Missing fields are not an error.
func (r *UserRepositoryFS) StripLegacyFields(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("firestore client is nil")
	}
	updates := make([]gfs.Update, 0, len(udom.LegacyFields()))
	for _, f := range udom.LegacyFields() {
		updates = append(updates, gfs.Update{Path: f, Value: gfs.Delete})
	}
	_, err := r.col().Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return udom.ErrNotFound
	}
	return err
}

// DeleteIDs batch-deletes user documents by id, e.g. obsolete hand-written
// demo ids replaced by real Auth UIDs.
func (r *UserRepositoryFS) DeleteIDs(ctx context.Context, ids []string) (int, error) {
	if r.Client == nil {
		return 0, errors.New("firestore client is nil")
	}
	w := NewBatchWriter(r.Client)
	return w.Delete(ctx, r.Collection, ids)
}

func userDoc(u udom.User) map[string]any {
	var profileImage any
	if u.ProfileImageURL != "" {
		profileImage = u.ProfileImageURL
	}

	stores := u.PreferredStores
	if stores == nil {
		stores = []string{}
	}
	favorites := u.FavoriteProducts
	if favorites == nil {
		favorites = []string{}
	}

	return map[string]any{
		"id":                u.ID,
		"name":              u.Name,
		"email":             u.Email,
		"household_id":      u.HouseholdID,
		"joined_at":         u.JoinedAt,
		"last_login_at":     u.LastLoginAt,
		"preferred_stores":  stores,
		"favorite_products": favorites,
		"weekly_budget":     u.WeeklyBudget,
		"is_admin":          u.IsAdmin,
		"profile_image_url": profileImage,
	}
}
