// internal/adapters/out/auth/client.go
package auth

import (
	"context"
	"errors"

	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
)

// PageSize is the listing page size of the auth provider.
const PageSize = 100

// Adapter wraps the Firebase Auth operations the admin scripts consume.
type Adapter struct {
	Client *firebaseauth.Client
}

func NewAdapter(client *firebaseauth.Client) *Adapter {
	return &Adapter{Client: client}
}

// Account is the slice of an auth record the scripts care about.
type Account struct {
	UID           string
	Email         string
	DisplayName   string
	CreatedAtMS   int64
	LastLoginAtMS int64
}

// EnsureUser returns the account for email, creating it when the provider
// reports user-not-found. Any other lookup error is returned as-is: a
// transient failure must not trigger a duplicate create attempt.
func (a *Adapter) EnsureUser(ctx context.Context, email, password, displayName string) (Account, bool, error) {
	if a == nil || a.Client == nil {
		return Account{}, false, errors.New("auth: firebase auth client is nil")
	}

	rec, err := a.Client.GetUserByEmail(ctx, email)
	if err == nil {
		return accountOf(rec), false, nil
	}
	if !firebaseauth.IsUserNotFound(err) {
		return Account{}, false, err
	}

	params := (&firebaseauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(true)

	created, err := a.Client.CreateUser(ctx, params)
	if err != nil {
		return Account{}, false, err
	}
	return accountOf(created), true, nil
}

// SetDisplayName updates the display name of an existing account.
func (a *Adapter) SetDisplayName(ctx context.Context, uid, displayName string) error {
	if a == nil || a.Client == nil {
		return errors.New("auth: firebase auth client is nil")
	}
	_, err := a.Client.UpdateUser(ctx, uid, (&firebaseauth.UserToUpdate{}).DisplayName(displayName))
	return err
}

// ByEmail looks up one account. Not-found is reported through the second
// return value, not an error.
func (a *Adapter) ByEmail(ctx context.Context, email string) (Account, bool, error) {
	if a == nil || a.Client == nil {
		return Account{}, false, errors.New("auth: firebase auth client is nil")
	}
	rec, err := a.Client.GetUserByEmail(ctx, email)
	if firebaseauth.IsUserNotFound(err) {
		return Account{}, false, nil
	}
	if err != nil {
		return Account{}, false, err
	}
	return accountOf(rec), true, nil
}

// DeleteUser removes one account by UID.
func (a *Adapter) DeleteUser(ctx context.Context, uid string) error {
	if a == nil || a.Client == nil {
		return errors.New("auth: firebase auth client is nil")
	}
	return a.Client.DeleteUser(ctx, uid)
}

// ListAll pages through every account, PageSize records per provider call.
func (a *Adapter) ListAll(ctx context.Context) ([]Account, error) {
	if a == nil || a.Client == nil {
		return nil, errors.New("auth: firebase auth client is nil")
	}

	var out []Account
	pager := iterator.NewPager(a.Client.Users(ctx, ""), PageSize, "")
	for {
		var page []*firebaseauth.ExportedUserRecord
		next, err := pager.NextPage(&page)
		if err != nil {
			return nil, err
		}
		for _, rec := range page {
			out = append(out, accountOf(rec.UserRecord))
		}
		if next == "" {
			break
		}
	}
	return out, nil
}

func accountOf(rec *firebaseauth.UserRecord) Account {
	acc := Account{
		UID:         rec.UID,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
	}
	if rec.UserMetadata != nil {
		acc.CreatedAtMS = rec.UserMetadata.CreationTimestamp
		acc.LastLoginAtMS = rec.UserMetadata.LastLogInTimestamp
	}
	return acc
}
