// internal/platform/di/shared/infra.go
package shared

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	appcfg "homecart/internal/infra/config"
)

// Infra is the per-script client container.
// - owns external clients (Firestore/FirebaseAuth/GCS/SecretManager)
// - built once in main and passed by parameter; no package-level client state
//
// Firestore is strict (a script without a store is useless). Auth, GCS and
// SecretManager are best-effort: scripts that need them check for nil and
// fail with a clear message.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	Firestore     *firestore.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	GCS           *storage.Client
	SecretManager *secretmanager.Client
}

// NewInfra initializes the clients from env configuration.
// A configured credential file that does not exist is a fatal setup error:
// better to stop before any data operation than to fall into the wrong
// project via ADC.
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()

	projectID := strings.TrimSpace(cfg.ProjectID)
	if projectID == "" {
		return nil, errors.New("shared.infra: project id is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	inf := &Infra{
		Config:    cfg,
		ProjectID: projectID,
	}

	credFile := strings.TrimSpace(cfg.CredentialsFile)
	var clientOpts []option.ClientOption
	if credFile != "" {
		if _, err := os.Stat(credFile); err != nil {
			return nil, fmt.Errorf(
				"shared.infra: service account file %s not found; download it from the Firebase console (Project settings > Service accounts) and set FIREBASE_SERVICE_ACCOUNT: %w",
				redactPath(credFile), err)
		}
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		slog.Info("using credentials file for GCP clients", "path", redactPath(credFile))
	} else {
		slog.Info("using Application Default Credentials (no credentials file configured)")
	}

	// 1) Firestore (strict)
	fsClient, err := firestore.NewClient(ctx, projectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("shared.infra: firestore.NewClient: %w", err)
	}
	inf.Firestore = fsClient

	// 2) Firebase App / Auth (best-effort)
	{
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, clientOpts...)
		if err != nil {
			slog.Warn("firebase app unavailable", "err", err)
		} else {
			inf.FirebaseApp = app
			authClient, err := app.Auth(ctx)
			if err != nil {
				slog.Warn("firebase auth unavailable", "err", err)
			} else {
				inf.FirebaseAuth = authClient
			}
		}
	}

	// 3) GCS (best-effort; only export_products needs it)
	{
		gcs, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			slog.Warn("gcs client unavailable", "err", err)
		} else {
			inf.GCS = gcs
		}
	}

	// 4) Secret Manager (best-effort; demo password falls back to env)
	{
		sm, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			slog.Warn("secret manager client unavailable", "err", err)
		} else {
			inf.SecretManager = sm
		}
	}

	return inf, nil
}

// Close releases every owned client. Safe on a partially built Infra.
func (inf *Infra) Close() {
	if inf == nil {
		return
	}
	if inf.Firestore != nil {
		_ = inf.Firestore.Close()
	}
	if inf.GCS != nil {
		_ = inf.GCS.Close()
	}
	if inf.SecretManager != nil {
		_ = inf.SecretManager.Close()
	}
}

// redactPath keeps only the base name so logs do not leak local directory
// layouts.
func redactPath(p string) string {
	if p == "" {
		return ""
	}
	return filepath.Base(p)
}
