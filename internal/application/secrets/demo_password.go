// internal/application/secrets/demo_password.go
package secrets

import (
	"context"
	"log/slog"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// DemoPassword resolves the shared password of the demo accounts.
// Preference order: Secret Manager secret (latest version), then fallback.
// The secret keeps the real password out of the repo; the fallback keeps a
// fresh project usable before the secret exists.
func DemoPassword(ctx context.Context, sm *secretmanager.Client, projectID, secretID, fallback string) string {
	if sm == nil || strings.TrimSpace(projectID) == "" || strings.TrimSpace(secretID) == "" {
		return fallback
	}

	name := "projects/" + projectID + "/secrets/" + secretID + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil || resp == nil || resp.Payload == nil {
		slog.Warn("demo password secret unavailable, using fallback", "secret", secretID, "err", err)
		return fallback
	}

	pw := strings.TrimSpace(string(resp.Payload.Data))
	if pw == "" {
		return fallback
	}
	return pw
}
