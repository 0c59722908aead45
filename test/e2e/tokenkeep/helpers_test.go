package tokenkeep_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/app"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/service"
	"github.com/aussiebroadwan/tokenkeep/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

/*
 * End-to-end helpers. Each test gets its own sqlite file, a provisioned
 * client, and the fully wired application behind an httptest server.
 */

const (
	clientID     = "e2e-client"
	clientSecret = "e2e-secret-0123456789"
)

// setupService starts tokenkeep with the given token lifetime and returns an
// SDK client pointed at it.
func setupService(t *testing.T, lifetime time.Duration) *authsdk.SDKClient {
	t.Helper()
	ctx := context.Background()

	db := app.DatabaseConfig{
		Driver: app.DriverSQLite,
		DSN:    "file:" + filepath.Join(t.TempDir(), "tokenkeep.db") + "?_pragma=busy_timeout(5000)",
	}

	provisioning, err := app.OpenStore(ctx, db)
	require.NoError(t, err)
	_, err = (&service.ClientService{Store: provisioning}).ProvisionClient(ctx, clientID, clientSecret)
	require.NoError(t, err)
	require.NoError(t, provisioning.Close())

	application, err := app.New(app.Config{
		TokenLifetime:       lifetime,
		TokenLength:         32,
		Database:            db,
		Env:                 "test",
		LogLevel:            "warn",
		LogFormat:           "json",
		ShutdownGracePeriod: time.Second,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Shutdown()
	})

	return authsdk.NewSDKClient(srv.URL)
}
