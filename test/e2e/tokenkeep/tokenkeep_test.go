package tokenkeep_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/tokenkeep/pkg/authsdk"
	"github.com/aussiebroadwan/tokenkeep/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	client := setupService(t, time.Hour)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
}

// TestTokenRoundTrip issues a token, reuses it, and verifies it.
func TestTokenRoundTrip(t *testing.T) {
	client := setupService(t, time.Hour)

	doc, err := client.RequestToken(t.Context(), clientID, clientSecret)
	require.NoError(t, err)
	require.Equal(t, clientID, doc.ClientID)
	require.Equal(t, []string{"app"}, doc.Roles)
	require.True(t, strings.HasSuffix(doc.Token, "Xapp"))
	require.Len(t, strings.TrimSuffix(doc.Token, "Xapp"), 32)
	require.Equal(t, time.Hour.Milliseconds(), doc.TokenDeath-doc.TokenBirth)

	again, err := client.RequestToken(t.Context(), clientID, clientSecret)
	require.NoError(t, err)
	require.Equal(t, doc.Token, again.Token, "a live token is reused")
	require.Equal(t, doc.ID, again.ID)

	res, err := client.VerifyToken(t.Context(), doc.Token)
	require.NoError(t, err)
	require.Equal(t, authsdk.VerificationResult{
		IsVerified: true,
		Message:    "Token is verified",
		StatusCode: http.StatusOK,
	}, *res)

	res, err = client.VerifyToken(t.Context(), "not-a-token")
	require.NoError(t, err)
	require.False(t, res.IsVerified)
	require.Equal(t, "Could not find token in database", res.Message)
}

func TestRejectedCredentials(t *testing.T) {
	client := setupService(t, time.Hour)

	_, err := client.RequestToken(t.Context(), clientID, "wrong")
	var rejected *authsdk.RejectedError
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, "Secret is not valid", rejected.Result.Message)

	_, err = client.RequestToken(t.Context(), "nobody", clientSecret)
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, "Client ID not found", rejected.Result.Message)

	_, err = client.RequestToken(t.Context(), clientID, "")
	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

// TestTokenExpiry waits out a one second lifetime.
func TestTokenExpiry(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a token to expire")
	}
	client := setupService(t, time.Second)

	doc, err := client.RequestToken(t.Context(), clientID, clientSecret)
	require.NoError(t, err)

	res, err := client.VerifyToken(t.Context(), doc.Token)
	require.NoError(t, err)
	require.True(t, res.IsVerified)

	time.Sleep(1100 * time.Millisecond)

	res, err = client.VerifyToken(t.Context(), doc.Token)
	require.NoError(t, err)
	require.False(t, res.IsVerified)
	require.Equal(t, "Token is dead", res.Message)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// The dead document was reaped on the way out.
	res, err = client.VerifyToken(t.Context(), doc.Token)
	require.NoError(t, err)
	require.Equal(t, "Could not find token in database", res.Message)

	fresh, err := client.RequestToken(t.Context(), clientID, clientSecret)
	require.NoError(t, err)
	require.NotEqual(t, doc.Token, fresh.Token)
}

// TestGuardedResourceServer mounts httpx.AuthnMiddleware backed by the SDK,
// the way a downstream service would.
func TestGuardedResourceServer(t *testing.T) {
	client := setupService(t, time.Hour)

	resource := httptest.NewServer(httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			httpx.WriteText(w, http.StatusOK, "report")
		}),
		httpx.AuthnMiddleware(client),
	))
	t.Cleanup(resource.Close)

	call := func(ctx context.Context, token string) int {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, resource.URL, nil)
		require.NoError(t, err)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	doc, err := client.RequestToken(t.Context(), clientID, clientSecret)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, call(t.Context(), doc.Token))
	require.Equal(t, http.StatusUnauthorized, call(t.Context(), "forged"))
	require.Equal(t, http.StatusUnauthorized, call(t.Context(), ""))
}

func TestUnderConstruction(t *testing.T) {
	client := setupService(t, time.Hour)

	for _, path := range []string{"/oauth/login", "/oauth/loginRedirect", "/oauth/verifyUpstreamToken"} {
		resp, err := client.HTTPClient.Get(client.BaseURL + path)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
