package authsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *SDKClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewSDKClient(srv.URL + "/")
}

func TestRequestToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns the token document", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/oauth/secret", r.URL.Path)
			require.Equal(t, "client-a", r.URL.Query().Get("client_id"))
			require.Equal(t, "s3cret", r.URL.Query().Get("client_secret"))
			require.Equal(t, "token", r.URL.Query().Get("grant_type"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"_id":"01J","client_id":"client-a","roles":["app"],"token":"abcXapp","token_birth":1,"token_death":2}`))
		})

		doc, err := c.RequestToken(ctx, "client-a", "s3cret")
		require.NoError(t, err)
		require.Equal(t, &TokenDocument{
			ID:         "01J",
			ClientID:   "client-a",
			Roles:      []string{"app"},
			Token:      "abcXapp",
			TokenBirth: 1,
			TokenDeath: 2,
		}, doc)
	})

	t.Run("negative result on 200", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"isVerified":false,"message":"Secret is not valid","statusCode":200}`))
		})

		_, err := c.RequestToken(ctx, "client-a", "wrong")
		var rejected *RejectedError
		require.ErrorAs(t, err, &rejected)
		require.Equal(t, "Secret is not valid", rejected.Result.Message)
	})

	t.Run("bad request", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"isVerified":false,"message":"Missing headers or incorrect grant type","statusCode":400}`))
		})

		_, err := c.RequestToken(ctx, "client-a", "")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "Missing headers or incorrect grant type", apiErr.Message)
	})
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer live":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"isVerified":true,"message":"Token is verified","statusCode":200}`))
		case "Bearer dead":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"isVerified":false,"message":"Token is dead","statusCode":401}`))
		default:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("database is unreachable"))
		}
	})

	res, err := c.VerifyToken(ctx, "live")
	require.NoError(t, err)
	require.True(t, res.IsVerified)

	res, err = c.VerifyToken(ctx, "dead")
	require.NoError(t, err)
	require.False(t, res.IsVerified)
	require.Equal(t, "Token is dead", res.Message)

	ok, err := c.IsTokenVerified(ctx, "live")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = c.VerifyToken(ctx, "fault")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, "database is unreachable", apiErr.Message)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/readyz" {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"degraded","checks":{"database":"error: closed"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok","version":"dev"}`))
	})

	live, err := c.GetLiveness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := c.GetReadiness(context.Background())
	require.ErrorIs(t, err, ErrNotReady)
	require.ErrorContains(t, err, "database error: closed")
	require.NotNil(t, ready)
	require.Equal(t, "degraded", ready.Status)
}

func TestHealthUnexpectedStatus(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.GetReadiness(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}
