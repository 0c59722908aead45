// Package storetest is a conformance suite every store driver runs against
// itself, so the service sees the same gateway semantics on each backend.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/domain"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store"
	"github.com/stretchr/testify/require"
)

// Opener returns a fresh, migrated, empty store.
type Opener func(t *testing.T) store.Store

func Run(t *testing.T, open Opener) {
	t.Run("clients", func(t *testing.T) { testClients(t, open(t)) })
	t.Run("find by client id", func(t *testing.T) { testFindByClientID(t, open(t)) })
	t.Run("find by value", func(t *testing.T) { testFindByValue(t, open(t)) })
	t.Run("roles round trip", func(t *testing.T) { testRolesRoundTrip(t, open(t)) })
	t.Run("delete", func(t *testing.T) { testDelete(t, open(t)) })
	t.Run("ping", func(t *testing.T) { require.NoError(t, open(t).Ping(context.Background())) })
}

func testClients(t *testing.T, st store.Store) {
	ctx := context.Background()

	_, err := st.Clients().GetClientByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	rec := domain.ClientRecord{
		ClientID:     "client-a",
		Salt:         "salt",
		HashedSecret: "hash",
		CreatedAt:    time.UnixMilli(1_700_000_000_000).UTC(),
	}
	require.NoError(t, st.Clients().CreateClient(ctx, rec))

	got, err := st.Clients().GetClientByID(ctx, "client-a")
	require.NoError(t, err)
	require.Equal(t, rec, got)

	err = st.Clients().CreateClient(ctx, rec)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func testFindByClientID(t *testing.T, st store.Store) {
	ctx := context.Background()

	_, err := st.Tokens().FindTokenByClientID(ctx, "client-a")
	require.ErrorIs(t, err, store.ErrNotFound)

	older := domain.TokenDocument{
		ClientID: "client-a", Roles: []string{"app"}, Token: "oldXapp",
		TokenBirth: 1000, TokenDeath: 2000,
	}
	newer := domain.TokenDocument{
		ClientID: "client-a", Roles: []string{"app", "ops"}, Token: "newXapp,ops",
		TokenBirth: 5000, TokenDeath: 6000,
	}
	other := domain.TokenDocument{
		ClientID: "client-b", Roles: []string{"app"}, Token: "otherXapp",
		TokenBirth: 9000, TokenDeath: 9999,
	}

	for _, d := range []domain.TokenDocument{older, newer, other} {
		id, err := st.Tokens().InsertToken(ctx, d)
		require.NoError(t, err)
		require.NotEmpty(t, id, "store must assign an id")
	}

	got, err := st.Tokens().FindTokenByClientID(ctx, "client-a")
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)
	require.Equal(t, "newXapp,ops", got.Token, "newest document wins")
	require.Equal(t, []string{"app", "ops"}, got.Roles)
	require.Equal(t, int64(5000), got.TokenBirth)
	require.Equal(t, int64(6000), got.TokenDeath)
}

func testFindByValue(t *testing.T, st store.Store) {
	ctx := context.Background()

	doc := domain.TokenDocument{
		ID:       "ignored-by-store",
		ClientID: "client-a", Roles: []string{"app"}, Token: "abc123Xapp",
		TokenBirth: 1, TokenDeath: 2,
	}
	id, err := st.Tokens().InsertToken(ctx, doc)
	require.NoError(t, err)
	require.NotEqual(t, "ignored-by-store", id)

	got, err := st.Tokens().FindTokenByValue(ctx, "abc123Xapp")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "client-a", got.ClientID)

	_, err = st.Tokens().FindTokenByValue(ctx, "abc123")
	require.ErrorIs(t, err, store.ErrNotFound, "lookup is exact equality")
}

func testDelete(t *testing.T, st store.Store) {
	ctx := context.Background()

	id, err := st.Tokens().InsertToken(ctx, domain.TokenDocument{
		ClientID: "client-a", Roles: []string{"app"}, Token: "goneXapp",
		TokenBirth: 1, TokenDeath: 2,
	})
	require.NoError(t, err)

	require.NoError(t, st.Tokens().DeleteTokenByID(ctx, id))
	_, err = st.Tokens().FindTokenByValue(ctx, "goneXapp")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Tokens().DeleteTokenByID(ctx, id), "deleting twice is not an error")
}

func testRolesRoundTrip(t *testing.T, st store.Store) {
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
		roles []string
		want  []string
	}{
		{"multi-word role", "aXread only,app", []string{"read only", "app"}, []string{"read only", "app"}},
		{"order kept", "bXops,app", []string{"ops", "app"}, []string{"ops", "app"}},
		{"no roles", "cX", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.Tokens().InsertToken(ctx, domain.TokenDocument{
				ClientID: "client-a", Roles: tt.roles, Token: tt.token,
				TokenBirth: 1, TokenDeath: 2,
			})
			require.NoError(t, err)

			got, err := st.Tokens().FindTokenByValue(ctx, tt.token)
			require.NoError(t, err)
			require.NotNil(t, got.Roles)
			require.Equal(t, tt.want, got.Roles)
		})
	}
}
