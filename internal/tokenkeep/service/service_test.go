package service

import (
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store/drivers/memory"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// clock is a settable time source for TokenService.Now.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.UnixMilli(1_700_000_000_000)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTokenService(t *testing.T, lifetime time.Duration) (*TokenService, *memory.Store, *clock) {
	t.Helper()

	st := memory.NewStore()
	clk := newClock()
	return &TokenService{
		Store:        st,
		Lifetime:     lifetime,
		SecretLength: 32,
		Now:          clk.Now,
	}, st, clk
}

func newSQLiteStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}
