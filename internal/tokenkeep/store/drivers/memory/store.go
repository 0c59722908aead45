// Package memory is an in-process document store. It backs the service tests
// and AUTH_DATABASE_DRIVER=memory for local runs; nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/domain"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store"
	"github.com/aussiebroadwan/tokenkeep/pkg/idx"
)

// Hooks let tests inject faults. A non-nil return from a hook is returned
// from the matching operation before any state is touched.
type Hooks struct {
	GetClient   func(clientID string) error
	FindToken   func(field, value string) error
	InsertToken func(doc domain.TokenDocument) error
	DeleteToken func(id string) error
}

type Store struct {
	mu      sync.RWMutex
	clients map[string]domain.ClientRecord
	tokens  []domain.TokenDocument // insertion order

	hooks Hooks

	inserts atomic.Int64
	deletes atomic.Int64
}

var _ store.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{clients: make(map[string]domain.ClientRecord)}
}

// SetHooks replaces the fault injection hooks.
func (s *Store) SetHooks(h Hooks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = h
}

// Inserts counts InsertToken attempts, including ones failed by a hook.
func (s *Store) Inserts() int64 { return s.inserts.Load() }

// Deletes counts DeleteTokenByID attempts, including ones failed by a hook.
func (s *Store) Deletes() int64 { return s.deletes.Load() }

// TokenCount returns the number of stored token documents.
func (s *Store) TokenCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}

func (s *Store) Clients() store.Clients { return &clientsRepo{s: s} }
func (s *Store) Tokens() store.Tokens   { return &tokensRepo{s: s} }

func (s *Store) ApplyMigrations() error         { return nil }
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }
func (s *Store) Close() error                   { return nil }

type clientsRepo struct {
	s *Store
}

func (r *clientsRepo) GetClientByID(ctx context.Context, clientID string) (domain.ClientRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if h := r.s.hooks.GetClient; h != nil {
		if err := h(clientID); err != nil {
			return domain.ClientRecord{}, err
		}
	}

	c, ok := r.s.clients[clientID]
	if !ok {
		return domain.ClientRecord{}, store.ErrNotFound
	}
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.ClientRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[c.ClientID]; ok {
		return store.ErrAlreadyExists
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	r.s.clients[c.ClientID] = c
	return nil
}

type tokensRepo struct {
	s *Store
}

func (r *tokensRepo) FindTokenByClientID(ctx context.Context, clientID string) (domain.TokenDocument, error) {
	return r.find("client_id", clientID, func(d domain.TokenDocument) bool { return d.ClientID == clientID })
}

func (r *tokensRepo) FindTokenByValue(ctx context.Context, value string) (domain.TokenDocument, error) {
	return r.find("token", value, func(d domain.TokenDocument) bool { return d.Token == value })
}

// find returns the newest matching document, mirroring the SQL drivers'
// ORDER BY token_birth DESC.
func (r *tokensRepo) find(field, value string, match func(domain.TokenDocument) bool) (domain.TokenDocument, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if h := r.s.hooks.FindToken; h != nil {
		if err := h(field, value); err != nil {
			return domain.TokenDocument{}, err
		}
	}

	var (
		found domain.TokenDocument
		ok    bool
	)
	for _, d := range r.s.tokens {
		if match(d) && (!ok || d.TokenBirth >= found.TokenBirth) {
			found, ok = d, true
		}
	}
	if !ok {
		return domain.TokenDocument{}, store.ErrNotFound
	}

	found.Roles = append([]string{}, found.Roles...)
	return found, nil
}

func (r *tokensRepo) InsertToken(ctx context.Context, doc domain.TokenDocument) (string, error) {
	r.s.inserts.Add(1)

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if h := r.s.hooks.InsertToken; h != nil {
		if err := h(doc); err != nil {
			return "", err
		}
	}

	doc.ID = idx.New().String()
	doc.Roles = append([]string{}, doc.Roles...)
	r.s.tokens = append(r.s.tokens, doc)
	return doc.ID, nil
}

func (r *tokensRepo) DeleteTokenByID(ctx context.Context, id string) error {
	r.s.deletes.Add(1)

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if h := r.s.hooks.DeleteToken; h != nil {
		if err := h(id); err != nil {
			return err
		}
	}

	for i, d := range r.s.tokens {
		if d.ID == id {
			r.s.tokens = append(r.s.tokens[:i], r.s.tokens[i+1:]...)
			return nil
		}
	}
	return nil
}
