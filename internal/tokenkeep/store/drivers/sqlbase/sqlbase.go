// Package sqlbase holds the collection repositories shared by the SQL drivers.
// Queries are written with '?' placeholders and rebound for the driver's
// bind style, so sqlite and postgres run the same statements.
package sqlbase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/domain"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store"
	"github.com/aussiebroadwan/tokenkeep/pkg/idx"
	"github.com/jmoiron/sqlx"
)

type Store struct {
	DB *sqlx.DB

	// IsDuplicate reports whether err is a unique constraint violation.
	IsDuplicate func(error) bool
}

func (s *Store) Clients() store.Clients { return &clientsRepo{s: s} }
func (s *Store) Tokens() store.Tokens   { return &tokensRepo{s: s} }

func (s *Store) Close() error { return s.DB.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

type clientRow struct {
	ClientID     string `db:"client_id"`
	Salt         string `db:"salt"`
	HashedSecret string `db:"hashed_secret"`
	CreatedAt    int64  `db:"created_at"`
}

type tokenRow struct {
	ID         string `db:"id"`
	ClientID   string `db:"client_id"`
	Roles      string `db:"roles"`
	Token      string `db:"token"`
	TokenBirth int64  `db:"token_birth"`
	TokenDeath int64  `db:"token_death"`
}

func mapClient(row clientRow) domain.ClientRecord {
	return domain.ClientRecord{
		ClientID:     row.ClientID,
		Salt:         row.Salt,
		HashedSecret: row.HashedSecret,
		CreatedAt:    time.UnixMilli(row.CreatedAt).UTC(),
	}
}

func mapToken(row tokenRow) (domain.TokenDocument, error) {
	roles, err := decodeRoles(row.Roles)
	if err != nil {
		return domain.TokenDocument{}, err
	}
	return domain.TokenDocument{
		ID:         row.ID,
		ClientID:   row.ClientID,
		Roles:      roles,
		Token:      row.Token,
		TokenBirth: row.TokenBirth,
		TokenDeath: row.TokenDeath,
	}, nil
}

// Roles are kept as a JSON array in a TEXT column so order and embedded
// whitespace survive the round trip.
func encodeRoles(roles []string) (string, error) {
	if roles == nil {
		roles = []string{}
	}
	b, err := json.Marshal(roles)
	if err != nil {
		return "", fmt.Errorf("encode roles: %w", err)
	}
	return string(b), nil
}

func decodeRoles(raw string) ([]string, error) {
	roles := []string{}
	if raw == "" {
		return roles, nil
	}
	if err := json.Unmarshal([]byte(raw), &roles); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	if roles == nil {
		roles = []string{}
	}
	return roles, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

type clientsRepo struct {
	s *Store
}

func (r *clientsRepo) GetClientByID(ctx context.Context, clientID string) (domain.ClientRecord, error) {
	const q = `SELECT client_id, salt, hashed_secret, created_at FROM clients WHERE client_id = ?`

	var row clientRow
	if err := r.s.DB.GetContext(ctx, &row, r.s.DB.Rebind(q), clientID); err != nil {
		return domain.ClientRecord{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.ClientRecord) error {
	const q = `INSERT INTO clients (client_id, salt, hashed_secret, created_at) VALUES (?, ?, ?, ?)`

	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.s.DB.ExecContext(ctx, r.s.DB.Rebind(q), c.ClientID, c.Salt, c.HashedSecret, createdAt.UnixMilli())
	if err != nil {
		if r.s.IsDuplicate != nil && r.s.IsDuplicate(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

type tokensRepo struct {
	s *Store
}

const selectToken = `SELECT id, client_id, roles, token, token_birth, token_death FROM tokens`

func (r *tokensRepo) FindTokenByClientID(ctx context.Context, clientID string) (domain.TokenDocument, error) {
	return r.findOne(ctx, selectToken+` WHERE client_id = ? ORDER BY token_birth DESC LIMIT 1`, clientID)
}

func (r *tokensRepo) FindTokenByValue(ctx context.Context, value string) (domain.TokenDocument, error) {
	return r.findOne(ctx, selectToken+` WHERE token = ? ORDER BY token_birth DESC LIMIT 1`, value)
}

func (r *tokensRepo) findOne(ctx context.Context, q string, arg string) (domain.TokenDocument, error) {
	var row tokenRow
	if err := r.s.DB.GetContext(ctx, &row, r.s.DB.Rebind(q), arg); err != nil {
		return domain.TokenDocument{}, mapNotFound(err)
	}
	return mapToken(row)
}

func (r *tokensRepo) InsertToken(ctx context.Context, doc domain.TokenDocument) (string, error) {
	const q = `INSERT INTO tokens (id, client_id, roles, token, token_birth, token_death)
		VALUES (:id, :client_id, :roles, :token, :token_birth, :token_death)`

	roles, err := encodeRoles(doc.Roles)
	if err != nil {
		return "", err
	}

	row := tokenRow{
		ID:         idx.New().String(),
		ClientID:   doc.ClientID,
		Roles:      roles,
		Token:      doc.Token,
		TokenBirth: doc.TokenBirth,
		TokenDeath: doc.TokenDeath,
	}
	if _, err := r.s.DB.NamedExecContext(ctx, q, row); err != nil {
		return "", fmt.Errorf("insert token: %w", err)
	}
	return row.ID, nil
}

func (r *tokensRepo) DeleteTokenByID(ctx context.Context, id string) error {
	const q = `DELETE FROM tokens WHERE id = ?`

	if _, err := r.s.DB.ExecContext(ctx, r.s.DB.Rebind(q), id); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
