package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the document store gateway. Drivers (memory, sqlite, postgres)
// implement it and expose one sub-repository per logical collection. Every
// mutation is a single atomic statement; there are no multi-step transactions.
type Store interface {
	Clients() Clients
	Tokens() Tokens

	ApplyMigrations() error

	// Ping verifies the backing connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// Clients is the clients collection, keyed by client_id.
type Clients interface {
	// GetClientByID returns ErrNotFound when no record matches.
	GetClientByID(ctx context.Context, clientID string) (domain.ClientRecord, error)

	// CreateClient provisions a record. Returns ErrAlreadyExists on a duplicate client_id.
	CreateClient(ctx context.Context, c domain.ClientRecord) error
}

// Tokens is the tokens collection.
type Tokens interface {
	// FindTokenByClientID returns the newest document for the client, or ErrNotFound.
	FindTokenByClientID(ctx context.Context, clientID string) (domain.TokenDocument, error)

	// FindTokenByValue returns the document whose token equals value, or ErrNotFound.
	FindTokenByValue(ctx context.Context, value string) (domain.TokenDocument, error)

	// InsertToken stores the document and returns the id the store assigned.
	// Any ID already set on the document is ignored.
	InsertToken(ctx context.Context, doc domain.TokenDocument) (string, error)

	// DeleteTokenByID removes a document. Deleting a missing id is not an error.
	DeleteTokenByID(ctx context.Context, id string) error
}
