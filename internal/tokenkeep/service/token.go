package service

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/domain"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store"
	"github.com/aussiebroadwan/tokenkeep/pkg/cryptox"
	"github.com/aussiebroadwan/tokenkeep/pkg/slogx"
	"golang.org/x/sync/singleflight"
)

// ResultTokenNotFound is returned when no document carries the presented token.
var ResultTokenNotFound = domain.VerificationResult{
	IsVerified: false,
	Message:    "Could not find token in database",
	StatusCode: http.StatusOK,
}

// TokenService issues bearer tokens and verifies presented ones. Expired
// documents are deleted lazily, the first time a lookup finds them dead.
type TokenService struct {
	Store        store.Store
	Lifetime     time.Duration
	SecretLength int

	// Now defaults to time.Now. Tests pin it.
	Now func() time.Time

	issuing singleflight.Group
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// IssueOrReuse returns the client's live token if one exists, otherwise it
// mints and stores a new one.
//
// The lookup and the insert are separate store operations. Concurrent calls
// in this process for the same client and roles share one in-flight
// issuance, but separate processes can still each insert a document.
func (s *TokenService) IssueOrReuse(ctx context.Context, clientID string, roles []string) (domain.TokenDocument, error) {
	key := clientID + "\x00" + strings.Join(roles, ",")

	// One caller going away must not fail the others sharing the flight.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := s.issuing.Do(key, func() (any, error) {
		return s.issueOrReuse(flightCtx, clientID, roles)
	})
	if err != nil {
		return domain.TokenDocument{}, err
	}

	doc := v.(domain.TokenDocument)
	doc.Roles = slices.Clone(doc.Roles)
	return doc, nil
}

func (s *TokenService) issueOrReuse(ctx context.Context, clientID string, roles []string) (domain.TokenDocument, error) {
	l := slogx.FromContext(ctx).With("client_id", clientID)

	existing, err := s.Store.Tokens().FindTokenByClientID(ctx, clientID)
	switch {
	case err == nil:
		if s.IsTokenAlive(ctx, existing) {
			l.Info("reusing live token document", "token_id", existing.ID)
			return existing, nil
		}
	case errors.Is(err, store.ErrNotFound):
	default:
		l.Error("token lookup by client failed", "error", err)
		return domain.TokenDocument{}, &domain.StoreFault{Err: err}
	}

	doc := domain.NewTokenDocument(
		clientID,
		roles,
		cryptox.MustGenerateSecret(s.SecretLength),
		s.now(),
		s.Lifetime,
	)

	id, err := s.Store.Tokens().InsertToken(ctx, doc)
	if err != nil {
		l.Error("failed to insert token document", "error", err)
		return domain.TokenDocument{}, &domain.StoreFault{Err: err}
	}
	doc.ID = id

	l.Info("issued new token document", "token_id", id, "token_death", doc.TokenDeath)
	return doc, nil
}

// VerifyPresented looks up a presented bearer value, optionally prefixed
// with a scheme such as "Bearer ". Dead tokens are reaped on the way out.
// The error is non-nil only for store failures and is a *domain.StoreFault.
func (s *TokenService) VerifyPresented(ctx context.Context, raw string) (domain.VerificationResult, error) {
	l := slogx.FromContext(ctx)

	doc, err := s.Store.Tokens().FindTokenByValue(ctx, StripScheme(raw))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("token not found in store")
			return ResultTokenNotFound, nil
		}
		return domain.VerificationResult{}, &domain.StoreFault{Err: err}
	}

	if s.IsTokenAlive(ctx, doc) {
		return domain.TokenVerified, nil
	}
	return domain.TokenDead, nil
}

// IsTokenAlive reports whether doc is still live. A dead document is deleted
// from the store before returning false; a failed delete is logged and does
// not change the answer. Live documents cause no store traffic.
func (s *TokenService) IsTokenAlive(ctx context.Context, doc domain.TokenDocument) bool {
	l := slogx.FromContext(ctx).With("client_id", doc.ClientID, "token_id", doc.ID)

	if doc.IsAlive(s.now()) {
		l.Debug("token is alive")
		return true
	}

	l.Info("deleting expired token document")
	if err := s.Store.Tokens().DeleteTokenByID(context.WithoutCancel(ctx), doc.ID); err != nil {
		l.Error("expired token document was not deleted", "error", err)
	}
	return false
}

// StripScheme drops a leading scheme label such as "Bearer ". The value
// after the first space is used when present and non-empty; anything else
// is returned untouched.
func StripScheme(raw string) string {
	parts := strings.Split(raw, " ")
	if len(parts) > 1 && parts[1] != "" {
		return parts[1]
	}
	return raw
}
