package domain

import (
	"strings"
	"time"
)

// TokenDelimiter separates the random secret from the plaintext role trailer.
const TokenDelimiter = "X"

// DefaultRoles are granted to tokens minted through the client secret flow.
var DefaultRoles = []string{"app"}

// TokenDocument is an issued bearer token. Birth and death are Unix
// milliseconds. ID is empty until the store assigns one on insert.
type TokenDocument struct {
	ID         string   `json:"_id,omitempty"`
	ClientID   string   `json:"client_id"`
	Roles      []string `json:"roles"`
	Token      string   `json:"token"`
	TokenBirth int64    `json:"token_birth"`
	TokenDeath int64    `json:"token_death"`
}

// NewTokenDocument builds an uninserted document whose token is
// "<secret>X<comma-joined roles>". The trailer is a convenience encoding and
// carries no integrity protection.
func NewTokenDocument(clientID string, roles []string, secret string, now time.Time, lifetime time.Duration) TokenDocument {
	birth := now.UnixMilli()
	return TokenDocument{
		ClientID:   clientID,
		Roles:      append([]string{}, roles...),
		Token:      secret + TokenDelimiter + strings.Join(roles, ","),
		TokenBirth: birth,
		TokenDeath: birth + lifetime.Milliseconds(),
	}
}

// IsAlive reports whether now is strictly before the token's death.
func (d TokenDocument) IsAlive(now time.Time) bool {
	return now.UnixMilli() < d.TokenDeath
}
