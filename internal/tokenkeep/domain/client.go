package domain

import "time"

// ClientRecord is a provisioned client. HashedSecret is HMAC-SHA512(Salt, secret)
// in hex. Records are created out of band and never mutated by the service.
type ClientRecord struct {
	ClientID     string
	Salt         string
	HashedSecret string
	CreatedAt    time.Time
}

// GrantTypeToken is the only grant the credential check accepts.
const GrantTypeToken = "token"
