package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/domain"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store"
	"github.com/aussiebroadwan/tokenkeep/pkg/cryptox"
	"github.com/aussiebroadwan/tokenkeep/pkg/slogx"
)

// Negative outcomes of the credential check. They are results, not errors.
var (
	ResultBadCredentialRequest = domain.VerificationResult{
		IsVerified: false,
		Message:    "Missing headers or incorrect grant type",
		StatusCode: http.StatusBadRequest,
	}
	ResultClientNotFound = domain.VerificationResult{
		IsVerified: false,
		Message:    "Client ID not found",
		StatusCode: http.StatusOK,
	}
)

type ClientService struct {
	Store store.Store
}

// VerifyCredentials checks a client id/secret pair for the "token" grant.
//
// Malformed requests, unknown clients and wrong secrets come back as a
// result with IsVerified false. The error is non-nil only when the store
// failed, and is then always a *domain.StoreFault.
func (s *ClientService) VerifyCredentials(
	ctx context.Context,
	clientID, clientSecret, grantType string,
) (domain.VerificationResult, error) {
	if clientID == "" || clientSecret == "" || grantType != domain.GrantTypeToken {
		return ResultBadCredentialRequest, nil
	}

	l := slogx.FromContext(ctx)

	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ResultClientNotFound, nil
		}
		l.Info("client lookup failed", "client_id", clientID, "error", err)
		return domain.VerificationResult{}, &domain.StoreFault{Err: err}
	}

	valid := cryptox.VerifySecret(clientSecret, client.Salt, client.HashedSecret)
	message := "Secret is valid"
	if !valid {
		message = "Secret is not valid"
	}

	return domain.VerificationResult{
		IsVerified: valid,
		Message:    message,
		StatusCode: http.StatusOK,
	}, nil
}

// ProvisionClient creates a client record for clientID with a fresh salt.
// The plaintext secret is never stored.
func (s *ClientService) ProvisionClient(ctx context.Context, clientID, secret string) (domain.ClientRecord, error) {
	if clientID == "" || secret == "" {
		return domain.ClientRecord{}, errors.New("client id and secret are required")
	}

	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return domain.ClientRecord{}, err
	}

	record := domain.ClientRecord{
		ClientID:     clientID,
		Salt:         salt,
		HashedSecret: cryptox.HashSecret(secret, salt),
	}
	if err := s.Store.Clients().CreateClient(ctx, record); err != nil {
		return domain.ClientRecord{}, err
	}

	slogx.FromContext(ctx).Info("client provisioned", "client_id", clientID)
	return record, nil
}
