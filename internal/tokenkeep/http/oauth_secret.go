package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/domain"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/service"
	"github.com/aussiebroadwan/tokenkeep/pkg/httpx"
	"github.com/aussiebroadwan/tokenkeep/pkg/slogx"
)

// SecretHandler serves GET /oauth/secret.
type SecretHandler struct {
	ClientService *service.ClientService
	TokenService  *service.TokenService
	Metrics       *Metrics
}

// ServeHTTP godoc
//
//	@Summary		Exchange client credentials for a bearer token
//	@Description	Verifies the client id and secret, then returns the client's live token or mints a new one.
//	@Description	Refused credentials come back as a verification result rather than a token.
//	@Tags			OAuth
//	@Produce		json
//	@Param			client_id		query		string						true	"Client identifier"
//	@Param			client_secret	query		string						true	"Client secret"
//	@Param			grant_type		query		string						true	"Grant type"	Enums(token)
//	@Success		200				{object}	authsdk.TokenDocument		"Issued or reused token document"
//	@Failure		400				{object}	authsdk.VerificationResult	"Missing parameters or wrong grant type"
//	@Failure		500				{string}	string						"Document store failure"
//	@Header			200				{string}	Cache-Control				"no-store"
//	@Router			/oauth/secret [get].
func (h *SecretHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "secret"
	ctx := r.Context()

	q := r.URL.Query()
	clientID := q.Get("client_id")
	if clientID == "" {
		h.Metrics.Outcome(op, OutcomeBadRequest)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.ClientService.VerifyCredentials(ctx, clientID, q.Get("client_secret"), q.Get("grant_type"))
	if err != nil {
		h.fail(ctx, w, err)
		return
	}
	if !res.IsVerified {
		outcome := OutcomeRejected
		if res.StatusCode == http.StatusBadRequest {
			outcome = OutcomeBadRequest
		}
		h.Metrics.Outcome(op, outcome)
		httpx.WriteJSON(w, res.StatusCode, res)
		return
	}

	doc, err := h.TokenService.IssueOrReuse(ctx, clientID, domain.DefaultRoles)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	h.Metrics.Outcome(op, OutcomeIssued)
	httpx.WriteJSON(w, http.StatusOK, doc)
}

func (h *SecretHandler) fail(ctx context.Context, w http.ResponseWriter, err error) {
	log := slogx.FromContext(ctx)

	var fault *domain.StoreFault
	if errors.As(err, &fault) {
		log.Info("secret exchange failed on store fault", "error", err)
		h.Metrics.Outcome("secret", OutcomeFault)
	} else {
		log.Error("secret exchange failed", "error", err)
		h.Metrics.Outcome("secret", OutcomeError)
	}
	w.WriteHeader(http.StatusInternalServerError)
}
