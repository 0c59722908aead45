package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/domain"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/service"
	"github.com/aussiebroadwan/tokenkeep/pkg/httpx"
	"github.com/aussiebroadwan/tokenkeep/pkg/slogx"
)

// VerifyTokenHandler serves GET /oauth/verifyToken.
type VerifyTokenHandler struct {
	TokenService *service.TokenService
	Metrics      *Metrics
}

// ServeHTTP godoc
//
//	@Summary		Verify a bearer token
//	@Description	Looks up the presented token. The token query parameter wins over the Authorization header.
//	@Description	A dead token is deleted from the store and reported with status 401.
//	@Tags			OAuth
//	@Produce		json
//	@Param			token			query		string						false	"Bearer token, with or without a scheme prefix"
//	@Param			Authorization	header		string						false	"Bearer {token}"
//	@Success		200				{object}	authsdk.VerificationResult	"Verified, or not found"
//	@Failure		400				{string}	string						"Missing token header"
//	@Failure		401				{object}	authsdk.VerificationResult	"Token is dead"
//	@Failure		500				{string}	string						"Document store failure"
//	@Router			/oauth/verifyToken [get].
func (h *VerifyTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "verify_token"
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	raw := r.URL.Query().Get("token")
	if raw == "" {
		raw = r.Header.Get("Authorization")
	}
	if raw == "" {
		h.Metrics.Outcome(op, OutcomeBadRequest)
		httpx.WriteText(w, http.StatusBadRequest, "Missing token header")
		return
	}

	res, err := h.TokenService.VerifyPresented(ctx, raw)
	if err != nil {
		var fault *domain.StoreFault
		if errors.As(err, &fault) {
			log.Info("token verification failed on store fault", "error", err)
			h.Metrics.Outcome(op, OutcomeFault)
			httpx.WriteText(w, http.StatusInternalServerError, fault.Error())
			return
		}
		log.Error("token verification failed", "error", err)
		h.Metrics.Outcome(op, OutcomeError)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	outcome := OutcomeRejected
	if res.IsVerified {
		outcome = OutcomeVerified
	}
	h.Metrics.Outcome(op, outcome)
	httpx.WriteJSON(w, res.StatusCode, res)
}
