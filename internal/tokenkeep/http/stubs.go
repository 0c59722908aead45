package http

import (
	"net/http"

	"github.com/aussiebroadwan/tokenkeep/pkg/httpx"
)

const underConstruction = "This endpoint is currently in construction"

// UnderConstructionHandler godoc
//
//	@Summary		Disabled endpoint
//	@Description	Placeholder for the authorization code flow and upstream token verification.
//	@Tags			OAuth
//	@Produce		plain
//	@Success		200	{string}	string	"This endpoint is currently in construction"
//	@Router			/oauth/login [get]
//	@Router			/oauth/loginRedirect [get]
//	@Router			/oauth/verifyUpstreamToken [get].
func UnderConstructionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteText(w, http.StatusOK, underConstruction)
	}
}
