package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/tokenkeep/pkg/authsdk"
	"github.com/aussiebroadwan/tokenkeep/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Reports that the tokenkeep process is serving. The document store is not consulted, see /readyz.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, probe(startTime, version, "ok"))
	}
}

func probe(startTime time.Time, version, status string) authsdk.HealthResponse {
	return authsdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(startTime).Truncate(time.Second).String(),
		Version: version,
	}
}
