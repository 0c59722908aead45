package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store"
	"github.com/aussiebroadwan/tokenkeep/pkg/authsdk"
	"github.com/aussiebroadwan/tokenkeep/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and the document store check
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &authsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := probe(startTime, version, overallStatus)
		response.Checks = checks
		httpx.WriteJSON(w, statusCode, response)
	}
}
