package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/service"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/store"
	"github.com/aussiebroadwan/tokenkeep/pkg/httpx"
	"github.com/aussiebroadwan/tokenkeep/pkg/slogx"

	_ "github.com/aussiebroadwan/tokenkeep/api/tokenkeep" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *Metrics

	store         store.Store
	ClientService *service.ClientService
	TokenService  *service.TokenService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		metrics:      NewMetrics(),
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOAuth()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			tokenkeep Token Service API
//	@version		0.1.0
//	@description	Issues opaque bearer tokens to provisioned clients and verifies presented tokens.
//	@description
//	@description	Tokens are looked up in the document store on every verification. Expired
//	@description	tokens are deleted the first time they are found dead.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/tokenkeep
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:4004
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerOAuth() {
	secretHandler := &SecretHandler{
		ClientService: r.ClientService,
		TokenService:  r.TokenService,
		Metrics:       r.metrics,
	}
	verifyHandler := &VerifyTokenHandler{
		TokenService: r.TokenService,
		Metrics:      r.metrics,
	}

	r.Mux.Handle("GET /oauth/secret", r.metrics.Instrument("secret", secretHandler))
	r.Mux.Handle("GET /oauth/verifyToken", r.metrics.Instrument("verify_token", verifyHandler))

	// Authorization code flow and upstream token verification are not built yet.
	r.Mux.Handle("GET /oauth/login", UnderConstructionHandler())
	r.Mux.Handle("GET /oauth/loginRedirect", UnderConstructionHandler())
	r.Mux.Handle("GET /oauth/verifyUpstreamToken", UnderConstructionHandler())
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
