package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/gucfolio/internal/api/http/handler"
	"github.com/dtroode/gucfolio/internal/api/http/middleware"
	"github.com/dtroode/gucfolio/internal/logger"
	"github.com/dtroode/gucfolio/internal/metrics"
	"github.com/dtroode/gucfolio/internal/model"
)

const (
	authPrefix      = "/api/v1/auth"
	portfolioPrefix = "/api/v1/portfolio"
)

// Router wires handlers and middleware into one http.Handler.
type Router struct {
	authService      handler.AuthService
	portfolioService handler.PortfolioService
	sessionService   middleware.SessionService
	contextManager   model.ContextManager
	gatherer         prometheus.Gatherer
	metrics          *metrics.Metrics
	logger           *logger.Logger
	debugMode        bool
	maxUploadBytes   int64
}

// Options carries the non-service router settings.
type Options struct {
	Gatherer       prometheus.Gatherer
	Metrics        *metrics.Metrics
	DebugMode      bool
	MaxUploadBytes int64
}

// New creates a Router. A nil Gatherer leaves /metrics unregistered.
func New(
	authService handler.AuthService,
	portfolioService handler.PortfolioService,
	sessionService middleware.SessionService,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts Options,
) *Router {
	return &Router{
		authService:      authService,
		portfolioService: portfolioService,
		sessionService:   sessionService,
		contextManager:   contextManager,
		gatherer:         opts.Gatherer,
		metrics:          opts.Metrics,
		logger:           logger,
		debugMode:        opts.DebugMode,
		maxUploadBytes:   opts.MaxUploadBytes,
	}
}

// Register builds the routing table and returns it wrapped in the
// recovery, metrics and logging middleware, outermost first.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()
	authenticate := middleware.NewAuthenticate(r.sessionService, r.contextManager, r.logger)

	r.registerAuthRoutes(mux, authenticate)
	r.registerPortfolioRoutes(mux, authenticate)

	if r.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	}
	mux.Handle("/", handler.InvalidRoute(r.logger))

	recovery := middleware.NewRecovery(r.logger)
	observe := middleware.NewMetrics(r.metrics)
	logging := middleware.NewLogging(r.logger, r.debugMode)

	return recovery.Handle(observe.Handle(logging.Handle(mux)))
}

func (r *Router) registerAuthRoutes(mux *http.ServeMux, authenticate *middleware.Authenticate) {
	h := handler.NewAuth(r.authService, r.contextManager, r.logger)

	mux.HandleFunc("POST "+authPrefix+"/signup", h.Signup)
	mux.HandleFunc("POST "+authPrefix+"/login", h.Login)
	mux.HandleFunc("POST "+authPrefix+"/forgot", h.ForgotPassword)
	mux.HandleFunc("POST "+authPrefix+"/reset", h.ResetPassword)
	mux.Handle("POST "+authPrefix+"/logout", authenticate.Handle(http.HandlerFunc(h.Logout)))
}

func (r *Router) registerPortfolioRoutes(mux *http.ServeMux, authenticate *middleware.Authenticate) {
	h := handler.NewPortfolio(r.portfolioService, r.contextManager, r.logger, r.maxUploadBytes)

	mux.HandleFunc("GET "+portfolioPrefix+"/summary/{offset}", h.Summary)
	mux.HandleFunc("GET "+portfolioPrefix+"/tags/{name}/{offset}", h.ListByTag)
	mux.HandleFunc("GET "+portfolioPrefix+"/items/{id}", h.GetItem)
	mux.HandleFunc("GET "+portfolioPrefix+"/users/{id}", h.GetProfile)
	mux.Handle("POST "+portfolioPrefix+"/items", authenticate.Handle(http.HandlerFunc(h.CreateItem)))
	mux.Handle("PUT "+portfolioPrefix+"/items/{id}", authenticate.Handle(http.HandlerFunc(h.UpdateItem)))
	mux.Handle("DELETE "+portfolioPrefix+"/items/{id}", authenticate.Handle(http.HandlerFunc(h.DeleteItem)))

	mux.HandleFunc("GET /uploads/{key...}", h.Cover)
}
