package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ospreyai/osprey/docs" // Import generated docs
	"github.com/ospreyai/osprey/internal/chat"
	"github.com/ospreyai/osprey/internal/domain"
	"github.com/ospreyai/osprey/internal/handler/dto"
	"github.com/ospreyai/osprey/internal/metrics"
	"github.com/ospreyai/osprey/internal/middleware"
	"github.com/ospreyai/osprey/internal/repository"
	"github.com/ospreyai/osprey/internal/service"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Deps are the collaborators the handlers delegate to.
type Deps struct {
	Auth        *service.AuthService
	Credentials *repository.CredentialRepository
	Agents      *repository.AgentRepository
	Workflows   *repository.WorkflowRepository
	Activity    *repository.ActivityRepository
	Overview    *repository.MetricsRepository
	Chat        chat.Responder

	// Telemetry is optional; nil disables /metrics and login counters.
	Telemetry *metrics.Metrics

	// SecureCookies forces the Secure attribute on session cookies.
	SecureCookies bool
	// StaticDir, when set, is served at /.
	StaticDir string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	auth           *service.AuthService
	credentials    *repository.CredentialRepository
	agents         *repository.AgentRepository
	workflows      *repository.WorkflowRepository
	activity       *repository.ActivityRepository
	overview       *repository.MetricsRepository
	chat           chat.Responder
	telemetry      *metrics.Metrics
	authMiddleware *middleware.AuthMiddleware
	secureCookies  bool
	staticDir      string
	now            func() time.Time
}

// New creates a new Handler instance with all dependencies.
func New(deps Deps) *Handler {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &Handler{
		auth:           deps.Auth,
		credentials:    deps.Credentials,
		agents:         deps.Agents,
		workflows:      deps.Workflows,
		activity:       deps.Activity,
		overview:       deps.Overview,
		chat:           deps.Chat,
		telemetry:      deps.Telemetry,
		authMiddleware: middleware.NewAuthMiddleware(deps.Auth),
		secureCookies:  deps.SecureCookies,
		staticDir:      deps.StaticDir,
		now:            now,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	authed := h.authMiddleware.RequireAuthenticated
	admin := h.authMiddleware.RequireAdmin
	rt := newRouteTable(mux)

	// Operational
	rt.handle("GET", "/healthz", http.HandlerFunc(h.handleHealthz))
	if h.telemetry != nil {
		rt.handle("GET", "/metrics", h.telemetry.Handler())
	}

	// Swagger UI
	rt.handle("GET", "/swagger/", httpSwagger.Handler())

	// Session
	rt.handle("POST", "/api/login", http.HandlerFunc(h.handleLogin))
	rt.handle("POST", "/api/logout", authed(http.HandlerFunc(h.handleLogout)))
	rt.handle("GET", "/api/session", authed(http.HandlerFunc(h.handleSession)))

	// Dashboard data
	rt.handle("GET", "/api/agents", authed(http.HandlerFunc(h.handleListAgents)))
	rt.handle("GET", "/api/agents/{id}", authed(http.HandlerFunc(h.handleGetAgent)))
	rt.handle("GET", "/api/workflows", authed(http.HandlerFunc(h.handleListWorkflows)))
	rt.handle("GET", "/api/metrics/overview", authed(http.HandlerFunc(h.handleOverviewMetrics)))
	rt.handle("GET", "/api/activity/recent", authed(http.HandlerFunc(h.handleRecentActivity)))
	rt.handle("POST", "/api/chat", authed(http.HandlerFunc(h.handleChat)))

	// Admin
	rt.handle("GET", "/api/admin/users", admin(http.HandlerFunc(h.handleListUsers)))

	rt.rejectOtherMethods()

	mux.HandleFunc("/api/", h.handleNotFound)
	if h.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(h.staticDir)))
	}
}

// routeTable registers method patterns and remembers the methods of each
// path, so other methods on a known path get a JSON 405 instead of falling
// through to the catch-all.
type routeTable struct {
	mux     *http.ServeMux
	paths   []string
	methods map[string][]string
}

func newRouteTable(mux *http.ServeMux) *routeTable {
	return &routeTable{mux: mux, methods: make(map[string][]string)}
}

func (t *routeTable) handle(method, path string, handler http.Handler) {
	if _, seen := t.methods[path]; !seen {
		t.paths = append(t.paths, path)
	}
	t.methods[path] = append(t.methods[path], method)
	t.mux.Handle(method+" "+path, handler)
}

func (t *routeTable) rejectOtherMethods() {
	for _, path := range t.paths {
		allowed := slices.Clone(t.methods[path])
		if slices.Contains(allowed, http.MethodGet) {
			allowed = append(allowed, http.MethodHead)
		}
		allow := strings.Join(allowed, ", ")
		t.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Allow", allow)
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		})
	}
}

// Routes returns the full handler chain: recovery, logging, then the mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return middleware.Chain(mux, middleware.Logging(h.telemetry), middleware.Recover)
}

// handleHealthz returns 200 OK while the process is serving.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{Success: true, Status: "ok"})
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Not found")
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, dto.NewErrorResponse(message))
}

// respondDomainError maps err to its status and writes the error envelope.
func respondDomainError(w http.ResponseWriter, err error) {
	status, message := dto.MapDomainError(err)
	respondError(w, status, message)
}

// decodeJSON reads a bounded JSON body into v. An empty body decodes to the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewValidationError("Invalid request body")
	}
	return nil
}

// currentIdentity returns the identity attached by the auth guard.
func currentIdentity(r *http.Request) (*domain.Identity, error) {
	return middleware.IdentityFromContext(r.Context())
}
