package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/canvas-backend/internal/auth"
	"github.com/heartmarshall/canvas-backend/internal/config"
	"github.com/heartmarshall/canvas-backend/internal/transport/middleware"
	"github.com/heartmarshall/canvas-backend/internal/transport/rest"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health *rest.HealthHandler
	Topic  *rest.TopicHandler
	User   *rest.UserHandler
	Locale *rest.LocaleHandler
	Auth   *rest.AuthHandler
}

// Guards groups the cross-cutting dependencies of the router.
type Guards struct {
	Tokens  *auth.JWTManager
	Limiter *middleware.RateLimiter
	CORS    config.CORSConfig
	Writes  int
}

// NewRouter builds the HTTP handler tree. Probes bypass authentication;
// /api routes run behind the full middleware chain and mutating routes
// are additionally rate limited per client. Deleting users requires admin.
func NewRouter(logger *slog.Logger, h Handlers, g Guards) http.Handler {
	write := g.Limiter.Limit("writes", g.Writes)
	login := g.Limiter.Limit("login", g.Writes)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/topics/create", h.Topic.Fresh)
	api.HandleFunc("GET /api/topics/{id}", h.Topic.Show)
	api.Handle("POST /api/topics/{id}", write(http.HandlerFunc(h.Topic.Upsert)))
	api.Handle("DELETE /api/topics/{id}", write(http.HandlerFunc(h.Topic.Delete)))

	api.HandleFunc("GET /api/users/create", h.User.Fresh)
	api.HandleFunc("GET /api/users/{id}", h.User.Show)
	api.Handle("POST /api/users/{id}", write(http.HandlerFunc(h.User.Upsert)))
	api.Handle("DELETE /api/users/{id}", middleware.RequireAdmin()(write(http.HandlerFunc(h.User.Delete))))

	api.HandleFunc("GET /api/locales", h.Locale.List)
	api.Handle("POST /api/auth/login", login(http.HandlerFunc(h.Auth.Login)))

	var cors middleware.Middleware
	if g.CORS.AllowedOrigins != "" {
		cors = middleware.CORS(g.CORS)
	}

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		cors,
		middleware.Auth(g.Tokens),
		middleware.Logger(logger),
	)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	root.Handle("/api/", chain(api))

	return root
}
