package routing

import (
	"errors"
	"net/http"

	"brewfather-mcp/internal/middleware"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// MCPPath is where the streamable HTTP transport is mounted.
const MCPPath = "/mcp"

// Config holds the configuration needed for setting up routes.
// RateLimit is required; the caller owns it and must Stop it.
type Config struct {
	Server    *mcp.Server
	Gatherer  prometheus.Gatherer
	RateLimit *middleware.RateLimitConfig
	Logger    zerolog.Logger
}

// ErrNoRateLimit is returned by SetupRouter when Config.RateLimit is nil.
var ErrNoRateLimit = errors.New("routing: rate limit config is required")

// SetupRouter creates and configures the HTTP router with all routes and middleware
func SetupRouter(cfg Config) (http.Handler, error) {
	if cfg.RateLimit == nil {
		return nil, ErrNoRateLimit
	}

	mux := http.NewServeMux()

	// Every session shares the one server; tool state lives upstream.
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return cfg.Server
	}, nil)
	mux.Handle(MCPPath, mcpHandler)

	mux.HandleFunc("GET /healthz", handleHealth)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Apply middleware in order (outermost first, innermost last)
	var handler http.Handler = mux

	// 1. Limit request body size (innermost - runs first on request)
	handler = middleware.LimitBodyMiddleware(handler)

	// 2. Apply rate limiting
	handler = middleware.RateLimitMiddleware(cfg.RateLimit, MCPPath)(handler)

	// 3. Apply security headers
	handler = middleware.SecurityHeadersMiddleware(handler)

	// 4. Apply logging middleware (outermost - wraps everything)
	handler = middleware.LoggingMiddleware(cfg.Logger)(handler)

	return handler, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
