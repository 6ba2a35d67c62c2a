package restapi

import (
	"net/http"
	"time"

	"tygcalc.metabolicrisk.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance. A positive Config.RateLimit
// enables per-client limiting at that many requests per second.
func NewRestAPI(app *app.Application) *RestAPI {
	api := &RestAPI{Application: app}
	if app.Config.RateLimit > 0 {
		api.rateLimiter = NewRateLimitMiddleware(app.Config.RateLimit, time.Second)
	}
	return api
}

// Handler returns the API routes wrapped in the middleware chain, outermost
// first: request ID, request logging, security headers, compression, rate limit.
func (api *RestAPI) Handler() http.Handler {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	return api.WithMiddleware(mux)
}

// WithMiddleware wraps next in the same chain Handler uses.
func (api *RestAPI) WithMiddleware(next http.Handler) http.Handler {
	var handler http.Handler = next
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = RequestIDMiddleware(handler)
	return handler
}

// Shutdown stops background work owned by the API.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
