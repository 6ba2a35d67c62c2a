package restapi

import (
	"net/http"

	"github.com/google/uuid"

	"tygcalc.metabolicrisk.org/internal/logging"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses an incoming X-Request-ID or generates a UUID,
// stores it in the request context and echoes it in the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" || len(reqID) > 128 {
			reqID = uuid.New().String()
		}

		r = r.WithContext(logging.WithRequestID(r.Context(), reqID))
		w.Header().Set(RequestIDHeader, reqID)

		next.ServeHTTP(w, r)
	})
}
