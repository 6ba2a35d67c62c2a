package logging

import (
	"errors"
	"log/slog"
	"net/http"
)

// LogServerExit logs why ListenAndServe returned. A clean shutdown is logged at
// info level, anything else as an error.
func LogServerExit(logger *slog.Logger, err error) {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		LogOperation(logger, "server stopped", slog.String("component", "http_server"))
		return
	}
	LogError(logger, "server failed", err, slog.String("component", "http_server"))
}
