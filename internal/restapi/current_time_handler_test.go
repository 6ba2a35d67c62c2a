package restapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentTimeHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/current-time.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	now := time.Now().UnixMilli()
	assert.InDelta(t, now, model.CurrentTime, 5000)

	entry := entryFrom(t, model)
	entryTime, ok := entry["time"].(float64)
	assert.True(t, ok, "entry.time should be a number")
	assert.InDelta(t, float64(now), entryTime, 5000)
	assert.IsType(t, "", entry["readableTime"])
}

func TestCurrentTimeHandlerInvalidKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/current-time.json?key=invalid_key")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
	assert.Equal(t, 1, model.Version)
}
