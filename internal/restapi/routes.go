package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/where/calculate.json", validateAPIKey(api, api.calculateHandler))
	mux.Handle("GET /api/where/thresholds.json", validateAPIKey(api, api.thresholdsHandler))
	mux.Handle("GET /api/where/current-time.json", validateAPIKey(api, api.currentTimeHandler))
}
