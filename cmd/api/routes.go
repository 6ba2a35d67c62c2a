package main

import (
	"net/http"

	"tygcalc.metabolicrisk.org/internal/restapi"
	"tygcalc.metabolicrisk.org/internal/webui"
)

// buildHandler mounts the JSON API and the HTML pages on one mux behind the
// shared middleware chain.
func buildHandler(api *restapi.RestAPI) (http.Handler, error) {
	webUI, err := webui.NewWebUI(api.Application)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	mux.Handle("/", webUI.Routes())

	return api.WithMiddleware(mux), nil
}
