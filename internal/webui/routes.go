package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tygcalc.metabolicrisk.org/internal/appconf"
)

// Routes returns the router for the HTML pages. The debug pages are left out
// in production.
func (webUI *WebUI) Routes() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/", webUI.indexHandler)
	router.HandlerFunc(http.MethodPost, "/calculate", webUI.calculateHandler)
	router.HandlerFunc(http.MethodGet, "/calculate", webUI.calculateHandler)

	if webUI.Config.Env != appconf.Production {
		router.HandlerFunc(http.MethodGet, "/debug/:dataType", webUI.debugIndexHandler)
	}
	return router
}
