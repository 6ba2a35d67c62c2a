package webui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"tygcalc.metabolicrisk.org/internal/app"
	"tygcalc.metabolicrisk.org/internal/logging"
)

//go:embed index.html debug_index.html
var templateFS embed.FS

// WebUI serves the HTML calculator.
type WebUI struct {
	*app.Application
	templates *template.Template
}

func NewWebUI(application *app.Application) (*WebUI, error) {
	tmpl, err := template.ParseFS(templateFS, "index.html", "debug_index.html")
	if err != nil {
		return nil, err
	}
	return &WebUI{Application: application, templates: tmpl}, nil
}

func (webUI *WebUI) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := webUI.templates.ExecuteTemplate(w, name, data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render template", err,
			slog.String("template", name),
			slog.String("component", "webui"))
	}
}
