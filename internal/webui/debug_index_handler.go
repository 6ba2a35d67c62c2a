package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"tygcalc.metabolicrisk.org/internal/metabolic"
	"tygcalc.metabolicrisk.org/internal/models"
	"tygcalc.metabolicrisk.org/internal/utils"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := utils.ExtractParam(r, "dataType")

	var data interface{}
	var title string
	status := http.StatusOK

	switch dataType {
	case "constants":
		data = models.NewThresholdsEntry(webUI.ActiveThresholds())
		title = "Calculator - Constants"
	case "thresholds":
		data = []metabolic.Thresholds{metabolic.IncidenceThresholds, metabolic.PrevalenceThresholds}
		title = "Calculator - Threshold Sets"
	case "criteria":
		data = metabolic.SyndromeCriteria
		title = "Metabolic Syndrome - Criteria"
	case "references":
		data = metabolic.References
		title = "References"
	case "config":
		cfg := webUI.Config
		cfg.ApiKeys = nil
		data = cfg
		title = "Application - Config"
	default:
		data = map[string]string{
			"error": "Please use one of the following: constants, thresholds, criteria, references, config.",
		}
		title = "Choose a data type"
		status = http.StatusNotFound
	}

	webUI.render(w, r, status, "debug_index.html", debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
}
