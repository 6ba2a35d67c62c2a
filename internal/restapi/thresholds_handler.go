package restapi

import (
	"net/http"

	"tygcalc.metabolicrisk.org/internal/models"
)

func (api *RestAPI) thresholdsHandler(w http.ResponseWriter, r *http.Request) {
	entry := models.NewThresholdsEntry(api.ActiveThresholds())
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
