package restapi

import (
	"errors"
	"net/http"

	"tygcalc.metabolicrisk.org/internal/metabolic"
	"tygcalc.metabolicrisk.org/internal/models"
	"tygcalc.metabolicrisk.org/internal/utils"
)

func (api *RestAPI) calculateHandler(w http.ResponseWriter, r *http.Request) {
	params, fieldErrors := utils.ParseMeasurementParams(r.URL.Query())
	if utils.HasFieldErrors(fieldErrors) {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result, err := api.CalculateValues(params.Triglycerides, params.Glucose, params.Insulin, params.Unit)
	if err != nil {
		var inputErr *metabolic.InputError
		if errors.As(err, &inputErr) {
			api.validationErrorResponse(w, r, map[string][]string{
				inputErr.Field: {inputErr.Kind.Message()},
			})
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	input := models.CalculationInput{
		Triglycerides: params.Triglycerides,
		Glucose:       params.Glucose,
		Insulin:       params.Insulin,
	}
	entry := models.NewCalculationEntry(input, result, api.ActiveThresholds())
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
