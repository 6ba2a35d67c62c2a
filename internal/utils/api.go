package utils

import (
	"errors"
	"net/url"

	"tygcalc.metabolicrisk.org/internal/metabolic"
)

// MeasurementParams are the calculator inputs read from a query string or form.
type MeasurementParams struct {
	Triglycerides float64
	Glucose       float64
	Insulin       float64
	Unit          metabolic.Unit
}

// ParseMeasurementParams reads tg, glucose, insulin and unit from params.
// Unlike metabolic.Compute it keeps going after the first bad field, so every
// problem is reported in fieldErrors at once.
func ParseMeasurementParams(params url.Values) (MeasurementParams, map[string][]string) {
	fieldErrors := make(map[string][]string)
	var out MeasurementParams

	unit, err := metabolic.ParseUnit(params.Get("unit"))
	if err != nil {
		fieldErrors["unit"] = append(fieldErrors["unit"], err.Error())
	}
	out.Unit = unit

	out.Triglycerides = parseMeasurementParam(params, metabolic.FieldTriglycerides, fieldErrors)
	out.Glucose = parseMeasurementParam(params, metabolic.FieldGlucose, fieldErrors)
	out.Insulin = parseMeasurementParam(params, metabolic.FieldInsulin, fieldErrors)

	return out, fieldErrors
}

func parseMeasurementParam(params url.Values, key string, fieldErrors map[string][]string) float64 {
	v, err := metabolic.ParseMeasurement(key, params.Get(key))
	if err != nil {
		var inputErr *metabolic.InputError
		if errors.As(err, &inputErr) {
			fieldErrors[key] = append(fieldErrors[key], inputErr.Kind.Message())
		} else {
			fieldErrors[key] = append(fieldErrors[key], err.Error())
		}
	}
	return v
}
