package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"tygcalc.metabolicrisk.org/internal/metabolic"
)

func TestParseMeasurementParams(t *testing.T) {
	t.Run("valid mmol params", func(t *testing.T) {
		params := url.Values{"tg": {"1.7"}, "glucose": {"5"}, "insulin": {"10"}, "unit": {"mmol/L"}}

		got, fieldErrors := ParseMeasurementParams(params)

		assert.Empty(t, fieldErrors)
		assert.Equal(t, MeasurementParams{Triglycerides: 1.7, Glucose: 5, Insulin: 10, Unit: metabolic.MmolPerL}, got)
	})

	t.Run("unit defaults to mg/dL", func(t *testing.T) {
		params := url.Values{"tg": {"150"}, "glucose": {"100"}, "insulin": {"10"}}

		got, fieldErrors := ParseMeasurementParams(params)

		assert.Empty(t, fieldErrors)
		assert.Equal(t, metabolic.MgPerDL, got.Unit)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		params := url.Values{"tg": {"abc"}, "glucose": {"-1"}, "unit": {"g/L"}}

		_, fieldErrors := ParseMeasurementParams(params)

		assert.Equal(t, []string{"Please enter numeric values only."}, fieldErrors["tg"])
		assert.Equal(t, []string{"All values must be greater than 0."}, fieldErrors["glucose"])
		assert.Equal(t, []string{"Please enter numeric values only."}, fieldErrors["insulin"])
		assert.Len(t, fieldErrors["unit"], 1)
	})
}
