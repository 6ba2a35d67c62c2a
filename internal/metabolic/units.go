package metabolic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is the concentration unit used for triglycerides and glucose. Insulin is
// always entered in µU/mL.
type Unit string

const (
	MgPerDL  Unit = "mg/dL"
	MmolPerL Unit = "mmol/L"
)

// InsulinUnit is the fixed unit for fasting insulin.
const InsulinUnit = "µU/mL"

// Units lists the selectable units in display order.
var Units = []Unit{MgPerDL, MmolPerL}

// Field names, in validation order.
const (
	FieldTriglycerides = "tg"
	FieldGlucose       = "glucose"
	FieldInsulin       = "insulin"
)

// ParseUnit maps user input to a Unit. An empty value selects mg/dL.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mg/dl", "mgdl":
		return MgPerDL, nil
	case "mmol/l", "mmol", "mmoll":
		return MmolPerL, nil
	default:
		return "", fmt.Errorf("%w: unknown unit %q (use mg/dL or mmol/L)", ErrInvalidInput, s)
	}
}

// ParseMeasurement parses one raw text input. It rejects anything that is not a
// finite number strictly greater than zero.
func ParseMeasurement(field, raw string) (float64, error) {
	v, err := parseNumber(field, raw)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, &InputError{Field: field, Value: raw, Kind: NonPositive}
	}
	return v, nil
}

func parseNumber(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &InputError{Field: field, Value: raw, Kind: NotNumeric}
	}
	return v, nil
}

func validateMeasurement(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InputError{Field: field, Value: strconv.FormatFloat(v, 'g', -1, 64), Kind: NotNumeric}
	}
	if v <= 0 {
		return &InputError{Field: field, Value: strconv.FormatFloat(v, 'g', -1, 64), Kind: NonPositive}
	}
	return nil
}

// Normalize converts triglycerides and glucose to mg/dL.
func Normalize(tg, glucose float64, unit Unit) (tgMgdl, glucoseMgdl float64) {
	if unit == MmolPerL {
		return tg * TriglycerideMmolToMgdl, glucose * GlucoseMmolToMgdl
	}
	return tg, glucose
}
