package metabolic

import (
	"math"
	"strconv"
)

// RiskLevel is the combined reading of both indices against a threshold pair.
type RiskLevel string

const (
	RiskHigh     RiskLevel = "HIGH"
	RiskModerate RiskLevel = "MODERATE"
	RiskLow      RiskLevel = "LOW"
)

// Result holds one calculation. TyG and HOMA are unrounded; use Rounded for
// display.
type Result struct {
	Unit      Unit
	TyG       float64
	HOMA      float64
	RiskLevel RiskLevel
}

// Rounded returns both indices rounded to 3 decimal places.
func (r Result) Rounded() (tyg, homa float64) {
	return Round3(r.TyG), Round3(r.HOMA)
}

// Round3 rounds half away from zero to 3 decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// CalculateTyG returns ln(tg * glucose / 2). Both values must be in mg/dL.
func CalculateTyG(tgMgdl, glucoseMgdl float64) float64 {
	return math.Log((tgMgdl * glucoseMgdl) / 2)
}

// CalculateHOMA returns HOMA-IR from glucose in the entered unit and insulin in
// µU/mL. Glucose is not normalized here; the divisor follows the unit instead.
func CalculateHOMA(glucose, insulin float64, unit Unit) float64 {
	if unit == MgPerDL {
		return (glucose * insulin) / HOMADivisorMgdl
	}
	return (glucose * insulin) / HOMADivisorMmol
}

// Classify compares both indices to t. Cut points are inclusive.
func Classify(tyg, homa float64, t Thresholds) RiskLevel {
	tygElevated := tyg >= t.TyG
	homaElevated := homa >= t.HOMA

	switch {
	case tygElevated && homaElevated:
		return RiskHigh
	case tygElevated || homaElevated:
		return RiskModerate
	default:
		return RiskLow
	}
}

// Calculate validates the three measurements and computes both indices,
// classified against the incidence cut points.
func Calculate(tg, glucose, insulin float64, unit Unit) (Result, error) {
	return CalculateWith(tg, glucose, insulin, unit, IncidenceThresholds)
}

// CalculateWith is Calculate with an explicit threshold pair. The unit goes
// through ParseUnit, so the zero Unit means mg/dL for both indices.
func CalculateWith(tg, glucose, insulin float64, unit Unit, t Thresholds) (Result, error) {
	unit, err := ParseUnit(string(unit))
	if err != nil {
		return Result{}, err
	}
	if err := validateMeasurement(FieldTriglycerides, tg); err != nil {
		return Result{}, err
	}
	if err := validateMeasurement(FieldGlucose, glucose); err != nil {
		return Result{}, err
	}
	if err := validateMeasurement(FieldInsulin, insulin); err != nil {
		return Result{}, err
	}

	tgMgdl, glucoseMgdl := Normalize(tg, glucose, unit)
	tyg := CalculateTyG(tgMgdl, glucoseMgdl)
	homa := CalculateHOMA(glucose, insulin, unit)

	// Positive inputs can still under- or overflow the products.
	if math.IsNaN(tyg) || math.IsInf(tyg, 0) {
		return Result{}, &InputError{Field: FieldTriglycerides, Value: strconv.FormatFloat(tg, 'g', -1, 64), Kind: NotNumeric}
	}
	if math.IsNaN(homa) || math.IsInf(homa, 0) {
		return Result{}, &InputError{Field: FieldInsulin, Value: strconv.FormatFloat(insulin, 'g', -1, 64), Kind: NotNumeric}
	}

	return Result{
		Unit:      unit,
		TyG:       tyg,
		HOMA:      homa,
		RiskLevel: Classify(tyg, homa, t),
	}, nil
}

// Compute runs the calculator over raw text inputs as typed into a form. All
// three values are parsed before any range check, so a non-numeric value is
// reported ahead of a non-positive one.
func Compute(tg, glucose, insulin string, unit Unit) (Result, error) {
	tgValue, err := parseNumber(FieldTriglycerides, tg)
	if err != nil {
		return Result{}, err
	}
	glucoseValue, err := parseNumber(FieldGlucose, glucose)
	if err != nil {
		return Result{}, err
	}
	insulinValue, err := parseNumber(FieldInsulin, insulin)
	if err != nil {
		return Result{}, err
	}
	return Calculate(tgValue, glucoseValue, insulinValue, unit)
}
