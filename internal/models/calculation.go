package models

import (
	"tygcalc.metabolicrisk.org/internal/metabolic"
)

// CalculationInput echoes the accepted measurements.
type CalculationInput struct {
	Triglycerides float64 `json:"triglycerides"`
	Glucose       float64 `json:"glucose"`
	Insulin       float64 `json:"insulin"`
	Unit          string  `json:"unit"`
	InsulinUnit   string  `json:"insulinUnit"`
}

// CalculationEntry is the entry returned by the calculate endpoint. Index
// values are rounded to 3 decimal places; the risk level is decided on the
// unrounded values.
type CalculationEntry struct {
	Input          CalculationInput     `json:"input"`
	TyG            float64              `json:"tyg"`
	HomaIR         float64              `json:"homaIr"`
	RiskLevel      string               `json:"riskLevel"`
	Thresholds     metabolic.Thresholds `json:"thresholds"`
	Interpretation string               `json:"interpretation"`
	Disclaimer     string               `json:"disclaimer"`
}

func NewCalculationEntry(input CalculationInput, result metabolic.Result, thresholds metabolic.Thresholds) CalculationEntry {
	tyg, homa := result.Rounded()
	input.Unit = string(result.Unit)
	input.InsulinUnit = metabolic.InsulinUnit

	return CalculationEntry{
		Input:          input,
		TyG:            tyg,
		HomaIR:         homa,
		RiskLevel:      string(result.RiskLevel),
		Thresholds:     thresholds,
		Interpretation: metabolic.Interpretation(result.RiskLevel),
		Disclaimer:     metabolic.Disclaimer,
	}
}
