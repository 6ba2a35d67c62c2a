package models

import (
	"tygcalc.metabolicrisk.org/internal/metabolic"
)

// ConversionFactors are the mmol/L to mg/dL multipliers.
type ConversionFactors struct {
	Triglycerides float64 `json:"triglycerides"`
	Glucose       float64 `json:"glucose"`
}

// HOMADivisors are the HOMA-IR divisors per glucose unit.
type HOMADivisors struct {
	MgPerDL  float64 `json:"mgPerDl"`
	MmolPerL float64 `json:"mmolPerL"`
}

// ThresholdsEntry describes every constant the calculator uses.
type ThresholdsEntry struct {
	Active     string                 `json:"active"`
	Thresholds []metabolic.Thresholds `json:"thresholds"`
	Conversion ConversionFactors      `json:"conversion"`
	HOMA       HOMADivisors           `json:"homaDivisors"`
	Units      []string               `json:"units"`
}

func NewThresholdsEntry(active metabolic.Thresholds) ThresholdsEntry {
	units := make([]string, 0, len(metabolic.Units))
	for _, u := range metabolic.Units {
		units = append(units, string(u))
	}

	return ThresholdsEntry{
		Active: active.Name,
		Thresholds: []metabolic.Thresholds{
			metabolic.IncidenceThresholds,
			metabolic.PrevalenceThresholds,
		},
		Conversion: ConversionFactors{
			Triglycerides: metabolic.TriglycerideMmolToMgdl,
			Glucose:       metabolic.GlucoseMmolToMgdl,
		},
		HOMA: HOMADivisors{
			MgPerDL:  metabolic.HOMADivisorMgdl,
			MmolPerL: metabolic.HOMADivisorMmol,
		},
		Units: units,
	}
}
