package metabolic

// Unit conversion factors from mmol/L to mg/dL.
const (
	GlucoseMmolToMgdl      = 18.0
	TriglycerideMmolToMgdl = 88.57
)

// HOMA-IR divisors. The mmol/L divisor is the classic 22.5 constant; the mg/dL
// one is 22.5 * 18.
const (
	HOMADivisorMgdl = 405.0
	HOMADivisorMmol = 22.5
)

// Thresholds is a pair of cut points, one per index. A value at or above the
// cut point counts as elevated.
type Thresholds struct {
	Name string  `json:"name"`
	TyG  float64 `json:"tyg"`
	HOMA float64 `json:"homaIr"`
}

// Cut points from Son et al., 2022.
var (
	PrevalenceThresholds = Thresholds{Name: "prevalence", TyG: 8.718, HOMA: 1.8}
	IncidenceThresholds  = Thresholds{Name: "incidence", TyG: 8.518, HOMA: 1.5}
)

// ThresholdsByName looks up a threshold pair by name. An empty name selects
// the incidence pair.
func ThresholdsByName(name string) (Thresholds, bool) {
	switch name {
	case "", IncidenceThresholds.Name:
		return IncidenceThresholds, true
	case PrevalenceThresholds.Name:
		return PrevalenceThresholds, true
	default:
		return Thresholds{}, false
	}
}
