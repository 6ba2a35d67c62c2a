package metabolic

// Page credits.
const (
	Author      = "E.M. Fernando López"
	LastUpdated = "January 10, 2026"
)

// Disclaimer is shown next to every result.
const Disclaimer = "This tool is informational and educational. It does not diagnose and does not replace a medical evaluation."

// Interpretation returns the canned reading for a risk level.
func Interpretation(level RiskLevel) string {
	switch level {
	case RiskHigh:
		return "Both indicators are elevated compared with population values. " +
			"In scientific studies this combination has been associated with higher metabolic risk. " +
			"Seeing a physician for a comprehensive evaluation is recommended."
	case RiskModerate:
		return "One of the indicators is elevated compared with population values. " +
			"Repeating the tests and consulting a physician may be useful."
	default:
		return "Results fall within the low ranges observed in population studies. " +
			"Keeping healthy habits and regular medical follow-up is important."
	}
}

// SyndromeCriteria are the harmonized metabolic syndrome criteria
// (Alberti et al., 2009). Three of five define the syndrome.
var SyndromeCriteria = []string{
	"Elevated waist circumference (population-specific)",
	"Triglycerides ≥150 mg/dL or treatment",
	"Low HDL (<40 mg/dL in men, <50 mg/dL in women) or treatment",
	"Blood pressure ≥130/85 mmHg or treatment",
	"Fasting glucose ≥100 mg/dL or treatment",
}

// SyndromeCriteriaRequired is how many SyndromeCriteria must be present.
const SyndromeCriteriaRequired = 3

// Reference is a cited study.
type Reference struct {
	Authors string `json:"authors"`
	Journal string `json:"journal"`
	Year    int    `json:"year"`
}

var References = []Reference{
	{Authors: "Son DH et al.", Journal: "Nutrition, Metabolism and Cardiovascular Diseases", Year: 2022},
	{Authors: "D'Elia L et al.", Journal: "Minerva Medica", Year: 2024},
	{Authors: "Wan H et al.", Journal: "Scientific Reports", Year: 2024},
	{Authors: "Seo MW et al.", Journal: "Obesity Research & Clinical Practice", Year: 2023},
	{Authors: "Hosseinkhani S et al.", Journal: "Endocrine, Metabolic & Immune Disorders Drug Targets", Year: 2024},
	{Authors: "Alberti KGMM et al.", Journal: "Circulation", Year: 2009},
}
