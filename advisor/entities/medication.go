package entities

// Priority ranks a medication inside a severity tier. The ordering
// first-line < second-line < adjunctive is used when sorting recommendations.
type Priority string

const (
	PriorityFirstLine  Priority = "first-line"
	PrioritySecondLine Priority = "second-line"
	PriorityAdjunctive Priority = "adjunctive"
)

// SpecialPopulations holds free-text dosing/safety notes per population.
// An empty string means the medication has no note for that population.
type SpecialPopulations struct {
	Pediatric string `json:"pediatric,omitempty"`
	Geriatric string `json:"geriatric,omitempty"`
	Pregnancy string `json:"pregnancy,omitempty"`
	Renal     string `json:"renal,omitempty"`
	Hepatic   string `json:"hepatic,omitempty"`
}

// MedicationRecommendation is the tier-level medication entry of a condition
// rule. The rule tables hold the canonical values; the safety filter clones an
// entry before any per-patient adjustment so the tables stay untouched.
type MedicationRecommendation struct {
	MedicationName     string             `json:"medicationName"`
	GenericName        string             `json:"genericName"`
	Category           string             `json:"category"`
	StandardDose       string             `json:"standardDose"`
	Frequency          string             `json:"frequency"`
	Duration           string             `json:"duration"`
	Route              string             `json:"route"`
	Indication         string             `json:"indication"`
	Priority           Priority           `json:"priority"`
	Contraindications  []string           `json:"contraindications,omitempty"`
	Interactions       []string           `json:"interactions,omitempty"`
	Warnings           []string           `json:"warnings,omitempty"`
	MonitoringRequired []string           `json:"monitoringRequired,omitempty"`
	SpecialPopulations SpecialPopulations `json:"specialPopulations,omitempty"`
}

// Clone returns a deep copy safe to mutate per patient.
func (m MedicationRecommendation) Clone() MedicationRecommendation {
	c := m
	c.Contraindications = append([]string(nil), m.Contraindications...)
	c.Interactions = append([]string(nil), m.Interactions...)
	c.Warnings = append([]string(nil), m.Warnings...)
	c.MonitoringRequired = append([]string(nil), m.MonitoringRequired...)
	return c
}

// PriorityRank returns the sort rank of a priority. Unknown priorities sort last.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityFirstLine:
		return 0
	case PrioritySecondLine:
		return 1
	case PriorityAdjunctive:
		return 2
	default:
		return 3
	}
}
