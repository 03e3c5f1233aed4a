package entities

// AgeGroup buckets a patient for population-specific dose adjustment.
type AgeGroup string

const (
	AgePediatric AgeGroup = "pediatric"
	AgeAdult     AgeGroup = "adult"
	AgeGeriatric AgeGroup = "geriatric"
)

// OrganFunction grades renal or hepatic function. Anything other than
// "normal" triggers the organ-specific medication warnings.
type OrganFunction string

const (
	OrganNormal   OrganFunction = "normal"
	OrganMild     OrganFunction = "mild"
	OrganModerate OrganFunction = "moderate"
	OrganSevere   OrganFunction = "severe"
)

// PatientContext carries per-request patient facts used by the safety filter.
// It is supplied fresh on every request and never persisted by the engine.
type PatientContext struct {
	AgeGroup           AgeGroup      `json:"ageGroup"`
	Weight             float64       `json:"weight,omitempty"`
	IsPregnant         bool          `json:"isPregnant"`
	Allergies          []string      `json:"allergies,omitempty"`
	CurrentMedications []string      `json:"currentMedications,omitempty"`
	ChronicConditions  []string      `json:"chronicConditions,omitempty"`
	RenalFunction      OrganFunction `json:"renalFunction,omitempty"`
	HepaticFunction    OrganFunction `json:"hepaticFunction,omitempty"`
}
