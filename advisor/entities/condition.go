package entities

// Severity is the three-tier classification of a matched condition.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// SymptomCluster groups alternative phrasings of one symptom category.
// The cluster is satisfied when at least RequiredCount of its phrases have a
// substring match (either direction) among the reported symptoms. A cluster
// with RequiredCount of zero is trivially satisfied.
type SymptomCluster struct {
	Symptoms      []string `json:"symptoms"`
	RequiredCount int      `json:"requiredCount"`
}

// SeverityThresholds lists phrases whose presence among reported symptoms
// promotes a match to that tier. Severe is checked first, then moderate.
type SeverityThresholds struct {
	Mild     []string `json:"mild,omitempty"`
	Moderate []string `json:"moderate,omitempty"`
	Severe   []string `json:"severe,omitempty"`
}

// TieredMedications holds the medication list per severity tier.
type TieredMedications struct {
	Mild     []MedicationRecommendation `json:"mild,omitempty"`
	Moderate []MedicationRecommendation `json:"moderate,omitempty"`
	Severe   []MedicationRecommendation `json:"severe,omitempty"`
}

// ForSeverity returns the medication list for a tier.
func (t TieredMedications) ForSeverity(s Severity) []MedicationRecommendation {
	switch s {
	case SeveritySevere:
		return t.Severe
	case SeverityModerate:
		return t.Moderate
	default:
		return t.Mild
	}
}

// ConditionRule is an immutable reference entry mapping symptom clusters to a
// named condition with severity-tiered medication guidance.
type ConditionRule struct {
	ID                         string             `json:"id"`
	Condition                  string             `json:"condition"`
	ICDCode                    string             `json:"icdCode"`
	SymptomClusters            []SymptomCluster   `json:"symptomClusters"`
	RequiredSymptomCount       int                `json:"requiredSymptomCount"`
	SeverityThresholds         SeverityThresholds `json:"severityThresholds"`
	Medications                TieredMedications  `json:"medications"`
	ReferralCriteria           []string           `json:"referralCriteria,omitempty"`
	EmergencyIndicators        []string           `json:"emergencyIndicators,omitempty"`
	NonPharmacologicTreatments []string           `json:"nonPharmacologicTreatments,omitempty"`
	FollowUpRecommendation     string             `json:"followUpRecommendation,omitempty"`
}
