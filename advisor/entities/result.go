package entities

// MatchedCondition is one scored condition in an advisor result.
// Confidence is the cluster match score as a rounded percentage.
type MatchedCondition struct {
	Condition  string   `json:"condition"`
	ICDCode    string   `json:"icdCode"`
	Confidence int      `json:"confidence"`
	Severity   Severity `json:"severity"`
}

// ContraindicatedMedication is a candidate removed by the safety filter.
type ContraindicatedMedication struct {
	MedicationName string `json:"medicationName"`
	GenericName    string `json:"genericName"`
	Reason         string `json:"reason"`
}

// DrugInteraction is one interaction-table hit between a candidate medication
// and a medication the patient is already taking.
type DrugInteraction struct {
	Medication1 string   `json:"medication1"`
	Medication2 string   `json:"medication2"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// AdvisorResult is the aggregate output of one advisor run. A medication never
// appears in both Recommendations and Contraindicated for the same run, and
// Recommendations holds at most one entry per generic name.
type AdvisorResult struct {
	MatchedConditions               []MatchedCondition          `json:"matchedConditions"`
	Recommendations                 []MedicationRecommendation  `json:"recommendations"`
	Contraindicated                 []ContraindicatedMedication `json:"contraindicated"`
	Warnings                        []string                    `json:"warnings"`
	DrugInteractions                []DrugInteraction           `json:"drugInteractions"`
	ReferralRequired                bool                        `json:"referralRequired"`
	ReferralReason                  string                      `json:"referralReason,omitempty"`
	EmergencyReferral               bool                        `json:"emergencyReferral"`
	EmergencyReason                 string                      `json:"emergencyReason,omitempty"`
	NonPharmacologicRecommendations []string                    `json:"nonPharmacologicRecommendations"`
	FollowUp                        string                      `json:"followUp,omitempty"`
}

// NewAdvisorResult returns a result with all collections initialized so empty
// runs serialize as empty arrays rather than null.
func NewAdvisorResult() AdvisorResult {
	return AdvisorResult{
		MatchedConditions:               make([]MatchedCondition, 0),
		Recommendations:                 make([]MedicationRecommendation, 0),
		Contraindicated:                 make([]ContraindicatedMedication, 0),
		Warnings:                        make([]string, 0),
		DrugInteractions:                make([]DrugInteraction, 0),
		NonPharmacologicRecommendations: make([]string, 0),
	}
}
