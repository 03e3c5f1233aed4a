package advisor

import (
	"reflect"
	"strings"
	"testing"

	"github.com/caregrid/advisor-api/advisor/entities"
	"github.com/caregrid/advisor-api/ruleset"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func adultPatient() entities.PatientContext {
	return entities.PatientContext{AgeGroup: entities.AgeAdult}
}

func findRecommendation(result entities.AdvisorResult, generic string) (entities.MedicationRecommendation, bool) {
	for _, rec := range result.Recommendations {
		if rec.GenericName == generic {
			return rec, true
		}
	}
	return entities.MedicationRecommendation{}, false
}

func findContraindicated(result entities.AdvisorResult, generic string) (entities.ContraindicatedMedication, bool) {
	for _, c := range result.Contraindicated {
		if c.GenericName == generic {
			return c, true
		}
	}
	return entities.ContraindicatedMedication{}, false
}

func findMatchedCondition(result entities.AdvisorResult, name string) (entities.MatchedCondition, bool) {
	for _, m := range result.MatchedConditions {
		if m.Condition == name {
			return m, true
		}
	}
	return entities.MatchedCondition{}, false
}

// ============================================================================
// END-TO-END ENGINE TESTS
// ============================================================================

// TestRecommendCommonCold covers the straightforward self-limited illness path
func TestRecommendCommonCold(t *testing.T) {
	rs := ruleset.Builtin()
	symptoms := []string{"runny nose", "sore throat", "sneezing"}

	result := Recommend(rs, symptoms, adultPatient())

	cold, ok := findMatchedCondition(result, "Upper Respiratory Infection (Common Cold)")
	if !ok {
		t.Fatal("Expected common cold to match")
	}
	if cold.Severity != entities.SeverityMild {
		t.Errorf("Expected mild severity, got %v", cold.Severity)
	}
	if cold.Confidence != 100 {
		t.Errorf("Expected confidence 100, got %d", cold.Confidence)
	}
	if cold.ICDCode != "J00" {
		t.Errorf("Expected ICD code J00, got %s", cold.ICDCode)
	}

	// Sneezing plus runny nose also satisfies the rhinitis two-hit cluster
	if _, ok := findMatchedCondition(result, "Allergic Rhinitis"); !ok {
		t.Error("Expected allergic rhinitis to match as well")
	}
	if len(result.MatchedConditions) != 2 {
		t.Errorf("Expected 2 matched conditions, got %d", len(result.MatchedConditions))
	}

	for _, generic := range []string{"Acetaminophen", "Dextromethorphan", "Pseudoephedrine", "Loratadine"} {
		if _, ok := findRecommendation(result, generic); !ok {
			t.Errorf("Expected %s to be recommended", generic)
		}
	}

	if result.EmergencyReferral {
		t.Error("Did not expect an emergency referral")
	}
	if result.ReferralRequired {
		t.Error("Did not expect a routine referral")
	}
	if len(result.Contraindicated) != 0 {
		t.Errorf("Expected no contraindications, got %v", result.Contraindicated)
	}
	if len(result.NonPharmacologicRecommendations) == 0 {
		t.Error("Expected non-pharmacologic recommendations")
	}
}

// TestRecommendEmergencyIndicator covers the emergency escalation path
func TestRecommendEmergencyIndicator(t *testing.T) {
	rs := ruleset.Builtin()

	result := Recommend(rs, []string{"thunderclap headache"}, adultPatient())

	headache, ok := findMatchedCondition(result, "Tension-Type Headache")
	if !ok {
		t.Fatal("Expected tension headache to match")
	}
	if headache.Severity != entities.SeveritySevere {
		t.Errorf("Expected severe severity, got %v", headache.Severity)
	}

	if !result.EmergencyReferral {
		t.Fatal("Expected an emergency referral")
	}
	if !strings.Contains(result.EmergencyReason, "thunderclap headache") {
		t.Errorf("Emergency reason should name the indicator verbatim, got %q", result.EmergencyReason)
	}

	// The emergency flag does not suppress the severe-tier recommendation
	if _, ok := findRecommendation(result, "Sumatriptan"); !ok {
		t.Error("Expected severe-tier medication to still be screened and recommended")
	}
}

// TestRecommendAllergyExclusion covers allergy class expansion
func TestRecommendAllergyExclusion(t *testing.T) {
	rs := ruleset.Builtin()
	patient := adultPatient()
	patient.Allergies = []string{"sulfa"}

	result := Recommend(rs, []string{"burning urination"}, patient)

	if _, ok := findMatchedCondition(result, "Uncomplicated Urinary Tract Infection"); !ok {
		t.Fatal("Expected UTI to match")
	}

	contra, ok := findContraindicated(result, "Trimethoprim-Sulfamethoxazole")
	if !ok {
		t.Fatal("Expected sulfa-class medication to be contraindicated")
	}
	if contra.Reason != "Patient allergy to sulfa" {
		t.Errorf("Reason should name the reported allergy, got %q", contra.Reason)
	}
	if _, ok := findRecommendation(result, "Trimethoprim-Sulfamethoxazole"); ok {
		t.Error("Contraindicated medication must not also be recommended")
	}

	if _, ok := findRecommendation(result, "Nitrofurantoin"); !ok {
		t.Error("Expected non-sulfa alternative to be recommended")
	}
}

// TestRecommendAllergyNoFalsePositive verifies class expansion does not bleed
// into unrelated drug names
func TestRecommendAllergyNoFalsePositive(t *testing.T) {
	rs := ruleset.Builtin()
	patient := adultPatient()
	patient.Allergies = []string{"penicillin"}

	result := Recommend(rs, []string{"high blood pressure"}, patient)

	if _, ok := findRecommendation(result, "Lisinopril"); !ok {
		t.Error("Penicillin allergy must not exclude lisinopril")
	}
	if len(result.Contraindicated) != 0 {
		t.Errorf("Expected no contraindications, got %v", result.Contraindicated)
	}
}

// TestRecommendDrugInteractions covers the interaction table with a class term
func TestRecommendDrugInteractions(t *testing.T) {
	rs := ruleset.Builtin()
	patient := adultPatient()
	patient.CurrentMedications = []string{"warfarin"}

	result := Recommend(rs, []string{"moderate headache"}, patient)

	headache, ok := findMatchedCondition(result, "Tension-Type Headache")
	if !ok {
		t.Fatal("Expected tension headache to match")
	}
	if headache.Severity != entities.SeverityModerate {
		t.Errorf("Expected moderate severity, got %v", headache.Severity)
	}

	// Both moderate-tier NSAIDs interact with warfarin via the class term
	var nsaidHits int
	for _, di := range result.DrugInteractions {
		if di.Medication2 != "warfarin" {
			t.Errorf("Expected interaction partner warfarin, got %s", di.Medication2)
		}
		if di.Severity == entities.SeveritySevere {
			nsaidHits++
		}
	}
	if nsaidHits != 2 {
		t.Errorf("Expected 2 severe warfarin-NSAID interactions, got %d", nsaidHits)
	}

	var severeWarnings int
	for _, w := range result.Warnings {
		if strings.HasPrefix(w, "Severe interaction:") {
			severeWarnings++
		}
	}
	if severeWarnings != 2 {
		t.Errorf("Expected 2 severe interaction warnings, got %d", severeWarnings)
	}

	// Interactions are informational: the medications stay recommended
	if _, ok := findRecommendation(result, "Ibuprofen"); !ok {
		t.Error("Interacting medication should still be recommended")
	}
}

// TestRecommendModerateSymptomsWithWarfarin reports a bare cluster symptom
// plus a moderate qualifier and expects the moderate tier to be screened
func TestRecommendModerateSymptomsWithWarfarin(t *testing.T) {
	rs := ruleset.Builtin()
	patient := adultPatient()
	patient.CurrentMedications = []string{"warfarin"}

	result := Recommend(rs, []string{"headache", "moderate symptoms"}, patient)

	headache, ok := findMatchedCondition(result, "Tension-Type Headache")
	if !ok {
		t.Fatal("Expected tension headache to match")
	}
	if headache.Severity != entities.SeverityModerate {
		t.Fatalf("Expected moderate severity, got %v", headache.Severity)
	}

	var ibuprofenWarfarin bool
	for _, di := range result.DrugInteractions {
		if di.Medication1 == "Ibuprofen" && di.Medication2 == "warfarin" && di.Severity == entities.SeveritySevere {
			ibuprofenWarfarin = true
		}
	}
	if !ibuprofenWarfarin {
		t.Errorf("Expected a severe ibuprofen-warfarin interaction, got %v", result.DrugInteractions)
	}

	var warned bool
	for _, w := range result.Warnings {
		if strings.HasPrefix(w, "Severe interaction: Ibuprofen with warfarin") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("Expected a severe interaction warning, got %v", result.Warnings)
	}

	if _, ok := findRecommendation(result, "Ibuprofen"); !ok {
		t.Error("Interacting medication should still be recommended")
	}
	if result.EmergencyReferral || result.ReferralRequired {
		t.Error("Did not expect any referral for a moderate headache")
	}
}

// TestRecommendBareHeadacheStaysMild verifies a symptom report with no
// threshold qualifier lands in the mild tier
func TestRecommendBareHeadacheStaysMild(t *testing.T) {
	rs := ruleset.Builtin()

	result := Recommend(rs, []string{"headache"}, adultPatient())

	headache, ok := findMatchedCondition(result, "Tension-Type Headache")
	if !ok {
		t.Fatal("Expected tension headache to match")
	}
	if headache.Severity != entities.SeverityMild {
		t.Errorf("Expected mild severity, got %v", headache.Severity)
	}

	if _, ok := findRecommendation(result, "Acetaminophen"); !ok {
		t.Error("Expected the mild-tier medication to be recommended")
	}
	if _, ok := findRecommendation(result, "Sumatriptan"); ok {
		t.Error("Severe-tier medication must not appear for a bare symptom report")
	}
	if result.EmergencyReferral || result.ReferralRequired {
		t.Error("Did not expect any referral for a bare symptom report")
	}
}

// TestBuiltinThresholdsDistinctFromClusterVocabulary guards the rule tables:
// a threshold or referral phrase containing a bare cluster symptom would
// escalate every report of that symptom
func TestBuiltinThresholdsDistinctFromClusterVocabulary(t *testing.T) {
	rs := ruleset.Builtin()

	for _, rule := range rs.Conditions {
		var phrases []string
		phrases = append(phrases, rule.SeverityThresholds.Severe...)
		phrases = append(phrases, rule.SeverityThresholds.Moderate...)
		phrases = append(phrases, rule.ReferralCriteria...)

		for _, cluster := range rule.SymptomClusters {
			for _, symptom := range cluster.Symptoms {
				for _, phrase := range phrases {
					if PhraseMatches(symptom, phrase) {
						t.Errorf("%s: phrase %q matches bare cluster symptom %q", rule.ID, phrase, symptom)
					}
				}
			}
		}
	}
}

// TestRecommendPregnancy covers pregnancy-based contraindication
func TestRecommendPregnancy(t *testing.T) {
	rs := ruleset.Builtin()
	patient := adultPatient()
	patient.IsPregnant = true

	result := Recommend(rs, []string{"hyperglycemia", "increased thirst", "excessive hunger"}, patient)

	if _, ok := findMatchedCondition(result, "Type 2 Diabetes Mellitus"); !ok {
		t.Fatal("Expected diabetes to match")
	}

	// Notes containing "Contraindicated" or "Avoid" remove the medication
	for _, generic := range []string{"Glipizide", "Empagliflozin"} {
		contra, ok := findContraindicated(result, generic)
		if !ok {
			t.Errorf("Expected %s to be contraindicated in pregnancy", generic)
			continue
		}
		if !strings.HasPrefix(contra.Reason, "Pregnancy:") {
			t.Errorf("Expected pregnancy reason for %s, got %q", generic, contra.Reason)
		}
	}

	// A softer note keeps the medication with a warning
	if _, ok := findRecommendation(result, "Metformin"); !ok {
		t.Fatal("Expected metformin to stay recommended")
	}
	var noted bool
	for _, w := range result.Warnings {
		if strings.Contains(w, "Pregnancy note for Metformin") {
			noted = true
		}
	}
	if !noted {
		t.Errorf("Expected a pregnancy note warning for metformin, got %v", result.Warnings)
	}
}

// TestRecommendEmptyInputs tests the empty-result paths
func TestRecommendEmptyInputs(t *testing.T) {
	rs := ruleset.Builtin()

	tests := []struct {
		name     string
		rs       *ruleset.Ruleset
		symptoms []string
	}{
		{name: "nil ruleset", rs: nil, symptoms: []string{"headache"}},
		{name: "empty symptoms", rs: rs, symptoms: nil},
		{name: "unrecognized symptoms", rs: rs, symptoms: []string{"glowing in the dark"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Recommend(tt.rs, tt.symptoms, adultPatient())

			if len(result.MatchedConditions) != 0 || len(result.Recommendations) != 0 {
				t.Errorf("Expected empty result, got %+v", result)
			}
			if result.MatchedConditions == nil || result.Recommendations == nil ||
				result.Contraindicated == nil || result.Warnings == nil ||
				result.DrugInteractions == nil || result.NonPharmacologicRecommendations == nil {
				t.Error("Result collections must be initialized, not nil")
			}
		})
	}
}

// TestRecommendPriorityOrdering verifies recommendations sort by priority rank
func TestRecommendPriorityOrdering(t *testing.T) {
	rs := ruleset.Builtin()

	result := Recommend(rs, []string{"runny nose", "sore throat"}, adultPatient())

	lastRank := -1
	for _, rec := range result.Recommendations {
		rank := entities.PriorityRank(rec.Priority)
		if rank < lastRank {
			t.Fatalf("Recommendations out of priority order: %v", result.Recommendations)
		}
		lastRank = rank
	}

	if len(result.Recommendations) > 0 && result.Recommendations[0].Priority != entities.PriorityFirstLine {
		t.Errorf("Expected a first-line medication first, got %v", result.Recommendations[0].Priority)
	}
}

// TestRecommendDeduplicatesGenerics verifies one entry per generic across conditions
func TestRecommendDeduplicatesGenerics(t *testing.T) {
	rs := ruleset.Builtin()

	// Cold and tension headache both carry acetaminophen in their mild tiers
	result := Recommend(rs, []string{"runny nose", "sore throat", "headache"}, adultPatient())

	count := 0
	for _, rec := range result.Recommendations {
		if rec.GenericName == "Acetaminophen" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected acetaminophen exactly once, got %d", count)
	}
}

// TestRecommendDeterministic verifies identical inputs give identical outputs
func TestRecommendDeterministic(t *testing.T) {
	rs := ruleset.Builtin()
	symptoms := []string{"runny nose", "sore throat", "headache"}
	patient := adultPatient()
	patient.Allergies = []string{"nsaid"}
	patient.CurrentMedications = []string{"warfarin"}

	first := Recommend(rs, symptoms, patient)
	second := Recommend(rs, symptoms, patient)

	if !reflect.DeepEqual(first, second) {
		t.Error("Recommend is not deterministic for identical inputs")
	}
}

// TestRecommendDoesNotMutateRuleset verifies population adjustments work on copies
func TestRecommendDoesNotMutateRuleset(t *testing.T) {
	rs := ruleset.Builtin()

	rule, ok := rs.ConditionByID("tension-headache")
	if !ok {
		t.Fatal("Expected tension-headache rule")
	}
	originalDose := rule.Medications.Mild[0].StandardDose

	patient := entities.PatientContext{AgeGroup: entities.AgePediatric}
	result := Recommend(rs, []string{"headache"}, patient)

	rec, ok := findRecommendation(result, "Acetaminophen")
	if !ok {
		t.Fatal("Expected acetaminophen recommendation")
	}
	if rec.StandardDose == originalDose {
		t.Error("Expected pediatric dose substitution in the result")
	}

	ruleAfter, _ := rs.ConditionByID("tension-headache")
	if ruleAfter.Medications.Mild[0].StandardDose != originalDose {
		t.Error("Engine mutated the rule table")
	}
}

// TestRecommendFollowUpLastWriter verifies follow-up text is last-writer-wins
func TestRecommendFollowUpLastWriter(t *testing.T) {
	rs := ruleset.Builtin()

	// Cold (table position 0) and rhinitis (position 4) both match; the later
	// condition's follow-up text wins.
	result := Recommend(rs, []string{"runny nose", "sore throat", "sneezing"}, adultPatient())

	rhinitis, _ := rs.ConditionByID("allergic-rhinitis")
	if result.FollowUp != rhinitis.FollowUpRecommendation {
		t.Errorf("Expected follow-up from the last matched condition, got %q", result.FollowUp)
	}
}

// TestRecommendReferralCriteria covers the routine referral path
func TestRecommendReferralCriteria(t *testing.T) {
	rs := ruleset.Builtin()

	result := Recommend(rs, []string{"burning urination", "recurrent infections"}, adultPatient())

	if !result.ReferralRequired {
		t.Fatal("Expected a routine referral")
	}
	if !strings.Contains(result.ReferralReason, "recurrent infections") {
		t.Errorf("Referral reason should name the criterion, got %q", result.ReferralReason)
	}
	if result.EmergencyReferral {
		t.Error("Routine referral must not set the emergency flag")
	}
}
