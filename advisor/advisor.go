package advisor

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/caregrid/advisor-api/advisor/entities"
	"github.com/caregrid/advisor-api/interfaces"
	"github.com/caregrid/advisor-api/ruleset"
)

// Compile-time check to ensure Advisor implements the Advisor interface
var _ interfaces.Advisor = (*Advisor)(nil)

// Advisor serves recommendations against the currently active ruleset.
type Advisor struct {
	store interfaces.RuleStore
}

// New creates an advisor bound to a rule store.
func New(store interfaces.RuleStore) *Advisor {
	return &Advisor{store: store}
}

// Recommend runs the engine against the active ruleset snapshot.
func (a *Advisor) Recommend(symptoms []string, patient entities.PatientContext) entities.AdvisorResult {
	return Recommend(a.store.GetRuleset(), symptoms, patient)
}

// Recommend is a single-pass fold over the condition table: score every
// condition, and for each candidate (score > 0) classify severity, scan
// emergency/referral indicators, screen the tier's medications, and collect
// self-care advice. Pure and deterministic; inputs are never mutated.
//
// Aggregation quirks kept for compatibility with the published behavior:
// the emergency flag is sticky once set but its reason is rewritten by later
// matching conditions, and referral reason and follow-up text are
// last-writer-wins across matched conditions rather than merged.
func Recommend(rs *ruleset.Ruleset, symptoms []string, patient entities.PatientContext) entities.AdvisorResult {
	result := entities.NewAdvisorResult()
	if rs == nil || len(symptoms) == 0 {
		return result
	}

	eval := &evaluation{
		rs:      rs,
		patient: &patient,
		result:  &result,
		seen:    make(map[string]bool),
	}

	for i := range rs.Conditions {
		rule := &rs.Conditions[i]

		score := scoreCondition(symptoms, rule)
		if score <= 0 {
			continue
		}

		severity := classifySeverity(symptoms, rule)
		result.MatchedConditions = append(result.MatchedConditions, entities.MatchedCondition{
			Condition:  rule.Condition,
			ICDCode:    rule.ICDCode,
			Confidence: int(math.Round(score * 100)),
			Severity:   severity,
		})

		for _, indicator := range rule.EmergencyIndicators {
			if anySymptomMatches(symptoms, indicator) {
				result.EmergencyReferral = true
				result.EmergencyReason = fmt.Sprintf("Emergency indicator present: %s", indicator)
				break
			}
		}

		for _, criterion := range rule.ReferralCriteria {
			if anySymptomMatches(symptoms, criterion) {
				result.ReferralRequired = true
				result.ReferralReason = fmt.Sprintf("Referral recommended: %s", criterion)
				break
			}
		}

		for _, med := range rule.Medications.ForSeverity(severity) {
			eval.screenMedication(med)
		}

		result.NonPharmacologicRecommendations = append(result.NonPharmacologicRecommendations, rule.NonPharmacologicTreatments...)
		result.FollowUp = rule.FollowUpRecommendation
	}

	sort.SliceStable(result.Recommendations, func(i, j int) bool {
		return entities.PriorityRank(result.Recommendations[i].Priority) <
			entities.PriorityRank(result.Recommendations[j].Priority)
	})

	result.NonPharmacologicRecommendations = dedupeStrings(result.NonPharmacologicRecommendations)

	return result
}

// dedupeStrings removes case-insensitive duplicates preserving first-seen order.
func dedupeStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
