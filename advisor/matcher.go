package advisor

import "github.com/caregrid/advisor-api/advisor/entities"

// scoreCondition returns the fraction of the rule's symptom clusters satisfied
// by the reported symptoms, in [0,1]. A cluster is satisfied when at least
// RequiredCount of its phrases have a match among the reported symptoms, so a
// cluster with RequiredCount of zero always counts as satisfied. The score
// does not depend on the order of the reported symptoms.
func scoreCondition(symptoms []string, rule *entities.ConditionRule) float64 {
	if len(rule.SymptomClusters) == 0 {
		return 0
	}

	matched := 0
	for _, cluster := range rule.SymptomClusters {
		hits := 0
		for _, phrase := range cluster.Symptoms {
			if anySymptomMatches(symptoms, phrase) {
				hits++
			}
		}
		if hits >= cluster.RequiredCount {
			matched++
		}
	}

	return float64(matched) / float64(len(rule.SymptomClusters))
}
