package advisor

import "github.com/caregrid/advisor-api/advisor/entities"

// classifySeverity walks the three-tier ladder: any severe-threshold phrase
// among the reported symptoms classifies the match severe, else any moderate
// phrase classifies it moderate, else mild. A condition with no threshold hits
// is always mild regardless of how sparse its cluster matches were.
func classifySeverity(symptoms []string, rule *entities.ConditionRule) entities.Severity {
	for _, phrase := range rule.SeverityThresholds.Severe {
		if anySymptomMatches(symptoms, phrase) {
			return entities.SeveritySevere
		}
	}
	for _, phrase := range rule.SeverityThresholds.Moderate {
		if anySymptomMatches(symptoms, phrase) {
			return entities.SeverityModerate
		}
	}
	return entities.SeverityMild
}
