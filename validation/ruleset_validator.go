// Package validation provides input and ruleset validation for the advisor API.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/caregrid/advisor-api/advisor/entities"
	"github.com/caregrid/advisor-api/interfaces"
	"github.com/caregrid/advisor-api/ruleset"
)

// Maximum lengths accepted for user-supplied strings
const (
	maxInputLength  = 200
	maxSymptomCount = 50
)

// Pre-compiled patterns, compiled once at package initialization
var (
	// Symptom and drug-name input: letters, digits, whitespace and the
	// punctuation that occurs in clinical phrasing ("160/800 mg",
	// "trimethoprim-sulfamethoxazole", "worst headache of my life").
	inputRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'/(),àâäéèêëïîôöùûüÿç]+$`)

	// Dangerous fragments checked with strings.Contains, which is much
	// faster than a regex alternation for plain substrings.
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "onmouseover=", "eval(", "expression(", "@import",
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"--", "/*", "*/", "exec(", "execute(",
		"; ", "| ", "& ", "`", "$(", "${",
		"../", "..\\", "%2e%2e", "file://",
		"{$ne:", "{$gt:", "{$where:", "{$regex:",
	}
)

// Compile-time check to ensure RulesetValidator implements InputValidator
var _ interfaces.InputValidator = (*RulesetValidator)(nil)

// RulesetValidator implements the interfaces.InputValidator interface
type RulesetValidator struct{}

// NewRulesetValidator creates a new validator
func NewRulesetValidator() *RulesetValidator {
	return &RulesetValidator{}
}

// ValidateInput validates one user-supplied string
func (v *RulesetValidator) ValidateInput(input string) error {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(trimmed) > maxInputLength {
		return fmt.Errorf("input too long: %d characters (max %d)", len(trimmed), maxInputLength)
	}

	lower := strings.ToLower(trimmed)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("input contains disallowed sequence")
		}
	}

	if !inputRegex.MatchString(trimmed) {
		return fmt.Errorf("input contains unsupported characters")
	}

	return nil
}

// ValidateSymptoms validates a reported symptom list. An empty list is legal:
// the engine answers it with an empty result rather than an error, so only
// list size and individual entries are checked here.
func (v *RulesetValidator) ValidateSymptoms(symptoms []string) error {
	if len(symptoms) > maxSymptomCount {
		return fmt.Errorf("too many symptoms: %d (max %d)", len(symptoms), maxSymptomCount)
	}

	for i, s := range symptoms {
		if err := v.ValidateInput(s); err != nil {
			return fmt.Errorf("symptom %d: %w", i+1, err)
		}
	}

	return nil
}

// ValidateRuleset rejects rulesets that must never be swapped into the store.
// Anything reported here is fatal; softer issues go into the quality report.
func (v *RulesetValidator) ValidateRuleset(rs *ruleset.Ruleset) error {
	if rs == nil {
		return fmt.Errorf("ruleset is nil")
	}

	if rs.Version == "" {
		return fmt.Errorf("ruleset has no version")
	}

	if len(rs.Conditions) == 0 {
		return fmt.Errorf("ruleset has no conditions")
	}

	for _, c := range rs.Conditions {
		if c.ID == "" {
			return fmt.Errorf("condition %q has no id", c.Condition)
		}
		if c.Condition == "" {
			return fmt.Errorf("condition %s has no display name", c.ID)
		}
	}

	return nil
}

// ReportRulesetQuality collects non-fatal quality issues for operator review.
// The scheduler logs the report after every load.
func (v *RulesetValidator) ReportRulesetQuality(rs *ruleset.Ruleset) *interfaces.RulesetQualityReport {
	report := &interfaces.RulesetQualityReport{}
	if rs == nil {
		return report
	}

	seenIDs := make(map[string]bool)
	for _, c := range rs.Conditions {
		if seenIDs[c.ID] {
			report.DuplicateConditionIDs = append(report.DuplicateConditionIDs, c.ID)
		}
		seenIDs[c.ID] = true

		if len(c.SymptomClusters) == 0 {
			report.ConditionsWithoutClusters = append(report.ConditionsWithoutClusters, c.ID)
		}

		for _, cluster := range c.SymptomClusters {
			if cluster.RequiredCount > len(cluster.Symptoms) {
				report.UnsatisfiableClusters = append(report.UnsatisfiableClusters, c.ID)
				break
			}
		}

		v.checkTier(c.ID, c.Medications.Mild, report)
		v.checkTier(c.ID, c.Medications.Moderate, report)
		v.checkTier(c.ID, c.Medications.Severe, report)
	}

	for _, rule := range rs.Interactions {
		if strings.TrimSpace(rule.Drug1) == "" || strings.TrimSpace(rule.Drug2) == "" {
			report.InteractionsMissingDrugs++
		}
	}

	for class, members := range rs.AllergyClasses {
		if len(members) == 0 {
			report.EmptyAllergyClasses = append(report.EmptyAllergyClasses, class)
		}
	}

	return report
}

// checkTier validates one severity tier's medication list
func (v *RulesetValidator) checkTier(conditionID string, meds []entities.MedicationRecommendation, report *interfaces.RulesetQualityReport) {
	if len(meds) == 0 {
		report.EmptySeverityTiers++
		return
	}

	for _, m := range meds {
		if strings.TrimSpace(m.GenericName) == "" {
			report.MedicationsMissingGeneric = appendUnique(report.MedicationsMissingGeneric, conditionID)
		}
		if entities.PriorityRank(m.Priority) > 2 {
			report.UnknownPriorities = appendUnique(report.UnknownPriorities, conditionID)
		}
	}
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
