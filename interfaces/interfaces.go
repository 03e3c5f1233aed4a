// Package interfaces defines core abstractions for the advisor API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"time"

	"github.com/caregrid/advisor-api/advisor/entities"
	"github.com/caregrid/advisor-api/ruleset"
)

// RulesetQualityReport summarizes structural issues found in a ruleset.
type RulesetQualityReport struct {
	DuplicateConditionIDs     []string
	ConditionsWithoutClusters []string
	UnsatisfiableClusters     []string // condition IDs with requiredCount > cluster size
	MedicationsMissingGeneric []string // condition IDs with unnamed medications
	UnknownPriorities         []string // condition IDs with unknown priority values
	EmptySeverityTiers        int      // severity tiers with no medications
	InteractionsMissingDrugs  int      // interaction rules with an empty drug term
	EmptyAllergyClasses       []string
}

// RuleStore provides thread-safe access to the active ruleset with atomic
// swaps for zero-downtime guideline updates.
type RuleStore interface {
	GetRuleset() *ruleset.Ruleset
	GetLastLoaded() time.Time
	IsLoading() bool
	GetServerStartTime() time.Time
	SetServerStartTime(t time.Time)

	// SwapRuleset atomically replaces the active ruleset.
	SwapRuleset(rs *ruleset.Ruleset)
	BeginLoad() bool
	EndLoad()
}

// Advisor is the single entry point of the recommendation engine. It never
// returns an error: empty or unrecognized symptoms yield an empty result.
type Advisor interface {
	Recommend(symptoms []string, patient entities.PatientContext) entities.AdvisorResult
}

// RulesetLoader produces ruleset snapshots, either the compiled-in tables or
// an operator-supplied guideline file.
type RulesetLoader interface {
	Load() (*ruleset.Ruleset, error)
}

// Scheduler manages automated ruleset reloads and health monitoring.
type Scheduler interface {
	Start() error
	Stop()
}

// HealthChecker reports system health for the /health endpoint.
type HealthChecker interface {
	HealthCheck() (status string, data map[string]any, httpStatus int)
}

// InputValidator validates user-supplied input and ruleset snapshots.
type InputValidator interface {
	// ValidateInput validates a single user-supplied string.
	ValidateInput(input string) error

	// ValidateSymptoms validates a reported symptom list.
	ValidateSymptoms(symptoms []string) error

	// ValidateRuleset rejects rulesets that must not be swapped in.
	ValidateRuleset(rs *ruleset.Ruleset) error

	// ReportRulesetQuality collects non-fatal quality issues.
	ReportRulesetQuality(rs *ruleset.Ruleset) *RulesetQualityReport
}
