// Package scheduler provides automated ruleset reloads and health monitoring
// for the advisor API. It handles cron-based guideline refreshes, quality
// reporting, and coordinates swaps with the rule store using dependency
// injection.
package scheduler

import (
	"fmt"
	"time"

	"github.com/caregrid/advisor-api/interfaces"
	"github.com/caregrid/advisor-api/logging"
	"github.com/go-co-op/gocron"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles ruleset reloads and health monitoring using dependency injection
type Scheduler struct {
	ruleStore interfaces.RuleStore
	loader    interfaces.RulesetLoader
	validator interfaces.InputValidator
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(ruleStore interfaces.RuleStore, loader interfaces.RulesetLoader, validator interfaces.InputValidator) *Scheduler {
	return &Scheduler{
		ruleStore: ruleStore,
		loader:    loader,
		validator: validator,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start performs the initial ruleset load and schedules daily refreshes.
// Daily refreshes exist so an edited guideline file (RULESET_PATH) is picked
// up without a restart; with the compiled-in tables a refresh is a no-op swap
// that still re-runs the quality report.
func (s *Scheduler) Start() error {
	if err := s.reload(); err != nil {
		logging.Error("Failed to perform initial ruleset load", "error", err)
		return fmt.Errorf("initial ruleset load failed: %w", err)
	}

	_, err := s.scheduler.Every(1).Days().At("05:30").Do(func() {
		if err := s.reload(); err != nil {
			logging.Error("Failed to reload ruleset", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule ruleset reloads", "error", err)
		return fmt.Errorf("failed to schedule ruleset reloads: %w", err)
	}

	s.scheduler.StartAsync()

	s.startHealthMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// reload loads, validates and swaps in a fresh ruleset snapshot. On any
// failure the store keeps serving the previous snapshot.
func (s *Scheduler) reload() error {
	// Prevent concurrent reloads
	if !s.ruleStore.BeginLoad() {
		logging.Info("Ruleset load already in progress, skipping...")
		return nil
	}
	defer s.ruleStore.EndLoad()

	start := time.Now()

	rs, err := s.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load ruleset: %w", err)
	}

	if err := s.validator.ValidateRuleset(rs); err != nil {
		return fmt.Errorf("ruleset rejected by validation: %w", err)
	}

	s.logQualityReport(s.validator.ReportRulesetQuality(rs))

	s.ruleStore.SwapRuleset(rs)

	logging.Info("Ruleset loaded",
		"version", rs.Version,
		"conditions", len(rs.Conditions),
		"interaction_rules", len(rs.Interactions),
		"allergy_classes", len(rs.AllergyClasses),
		"duration", time.Since(start).String(),
	)

	return nil
}

// logQualityReport surfaces non-fatal ruleset issues for operator review
func (s *Scheduler) logQualityReport(report *interfaces.RulesetQualityReport) {
	if report == nil {
		return
	}

	if len(report.DuplicateConditionIDs) > 0 {
		logging.Warn("Duplicate condition IDs detected",
			"total", len(report.DuplicateConditionIDs),
			"ids", report.DuplicateConditionIDs,
		)
	}

	if len(report.ConditionsWithoutClusters) > 0 {
		logging.Warn("Conditions without symptom clusters",
			"ids", report.ConditionsWithoutClusters,
		)
	}

	if len(report.UnsatisfiableClusters) > 0 {
		logging.Warn("Clusters requiring more symptoms than they contain",
			"ids", report.UnsatisfiableClusters,
		)
	}

	if len(report.MedicationsMissingGeneric) > 0 {
		logging.Warn("Medications without generic names",
			"ids", report.MedicationsMissingGeneric,
		)
	}

	if len(report.UnknownPriorities) > 0 {
		logging.Warn("Medications with unknown priority values",
			"ids", report.UnknownPriorities,
		)
	}

	if report.InteractionsMissingDrugs > 0 {
		logging.Warn("Interaction rules with empty drug terms",
			"total", report.InteractionsMissingDrugs,
		)
	}

	if len(report.EmptyAllergyClasses) > 0 {
		logging.Warn("Allergy classes with no members",
			"classes", report.EmptyAllergyClasses,
		)
	}
}

// startHealthMonitoring warns periodically when no ruleset is available
func (s *Scheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if rs := s.ruleStore.GetRuleset(); rs == nil || len(rs.Conditions) == 0 {
				logging.Warn("No ruleset loaded; advisor requests will return empty results")
			}
		}
	}()
}
