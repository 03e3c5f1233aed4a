// Package health provides health checking functionality for the advisor API.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/caregrid/advisor-api/interfaces"
)

// Compile-time check to ensure HealthCheckerImpl implements HealthChecker
var _ interfaces.HealthChecker = (*HealthCheckerImpl)(nil)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	ruleStore interfaces.RuleStore
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(ruleStore interfaces.RuleStore) *HealthCheckerImpl {
	return &HealthCheckerImpl{ruleStore: ruleStore}
}

// HealthCheck returns health data for the /health HTTP endpoint. The service
// is unhealthy without a loaded ruleset; a very old load only degrades it
// because the compiled-in tables never expire.
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	rs := h.ruleStore.GetRuleset()
	lastLoaded := h.ruleStore.GetLastLoaded()
	isLoading := h.ruleStore.IsLoading()

	loadAge := time.Since(lastLoaded)

	switch {
	case rs == nil || len(rs.Conditions) == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case isLoading && loadAge > 6*time.Hour:
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"last_loaded":    lastLoaded.Format(time.RFC3339),
		"load_age_hours": math.Round(loadAge.Hours()*10) / 10,
		"is_loading":     isLoading,
	}

	if rs != nil {
		data["ruleset_version"] = rs.Version
		data["conditions"] = len(rs.Conditions)
		data["interaction_rules"] = len(rs.Interactions)
		data["allergy_classes"] = len(rs.AllergyClasses)
	}

	return status, data, httpStatus
}
