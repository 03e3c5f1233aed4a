package health

import (
	"net/http"
	"testing"
	"time"

	"github.com/caregrid/advisor-api/ruleset"
)

// mockRuleStore implements interfaces.RuleStore for health checks
type mockRuleStore struct {
	rs         *ruleset.Ruleset
	lastLoaded time.Time
	loading    bool
	startTime  time.Time
}

func (m *mockRuleStore) GetRuleset() *ruleset.Ruleset    { return m.rs }
func (m *mockRuleStore) GetLastLoaded() time.Time        { return m.lastLoaded }
func (m *mockRuleStore) IsLoading() bool                 { return m.loading }
func (m *mockRuleStore) GetServerStartTime() time.Time   { return m.startTime }
func (m *mockRuleStore) SetServerStartTime(t time.Time)  { m.startTime = t }
func (m *mockRuleStore) SwapRuleset(rs *ruleset.Ruleset) { m.rs = rs; m.lastLoaded = time.Now() }
func (m *mockRuleStore) BeginLoad() bool                 { m.loading = true; return true }
func (m *mockRuleStore) EndLoad()                        { m.loading = false }

// TestHealthCheck tests status classification
func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name           string
		store          *mockRuleStore
		expectedStatus string
		expectedHTTP   int
	}{
		{
			name:           "no ruleset is unhealthy",
			store:          &mockRuleStore{lastLoaded: time.Now()},
			expectedStatus: "unhealthy",
			expectedHTTP:   http.StatusServiceUnavailable,
		},
		{
			name: "empty ruleset is unhealthy",
			store: &mockRuleStore{
				rs:         &ruleset.Ruleset{Version: "1"},
				lastLoaded: time.Now(),
			},
			expectedStatus: "unhealthy",
			expectedHTTP:   http.StatusServiceUnavailable,
		},
		{
			name: "loaded ruleset is healthy",
			store: &mockRuleStore{
				rs:         ruleset.Builtin(),
				lastLoaded: time.Now(),
			},
			expectedStatus: "healthy",
			expectedHTTP:   http.StatusOK,
		},
		{
			name: "stuck load is degraded",
			store: &mockRuleStore{
				rs:         ruleset.Builtin(),
				lastLoaded: time.Now().Add(-7 * time.Hour),
				loading:    true,
			},
			expectedStatus: "degraded",
			expectedHTTP:   http.StatusServiceUnavailable,
		},
		{
			name: "fresh load in progress stays healthy",
			store: &mockRuleStore{
				rs:         ruleset.Builtin(),
				lastLoaded: time.Now(),
				loading:    true,
			},
			expectedStatus: "healthy",
			expectedHTTP:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewHealthChecker(tt.store)

			status, data, httpStatus := checker.HealthCheck()

			if status != tt.expectedStatus {
				t.Errorf("Expected status %s, got %s", tt.expectedStatus, status)
			}
			if httpStatus != tt.expectedHTTP {
				t.Errorf("Expected HTTP %d, got %d", tt.expectedHTTP, httpStatus)
			}
			if data == nil {
				t.Fatal("Expected health data")
			}
			if _, ok := data["is_loading"]; !ok {
				t.Error("Expected is_loading in health data")
			}
		})
	}
}

// TestHealthCheckData tests ruleset statistics in the data map
func TestHealthCheckData(t *testing.T) {
	store := &mockRuleStore{rs: ruleset.Builtin(), lastLoaded: time.Now()}
	checker := NewHealthChecker(store)

	_, data, _ := checker.HealthCheck()

	if data["ruleset_version"] != store.rs.Version {
		t.Errorf("Expected ruleset version %s, got %v", store.rs.Version, data["ruleset_version"])
	}
	if data["conditions"] != len(store.rs.Conditions) {
		t.Errorf("Expected %d conditions, got %v", len(store.rs.Conditions), data["conditions"])
	}
	if data["interaction_rules"] != len(store.rs.Interactions) {
		t.Errorf("Expected %d interaction rules, got %v", len(store.rs.Interactions), data["interaction_rules"])
	}
}
