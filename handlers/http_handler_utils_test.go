package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/caregrid/advisor-api/advisor/entities"
	"github.com/caregrid/advisor-api/interfaces"
	"github.com/caregrid/advisor-api/ruleset"
	"github.com/go-chi/chi/v5"
)

// ============================================================================
// MOCK BUILDERS
// ============================================================================

// MockRuleStore implements interfaces.RuleStore for testing
type MockRuleStore struct {
	rs         *ruleset.Ruleset
	lastLoaded time.Time
	loading    bool
	startTime  time.Time
}

func (m *MockRuleStore) GetRuleset() *ruleset.Ruleset    { return m.rs }
func (m *MockRuleStore) GetLastLoaded() time.Time        { return m.lastLoaded }
func (m *MockRuleStore) IsLoading() bool                 { return m.loading }
func (m *MockRuleStore) GetServerStartTime() time.Time   { return m.startTime }
func (m *MockRuleStore) SetServerStartTime(t time.Time)  { m.startTime = t }
func (m *MockRuleStore) SwapRuleset(rs *ruleset.Ruleset) { m.rs = rs; m.lastLoaded = time.Now() }
func (m *MockRuleStore) BeginLoad() bool                 { m.loading = true; return true }
func (m *MockRuleStore) EndLoad()                        { m.loading = false }

// MockRuleStoreBuilder provides fluent interface for building mock rule stores
type MockRuleStoreBuilder struct {
	mock *MockRuleStore
}

func NewMockRuleStoreBuilder() *MockRuleStoreBuilder {
	return &MockRuleStoreBuilder{
		mock: &MockRuleStore{
			rs:         ruleset.Builtin(),
			lastLoaded: time.Now(),
			startTime:  time.Now(),
		},
	}
}

func (b *MockRuleStoreBuilder) WithRuleset(rs *ruleset.Ruleset) *MockRuleStoreBuilder {
	b.mock.rs = rs
	return b
}

func (b *MockRuleStoreBuilder) WithLoading(loading bool) *MockRuleStoreBuilder {
	b.mock.loading = loading
	return b
}

func (b *MockRuleStoreBuilder) Build() *MockRuleStore {
	return b.mock
}

// MockAdvisor implements interfaces.Advisor with a canned result
type MockAdvisor struct {
	result       entities.AdvisorResult
	lastSymptoms []string
	lastPatient  entities.PatientContext
	called       bool
}

func (m *MockAdvisor) Recommend(symptoms []string, patient entities.PatientContext) entities.AdvisorResult {
	m.called = true
	m.lastSymptoms = symptoms
	m.lastPatient = patient
	return m.result
}

// MockValidator implements interfaces.InputValidator for testing
type MockValidator struct {
	inputErr    error
	symptomsErr error
	rulesetErr  error
}

func (m *MockValidator) ValidateInput(input string) error          { return m.inputErr }
func (m *MockValidator) ValidateSymptoms(symptoms []string) error  { return m.symptomsErr }
func (m *MockValidator) ValidateRuleset(rs *ruleset.Ruleset) error { return m.rulesetErr }
func (m *MockValidator) ReportRulesetQuality(rs *ruleset.Ruleset) *interfaces.RulesetQualityReport {
	return &interfaces.RulesetQualityReport{}
}

// MockHealthChecker implements interfaces.HealthChecker for testing
type MockHealthChecker struct {
	status     string
	data       map[string]any
	httpStatus int
}

func (m *MockHealthChecker) HealthCheck() (string, map[string]any, int) {
	return m.status, m.data, m.httpStatus
}

func newTestHandler() (*HTTPHandlerImpl, *MockRuleStore, *MockAdvisor, *MockValidator) {
	store := NewMockRuleStoreBuilder().Build()
	adv := &MockAdvisor{result: entities.NewAdvisorResult()}
	validator := &MockValidator{}
	health := &MockHealthChecker{
		status:     "healthy",
		data:       map[string]any{"is_loading": false},
		httpStatus: http.StatusOK,
	}
	return NewHTTPHandler(store, adv, validator, health), store, adv, validator
}

// ============================================================================
// HTTP TEST UTILITIES
// ============================================================================

// executeRequest executes an HTTP handler with optional chi URL parameters
func executeRequest(handler http.HandlerFunc, method, path string, body io.Reader, urlParams map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)

	if len(urlParams) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range urlParams {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

// assertJSONResponse asserts status and decodes the body into target
func assertJSONResponse(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if resp.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, resp.Code)
	}

	if err := json.Unmarshal(resp.Body.Bytes(), target); err != nil {
		t.Errorf("Response should be valid JSON, got error: %v (body: %s)", err, resp.Body.String())
	}
}

// assertErrorResponse asserts an error envelope with the expected status
func assertErrorResponse(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()

	if resp.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, resp.Code)
	}

	var errorResp map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &errorResp); err != nil {
		t.Fatalf("Error response should be valid JSON, got error: %v", err)
	}

	if _, ok := errorResp["message"]; !ok {
		t.Error("Error response should have message field")
	}
	if _, ok := errorResp["code"]; !ok {
		t.Error("Error response should have code field")
	}
}
