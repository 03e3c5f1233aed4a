// Package handlers provides HTTP request handlers for the advisor API
// endpoints. It includes the assessment endpoint, ruleset browsing endpoints,
// health checks, and response formatting with proper input validation and
// error handling.
package handlers

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/caregrid/advisor-api/advisor"
	"github.com/caregrid/advisor-api/advisor/entities"
	"github.com/caregrid/advisor-api/interfaces"
	"github.com/caregrid/advisor-api/logging"
	"github.com/caregrid/advisor-api/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Minimum response size to consider compression (1KB)
const compressionThreshold = 1024

// HTTPHandlerImpl implements the HTTP endpoints with dependency injection
type HTTPHandlerImpl struct {
	ruleStore interfaces.RuleStore
	advisor   interfaces.Advisor
	validator interfaces.InputValidator
	health    interfaces.HealthChecker
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(ruleStore interfaces.RuleStore, adv interfaces.Advisor, validator interfaces.InputValidator, health interfaces.HealthChecker) *HTTPHandlerImpl {
	return &HTTPHandlerImpl{
		ruleStore: ruleStore,
		advisor:   adv,
		validator: validator,
		health:    health,
	}
}

// RespondWithJSON writes a JSON response with compression optimization
func (h *HTTPHandlerImpl) RespondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))

	shouldCompress := len(data) >= compressionThreshold &&
		strings.Contains(strings.ToLower(r.Header.Get("Accept-Encoding")), "gzip")

	if shouldCompress {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(code)
		gz := gzip.NewWriter(w)
		defer gz.Close()
		gz.Write(data)
		return
	}

	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response
func (h *HTTPHandlerImpl) RespondWithError(w http.ResponseWriter, r *http.Request, code int, message string) {
	errorResponse := map[string]interface{}{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	h.RespondWithJSON(w, r, code, errorResponse)
}

// AssessRequest is the POST /assess request body
type AssessRequest struct {
	Symptoms []string                `json:"symptoms"`
	Patient  entities.PatientContext `json:"patient"`
}

// AssessResponse wraps an advisor result with per-request envelope fields.
// The engine output itself carries no identifiers or timestamps; those exist
// only at the HTTP boundary.
type AssessResponse struct {
	AssessmentID   string                 `json:"assessmentId"`
	GeneratedAt    string                 `json:"generatedAt"`
	RulesetVersion string                 `json:"rulesetVersion"`
	Result         entities.AdvisorResult `json:"result"`
}

// Assess runs the advisor engine against the posted symptoms and patient context
func (h *HTTPHandlerImpl) Assess(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logging.Warn("Invalid assessment request body", "error", err, "remote_addr", r.RemoteAddr)
		h.RespondWithError(w, r, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validator.ValidateSymptoms(req.Symptoms); err != nil {
		h.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	for _, field := range [][]string{req.Patient.Allergies, req.Patient.CurrentMedications, req.Patient.ChronicConditions} {
		for _, value := range field {
			if err := h.validator.ValidateInput(value); err != nil {
				h.RespondWithError(w, r, http.StatusBadRequest, err.Error())
				return
			}
		}
	}

	rs := h.ruleStore.GetRuleset()
	if rs == nil {
		h.RespondWithError(w, r, http.StatusServiceUnavailable, "Ruleset not loaded yet")
		return
	}

	start := time.Now()
	result := h.advisor.Recommend(req.Symptoms, req.Patient)
	metrics.AdvisorDuration.Observe(time.Since(start).Seconds())
	metrics.AssessmentsTotal.Inc()
	if result.EmergencyReferral {
		metrics.EmergencyReferralsTotal.Inc()
	}

	response := AssessResponse{
		AssessmentID:   uuid.NewString(),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		RulesetVersion: rs.Version,
		Result:         result,
	}

	h.RespondWithJSON(w, r, http.StatusOK, response)
}

// ConditionSummary is the list form of a condition rule
type ConditionSummary struct {
	ID        string `json:"id"`
	Condition string `json:"condition"`
	ICDCode   string `json:"icdCode"`
}

// ListConditions returns summaries of all condition rules
func (h *HTTPHandlerImpl) ListConditions(w http.ResponseWriter, r *http.Request) {
	rs := h.ruleStore.GetRuleset()
	if rs == nil {
		h.RespondWithError(w, r, http.StatusServiceUnavailable, "Ruleset not loaded yet")
		return
	}

	summaries := make([]ConditionSummary, 0, len(rs.Conditions))
	for _, c := range rs.Conditions {
		summaries = append(summaries, ConditionSummary{
			ID:        c.ID,
			Condition: c.Condition,
			ICDCode:   c.ICDCode,
		})
	}

	h.RespondWithJSON(w, r, http.StatusOK, summaries)
}

// FindConditionByID returns the full rule for one condition
func (h *HTTPHandlerImpl) FindConditionByID(w http.ResponseWriter, r *http.Request) {
	conditionID := chi.URLParam(r, "conditionId")
	if err := h.validator.ValidateInput(conditionID); err != nil {
		h.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rs := h.ruleStore.GetRuleset()
	if rs == nil {
		h.RespondWithError(w, r, http.StatusServiceUnavailable, "Ruleset not loaded yet")
		return
	}

	rule, exists := rs.ConditionByID(conditionID)
	if !exists {
		h.RespondWithError(w, r, http.StatusNotFound, "Condition not found")
		return
	}

	h.RespondWithJSON(w, r, http.StatusOK, rule)
}

// SearchConditions returns conditions whose symptom vocabulary matches the term
func (h *HTTPHandlerImpl) SearchConditions(w http.ResponseWriter, r *http.Request) {
	symptom := chi.URLParam(r, "symptom")
	if err := h.validator.ValidateInput(symptom); err != nil {
		h.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rs := h.ruleStore.GetRuleset()
	if rs == nil {
		h.RespondWithError(w, r, http.StatusServiceUnavailable, "Ruleset not loaded yet")
		return
	}

	results := make([]ConditionSummary, 0)
	for _, c := range rs.Conditions {
		if conditionMentionsSymptom(c, symptom) {
			results = append(results, ConditionSummary{
				ID:        c.ID,
				Condition: c.Condition,
				ICDCode:   c.ICDCode,
			})
		}
	}

	// Always return 200 with results array (empty if no matches)
	h.RespondWithJSON(w, r, http.StatusOK, results)
}

// conditionMentionsSymptom checks the rule's cluster vocabulary for the term
func conditionMentionsSymptom(rule entities.ConditionRule, symptom string) bool {
	for _, cluster := range rule.SymptomClusters {
		for _, phrase := range cluster.Symptoms {
			if advisor.PhraseMatches(symptom, phrase) {
				return true
			}
		}
	}
	return false
}

// FindInteractions returns interaction rules mentioning the given drug term
func (h *HTTPHandlerImpl) FindInteractions(w http.ResponseWriter, r *http.Request) {
	drug := chi.URLParam(r, "drug")
	if err := h.validator.ValidateInput(drug); err != nil {
		h.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rs := h.ruleStore.GetRuleset()
	if rs == nil {
		h.RespondWithError(w, r, http.StatusServiceUnavailable, "Ruleset not loaded yet")
		return
	}

	results := make([]entities.InteractionRule, 0)
	for _, rule := range rs.Interactions {
		if advisor.PhraseMatches(drug, rule.Drug1) || advisor.PhraseMatches(drug, rule.Drug2) {
			results = append(results, rule)
		}
	}

	h.RespondWithJSON(w, r, http.StatusOK, results)
}

// AllergyClassResponse lists the member drugs of one allergy class
type AllergyClassResponse struct {
	Class   string   `json:"class"`
	Members []string `json:"members"`
}

// FindAllergyClass returns the expansion members of an allergy class
func (h *HTTPHandlerImpl) FindAllergyClass(w http.ResponseWriter, r *http.Request) {
	class := chi.URLParam(r, "class")
	if err := h.validator.ValidateInput(class); err != nil {
		h.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rs := h.ruleStore.GetRuleset()
	if rs == nil {
		h.RespondWithError(w, r, http.StatusServiceUnavailable, "Ruleset not loaded yet")
		return
	}

	members, exists := rs.AllergyClasses[advisor.Fold(class)]
	if !exists {
		h.RespondWithError(w, r, http.StatusNotFound, "Allergy class not found")
		return
	}

	h.RespondWithJSON(w, r, http.StatusOK, AllergyClassResponse{
		Class:   advisor.Fold(class),
		Members: members,
	})
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status        string                 `json:"status"`
	UptimeSeconds float64                `json:"uptime_seconds"`
	Data          map[string]interface{} `json:"data"`
	System        map[string]interface{} `json:"system"`
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.ruleStore.GetServerStartTime())

	status, data, httpStatus := h.health.HealthCheck()

	response := HealthResponse{
		Status:        status,
		UptimeSeconds: uptime.Seconds(),
		Data:          data,
		System: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc_mb":       int(m.Alloc / 1024 / 1024),
				"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
				"sys_mb":         int(m.Sys / 1024 / 1024),
				"num_gc":         m.NumGC,
			},
		},
	}

	h.RespondWithJSON(w, r, httpStatus, response)
}
