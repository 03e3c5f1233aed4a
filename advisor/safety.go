package advisor

import (
	"fmt"
	"strings"

	"github.com/caregrid/advisor-api/advisor/entities"
	"github.com/caregrid/advisor-api/ruleset"
)

// evaluation accumulates safety-filter output for one advisor run.
type evaluation struct {
	rs      *ruleset.Ruleset
	patient *entities.PatientContext
	result  *entities.AdvisorResult
	seen    map[string]bool // lower-cased generic names already recommended
}

// screenMedication runs the full safety pipeline for one candidate. The
// checks run in fixed order: allergy (short-circuits everything else), drug
// interactions (informational only), then population adjustments. The table
// entry is cloned before any per-patient mutation.
func (e *evaluation) screenMedication(med entities.MedicationRecommendation) {
	if reason, hit := e.allergyConflict(med); hit {
		e.result.Contraindicated = append(e.result.Contraindicated, entities.ContraindicatedMedication{
			MedicationName: med.MedicationName,
			GenericName:    med.GenericName,
			Reason:         reason,
		})
		return
	}

	e.recordInteractions(med)

	adjusted := med.Clone()
	if e.applyPopulationAdjustments(&adjusted) {
		return
	}

	key := strings.ToLower(adjusted.GenericName)
	if e.seen[key] {
		// Same generic already recommended by an earlier condition/tier.
		return
	}
	e.seen[key] = true
	e.result.Recommendations = append(e.result.Recommendations, adjusted)
}

// allergyConflict checks the medication against each patient allergy and its
// class expansion. The reason names the reported allergy, not the expanded
// class member that triggered.
func (e *evaluation) allergyConflict(med entities.MedicationRecommendation) (string, bool) {
	for _, allergy := range e.patient.Allergies {
		for _, term := range e.expandAllergy(allergy) {
			if PhraseMatches(med.GenericName, term) {
				return fmt.Sprintf("Patient allergy to %s", allergy), true
			}
		}
	}
	return "", false
}

// expandAllergy returns the allergy term itself plus every member of any
// allergy class the term matches. Unknown terms expand to just themselves.
func (e *evaluation) expandAllergy(allergy string) []string {
	terms := []string{allergy}
	for class, members := range e.rs.AllergyClasses {
		if PhraseMatches(allergy, class) {
			terms = append(terms, members...)
		}
	}
	return terms
}

// recordInteractions scans the pairwise interaction table for every current
// medication, both directions. Hits never disqualify the candidate; severe
// hits additionally produce a warning.
func (e *evaluation) recordInteractions(med entities.MedicationRecommendation) {
	for _, current := range e.patient.CurrentMedications {
		for _, rule := range e.rs.Interactions {
			forward := termMatchesMedication(rule.Drug1, med) && PhraseMatches(current, rule.Drug2)
			reverse := termMatchesMedication(rule.Drug2, med) && PhraseMatches(current, rule.Drug1)
			if !forward && !reverse {
				continue
			}

			e.result.DrugInteractions = append(e.result.DrugInteractions, entities.DrugInteraction{
				Medication1: med.GenericName,
				Medication2: current,
				Severity:    rule.Severity,
				Description: rule.Description,
			})

			if rule.Severity == entities.SeveritySevere {
				e.result.Warnings = append(e.result.Warnings,
					fmt.Sprintf("Severe interaction: %s with %s - %s", med.GenericName, current, rule.Description))
			}
		}
	}
}

// termMatchesMedication matches an interaction drug term against a candidate.
// Class terms ("nsaid", "ace inhibitor") rely on the category field.
func termMatchesMedication(term string, med entities.MedicationRecommendation) bool {
	return PhraseMatches(med.GenericName, term) ||
		PhraseMatches(med.MedicationName, term) ||
		PhraseMatches(med.Category, term)
}

// applyPopulationAdjustments applies population notes in fixed order:
// pediatric, geriatric, pregnancy, renal, hepatic. Returns true when the
// medication was moved to contraindicated (pregnancy notes containing
// "Contraindicated" or "Avoid"), in which case no further checks run.
func (e *evaluation) applyPopulationAdjustments(med *entities.MedicationRecommendation) bool {
	sp := med.SpecialPopulations

	if e.patient.AgeGroup == entities.AgePediatric && sp.Pediatric != "" {
		med.StandardDose = sp.Pediatric
		e.warn(fmt.Sprintf("Pediatric dosing applied for %s: %s", med.GenericName, sp.Pediatric))
	}

	if e.patient.AgeGroup == entities.AgeGeriatric && sp.Geriatric != "" {
		e.warn(fmt.Sprintf("Geriatric caution for %s: %s", med.GenericName, sp.Geriatric))
	}

	if e.patient.IsPregnant && sp.Pregnancy != "" {
		if strings.Contains(sp.Pregnancy, "Contraindicated") || strings.Contains(sp.Pregnancy, "Avoid") {
			e.result.Contraindicated = append(e.result.Contraindicated, entities.ContraindicatedMedication{
				MedicationName: med.MedicationName,
				GenericName:    med.GenericName,
				Reason:         fmt.Sprintf("Pregnancy: %s", sp.Pregnancy),
			})
			return true
		}
		e.warn(fmt.Sprintf("Pregnancy note for %s: %s", med.GenericName, sp.Pregnancy))
	}

	if organImpaired(e.patient.RenalFunction) && sp.Renal != "" {
		e.warn(fmt.Sprintf("Renal caution for %s: %s", med.GenericName, sp.Renal))
	}

	if organImpaired(e.patient.HepaticFunction) && sp.Hepatic != "" {
		e.warn(fmt.Sprintf("Hepatic caution for %s: %s", med.GenericName, sp.Hepatic))
	}

	return false
}

// organImpaired treats anything other than normal (or unset) as impaired.
func organImpaired(fn entities.OrganFunction) bool {
	return fn != "" && fn != entities.OrganNormal
}

func (e *evaluation) warn(msg string) {
	e.result.Warnings = append(e.result.Warnings, msg)
}
