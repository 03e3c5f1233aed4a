// Package ruleset holds the clinical knowledge base used by the advisor:
// condition rules, allergy-class expansions, and pairwise drug-interaction
// rules. The tables ship compiled into the binary and are treated as a
// versioned data asset; an operator can swap them at runtime by pointing
// RULESET_PATH at a JSON file with the same shape.
package ruleset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caregrid/advisor-api/advisor/entities"
)

// Ruleset is one immutable snapshot of the knowledge base. After loading it is
// only ever read, so concurrent advisor runs need no locking.
type Ruleset struct {
	Version        string                     `json:"version"`
	Conditions     []entities.ConditionRule   `json:"conditions"`
	AllergyClasses map[string][]string        `json:"allergyClasses"`
	Interactions   []entities.InteractionRule `json:"interactions"`
}

// Builtin returns the compiled-in knowledge base.
func Builtin() *Ruleset {
	return &Ruleset{
		Version:        builtinVersion,
		Conditions:     builtinConditions,
		AllergyClasses: builtinAllergyClasses,
		Interactions:   builtinInteractions,
	}
}

// LoadFile decodes a ruleset from a JSON file. The caller is expected to run
// it through validation before swapping it into the store.
func LoadFile(path string) (*Ruleset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ruleset file: %w", err)
	}

	var rs Ruleset
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, fmt.Errorf("failed to decode ruleset file %s: %w", path, err)
	}

	if rs.Version == "" {
		return nil, fmt.Errorf("ruleset file %s has no version", path)
	}

	return &rs, nil
}

// Loader resolves the active ruleset source: an operator-supplied guideline
// file when Path is set, otherwise the compiled-in tables.
type Loader struct {
	Path string
}

// Load returns a fresh ruleset snapshot.
func (l *Loader) Load() (*Ruleset, error) {
	if l.Path == "" {
		return Builtin(), nil
	}
	return LoadFile(l.Path)
}

// ConditionByID returns the condition rule with the given id.
func (rs *Ruleset) ConditionByID(id string) (entities.ConditionRule, bool) {
	for _, c := range rs.Conditions {
		if c.ID == id {
			return c, true
		}
	}
	return entities.ConditionRule{}, false
}
