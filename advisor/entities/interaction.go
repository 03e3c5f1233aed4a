package entities

// InteractionRule is a pairwise drug-interaction reference entry. Drug terms
// may be generic names or drug-class names (matched against a candidate's
// generic name, brand name, or category). Matching is checked both ways.
type InteractionRule struct {
	Drug1       string   `json:"drug1"`
	Drug2       string   `json:"drug2"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}
