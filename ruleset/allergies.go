package ruleset

// builtinAllergyClasses expands a reported allergy class into the generic
// names it cross-reacts with. Keys are matched against patient allergy strings
// by the same bidirectional substring rule the advisor uses for symptoms, so
// "penicillin allergy" still hits the "penicillin" class.
var builtinAllergyClasses = map[string][]string{
	"penicillin": {
		"amoxicillin",
		"ampicillin",
		"amoxicillin-clavulanate",
		"dicloxacillin",
		"nafcillin",
		"piperacillin",
	},
	"cephalosporin": {
		"cephalexin",
		"cefuroxime",
		"cefdinir",
		"ceftriaxone",
	},
	"sulfa": {
		"sulfamethoxazole",
		"trimethoprim-sulfamethoxazole",
		"sulfadiazine",
		"sulfasalazine",
	},
	"nsaid": {
		"ibuprofen",
		"naproxen",
		"aspirin",
		"ketorolac",
		"diclofenac",
		"meloxicam",
	},
	"aspirin": {
		"aspirin",
		"ibuprofen",
		"naproxen",
	},
	"macrolide": {
		"azithromycin",
		"clarithromycin",
		"erythromycin",
	},
	"opioid": {
		"codeine",
		"hydrocodone",
		"oxycodone",
		"morphine",
		"tramadol",
	},
}
