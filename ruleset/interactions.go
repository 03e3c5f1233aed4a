package ruleset

import "github.com/caregrid/advisor-api/advisor/entities"

// builtinInteractions lists pairwise interaction rules. Drug terms are either
// generic names or class names; class terms rely on the candidate
// medication's category string (e.g. "NSAID") for matching. Only severe hits
// generate a warning; all hits are reported to the caller.
var builtinInteractions = []entities.InteractionRule{
	{
		Drug1:       "warfarin",
		Drug2:       "nsaid",
		Severity:    entities.SeveritySevere,
		Description: "Increased risk of serious gastrointestinal bleeding",
	},
	{
		Drug1:       "warfarin",
		Drug2:       "acetaminophen",
		Severity:    entities.SeverityModerate,
		Description: "Sustained high-dose acetaminophen may potentiate anticoagulation; monitor INR",
	},
	{
		Drug1:       "ace inhibitor",
		Drug2:       "potassium",
		Severity:    entities.SeverityModerate,
		Description: "Risk of hyperkalemia; monitor serum potassium",
	},
	{
		Drug1:       "ace inhibitor",
		Drug2:       "lithium",
		Severity:    entities.SeverityModerate,
		Description: "Reduced lithium clearance may cause lithium toxicity",
	},
	{
		Drug1:       "nsaid",
		Drug2:       "lisinopril",
		Severity:    entities.SeverityModerate,
		Description: "Blunted antihypertensive effect and additive renal risk",
	},
	{
		Drug1:       "nsaid",
		Drug2:       "ssri",
		Severity:    entities.SeverityModerate,
		Description: "Increased gastrointestinal bleeding risk",
	},
	{
		Drug1:       "triptan",
		Drug2:       "ssri",
		Severity:    entities.SeveritySevere,
		Description: "Risk of serotonin syndrome",
	},
	{
		Drug1:       "sulfonylurea",
		Drug2:       "fluconazole",
		Severity:    entities.SeverityModerate,
		Description: "Enhanced hypoglycemic effect; monitor blood glucose",
	},
	{
		Drug1:       "omeprazole",
		Drug2:       "clopidogrel",
		Severity:    entities.SeverityModerate,
		Description: "Reduced antiplatelet effect of clopidogrel",
	},
	{
		Drug1:       "dextromethorphan",
		Drug2:       "fluoxetine",
		Severity:    entities.SeveritySevere,
		Description: "Risk of serotonin syndrome",
	},
	{
		Drug1:       "antihistamine",
		Drug2:       "benzodiazepine",
		Severity:    entities.SeverityModerate,
		Description: "Additive central nervous system sedation",
	},
	{
		Drug1:       "nitrofurantoin",
		Drug2:       "antacid",
		Severity:    entities.SeverityMild,
		Description: "Magnesium-containing antacids reduce nitrofurantoin absorption",
	},
}
