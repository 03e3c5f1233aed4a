package ruleset

import "github.com/caregrid/advisor-api/advisor/entities"

const builtinVersion = "2025.2"

// builtinConditions is the compiled-in condition table. Symptom phrases are
// matched by bidirectional substring, so entries should use the shortest
// phrasing that is still specific enough ("runny nose", not "a runny nose").
// Threshold and referral phrases must not contain a bare cluster symptom:
// "thunderclap headache" as a severe phrase would classify every plain
// "headache" report severe.
var builtinConditions = []entities.ConditionRule{
	{
		ID:        "uri-common-cold",
		Condition: "Upper Respiratory Infection (Common Cold)",
		ICDCode:   "J00",
		SymptomClusters: []entities.SymptomCluster{
			{Symptoms: []string{"runny nose", "nasal congestion", "stuffy nose", "sneezing"}, RequiredCount: 1},
			{Symptoms: []string{"sore throat", "scratchy throat", "cough"}, RequiredCount: 1},
		},
		RequiredSymptomCount: 2,
		SeverityThresholds: entities.SeverityThresholds{
			Severe:   []string{"difficulty breathing", "shortness of breath", "temperature above 103"},
			Moderate: []string{"fever", "body aches", "chills"},
		},
		Medications: entities.TieredMedications{
			Mild: []entities.MedicationRecommendation{
				{
					MedicationName:    "Tylenol",
					GenericName:       "Acetaminophen",
					Category:          "Analgesic/Antipyretic",
					StandardDose:      "500-1000 mg",
					Frequency:         "Every 6 hours as needed",
					Duration:          "Up to 5 days",
					Route:             "Oral",
					Indication:        "Relief of aches and low-grade fever",
					Priority:          entities.PriorityFirstLine,
					Contraindications: []string{"Severe hepatic impairment"},
					Warnings:          []string{"Do not exceed 3 g per day from all sources"},
					SpecialPopulations: entities.SpecialPopulations{
						Pediatric: "10-15 mg/kg every 4-6 hours, max 5 doses per day",
						Geriatric: "Reduce maximum daily dose to 3 g",
						Pregnancy: "Preferred analgesic during pregnancy at usual doses",
						Hepatic:   "Reduce dose; avoid in severe impairment",
					},
				},
				{
					MedicationName: "Robitussin DM",
					GenericName:    "Dextromethorphan",
					Category:       "Antitussive",
					StandardDose:   "10-20 mg",
					Frequency:      "Every 4 hours as needed",
					Duration:       "Up to 7 days",
					Route:          "Oral",
					Indication:     "Suppression of dry cough",
					Priority:       entities.PrioritySecondLine,
					Interactions:   []string{"MAO inhibitors", "SSRIs"},
					SpecialPopulations: entities.SpecialPopulations{
						Pediatric: "Not recommended under 4 years of age",
						Pregnancy: "Limited data; use only if clearly needed",
					},
				},
				{
					MedicationName:    "Sudafed",
					GenericName:       "Pseudoephedrine",
					Category:          "Decongestant",
					StandardDose:      "60 mg",
					Frequency:         "Every 6 hours as needed",
					Duration:          "Up to 5 days",
					Route:             "Oral",
					Indication:        "Nasal congestion relief",
					Priority:          entities.PriorityAdjunctive,
					Contraindications: []string{"Uncontrolled hypertension", "MAO inhibitor use"},
					Warnings:          []string{"May cause insomnia; avoid evening doses"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Start at half dose; monitor blood pressure",
						Pregnancy: "Avoid in first trimester",
					},
				},
			},
			Moderate: []entities.MedicationRecommendation{
				{
					MedicationName: "Tylenol",
					GenericName:    "Acetaminophen",
					Category:       "Analgesic/Antipyretic",
					StandardDose:   "1000 mg",
					Frequency:      "Every 6 hours",
					Duration:       "Up to 5 days",
					Route:          "Oral",
					Indication:     "Fever and body aches",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pediatric: "15 mg/kg every 6 hours",
						Pregnancy: "Preferred analgesic during pregnancy at usual doses",
						Hepatic:   "Reduce dose; avoid in severe impairment",
					},
				},
				{
					MedicationName:    "Advil",
					GenericName:       "Ibuprofen",
					Category:          "NSAID",
					StandardDose:      "400 mg",
					Frequency:         "Every 6-8 hours with food",
					Duration:          "Up to 5 days",
					Route:             "Oral",
					Indication:        "Fever and body aches",
					Priority:          entities.PrioritySecondLine,
					Contraindications: []string{"Active peptic ulcer", "Third trimester pregnancy"},
					Interactions:      []string{"Anticoagulants", "ACE inhibitors"},
					SpecialPopulations: entities.SpecialPopulations{
						Pediatric: "5-10 mg/kg every 6-8 hours",
						Geriatric: "Use lowest effective dose; gastrointestinal risk",
						Pregnancy: "Avoid, particularly in third trimester",
						Renal:     "Avoid in significant renal impairment",
					},
				},
				{
					MedicationName: "Robitussin DM",
					GenericName:    "Dextromethorphan",
					Category:       "Antitussive",
					StandardDose:   "20 mg",
					Frequency:      "Every 4 hours as needed",
					Duration:       "Up to 7 days",
					Route:          "Oral",
					Indication:     "Suppression of persistent cough",
					Priority:       entities.PriorityAdjunctive,
					SpecialPopulations: entities.SpecialPopulations{
						Pediatric: "Not recommended under 4 years of age",
					},
				},
			},
			Severe: []entities.MedicationRecommendation{
				{
					MedicationName: "Tylenol",
					GenericName:    "Acetaminophen",
					Category:       "Analgesic/Antipyretic",
					StandardDose:   "1000 mg",
					Frequency:      "Every 6 hours",
					Duration:       "Until evaluated",
					Route:          "Oral",
					Indication:     "Symptomatic relief pending clinical evaluation",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "Preferred analgesic during pregnancy at usual doses",
						Hepatic:   "Reduce dose; avoid in severe impairment",
					},
				},
			},
		},
		ReferralCriteria:    []string{"symptoms lasting more than 10 days", "temperature above 103"},
		EmergencyIndicators: []string{"difficulty breathing", "unable to swallow"},
		NonPharmacologicTreatments: []string{
			"Rest and adequate fluid intake",
			"Saline nasal rinses",
			"Humidified air",
		},
		FollowUpRecommendation: "Return if symptoms persist beyond 10 days or worsen after initial improvement",
	},
	{
		ID:        "tension-headache",
		Condition: "Tension-Type Headache",
		ICDCode:   "G44.2",
		SymptomClusters: []entities.SymptomCluster{
			{Symptoms: []string{"headache", "head pain", "pressure in head", "band-like tightness"}, RequiredCount: 1},
		},
		RequiredSymptomCount: 1,
		SeverityThresholds: entities.SeverityThresholds{
			Severe:   []string{"thunderclap", "worst of my life", "sudden severe onset"},
			Moderate: []string{"moderate", "throbbing", "interfering with daily activities"},
		},
		Medications: entities.TieredMedications{
			Mild: []entities.MedicationRecommendation{
				{
					MedicationName: "Tylenol",
					GenericName:    "Acetaminophen",
					Category:       "Analgesic/Antipyretic",
					StandardDose:   "500-1000 mg",
					Frequency:      "Every 6 hours as needed",
					Duration:       "Up to 3 days",
					Route:          "Oral",
					Indication:     "Mild tension headache",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pediatric: "10-15 mg/kg every 4-6 hours",
						Pregnancy: "Preferred analgesic during pregnancy at usual doses",
						Hepatic:   "Reduce dose; avoid in severe impairment",
					},
				},
			},
			Moderate: []entities.MedicationRecommendation{
				{
					MedicationName:     "Advil",
					GenericName:        "Ibuprofen",
					Category:           "NSAID",
					StandardDose:       "400-600 mg",
					Frequency:          "Every 6-8 hours with food",
					Duration:           "Up to 3 days",
					Route:              "Oral",
					Indication:         "Moderate tension headache",
					Priority:           entities.PriorityFirstLine,
					Contraindications:  []string{"Active peptic ulcer", "Third trimester pregnancy"},
					Interactions:       []string{"Anticoagulants", "ACE inhibitors"},
					MonitoringRequired: []string{"Renal function with prolonged use"},
					SpecialPopulations: entities.SpecialPopulations{
						Pediatric: "5-10 mg/kg every 6-8 hours",
						Geriatric: "Use lowest effective dose; gastrointestinal risk",
						Pregnancy: "Avoid, particularly in third trimester",
						Renal:     "Avoid in significant renal impairment",
					},
				},
				{
					MedicationName:    "Aleve",
					GenericName:       "Naproxen",
					Category:          "NSAID",
					StandardDose:      "220-440 mg",
					Frequency:         "Every 8-12 hours with food",
					Duration:          "Up to 3 days",
					Route:             "Oral",
					Indication:        "Moderate tension headache",
					Priority:          entities.PrioritySecondLine,
					Contraindications: []string{"Active peptic ulcer"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Use lowest effective dose",
						Pregnancy: "Avoid, particularly in third trimester",
						Renal:     "Avoid in significant renal impairment",
					},
				},
				{
					MedicationName: "Excedrin Tension",
					GenericName:    "Acetaminophen-Caffeine",
					Category:       "Combination analgesic",
					StandardDose:   "2 tablets",
					Frequency:      "Every 6 hours as needed",
					Duration:       "Up to 3 days",
					Route:          "Oral",
					Indication:     "Adjunct for refractory tension headache",
					Priority:       entities.PriorityAdjunctive,
					Warnings:       []string{"Limit other caffeine intake while taking"},
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "Limit caffeine; use only if clearly needed",
					},
				},
			},
			Severe: []entities.MedicationRecommendation{
				{
					MedicationName:     "Imitrex",
					GenericName:        "Sumatriptan",
					Category:           "Triptan",
					StandardDose:       "50-100 mg at onset",
					Frequency:          "May repeat once after 2 hours",
					Duration:           "Acute use only",
					Route:              "Oral",
					Indication:         "Severe headache with migrainous features",
					Priority:           entities.PriorityFirstLine,
					Contraindications:  []string{"Ischemic heart disease", "Uncontrolled hypertension"},
					Interactions:       []string{"SSRIs", "MAO inhibitors"},
					MonitoringRequired: []string{"Cardiovascular risk assessment before first dose"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Not recommended over 65 without cardiac evaluation",
						Pregnancy: "Use only if clearly needed",
						Hepatic:   "Reduce dose in hepatic impairment",
					},
				},
			},
		},
		ReferralCriteria:    []string{"lasting more than 15 days", "increasing in frequency"},
		EmergencyIndicators: []string{"thunderclap headache", "headache with fever and stiff neck", "headache after head injury"},
		NonPharmacologicTreatments: []string{
			"Stress management and regular sleep schedule",
			"Heat or cold packs to the neck and shoulders",
			"Limit screen time during episodes",
		},
		FollowUpRecommendation: "Keep a headache diary; follow up if more than 2 episodes per week",
	},
	{
		ID:        "hypertension",
		Condition: "Essential Hypertension",
		ICDCode:   "I10",
		SymptomClusters: []entities.SymptomCluster{
			{Symptoms: []string{"high blood pressure", "elevated blood pressure", "hypertension"}, RequiredCount: 1},
		},
		RequiredSymptomCount: 1,
		SeverityThresholds: entities.SeverityThresholds{
			Severe:   []string{"chest pain", "vision changes", "confusion"},
			Moderate: []string{"dizziness", "blurred vision", "pounding in chest"},
		},
		Medications: entities.TieredMedications{
			Mild: []entities.MedicationRecommendation{
				{
					MedicationName:     "Zestril",
					GenericName:        "Lisinopril",
					Category:           "ACE inhibitor",
					StandardDose:       "10 mg daily",
					Frequency:          "Once daily",
					Duration:           "Ongoing",
					Route:              "Oral",
					Indication:         "First-line blood pressure control",
					Priority:           entities.PriorityFirstLine,
					Contraindications:  []string{"History of angioedema", "Pregnancy"},
					Interactions:       []string{"Potassium supplements", "Lithium", "NSAIDs"},
					MonitoringRequired: []string{"Serum creatinine and potassium within 2 weeks of start"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Start at 5 mg daily",
						Pregnancy: "Contraindicated in pregnancy - risk of fetal renal injury",
						Renal:     "Reduce starting dose; monitor potassium closely",
					},
				},
				{
					MedicationName: "Norvasc",
					GenericName:    "Amlodipine",
					Category:       "Calcium channel blocker",
					StandardDose:   "5 mg daily",
					Frequency:      "Once daily",
					Duration:       "Ongoing",
					Route:          "Oral",
					Indication:     "First-line blood pressure control",
					Priority:       entities.PriorityFirstLine,
					Warnings:       []string{"May cause ankle edema"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Start at 2.5 mg daily",
						Hepatic:   "Start at 2.5 mg daily; titrate slowly",
					},
				},
			},
			Moderate: []entities.MedicationRecommendation{
				{
					MedicationName: "Zestril",
					GenericName:    "Lisinopril",
					Category:       "ACE inhibitor",
					StandardDose:   "20 mg daily",
					Frequency:      "Once daily",
					Duration:       "Ongoing",
					Route:          "Oral",
					Indication:     "Blood pressure control with symptoms",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "Contraindicated in pregnancy - risk of fetal renal injury",
						Renal:     "Reduce starting dose; monitor potassium closely",
					},
				},
				{
					MedicationName:     "Microzide",
					GenericName:        "Hydrochlorothiazide",
					Category:           "Thiazide diuretic",
					StandardDose:       "12.5-25 mg daily",
					Frequency:          "Once daily in the morning",
					Duration:           "Ongoing",
					Route:              "Oral",
					Indication:         "Add-on blood pressure control",
					Priority:           entities.PrioritySecondLine,
					Contraindications:  []string{"Sulfonamide allergy", "Anuria"},
					MonitoringRequired: []string{"Electrolytes within 4 weeks of start"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Higher risk of hyponatremia",
						Pregnancy: "Avoid; may reduce placental perfusion",
						Renal:     "Ineffective in severe renal impairment",
					},
				},
			},
			Severe: []entities.MedicationRecommendation{
				{
					MedicationName: "Zestril",
					GenericName:    "Lisinopril",
					Category:       "ACE inhibitor",
					StandardDose:   "20-40 mg daily",
					Frequency:      "Once daily",
					Duration:       "Ongoing; urgent evaluation advised",
					Route:          "Oral",
					Indication:     "Severely elevated blood pressure pending evaluation",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "Contraindicated in pregnancy - risk of fetal renal injury",
					},
				},
			},
		},
		ReferralCriteria:    []string{"blood pressure above 180", "known kidney disease"},
		EmergencyIndicators: []string{"chest pain", "confusion", "shortness of breath"},
		NonPharmacologicTreatments: []string{
			"Reduce dietary sodium below 2 g per day",
			"Regular aerobic exercise",
			"Limit alcohol intake",
		},
		FollowUpRecommendation: "Recheck blood pressure within 2-4 weeks of any medication change",
	},
	{
		ID:        "type2-diabetes",
		Condition: "Type 2 Diabetes Mellitus",
		ICDCode:   "E11",
		SymptomClusters: []entities.SymptomCluster{
			{Symptoms: []string{"high blood sugar", "elevated blood sugar", "hyperglycemia"}, RequiredCount: 1},
			{Symptoms: []string{"increased thirst", "frequent urination", "excessive hunger", "unexplained weight loss"}, RequiredCount: 2},
		},
		RequiredSymptomCount: 2,
		SeverityThresholds: entities.SeverityThresholds{
			Severe:   []string{"fruity breath", "rapid breathing", "confusion"},
			Moderate: []string{"blurred vision", "slow healing", "tingling in feet"},
		},
		Medications: entities.TieredMedications{
			Mild: []entities.MedicationRecommendation{
				{
					MedicationName:     "Glucophage",
					GenericName:        "Metformin",
					Category:           "Biguanide",
					StandardDose:       "500 mg twice daily",
					Frequency:          "Twice daily with meals",
					Duration:           "Ongoing",
					Route:              "Oral",
					Indication:         "First-line glycemic control",
					Priority:           entities.PriorityFirstLine,
					Contraindications:  []string{"eGFR below 30", "Metabolic acidosis"},
					Warnings:           []string{"Gastrointestinal upset common in first weeks"},
					MonitoringRequired: []string{"Renal function at baseline and annually", "HbA1c every 3 months"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Assess renal function before dosing",
						Pregnancy: "May be used when clearly needed; insulin preferred",
						Renal:     "Halve dose if eGFR 30-45; avoid below 30",
					},
				},
				{
					MedicationName: "Glucotrol",
					GenericName:    "Glipizide",
					Category:       "Sulfonylurea",
					StandardDose:   "5 mg daily",
					Frequency:      "Once daily before breakfast",
					Duration:       "Ongoing",
					Route:          "Oral",
					Indication:     "Add-on glycemic control",
					Priority:       entities.PrioritySecondLine,
					Warnings:       []string{"Risk of hypoglycemia; educate on symptoms"},
					Interactions:   []string{"Fluconazole", "Beta blockers mask hypoglycemia"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Start at 2.5 mg; hypoglycemia risk",
						Pregnancy: "Contraindicated in pregnancy; insulin is preferred",
						Hepatic:   "Start at 2.5 mg daily",
					},
				},
				{
					MedicationName: "Jardiance",
					GenericName:    "Empagliflozin",
					Category:       "SGLT2 inhibitor",
					StandardDose:   "10 mg daily",
					Frequency:      "Once daily in the morning",
					Duration:       "Ongoing",
					Route:          "Oral",
					Indication:     "Adjunct with cardiovascular benefit",
					Priority:       entities.PriorityAdjunctive,
					Warnings:       []string{"Genitourinary infection risk"},
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "Avoid during pregnancy",
						Renal:     "Do not initiate if eGFR below 30",
					},
				},
			},
			Moderate: []entities.MedicationRecommendation{
				{
					MedicationName: "Glucophage",
					GenericName:    "Metformin",
					Category:       "Biguanide",
					StandardDose:   "1000 mg twice daily",
					Frequency:      "Twice daily with meals",
					Duration:       "Ongoing",
					Route:          "Oral",
					Indication:     "Glycemic control with symptoms",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "May be used when clearly needed; insulin preferred",
						Renal:     "Halve dose if eGFR 30-45; avoid below 30",
					},
				},
				{
					MedicationName: "Glucotrol",
					GenericName:    "Glipizide",
					Category:       "Sulfonylurea",
					StandardDose:   "10 mg daily",
					Frequency:      "Once daily before breakfast",
					Duration:       "Ongoing",
					Route:          "Oral",
					Indication:     "Add-on glycemic control",
					Priority:       entities.PrioritySecondLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "Contraindicated in pregnancy; insulin is preferred",
					},
				},
			},
			Severe: []entities.MedicationRecommendation{
				{
					MedicationName: "Glucophage",
					GenericName:    "Metformin",
					Category:       "Biguanide",
					StandardDose:   "1000 mg twice daily",
					Frequency:      "Twice daily with meals",
					Duration:       "Pending urgent evaluation",
					Route:          "Oral",
					Indication:     "Bridge therapy pending urgent evaluation",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "May be used when clearly needed; insulin preferred",
					},
				},
			},
		},
		ReferralCriteria:    []string{"blood sugar above 300", "slow healing"},
		EmergencyIndicators: []string{"fruity breath", "rapid breathing", "unconscious"},
		NonPharmacologicTreatments: []string{
			"Carbohydrate-controlled diet",
			"At least 150 minutes of moderate exercise weekly",
			"Daily glucose self-monitoring",
		},
		FollowUpRecommendation: "HbA1c review every 3 months until stable, then every 6 months",
	},
	{
		ID:        "allergic-rhinitis",
		Condition: "Allergic Rhinitis",
		ICDCode:   "J30.9",
		SymptomClusters: []entities.SymptomCluster{
			{Symptoms: []string{"sneezing", "itchy eyes", "watery eyes", "runny nose", "itchy nose"}, RequiredCount: 2},
		},
		RequiredSymptomCount: 2,
		SeverityThresholds: entities.SeverityThresholds{
			Severe:   []string{"wheezing", "difficulty breathing"},
			Moderate: []string{"sinus pressure", "disturbed sleep", "daily symptoms"},
		},
		Medications: entities.TieredMedications{
			Mild: []entities.MedicationRecommendation{
				{
					MedicationName: "Claritin",
					GenericName:    "Loratadine",
					Category:       "Antihistamine",
					StandardDose:   "10 mg daily",
					Frequency:      "Once daily",
					Duration:       "For duration of exposure",
					Route:          "Oral",
					Indication:     "Seasonal allergy symptoms",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pediatric: "5 mg daily for ages 2-5",
						Pregnancy: "Considered compatible with pregnancy",
						Hepatic:   "Dose every other day in hepatic impairment",
					},
				},
				{
					MedicationName: "Zyrtec",
					GenericName:    "Cetirizine",
					Category:       "Antihistamine",
					StandardDose:   "10 mg daily",
					Frequency:      "Once daily in the evening",
					Duration:       "For duration of exposure",
					Route:          "Oral",
					Indication:     "Seasonal allergy symptoms",
					Priority:       entities.PrioritySecondLine,
					Warnings:       []string{"May cause mild drowsiness"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "5 mg daily starting dose",
						Renal:     "5 mg daily in moderate impairment",
					},
				},
			},
			Moderate: []entities.MedicationRecommendation{
				{
					MedicationName: "Flonase",
					GenericName:    "Fluticasone",
					Category:       "Intranasal corticosteroid",
					StandardDose:   "2 sprays per nostril daily",
					Frequency:      "Once daily",
					Duration:       "For duration of exposure",
					Route:          "Intranasal",
					Indication:     "Persistent nasal allergy symptoms",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pediatric: "1 spray per nostril daily for ages 4-11",
					},
				},
				{
					MedicationName: "Zyrtec",
					GenericName:    "Cetirizine",
					Category:       "Antihistamine",
					StandardDose:   "10 mg daily",
					Frequency:      "Once daily in the evening",
					Duration:       "For duration of exposure",
					Route:          "Oral",
					Indication:     "Persistent allergy symptoms",
					Priority:       entities.PrioritySecondLine,
					SpecialPopulations: entities.SpecialPopulations{
						Renal: "5 mg daily in moderate impairment",
					},
				},
			},
			Severe: []entities.MedicationRecommendation{
				{
					MedicationName: "Flonase",
					GenericName:    "Fluticasone",
					Category:       "Intranasal corticosteroid",
					StandardDose:   "2 sprays per nostril twice daily",
					Frequency:      "Twice daily",
					Duration:       "Until specialist review",
					Route:          "Intranasal",
					Indication:     "Severe allergy symptoms pending specialist review",
					Priority:       entities.PriorityFirstLine,
				},
			},
		},
		ReferralCriteria:    []string{"daily symptoms", "poor response to antihistamines"},
		EmergencyIndicators: []string{"throat swelling", "difficulty breathing"},
		NonPharmacologicTreatments: []string{
			"Allergen avoidance and home air filtration",
			"Saline nasal rinses",
		},
		FollowUpRecommendation: "Consider allergy testing if symptoms persist across seasons",
	},
	{
		ID:        "gerd",
		Condition: "Gastroesophageal Reflux Disease",
		ICDCode:   "K21.9",
		SymptomClusters: []entities.SymptomCluster{
			{Symptoms: []string{"heartburn", "acid reflux", "regurgitation", "burning in chest after meals"}, RequiredCount: 1},
		},
		RequiredSymptomCount: 1,
		SeverityThresholds: entities.SeverityThresholds{
			Severe:   []string{"difficulty swallowing", "vomiting blood", "black stools"},
			Moderate: []string{"nighttime symptoms", "symptoms most days", "chronic cough"},
		},
		Medications: entities.TieredMedications{
			Mild: []entities.MedicationRecommendation{
				{
					MedicationName: "Tums",
					GenericName:    "Calcium carbonate",
					Category:       "Antacid",
					StandardDose:   "500-1000 mg",
					Frequency:      "As needed after meals",
					Duration:       "As needed",
					Route:          "Oral",
					Indication:     "Occasional heartburn",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Renal: "Limit total daily calcium in renal impairment",
					},
				},
				{
					MedicationName: "Pepcid",
					GenericName:    "Famotidine",
					Category:       "H2 blocker",
					StandardDose:   "20 mg",
					Frequency:      "Twice daily as needed",
					Duration:       "Up to 14 days",
					Route:          "Oral",
					Indication:     "Frequent heartburn",
					Priority:       entities.PrioritySecondLine,
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Half dose in reduced renal function",
						Renal:     "Reduce dose by half if impaired",
					},
				},
			},
			Moderate: []entities.MedicationRecommendation{
				{
					MedicationName:     "Prilosec",
					GenericName:        "Omeprazole",
					Category:           "Proton pump inhibitor",
					StandardDose:       "20 mg daily",
					Frequency:          "Once daily before breakfast",
					Duration:           "4-8 weeks",
					Route:              "Oral",
					Indication:         "Persistent reflux symptoms",
					Priority:           entities.PriorityFirstLine,
					Interactions:       []string{"Clopidogrel"},
					MonitoringRequired: []string{"Reassess need at 8 weeks"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Fracture risk with long-term use",
						Hepatic:   "Consider 10 mg daily in severe impairment",
					},
				},
				{
					MedicationName: "Pepcid",
					GenericName:    "Famotidine",
					Category:       "H2 blocker",
					StandardDose:   "20 mg twice daily",
					Frequency:      "Twice daily",
					Duration:       "Up to 6 weeks",
					Route:          "Oral",
					Indication:     "Nighttime breakthrough symptoms",
					Priority:       entities.PrioritySecondLine,
					SpecialPopulations: entities.SpecialPopulations{
						Renal: "Reduce dose by half if impaired",
					},
				},
			},
			Severe: []entities.MedicationRecommendation{
				{
					MedicationName: "Prilosec",
					GenericName:    "Omeprazole",
					Category:       "Proton pump inhibitor",
					StandardDose:   "40 mg daily",
					Frequency:      "Once daily before breakfast",
					Duration:       "Until endoscopic evaluation",
					Route:          "Oral",
					Indication:     "Severe reflux pending evaluation",
					Priority:       entities.PriorityFirstLine,
				},
			},
		},
		ReferralCriteria:    []string{"symptoms most days", "unintentional weight loss"},
		EmergencyIndicators: []string{"vomiting blood", "black stools", "chest pain"},
		NonPharmacologicTreatments: []string{
			"Avoid meals within 3 hours of lying down",
			"Elevate the head of the bed",
			"Weight reduction if overweight",
		},
		FollowUpRecommendation: "Endoscopy referral if symptoms persist beyond 8 weeks of therapy",
	},
	{
		ID:        "uncomplicated-uti",
		Condition: "Uncomplicated Urinary Tract Infection",
		ICDCode:   "N39.0",
		SymptomClusters: []entities.SymptomCluster{
			{Symptoms: []string{"burning urination", "painful urination", "urinary urgency", "frequent urination"}, RequiredCount: 1},
		},
		RequiredSymptomCount: 1,
		SeverityThresholds: entities.SeverityThresholds{
			Severe:   []string{"flank pain", "fever with chills", "vomiting"},
			Moderate: []string{"blood in urine", "cloudy urine", "pelvic pressure"},
		},
		Medications: entities.TieredMedications{
			Mild: []entities.MedicationRecommendation{
				{
					MedicationName:    "Macrobid",
					GenericName:       "Nitrofurantoin",
					Category:          "Urinary antibacterial",
					StandardDose:      "100 mg",
					Frequency:         "Twice daily",
					Duration:          "5 days",
					Route:             "Oral",
					Indication:        "Uncomplicated cystitis",
					Priority:          entities.PriorityFirstLine,
					Contraindications: []string{"Creatinine clearance below 30"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Avoid if renal function reduced",
						Pregnancy: "Avoid at term (38-42 weeks)",
						Renal:     "Avoid if creatinine clearance below 30",
					},
				},
				{
					MedicationName:    "Bactrim",
					GenericName:       "Trimethoprim-Sulfamethoxazole",
					Category:          "Sulfonamide antibacterial",
					StandardDose:      "160/800 mg",
					Frequency:         "Twice daily",
					Duration:          "3 days",
					Route:             "Oral",
					Indication:        "Uncomplicated cystitis",
					Priority:          entities.PrioritySecondLine,
					Contraindications: []string{"Sulfonamide allergy"},
					Interactions:      []string{"Warfarin", "ACE inhibitors"},
					SpecialPopulations: entities.SpecialPopulations{
						Geriatric: "Hyperkalemia risk with ACE inhibitors",
						Pregnancy: "Avoid in first and third trimester",
						Renal:     "Reduce dose by half in moderate impairment",
					},
				},
				{
					MedicationName: "Azo",
					GenericName:    "Phenazopyridine",
					Category:       "Urinary analgesic",
					StandardDose:   "200 mg",
					Frequency:      "Three times daily after meals",
					Duration:       "Maximum 2 days",
					Route:          "Oral",
					Indication:     "Symptomatic relief of dysuria",
					Priority:       entities.PriorityAdjunctive,
					Warnings:       []string{"Causes orange discoloration of urine"},
					SpecialPopulations: entities.SpecialPopulations{
						Renal: "Avoid in renal impairment",
					},
				},
			},
			Moderate: []entities.MedicationRecommendation{
				{
					MedicationName: "Macrobid",
					GenericName:    "Nitrofurantoin",
					Category:       "Urinary antibacterial",
					StandardDose:   "100 mg",
					Frequency:      "Twice daily",
					Duration:       "7 days",
					Route:          "Oral",
					Indication:     "Cystitis with hematuria",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "Avoid at term (38-42 weeks)",
						Renal:     "Avoid if creatinine clearance below 30",
					},
				},
			},
			Severe: []entities.MedicationRecommendation{
				{
					MedicationName: "Bactrim",
					GenericName:    "Trimethoprim-Sulfamethoxazole",
					Category:       "Sulfonamide antibacterial",
					StandardDose:   "160/800 mg",
					Frequency:      "Twice daily",
					Duration:       "Until urgent evaluation",
					Route:          "Oral",
					Indication:     "Suspected ascending infection pending evaluation",
					Priority:       entities.PriorityFirstLine,
					SpecialPopulations: entities.SpecialPopulations{
						Pregnancy: "Avoid in first and third trimester",
					},
				},
			},
		},
		ReferralCriteria:    []string{"recurrent infections", "blood in urine"},
		EmergencyIndicators: []string{"flank pain", "fever with chills"},
		NonPharmacologicTreatments: []string{
			"Increase fluid intake",
			"Void after intercourse",
		},
		FollowUpRecommendation: "Urine culture if symptoms persist after completing therapy",
	},
}
