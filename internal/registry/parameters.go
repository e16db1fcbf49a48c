// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

// Shared unit groups. Variants carry the OCR spellings seen in real
// extractions: digit 1 for lowercase l, u for the micro sign, dropped
// slashes and dots.
var (
	unitMgDL = UnitGroup{Canonical: "mg/dL", Variants: []string{"mg/dl", "mg/d1", "mgdl", "mg per dl", "mg/dI"}}
	unitGDL  = UnitGroup{Canonical: "g/dL", Variants: []string{"g/dl", "g/d1", "gdl", "gm/dl", "g per dl"}}
	unitNgML = UnitGroup{Canonical: "ng/mL", Variants: []string{"ng/ml", "ng/m1", "ngml", "ng per ml", "nanograms/ml"}}
	unitPgML = UnitGroup{Canonical: "pg/mL", Variants: []string{"pg/ml", "pg/m1", "pgml", "pg per ml", "picograms/ml"}}
	unitUgDL = UnitGroup{Canonical: "mcg/dL", Variants: []string{"ug/dl", "μg/dl", "µg/dl", "mcg/dl", "ug/d1", "mcg/d1", "ugdl"}}
	unitUgL  = UnitGroup{Canonical: "mcg/L", Variants: []string{"ug/l", "μg/l", "µg/l", "mcg/l", "ug/1"}}
	unitMgL  = UnitGroup{Canonical: "mg/L", Variants: []string{"mg/l", "mg/1", "mgl"}}
	unitMEqL = UnitGroup{Canonical: "mEq/L", Variants: []string{"meq/l", "meq/1", "mmol/l", "mmo1/l", "meql"}}
	unitPct  = UnitGroup{Canonical: "%", Variants: []string{"percent", "pct", "°/o"}}
	unitUL   = UnitGroup{Canonical: "U/L", Variants: []string{"u/l", "iu/l", "u/1", "iu/1", "units/l"}}
	unitKuL  = UnitGroup{Canonical: "K/uL", Variants: []string{"k/ul", "10^3/ul", "x10^3/ul", "10e3/ul", "thou/ul", "thousand/ul", "k/μl", "k/µl"}}
	unitMuL  = UnitGroup{Canonical: "M/uL", Variants: []string{"m/ul", "10^6/ul", "x10^6/ul", "10e6/ul", "mill/ul", "million/ul", "m/μl", "m/µl"}}
	unitFL   = UnitGroup{Canonical: "fL", Variants: []string{"fl", "f1", "femtoliters"}}
	unitPg   = UnitGroup{Canonical: "pg", Variants: []string{"picograms"}}
	unitMIUL = UnitGroup{Canonical: "mIU/L", Variants: []string{"miu/l", "uiu/ml", "μiu/ml", "µiu/ml", "miu/1", "mu/l"}}
	unitNgDL = UnitGroup{Canonical: "ng/dL", Variants: []string{"ng/dl", "ng/d1", "ngdl"}}
	unitMmHr = UnitGroup{Canonical: "mm/hr", Variants: []string{"mm/h", "mm per hour", "mmhr"}}
	unitUmol = UnitGroup{Canonical: "umol/L", Variants: []string{"μmol/l", "µmol/l", "umol/l", "umo1/l"}}
	unitUIU  = UnitGroup{Canonical: "uIU/mL", Variants: []string{"μiu/ml", "µiu/ml", "uiu/ml", "miu/l", "uu/ml"}}
	unitMLmn = UnitGroup{Canonical: "mL/min/1.73m2", Variants: []string{"ml/min/1.73m2", "ml/min", "ml/min/173m2", "ml/min per 1.73m2"}}
)

// BuiltinDefinitions returns the built-in parameter catalog: roughly sixty
// analytes across the common lab panels, with the alias spellings and OCR
// corruptions observed in real report extractions. Plausibility bounds are
// physical-possibility gates, deliberately far wider than clinical normal
// ranges.
func BuiltinDefinitions() []Definition {
	return []Definition{
		// ===== VITAMINS =====
		{
			Key: "vitamin_d", DisplayName: "Vitamin D", Category: CategoryVitamin,
			Aliases: []string{
				"vitamin d", "vitamin d3", "vitamin d2", "vit d", "vit. d",
				"vitamin d, 25-hydroxy", "25-hydroxyvitamin d", "25-hydroxy vitamin d",
				"25-oh vitamin d", "25(oh) vitamin d", "25(oh)d", "25(oh)d3",
				"25{oh)d", "vitamin d (25-oh)", "cholecalciferol",
			},
			Units:        []UnitGroup{unitNgML, {Canonical: "nmol/L", Variants: []string{"nmol/l", "nmo1/l"}}},
			PlausibleMin: 0, PlausibleMax: 200,
		},
		{
			Key: "vitamin_b12", DisplayName: "Vitamin B12", Category: CategoryVitamin,
			Aliases: []string{
				"vitamin b12", "vitamin b-12", "vitamin b 12", "vit b12", "b12", "b-12",
				"b 12", "cobalamin", "cobalarnin", "cyanocobalamin",
				"vitamin b12 (cobalamin)", "b-12 cobalamin",
			},
			Units:        []UnitGroup{unitPgML, {Canonical: "pmol/L", Variants: []string{"pmol/l", "pmo1/l"}}},
			PlausibleMin: 0, PlausibleMax: 5000,
		},
		{
			Key: "folate", DisplayName: "Folate", Category: CategoryVitamin,
			Aliases: []string{
				"folate", "folic acid", "folate (folic acid)", "serum folate",
				"folate, serum", "rbc folate", "fo1ate", "vitamin b9", "b9",
			},
			Units:        []UnitGroup{unitNgML},
			PlausibleMin: 0, PlausibleMax: 60,
		},
		{
			Key: "vitamin_c", DisplayName: "Vitamin C", Category: CategoryVitamin,
			Aliases: []string{
				"vitamin c", "vit c", "vit. c", "ascorbic acid", "ascorbate",
				"vitamin c (ascorbic acid)", "vitarnin c",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 0, PlausibleMax: 10,
		},
		{
			Key: "vitamin_a", DisplayName: "Vitamin A", Category: CategoryVitamin,
			Aliases: []string{
				"vitamin a", "vit a", "vit. a", "retinol", "serum retinol",
				"vitamin a (retinol)", "vitarnin a",
			},
			Units:        []UnitGroup{unitUgDL},
			PlausibleMin: 0, PlausibleMax: 300,
		},
		{
			Key: "vitamin_e", DisplayName: "Vitamin E", Category: CategoryVitamin,
			Aliases: []string{
				"vitamin e", "vit e", "vit. e", "alpha-tocopherol", "tocopherol",
				"vitamin e (alpha-tocopherol)", "vitarnin e",
			},
			Units:        []UnitGroup{unitMgL},
			PlausibleMin: 0, PlausibleMax: 50,
		},
		{
			Key: "vitamin_b6", DisplayName: "Vitamin B6", Category: CategoryVitamin,
			Aliases: []string{
				"vitamin b6", "vitamin b-6", "vit b6", "b6", "b-6", "pyridoxine",
				"pyridoxal 5-phosphate", "pyridoxal-5-phosphate", "plp",
			},
			Units:        []UnitGroup{unitNgML},
			PlausibleMin: 0, PlausibleMax: 300,
		},

		// ===== COMPLETE BLOOD COUNT =====
		{
			Key: "hemoglobin", DisplayName: "Hemoglobin", Category: CategoryCBC,
			Aliases: []string{
				"hemoglobin", "haemoglobin", "hgb", "hb", "hemoglobin (hgb)",
				"hernoglobin", "haernoglobin", "hemog1obin",
			},
			Units:        []UnitGroup{unitGDL},
			PlausibleMin: 2, PlausibleMax: 25,
		},
		{
			Key: "hematocrit", DisplayName: "Hematocrit", Category: CategoryCBC,
			Aliases: []string{
				"hematocrit", "haematocrit", "hct", "hematocrit (hct)", "packed cell volume",
				"pcv", "hernatocrit",
			},
			Units:        []UnitGroup{unitPct},
			PlausibleMin: 5, PlausibleMax: 75,
		},
		{
			Key: "wbc", DisplayName: "White Blood Cells", Category: CategoryCBC,
			Aliases: []string{
				"white blood cells", "white blood cell count", "wbc", "wbc count",
				"leukocytes", "leukocyte count", "total wbc", "white cell count",
			},
			Units:        []UnitGroup{unitKuL},
			PlausibleMin: 0.1, PlausibleMax: 200,
		},
		{
			Key: "rbc", DisplayName: "Red Blood Cells", Category: CategoryCBC,
			Aliases: []string{
				"red blood cells", "red blood cell count", "rbc", "rbc count",
				"erythrocytes", "erythrocyte count", "red cell count",
			},
			Units:        []UnitGroup{unitMuL},
			PlausibleMin: 0.5, PlausibleMax: 10,
		},
		{
			Key: "platelets", DisplayName: "Platelets", Category: CategoryCBC,
			Aliases: []string{
				"platelets", "platelet count", "plt", "plt count", "thrombocytes",
				"thrombocyte count", "p1atelets", "plate1ets",
			},
			Units:        []UnitGroup{unitKuL},
			PlausibleMin: 1, PlausibleMax: 2000,
		},
		{
			Key: "mcv", DisplayName: "Mean Corpuscular Volume", Category: CategoryCBC,
			Aliases: []string{
				"mcv", "mean corpuscular volume", "mean cell volume", "m.c.v",
			},
			Units:        []UnitGroup{unitFL},
			PlausibleMin: 40, PlausibleMax: 150,
		},
		{
			Key: "mch", DisplayName: "Mean Corpuscular Hemoglobin", Category: CategoryCBC,
			Aliases: []string{
				"mch", "mean corpuscular hemoglobin", "mean cell hemoglobin", "m.c.h",
			},
			Units:        []UnitGroup{unitPg},
			PlausibleMin: 10, PlausibleMax: 50,
		},
		{
			Key: "mchc", DisplayName: "Mean Corpuscular Hemoglobin Concentration", Category: CategoryCBC,
			Aliases: []string{
				"mchc", "mean corpuscular hemoglobin concentration", "m.c.h.c",
			},
			Units:        []UnitGroup{unitGDL},
			PlausibleMin: 20, PlausibleMax: 45,
		},
		{
			Key: "rdw", DisplayName: "Red Cell Distribution Width", Category: CategoryCBC,
			Aliases: []string{
				"rdw", "red cell distribution width", "rdw-cv", "rdw cv", "r.d.w",
			},
			Units:        []UnitGroup{unitPct},
			PlausibleMin: 5, PlausibleMax: 40,
		},
		{
			Key: "neutrophils", DisplayName: "Neutrophils", Category: CategoryCBC,
			Aliases: []string{
				"neutrophils", "neutrophil count", "neutrophils %", "neut", "neutrophi1s",
				"segmented neutrophils", "polys",
			},
			Units:        []UnitGroup{unitPct, unitKuL},
			PlausibleMin: 0, PlausibleMax: 100,
		},
		{
			Key: "lymphocytes", DisplayName: "Lymphocytes", Category: CategoryCBC,
			Aliases: []string{
				"lymphocytes", "lymphocyte count", "lymphocytes %", "lymphs",
				"lyrnphocytes", "1ymphocytes",
			},
			Units:        []UnitGroup{unitPct, unitKuL},
			PlausibleMin: 0, PlausibleMax: 100,
		},

		// ===== METABOLIC PANEL =====
		{
			Key: "glucose", DisplayName: "Glucose", Category: CategoryMetabolic,
			Aliases: []string{
				"glucose", "blood glucose", "glucose, fasting", "fasting glucose",
				"glucose fasting", "fasting blood sugar", "blood sugar", "fbs", "fbg",
				"glu", "g1ucose", "random glucose",
			},
			Units:        []UnitGroup{unitMgDL, {Canonical: "mmol/L", Variants: []string{"mmol/l", "mmo1/l"}}},
			PlausibleMin: 10, PlausibleMax: 2000,
		},
		{
			Key: "hba1c", DisplayName: "Hemoglobin A1c", Category: CategoryMetabolic,
			Aliases: []string{
				"hba1c", "hb a1c", "hgba1c", "a1c", "hemoglobin a1c", "haemoglobin a1c",
				"glycated hemoglobin", "glycosylated hemoglobin", "hba1c (glycated hemoglobin)",
				"hbalc", "alc",
			},
			Units:        []UnitGroup{unitPct},
			PlausibleMin: 2, PlausibleMax: 25,
		},
		{
			Key: "sodium", DisplayName: "Sodium", Category: CategoryMetabolic,
			Aliases: []string{
				"sodium", "sodium, serum", "serum sodium", "na", "na+", "sodiurn",
			},
			Units:        []UnitGroup{unitMEqL},
			PlausibleMin: 100, PlausibleMax: 200,
		},
		{
			Key: "potassium", DisplayName: "Potassium", Category: CategoryMetabolic,
			Aliases: []string{
				"potassium", "potassium, serum", "serum potassium", "k", "k+", "potassiurn",
			},
			Units:        []UnitGroup{unitMEqL},
			PlausibleMin: 1, PlausibleMax: 12,
		},
		{
			Key: "chloride", DisplayName: "Chloride", Category: CategoryMetabolic,
			Aliases: []string{
				"chloride", "chloride, serum", "serum chloride", "cl", "cl-", "ch1oride",
			},
			Units:        []UnitGroup{unitMEqL},
			PlausibleMin: 60, PlausibleMax: 140,
		},
		{
			Key: "bicarbonate", DisplayName: "Bicarbonate", Category: CategoryMetabolic,
			Aliases: []string{
				"bicarbonate", "carbon dioxide", "co2", "co2, total", "total co2",
				"hco3", "hco3-", "carbon dioxide (co2)",
			},
			Units:        []UnitGroup{unitMEqL},
			PlausibleMin: 5, PlausibleMax: 60,
		},
		{
			Key: "bun", DisplayName: "Blood Urea Nitrogen", Category: CategoryMetabolic,
			Aliases: []string{
				"bun", "blood urea nitrogen", "urea nitrogen", "urea nitrogen (bun)",
				"urea", "b.u.n",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 1, PlausibleMax: 300,
		},
		{
			Key: "creatinine", DisplayName: "Creatinine", Category: CategoryMetabolic,
			Aliases: []string{
				"creatinine", "creatinine, serum", "serum creatinine", "cr", "creat",
				"creatinine serum", "creatinlne",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 0.1, PlausibleMax: 30,
		},
		{
			Key: "egfr", DisplayName: "Estimated GFR", Category: CategoryMetabolic,
			Aliases: []string{
				"egfr", "estimated gfr", "gfr", "glomerular filtration rate",
				"estimated glomerular filtration rate", "egfr non-african american",
			},
			Units:        []UnitGroup{unitMLmn},
			PlausibleMin: 0, PlausibleMax: 200,
		},
		{
			Key: "uric_acid", DisplayName: "Uric Acid", Category: CategoryMetabolic,
			Aliases: []string{
				"uric acid", "uric acid, serum", "serum uric acid", "urate", "ua",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 0.5, PlausibleMax: 25,
		},
		{
			Key: "albumin", DisplayName: "Albumin", Category: CategoryMetabolic,
			Aliases: []string{
				"albumin", "albumin, serum", "serum albumin", "alb", "a1bumin",
			},
			Units:        []UnitGroup{unitGDL},
			PlausibleMin: 0.5, PlausibleMax: 8,
		},
		{
			Key: "total_protein", DisplayName: "Total Protein", Category: CategoryMetabolic,
			Aliases: []string{
				"total protein", "protein, total", "protein total", "tp", "serum protein",
				"tota1 protein",
			},
			Units:        []UnitGroup{unitGDL},
			PlausibleMin: 2, PlausibleMax: 15,
		},
		{
			Key: "total_bilirubin", DisplayName: "Total Bilirubin", Category: CategoryMetabolic,
			Aliases: []string{
				"total bilirubin", "bilirubin, total", "bilirubin total", "tbili", "t. bili",
				"bilirubin", "bi1irubin",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 0.05, PlausibleMax: 50,
		},
		{
			Key: "phosphorus", DisplayName: "Phosphorus", Category: CategoryMetabolic,
			Aliases: []string{
				"phosphorus", "phosphorus, serum", "phosphate", "serum phosphorus",
				"inorganic phosphate", "phos",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 0.5, PlausibleMax: 15,
		},

		// ===== LIPID PANEL =====
		{
			Key: "total_cholesterol", DisplayName: "Total Cholesterol", Category: CategoryLipid,
			Aliases: []string{
				"total cholesterol", "cholesterol, total", "cholesterol total",
				"cholesterol", "tc", "chol", "total chol", "cho1esterol",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 40, PlausibleMax: 1000,
		},
		{
			Key: "ldl_cholesterol", DisplayName: "LDL Cholesterol", Category: CategoryLipid,
			Aliases: []string{
				"ldl cholesterol", "ldl-cholesterol", "ldl", "ldl-c", "ldl chol",
				"low density lipoprotein", "ldl cholesterol calc", "ldl (calculated)",
				"1dl", "ld1",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 10, PlausibleMax: 600,
		},
		{
			Key: "hdl_cholesterol", DisplayName: "HDL Cholesterol", Category: CategoryLipid,
			Aliases: []string{
				"hdl cholesterol", "hdl-cholesterol", "hdl", "hdl-c", "hdl chol",
				"high density lipoprotein", "hd1", "hdl cholestero1",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 5, PlausibleMax: 200,
		},
		{
			Key: "triglycerides", DisplayName: "Triglycerides", Category: CategoryLipid,
			Aliases: []string{
				"triglycerides", "triglyceride", "trig", "trigs", "tg",
				"trig1ycerides", "triglycerides, serum",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 10, PlausibleMax: 5000,
		},
		{
			Key: "vldl_cholesterol", DisplayName: "VLDL Cholesterol", Category: CategoryLipid,
			Aliases: []string{
				"vldl cholesterol", "vldl-cholesterol", "vldl", "vldl-c",
				"very low density lipoprotein", "vldl cholesterol calc", "v1dl",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 2, PlausibleMax: 300,
		},

		// ===== LIVER PANEL =====
		{
			Key: "alt", DisplayName: "ALT", Category: CategoryLiver,
			Aliases: []string{
				"alt", "alt (sgpt)", "sgpt", "alanine aminotransferase",
				"alanine transaminase", "a1t", "alt, serum",
			},
			Units:        []UnitGroup{unitUL},
			PlausibleMin: 1, PlausibleMax: 5000,
		},
		{
			Key: "ast", DisplayName: "AST", Category: CategoryLiver,
			Aliases: []string{
				"ast", "ast (sgot)", "sgot", "aspartate aminotransferase",
				"aspartate transaminase", "ast, serum",
			},
			Units:        []UnitGroup{unitUL},
			PlausibleMin: 1, PlausibleMax: 5000,
		},
		{
			Key: "alkaline_phosphatase", DisplayName: "Alkaline Phosphatase", Category: CategoryLiver,
			Aliases: []string{
				"alkaline phosphatase", "alk phos", "alp", "alk. phos", "a1p",
				"alkaline phosphatase, serum",
			},
			Units:        []UnitGroup{unitUL},
			PlausibleMin: 5, PlausibleMax: 3000,
		},
		{
			Key: "ggt", DisplayName: "GGT", Category: CategoryLiver,
			Aliases: []string{
				"ggt", "gamma gt", "gamma-gt", "ggtp", "gamma glutamyl transferase",
				"gamma-glutamyl transferase", "gamma glutamyl transpeptidase",
			},
			Units:        []UnitGroup{unitUL},
			PlausibleMin: 1, PlausibleMax: 3000,
		},

		// ===== THYROID PANEL =====
		{
			Key: "tsh", DisplayName: "TSH", Category: CategoryThyroid,
			Aliases: []string{
				"tsh", "thyroid stimulating hormone", "thyrotropin", "tsh, serum",
				"tsh 3rd generation", "tsh (thyrotropin)", "tsh w/reflex",
			},
			Units:        []UnitGroup{unitMIUL},
			PlausibleMin: 0.001, PlausibleMax: 200,
		},
		{
			Key: "free_t4", DisplayName: "Free T4", Category: CategoryThyroid,
			Aliases: []string{
				"free t4", "t4, free", "ft4", "free thyroxine", "t4 free",
				"free t4 (thyroxine)",
			},
			Units:        []UnitGroup{unitNgDL},
			PlausibleMin: 0.05, PlausibleMax: 10,
		},
		{
			Key: "free_t3", DisplayName: "Free T3", Category: CategoryThyroid,
			Aliases: []string{
				"free t3", "t3, free", "ft3", "free triiodothyronine", "t3 free",
			},
			Units:        []UnitGroup{unitPgML},
			PlausibleMin: 0.5, PlausibleMax: 30,
		},
		{
			Key: "total_t4", DisplayName: "Total T4", Category: CategoryThyroid,
			Aliases: []string{
				"total t4", "t4, total", "t4", "thyroxine", "thyroxine (t4)", "t4 total",
			},
			Units:        []UnitGroup{unitUgDL},
			PlausibleMin: 0.5, PlausibleMax: 30,
		},
		{
			Key: "total_t3", DisplayName: "Total T3", Category: CategoryThyroid,
			Aliases: []string{
				"total t3", "t3, total", "t3", "triiodothyronine", "t3 total",
			},
			Units:        []UnitGroup{unitNgDL},
			PlausibleMin: 10, PlausibleMax: 800,
		},

		// ===== HORMONES =====
		{
			Key: "testosterone", DisplayName: "Testosterone", Category: CategoryHormone,
			Aliases: []string{
				"testosterone", "testosterone, total", "total testosterone",
				"testosterone total", "serum testosterone", "test0sterone",
			},
			Units:        []UnitGroup{unitNgDL},
			PlausibleMin: 1, PlausibleMax: 3000,
		},
		{
			Key: "estradiol", DisplayName: "Estradiol", Category: CategoryHormone,
			Aliases: []string{
				"estradiol", "oestradiol", "e2", "estradiol (e2)", "estradio1",
			},
			Units:        []UnitGroup{unitPgML},
			PlausibleMin: 1, PlausibleMax: 5000,
		},
		{
			Key: "cortisol", DisplayName: "Cortisol", Category: CategoryHormone,
			Aliases: []string{
				"cortisol", "cortisol, am", "am cortisol", "morning cortisol",
				"serum cortisol", "cortiso1",
			},
			Units:        []UnitGroup{unitUgDL},
			PlausibleMin: 0.1, PlausibleMax: 100,
		},
		{
			Key: "insulin", DisplayName: "Insulin", Category: CategoryHormone,
			Aliases: []string{
				"insulin", "insulin, fasting", "fasting insulin", "serum insulin",
				"insu1in",
			},
			Units:        []UnitGroup{unitUIU},
			PlausibleMin: 0.1, PlausibleMax: 300,
		},
		{
			Key: "prolactin", DisplayName: "Prolactin", Category: CategoryHormone,
			Aliases: []string{
				"prolactin", "prl", "serum prolactin", "pro1actin",
			},
			Units:        []UnitGroup{unitNgML},
			PlausibleMin: 0.1, PlausibleMax: 500,
		},
		{
			Key: "dhea_s", DisplayName: "DHEA-Sulfate", Category: CategoryHormone,
			Aliases: []string{
				"dhea-s", "dhea-sulfate", "dhea sulfate", "dheas",
				"dehydroepiandrosterone sulfate",
			},
			Units:        []UnitGroup{unitUgDL},
			PlausibleMin: 1, PlausibleMax: 1500,
		},
		{
			Key: "progesterone", DisplayName: "Progesterone", Category: CategoryHormone,
			Aliases: []string{
				"progesterone", "serum progesterone", "progesterone, serum",
				"pr0gesterone",
			},
			Units:        []UnitGroup{unitNgML},
			PlausibleMin: 0.01, PlausibleMax: 300,
		},

		// ===== MINERALS & IRON STUDIES =====
		{
			Key: "calcium", DisplayName: "Calcium", Category: CategoryMineral,
			Aliases: []string{
				"calcium", "calcium, serum", "serum calcium", "ca", "ca++",
				"total calcium", "calciurn", "ca1cium",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 4, PlausibleMax: 18,
		},
		{
			Key: "magnesium", DisplayName: "Magnesium", Category: CategoryMineral,
			Aliases: []string{
				"magnesium", "magnesium, serum", "serum magnesium", "mg", "mg++",
				"magnesiurn", "rnagnesium",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 0.5, PlausibleMax: 10,
		},
		{
			Key: "zinc", DisplayName: "Zinc", Category: CategoryMineral,
			Aliases: []string{
				"zinc", "zinc, serum", "serum zinc", "zn", "plasma zinc", "z1nc",
			},
			Units:        []UnitGroup{unitUgDL},
			PlausibleMin: 10, PlausibleMax: 500,
		},
		{
			Key: "iron", DisplayName: "Iron", Category: CategoryMineral,
			Aliases: []string{
				"iron", "iron, serum", "serum iron", "fe", "iron serum",
				"lron", "lron, serum", "iron level",
			},
			Units:        []UnitGroup{unitUgDL},
			PlausibleMin: 5, PlausibleMax: 1000,
		},
		{
			Key: "ferritin", DisplayName: "Ferritin", Category: CategoryMineral,
			Aliases: []string{
				"ferritin", "ferritin, serum", "serum ferritin", "ferr1tin", "territin",
			},
			Units:        []UnitGroup{unitNgML},
			PlausibleMin: 1, PlausibleMax: 10000,
		},
		{
			Key: "tibc", DisplayName: "Total Iron Binding Capacity", Category: CategoryMineral,
			Aliases: []string{
				"tibc", "total iron binding capacity", "iron binding capacity",
				"t.i.b.c", "t1bc",
			},
			Units:        []UnitGroup{unitUgDL},
			PlausibleMin: 50, PlausibleMax: 800,
		},
		{
			Key: "transferrin_saturation", DisplayName: "Transferrin Saturation", Category: CategoryMineral,
			Aliases: []string{
				"transferrin saturation", "iron saturation", "tsat", "% saturation",
				"percent saturation", "saturation, iron",
			},
			Units:        []UnitGroup{unitPct},
			PlausibleMin: 0, PlausibleMax: 100,
		},
		{
			Key: "copper", DisplayName: "Copper", Category: CategoryMineral,
			Aliases: []string{
				"copper", "copper, serum", "serum copper", "cu", "c0pper",
			},
			Units:        []UnitGroup{unitUgDL},
			PlausibleMin: 10, PlausibleMax: 500,
		},
		{
			Key: "selenium", DisplayName: "Selenium", Category: CategoryMineral,
			Aliases: []string{
				"selenium", "selenium, serum", "serum selenium", "se", "se1enium",
			},
			Units:        []UnitGroup{unitUgL},
			PlausibleMin: 10, PlausibleMax: 700,
		},

		// ===== INFLAMMATORY MARKERS =====
		{
			Key: "crp", DisplayName: "C-Reactive Protein", Category: CategoryInflammatory,
			Aliases: []string{
				"crp", "c-reactive protein", "c reactive protein", "hs-crp", "hscrp",
				"high sensitivity crp", "crp, high sensitivity", "c-reactive prote1n",
			},
			Units:        []UnitGroup{unitMgL, unitMgDL},
			PlausibleMin: 0.01, PlausibleMax: 500,
		},
		{
			Key: "esr", DisplayName: "Erythrocyte Sedimentation Rate", Category: CategoryInflammatory,
			Aliases: []string{
				"esr", "sed rate", "sedimentation rate", "erythrocyte sedimentation rate",
				"westergren esr", "e.s.r",
			},
			Units:        []UnitGroup{unitMmHr},
			PlausibleMin: 0, PlausibleMax: 150,
		},
		{
			Key: "homocysteine", DisplayName: "Homocysteine", Category: CategoryInflammatory,
			Aliases: []string{
				"homocysteine", "homocysteine, plasma", "plasma homocysteine", "hcy",
				"hornocysteine",
			},
			Units:        []UnitGroup{unitUmol},
			PlausibleMin: 1, PlausibleMax: 150,
		},
		{
			Key: "fibrinogen", DisplayName: "Fibrinogen", Category: CategoryInflammatory,
			Aliases: []string{
				"fibrinogen", "fibrinogen activity", "fibrinogen, plasma", "f1brinogen",
			},
			Units:        []UnitGroup{unitMgDL},
			PlausibleMin: 30, PlausibleMax: 1500,
		},
	}
}
