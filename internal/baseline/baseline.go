package baseline

import "github.com/bashtech/gpacalc-crawler/internal/grading"

// g builds a grade row; pct and note may be empty
func g(label string, points float64, pct, note string) grading.GradeRow {
	return grading.GradeRow{Label: label, Points: points, PercentageRange: pct, Note: note}
}

var systems = []grading.GradingSystem{
	{
		ID: "china_100", Name: "China 100-Point Scale", Country: "China", Region: "East Asia",
		Description: "Chinese 0–100 scale", Scale: 100,
		Grades: []grading.GradeRow{
			g("Excellent", 95, "95-100", ""),
			g("Very Good", 85, "85-94", ""),
			g("Good", 75, "75-84", ""),
			g("Satisfactory", 65, "65-74", ""),
			g("Pass", 60, "60-64", ""),
			g("Fail", 0, "0-59", ""),
		},
	},
	{
		ID: "russia_5", Name: "Russia 5-Point Scale", Country: "Russia", Region: "Europe",
		Description: "Russian 5-point scale (5=Excellent, 2=Unsatisfactory)", Scale: 5,
		Grades: []grading.GradeRow{
			g("5", 5, "85-100", "Excellent"),
			g("4", 4, "70-84", "Good"),
			g("3", 3, "60-69", "Satisfactory"),
			g("2", 0, "0-59", "Unsatisfactory"),
		},
	},
	{
		ID: "portugal_20", Name: "Portugal 20-Point Scale", Country: "Portugal", Region: "Europe",
		Description: "Portuguese 0–20 scale", Scale: 20,
		Grades: []grading.GradeRow{
			g("20", 20, "95-100", ""),
			g("18-19", 19, "90-94", ""),
			g("16-17", 17, "80-89", ""),
			g("14-15", 15, "70-79", ""),
			g("10-13", 12, "50-69", ""),
			g("0-9", 0, "0-49", ""),
		},
	},
	{
		ID: "austria_5", Name: "Austria 5-Point Scale", Country: "Austria", Region: "Europe",
		Description: "Austrian 1–5 scale (1=Sehr gut, 5=Nicht genügend)", Scale: 5,
		Grades: []grading.GradeRow{
			g("1", 1, "90-100", "Sehr gut"),
			g("2", 2, "80-89", "Gut"),
			g("3", 3, "65-79", "Befriedigend"),
			g("4", 4, "50-64", "Genügend"),
			g("5", 5, "0-49", "Nicht genügend"),
		},
	},
	{
		ID: "czech_1_4", Name: "Czech Republic 1–4 Scale", Country: "Czech Republic", Region: "Europe",
		Description: "Czech 1–4 scale (1=best, 4=fail)", Scale: 4,
		Grades: []grading.GradeRow{
			g("1", 1, "90-100", "Výborně"),
			g("2", 2, "75-89", "Velmi dobře"),
			g("3", 3, "60-74", "Dobře"),
			g("4", 4, "0-59", "Nedostatečně"),
		},
	},
	{
		ID: "poland_2_5", Name: "Poland 2–5 Scale", Country: "Poland", Region: "Europe",
		Description: "Polish 2–5 scale (5=very good, 2=fail)", Scale: 5,
		Grades: []grading.GradeRow{
			g("5", 5, "90-100", "Bardzo dobry"),
			g("4", 4, "75-89", "Dobry"),
			g("3", 3, "60-74", "Dostateczny"),
			g("2", 0, "0-59", "Niedostateczny"),
		},
	},
	{
		ID: "hungary_5", Name: "Hungary 5-Point Scale", Country: "Hungary", Region: "Europe",
		Description: "Hungarian 1–5 scale (5=Jeles, 1=Elégtelen)", Scale: 5,
		Grades: []grading.GradeRow{
			g("5", 5, "90-100", "Jeles"),
			g("4", 4, "80-89", "Jó"),
			g("3", 3, "65-79", "Közepes"),
			g("2", 2, "50-64", "Elégséges"),
			g("1", 0, "0-49", "Elégtelen"),
		},
	},
	{
		ID: "romania_10", Name: "Romania 10-Point Scale", Country: "Romania", Region: "Europe",
		Description: "Romanian 1–10 scale", Scale: 10,
		Grades: []grading.GradeRow{
			g("10", 10, "95-100", ""),
			g("9", 9, "85-94", ""),
			g("8", 8, "75-84", ""),
			g("7", 7, "65-74", ""),
			g("6", 6, "55-64", ""),
			g("5", 5, "50-54", ""),
			g("0-4", 0, "0-49", ""),
		},
	},
	{
		ID: "greece_10", Name: "Greece 10-Point Scale", Country: "Greece", Region: "Europe",
		Description: "Greek 0–10 scale", Scale: 10,
		Grades: []grading.GradeRow{
			g("9-10", 9.5, "90-100", "Άριστα"),
			g("7-8.9", 8, "70-89", "Λίαν Καλώς"),
			g("5-6.9", 6, "50-69", "Καλώς"),
			g("0-4.9", 0, "0-49", "Ανεπιτυχώς"),
		},
	},
	{
		ID: "turkey_100", Name: "Turkey 100-Point Scale", Country: "Turkey", Region: "Europe",
		Description: "Turkish 0–100 scale", Scale: 100,
		Grades: []grading.GradeRow{
			g("90-100", 95, "90-100", "AA"),
			g("80-89", 85, "80-89", "BA/BB"),
			g("70-79", 75, "70-79", "CB/CC"),
			g("60-69", 65, "60-69", "DC/DD"),
			g("50-59", 55, "50-59", "FD"),
			g("0-49", 0, "0-49", "FF"),
		},
	},
	{
		ID: "argentina_10", Name: "Argentina 10-Point Scale", Country: "Argentina", Region: "South America",
		Description: "Argentine 0–10 scale", Scale: 10,
		Grades: []grading.GradeRow{
			g("10", 10, "95-100", ""),
			g("9", 9, "90-94", ""),
			g("8", 8, "80-89", ""),
			g("7", 7, "70-79", ""),
			g("6", 6, "60-69", ""),
			g("0-5", 0, "0-59", ""),
		},
	},
	{
		ID: "chile_7", Name: "Chile 7-Point Scale", Country: "Chile", Region: "South America",
		Description: "Chilean 1.0–7.0 scale", Scale: 7,
		Grades: []grading.GradeRow{
			g("7.0", 7, "95-100", "Sobresaliente"),
			g("6.0", 6, "85-94", "Muy bueno"),
			g("5.0", 5, "75-84", "Bueno"),
			g("4.0", 4, "60-74", "Suficiente"),
			g("1.0-3.9", 0, "0-59", "Insuficiente"),
		},
	},
	{
		ID: "colombia_5", Name: "Colombia 5-Point Scale", Country: "Colombia", Region: "South America",
		Description: "Colombian 0–5 scale", Scale: 5,
		Grades: []grading.GradeRow{
			g("5.0", 5, "90-100", ""),
			g("4.0", 4, "80-89", ""),
			g("3.0", 3, "70-79", ""),
			g("2.0", 2, "60-69", ""),
			g("0-1.9", 0, "0-59", ""),
		},
	},
	{
		ID: "peru_20", Name: "Peru 20-Point Scale", Country: "Peru", Region: "South America",
		Description: "Peruvian 0–20 scale", Scale: 20,
		Grades: []grading.GradeRow{
			g("18-20", 19, "90-100", ""),
			g("14-17", 15, "70-89", ""),
			g("11-13", 12, "55-69", ""),
			g("0-10", 0, "0-54", ""),
		},
	},
	{
		ID: "philippines_5", Name: "Philippines 1.0–5.0 Scale", Country: "Philippines", Region: "Southeast Asia",
		Description: "Philippine 1.0 (best) to 5.0 (fail)", Scale: 5,
		Grades: []grading.GradeRow{
			g("1.0", 1, "96-100", "Excellent"),
			g("1.5", 1.5, "90-95", ""),
			g("2.0", 2, "84-89", ""),
			g("2.5", 2.5, "78-83", ""),
			g("3.0", 3, "75-77", "Pass"),
			g("5.0", 5, "0-74", "Fail"),
		},
	},
	{
		ID: "malaysia_4_0", Name: "Malaysia 4.0 Scale", Country: "Malaysia", Region: "Southeast Asia",
		Description: "Malaysian 4.0 GPA scale", Scale: 4,
		Grades: []grading.GradeRow{
			g("A", 4, "80-100", ""),
			g("A-", 3.7, "75-79", ""),
			g("B+", 3.3, "70-74", ""),
			g("B", 3, "65-69", ""),
			g("B-", 2.7, "60-64", ""),
			g("C+", 2.3, "55-59", ""),
			g("C", 2, "50-54", ""),
			g("F", 0, "0-49", ""),
		},
	},
	{
		ID: "indonesia_4_0", Name: "Indonesia 4.0 Scale", Country: "Indonesia", Region: "Southeast Asia",
		Description: "Indonesian 4.0 GPA scale", Scale: 4,
		Grades: []grading.GradeRow{
			g("A", 4, "85-100", ""),
			g("A-", 3.7, "80-84", ""),
			g("B+", 3.3, "75-79", ""),
			g("B", 3, "70-74", ""),
			g("C+", 2.3, "65-69", ""),
			g("C", 2, "60-64", ""),
			g("D", 1, "50-59", ""),
			g("E", 0, "0-49", ""),
		},
	},
	{
		ID: "singapore_5_0", Name: "Singapore 5.0 Scale", Country: "Singapore", Region: "Southeast Asia",
		Description: "Singaporean 5.0 GPA scale variant", Scale: 5,
		Grades: []grading.GradeRow{
			g("A+", 5, "", ""),
			g("A", 5, "", ""),
			g("A-", 4.5, "", ""),
			g("B+", 4, "", ""),
			g("B", 3.5, "", ""),
			g("B-", 3, "", ""),
			g("C+", 2.5, "", ""),
			g("C", 2, "", ""),
			g("D", 1, "", ""),
			g("F", 0, "", ""),
		},
	},
	{
		ID: "saudi_arabia_5_0", Name: "Saudi Arabia 5.0 Scale", Country: "Saudi Arabia", Region: "Middle East",
		Description: "Saudi 5.0 GPA scale", Scale: 5,
		Grades: []grading.GradeRow{
			g("A+", 5, "", ""),
			g("A", 4.5, "", ""),
			g("B+", 4, "", ""),
			g("B", 3.5, "", ""),
			g("C+", 3, "", ""),
			g("C", 2.5, "", ""),
			g("D+", 2, "", ""),
			g("D", 1, "", ""),
			g("F", 0, "", ""),
		},
	},
	{
		ID: "uae_4_0", Name: "UAE 4.0 Scale", Country: "United Arab Emirates", Region: "Middle East",
		Description: "UAE 4.0 GPA scale", Scale: 4,
		Grades: []grading.GradeRow{
			g("A", 4, "", ""),
			g("A-", 3.7, "", ""),
			g("B+", 3.3, "", ""),
			g("B", 3, "", ""),
			g("C+", 2.3, "", ""),
			g("C", 2, "", ""),
			g("D", 1, "", ""),
			g("F", 0, "", ""),
		},
	},
	{
		ID: "iran_20", Name: "Iran 20-Point Scale", Country: "Iran", Region: "Middle East",
		Description: "Iranian 0–20 scale", Scale: 20,
		Grades: []grading.GradeRow{
			g("18-20", 19, "90-100", ""),
			g("15-17", 16, "75-89", ""),
			g("10-14", 12, "50-74", ""),
			g("0-9", 0, "0-49", ""),
		},
	},
	{
		ID: "pakistan_4_0", Name: "Pakistan 4.0 Scale", Country: "Pakistan", Region: "South Asia",
		Description: "Pakistani 4.0 GPA scale", Scale: 4,
		Grades: []grading.GradeRow{
			g("A", 4, "", ""),
			g("B", 3, "", ""),
			g("C", 2, "", ""),
			g("D", 1, "", ""),
			g("F", 0, "", ""),
		},
	},
	{
		ID: "nigeria_5_0", Name: "Nigeria 5.0 Scale", Country: "Nigeria", Region: "Africa",
		Description: "Nigerian 5.0 GPA scale", Scale: 5,
		Grades: []grading.GradeRow{
			g("A", 5, "", ""),
			g("B", 4, "", ""),
			g("C", 3, "", ""),
			g("D", 2, "", ""),
			g("E", 1, "", ""),
			g("F", 0, "", ""),
		},
	},
	{
		ID: "kenya_100", Name: "Kenya 100-Point Scale", Country: "Kenya", Region: "Africa",
		Description: "Kenyan 0–100 with letter categories", Scale: 100,
		Grades: []grading.GradeRow{
			g("A", 90, "80-100", ""),
			g("B", 70, "65-79", ""),
			g("C", 55, "50-64", ""),
			g("D", 40, "40-49", ""),
			g("E", 0, "0-39", ""),
		},
	},
}

// Systems returns the national baseline scales. The result is a fresh copy the
// caller may modify.
func Systems() []grading.GradingSystem {
	out := make([]grading.GradingSystem, len(systems))
	for i, s := range systems {
		out[i] = s.Clone()
	}
	return out
}
