package data

import "jansuvidha/models"

func loadComparisons(t *Tables) {
	t.regionOrder = []string{"tamil-nadu", "karnataka", "maharashtra", "gujarat", "rajasthan", "west-bengal"}
	t.regionNames = map[string]string{
		"tamil-nadu":  "Tamil Nadu",
		"karnataka":   "Karnataka",
		"maharashtra": "Maharashtra",
		"gujarat":     "Gujarat",
		"rajasthan":   "Rajasthan",
		"west-bengal": "West Bengal",
	}
	t.compareYears = []string{"2024", "2023", "2022", "2021", "2020"}

	t.byRegion = map[string]map[models.Category]models.MetricRecord{
		"tamil-nadu": {
			models.CategoryHealth: {
				"hospitals": 2456,
				"beds":      89000,
				"doctors":   12500,
				"budget":    15600,
				"coverage":  78.5,
			},
			models.CategoryEducation: {
				"schools":        45600,
				"enrollment":     94.2,
				"literacy":       80.1,
				"teachers":       285000,
				"infrastructure": 72.3,
			},
		},
		"karnataka": {
			models.CategoryHealth: {
				"hospitals": 2180,
				"beds":      76000,
				"doctors":   11200,
				"budget":    14200,
				"coverage":  76.8,
			},
			models.CategoryEducation: {
				"schools":        52400,
				"enrollment":     91.8,
				"literacy":       77.2,
				"teachers":       295000,
				"infrastructure": 68.9,
			},
		},
	}

	t.byYear = map[string]map[models.Category]models.MetricRecord{
		"2024": {
			models.CategoryHealth: {
				"hospitals": 2456,
				"beds":      89000,
				"doctors":   12500,
				"budget":    15600,
				"coverage":  78.5,
			},
		},
		"2023": {
			models.CategoryHealth: {
				"hospitals": 2380,
				"beds":      86500,
				"doctors":   11800,
				"budget":    14200,
				"coverage":  76.2,
			},
		},
	}

	t.metricDefs = map[models.Category][]models.MetricDefinition{
		models.CategoryHealth: {
			{Key: "hospitals", Label: "Total Hospitals"},
			{Key: "beds", Label: "Hospital Beds"},
			{Key: "doctors", Label: "Doctors"},
			{Key: "budget", Label: "Budget Allocation", Unit: " Cr"},
			{Key: "coverage", Label: "Coverage", Unit: "%"},
		},
		models.CategoryEducation: {
			{Key: "schools", Label: "Total Schools"},
			{Key: "enrollment", Label: "Enrollment Rate", Unit: "%"},
			{Key: "literacy", Label: "Literacy Rate", Unit: "%"},
			{Key: "teachers", Label: "Teachers"},
			{Key: "infrastructure", Label: "Infrastructure Score", Unit: "%"},
		},
	}

	labels := []string{"Hospitals", "Beds (000s)", "Doctors (000s)", "Budget (₹ Cr)", "Coverage (%)"}
	colors := [2]string{"#FF6384", "#36A2EB"}
	t.regionChart = ComparisonChart{
		Labels: labels,
		First:  []float64{2456, 89, 12.5, 156, 78.5},
		Second: []float64{2180, 76, 11.2, 142, 76.8},
		Colors: colors,
	}
	t.yearChart = ComparisonChart{
		Labels: labels,
		First:  []float64{2456, 89, 12.5, 156, 78.5},
		Second: []float64{2380, 86.5, 11.8, 142, 76.2},
		Colors: colors,
	}
}
