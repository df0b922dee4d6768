package data

import "jansuvidha/models"

var barRegions = []string{"Uttar Pradesh", "Maharashtra", "Tamil Nadu", "Karnataka", "Gujarat"}

func bar(label string, color string, values ...float64) models.Dataset {
	return models.Dataset{Label: label, Data: values, BackgroundColor: []string{color}}
}

func trend(label, border, fill string, values ...float64) models.Dataset {
	return models.Dataset{
		Label:           label,
		Data:            values,
		BorderColor:     border,
		BackgroundColor: []string{fill},
		Tension:         0.4,
	}
}

func loadCharts(t *Tables) {
	t.overview = map[models.Category]Overview{
		models.CategoryHealth: {
			Labels: []string{"Hospitals", "PHCs", "CHCs", "Sub-Centers"},
			Values: []float64{25778, 30045, 5624, 158417},
			Colors: []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0"},
		},
		models.CategoryEducation: {
			Labels: []string{"Primary Schools", "Secondary Schools", "Higher Secondary", "Colleges"},
			Values: []float64{1048000, 245000, 125000, 52000},
			Colors: []string{"#9966FF", "#FF9F40", "#FF6384", "#36A2EB"},
		},
		models.CategorySanitation: {
			Labels: []string{"Individual Toilets", "Community Toilets", "Public Toilets", "Waste Processing"},
			Values: []float64{108000000, 567000, 125000, 4200},
			Colors: []string{"#4BC0C0", "#36A2EB", "#FFCE56", "#FF6384"},
		},
		models.CategoryAgriculture: {
			Labels: []string{"Rice", "Wheat", "Sugarcane", "Cotton"},
			Values: []float64{118000, 109000, 37500, 6200},
			Colors: []string{"#FFD93D", "#6BCF7F", "#FF6B9D", "#C89CFF"},
		},
		models.CategoryBudget: {
			Labels: []string{"Health", "Education", "Infrastructure", "Agriculture"},
			Values: []float64{273000, 112000, 185000, 98000},
			Colors: []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0"},
		},
		models.CategoryWelfare: {
			Labels: []string{"ICDS Centers", "Anganwadi Centers", "Skill Centers", "SHGs"},
			Values: []float64{1360000, 1380000, 32000, 6900000},
			Colors: []string{"#FF9F40", "#FF6384", "#9966FF", "#36A2EB"},
		},
	}

	t.bars = map[models.Category]Series{
		models.CategoryHealth: {Labels: barRegions, Datasets: []models.Dataset{
			bar("Hospitals", "#FF6384", 3245, 2876, 2456, 2180, 1987),
			bar("Hospital Beds", "#36A2EB", 125000, 110000, 89000, 76000, 68000),
		}},
		models.CategoryEducation: {Labels: barRegions, Datasets: []models.Dataset{
			bar("Schools", "#9966FF", 195000, 108000, 45600, 52400, 48200),
			bar("Enrollment Rate (%)", "#FF9F40", 87, 92, 94, 91, 93),
		}},
		models.CategorySanitation: {Labels: barRegions, Datasets: []models.Dataset{
			bar("Toilet Coverage (%)", "#4BC0C0", 96.2, 98.8, 99.1, 98.6, 97.9),
			bar("Waste Management (%)", "#36A2EB", 65, 78, 82, 75, 80),
		}},
		models.CategoryAgriculture: {Labels: barRegions, Datasets: []models.Dataset{
			bar("Crop Production (Million Tonnes)", "#FFD93D", 59.2, 18.4, 16.8, 14.2, 12.6),
			bar("Irrigation Coverage (%)", "#6BCF7F", 78, 65, 72, 68, 85),
		}},
		models.CategoryBudget: {Labels: barRegions, Datasets: []models.Dataset{
			bar("Total Budget (₹ Thousand Crores)", "#FF6384", 635, 487, 345, 298, 275),
			bar("Per Capita Budget (₹)", "#36A2EB", 28500, 42300, 47800, 46200, 44200),
		}},
		models.CategoryWelfare: {Labels: barRegions, Datasets: []models.Dataset{
			bar("ICDS Centers", "#FF9F40", 285000, 128000, 98000, 85000, 78000),
			bar("Beneficiaries (Millions)", "#FF6384", 18.5, 8.9, 6.2, 5.8, 5.1),
		}},
	}

	t.trendYears = []string{"2020", "2021", "2022", "2023", "2024"}
	t.trends = map[models.Category][]models.Dataset{
		models.CategoryHealth: {
			trend("Hospital Beds (Thousands)", "#FF6384", "rgba(255, 99, 132, 0.1)", 713, 735, 758, 782, 806),
			trend("Doctors (Thousands)", "#36A2EB", "rgba(54, 162, 235, 0.1)", 420, 445, 472, 498, 525),
		},
		models.CategoryEducation: {
			trend("Enrollment Rate (%)", "#9966FF", "rgba(153, 102, 255, 0.1)", 86.2, 88.1, 90.3, 92.1, 93.8),
			trend("Literacy Rate (%)", "#FF9F40", "rgba(255, 159, 64, 0.1)", 74.0, 75.2, 76.1, 76.8, 77.7),
		},
		models.CategorySanitation: {
			trend("Toilet Coverage (%)", "#4BC0C0", "rgba(75, 192, 192, 0.1)", 95.6, 96.5, 97.2, 97.8, 98.6),
			trend("Waste Processing (%)", "#36A2EB", "rgba(54, 162, 235, 0.1)", 58, 62, 65, 67, 70),
		},
		models.CategoryAgriculture: {
			trend("Food Production (Million Tonnes)", "#FFD93D", "rgba(255, 217, 61, 0.1)", 296.7, 308.6, 315.7, 323.5, 329.7),
			trend("Irrigation Coverage (%)", "#6BCF7F", "rgba(107, 207, 127, 0.1)", 48.2, 49.1, 50.5, 51.8, 52.6),
		},
		models.CategoryBudget: {
			trend("Total Budget (₹ Lakh Crores)", "#FF6384", "rgba(255, 99, 132, 0.1)", 34.8, 37.9, 41.2, 44.7, 47.7),
			trend("Health Allocation (%)", "#36A2EB", "rgba(54, 162, 235, 0.1)", 4.2, 4.6, 5.1, 5.4, 5.7),
		},
		models.CategoryWelfare: {
			trend("ICDS Centers (Lakhs)", "#FF9F40", "rgba(255, 159, 64, 0.1)", 12.8, 13.0, 13.2, 13.4, 13.6),
			trend("Beneficiaries (Crores)", "#FF6384", "rgba(255, 99, 132, 0.1)", 6.2, 6.4, 6.6, 6.7, 6.9),
		},
	}
}
