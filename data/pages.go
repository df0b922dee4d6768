package data

import "jansuvidha/models"

func mapState(name, color string, metrics map[string]float64) models.MapState {
	return models.MapState{Name: name, Metrics: metrics, Color: color}
}

func loadPages(t *Tables) {
	t.info = map[models.Category]models.CategoryInfo{
		models.CategoryHealth: {
			ID:          models.CategoryHealth,
			Title:       "Health Infrastructure & Services",
			Description: "Comprehensive health data including hospitals, PHCs, vaccination coverage, and budget allocation",
			Icon:        "🏥",
			Color:       "from-red-500 to-pink-500",
			Stats: []models.Stat{
				{Label: "Public Hospitals", Value: "25,778", Change: "+5.2%"},
				{Label: "Hospital Beds", Value: "7.13L", Change: "+3.8%"},
				{Label: "PHCs", Value: "30,045", Change: "+2.1%"},
				{Label: "Doctors", Value: "5.2L", Change: "+7.3%"},
			},
		},
		models.CategorySanitation: {
			ID:          models.CategorySanitation,
			Title:       "Sanitation & Hygiene",
			Description: "Water supply, sewage treatment, waste management, and Swachh Bharat Mission progress",
			Icon:        "🚰",
			Color:       "from-blue-500 to-cyan-500",
			Stats: []models.Stat{
				{Label: "Toilet Coverage", Value: "98.6%", Change: "+2.1%"},
				{Label: "Waste Processing", Value: "70%", Change: "+5.4%"},
				{Label: "Water Supply", Value: "83.2%", Change: "+1.8%"},
				{Label: "Open Defecation Free", Value: "95.1%", Change: "+0.9%"},
			},
		},
		models.CategoryBudget: {
			ID:          models.CategoryBudget,
			Title:       "Government Budget & Spending",
			Description: "State and central budget allocation, expenditure tracking, and scheme-wise spending analysis",
			Icon:        "💰",
			Color:       "from-green-500 to-emerald-500",
			Stats: []models.Stat{
				{Label: "Total Budget", Value: "₹47.66L Cr", Change: "+12.3%"},
				{Label: "Capital Expenditure", Value: "₹10.68L Cr", Change: "+15.2%"},
				{Label: "Health Allocation", Value: "₹2.73L Cr", Change: "+8.7%"},
				{Label: "Education Allocation", Value: "₹1.12L Cr", Change: "+6.4%"},
			},
		},
		models.CategoryEducation: {
			ID:          models.CategoryEducation,
			Title:       "Education System Performance",
			Description: "School enrollment, literacy rates, infrastructure, teacher-student ratio, and learning outcomes",
			Icon:        "📚",
			Color:       "from-purple-500 to-indigo-500",
			Stats: []models.Stat{
				{Label: "Gross Enrollment", Value: "98.2%", Change: "+1.5%"},
				{Label: "Literacy Rate", Value: "77.7%", Change: "+0.8%"},
				{Label: "Schools", Value: "14.89L", Change: "+2.3%"},
				{Label: "Teachers", Value: "95.1L", Change: "+4.1%"},
			},
		},
		models.CategoryAgriculture: {
			ID:          models.CategoryAgriculture,
			Title:       "Agriculture & Rural Development",
			Description: "Crop production, irrigation, farmer welfare schemes, and agricultural technology adoption",
			Icon:        "🌾",
			Color:       "from-yellow-500 to-orange-500",
			Stats: []models.Stat{
				{Label: "Cropped Area", Value: "198.4M Ha", Change: "+1.2%"},
				{Label: "Irrigation Coverage", Value: "52.6%", Change: "+3.1%"},
				{Label: "PM-KISAN Beneficiaries", Value: "11.77 Cr", Change: "+2.8%"},
				{Label: "Food Production", Value: "329.7M T", Change: "+4.2%"},
			},
		},
		models.CategoryWelfare: {
			ID:          models.CategoryWelfare,
			Title:       "Women & Child Welfare",
			Description: "Maternal health, child nutrition, women empowerment programs, and social security schemes",
			Icon:        "👩‍👧‍👦",
			Color:       "from-pink-500 to-rose-500",
			Stats: []models.Stat{
				{Label: "ICDS Centers", Value: "13.6L", Change: "+1.9%"},
				{Label: "Institutional Births", Value: "89.4%", Change: "+2.3%"},
				{Label: "Jan Aushadhi Kendras", Value: "9,300", Change: "+18.2%"},
				{Label: "SHG Members", Value: "6.9 Cr", Change: "+5.7%"},
			},
		},
	}

	t.mapStates = map[models.Category][]models.MapState{
		models.CategoryHealth: {
			mapState("Tamil Nadu", "#22C55E", map[string]float64{"hospitals": 2456, "beds": 89000}),
			mapState("Karnataka", "#3B82F6", map[string]float64{"hospitals": 2180, "beds": 76000}),
			mapState("Maharashtra", "#10B981", map[string]float64{"hospitals": 2876, "beds": 110000}),
			mapState("Gujarat", "#6366F1", map[string]float64{"hospitals": 1987, "beds": 68000}),
			mapState("Rajasthan", "#8B5CF6", map[string]float64{"hospitals": 1654, "beds": 58000}),
			mapState("West Bengal", "#06B6D4", map[string]float64{"hospitals": 2234, "beds": 82000}),
		},
		models.CategoryEducation: {
			mapState("Tamil Nadu", "#22C55E", map[string]float64{"schools": 45600, "enrollment": 94.2}),
			mapState("Karnataka", "#3B82F6", map[string]float64{"schools": 52400, "enrollment": 91.8}),
			mapState("Maharashtra", "#10B981", map[string]float64{"schools": 108000, "enrollment": 92.0}),
			mapState("Gujarat", "#6366F1", map[string]float64{"schools": 48200, "enrollment": 93.0}),
			mapState("Rajasthan", "#8B5CF6", map[string]float64{"schools": 78500, "enrollment": 85.2}),
			mapState("West Bengal", "#06B6D4", map[string]float64{"schools": 89600, "enrollment": 88.5}),
		},
		models.CategorySanitation: {
			mapState("Tamil Nadu", "#22C55E", map[string]float64{"coverage": 99.1, "waste": 82}),
			mapState("Karnataka", "#3B82F6", map[string]float64{"coverage": 98.6, "waste": 75}),
			mapState("Maharashtra", "#10B981", map[string]float64{"coverage": 98.8, "waste": 78}),
			mapState("Gujarat", "#6366F1", map[string]float64{"coverage": 97.9, "waste": 80}),
			mapState("Rajasthan", "#8B5CF6", map[string]float64{"coverage": 97.2, "waste": 68}),
			mapState("West Bengal", "#06B6D4", map[string]float64{"coverage": 96.8, "waste": 71}),
		},
	}

	t.states = []models.Option{
		{Value: "all", Label: "All States"},
		{Value: "maharashtra", Label: "Maharashtra"},
		{Value: "tamil-nadu", Label: "Tamil Nadu"},
		{Value: "karnataka", Label: "Karnataka"},
		{Value: "gujarat", Label: "Gujarat"},
		{Value: "rajasthan", Label: "Rajasthan"},
	}

	// Feature titles and descriptions are translation keys.
	t.home = models.HomePage{
		Title:       "appTitle",
		Subtitle:    "subtitle",
		Description: "transparencyDesc",
		Features: []models.Feature{
			{Title: "uploadTitle", Description: "uploadDesc", Link: "/upload"},
			{Title: "visualizeTitle", Description: "visualizeDesc", Link: "/category/health"},
			{Title: "compareTitle", Description: "compareDesc", Link: "/compare"},
			{Title: "rtiTitle", Description: "rtiDesc", Link: "/rti"},
		},
		RecentUploads: []models.RecentUpload{
			{Name: "Tamil Nadu Health Budget 2024", Date: "2 hours ago", Category: "Health"},
			{Name: "Maharashtra Education Statistics", Date: "5 hours ago", Category: "Education"},
			{Name: "Karnataka Agriculture Report", Date: "1 day ago", Category: "Agriculture"},
		},
		Trending: []models.TrendingDataset{
			{Name: "COVID-19 Vaccination Data", Views: "15.2K", Category: "Health"},
			{Name: "PM-KISAN Beneficiary List", Views: "12.8K", Category: "Agriculture"},
			{Name: "School Infrastructure Report", Views: "9.5K", Category: "Education"},
		},
	}
}
