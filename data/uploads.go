package data

import "jansuvidha/models"

func loadUploads(t *Tables) {
	t.uploads = []models.UploadedFile{
		{
			ID:         "1",
			Name:       "health_budget_2024.pdf",
			Size:       "2.3 MB",
			Type:       "PDF",
			UploadDate: "2024-01-15",
			Status:     models.UploadCompleted,
			Summary:    "Health budget allocation across 15 districts with detailed breakdowns for hospital infrastructure and vaccination programs.",
			ExtractedData: []models.Row{
				{"district": "Chennai", "allocation": "₹450 Cr", "hospitals": 25, "beds": 5000},
				{"district": "Coimbatore", "allocation": "₹320 Cr", "hospitals": 18, "beds": 3600},
				{"district": "Madurai", "allocation": "₹280 Cr", "hospitals": 15, "beds": 3000},
			},
		},
		{
			ID:         "2",
			Name:       "education_statistics.xlsx",
			Size:       "1.8 MB",
			Type:       "Excel",
			UploadDate: "2024-01-14",
			Status:     models.UploadCompleted,
			Summary:    "School enrollment and literacy rates across rural and urban areas with gender-wise breakdown.",
			ExtractedData: []models.Row{
				{"area": "Rural", "enrollment": "78%", "literacy": "72%", "schools": 1250},
				{"area": "Urban", "enrollment": "94%", "literacy": "89%", "schools": 450},
			},
		},
	}
}
