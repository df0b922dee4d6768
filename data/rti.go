package data

import "jansuvidha/models"

func loadRTI(t *Tables) {
	t.submissions = []models.RTISubmission{
		{
			ID:                 "1",
			Title:              "Hospital Infrastructure Budget Allocation 2024",
			ReferenceNumber:    "RTI/HEALTH/2024/001",
			Department:         "Health & Family Welfare",
			SubmissionDate:     "2024-01-10",
			ResponseDate:       "2024-01-25",
			Status:             models.RTIResponded,
			Description:        "Details about budget allocation for hospital infrastructure development across Tamil Nadu.",
			Documents:          []string{"budget_allocation_hospitals.pdf", "infrastructure_plan.xlsx"},
			IsPublic:           true,
			VerificationStatus: models.Verified,
		},
		{
			ID:                 "2",
			Title:              "School Teacher Recruitment Data",
			ReferenceNumber:    "RTI/EDU/2024/015",
			Department:         "Education",
			SubmissionDate:     "2024-01-15",
			ResponseDate:       "2024-02-01",
			Status:             models.RTIResponded,
			Description:        "Information about teacher recruitment numbers, vacancies, and selection process.",
			Documents:          []string{"teacher_recruitment_2024.pdf"},
			IsPublic:           true,
			VerificationStatus: models.Verified,
		},
		{
			ID:                 "3",
			Title:              "Rural Water Supply Scheme Progress",
			ReferenceNumber:    "RTI/WATER/2024/008",
			Department:         "Water Resources",
			SubmissionDate:     "2024-01-20",
			Status:             models.RTIPending,
			Description:        "Status update on Jal Jeevan Mission implementation in rural areas.",
			Documents:          []string{},
			IsPublic:           false,
			VerificationStatus: models.Unverified,
		},
		{
			ID:                 "4",
			Title:              "Agricultural Subsidy Distribution",
			ReferenceNumber:    "RTI/AGRI/2024/032",
			Department:         "Agriculture",
			SubmissionDate:     "2023-12-15",
			Status:             models.RTIOverdue,
			Description:        "Details about PM-KISAN and other agricultural subsidy distribution in the district.",
			Documents:          []string{},
			IsPublic:           true,
			VerificationStatus: models.Disputed,
		},
	}

	t.departments = []string{
		"Health & Family Welfare",
		"Education",
		"Water Resources",
		"Agriculture",
		"Rural Development",
		"Urban Development",
	}

	t.rtiStats = models.RTIStats{Total: 1247, Verified: 1089, Pending: 158, ThisMonth: 43}
}
