package upload

import (
	"strings"

	"jansuvidha/models"
)

const completedSummary = "Document processed successfully. Data extracted and ready for analysis."

// ExtractedRows returns the canned rows for a processed file. The choice
// depends only on the file name; no content is read.
func ExtractedRows(filename string) []models.Row {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "health"):
		return []models.Row{
			{"parameter": "Hospitals", "count": 156, "capacity": "12,400 beds"},
			{"parameter": "PHCs", "count": 234, "coverage": "2.4M population"},
			{"parameter": "Doctors", "count": 1840, "ratio": "1:650"},
		}
	case strings.Contains(name, "education"):
		return []models.Row{
			{"level": "Primary", "schools": 1250, "enrollment": "89%"},
			{"level": "Secondary", "schools": 450, "enrollment": "76%"},
			{"level": "Higher Secondary", "schools": 180, "enrollment": "65%"},
		}
	default:
		return []models.Row{
			{"category": "Data Points", "count": 1200, "verified": "95%"},
			{"category": "Records", "count": 450, "accuracy": "98%"},
		}
	}
}
