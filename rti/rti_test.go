package rti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jansuvidha/data"
	"jansuvidha/models"
)

func titles(subs []models.RTISubmission) []string {
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = s.Title
	}
	return out
}

func TestFilter(t *testing.T) {
	all := data.Load().Submissions()

	tests := []struct {
		name   string
		term   string
		status string
		dept   string
		want   []string
	}{
		{"no filters", "", All, All, titles(all)},
		{"empty filters", "", "", "", titles(all)},
		{"search title", "water", All, All, []string{"Rural Water Supply Scheme Progress"}},
		{"search is case insensitive", "SCHOOL", All, All, []string{"School Teacher Recruitment Data"}},
		{"search reference number", "rti/agri", All, All, []string{"Agricultural Subsidy Distribution"}},
		{"search department", "family welfare", All, All, []string{"Hospital Infrastructure Budget Allocation 2024"}},
		{"status", "", "responded", All, []string{"Hospital Infrastructure Budget Allocation 2024", "School Teacher Recruitment Data"}},
		{"department", "", All, "Agriculture", []string{"Agricultural Subsidy Distribution"}},
		{"all filters", "2024", "responded", "Education", []string{"School Teacher Recruitment Data"}},
		{"no match", "metro", All, All, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Filter(all, tt.term, tt.status, tt.dept)))
		})
	}
}

func TestFind(t *testing.T) {
	all := data.Load().Submissions()

	s, err := Find(all, "3")
	require.NoError(t, err)
	assert.Equal(t, models.RTIPending, s.Status)

	_, err = Find(all, "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidate(t *testing.T) {
	departments := data.Load().Departments()
	valid := models.RTIDraft{
		ReferenceNumber: "RTI/EDU/2024/099",
		Title:           "Midday meal coverage",
		Department:      "Education",
		ResponseDate:    "2024-03-01",
	}
	require.NoError(t, Validate(valid, departments))

	missing := valid
	missing.Title = "  "
	missing.ReferenceNumber = ""
	err := Validate(missing, departments)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "reference_number, title")

	unknown := valid
	unknown.Department = "Space"
	assert.ErrorIs(t, Validate(unknown, departments), ErrUnknownDept)

	badDate := valid
	badDate.ResponseDate = "01/03/2024"
	assert.ErrorIs(t, Validate(badDate, departments), ErrBadResponseDate)
}
