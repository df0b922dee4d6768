package views

import (
	"jansuvidha/models"
	"jansuvidha/rti"
)

const (
	TabBrowse = "browse"
	TabSubmit = "submit"
)

var rtiStatuses = []string{rti.All, string(models.RTIResponded), string(models.RTIPending), string(models.RTIOverdue), string(models.RTIVerified)}

// RTIView is the state of the RTI repository page.
type RTIView struct {
	Tab        string
	Search     string
	Status     string
	Department string
}

func NewRTIView() RTIView {
	return RTIView{Tab: TabBrowse, Status: rti.All, Department: rti.All}
}

func (v *RTIView) SelectTab(tab string) error {
	if tab != TabBrowse && tab != TabSubmit {
		return invalid("unknown tab %q", tab)
	}
	v.Tab = tab
	return nil
}

func (v *RTIView) SetSearch(term string) {
	v.Search = term
}

func (v *RTIView) FilterStatus(status string) error {
	if !contains(rtiStatuses, status) {
		return invalid("unknown status %q", status)
	}
	v.Status = status
	return nil
}

// FilterDepartment selects a department. A department outside the known
// list is kept and simply matches nothing.
func (v *RTIView) FilterDepartment(dept string) error {
	if dept == "" {
		return invalid("empty department")
	}
	v.Department = dept
	return nil
}

// Results applies the current filters to all submissions.
func (v RTIView) Results(all []models.RTISubmission) []models.RTISubmission {
	return rti.Filter(all, v.Search, v.Status, v.Department)
}
