package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"jansuvidha/models"
	"jansuvidha/rti"
	"jansuvidha/views"
)

type RTIListResponse struct {
	Stats       models.RTIStats        `json:"stats"`
	Departments []string               `json:"departments"`
	Total       int                    `json:"total"`
	Results     []models.RTISubmission `json:"results"`
}

type RTIValidateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func (a *API) ListRTI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	departments := a.tables.Departments()

	v := views.NewRTIView()
	v.SetSearch(q.Get("q"))
	if status := q.Get("status"); status != "" {
		if err := v.FilterStatus(status); err != nil {
			a.sendErrorResponse(w, err)
			return
		}
	}
	if dept := q.Get("department"); dept != "" {
		if err := v.FilterDepartment(dept); err != nil {
			a.sendErrorResponse(w, err)
			return
		}
	}

	all := a.tables.Submissions()
	writeJSON(w, http.StatusOK, RTIListResponse{
		Stats:       a.tables.RTIStats(),
		Departments: departments,
		Total:       len(all),
		Results:     v.Results(all),
	})
}

func (a *API) GetRTI(w http.ResponseWriter, r *http.Request) {
	s, err := rti.Find(a.tables.Submissions(), mux.Vars(r)["id"])
	if err != nil {
		a.sendErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ValidateRTI checks a submitted RTI response. Nothing is stored.
func (a *API) ValidateRTI(w http.ResponseWriter, r *http.Request) {
	var draft models.RTIDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		a.sendErrorResponse(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if err := rti.Validate(draft, a.tables.Departments()); err != nil {
		a.sendErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, RTIValidateResponse{
		Valid:   true,
		Message: "RTI response submitted for review.",
	})
}
