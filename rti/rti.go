// Package rti browses Right to Information submissions.
package rti

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jansuvidha/models"
)

// All disables a status or department filter.
const All = "all"

var (
	ErrNotFound        = errors.New("rti submission not found")
	ErrMissingField    = errors.New("required field missing")
	ErrUnknownDept     = errors.New("unknown department")
	ErrBadResponseDate = errors.New("response date must be YYYY-MM-DD")
)

// Filter returns the submissions matching every filter, in their original
// order. searchTerm matches title, reference number or department without
// regard to case; status and department match exactly unless empty or All.
func Filter(all []models.RTISubmission, searchTerm, status, department string) []models.RTISubmission {
	term := strings.ToLower(searchTerm)
	out := make([]models.RTISubmission, 0, len(all))
	for _, s := range all {
		if !matchesSearch(s, term) {
			continue
		}
		if !isAll(status) && string(s.Status) != status {
			continue
		}
		if !isAll(department) && s.Department != department {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesSearch(s models.RTISubmission, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), term) ||
		strings.Contains(strings.ToLower(s.ReferenceNumber), term) ||
		strings.Contains(strings.ToLower(s.Department), term)
}

func isAll(v string) bool {
	return v == "" || v == All
}

// Find returns the submission with the given id.
func Find(all []models.RTISubmission, id string) (models.RTISubmission, error) {
	for _, s := range all {
		if s.ID == id {
			return s, nil
		}
	}
	return models.RTISubmission{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Validate checks a user supplied RTI response before review. The draft is
// not stored anywhere.
func Validate(d models.RTIDraft, departments []string) error {
	var missing []string
	if strings.TrimSpace(d.ReferenceNumber) == "" {
		missing = append(missing, "reference_number")
	}
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Department) == "" {
		missing = append(missing, "department")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	known := false
	for _, dept := range departments {
		if dept == d.Department {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownDept, d.Department)
	}

	if d.ResponseDate != "" && !isDate(d.ResponseDate) {
		return fmt.Errorf("%w: %q", ErrBadResponseDate, d.ResponseDate)
	}
	return nil
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
