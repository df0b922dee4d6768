package models

type RTIStatus string

const (
	RTIPending   RTIStatus = "pending"
	RTIResponded RTIStatus = "responded"
	RTIOverdue   RTIStatus = "overdue"
	RTIVerified  RTIStatus = "verified"
)

type VerificationStatus string

const (
	Verified   VerificationStatus = "verified"
	Unverified VerificationStatus = "unverified"
	Disputed   VerificationStatus = "disputed"
)

// RTISubmission is a Right to Information request and its response.
type RTISubmission struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	ReferenceNumber    string             `json:"reference_number"`
	Department         string             `json:"department"`
	SubmissionDate     string             `json:"submission_date"`
	ResponseDate       string             `json:"response_date,omitempty"`
	Status             RTIStatus          `json:"status"`
	Description        string             `json:"description"`
	Documents          []string           `json:"documents"`
	IsPublic           bool               `json:"is_public"`
	VerificationStatus VerificationStatus `json:"verification_status"`
}

// RTIStats are the headline counters of the RTI repository.
type RTIStats struct {
	Total     int `json:"total"`
	Verified  int `json:"verified"`
	Pending   int `json:"pending"`
	ThisMonth int `json:"this_month"`
}

// RTIDraft is a user supplied RTI response awaiting review.
type RTIDraft struct {
	ReferenceNumber string   `json:"reference_number"`
	Title           string   `json:"title"`
	Department      string   `json:"department"`
	Description     string   `json:"description,omitempty"`
	ResponseDate    string   `json:"response_date,omitempty"`
	Documents       []string `json:"documents,omitempty"`
	IsPublic        bool     `json:"is_public"`
}
