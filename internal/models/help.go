package models

import "time"

// Help request statuses.
const (
	HelpPending    = "Pending"
	HelpInProgress = "In Progress"
	HelpResolved   = "Resolved"
)

type HelpRequest struct {
	ID            int       `json:"id"`
	GuardianID    int       `json:"guardian_id,omitempty"`
	ParticipantID int       `json:"participant_id,omitempty"`
	Request       string    `json:"request"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	GuardianName     string `json:"guardian_name,omitempty"`
	GuardianEmail    string `json:"guardian_email,omitempty"`
	ParticipantName  string `json:"participant_name,omitempty"`
	ParticipantAge   int    `json:"age,omitempty"`
	Condition        string `json:"condition,omitempty"`
	ProfessionalName string `json:"professional_name,omitempty"`
}

type CreateHelpRequest struct {
	GuardianID    int    `json:"guardian_id"`
	ParticipantID int    `json:"participant_id"`
	Request       string `json:"request"`
}

type UpdateHelpRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type HelpSummary struct {
	TotalRequests      int `json:"total_requests"`
	PendingRequests    int `json:"pending_requests"`
	InProgressRequests int `json:"in_progress_requests"`
	ResolvedRequests   int `json:"resolved_requests"`
}
