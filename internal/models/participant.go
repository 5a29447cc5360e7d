package models

import "time"

// Rehab participant lifecycle statuses.
const (
	ParticipantActive      = "Active"
	ParticipantDischarged  = "Discharged"
	ParticipantTransferred = "Transferred"
)

type RehabParticipant struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Gender         string    `json:"gender"`
	Age            int       `json:"age"`
	Condition      string    `json:"condition"`
	GuardianID     int       `json:"guardian_id"`
	ProfessionalID int       `json:"professional_id"`
	AdmissionDate  time.Time `json:"admission_date"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`

	// Populated by list queries that join the users table.
	GuardianName      string `json:"guardian_name,omitempty"`
	GuardianEmail     string `json:"guardian_email,omitempty"`
	GuardianUsername  string `json:"guardian_username,omitempty"`
	ProfessionalName  string `json:"professional_name,omitempty"`
	ProfessionalEmail string `json:"professional_email,omitempty"`
	Profession        string `json:"profession,omitempty"`
}

type CreateParticipantRequest struct {
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	Condition      string `json:"condition"`
	GuardianID     int    `json:"guardian_id"`
	ProfessionalID int    `json:"professional_id"`
	AdmissionDate  string `json:"admission_date"`
}

type UpdateParticipantRequest struct {
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	Condition      string `json:"condition"`
	GuardianID     int    `json:"guardian_id"`
	ProfessionalID int    `json:"professional_id"`
	AdmissionDate  string `json:"admission_date"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

type AssignRequest struct {
	ParticipantID  int `json:"participantId"`
	GuardianID     int `json:"guardianId"`
	ProfessionalID int `json:"professionalId"`
}

type UpdateStatusRequest struct {
	ParticipantID int    `json:"participantId"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}
