package models

import "time"

type Program struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   int       `json:"created_by"`
	AssignedTo  int       `json:"assigned_to"`
	Status      string    `json:"status"`
	Participants []string `json:"participants"`
	Progress    int       `json:"progress"`
	Remarks     string    `json:"remarks,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedByName  string `json:"created_by_name,omitempty"`
	AssignedToName string `json:"assigned_to_name,omitempty"`
}

type CreateProgramRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CreatedBy    int      `json:"created_by"`
	AssignedTo   int      `json:"assigned_to"`
	Participants []string `json:"participants"`
	Progress     int      `json:"progress"`
	Remarks      string   `json:"remarks"`
}

type UpdateProgramRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	AssignedTo   int      `json:"assigned_to"`
	Status       string   `json:"status"`
	Participants []string `json:"participants"`
	Progress     int      `json:"progress"`
	Remarks      string   `json:"remarks"`
}

type ProgramProgressRequest struct {
	Progress int    `json:"progress"`
	Remarks  string `json:"remarks"`
}

type ProgramMemberRequest struct {
	ProgramID int `json:"programId"`
	UserID    int `json:"userId"`
}

// UserRef is the id/name pair returned by the lookup endpoints that feed
// assignment dropdowns.
type UserRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
