package models

import "time"

type SystemSummary struct {
	TotalRequests      int `json:"total_requests"`
	PendingRequests    int `json:"pending_requests"`
	InProgressRequests int `json:"in_progress_requests"`
	ResolvedRequests   int `json:"resolved_requests"`
	TotalParticipants  int `json:"total_participants"`
	TotalGuardians     int `json:"total_guardians"`
	TotalProfessionals int `json:"total_professionals"`
	ActivePrograms     int `json:"active_programs"`
	TotalChapters      int `json:"total_chapters,omitempty"`
}

// DateCount is one bucket of a per-day (or per-month) count series.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type DashboardSummary struct {
	Summary        SystemSummary `json:"summary"`
	RecentRequests []DateCount   `json:"recent_requests"`
}

type ProfessionalReport struct {
	ID                       int    `json:"id"`
	Name                     string `json:"name"`
	Email                    string `json:"email"`
	Profession               string `json:"profession"`
	TotalParticipants        int    `json:"total_participants"`
	ActiveParticipants       int    `json:"active_participants"`
	DischargedParticipants   int    `json:"discharged_participants"`
	TransferredParticipants  int    `json:"transferred_participants"`
	TotalPrograms            int    `json:"total_programs"`
	TotalChaptersSupervised  int    `json:"total_chapters_supervised"`
}

type GuardianReport struct {
	ID                        int                 `json:"id"`
	Name                      string              `json:"name"`
	Email                     string              `json:"email"`
	TotalHelpRequests         int                 `json:"total_help_requests"`
	TotalGuardianParticipants int                 `json:"total_guardian_participants"`
	Participants              []GuardianChild     `json:"participants"`
}

type GuardianChild struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	Condition string `json:"condition"`
	Status    string `json:"status"`
}

// Member analytics shapes.

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ProfessionalWorkload struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Profession         string `json:"profession"`
	TotalParticipants  int    `json:"total_participants"`
	ActiveParticipants int    `json:"active_participants"`
}

type GuardianEngagement struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	TotalParticipants int    `json:"total_participants"`
	TotalHelpRequests int    `json:"total_help_requests"`
}

type DateRangeStats struct {
	Admissions     int `json:"admissions"`
	HelpRequests   int `json:"help_requests"`
	ProgressEvents int `json:"progress_events"`
}

type ProgressReportRow struct {
	ProgressID      int       `json:"progress_id"`
	ChapterName     string    `json:"chapter_name"`
	ParticipantName string    `json:"participant_name"`
	Status          string    `json:"status"`
	Remarks         string    `json:"remarks,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}
