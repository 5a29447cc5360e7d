package models

import "time"

// Chapter progress statuses.
const (
	ChapterNotStarted = "not_started"
	ChapterInProgress = "in_progress"
	ChapterCompleted  = "completed"
)

type Chapter struct {
	ID           int       `json:"id"`
	ProgramID    int       `json:"program_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ChapterOrder int       `json:"chapter_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateChapterRequest struct {
	ProgramID    int    `json:"program_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ChapterOrder int    `json:"chapter_order"`
}

type UpdateChapterRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ChapterOrder int    `json:"chapter_order"`
}

type ChapterProgress struct {
	ID              int       `json:"id"`
	ProgramID       int       `json:"program_id,omitempty"`
	ChapterID       int       `json:"chapter_id"`
	UserID          int       `json:"user_id,omitempty"`
	Status          string    `json:"status"`
	Remarks         string    `json:"remarks,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
	ProgramName     string    `json:"program_name,omitempty"`
	ChapterName     string    `json:"chapter_name,omitempty"`
	ParticipantName string    `json:"participant_name,omitempty"`
}

// ChapterWithProgress is a chapter row joined with one participant's
// progress; status defaults to not_started when no progress row exists.
type ChapterWithProgress struct {
	ChapterID    int    `json:"chapter_id"`
	ChapterName  string `json:"chapter_name"`
	Description  string `json:"description"`
	ChapterOrder int    `json:"chapter_order"`
	Status       string `json:"status"`
	Remarks      string `json:"remarks,omitempty"`
}

type UpsertChapterProgressRequest struct {
	ProgramID int    `json:"program_id"`
	UserID    int    `json:"user_id"`
	ChapterID int    `json:"chapter_id"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks"`
}
