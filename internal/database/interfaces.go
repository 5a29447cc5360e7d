package database

import (
	"context"
	"errors"

	"rehab-app/internal/models"
)

// ErrNotFound is returned when a lookup matches no rows.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	CreateUser(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int) error
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]*models.User, error)
}

type ParticipantRepository interface {
	CreateParticipant(ctx context.Context, req *models.CreateParticipantRequest) (int, error)
	ListParticipants(ctx context.Context) ([]*models.RehabParticipant, error)
	GetParticipantByID(ctx context.Context, id int) (*models.RehabParticipant, error)
	AssignGuardianAndProfessional(ctx context.Context, participantID, guardianID, professionalID int) error
	UpdateParticipantStatus(ctx context.Context, participantID int, status, notes string) error
	UpdateParticipant(ctx context.Context, id int, req *models.UpdateParticipantRequest) error
	DeleteParticipant(ctx context.Context, id int) error
	ListAssignedParticipants(ctx context.Context, professionalID int) ([]*models.RehabParticipant, error)
	ListParticipantsByGuardian(ctx context.Context, guardianID int) ([]*models.RehabParticipant, error)
}

type ProgramRepository interface {
	CreateProgram(ctx context.Context, req *models.CreateProgramRequest) (int, error)
	ListPrograms(ctx context.Context) ([]*models.Program, error)
	GetProgramByID(ctx context.Context, id int) (*models.Program, error)
	UpdateProgram(ctx context.Context, id int, req *models.UpdateProgramRequest) error
	UpdateProgramProgress(ctx context.Context, id, progress int, remarks string) error
	SetProgramParticipants(ctx context.Context, id int, participants []string) error
	DeleteProgram(ctx context.Context, id int) error
	ListProgramsByProfessional(ctx context.Context, userID int) ([]*models.Program, error)
	ListProgramsByParticipant(ctx context.Context, userID int) ([]*models.Program, error)
}

type ChapterRepository interface {
	CreateChapter(ctx context.Context, req *models.CreateChapterRequest) (int, error)
	ListChapters(ctx context.Context, programID int) ([]*models.Chapter, error)
	UpdateChapter(ctx context.Context, id int, req *models.UpdateChapterRequest) error
	DeleteChapter(ctx context.Context, id int) error
	ListChapterProgressForProgram(ctx context.Context, programID int) ([]*models.ChapterProgress, error)
	UpsertChapterProgress(ctx context.Context, req *models.UpsertChapterProgressRequest) error
	ListChaptersWithProgress(ctx context.Context, programID, userID int) ([]*models.ChapterWithProgress, error)
	GetLastChapterProgress(ctx context.Context, programID, userID int) (*models.ChapterWithProgress, error)
	ListProgressForProgram(ctx context.Context, programID int) ([]*models.ProgressReportRow, error)
	ListProgressForUser(ctx context.Context, userID int) ([]*models.ChapterProgress, error)
}

type HelpRepository interface {
	CreateHelpRequest(ctx context.Context, req *models.CreateHelpRequest) error
	ListGuardianHelpRequests(ctx context.Context, guardianID int) ([]*models.HelpRequest, error)
	ListAllHelpRequests(ctx context.Context) ([]*models.HelpRequest, error)
	UpdateHelpRequestStatus(ctx context.Context, id int, status, notes string) error
	GetHelpSummary(ctx context.Context) (*models.HelpSummary, error)
}

// ChatRepository is the durable side of the messaging feature. The
// realtime relay consumes the InsertMessage/GetChatParticipants subset.
type ChatRepository interface {
	GetOrCreateChat(ctx context.Context, professionalID, participantID int) (int, error)
	ListUserChats(ctx context.Context, userID int) ([]*models.Chat, error)
	GetChatHistory(ctx context.Context, chatID int) ([]*models.Message, error)
	InsertMessage(ctx context.Context, chatID, senderID int, text, status string) (int, error)
	GetChatParticipants(ctx context.Context, chatID int) (professionalID, participantID int, err error)
	UpdateMessageStatus(ctx context.Context, messageID int, status string) error
	ListChatUsers(ctx context.Context, excludeUserID int) ([]*models.ChatUser, error)
}

type ReportRepository interface {
	GetSystemSummary(ctx context.Context) (*models.SystemSummary, error)
	GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
	GetProfessionalReport(ctx context.Context) ([]*models.ProfessionalReport, error)
	GetGuardianReport(ctx context.Context) ([]*models.GuardianReport, error)
	ListGuardianParticipants(ctx context.Context) ([]*models.RehabParticipant, error)
	HelpRequestsByDate(ctx context.Context, startDate, endDate string) ([]*models.DateCount, error)
	AdmissionsByDate(ctx context.Context, startDate, endDate string) ([]*models.DateCount, error)
	ChapterProgressByDate(ctx context.Context, startDate, endDate string) ([]*models.ProgressReportRow, error)
	StatusDistribution(ctx context.Context) ([]*models.LabelCount, error)
	GenderDistribution(ctx context.Context) ([]*models.LabelCount, error)
	ConditionAnalysis(ctx context.Context) ([]*models.LabelCount, error)
	AgeDemographics(ctx context.Context) ([]*models.LabelCount, error)
	MonthlyAdmissions(ctx context.Context) ([]*models.DateCount, error)
	ProfessionalWorkload(ctx context.Context) ([]*models.ProfessionalWorkload, error)
	GuardianEngagement(ctx context.Context) ([]*models.GuardianEngagement, error)
	DateRangeStats(ctx context.Context, startDate, endDate string) (*models.DateRangeStats, error)
}

type Database interface {
	UserRepository
	ParticipantRepository
	ProgramRepository
	ChapterRepository
	HelpRepository
	ChatRepository
	ReportRepository
	Close() error
}
