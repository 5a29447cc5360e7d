package services

import (
	"context"
	"fmt"
	"strconv"

	"rehab-app/internal/database"
	"rehab-app/internal/models"
)

type ProgramService struct {
	db database.Database
}

func NewProgramService(db database.Database) *ProgramService {
	return &ProgramService{db: db}
}

func (s *ProgramService) CreateProgram(ctx context.Context, req *models.CreateProgramRequest) (int, error) {
	if req.Name == "" {
		return 0, fmt.Errorf("program name is required")
	}
	if req.Progress < 0 || req.Progress > 100 {
		return 0, fmt.Errorf("progress must be between 0 and 100")
	}

	return s.db.CreateProgram(ctx, req)
}

func (s *ProgramService) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	return s.db.ListPrograms(ctx)
}

func (s *ProgramService) GetProgram(ctx context.Context, id int) (*models.Program, error) {
	return s.db.GetProgramByID(ctx, id)
}

func (s *ProgramService) UpdateProgram(ctx context.Context, id int, req *models.UpdateProgramRequest) error {
	if req.Name == "" {
		return fmt.Errorf("program name is required")
	}

	return s.db.UpdateProgram(ctx, id, req)
}

func (s *ProgramService) UpdateProgress(ctx context.Context, id int, req *models.ProgramProgressRequest) error {
	if req.Progress < 0 || req.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}

	return s.db.UpdateProgramProgress(ctx, id, req.Progress, req.Remarks)
}

// AddParticipant appends a user to the program's participant list. The
// user must exist and must not already be on the list.
func (s *ProgramService) AddParticipant(ctx context.Context, req *models.ProgramMemberRequest) error {
	program, err := s.db.GetProgramByID(ctx, req.ProgramID)
	if err != nil {
		return fmt.Errorf("program not found")
	}

	if _, err := s.db.GetUserByID(ctx, req.UserID); err != nil {
		return fmt.Errorf("user not found")
	}

	userID := strconv.Itoa(req.UserID)
	for _, p := range program.Participants {
		if p == userID {
			return fmt.Errorf("user is already a participant of this program")
		}
	}

	return s.db.SetProgramParticipants(ctx, req.ProgramID, append(program.Participants, userID))
}

func (s *ProgramService) RemoveParticipant(ctx context.Context, req *models.ProgramMemberRequest) error {
	program, err := s.db.GetProgramByID(ctx, req.ProgramID)
	if err != nil {
		return fmt.Errorf("program not found")
	}

	userID := strconv.Itoa(req.UserID)
	remaining := make([]string, 0, len(program.Participants))
	found := false
	for _, p := range program.Participants {
		if p == userID {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return fmt.Errorf("user is not a participant of this program")
	}

	return s.db.SetProgramParticipants(ctx, req.ProgramID, remaining)
}

// ListProgramMembers resolves the program's participant list to id/name
// pairs, skipping ids that no longer resolve to a user.
func (s *ProgramService) ListProgramMembers(ctx context.Context, programID int) ([]models.UserRef, error) {
	program, err := s.db.GetProgramByID(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("program not found")
	}

	members := make([]models.UserRef, 0, len(program.Participants))
	for _, p := range program.Participants {
		id, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		user, err := s.db.GetUserByID(ctx, id)
		if err != nil {
			continue
		}
		members = append(members, models.UserRef{ID: user.ID, Name: user.Name})
	}

	return members, nil
}

func (s *ProgramService) DeleteProgram(ctx context.Context, id int) error {
	return s.db.DeleteProgram(ctx, id)
}

func (s *ProgramService) ListProgramsByProfessional(ctx context.Context, userID int) ([]*models.Program, error) {
	return s.db.ListProgramsByProfessional(ctx, userID)
}

func (s *ProgramService) ListProgramsByParticipant(ctx context.Context, userID int) ([]*models.Program, error) {
	return s.db.ListProgramsByParticipant(ctx, userID)
}
