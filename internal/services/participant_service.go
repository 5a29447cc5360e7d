package services

import (
	"context"
	"fmt"

	"rehab-app/internal/database"
	"rehab-app/internal/models"
)

type ParticipantService struct {
	db database.Database
}

func NewParticipantService(db database.Database) *ParticipantService {
	return &ParticipantService{db: db}
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, req *models.CreateParticipantRequest) (int, error) {
	if req.Name == "" || req.Gender == "" || req.Condition == "" {
		return 0, fmt.Errorf("name, gender and condition are required")
	}
	if req.Age <= 0 {
		return 0, fmt.Errorf("age must be positive")
	}

	return s.db.CreateParticipant(ctx, req)
}

func (s *ParticipantService) ListParticipants(ctx context.Context) ([]*models.RehabParticipant, error) {
	return s.db.ListParticipants(ctx)
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id int) (*models.RehabParticipant, error) {
	return s.db.GetParticipantByID(ctx, id)
}

func (s *ParticipantService) AssignGuardianAndProfessional(ctx context.Context, req *models.AssignRequest) error {
	if req.ParticipantID == 0 || req.GuardianID == 0 || req.ProfessionalID == 0 {
		return fmt.Errorf("participantId, guardianId and professionalId are required")
	}

	guardian, err := s.db.GetUserByID(ctx, req.GuardianID)
	if err != nil {
		return fmt.Errorf("guardian not found")
	}
	if guardian.Role != models.RoleGuardian {
		return fmt.Errorf("user %d is not a guardian", req.GuardianID)
	}

	professional, err := s.db.GetUserByID(ctx, req.ProfessionalID)
	if err != nil {
		return fmt.Errorf("professional not found")
	}
	if professional.Role != models.RoleProfessional {
		return fmt.Errorf("user %d is not a professional", req.ProfessionalID)
	}

	return s.db.AssignGuardianAndProfessional(ctx, req.ParticipantID, req.GuardianID, req.ProfessionalID)
}

func (s *ParticipantService) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) error {
	switch req.Status {
	case models.ParticipantActive, models.ParticipantDischarged, models.ParticipantTransferred:
	default:
		return fmt.Errorf("invalid status: %s", req.Status)
	}

	return s.db.UpdateParticipantStatus(ctx, req.ParticipantID, req.Status, req.Notes)
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, id int, req *models.UpdateParticipantRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}

	return s.db.UpdateParticipant(ctx, id, req)
}

func (s *ParticipantService) DeleteParticipant(ctx context.Context, id int) error {
	return s.db.DeleteParticipant(ctx, id)
}

func (s *ParticipantService) ListAssignedParticipants(ctx context.Context, professionalID int) ([]*models.RehabParticipant, error) {
	return s.db.ListAssignedParticipants(ctx, professionalID)
}

func (s *ParticipantService) ListParticipantsByGuardian(ctx context.Context, guardianID int) ([]*models.RehabParticipant, error) {
	return s.db.ListParticipantsByGuardian(ctx, guardianID)
}
