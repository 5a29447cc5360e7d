package services

import (
	"context"
	"fmt"

	"rehab-app/internal/database"
	"rehab-app/internal/models"
)

type HelpService struct {
	db database.Database
}

func NewHelpService(db database.Database) *HelpService {
	return &HelpService{db: db}
}

func (s *HelpService) CreateHelpRequest(ctx context.Context, req *models.CreateHelpRequest) error {
	if req.GuardianID == 0 || req.ParticipantID == 0 || req.Request == "" {
		return fmt.Errorf("guardian_id, participant_id and request are required")
	}

	return s.db.CreateHelpRequest(ctx, req)
}

func (s *HelpService) ListGuardianHelpRequests(ctx context.Context, guardianID int) ([]*models.HelpRequest, error) {
	return s.db.ListGuardianHelpRequests(ctx, guardianID)
}

func (s *HelpService) ListAllHelpRequests(ctx context.Context) ([]*models.HelpRequest, error) {
	return s.db.ListAllHelpRequests(ctx)
}

func (s *HelpService) UpdateStatus(ctx context.Context, id int, req *models.UpdateHelpRequest) error {
	switch req.Status {
	case models.HelpPending, models.HelpInProgress, models.HelpResolved:
	default:
		return fmt.Errorf("invalid status: %s", req.Status)
	}

	return s.db.UpdateHelpRequestStatus(ctx, id, req.Status, req.Notes)
}

func (s *HelpService) GetHelpSummary(ctx context.Context) (*models.HelpSummary, error) {
	return s.db.GetHelpSummary(ctx)
}
