package database

import (
	"context"
	"fmt"

	"rehab-app/internal/models"
)

// Help Repository Implementation

func (db *PostgresDB) CreateHelpRequest(ctx context.Context, req *models.CreateHelpRequest) error {
	query := `
		INSERT INTO help_requests (guardian_id, participant_id, request, status, created_at)
		VALUES ($1, $2, $3, 'Pending', NOW())`

	_, err := db.pool.Exec(ctx, query, req.GuardianID, req.ParticipantID, req.Request)
	if err != nil {
		return fmt.Errorf("failed to create help request: %w", err)
	}
	return nil
}

func (db *PostgresDB) ListGuardianHelpRequests(ctx context.Context, guardianID int) ([]*models.HelpRequest, error) {
	query := `
		SELECT hr.id, hr.request, hr.status, COALESCE(hr.notes, ''), hr.created_at, p.name
		FROM help_requests hr
		JOIN rehab_participants p ON hr.participant_id = p.id
		WHERE hr.guardian_id = $1
		ORDER BY hr.created_at DESC`

	rows, err := db.pool.Query(ctx, query, guardianID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.HelpRequest
	for rows.Next() {
		hr := &models.HelpRequest{}
		if err := rows.Scan(&hr.ID, &hr.Request, &hr.Status, &hr.Notes,
			&hr.CreatedAt, &hr.ParticipantName); err != nil {
			return nil, err
		}
		requests = append(requests, hr)
	}

	return requests, rows.Err()
}

func (db *PostgresDB) ListAllHelpRequests(ctx context.Context) ([]*models.HelpRequest, error) {
	query := `
		SELECT hr.id, hr.participant_id, hr.guardian_id, hr.request, hr.status,
		       COALESCE(hr.notes, ''), hr.created_at,
		       g.name, g.email,
		       p.name, p.age, p.condition,
		       COALESCE(prof.name, '')
		FROM help_requests hr
		JOIN users g ON hr.guardian_id = g.id
		JOIN rehab_participants p ON hr.participant_id = p.id
		LEFT JOIN users prof ON p.professional_id = prof.id
		ORDER BY hr.created_at DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.HelpRequest
	for rows.Next() {
		hr := &models.HelpRequest{}
		if err := rows.Scan(&hr.ID, &hr.ParticipantID, &hr.GuardianID, &hr.Request, &hr.Status,
			&hr.Notes, &hr.CreatedAt,
			&hr.GuardianName, &hr.GuardianEmail,
			&hr.ParticipantName, &hr.ParticipantAge, &hr.Condition,
			&hr.ProfessionalName); err != nil {
			return nil, err
		}
		requests = append(requests, hr)
	}

	return requests, rows.Err()
}

func (db *PostgresDB) UpdateHelpRequestStatus(ctx context.Context, id int, status, notes string) error {
	query := `UPDATE help_requests SET status = $1, notes = $2 WHERE id = $3`
	tag, err := db.pool.Exec(ctx, query, status, notes, id)
	if err != nil {
		return fmt.Errorf("failed to update help request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) GetHelpSummary(ctx context.Context) (*models.HelpSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'In Progress'),
			COUNT(*) FILTER (WHERE status = 'Resolved')
		FROM help_requests`

	summary := &models.HelpSummary{}
	err := db.pool.QueryRow(ctx, query).Scan(
		&summary.TotalRequests, &summary.PendingRequests,
		&summary.InProgressRequests, &summary.ResolvedRequests,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
