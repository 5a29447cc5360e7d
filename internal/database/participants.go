package database

import (
	"context"
	"errors"
	"fmt"

	"rehab-app/internal/models"

	"github.com/jackc/pgx/v5"
)

// Participant Repository Implementation

const participantColumns = `
	rp.id, rp.name, rp.gender, rp.age, rp.condition, rp.guardian_id, rp.professional_id,
	rp.admission_date, rp.status, COALESCE(rp.notes, ''),
	g.name, g.email, g.username,
	p.name, p.email, COALESCE(p.profession, '')`

func scanParticipant(row pgx.Row) (*models.RehabParticipant, error) {
	rp := &models.RehabParticipant{}
	err := row.Scan(
		&rp.ID, &rp.Name, &rp.Gender, &rp.Age, &rp.Condition, &rp.GuardianID, &rp.ProfessionalID,
		&rp.AdmissionDate, &rp.Status, &rp.Notes,
		&rp.GuardianName, &rp.GuardianEmail, &rp.GuardianUsername,
		&rp.ProfessionalName, &rp.ProfessionalEmail, &rp.Profession,
	)
	if err != nil {
		return nil, err
	}
	return rp, nil
}

func (db *PostgresDB) CreateParticipant(ctx context.Context, req *models.CreateParticipantRequest) (int, error) {
	query := `
		INSERT INTO rehab_participants
			(name, gender, age, condition, guardian_id, professional_id, admission_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'Active')
		RETURNING id`

	var id int
	err := db.pool.QueryRow(ctx, query,
		req.Name, req.Gender, req.Age, req.Condition,
		req.GuardianID, req.ProfessionalID, req.AdmissionDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create participant: %w", err)
	}
	return id, nil
}

func (db *PostgresDB) ListParticipants(ctx context.Context) ([]*models.RehabParticipant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM rehab_participants rp
		JOIN users g ON rp.guardian_id = g.id
		JOIN users p ON rp.professional_id = p.id
		ORDER BY rp.admission_date DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*models.RehabParticipant
	for rows.Next() {
		rp, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, rp)
	}

	return participants, rows.Err()
}

func (db *PostgresDB) GetParticipantByID(ctx context.Context, id int) (*models.RehabParticipant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM rehab_participants rp
		JOIN users g ON rp.guardian_id = g.id
		JOIN users p ON rp.professional_id = p.id
		WHERE rp.id = $1`

	rp, err := scanParticipant(db.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rp, nil
}

func (db *PostgresDB) AssignGuardianAndProfessional(ctx context.Context, participantID, guardianID, professionalID int) error {
	query := `UPDATE rehab_participants SET guardian_id = $1, professional_id = $2 WHERE id = $3`
	tag, err := db.pool.Exec(ctx, query, guardianID, professionalID, participantID)
	if err != nil {
		return fmt.Errorf("failed to assign participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) UpdateParticipantStatus(ctx context.Context, participantID int, status, notes string) error {
	query := `UPDATE rehab_participants SET status = $1, notes = $2 WHERE id = $3`
	tag, err := db.pool.Exec(ctx, query, status, notes, participantID)
	if err != nil {
		return fmt.Errorf("failed to update participant status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) UpdateParticipant(ctx context.Context, id int, req *models.UpdateParticipantRequest) error {
	query := `
		UPDATE rehab_participants
		SET name = $1, gender = $2, age = $3, condition = $4, guardian_id = $5,
		    professional_id = $6, admission_date = $7, status = $8, notes = $9
		WHERE id = $10`

	tag, err := db.pool.Exec(ctx, query,
		req.Name, req.Gender, req.Age, req.Condition, req.GuardianID,
		req.ProfessionalID, req.AdmissionDate, req.Status, req.Notes, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) DeleteParticipant(ctx context.Context, id int) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM rehab_participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) ListAssignedParticipants(ctx context.Context, professionalID int) ([]*models.RehabParticipant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM rehab_participants rp
		JOIN users g ON rp.guardian_id = g.id
		JOIN users p ON rp.professional_id = p.id
		WHERE rp.professional_id = $1
		ORDER BY rp.admission_date DESC`

	return db.queryParticipants(ctx, query, professionalID)
}

func (db *PostgresDB) ListParticipantsByGuardian(ctx context.Context, guardianID int) ([]*models.RehabParticipant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM rehab_participants rp
		JOIN users g ON rp.guardian_id = g.id
		JOIN users p ON rp.professional_id = p.id
		WHERE rp.guardian_id = $1
		ORDER BY rp.admission_date DESC`

	return db.queryParticipants(ctx, query, guardianID)
}

func (db *PostgresDB) queryParticipants(ctx context.Context, query string, args ...interface{}) ([]*models.RehabParticipant, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*models.RehabParticipant
	for rows.Next() {
		rp, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, rp)
	}

	return participants, rows.Err()
}
