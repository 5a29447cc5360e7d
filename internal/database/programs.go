package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rehab-app/internal/models"

	"github.com/jackc/pgx/v5"
)

// Program Repository Implementation
//
// The participants column is a comma-separated list of user IDs, matching
// how assignments are edited as a whole list from the admin screens.

const programColumns = `
	pr.id, pr.name, pr.description, pr.created_by, COALESCE(pr.assigned_to, 0),
	COALESCE(pr.status, ''), COALESCE(pr.participants, ''), pr.progress,
	COALESCE(pr.remarks, ''), pr.created_at, pr.updated_at,
	COALESCE(u1.name, ''), COALESCE(u2.name, '')`

const programJoins = `
	FROM programs pr
	LEFT JOIN users u1 ON pr.created_by = u1.id
	LEFT JOIN users u2 ON pr.assigned_to = u2.id`

func scanProgram(row pgx.Row) (*models.Program, error) {
	p := &models.Program{}
	var participants string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CreatedBy, &p.AssignedTo,
		&p.Status, &participants, &p.Progress,
		&p.Remarks, &p.CreatedAt, &p.UpdatedAt,
		&p.CreatedByName, &p.AssignedToName,
	)
	if err != nil {
		return nil, err
	}
	p.Participants = splitParticipants(participants)
	return p, nil
}

func splitParticipants(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

func joinParticipants(participants []string) string {
	return strings.Join(participants, ",")
}

func (db *PostgresDB) CreateProgram(ctx context.Context, req *models.CreateProgramRequest) (int, error) {
	query := `
		INSERT INTO programs
			(name, description, created_by, assigned_to, status, participants, progress, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'Active', $5, $6, $7, NOW(), NOW())
		RETURNING id`

	var id int
	err := db.pool.QueryRow(ctx, query,
		req.Name, req.Description, req.CreatedBy, req.AssignedTo,
		joinParticipants(req.Participants), req.Progress, req.Remarks,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create program: %w", err)
	}
	return id, nil
}

func (db *PostgresDB) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	return db.queryPrograms(ctx, `SELECT `+programColumns+programJoins+` ORDER BY pr.created_at DESC`)
}

func (db *PostgresDB) GetProgramByID(ctx context.Context, id int) (*models.Program, error) {
	query := `SELECT ` + programColumns + programJoins + ` WHERE pr.id = $1`
	p, err := scanProgram(db.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (db *PostgresDB) UpdateProgram(ctx context.Context, id int, req *models.UpdateProgramRequest) error {
	query := `
		UPDATE programs
		SET name = $1, description = $2, assigned_to = $3, status = $4,
		    participants = $5, progress = $6, remarks = $7, updated_at = NOW()
		WHERE id = $8`

	tag, err := db.pool.Exec(ctx, query,
		req.Name, req.Description, req.AssignedTo, req.Status,
		joinParticipants(req.Participants), req.Progress, req.Remarks, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) UpdateProgramProgress(ctx context.Context, id, progress int, remarks string) error {
	query := `UPDATE programs SET progress = $1, remarks = $2, updated_at = NOW() WHERE id = $3`
	tag, err := db.pool.Exec(ctx, query, progress, remarks, id)
	if err != nil {
		return fmt.Errorf("failed to update program progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) SetProgramParticipants(ctx context.Context, id int, participants []string) error {
	query := `UPDATE programs SET participants = $1, updated_at = NOW() WHERE id = $2`
	tag, err := db.pool.Exec(ctx, query, joinParticipants(participants), id)
	if err != nil {
		return fmt.Errorf("failed to update program participants: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) DeleteProgram(ctx context.Context, id int) error {
	// Chapters and their progress rows go with the program.
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM chapter_progress WHERE program_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM chapters WHERE program_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (db *PostgresDB) ListProgramsByProfessional(ctx context.Context, userID int) ([]*models.Program, error) {
	query := `SELECT ` + programColumns + programJoins + ` WHERE pr.assigned_to = $1 ORDER BY pr.created_at DESC`
	return db.queryPrograms(ctx, query, userID)
}

func (db *PostgresDB) ListProgramsByParticipant(ctx context.Context, userID int) ([]*models.Program, error) {
	query := `
		SELECT ` + programColumns + programJoins + `
		WHERE $1 = ANY(string_to_array(COALESCE(pr.participants, ''), ','))
		ORDER BY pr.created_at DESC`
	return db.queryPrograms(ctx, query, fmt.Sprint(userID))
}

func (db *PostgresDB) queryPrograms(ctx context.Context, query string, args ...interface{}) ([]*models.Program, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}

	return programs, rows.Err()
}
