package database

import (
	"context"
	"errors"
	"fmt"

	"rehab-app/internal/models"

	"github.com/jackc/pgx/v5"
)

// Chapter Repository Implementation

func (db *PostgresDB) CreateChapter(ctx context.Context, req *models.CreateChapterRequest) (int, error) {
	query := `
		INSERT INTO chapters (program_id, name, description, chapter_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id`

	var id int
	err := db.pool.QueryRow(ctx, query, req.ProgramID, req.Name, req.Description, req.ChapterOrder).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create chapter: %w", err)
	}
	return id, nil
}

func (db *PostgresDB) ListChapters(ctx context.Context, programID int) ([]*models.Chapter, error) {
	query := `
		SELECT id, program_id, name, description, chapter_order, created_at, updated_at
		FROM chapters
		WHERE program_id = $1
		ORDER BY chapter_order`

	rows, err := db.pool.Query(ctx, query, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*models.Chapter
	for rows.Next() {
		c := &models.Chapter{}
		if err := rows.Scan(&c.ID, &c.ProgramID, &c.Name, &c.Description,
			&c.ChapterOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		chapters = append(chapters, c)
	}

	return chapters, rows.Err()
}

func (db *PostgresDB) UpdateChapter(ctx context.Context, id int, req *models.UpdateChapterRequest) error {
	query := `
		UPDATE chapters
		SET name = $1, description = $2, chapter_order = $3, updated_at = NOW()
		WHERE id = $4`

	tag, err := db.pool.Exec(ctx, query, req.Name, req.Description, req.ChapterOrder, id)
	if err != nil {
		return fmt.Errorf("failed to update chapter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) DeleteChapter(ctx context.Context, id int) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM chapters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chapter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *PostgresDB) ListChapterProgressForProgram(ctx context.Context, programID int) ([]*models.ChapterProgress, error) {
	query := `
		SELECT cp.id, pr.name, c.name, u.name, cp.status, COALESCE(cp.remarks, ''), cp.updated_at
		FROM chapter_progress cp
		JOIN programs pr ON cp.program_id = pr.id
		JOIN chapters c ON cp.chapter_id = c.id
		JOIN users u ON cp.user_id = u.id
		WHERE cp.program_id = $1`

	rows, err := db.pool.Query(ctx, query, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var progress []*models.ChapterProgress
	for rows.Next() {
		cp := &models.ChapterProgress{}
		if err := rows.Scan(&cp.ID, &cp.ProgramName, &cp.ChapterName, &cp.ParticipantName,
			&cp.Status, &cp.Remarks, &cp.UpdatedAt); err != nil {
			return nil, err
		}
		progress = append(progress, cp)
	}

	return progress, rows.Err()
}

// UpsertChapterProgress inserts a progress row or updates the existing one
// for the same (program, user, chapter) key.
func (db *PostgresDB) UpsertChapterProgress(ctx context.Context, req *models.UpsertChapterProgressRequest) error {
	query := `
		INSERT INTO chapter_progress (program_id, user_id, chapter_id, status, remarks, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (program_id, user_id, chapter_id)
		DO UPDATE SET status = EXCLUDED.status, remarks = EXCLUDED.remarks, updated_at = NOW()`

	_, err := db.pool.Exec(ctx, query, req.ProgramID, req.UserID, req.ChapterID, req.Status, req.Remarks)
	if err != nil {
		return fmt.Errorf("failed to upsert chapter progress: %w", err)
	}
	return nil
}

func (db *PostgresDB) ListChaptersWithProgress(ctx context.Context, programID, userID int) ([]*models.ChapterWithProgress, error) {
	query := `
		SELECT c.id, c.name, c.description, c.chapter_order,
		       COALESCE(cp.status, 'not_started'), COALESCE(cp.remarks, '')
		FROM chapters c
		LEFT JOIN chapter_progress cp
			ON c.id = cp.chapter_id AND cp.user_id = $1
		WHERE c.program_id = $2
		ORDER BY c.chapter_order`

	rows, err := db.pool.Query(ctx, query, userID, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*models.ChapterWithProgress
	for rows.Next() {
		c := &models.ChapterWithProgress{}
		if err := rows.Scan(&c.ChapterID, &c.ChapterName, &c.Description,
			&c.ChapterOrder, &c.Status, &c.Remarks); err != nil {
			return nil, err
		}
		chapters = append(chapters, c)
	}

	return chapters, rows.Err()
}

// GetLastChapterProgress returns the chapter a participant should resume
// at: in-progress first, then the most recently completed.
func (db *PostgresDB) GetLastChapterProgress(ctx context.Context, programID, userID int) (*models.ChapterWithProgress, error) {
	query := `
		SELECT c.id, c.name, c.description, c.chapter_order,
		       COALESCE(cp.status, 'not_started'), COALESCE(cp.remarks, '')
		FROM chapters c
		LEFT JOIN chapter_progress cp
			ON c.id = cp.chapter_id AND cp.user_id = $1
		WHERE c.program_id = $2
		ORDER BY
			CASE
				WHEN cp.status = 'in_progress' THEN 1
				WHEN cp.status = 'completed' THEN 2
				ELSE 3
			END,
			cp.updated_at DESC NULLS LAST,
			c.chapter_order ASC
		LIMIT 1`

	c := &models.ChapterWithProgress{}
	err := db.pool.QueryRow(ctx, query, userID, programID).Scan(
		&c.ChapterID, &c.ChapterName, &c.Description, &c.ChapterOrder, &c.Status, &c.Remarks,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (db *PostgresDB) ListProgressForProgram(ctx context.Context, programID int) ([]*models.ProgressReportRow, error) {
	query := `
		SELECT cp.id, c.name, u.name, cp.status, COALESCE(cp.remarks, ''), cp.updated_at
		FROM chapter_progress cp
		JOIN users u ON cp.user_id = u.id
		JOIN chapters c ON cp.chapter_id = c.id
		WHERE cp.program_id = $1
		ORDER BY u.name, c.chapter_order`

	rows, err := db.pool.Query(ctx, query, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []*models.ProgressReportRow
	for rows.Next() {
		r := &models.ProgressReportRow{}
		if err := rows.Scan(&r.ProgressID, &r.ChapterName, &r.ParticipantName,
			&r.Status, &r.Remarks, &r.UpdatedAt); err != nil {
			return nil, err
		}
		report = append(report, r)
	}

	return report, rows.Err()
}

func (db *PostgresDB) ListProgressForUser(ctx context.Context, userID int) ([]*models.ChapterProgress, error) {
	query := `
		SELECT cp.id, cp.program_id, cp.chapter_id, pr.name, c.name,
		       cp.status, COALESCE(cp.remarks, ''), cp.updated_at
		FROM chapter_progress cp
		JOIN programs pr ON cp.program_id = pr.id
		JOIN chapters c ON cp.chapter_id = c.id
		WHERE cp.user_id = $1
		ORDER BY cp.updated_at DESC`

	rows, err := db.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var progress []*models.ChapterProgress
	for rows.Next() {
		cp := &models.ChapterProgress{}
		if err := rows.Scan(&cp.ID, &cp.ProgramID, &cp.ChapterID, &cp.ProgramName,
			&cp.ChapterName, &cp.Status, &cp.Remarks, &cp.UpdatedAt); err != nil {
			return nil, err
		}
		progress = append(progress, cp)
	}

	return progress, rows.Err()
}
