package database

import (
	"context"

	"rehab-app/internal/models"
)

// Report Repository Implementation
//
// Aggregation happens in SQL; Go only reshapes rows that need grouping
// (the guardian report nests participants under their guardian).

func (db *PostgresDB) GetSystemSummary(ctx context.Context) (*models.SystemSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM help_requests),
			(SELECT COUNT(*) FROM help_requests WHERE status = 'Pending'),
			(SELECT COUNT(*) FROM help_requests WHERE status = 'In Progress'),
			(SELECT COUNT(*) FROM help_requests WHERE status = 'Resolved'),
			(SELECT COUNT(*) FROM rehab_participants),
			(SELECT COUNT(*) FROM users WHERE role = 'guardian'),
			(SELECT COUNT(*) FROM users WHERE role = 'professional'),
			(SELECT COUNT(*) FROM programs WHERE status = 'Active'),
			(SELECT COUNT(*) FROM chapters)`

	s := &models.SystemSummary{}
	err := db.pool.QueryRow(ctx, query).Scan(
		&s.TotalRequests, &s.PendingRequests, &s.InProgressRequests, &s.ResolvedRequests,
		&s.TotalParticipants, &s.TotalGuardians, &s.TotalProfessionals,
		&s.ActivePrograms, &s.TotalChapters,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (db *PostgresDB) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	summary, err := db.GetSystemSummary(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT created_at::date::text, COUNT(*)
		FROM help_requests
		WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'
		GROUP BY created_at::date
		ORDER BY created_at::date ASC`

	rows, err := db.queryDateCounts(ctx, query)
	if err != nil {
		return nil, err
	}

	recent := make([]models.DateCount, 0, len(rows))
	for _, dc := range rows {
		recent = append(recent, *dc)
	}

	return &models.DashboardSummary{Summary: *summary, RecentRequests: recent}, nil
}

func (db *PostgresDB) GetProfessionalReport(ctx context.Context) ([]*models.ProfessionalReport, error) {
	query := `
		SELECT u.id, u.name, u.email, COALESCE(u.profession, ''),
		       COUNT(DISTINCT rp.id),
		       COUNT(DISTINCT rp.id) FILTER (WHERE rp.status = 'Active'),
		       COUNT(DISTINCT rp.id) FILTER (WHERE rp.status = 'Discharged'),
		       COUNT(DISTINCT rp.id) FILTER (WHERE rp.status = 'Transferred'),
		       COUNT(DISTINCT pr.id),
		       COUNT(DISTINCT c.id)
		FROM users u
		LEFT JOIN rehab_participants rp ON u.id = rp.professional_id
		LEFT JOIN programs pr ON u.id = pr.assigned_to
		LEFT JOIN chapters c ON pr.id = c.program_id
		WHERE u.role = 'professional'
		GROUP BY u.id, u.name, u.email, u.profession
		ORDER BY u.name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []*models.ProfessionalReport
	for rows.Next() {
		r := &models.ProfessionalReport{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Profession,
			&r.TotalParticipants, &r.ActiveParticipants,
			&r.DischargedParticipants, &r.TransferredParticipants,
			&r.TotalPrograms, &r.TotalChaptersSupervised); err != nil {
			return nil, err
		}
		report = append(report, r)
	}

	return report, rows.Err()
}

func (db *PostgresDB) GetGuardianReport(ctx context.Context) ([]*models.GuardianReport, error) {
	query := `
		SELECT u.id, u.name, u.email,
		       (SELECT COUNT(*) FROM help_requests hr WHERE hr.guardian_id = u.id),
		       (SELECT COUNT(*) FROM rehab_participants x WHERE x.guardian_id = u.id),
		       COALESCE(rp.id, 0), COALESCE(rp.name, ''), COALESCE(rp.gender, ''),
		       COALESCE(rp.age, 0), COALESCE(rp.condition, ''), COALESCE(rp.status, '')
		FROM users u
		LEFT JOIN rehab_participants rp ON u.id = rp.guardian_id
		WHERE u.role = 'guardian'
		ORDER BY u.name, rp.name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Group participant rows under their guardian.
	byID := make(map[int]*models.GuardianReport)
	var ordered []*models.GuardianReport
	for rows.Next() {
		var (
			g     models.GuardianReport
			child models.GuardianChild
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.Email,
			&g.TotalHelpRequests, &g.TotalGuardianParticipants,
			&child.ID, &child.Name, &child.Gender,
			&child.Age, &child.Condition, &child.Status); err != nil {
			return nil, err
		}

		entry, ok := byID[g.ID]
		if !ok {
			g.Participants = []models.GuardianChild{}
			entry = &g
			byID[g.ID] = entry
			ordered = append(ordered, entry)
		}
		if child.ID != 0 {
			entry.Participants = append(entry.Participants, child)
		}
	}

	return ordered, rows.Err()
}

func (db *PostgresDB) ListGuardianParticipants(ctx context.Context) ([]*models.RehabParticipant, error) {
	query := `
		SELECT rp.id, rp.name, rp.gender, rp.age, rp.condition, rp.guardian_id,
		       rp.professional_id, rp.admission_date, rp.status, COALESCE(rp.notes, ''),
		       COALESCE(p.name, '')
		FROM rehab_participants rp
		LEFT JOIN users p ON rp.professional_id = p.id
		ORDER BY rp.admission_date DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*models.RehabParticipant
	for rows.Next() {
		rp := &models.RehabParticipant{}
		if err := rows.Scan(&rp.ID, &rp.Name, &rp.Gender, &rp.Age, &rp.Condition,
			&rp.GuardianID, &rp.ProfessionalID, &rp.AdmissionDate, &rp.Status,
			&rp.Notes, &rp.ProfessionalName); err != nil {
			return nil, err
		}
		participants = append(participants, rp)
	}

	return participants, rows.Err()
}

func (db *PostgresDB) HelpRequestsByDate(ctx context.Context, startDate, endDate string) ([]*models.DateCount, error) {
	query := `
		SELECT created_at::date::text, COUNT(*)
		FROM help_requests`
	var args []interface{}
	if startDate != "" && endDate != "" {
		query += ` WHERE created_at BETWEEN $1 AND $2::date + INTERVAL '1 day'`
		args = append(args, startDate, endDate)
	}
	query += ` GROUP BY created_at::date ORDER BY created_at::date ASC`

	return db.queryDateCounts(ctx, query, args...)
}

func (db *PostgresDB) AdmissionsByDate(ctx context.Context, startDate, endDate string) ([]*models.DateCount, error) {
	query := `
		SELECT admission_date::date::text, COUNT(*)
		FROM rehab_participants`
	var args []interface{}
	if startDate != "" && endDate != "" {
		query += ` WHERE admission_date BETWEEN $1 AND $2`
		args = append(args, startDate, endDate)
	}
	query += ` GROUP BY admission_date::date ORDER BY admission_date::date ASC`

	return db.queryDateCounts(ctx, query, args...)
}

func (db *PostgresDB) ChapterProgressByDate(ctx context.Context, startDate, endDate string) ([]*models.ProgressReportRow, error) {
	query := `
		SELECT cp.id, c.name, u.name, cp.status, COALESCE(cp.remarks, ''), cp.updated_at
		FROM chapter_progress cp
		JOIN chapters c ON cp.chapter_id = c.id
		JOIN users u ON cp.user_id = u.id`
	var args []interface{}
	if startDate != "" && endDate != "" {
		query += ` WHERE cp.updated_at BETWEEN $1 AND $2::date + INTERVAL '1 day'`
		args = append(args, startDate, endDate)
	}
	query += ` ORDER BY cp.updated_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
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

func (db *PostgresDB) StatusDistribution(ctx context.Context) ([]*models.LabelCount, error) {
	return db.queryLabelCounts(ctx, `
		SELECT status, COUNT(*) FROM rehab_participants GROUP BY status ORDER BY COUNT(*) DESC`)
}

func (db *PostgresDB) GenderDistribution(ctx context.Context) ([]*models.LabelCount, error) {
	return db.queryLabelCounts(ctx, `
		SELECT gender, COUNT(*) FROM rehab_participants GROUP BY gender ORDER BY COUNT(*) DESC`)
}

func (db *PostgresDB) ConditionAnalysis(ctx context.Context) ([]*models.LabelCount, error) {
	return db.queryLabelCounts(ctx, `
		SELECT condition, COUNT(*) FROM rehab_participants GROUP BY condition ORDER BY COUNT(*) DESC`)
}

func (db *PostgresDB) AgeDemographics(ctx context.Context) ([]*models.LabelCount, error) {
	return db.queryLabelCounts(ctx, `
		SELECT CASE
			WHEN age < 13 THEN 'child'
			WHEN age < 20 THEN 'teen'
			WHEN age < 40 THEN 'adult'
			WHEN age < 65 THEN 'middle_aged'
			ELSE 'senior'
		END AS age_group, COUNT(*)
		FROM rehab_participants
		GROUP BY age_group
		ORDER BY COUNT(*) DESC`)
}

func (db *PostgresDB) MonthlyAdmissions(ctx context.Context) ([]*models.DateCount, error) {
	return db.queryDateCounts(ctx, `
		SELECT to_char(admission_date, 'YYYY-MM'), COUNT(*)
		FROM rehab_participants
		GROUP BY to_char(admission_date, 'YYYY-MM')
		ORDER BY to_char(admission_date, 'YYYY-MM') ASC`)
}

func (db *PostgresDB) ProfessionalWorkload(ctx context.Context) ([]*models.ProfessionalWorkload, error) {
	query := `
		SELECT u.id, u.name, COALESCE(u.profession, ''),
		       COUNT(rp.id),
		       COUNT(rp.id) FILTER (WHERE rp.status = 'Active')
		FROM users u
		LEFT JOIN rehab_participants rp ON u.id = rp.professional_id
		WHERE u.role = 'professional'
		GROUP BY u.id, u.name, u.profession
		ORDER BY COUNT(rp.id) DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workload []*models.ProfessionalWorkload
	for rows.Next() {
		w := &models.ProfessionalWorkload{}
		if err := rows.Scan(&w.ID, &w.Name, &w.Profession,
			&w.TotalParticipants, &w.ActiveParticipants); err != nil {
			return nil, err
		}
		workload = append(workload, w)
	}

	return workload, rows.Err()
}

func (db *PostgresDB) GuardianEngagement(ctx context.Context) ([]*models.GuardianEngagement, error) {
	query := `
		SELECT u.id, u.name,
		       (SELECT COUNT(*) FROM rehab_participants rp WHERE rp.guardian_id = u.id),
		       (SELECT COUNT(*) FROM help_requests hr WHERE hr.guardian_id = u.id)
		FROM users u
		WHERE u.role = 'guardian'
		ORDER BY 4 DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var engagement []*models.GuardianEngagement
	for rows.Next() {
		g := &models.GuardianEngagement{}
		if err := rows.Scan(&g.ID, &g.Name, &g.TotalParticipants, &g.TotalHelpRequests); err != nil {
			return nil, err
		}
		engagement = append(engagement, g)
	}

	return engagement, rows.Err()
}

func (db *PostgresDB) DateRangeStats(ctx context.Context, startDate, endDate string) (*models.DateRangeStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM rehab_participants WHERE admission_date BETWEEN $1 AND $2),
			(SELECT COUNT(*) FROM help_requests WHERE created_at BETWEEN $1 AND $2::date + INTERVAL '1 day'),
			(SELECT COUNT(*) FROM chapter_progress WHERE updated_at BETWEEN $1 AND $2::date + INTERVAL '1 day')`

	stats := &models.DateRangeStats{}
	err := db.pool.QueryRow(ctx, query, startDate, endDate).Scan(
		&stats.Admissions, &stats.HelpRequests, &stats.ProgressEvents,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (db *PostgresDB) queryDateCounts(ctx context.Context, query string, args ...interface{}) ([]*models.DateCount, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*models.DateCount
	for rows.Next() {
		dc := &models.DateCount{}
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}

	return counts, rows.Err()
}

func (db *PostgresDB) queryLabelCounts(ctx context.Context, query string) ([]*models.LabelCount, error) {
	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*models.LabelCount
	for rows.Next() {
		lc := &models.LabelCount{}
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, lc)
	}

	return counts, rows.Err()
}
