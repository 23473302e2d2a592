package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
	id, user_id, file_name, file_url, file_type, extracted_text,
	job_title, job_description, ai_response, ats_score, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	var score any
	if resume.ATSScore != nil {
		score = *resume.ATSScore
	}
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.FileURL,
		resume.FileType,
		resume.ExtractedText,
		resume.JobTitle,
		resume.JobDescription,
		[]byte(resume.AIResponse),
		score,
		resume.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, file_url, file_type, extracted_text,
       job_title, job_description, ai_response, ats_score, created_at
FROM resumes
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, resumeID)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, file_name, file_url, file_type, extracted_text,
       job_title, job_description, ai_response, ats_score, created_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Resume, 0)
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var aiResponse []byte
	var score sql.NullFloat64
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.FileURL,
		&resume.FileType,
		&resume.ExtractedText,
		&resume.JobTitle,
		&resume.JobDescription,
		&aiResponse,
		&score,
		&resume.CreatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	resume.AIResponse = json.RawMessage(aiResponse)
	if score.Valid {
		resume.ATSScore = &score.Float64
	}
	return resume, nil
}
