package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var resumeColumns = []string{
	"id", "user_id", "file_name", "file_url", "file_type", "extracted_text",
	"job_title", "job_description", "ai_response", "ats_score", "created_at",
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	score := 85.0
	resume := Resume{
		ID:             "r1",
		UserID:         "u1",
		FileName:       "resume.docx",
		FileURL:        "http://files.local/resume.docx",
		FileType:       "docx",
		ExtractedText:  "Jane Doe",
		JobTitle:       "Engineer",
		JobDescription: "Write Go.",
		AIResponse:     json.RawMessage(`{"atsScore":{"score":85}}`),
		ATSScore:       &score,
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO resumes`).
		WithArgs(resume.ID, resume.UserID, resume.FileName, resume.FileURL, resume.FileType,
			resume.ExtractedText, resume.JobTitle, resume.JobDescription,
			[]byte(resume.AIResponse), score, resume.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGRepoCreateNilScore(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec(`INSERT INTO resumes`).
		WithArgs("r2", "u1", "resume.pdf", "http://files.local/resume.pdf", "pdf",
			"text", "Role", "Desc", []byte(`{}`), nil, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Create(context.Background(), Resume{
		ID: "r2", UserID: "u1", FileName: "resume.pdf",
		FileURL: "http://files.local/resume.pdf", FileType: "pdf",
		ExtractedText: "text", JobTitle: "Role", JobDescription: "Desc",
		AIResponse: json.RawMessage(`{}`), CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE id = \$1`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows(resumeColumns).AddRow(
			"r1", "u1", "resume.docx", "http://files.local/resume.docx", "docx",
			"Jane Doe", "Engineer", "Write Go.", []byte(`{"overallAssessment":"fine"}`),
			72.5, created,
		))

	repo := &PGRepo{DB: db}
	resume, err := repo.GetByID(context.Background(), "r1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if resume.ATSScore == nil || *resume.ATSScore != 72.5 {
		t.Fatalf("ats score = %v", resume.ATSScore)
	}
	if string(resume.AIResponse) != `{"overallAssessment":"fine"}` {
		t.Fatalf("ai response = %s", resume.AIResponse)
	}
	if !resume.CreatedAt.Equal(created) {
		t.Fatalf("created at = %v", resume.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`WHERE id = \$1`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(resumeColumns))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	newer := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(resumeColumns).
			AddRow("r2", "u1", "b.docx", "http://files.local/b.docx", "docx", "b", "B", "bd", []byte(`{}`), nil, newer).
			AddRow("r1", "u1", "a.pdf", "http://files.local/a.pdf", "pdf", "a", "A", "ad", []byte(`{}`), 50.0, older))

	repo := &PGRepo{DB: db}
	records, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].ID != "r2" || records[1].ID != "r1" {
		t.Fatalf("unexpected order: %s, %s", records[0].ID, records[1].ID)
	}
	if records[0].ATSScore != nil {
		t.Fatalf("expected nil score, got %v", *records[0].ATSScore)
	}
	if records[1].ATSScore == nil || *records[1].ATSScore != 50 {
		t.Fatalf("expected score 50, got %v", records[1].ATSScore)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
