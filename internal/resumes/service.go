package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/extract"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/llm"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/telemetry"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/users"
)

// Service runs the analysis pipeline and serves stored resumes.
type Service struct {
	Repo       Repo
	Users      *users.Service
	LLM        llm.Client
	Downloader FileDownloader
}

// AnalyzeRequest carries the authenticated identity plus the request body.
type AnalyzeRequest struct {
	AuthSubject    string
	Email          string
	FileURL        string
	FileName       string
	FileType       string
	JobTitle       string
	JobDescription string
}

// AnalyzeResponse is returned on a successful analysis.
type AnalyzeResponse struct {
	ResumeID       string          `json:"resumeId"`
	JobTitle       string          `json:"jobTitle"`
	JobDescription string          `json:"jobDescription"`
	ResumePreview  string          `json:"resumePreview"`
	Analysis       json.RawMessage `json:"analysis"`
}

// Analyze runs the full pipeline: resolve user, validate, download, extract,
// truncate, prompt, call the model, parse, persist. Strictly sequential; any
// failure aborts before the resume row is written.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (AnalyzeResponse, error) {
	if strings.TrimSpace(req.AuthSubject) == "" {
		return AnalyzeResponse{}, errors.New("auth subject is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return AnalyzeResponse{}, ErrMissingUserEmail
	}

	user, err := s.Users.EnsureUser(ctx, req.AuthSubject, req.Email)
	if err != nil {
		return AnalyzeResponse{}, fmt.Errorf("ensure user: %w", err)
	}

	if strings.TrimSpace(req.FileURL) == "" ||
		strings.TrimSpace(req.FileName) == "" ||
		strings.TrimSpace(req.JobTitle) == "" ||
		strings.TrimSpace(req.JobDescription) == "" {
		return AnalyzeResponse{}, ErrMissingFields
	}

	data, err := s.Downloader.Download(ctx, req.FileURL)
	if err != nil {
		return AnalyzeResponse{}, fmt.Errorf("%w: %v", ErrFileDownloadFailed, err)
	}

	ext := fileExtension(req.FileName, req.FileType)
	resumeText, err := extract.Text(data, ext)
	if err != nil {
		return AnalyzeResponse{}, err
	}

	truncated := llm.TruncateResumeText(resumeText)
	prompt := llm.BuildAnalysisPrompt(truncated, req.JobTitle, req.JobDescription)

	rawReply, err := s.LLM.Analyze(ctx, prompt)
	if err != nil {
		return AnalyzeResponse{}, fmt.Errorf("model call: %w", err)
	}

	analysis, err := llm.ParseResponse(rawReply)
	if err != nil {
		return AnalyzeResponse{}, err
	}

	atsScore := DeriveATSScore(analysis)

	resume := Resume{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		FileName:       req.FileName,
		FileURL:        req.FileURL,
		FileType:       ext,
		ExtractedText:  resumeText,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		AIResponse:     analysis,
		ATSScore:       atsScore,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return AnalyzeResponse{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	fields := map[string]any{
		"resume_id": resume.ID,
		"user_id":   user.ID,
		"file_type": ext,
		"text_len":  len(resumeText),
	}
	if atsScore != nil {
		fields["ats_score"] = *atsScore
	}
	telemetry.Info("analysis.complete", fields)

	return AnalyzeResponse{
		ResumeID:       resume.ID,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		ResumePreview:  llm.Preview(truncated),
		Analysis:       analysis,
	}, nil
}

// List returns a user's resumes, newest first. The user record must already
// exist.
func (s *Service) List(ctx context.Context, authSubject string) ([]Resume, error) {
	user, err := s.Users.GetBySubject(ctx, authSubject)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByUser(ctx, user.ID)
}

// Get returns a stored resume by id. Ownership is not checked beyond the
// caller being authenticated.
func (s *Service) Get(ctx context.Context, resumeID string) (Resume, error) {
	if strings.TrimSpace(resumeID) == "" {
		return Resume{}, errors.New("resume id is required")
	}
	return s.Repo.GetByID(ctx, resumeID)
}

// fileExtension prefers the file name's extension, falling back to the
// declared file type.
func fileExtension(fileName, fileType string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		ext = strings.ToLower(strings.TrimSpace(fileType))
	}
	return ext
}
