package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/extract"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/llm"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/server/middleware"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/server/respond"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/users"
)

// Handler wires HTTP handlers to the resumes service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/analyze", h.analyze)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
}

type analyzeBody struct {
	FileURL        string `json:"fileUrl"`
	FileName       string `json:"fileName"`
	FileType       string `json:"fileType"`
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) analyze(c *gin.Context) {
	authSubject := middleware.UserIDFromContext(c)
	if authSubject == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	var body analyzeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resp, err := h.Svc.Analyze(c.Request.Context(), AnalyzeRequest{
		AuthSubject:    authSubject,
		Email:          middleware.UserEmailFromContext(c),
		FileURL:        body.FileURL,
		FileName:       body.FileName,
		FileType:       body.FileType,
		JobTitle:       body.JobTitle,
		JobDescription: body.JobDescription,
	})
	if err != nil {
		writeAnalyzeError(c, err)
		return
	}

	c.Set("resumeId", resp.ResumeID)
	respond.OK(c, gin.H{
		"success":        true,
		"resumeId":       resp.ResumeID,
		"jobTitle":       resp.JobTitle,
		"jobDescription": resp.JobDescription,
		"resumePreview":  resp.ResumePreview,
		"analysis":       resp.Analysis,
	})
}

func writeAnalyzeError(c *gin.Context, err error) {
	var unsupported *extract.UnsupportedTypeError
	var invalidResp *llm.InvalidResponseError

	switch {
	case errors.Is(err, ErrMissingUserEmail):
		respond.Error(c, http.StatusBadRequest, "missing_user_email", "User email not found", nil)
	case errors.Is(err, ErrMissingFields):
		respond.Error(c, http.StatusBadRequest, "missing_fields", "Missing required fields", nil)
	case errors.Is(err, ErrFileDownloadFailed):
		respond.Error(c, http.StatusBadRequest, "file_download_failed", "Failed to download file from URL", nil)
	case errors.As(err, &unsupported):
		respond.Error(c, http.StatusBadRequest, "unsupported_file_type", "Unsupported file type. Please upload a PDF or DOCX resume.", nil)
	case errors.Is(err, extract.ErrEmptyExtraction):
		respond.Error(c, http.StatusBadRequest, "empty_extraction", "Could not extract text from resume", nil)
	case errors.As(err, &invalidResp):
		respond.Error(c, http.StatusInternalServerError, "invalid_model_response", "Model returned invalid JSON format", gin.H{
			"rawResponse": invalidResp.Raw,
		})
	case errors.Is(err, ErrPersistence):
		respond.Error(c, http.StatusInternalServerError, "persistence_failure", "Failed to save analysis", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to analyze resume", gin.H{
			"details": err.Error(),
		})
	}
}

func (h *Handler) list(c *gin.Context) {
	authSubject := middleware.UserIDFromContext(c)
	if authSubject == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	records, err := h.Svc.List(c.Request.Context(), authSubject)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "user_not_found", "User not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch resumes", nil)
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"resumes": records,
	})
}

func (h *Handler) get(c *gin.Context) {
	resumeID := c.Param("id")
	if resumeID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume id is required", nil)
		return
	}

	resume, err := h.Svc.Get(c.Request.Context(), resumeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to fetch resume", nil)
		return
	}

	c.Set("resumeId", resume.ID)
	respond.OK(c, gin.H{
		"success": true,
		"resume":  resume,
	})
}
