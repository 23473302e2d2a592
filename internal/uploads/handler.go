package uploads

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/server/middleware"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/server/respond"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/storage/object"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/telemetry"
)

// 4MB, matching the limit the resume uploader has always enforced.
const maxUploadBytes = 4 << 20

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
}

// Handler accepts resume file uploads and hands back a fetchable URL for the
// analysis endpoint.
type Handler struct {
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(store object.ObjectStore) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.upload)
	rg.GET("/files/*key", h.serve)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds 4MB limit", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		respond.Error(c, http.StatusBadRequest, "unsupported_file_type", "Unsupported file type. Please upload a PDF or DOCX resume.", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	key, size, mimeType, err := h.Store.Save(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		telemetry.Error("uploads.save.failed", map[string]any{
			"err":        err.Error(),
			"file_name":  fileHeader.Filename,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store file", nil)
		return
	}

	respond.OK(c, gin.H{
		"success":   true,
		"fileUrl":   h.Store.URL(key),
		"fileName":  fileHeader.Filename,
		"fileType":  strings.TrimPrefix(ext, "."),
		"mimeType":  mimeType,
		"sizeBytes": size,
	})
}

// serve streams a stored object back. The route is public: the analysis
// pipeline re-downloads uploads through it.
func (h *Handler) serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file key is required", nil)
		return
	}

	body, err := h.Store.Open(c.Request.Context(), key)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "file not found", nil)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", body, nil)
}
