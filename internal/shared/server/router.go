package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/auth"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/resumes"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/config"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/server/middleware"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/server/respond"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/uploads"
)

// RouterDeps carries the handlers wired into the router.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	UploadHandler *uploads.Handler
	GoogleAuth    *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	registerMeRoutes(api)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UploadHandler != nil {
		deps.UploadHandler.RegisterRoutes(api)
	}
	deps.ResumeHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
