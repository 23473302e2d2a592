package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	googleauth "github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/auth"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/llm"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/llm/gemini"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/resumes"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/config"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/server"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/storage/db"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/storage/object"
	localstore "github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/storage/object/local"
	s3store "github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/shared/storage/object/s3"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/uploads"
	"github.com/RobinsonKhwairakpam/ai-resume-analyzer/internal/users"
)

// App holds shared dependencies built once per process.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Store         object.ObjectStore
	UsersRepo     users.Repo
	ResumesRepo   resumes.Repo
	UsersService  *users.Service
	ResumeService *resumes.Service
	ResumeHandler *resumes.Handler
	UploadHandler *uploads.Handler
	GoogleAuth    *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var userRepo users.Repo
	var resumeRepo resumes.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userSvc := users.NewService(userRepo)
	resumeSvc := &resumes.Service{
		Repo:  resumeRepo,
		Users: userSvc,
		LLM:   llmClient,
		Downloader: &resumes.HTTPDownloader{
			Client: &http.Client{Timeout: 30 * time.Second},
		},
	}

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Store:         store,
		UsersRepo:     userRepo,
		ResumesRepo:   resumeRepo,
		UsersService:  userSvc,
		ResumeService: resumeSvc,
		ResumeHandler: resumes.NewHandler(resumeSvc),
		UploadHandler: uploads.NewHandler(store),
		GoogleAuth: googleauth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
		),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ResumeHandler: app.ResumeHandler,
		UploadHandler: app.UploadHandler,
		GoogleAuth:    app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

// buildLLM constructs the single model client shared by all requests.
func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, cfg.GeminiTimeout)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
