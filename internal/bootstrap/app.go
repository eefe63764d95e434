package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/identity"
	"resume-tailor/internal/resumes"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/server"
	"resume-tailor/internal/shared/storage/mongodb"
	"resume-tailor/internal/shared/telemetry"
	"resume-tailor/internal/tailor"
	"resume-tailor/internal/tailor/groq"
	"resume-tailor/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Mongo          *mongodb.Handle
	Resolver       identity.Resolver
	TailorClient   tailor.Client
	ResumesRepo    resumes.Repo
	ResumesService *resumes.Service
	UploadsHandler *uploads.Handler
	TailorHandler  *tailor.Handler
	ResumesHandler *resumes.Handler
}

// Build wires configuration into a ready-to-run application.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	mongo, repo, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	resolver := buildResolver(cfg)
	tailorClient := buildTailorClient(cfg)

	resumesSvc := &resumes.Service{Repo: repo}
	app := &App{
		Config:         cfg,
		Mongo:          mongo,
		Resolver:       resolver,
		TailorClient:   tailorClient,
		ResumesRepo:    repo,
		ResumesService: resumesSvc,
		UploadsHandler: uploads.NewHandler(resumesSvc, cfg.TmpDir),
		TailorHandler:  tailor.NewHandler(tailorClient),
		ResumesHandler: resumes.NewHandler(resumesSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		UploadsHandler: app.UploadsHandler,
		TailorHandler:  app.TailorHandler,
		ResumesHandler: app.ResumesHandler,
		Resolver:       resolver,
	})

	return app, nil
}

// buildStore selects the document store. Missing coordinates are fatal
// outside dev-like environments; dev falls back to in-memory repositories.
func buildStore(cfg config.Config) (*mongodb.Handle, resumes.Repo, error) {
	if strings.TrimSpace(cfg.MongoURI) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.store", map[string]any{"msg": "MONGODB_URI empty; using in-memory repositories"})
			return nil, resumes.NewMemoryRepo(), nil
		}
		return nil, nil, fmt.Errorf("MONGODB_URI is required")
	}

	handle, err := mongodb.NewHandle(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, nil, err
	}
	return handle, &resumes.MongoRepo{Handle: handle}, nil
}

func buildResolver(cfg config.Config) identity.Resolver {
	if strings.TrimSpace(cfg.AuthURL) == "" {
		telemetry.Warn("bootstrap.identity", map[string]any{"msg": "AUTH_URL empty; bearer tokens will not resolve"})
		return nil
	}
	resolver, err := identity.NewHTTPResolver(cfg.AuthURL, cfg.AuthAPIKey)
	if err != nil {
		telemetry.Warn("bootstrap.identity", map[string]any{"err": err.Error()})
		return nil
	}
	return resolver
}

func buildTailorClient(cfg config.Config) tailor.Client {
	if strings.TrimSpace(cfg.GroqAPIKey) == "" {
		telemetry.Warn("bootstrap.tailor", map[string]any{"msg": "GROQ_API_KEY empty; tailoring requests will fail"})
		return tailor.PlaceholderClient{}
	}
	client, err := groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel)
	if err != nil {
		telemetry.Warn("bootstrap.tailor", map[string]any{"err": err.Error()})
		return tailor.PlaceholderClient{}
	}
	return client
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "":
		return true
	default:
		return false
	}
}
