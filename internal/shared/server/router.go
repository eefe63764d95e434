package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/identity"
	"resume-tailor/internal/resumes"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/internal/tailor"
	"resume-tailor/internal/uploads"
)

// RouterDeps carries the handlers and identity resolver the router wires up.
type RouterDeps struct {
	Config         config.Config
	UploadsHandler *uploads.Handler
	TailorHandler  *tailor.Handler
	ResumesHandler *resumes.Handler
	Resolver       identity.Resolver
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	// Wrong-verb requests on known paths answer 405 with the contract body.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		respond.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.UploadsHandler != nil {
		// Identity on uploads is best-effort: an anonymous upload still works.
		uploadGroup := api.Group("", middleware.Identity(deps.Resolver))
		deps.UploadsHandler.RegisterRoutes(uploadGroup)
	}
	if deps.TailorHandler != nil {
		deps.TailorHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		authed := api.Group("", middleware.RequireIdentity(deps.Resolver))
		deps.ResumesHandler.RegisterRoutes(authed)
	}

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
