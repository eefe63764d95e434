package tailor

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/internal/shared/telemetry"
)

// Handler wires the tailoring endpoint to a Client.
type Handler struct {
	Client Client
}

// NewHandler constructs a Handler.
func NewHandler(client Client) *Handler {
	return &Handler{Client: client}
}

// RegisterRoutes attaches tailoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tailor", h.tailor)
}

type tailorRequest struct {
	Resume         string `json:"resume"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) tailor(c *gin.Context) {
	var req tailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Missing fields")
		return
	}
	if strings.TrimSpace(req.Resume) == "" || strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "Missing fields")
		return
	}

	metrics.IncTailorRequests()
	start := time.Now()
	tailored, err := h.Client.Tailor(c.Request.Context(), req.Resume, req.JobDescription)
	metrics.ObserveTailorDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncTailorFailed()
		telemetry.Error("tailor.failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"err":        err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "Failed to tailor resume with AI.")
		return
	}

	respond.OK(c, gin.H{"tailored": tailored})
}
