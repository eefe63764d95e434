package resumes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service. Routes registered here assume
// the group enforces identity resolution.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume", h.save)
	rg.GET("/resume", h.list)
}

type saveRequest struct {
	Resume         string `json:"resume"`
	Tailored       string `json:"tailored"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Missing fields")
		return
	}
	if strings.TrimSpace(req.Resume) == "" || strings.TrimSpace(req.Tailored) == "" || strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "Missing fields")
		return
	}

	if _, err := h.Svc.Save(c.Request.Context(), userID, req.Resume, req.Tailored, req.JobDescription); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "Missing fields")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	metrics.IncResumesSaved()
	respond.OK(c, gin.H{"success": true})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	records, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list resumes")
		return
	}

	resp := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toResponse(rec))
	}
	respond.OK(c, gin.H{"resumes": resp})
}
