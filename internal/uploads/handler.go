package uploads

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/extract"
	"resume-tailor/internal/resumes"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
	"resume-tailor/internal/shared/telemetry"
	"resume-tailor/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MiB

// Handler processes document uploads: materialize, extract, best-effort
// persist. The Resumes service is optional; without it raw uploads are never
// stored.
type Handler struct {
	Resumes *resumes.Service
	TmpDir  string
}

// NewHandler constructs a Handler writing temp files under tmpDir.
func NewHandler(svc *resumes.Service, tmpDir string) *Handler {
	return &Handler{Resumes: svc, TmpDir: tmpDir}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/process-file", h.processFile)
}

func (h *Handler) processFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusInternalServerError, "Failed to process file")
			return
		}
		respond.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	tmpPath, err := h.saveTemp(fileHeader)
	if err != nil {
		telemetry.Error("upload.materialize_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"filename":   fileHeader.Filename,
			"err":        err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "Failed to process file")
		return
	}
	// The temp file lives strictly within this request, on every exit path.
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			telemetry.Warn("upload.tmp_cleanup_failed", map[string]any{
				"path": tmpPath,
				"err":  rmErr.Error(),
			})
		}
	}()

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to process file")
		return
	}

	result := extract.Extract(data, util.FileExtension(fileHeader.Filename))
	metrics.IncUploads()
	if result.Degraded() {
		metrics.IncExtractionDegraded()
		c.Set("extractReason", string(result.Reason))
		telemetry.Warn("upload.extract_degraded", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"filename":   fileHeader.Filename,
			"reason":     string(result.Reason),
		})
	}

	h.persistRawUpload(c, result.Text, fileHeader.Filename)

	respond.OK(c, gin.H{
		"success":  true,
		"text":     result.Text,
		"filename": fileHeader.Filename,
		"size":     fileHeader.Size,
	})
}

func (h *Handler) saveTemp(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		name = "file"
	}

	dst, err := os.CreateTemp(h.TmpDir, "upload-*-"+name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}

// persistRawUpload stores the extraction for an identified caller. Failures
// here, identity included, never fail the upload request.
func (h *Handler) persistRawUpload(c *gin.Context, text, filename string) {
	if h.Resumes == nil {
		return
	}
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		telemetry.Warn("upload.not_persisted", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"reason":     "no resolved identity",
		})
		return
	}
	if err := h.Resumes.SaveRawUpload(c.Request.Context(), userID, text, filename); err != nil {
		telemetry.Warn("upload.persist_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"user_id":    userID,
			"err":        err.Error(),
		})
	}
}
