package resumecheck

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/documents"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/respond"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler exposes the resume-check pipeline over HTTP.
type Handler struct {
	Svc      *Service
	MaxBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxBytes int64) *Handler {
	return &Handler{Svc: svc, MaxBytes: maxBytes}
}

// RegisterRoutes attaches resume-check routes. All routes require the tutor role.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/resume-checks", middleware.RequireRole(middleware.RoleUser))
	g.POST("", h.check)
	g.GET("", h.history)
	g.GET("/export", h.export)
}

func (h *Handler) check(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	fileName, data, err := documents.ReadUpload(c, h.MaxBytes)
	if err != nil {
		documents.WriteError(c, err)
		return
	}

	res, err := h.Svc.Check(c.Request.Context(), userID, fileName, data)
	if err != nil {
		switch {
		case errors.Is(err, ErrDocumentUnreadable):
			respond.Error(c, http.StatusUnprocessableEntity, "document_unreadable",
				"We could not read text from this PDF. Please upload a text-based (not scanned) PDF.", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Validation(c, "file is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "resume check failed", nil)
		}
		return
	}

	c.Set("checkId", res.ID)
	status := http.StatusCreated
	if !res.Persisted {
		status = http.StatusOK
	}
	respond.JSON(c, status, res)
}

func (h *Handler) history(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, offset := documents.Paging(c)

	recs, err := h.Svc.History(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resume checks", nil)
		return
	}
	out := make([]RecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecordResponse(rec))
	}
	respond.OK(c, out)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	xlsx, err := h.Svc.ExportXLSX(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export resume checks", nil)
		return
	}
	name := "resume-checks-" + time.Now().UTC().Format("20060102") + ".xlsx"
	respond.Attachment(c, name, xlsxContentType, xlsx)
}
