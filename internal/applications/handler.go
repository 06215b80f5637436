package applications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/documents"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/respond"
)

// Handler wires application routes to the service.
type Handler struct {
	Svc  *Service
	Docs *documents.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, docs *documents.Service) *Handler {
	return &Handler{Svc: svc, Docs: docs}
}

// RegisterRoutes attaches application routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	tutor := middleware.RequireRole(middleware.RoleUser)
	parent := middleware.RequireRole(middleware.RoleParent)

	rg.POST("/jobs/:id/applications", tutor, h.apply)
	rg.GET("/applications/mine", tutor, h.mine)
	rg.GET("/applications/received", parent, h.received)
	rg.PATCH("/applications/:id/status", parent, h.setStatus)
	rg.GET("/applications/:id/resume", parent, h.resume)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) apply(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Set("jobId", c.Param("id"))

	fileName, data, err := documents.ReadUpload(c, h.Docs.Limit())
	if err != nil {
		documents.WriteError(c, err)
		return
	}

	var slots []Slot
	if raw := c.PostForm("availability"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &slots); err != nil {
			respond.Validation(c, "availability must be a JSON array of {day, time}", nil)
			return
		}
	}
	confirmed, _ := strconv.ParseBool(c.PostForm("confirmed"))

	app, err := h.Svc.Apply(c.Request.Context(), userID, ApplyInput{
		JobID:         c.Param("id"),
		FileName:      fileName,
		Resume:        data,
		TeachingStyle: c.PostForm("teachingStyle"),
		Availability:  slots,
		Confirmed:     confirmed,
	})
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.Created(c, app)
}

func (h *Handler) mine(c *gin.Context) {
	list, err := h.Svc.ListApplied(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) received(c *gin.Context) {
	list, err := h.Svc.Received(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) setStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "invalid JSON body", nil)
		return
	}
	app, err := h.Svc.SetStatus(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), req.Status)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.Set("jobId", app.JobID)
	respond.OK(c, app)
}

func (h *Handler) resume(c *gin.Context) {
	doc, err := h.Svc.Resume(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		WriteError(c, err)
		return
	}
	documents.Stream(c, h.Docs, doc)
}

// WriteError maps application errors to HTTP responses.
func WriteError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Validation(c, verr.Error(), verr.Fields)
	case errors.Is(err, ErrInvalidInput):
		respond.Validation(c, err.Error(), nil)
	case errors.Is(err, ErrAlreadyApplied):
		respond.Error(c, http.StatusConflict, "already_applied", "You have already applied for this job.", nil)
	case errors.Is(err, ErrJobClosed):
		respond.Error(c, http.StatusConflict, "job_closed", ErrJobClosed.Error(), nil)
	case errors.Is(err, ErrInvalidTransition):
		respond.Error(c, http.StatusConflict, "invalid_status_transition", ErrInvalidTransition.Error(), nil)
	case errors.Is(err, ErrJobNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", ErrJobNotFound.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", ErrNotFound.Error(), nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "You can only review applications to your own job listings.", nil)
	default:
		documents.WriteError(c, err)
	}
}
