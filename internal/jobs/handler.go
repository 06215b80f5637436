package jobs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/respond"
)

// Handler wires job listing routes to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes. Search is open to any caller; the rest
// is for parents.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/search", h.search)

	parent := rg.Group("/jobs", middleware.RequireRole(middleware.RoleParent))
	parent.POST("", h.create)
	parent.GET("/mine", h.mine)
	parent.PATCH("/:id/active", h.setActive)
	parent.DELETE("/:id", h.delete)
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

func (h *Handler) create(c *gin.Context) {
	var req Posting
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "invalid JSON body", nil)
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.IdentityFromContext(c), req)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.Set("jobId", p.ID)
	respond.Created(c, p)
}

func (h *Handler) mine(c *gin.Context) {
	list, err := h.Svc.ListMine(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) setActive(c *gin.Context) {
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		respond.Validation(c, "isActive is required", nil)
		return
	}
	c.Set("jobId", c.Param("id"))
	p, err := h.Svc.SetActive(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), *req.IsActive)
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.OK(c, p)
}

func (h *Handler) delete(c *gin.Context) {
	c.Set("jobId", c.Param("id"))
	if err := h.Svc.Delete(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id")); err != nil {
		WriteError(c, err)
		return
	}
	respond.NoContent(c)
}

func (h *Handler) search(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	list, err := h.Svc.Search(c.Request.Context(), c.Query("type"), c.Query("q"), limit)
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.OK(c, list)
}

// WriteError maps job errors to HTTP responses.
func WriteError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Validation(c, verr.Error(), verr.Fields)
	case errors.Is(err, ErrInvalidInput):
		respond.Validation(c, err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job listing not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "You can only manage your own job listings.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "job listing request failed", nil)
	}
}
