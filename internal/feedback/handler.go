package feedback

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/respond"
)

// Handler wires feedback routes.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches feedback routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", middleware.RequireAccount(), h.submit)
	rg.GET("/feedback", h.list)
}

type submitRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "invalid JSON body", nil)
		return
	}
	e, err := h.Svc.Submit(c.Request.Context(), middleware.IdentityFromContext(c), req.Rating, req.Comment)
	switch {
	case err == nil:
		respond.Created(c, e)
	case errors.Is(err, ErrInvalidRating):
		respond.Validation(c, "Please select a rating.", map[string]string{"rating": err.Error()})
	case errors.Is(err, ErrLoginRequired):
		respond.Error(c, http.StatusUnauthorized, "login_required", "Please log in first.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit feedback", nil)
	}
}

func (h *Handler) list(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	entries, err := h.Svc.List(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list feedback", nil)
		return
	}
	respond.OK(c, entries)
}
