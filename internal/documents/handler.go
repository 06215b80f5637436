package documents

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id/download", h.download)
}

// ReadUpload reads the multipart "file" field, bounded by limit bytes.
func ReadUpload(c *gin.Context, limit int64) (string, []byte, error) {
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+(1<<20))
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, ErrTooLarge
		}
		return "", nil, ErrInvalidInput
	}
	if fileHeader.Size > limit {
		return "", nil, ErrTooLarge
	}
	data, err := readAll(fileHeader, limit)
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, data, nil
}

func readAll(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, ErrInvalidInput
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, ErrInvalidInput
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}

// WriteError maps document errors to HTTP responses.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Validation(c, "file is required", nil)
	case errors.Is(err, ErrNotPDF):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", ErrNotPDF.Error(), nil)
	case errors.Is(err, ErrTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", ErrTooLarge.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process document", nil)
	}
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	fileName, data, err := ReadUpload(c, h.Svc.Limit())
	if err != nil {
		WriteError(c, err)
		return
	}

	doc, err := h.Svc.Upload(c.Request.Context(), userID, fileName, data)
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.Created(c, ToResponse(doc))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, offset := Paging(c)

	docs, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.OK(c, ToResponses(docs))
}

func (h *Handler) download(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	doc, err := h.Svc.GetOwned(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		WriteError(c, err)
		return
	}
	Stream(c, h.Svc, doc)
}

// Stream writes the stored file as a PDF attachment.
func Stream(c *gin.Context, svc *Service, doc Document) {
	body, err := svc.Open(c.Request.Context(), doc)
	if err != nil {
		WriteError(c, err)
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", respond.Disposition(doc.FileName))
	c.DataFromReader(http.StatusOK, doc.SizeBytes, "application/pdf", body, nil)
}

// Paging reads limit/offset query params: limit defaults to 20 and is capped at 50.
func Paging(c *gin.Context) (int, int) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
