package applications

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
)

func newTestRouter(f fixture) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Auth("dev"))
	NewHandler(f.svc, f.docs).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func applyRequest(t *testing.T, jobID, guest, role string, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "cv.pdf")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write(samplePDF); err != nil {
		t.Fatalf("write: %v", err)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID+"/applications", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Guest-Id", guest)
	req.Header.Set("X-Guest-Role", role)
	return req
}

var applyFields = map[string]string{
	"teachingStyle": "Hands-on",
	"availability":  `[{"day":"Tuesday","time":"18:30"}]`,
	"confirmed":     "true",
}

func TestHandlerApplyAndReview(t *testing.T) {
	f := newFixture(t)
	router := newTestRouter(f)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, applyRequest(t, f.job.ID, "t1", "user", applyFields))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var app Application
	if err := json.Unmarshal(resp.Body.Bytes(), &app); err != nil {
		t.Fatalf("decode: %v", err)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, applyRequest(t, f.job.ID, "t1", "user", applyFields))
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/applications/received", nil)
	req.Header.Set("X-Guest-Id", "p1")
	req.Header.Set("X-Guest-Role", "parent")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !bytes.Contains(resp.Body.Bytes(), []byte(app.ID)) {
		t.Fatalf("expected overview with application, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/applications/"+app.ID+"/resume", nil)
	req.Header.Set("X-Guest-Id", "p1")
	req.Header.Set("X-Guest-Role", "parent")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !bytes.Equal(resp.Body.Bytes(), samplePDF) {
		t.Fatalf("expected resume bytes, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPatch, "/api/v1/applications/"+app.ID+"/status", bytes.NewReader([]byte(`{"status":"Rejected"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "p1")
	req.Header.Set("X-Guest-Role", "parent")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !bytes.Contains(resp.Body.Bytes(), []byte(`"status":"Rejected"`)) {
		t.Fatalf("expected rejected, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/applications/mine", nil)
	req.Header.Set("X-Guest-Id", "t1")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || !bytes.Contains(resp.Body.Bytes(), []byte(`"status":"Rejected"`)) {
		t.Fatalf("expected applied job with status, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestHandlerApplyBadAvailability(t *testing.T) {
	f := newFixture(t)
	router := newTestRouter(f)

	fields := map[string]string{"teachingStyle": "x", "availability": "monday", "confirmed": "true"}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, applyRequest(t, f.job.ID, "t1", "user", fields))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestHandlerParentCannotApply(t *testing.T) {
	f := newFixture(t)
	router := newTestRouter(f)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, applyRequest(t, f.job.ID, "p1", "parent", applyFields))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}
