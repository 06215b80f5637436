package jobs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Auth("dev"))
	NewHandler(newTestService()).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doRequest(router *gin.Engine, method, path, guest, role string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", guest)
	if role != "" {
		req.Header.Set("X-Guest-Role", role)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHandlerCreateAndManage(t *testing.T) {
	router := newTestRouter()
	payload, _ := json.Marshal(map[string]any{
		"jobTitle":       "Science tutor",
		"jobDescription": "Form 3 science",
		"jobSubject":     "Science",
		"city":           "Ipoh",
		"state":          "Perak",
		"hourlyRate":     30,
	})

	resp := doRequest(router, http.MethodPost, "/api/v1/jobs", "p1", "parent", payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created Posting
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ParentID != "guest:p1" {
		t.Fatalf("unexpected parent id %q", created.ParentID)
	}

	resp = doRequest(router, http.MethodGet, "/api/v1/jobs/mine", "p1", "parent", nil)
	if resp.Code != http.StatusOK || !bytes.Contains(resp.Body.Bytes(), []byte(created.ID)) {
		t.Fatalf("expected own listing, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doRequest(router, http.MethodPatch, "/api/v1/jobs/"+created.ID+"/active", "p2", "parent", []byte(`{"isActive":false}`))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for other parent, got %d", resp.Code)
	}

	resp = doRequest(router, http.MethodPatch, "/api/v1/jobs/"+created.ID+"/active", "p1", "parent", []byte(`{}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without isActive, got %d", resp.Code)
	}

	resp = doRequest(router, http.MethodPatch, "/api/v1/jobs/"+created.ID+"/active", "p1", "parent", []byte(`{"isActive":false}`))
	if resp.Code != http.StatusOK || !bytes.Contains(resp.Body.Bytes(), []byte(`"isActive":false`)) {
		t.Fatalf("expected deactivated listing, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doRequest(router, http.MethodDelete, "/api/v1/jobs/"+created.ID, "p1", "parent", nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestHandlerCreateValidationDetails(t *testing.T) {
	router := newTestRouter()
	resp := doRequest(router, http.MethodPost, "/api/v1/jobs", "p1", "parent", []byte(`{"jobTitle":"","hourlyRate":-5}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "validation_error" || body.Error.Details["hourlyRate"] == "" || body.Error.Details["jobTitle"] == "" {
		t.Fatalf("unexpected error body: %s", resp.Body.String())
	}
}

func TestHandlerTutorCannotCreate(t *testing.T) {
	router := newTestRouter()
	resp := doRequest(router, http.MethodPost, "/api/v1/jobs", "t1", "user", []byte(`{}`))
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestHandlerSearch(t *testing.T) {
	router := newTestRouter()
	payload := []byte(`{"jobTitle":"Coding tutor","jobDescription":"Scratch basics","city":"Kuching","state":"Sarawak","jobSubject":"Coding"}`)
	if resp := doRequest(router, http.MethodPost, "/api/v1/jobs", "p1", "parent", payload); resp.Code != http.StatusCreated {
		t.Fatalf("seed: %d", resp.Code)
	}

	resp := doRequest(router, http.MethodGet, "/api/v1/jobs/search?type=location&q=sarawak", "t1", "user", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var list []Posting
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].City != "Kuching" {
		t.Fatalf("unexpected results %+v", list)
	}

	resp = doRequest(router, http.MethodGet, "/api/v1/jobs/search?type=price&q=10", "t1", "user", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %d", resp.Code)
	}
}
