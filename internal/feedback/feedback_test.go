package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/shared/auth"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
)

var member = middleware.Identity{UserID: "u1", Email: "a@example.com", FullName: "Ali", Role: middleware.RoleUser}

func TestSubmitValidatesRating(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Submit(context.Background(), member, rating, "hi"); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
	e, err := svc.Submit(context.Background(), member, 5, "  great  ")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if e.Comment != "great" || e.FullName != "Ali" || e.UserEmail != "a@example.com" {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestSubmitRejectsGuest(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	_, err := svc.Submit(context.Background(), middleware.Identity{UserID: "guest:1", IsGuest: true}, 4, "")
	if !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	for i := 1; i <= 3; i++ {
		if _, err := svc.Submit(context.Background(), member, i, ""); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	list, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Rating != 3 || list[1].Rating != 2 {
		t.Fatalf("unexpected order %+v", list)
	}
}

func TestHandlerSubmitAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	router := gin.New()
	router.Use(middleware.Auth("dev"))
	NewHandler(NewService(NewMemoryRepo())).RegisterRoutes(router.Group("/api/v1"))

	token, err := auth.SignJWT(auth.Claims{Sub: "u1", Email: "a@example.com", Name: "Ali"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", bytes.NewReader([]byte(`{"rating":4,"comment":"Useful"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/feedback", bytes.NewReader([]byte(`{"rating":4}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "g1")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/feedback", bytes.NewReader([]byte(`{"rating":9}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating 9, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/feedback", nil)
	req.Header.Set("X-Guest-Id", "g1")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var list []Entry
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Comment != "Useful" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("FROM feedback").
		WithArgs(200).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "user_email", "rating", "comment", "created_at"}).
			AddRow("f1", "u1", "Ali", nil, 5, nil, now))

	list, err := (&PGRepo{DB: db}).List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Rating != 5 || list[0].UserEmail != "" {
		t.Fatalf("unexpected list %+v", list)
	}
}
