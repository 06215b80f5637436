package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ayuniiieee02/Resume/internal/jobs"
	"github.com/Ayuniiieee02/Resume/internal/resumecheck"
	"github.com/Ayuniiieee02/Resume/internal/shared/auth"
	"github.com/Ayuniiieee02/Resume/internal/shared/config"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
)

func devConfig(t *testing.T) config.Config {
	return config.Config{
		Env:              "dev",
		ObjectStoreType:  "local",
		LocalStoreDir:    t.TempDir(),
		MaxUploadMB:      2,
		ResumeCheckRate:  1,
		ResumeCheckBurst: 5,
	}
}

func TestBuildDevUsesMemoryRepos(t *testing.T) {
	app, err := Build(devConfig(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer app.Close()

	if app.DB != nil {
		t.Fatalf("expected no database in dev without DATABASE_URL")
	}
	if app.DocumentsService.Limit() != 2<<20 {
		t.Fatalf("expected upload limit from config, got %d", app.DocumentsService.Limit())
	}

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected health 200, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/search?type=job_title&q=math", nil)
	req.Header.Set("X-Guest-Id", "g1")
	resp = httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected search 200, got %d", resp.Code)
	}
}

func TestBuildProductionRequiresDatabase(t *testing.T) {
	cfg := devConfig(t)
	cfg.Env = "production"
	cfg.JWTSecret = "prod-secret"
	t.Cleanup(func() { auth.Configure("", 0) })
	if _, err := Build(cfg); err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}

func TestBuildProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := devConfig(t)
	cfg.Env = "production"
	if _, err := Build(cfg); !errors.Is(err, config.ErrJWTSecretRequired) {
		t.Fatalf("expected ErrJWTSecretRequired, got %v", err)
	}
}

func TestBuildConfiguresTokenSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Cleanup(func() { auth.Configure("", 0) })
	forged, err := auth.SignJWT(auth.Claims{Sub: "attacker", Role: "parent"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	cfg := devConfig(t)
	cfg.JWTSecret = "configured-secret"
	app, err := Build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer app.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/search?type=job_title&q=math", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected token signed with another secret to get 401, got %d", resp.Code)
	}
}

func TestBuildS3RequiresBucket(t *testing.T) {
	cfg := devConfig(t)
	cfg.ObjectStoreType = "s3"
	if _, err := Build(cfg); err == nil {
		t.Fatalf("expected error without S3 bucket")
	}
}

func TestCatalogAdapterFeedsMatcher(t *testing.T) {
	svc := jobs.NewService(jobs.NewMemoryRepo())
	ctx := context.Background()
	owner := middleware.Identity{UserID: "p1", Role: middleware.RoleParent}
	for _, p := range []jobs.Posting{
		{Title: "Math", Description: "d", Subject: "Math, Science"},
		{Title: "Piano", Description: "d", Subject: "Music", RequiredSkills: "Piano"},
	} {
		if _, err := svc.Create(ctx, owner, p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	matcher := resumecheck.Matcher{Catalog: catalogAdapter{jobs: svc}}
	got, err := matcher.Match(ctx, resumecheck.NewKeywordSet("math"))
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Math" {
		t.Fatalf("unexpected matches %+v", got)
	}
}
