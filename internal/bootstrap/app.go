package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/applications"
	"github.com/Ayuniiieee02/Resume/internal/documents"
	"github.com/Ayuniiieee02/Resume/internal/extract"
	"github.com/Ayuniiieee02/Resume/internal/feedback"
	"github.com/Ayuniiieee02/Resume/internal/jobs"
	"github.com/Ayuniiieee02/Resume/internal/resumecheck"
	"github.com/Ayuniiieee02/Resume/internal/shared/auth"
	"github.com/Ayuniiieee02/Resume/internal/shared/config"
	"github.com/Ayuniiieee02/Resume/internal/shared/server"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
	"github.com/Ayuniiieee02/Resume/internal/shared/storage/db"
	"github.com/Ayuniiieee02/Resume/internal/shared/storage/object"
	localstore "github.com/Ayuniiieee02/Resume/internal/shared/storage/object/local"
	s3store "github.com/Ayuniiieee02/Resume/internal/shared/storage/object/s3"
	"github.com/Ayuniiieee02/Resume/internal/users"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	DocumentsService    *documents.Service
	JobsService         *jobs.Service
	ResumeCheckService  *resumecheck.Service
	ApplicationsService *applications.Service
	FeedbackService     *feedback.Service
	UsersService        *users.Service
}

// Build connects storage, constructs services and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	auth.Configure(cfg.JWTSecret, cfg.JWTTTL)
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB, Store: store}
	handlers := buildServices(app)

	var readiness func() error
	if sqlDB != nil {
		readiness = func() error { return db.Ping(context.Background(), sqlDB, cfg.DBPingTimeout) }
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:    cfg,
		Limiter:   middleware.NewRateLimiter(nil),
		Handlers:  handlers,
		Readiness: readiness,
	})
	return app, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, DBOptions(cfg, db.DefaultServerOptions()))
	if err != nil {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		if cfg.IsDevLike() {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

// DBOptions layers the configured pool settings over defaults.
func DBOptions(cfg config.Config, defaults db.Options) db.Options {
	return defaults.Override(db.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		PingTimeout:     cfg.DBPingTimeout,
	})
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) []server.RouteRegistrar {
	var (
		docRepo      documents.Repo
		jobRepo      jobs.Repo
		checkRepo    resumecheck.Repo
		appRepo      applications.Repo
		feedbackRepo feedback.Repo
		userRepo     users.Repo
	)
	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		jobRepo = &jobs.PGRepo{DB: app.DB}
		checkRepo = &resumecheck.PGRepo{DB: app.DB}
		appRepo = &applications.PGRepo{DB: app.DB}
		feedbackRepo = &feedback.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
		checkRepo = resumecheck.NewMemoryRepo()
		appRepo = applications.NewMemoryRepo()
		feedbackRepo = feedback.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	maxBytes := int64(app.Config.MaxUploadMB) << 20
	docSvc := &documents.Service{
		Store:           app.Store,
		Repo:            docRepo,
		StorageProvider: app.Config.ObjectStoreType,
		MaxBytes:        maxBytes,
	}
	jobSvc := jobs.NewService(jobRepo)
	userSvc := users.NewService(userRepo)
	checkSvc := &resumecheck.Service{
		Extractor: extract.PDFExtractor{},
		Documents: docSvc,
		Matcher:   resumecheck.Matcher{Catalog: catalogAdapter{jobs: jobSvc}},
		Repo:      checkRepo,
	}
	appSvc := &applications.Service{
		Repo:      appRepo,
		Jobs:      jobSvc,
		Documents: docSvc,
		Users:     userSvc,
	}
	feedbackSvc := feedback.NewService(feedbackRepo)

	app.DocumentsService = docSvc
	app.JobsService = jobSvc
	app.ResumeCheckService = checkSvc
	app.ApplicationsService = appSvc
	app.FeedbackService = feedbackSvc
	app.UsersService = userSvc

	return []server.RouteRegistrar{
		users.NewHandler(userSvc),
		documents.NewHandler(docSvc),
		resumecheck.NewHandler(checkSvc, docSvc.Limit()),
		jobs.NewHandler(jobSvc),
		applications.NewHandler(appSvc, docSvc),
		feedback.NewHandler(feedbackSvc),
	}
}
