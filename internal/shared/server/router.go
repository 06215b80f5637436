package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/shared/config"
	"github.com/Ayuniiieee02/Resume/internal/shared/metrics"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/middleware"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/respond"
)

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries everything NewRouter wires.
type RouterDeps struct {
	Config    config.Config
	Limiter   *middleware.RateLimiter
	Handlers  []RouteRegistrar
	Readiness func() error
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if !cfg.IsDevLike() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(rateLimitConfig(cfg, deps.Limiter)),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Readiness != nil {
			if err := deps.Readiness(); err != nil {
				respond.Error(c, http.StatusServiceUnavailable, "unavailable", "dependency check failed", nil)
				return
			}
		}
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "env": cfg.Env})
	})
	api.GET("/metrics", metrics.Handler())

	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
}

func rateLimitConfig(cfg config.Config, limiter *middleware.RateLimiter) middleware.RateLimitConfig {
	rate := cfg.ResumeCheckRate
	if rate <= 0 {
		rate = 0.2
	}
	burst := cfg.ResumeCheckBurst
	if burst <= 0 {
		burst = 5
	}
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor:     middleware.ResumeCheckGroupFor,
		Limiter:      limiter,
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":                   {Rate: 10, Burst: 30},
			middleware.ResumeCheckGroup: {Rate: rate, Burst: burst},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
