package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ayuniiieee02/Resume/internal/shared/auth"
	"github.com/Ayuniiieee02/Resume/internal/shared/server/respond"
)

const (
	userIDKey   = "userId"
	identityKey = "identity"
)

// Roles recognised by the marketplace.
const (
	RoleUser   = "user"
	RoleParent = "parent"
)

// Identity is the per-request caller context handed to handlers.
type Identity struct {
	UserID   string
	Email    string
	FullName string
	Role     string
	IsGuest  bool
}

// Auth validates JWTs or guest headers and stores the caller Identity in context.
// Guest identities are only accepted in dev-like environments and carry the role
// given in X-Guest-Role (defaults to "user").
func Auth(env string) gin.HandlerFunc {
	guestAllowed := isDevLike(env)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		path := c.Request.URL.Path
		if isPublicPath(path) {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))

		if authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
			if token == "" {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}

			claims, err := auth.VerifyJWT(token)
			if err != nil {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}

			setIdentity(c, Identity{
				UserID:   claims.Sub,
				Email:    claims.Email,
				FullName: claims.Name,
				Role:     normalizeRole(claims.Role),
			})
			c.Next()
			return
		}

		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" || !guestAllowed {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}

		setIdentity(c, Identity{
			UserID:  "guest:" + guestID,
			Role:    normalizeRole(c.GetHeader("X-Guest-Role")),
			IsGuest: true,
		})
		c.Next()
	}
}

// RequireRole rejects callers whose identity does not carry the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := IdentityFromContext(c)
		if id.UserID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}
		if id.Role != role {
			respond.Error(c, http.StatusForbidden, "forbidden", "Access denied. This page is for "+role+"s only.", nil)
			return
		}
		c.Next()
	}
}

// RequireAccount rejects guest identities.
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFromContext(c).IsGuest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Please log in first.", nil)
			return
		}
		c.Next()
	}
}

// IdentityFromContext fetches the Identity set by the auth middleware.
func IdentityFromContext(c *gin.Context) Identity {
	if c == nil {
		return Identity{}
	}
	val, _ := c.Get(identityKey)
	if id, ok := val.(Identity); ok {
		return id
	}
	return Identity{}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

func setIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
	c.Set(userIDKey, id.UserID)
	c.Set("isGuest", id.IsGuest)
	c.Set("role", id.Role)
}

func normalizeRole(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case RoleParent:
		return RoleParent
	default:
		return RoleUser
	}
}

func isPublicPath(path string) bool {
	switch path {
	case "/api/v1/health", "/api/v1/metrics":
		return true
	}
	return false
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
