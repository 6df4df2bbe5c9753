package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"nautica/internal/core/apperror"
	appctx "nautica/internal/core/context"
	"nautica/internal/domain/auth"
)

// TokenVerifier resolves a bearer token string to its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Claims, error)
}

// Auth middleware validates JWT tokens and populates user context.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, verifier, true)
		if !ok {
			return
		}
		attachUser(c, claims)
		c.Next()
	}
}

// OptionalAuth validates the token if present, but doesn't require one.
// Useful for public booking endpoints that enrich behavior when logged in.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if claims, ok := verifyBearer(c, verifier, false); ok && claims != nil {
				attachUser(c, claims)
			}
		}
		c.Next()
	}
}

// RequireRole allows only users whose role is in allowed. Admins always
// pass.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		if user.Role == auth.RoleAdmin {
			c.Next()
			return
		}

		for _, role := range allowed {
			if user.Role == role {
				c.Next()
				return
			}
		}

		_ = c.Error(
			apperror.NewForbidden("insufficient role").
				WithDetail("required_role", strings.Join(allowed, "|")),
		)
		c.Abort()
	}
}

func verifyBearer(c *gin.Context, verifier TokenVerifier, strict bool) (*auth.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if strict {
			abortUnauthorized(c, "missing authorization header")
		}
		return nil, !strict
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		if strict {
			abortUnauthorized(c, "invalid authorization header format")
		}
		return nil, !strict
	}

	claims, err := verifier.Verify(parts[1])
	if err != nil {
		if strict {
			abortUnauthorized(c, "invalid token")
		}
		return nil, !strict
	}
	return claims, true
}

func attachUser(c *gin.Context, claims *auth.Claims) {
	user := &appctx.UserContext{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	ctx := appctx.WithUser(c.Request.Context(), user)
	c.Request = c.Request.WithContext(ctx)

	// Store in gin context for easy access
	c.Set("user_id", user.UserID)
	c.Set("user_role", user.Role)
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
