package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/Chinmaytikole/DiscoverCart/internal/apierror"
	"github.com/Chinmaytikole/DiscoverCart/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookie is the cookie carrying the elevated-session token.
const SessionCookie = "dc_admin_session"

// SessionValidator is the slice of the session store the gate needs.
type SessionValidator interface {
	Valid(ctx context.Context, token string) bool
}

// OriginGate enforces the admin origin allowlist. An empty allowlist admits
// every origin. A caller whose IP is absent from a non-empty allowlist gets
// the same plain-text 404 gin serves for unknown routes, so the admin surface
// cannot be probed from outside the allowlist.
func OriginGate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed := cfg.AllowedOrigins()
		if len(allowed) == 0 {
			c.Next()
			return
		}
		ip := c.ClientIP()
		for _, origin := range allowed {
			if origin == ip {
				c.Next()
				return
			}
		}
		log.Warn().Str("ip", ip).Str("path", c.Request.URL.Path).Msg("admin request from origin outside allowlist")
		c.Abort()
		c.String(http.StatusNotFound, "404 page not found")
	}
}

// RequireAdmin is the elevation check behind OriginGate: an already-elevated
// session passes, otherwise inline Basic credentials are verified. Both paths
// share the same credential comparison as the login exchange.
func RequireAdmin(cfg *config.Config, sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil && sessions.Valid(c.Request.Context(), token) {
			c.Next()
			return
		}

		if user, pass, ok := c.Request.BasicAuth(); ok && CheckCredentials(cfg, user, pass) {
			c.Next()
			return
		}

		c.Header("WWW-Authenticate", `Basic realm="Admin Area"`)
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
	}
}

// CheckCredentials verifies an admin username/password pair. When a bcrypt
// hash is configured it takes precedence over the plaintext password.
func CheckCredentials(cfg *config.Config, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) == 1

	var passOK bool
	if cfg.AdminPasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
	}
	return userOK && passOK
}
