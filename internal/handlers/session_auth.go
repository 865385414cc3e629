package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-catalog-service/internal/session"
)

const sessionKey = "session"

var accessDenied = ErrorResponse{
	Message: "Access Denied",
	Details: "You do not have permission to access this area.",
}

// SessionAuthMiddleware resolves the bearer token of a request to a live
// session. Tokens are the opaque ids handed out by login.
type SessionAuthMiddleware struct {
	sessions *session.Manager
}

func NewSessionAuthMiddleware(sessions *session.Manager) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{sessions: sessions}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware rejects requests without a live session
func (m *SessionAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "unauthorized",
				Details: "authorization header missing or malformed",
			})
			return
		}

		sess, ok := m.sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "unauthorized",
				Details: "session expired or unknown",
			})
			return
		}
		m.sessions.Touch(sess.ID())

		setSession(c, sess)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the session when a valid token is present
func (m *SessionAuthMiddleware) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if sess, ok := m.sessions.Get(token); ok {
				m.sessions.Touch(sess.ID())
				setSession(c, sess)
			}
		}
		c.Next()
	}
}

// RequireAdminMiddleware must run after AuthMiddleware
func (m *SessionAuthMiddleware) RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok || !sess.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, accessDenied)
			return
		}
		c.Next()
	}
}

func setSession(c *gin.Context, sess *session.Session) {
	user := sess.User()
	c.Set(sessionKey, sess)
	c.Set("session_id", sess.ID())
	c.Set("user_id", user.ID)
	c.Set("user_role", user.Role)
}

// CurrentSession returns the session the auth middleware attached
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok && sess != nil
}
