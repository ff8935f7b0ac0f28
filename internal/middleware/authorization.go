package middleware

import (
	"net/http"

	"moonradar/internal/session"
	"moonradar/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const UserIDKey = "user_id"

type SessionAuth struct {
	store      session.Store
	cookieName string
}

func NewSessionAuth(store session.Store, cookieName string) *SessionAuth {
	return &SessionAuth{
		store:      store,
		cookieName: cookieName,
	}
}

// RequireSession resolves the session cookie to a user id and stores it
// in the request context. Requests without a live session are rejected
// with 401 before the handler runs.
func (a *SessionAuth) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		sessionID, err := c.Cookie(a.cookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := a.store.Get(c.Request.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				log.Error("failed to resolve session", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireSession.
func UserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
