package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/rs/zerolog/log"
)

// SessionName is the name of the session cookie.
const SessionName = "moneyjournal"

const (
	keyUserID   = "userId"
	keyUsername = "username"
	keyAvatar   = "avatar"
	keyRole     = "role"
)

// Session is the copy of the user data kept in the session.
type Session struct {
	UserID   uuid.UUID
	Username string
	Avatar   string
	Role     string
}

// NewStore creates the cookie store for sessions.
func NewStore(secret string, maxAge time.Duration, secure bool) sessions.Store {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// Middleware loads the session for each request.
func Middleware(store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(SessionName, store)
}

// Login stores the snapshot of the user in the session.
//
// It is also used to refresh the snapshot after the user changed.
func Login(c *gin.Context, user models.User) error {
	session := sessions.Default(c)
	session.Set(keyUserID, user.ID.String())
	session.Set(keyUsername, user.Username)
	session.Set(keyAvatar, user.Avatar)
	session.Set(keyRole, user.Role)
	return session.Save()
}

// Logout removes all data from the session and expires the cookie.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// Current returns the snapshot of the logged in user. ok is false if there
// is no valid session.
func Current(c *gin.Context) (s Session, ok bool) {
	session := sessions.Default(c)

	raw, _ := session.Get(keyUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return Session{}, false
	}

	s = Session{
		UserID:   id,
		Username: stringValue(session, keyUsername),
		Avatar:   stringValue(session, keyAvatar),
		Role:     stringValue(session, keyRole),
	}

	if s.Avatar == "" {
		s.Avatar = registry.DefaultAvatar
	}
	if s.Role == "" {
		s.Role = registry.RoleSelf
	}

	return s, true
}

func stringValue(session sessions.Session, key string) string {
	v, _ := session.Get(key).(string)
	return v
}

// RequireSession aborts requests without a logged in user.
// API requests get a JSON error, all other requests are redirected to the
// login page.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Current(c); ok {
			c.Next()
			return
		}

		log.Debug().Str("path", c.Request.URL.Path).Msg("request without session")

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   ErrUnauthenticated.Error(),
			})
			return
		}

		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}
