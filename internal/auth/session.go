package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/gatehouse-app/gatehouse/internal/model"
)

// SessionCookieName is the name of the opaque session cookie.
const SessionCookieName = "gh_session"

const (
	sessionKeyUserID = "user_id"
	sessionKeyName   = "name"
)

// Login writes the user's identity into the current session.
// Only the ID and display name are kept server-side.
func Login(c *gin.Context, user *model.User) error {
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyName, user.FirstName)
	return session.Save()
}

// Logout destroys the session record entirely; the next request
// receives a fresh anonymous session.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// Current reads the authenticated identity out of the session.
// ok is false for anonymous sessions.
func Current(c *gin.Context) (userID int, name string, ok bool) {
	session := sessions.Default(c)
	id, idOK := session.Get(sessionKeyUserID).(int)
	if !idOK {
		return 0, "", false
	}
	name, _ = session.Get(sessionKeyName).(string)
	return id, name, true
}

// IsAuthenticated is true iff the session carries a user ID.
func IsAuthenticated(c *gin.Context) bool {
	_, _, ok := Current(c)
	return ok
}
