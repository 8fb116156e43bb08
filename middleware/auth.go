// Package middleware provides the route guard and request logging for the
// web client.
package middleware

import (
	"github.com/gofiber/fiber/v2"

	"socialweb/session"
)

// SessionKey is where RequireSession parks the loaded session for handlers.
const SessionKey = "session"

// UserIDKey holds the authenticated user's id for the request logger.
const UserIDKey = "userID"

// RequireSession gates authenticated pages. Anonymous visitors get a redirect
// to the login screen; for everyone else the loaded session is stashed in
// locals so handlers don't hit the store twice.
func RequireSession(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := sessions.Current(c)
		if !sess.Authenticated() {
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Locals(SessionKey, sess)
		c.Locals(UserIDKey, sess.User.ID)
		return c.Next()
	}
}

// CurrentSession returns the session loaded by RequireSession, or an empty
// session on unguarded routes.
func CurrentSession(c *fiber.Ctx) *session.Session {
	if sess, ok := c.Locals(SessionKey).(*session.Session); ok {
		return sess
	}
	return &session.Session{}
}
