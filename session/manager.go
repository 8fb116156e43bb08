package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CookieName identifies the browser session. The cookie holds only an opaque
// id; token and user live server-side in the Store.
const CookieName = "gsw_session"

// Manager ties Store slots to the browser via the session cookie.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Store exposes the underlying persistence, mainly for collaborators that
// take the Store interface directly.
func (m *Manager) Store() Store {
	return m.store
}

// SessionID returns the visitor's session id, or "" when no cookie is set.
func (m *Manager) SessionID(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}

// EnsureID returns the visitor's session id, issuing a fresh cookie first if
// needed.
func (m *Manager) EnsureID(c *fiber.Ctx) string {
	if sid := c.Cookies(CookieName); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return sid
}

// Current loads the visitor's session. Store failures read as logged out so
// a flaky store degrades to the login page instead of a broken one.
func (m *Manager) Current(c *fiber.Ctx) *Session {
	sid := c.Cookies(CookieName)
	if sid == "" {
		return &Session{}
	}
	token, err := m.store.GetToken(c.Context(), sid)
	if err != nil {
		return &Session{}
	}
	user, err := m.store.GetUser(c.Context(), sid)
	if err != nil {
		return &Session{}
	}
	return &Session{Token: token, User: user}
}

// Clear wipes both slots and expires the cookie.
func (m *Manager) Clear(c *fiber.Ctx) {
	if sid := c.Cookies(CookieName); sid != "" {
		_ = m.store.Clear(c.Context(), sid)
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
