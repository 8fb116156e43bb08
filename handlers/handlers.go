// Package handlers renders the view pages. Each handler is a thin
// request/render loop: read input, call the auth service or API client, and
// either redirect or re-render the page with the error message verbatim.
package handlers

import (
	"socialweb/auth"
	"socialweb/client"
	"socialweb/middleware"
	"socialweb/session"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	api      *client.Client
	auth     *auth.Service
	sessions *session.Manager
}

func New(api *client.Client, authSvc *auth.Service, sessions *session.Manager) *Handler {
	return &Handler{api: api, auth: authSvc, sessions: sessions}
}

// render wraps c.Render so every page gets the session for the navbar.
func (h *Handler) render(c *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	if _, ok := bind["Session"]; !ok {
		if sess := middleware.CurrentSession(c); sess.Authenticated() {
			bind["Session"] = sess
		} else {
			bind["Session"] = h.sessions.Current(c)
		}
	}
	return c.Render(name, bind)
}

// Home renders the landing page, with different content for signed-in users.
func (h *Handler) Home(c *fiber.Ctx) error {
	return h.render(c, "home", nil)
}
