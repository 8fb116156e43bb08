package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// LoginForm renders the sign-in page. A visitor arriving from activation gets
// a confirmation banner.
func (h *Handler) LoginForm(c *fiber.Ctx) error {
	return h.render(c, "login", fiber.Map{
		"Activated": c.Query("activated") == "1",
		"Email":     "",
	})
}

// LoginSubmit runs the login handshake and lands the user on the feed.
func (h *Handler) LoginSubmit(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return h.render(c, "login", fiber.Map{
			"Error": "Email and password are required",
			"Email": email,
		})
	}

	sid := h.sessions.EnsureID(c)
	if _, err := h.auth.Login(c.Context(), sid, email, password); err != nil {
		return h.render(c, "login", fiber.Map{
			"Error": err.Error(),
			"Email": email,
		})
	}
	return c.Redirect("/feed", fiber.StatusFound)
}

// RegisterForm renders the sign-up page.
func (h *Handler) RegisterForm(c *fiber.Ctx) error {
	return h.render(c, "register", fiber.Map{
		"Username": "",
		"Email":    "",
	})
}

// RegisterSubmit creates the account and shows the activation token. There is
// no auto-login: the account stays unusable until activated.
func (h *Handler) RegisterSubmit(c *fiber.Ctx) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	if username == "" || email == "" || password == "" {
		return h.render(c, "register", fiber.Map{
			"Error":    "Username, email, and password are required",
			"Username": username,
			"Email":    email,
		})
	}

	result, err := h.auth.Register(c.Context(), username, email, password)
	if err != nil {
		return h.render(c, "register", fiber.Map{
			"Error":    err.Error(),
			"Username": username,
			"Email":    email,
		})
	}
	return h.render(c, "register", fiber.Map{
		"Registered":      true,
		"Email":           email,
		"ActivationToken": result.Token,
	})
}

// ConfirmForm renders the activation page for /confirm/:token.
func (h *Handler) ConfirmForm(c *fiber.Ctx) error {
	return h.render(c, "confirm", fiber.Map{
		"Token": c.Params("token"),
	})
}

// ConfirmSubmit consumes the activation token and sends the user to login.
func (h *Handler) ConfirmSubmit(c *fiber.Ctx) error {
	token := c.Params("token")
	if err := h.auth.Activate(c.Context(), token); err != nil {
		return h.render(c, "confirm", fiber.Map{
			"Error": err.Error(),
			"Token": token,
		})
	}
	return c.Redirect("/login?activated=1", fiber.StatusFound)
}

// Logout clears the session and returns to the login page. No network call,
// no failure mode.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if sid := h.sessions.SessionID(c); sid != "" {
		h.auth.Logout(c.Context(), sid)
	}
	h.sessions.Clear(c)
	return c.Redirect("/login", fiber.StatusFound)
}
