package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"socialweb/middleware"
)

// Profile renders a user's profile page. Follow state isn't served by the
// backend, so it is carried across the follow/unfollow redirect in the query
// string, defaulting to not-following on a fresh load.
func (h *Handler) Profile(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	bind := fiber.Map{
		"Following": c.Query("following") == "1",
	}
	if msg := c.Query("error"); msg != "" {
		bind["Error"] = msg
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		bind["Error"] = "User not found"
		return h.render(c, "profile", bind)
	}

	user, err := h.api.GetUser(c.Context(), sess.Token, id)
	if err != nil {
		bind["Error"] = err.Error()
		return h.render(c, "profile", bind)
	}
	bind["User"] = user
	bind["IsOwnProfile"] = sess.User != nil && sess.User.ID == user.ID
	return h.render(c, "profile", bind)
}

// Follow subscribes the current user to another user's posts.
func (h *Handler) Follow(c *fiber.Ctx) error {
	return h.followAction(c, true)
}

// Unfollow undoes Follow.
func (h *Handler) Unfollow(c *fiber.Ctx) error {
	return h.followAction(c, false)
}

func (h *Handler) followAction(c *fiber.Ctx, follow bool) error {
	sess := middleware.CurrentSession(c)

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Redirect("/feed", fiber.StatusFound)
	}

	if follow {
		err = h.api.Follow(c.Context(), sess.Token, id)
	} else {
		err = h.api.Unfollow(c.Context(), sess.Token, id)
	}
	if err != nil {
		return c.Redirect(fmt.Sprintf("/profile/%d?error=%s", id, url.QueryEscape(err.Error())), fiber.StatusFound)
	}

	following := "0"
	if follow {
		following = "1"
	}
	return c.Redirect(fmt.Sprintf("/profile/%d?following=%s", id, following), fiber.StatusFound)
}
