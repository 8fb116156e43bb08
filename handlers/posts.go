package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"socialweb/middleware"
	"socialweb/models"
)

// Feed renders the authenticated user's feed. Search and sort are passed
// through to the backend; no filtering happens here.
func (h *Handler) Feed(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	sort := c.Query("sort", "desc")
	if sort != "asc" && sort != "desc" {
		sort = "desc"
	}
	search := c.Query("search")

	limit, offset := 20, 0
	params := models.FeedParams{
		Limit:  &limit,
		Offset: &offset,
		Sort:   sort,
		Search: search,
	}

	bind := fiber.Map{
		"Session": sess,
		"Sort":    sort,
		"Search":  search,
	}

	posts, err := h.api.GetFeed(c.Context(), sess.Token, params)
	if err != nil {
		bind["Error"] = err.Error()
	} else {
		bind["Posts"] = posts
	}
	return h.render(c, "feed", bind)
}

// NewPostForm renders the create-post page.
func (h *Handler) NewPostForm(c *fiber.Ctx) error {
	return h.render(c, "post_new", fiber.Map{
		"Title":   "",
		"Content": "",
		"Tags":    "",
	})
}

// CreatePost submits the new post and redirects to its detail page.
func (h *Handler) CreatePost(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	title := c.FormValue("title")
	content := c.FormValue("content")
	rawTags := c.FormValue("tags")

	bind := fiber.Map{
		"Title":   title,
		"Content": content,
		"Tags":    rawTags,
	}

	if title == "" || content == "" {
		bind["Error"] = "Title and content are required"
		return h.render(c, "post_new", bind)
	}

	post, err := h.api.CreatePost(c.Context(), sess.Token, models.CreatePostPayload{
		Title:   title,
		Content: content,
		Tags:    splitTags(rawTags),
	})
	if err != nil {
		bind["Error"] = err.Error()
		return h.render(c, "post_new", bind)
	}
	return c.Redirect(fmt.Sprintf("/posts/%d", post.ID), fiber.StatusFound)
}

// ShowPost renders a post with its comments. The delete action only shows for
// the post's owner; the backend enforces ownership regardless.
func (h *Handler) ShowPost(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.render(c, "post", fiber.Map{"Error": "Post not found"})
	}

	post, err := h.api.GetPost(c.Context(), sess.Token, id)
	if err != nil {
		return h.render(c, "post", fiber.Map{"Error": err.Error()})
	}
	return h.render(c, "post", fiber.Map{
		"Post":    post,
		"IsOwner": sess.User != nil && sess.User.ID == post.UserID,
	})
}

// DeletePost removes the post and returns to the feed.
func (h *Handler) DeletePost(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return h.render(c, "post", fiber.Map{"Error": "Post not found"})
	}

	if err := h.api.DeletePost(c.Context(), sess.Token, id); err != nil {
		return h.render(c, "post", fiber.Map{"Error": err.Error()})
	}
	return c.Redirect("/feed", fiber.StatusFound)
}

// splitTags turns a comma-separated input into a clean tag list.
func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
