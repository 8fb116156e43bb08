package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"socialweb/handlers"
	"socialweb/middleware"
	"socialweb/session"
	"socialweb/views"
)

// Setup registers every page route. Authenticated views sit behind the
// session guard; everything else is public.
func Setup(app *fiber.App, h *handlers.Handler, sessions *session.Manager) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(views.Static),
		PathPrefix: "static",
	}))

	// Public pages
	app.Get("/", h.Home)
	app.Get("/login", h.LoginForm)
	app.Post("/login", h.LoginSubmit)
	app.Get("/register", h.RegisterForm)
	app.Post("/register", h.RegisterSubmit)
	app.Get("/confirm/:token", h.ConfirmForm)
	app.Post("/confirm/:token", h.ConfirmSubmit)
	app.Post("/logout", h.Logout)

	// Guarded pages
	guard := middleware.RequireSession(sessions)
	app.Get("/feed", guard, h.Feed)
	app.Get("/posts/new", guard, h.NewPostForm)
	app.Post("/posts/new", guard, h.CreatePost)
	app.Get("/posts/:id", guard, h.ShowPost)
	app.Post("/posts/:id/delete", guard, h.DeletePost)
	app.Get("/profile/:id", guard, h.Profile)
	app.Post("/profile/:id/follow", guard, h.Follow)
	app.Post("/profile/:id/unfollow", guard, h.Unfollow)
}
