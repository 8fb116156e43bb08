package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialweb/auth"
	"socialweb/client"
	"socialweb/handlers"
	"socialweb/models"
	"socialweb/routes"
	"socialweb/session"
	"socialweb/views"
)

var testUser = models.User{
	ID:       7,
	Username: "alice",
	Email:    "alice@example.com",
	IsActive: true,
	Role:     models.Role{ID: 1, Name: "user", Level: 1},
}

// newBackend fakes the slice of the GopherSocial API the pages touch.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	writeData := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": v}))
	}

	mux.HandleFunc("POST /authentication/user", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		writeData(w, models.UserWithToken{User: testUser, Token: "activation-token-123"})
	})

	mux.HandleFunc("POST /authentication/token", func(w http.ResponseWriter, r *http.Request) {
		var payload models.LoginPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		if payload.Password != "good-password" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
			return
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"})
		signed, err := token.SignedString([]byte("backend-secret"))
		require.NoError(t, err)
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(signed))
	})

	mux.HandleFunc("PUT /users/activate/{token}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /users/7", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, testUser)
	})

	mux.HandleFunc("PUT /users/7/follow", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("PUT /users/7/unfollow", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /users/feed", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []models.PostWithMetadata{
			{
				Post:          models.Post{ID: 9, Title: "Concurrency in Go", Content: "channels all the way down", Tags: []string{"golang"}},
				User:          testUser,
				CommentsCount: 2,
			},
		})
	})

	mux.HandleFunc("POST /posts", func(w http.ResponseWriter, r *http.Request) {
		var payload models.CreatePostPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		writeData(w, models.Post{ID: 9, Title: payload.Title, Content: payload.Content, Tags: payload.Tags, UserID: 7})
	})

	mux.HandleFunc("GET /posts/9", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, models.Post{
			ID: 9, Title: "Concurrency in Go", Content: "channels all the way down",
			Tags: []string{"golang"}, UserID: 7,
			Comments: []models.Comment{
				{ID: 1, PostID: 9, UserID: 7, Content: "great post", User: &testUser},
			},
		})
	})

	mux.HandleFunc("DELETE /posts/9", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	backend := newBackend(t)

	store := session.NewMemoryStore()
	sessions := session.NewManager(store, time.Hour)
	api := client.New(backend.URL, backend.Client())
	authSvc := auth.NewService(api, store)
	h := handlers.New(api, authSvc, sessions)

	app := fiber.New(fiber.Config{
		Views:       views.Engine(),
		ViewsLayout: "layouts/main",
	})
	routes.Setup(app, h, sessions)
	return app
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// login runs the login flow and returns the session cookie.
func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	req := postForm("/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"good-password"},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/feed", resp.Header.Get("Location"))

	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie issued on login")
	return nil
}

func TestHome_Anonymous(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Welcome to GopherSocial")
}

func TestLogin_RedirectsToFeed(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := body(t, resp)
	assert.Contains(t, page, "Concurrency in Go")
	assert.Contains(t, page, "alice")
}

func TestLogin_BadCredentialsShowsMessage(t *testing.T) {
	app := newTestApp(t)

	req := postForm("/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "invalid credentials")
}

func TestLogin_MissingFields(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(postForm("/login", url.Values{"email": {"a@b.com"}}))
	require.NoError(t, err)
	assert.Contains(t, body(t, resp), "Email and password are required")
}

func TestRegister_ShowsActivationToken(t *testing.T) {
	app := newTestApp(t)

	req := postForm("/register", url.Values{
		"username": {"bob"},
		"email":    {"bob@example.com"},
		"password": {"pw"},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := body(t, resp)
	assert.Contains(t, page, "Registration Successful")
	assert.Contains(t, page, "activation-token-123")

	// No auto-login: the feed is still guarded.
	feedResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/feed", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, feedResp.StatusCode)
	assert.Equal(t, "/login", feedResp.Header.Get("Location"))
}

func TestConfirm_RedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(postForm("/confirm/activation-token-123", url.Values{}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?activated=1", resp.Header.Get("Location"))
}

func TestCreatePost_RedirectsToDetail(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := postForm("/posts/new", url.Values{
		"title":   {"Concurrency in Go"},
		"content": {"channels all the way down"},
		"tags":    {"golang, concurrency , "},
	})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/posts/9", resp.Header.Get("Location"))
}

func TestShowPost_RendersComments(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := httptest.NewRequest(http.MethodGet, "/posts/9", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := body(t, resp)
	assert.Contains(t, page, "Concurrency in Go")
	assert.Contains(t, page, "great post")
	// The session user owns the post, so the delete action is present.
	assert.Contains(t, page, "/posts/9/delete")
}

func TestDeletePost_RedirectsToFeed(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := postForm("/posts/9/delete", url.Values{})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/feed", resp.Header.Get("Location"))
}

func TestProfile_FollowRoundTrip(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := postForm("/profile/7/follow", url.Values{})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/profile/7?following=1", resp.Header.Get("Location"))

	req = postForm("/profile/7/unfollow", url.Values{})
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "/profile/7?following=0", resp.Header.Get("Location"))
}

func TestLogout_ClearsSession(t *testing.T) {
	app := newTestApp(t)
	cookie := login(t, app)

	req := postForm("/logout", url.Values{})
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// The old cookie no longer opens guarded pages.
	feedReq := httptest.NewRequest(http.MethodGet, "/feed", nil)
	feedReq.AddCookie(cookie)
	feedResp, err := app.Test(feedReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, feedResp.StatusCode)
	assert.Equal(t, "/login", feedResp.Header.Get("Location"))
}

func TestGuardedRoutes_RequireSession(t *testing.T) {
	app := newTestApp(t)

	paths := []string{"/feed", "/posts/new", "/posts/9", "/profile/7"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, "/login", resp.Header.Get("Location"))
		})
	}
}
