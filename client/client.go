// Package client is the typed HTTP client for the GopherSocial backend. It is
// stateless: the bearer token is passed per call instead of living on the
// client, so a single instance can serve every browser session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"socialweb/models"
)

// responseShape declares, per endpoint, how a success body is decoded. The
// backend wraps object payloads in a {"data": ...} envelope but serves the
// login token bare, so the shape is part of each endpoint's contract rather
// than something sniffed out of the body at runtime.
type responseShape int

const (
	// shapeEnveloped expects {"data": ...} but tolerates an un-wrapped body.
	shapeEnveloped responseShape = iota
	// shapeBare decodes the body directly, never looking for an envelope.
	shapeBare
	// shapeEmpty expects no body worth decoding (204s and the like).
	shapeEmpty
)

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the backend at baseURL (including any path prefix,
// e.g. "http://localhost:8080/v1"). A nil httpClient falls back to
// http.DefaultClient; no timeouts or retries are layered on top.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// do performs one request. token may be empty for unauthenticated endpoints.
// out is decoded according to shape and left untouched on any error.
func (c *Client) do(ctx context.Context, token, method, path string, body any, shape responseShape, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return newTransportError(err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return newTransportError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return interpretError(resp.StatusCode, raw)
	}

	if resp.StatusCode == http.StatusNoContent || shape == shapeEmpty || out == nil || len(raw) == 0 {
		return nil
	}

	return decodeBody(shape, raw, out)
}

func decodeBody(shape responseShape, raw []byte, out any) error {
	if shape == shapeEnveloped {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return newDecodeError(err)
			}
			return nil
		}
		// Not wrapped; fall through and take the body as-is.
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return newDecodeError(err)
	}
	return nil
}

// Register creates a new, inactive account and returns it together with the
// activation token.
func (c *Client) Register(ctx context.Context, payload models.RegisterPayload) (*models.UserWithToken, error) {
	var out models.UserWithToken
	if err := c.do(ctx, "", http.MethodPost, "/authentication/user", payload, shapeEnveloped, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token. The token comes back as a
// bare JSON string, not inside the usual envelope.
func (c *Client) Login(ctx context.Context, payload models.LoginPayload) (string, error) {
	var token string
	if err := c.do(ctx, "", http.MethodPost, "/authentication/token", payload, shapeBare, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Activate consumes an activation token. Replay semantics are the backend's
// call; any non-error response counts as success here.
func (c *Client) Activate(ctx context.Context, token string) error {
	return c.do(ctx, "", http.MethodPut, "/users/activate/"+url.PathEscape(token), nil, shapeEmpty, nil)
}

func (c *Client) CreatePost(ctx context.Context, token string, payload models.CreatePostPayload) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, token, http.MethodPost, "/posts", payload, shapeEnveloped, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPost(ctx context.Context, token string, id int64) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, shapeEnveloped, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePost(ctx context.Context, token string, id int64, payload models.UpdatePostPayload) (*models.Post, error) {
	var out models.Post
	if err := c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/posts/%d", id), payload, shapeEnveloped, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePost(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, shapeEmpty, nil)
}

func (c *Client) GetUser(ctx context.Context, token string, id int64) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, token, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, shapeEnveloped, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Follow(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("/users/%d/follow", id), nil, shapeEmpty, nil)
}

func (c *Client) Unfollow(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("/users/%d/unfollow", id), nil, shapeEmpty, nil)
}

// GetFeed returns the authenticated user's feed. Unset params are omitted
// from the query string.
func (c *Client) GetFeed(ctx context.Context, token string, params models.FeedParams) ([]models.PostWithMetadata, error) {
	path := "/users/feed"
	if q := params.Values().Encode(); q != "" {
		path += "?" + q
	}
	var out []models.PostWithMetadata
	if err := c.do(ctx, token, http.MethodGet, path, nil, shapeEnveloped, &out); err != nil {
		return nil, err
	}
	return out, nil
}
