package models

import (
	"net/url"
	"strconv"
)

type RegisterPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePostPayload struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdatePostPayload carries partial updates; nil fields are left out of the
// request body.
type UpdatePostPayload struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// FeedParams are the query parameters the feed endpoint accepts. Pointer
// fields distinguish "explicitly zero" from "unset"; unset fields are omitted
// from the query string entirely.
type FeedParams struct {
	Limit  *int
	Offset *int
	Sort   string
	Since  string
	Until  string
	Tags   string
	Search string
}

// Values flattens the params into URL query values, dropping anything unset.
func (p FeedParams) Values() url.Values {
	v := url.Values{}
	if p.Limit != nil {
		v.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.Offset != nil {
		v.Set("offset", strconv.Itoa(*p.Offset))
	}
	if p.Sort != "" {
		v.Set("sort", p.Sort)
	}
	if p.Since != "" {
		v.Set("since", p.Since)
	}
	if p.Until != "" {
		v.Set("until", p.Until)
	}
	if p.Tags != "" {
		v.Set("tags", p.Tags)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v
}
