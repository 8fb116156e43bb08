package models

// Post as served by the backend. Comments are only embedded on the detail
// endpoint.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	UserID    int64     `json:"user_id"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
	Version   int       `json:"version"`
	Comments  []Comment `json:"comments,omitempty"`
}

// PostWithMetadata is the feed listing variant: the post plus its author and a
// comment count.
type PostWithMetadata struct {
	Post
	User          User `json:"user"`
	CommentsCount int  `json:"comments_count"`
}
