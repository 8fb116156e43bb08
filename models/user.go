package models

// User is the backend's user record. The web client only ever holds a cached
// snapshot of it, either in the session or in page-local render data.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	IsActive  bool   `json:"is_active"`
	Role      Role   `json:"role"`
}

// Role is attached to a user and read-only from this side.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// UserWithToken is the registration response: the new (inactive) user plus the
// activation token that must be consumed before login works.
type UserWithToken struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
