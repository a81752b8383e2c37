package models

import "time"

// User roles stored in users.role and embedded in token claims.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Username  string    `json:"username" db:"username"`     // Unique username
	Email     string    `json:"email" db:"email"`           // Unique email
	Password  string    `json:"-" db:"password"`            // Bcrypt hash, never serialized
	Role      string    `json:"role" db:"role"`             // "user" or "admin"
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// PublicUser is the client-safe projection of a user: everything except
// the password hash.
type PublicUser struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Public strips the password hash from a user record.
func (u *UserDB) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
