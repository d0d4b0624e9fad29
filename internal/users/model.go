package users

import "time"

// User is the stored account record. PasswordHash never leaves the process;
// IsActive is carried in the data model but does not gate any flow.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
	IsAdmin      bool      `json:"is_admin"`
}
