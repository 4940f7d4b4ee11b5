package entities

import "time"

// User represents a user account record in the database
type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	HashedPassword string     `json:"-"` // Don't expose password hash in JSON
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"` // NULL until first update
}
