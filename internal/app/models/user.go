package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"` // Unique across all users
	Password  string    `json:"-" db:"password"`  // Hashed, never serialized
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
