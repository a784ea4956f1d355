package models

import "time"

// User is a registered account. Usernames are unique and case-sensitive.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // don't expose hash
	CreatedAt    time.Time `json:"created_at"`
}
