package domain

import "time"

// Admin is a back-office account. Authentication itself is handled by the
// security package; only the bcrypt hash is persisted.
type Admin struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
