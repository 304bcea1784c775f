package domain

import "time"

// User rows are created lazily on the first booking for a given email.
// Email is the natural key for the upsert.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
