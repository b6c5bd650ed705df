package entity

import (
	"time"
)

// User is the aggregate root for the credential store.
// Password holds a bcrypt hash; plaintext is never persisted.
// JSON tags double as the on-disk snapshot format of the file store.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"` // nil until first login
}
